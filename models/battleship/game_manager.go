package battleship

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

type GameManager interface {
	CreateGame(cfg GameConfig) *Game
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type NavalGameManager struct {
	games  map[string]*Game
	mu     sync.RWMutex
	newRng func() *rand.Rand
}

var _ GameManager = (*NavalGameManager)(nil)

func NewNavalGameManager() *NavalGameManager {
	return &NavalGameManager{
		games: make(map[string]*Game, 10),
		newRng: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewSeededGameManager fixes the per-game rand seed. Meant for tests
// that need reproducible auto placement and ai behavior.
func NewSeededGameManager(seed int64) *NavalGameManager {
	return &NavalGameManager{
		games: make(map[string]*Game, 10),
		newRng: func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		},
	}
}

func (gm *NavalGameManager) CreateGame(cfg GameConfig) *Game {
	gameUuid := uuid.NewString()[:6]
	game := NewGame(gameUuid, cfg, gm.newRng())

	gm.mu.Lock()
	gm.games[gameUuid] = game
	gm.mu.Unlock()

	return game
}

func (gm *NavalGameManager) FetchGame(gameUuid string) (*Game, error) {
	gm.mu.RLock()
	game, prs := gm.games[gameUuid]
	gm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	return game, nil
}

func (gm *NavalGameManager) TerminateGame(gameUuid string) {
	gm.mu.Lock()
	delete(gm.games, gameUuid)
	gm.mu.Unlock()
}
