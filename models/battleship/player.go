package battleship

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

const (
	RoleHuman uint8 = iota
	RoleAi
)

type Player struct {
	uuid         string
	sessionId    string
	isHost       bool
	isReady      bool
	matchStatus  int
	role         uint8
	aiDifficulty uint8
	selector     TargetSelector
	defence      *Grid
	tracking     *TrackingGrid
}

func NewPlayer(isHost bool, sessionId string, cfg GameConfig) *Player {
	return &Player{
		uuid:        uuid.NewString()[:10],
		sessionId:   sessionId,
		isHost:      isHost,
		matchStatus: PlayerMatchStatusUndefined,
		role:        RoleHuman,
		defence:     NewGrid(cfg.GridSize, cfg.Fleet, cfg.MineCount),
		tracking:    NewTrackingGrid(cfg.GridSize, cfg.Fleet),
	}
}

func NewAiPlayer(difficulty uint8, rng *rand.Rand, cfg GameConfig) (*Player, error) {
	selector, err := NewTargetSelector(difficulty, rng)
	if err != nil {
		return nil, err
	}

	p := NewPlayer(false, "", cfg)
	p.role = RoleAi
	p.aiDifficulty = difficulty
	p.selector = selector
	return p, nil
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) SessionId() string {
	return p.sessionId
}

func (p *Player) IsHost() bool {
	return p.isHost
}

func (p *Player) IsReady() bool {
	return p.isReady
}

func (p *Player) IsAi() bool {
	return p.role == RoleAi
}

func (p *Player) AiDifficulty() uint8 {
	return p.aiDifficulty
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

func (p *Player) IsMatchOver() bool {
	return p.matchStatus != PlayerMatchStatusUndefined
}

func (p *Player) Defence() *Grid {
	return p.defence
}

func (p *Player) Tracking() *TrackingGrid {
	return p.tracking
}

// SelectTarget asks the player's targeting engine for the next shot.
// Only the player's own tracking grid is handed over, which is what
// keeps unrevealed opponent cells out of reach of the ai.
func (p *Player) SelectTarget() (Coord, error) {
	return p.selector.SelectTarget(p.tracking)
}

// resetForRematch gives the player fresh grids and placement state
// while keeping identity and role.
func (p *Player) resetForRematch(cfg GameConfig) {
	p.isReady = false
	p.matchStatus = PlayerMatchStatusUndefined
	p.defence = NewGrid(cfg.GridSize, cfg.Fleet, cfg.MineCount)
	p.tracking = NewTrackingGrid(cfg.GridSize, cfg.Fleet)
}
