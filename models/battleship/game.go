package battleship

import (
	"math/rand"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

const (
	PhasePlacement uint8 = iota
	PhaseShooting
	PhaseGameOver
)

const (
	GameModeStandard uint8 = iota

	// Extended mode: shots are fired by a selected ship, and a shot
	// that triggers a mine destroys the firing ship instead of just
	// spending the turn.
	GameModeExtended
)

const (
	StartingPlayerHost uint8 = iota
	StartingPlayerRandom
)

type GameConfig struct {
	GridSize       int
	Fleet          FleetSpec
	MineCount      int
	Mode           uint8
	StartingPlayer uint8
}

func NewDefaultGameConfig() GameConfig {
	return GameConfig{
		GridSize:       DefaultGridSize,
		Fleet:          NewDefaultFleetSpec(),
		MineCount:      0,
		Mode:           GameModeStandard,
		StartingPlayer: StartingPlayerHost,
	}
}

// GameState is the snapshot handed to the presentation layer after
// each operation. It carries no unrevealed information.
type GameState struct {
	GameUuid         string `json:"game_uuid"`
	Phase            uint8  `json:"phase"`
	Turn             int    `json:"turn"`
	ActivePlayerUuid string `json:"active_player_uuid"`
	WinnerUuid       string `json:"winner_uuid,omitempty"`
}

// Game sequences one match: placement, shooting, game over. All
// mutation of either grid goes through it, one shot at a time.
type Game struct {
	uuid    string
	cfg     GameConfig
	rng     *rand.Rand
	phase   uint8
	turn    int
	host    *Player
	join    *Player
	players map[string]*Player
	active  *Player
	winner  *Player
}

func NewGame(gameUuid string, cfg GameConfig, rng *rand.Rand) *Game {
	return &Game{
		uuid:    gameUuid,
		cfg:     cfg,
		rng:     rng,
		phase:   PhasePlacement,
		players: make(map[string]*Player, 2),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Phase() uint8 {
	return g.phase
}

func (g *Game) Config() GameConfig {
	return g.cfg
}

func (g *Game) CreateHostPlayer(sessionId string) *Player {
	g.host = NewPlayer(true, sessionId, g.cfg)
	g.players[g.host.Uuid()] = g.host
	return g.host
}

func (g *Game) CreateJoinPlayer(sessionId string) *Player {
	g.join = NewPlayer(false, sessionId, g.cfg)
	g.players[g.join.Uuid()] = g.join
	return g.join
}

func (g *Game) CreateAiPlayer(difficulty uint8) (*Player, error) {
	aiPlayer, err := NewAiPlayer(difficulty, g.rng, g.cfg)
	if err != nil {
		return nil, err
	}
	g.join = aiPlayer
	g.players[aiPlayer.Uuid()] = aiPlayer
	return aiPlayer, nil
}

func (g *Game) FindPlayer(playerUuid string) (*Player, error) {
	player, prs := g.players[playerUuid]
	if !prs {
		return nil, cerr.ErrPlayerNotExist(playerUuid)
	}
	return player, nil
}

func (g *Game) FetchPlayer(isHost bool) *Player {
	if isHost {
		return g.host
	}
	return g.join
}

func (g *Game) GetOtherPlayer(p *Player) *Player {
	if p == g.host {
		return g.join
	}
	return g.host
}

func (g *Game) ActivePlayer() *Player {
	return g.active
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) State() GameState {
	state := GameState{
		GameUuid: g.uuid,
		Phase:    g.phase,
		Turn:     g.turn,
	}
	if g.active != nil {
		state.ActivePlayerUuid = g.active.Uuid()
	}
	if g.winner != nil {
		state.WinnerUuid = g.winner.Uuid()
	}
	return state
}

// AttemptPlaceShip validates and commits one ship during placement.
func (g *Game) AttemptPlaceShip(playerUuid string, kind ShipKind, coords []Coord) (*Ship, error) {
	player, err := g.placementPlayer(playerUuid)
	if err != nil {
		return nil, err
	}
	return player.defence.PlaceShip(kind, coords)
}

func (g *Game) AttemptPlaceMine(playerUuid string, c Coord) (*Mine, error) {
	player, err := g.placementPlayer(playerUuid)
	if err != nil {
		return nil, err
	}
	return player.defence.PlaceMine(c)
}

func (g *Game) placementPlayer(playerUuid string) (*Player, error) {
	if g.phase != PhasePlacement {
		return nil, cerr.ErrWrongPhase
	}
	player, err := g.FindPlayer(playerUuid)
	if err != nil {
		return nil, err
	}
	if player.isReady {
		return nil, cerr.ErrWrongPhase
	}
	return player, nil
}

// FinalizePlacement marks a player ready once all quotas are met.
// When both players are ready the game moves to the shooting phase
// and the starting player is fixed; placement never recurs after
// that.
func (g *Game) FinalizePlacement(playerUuid string) error {
	if g.phase != PhasePlacement {
		return cerr.ErrWrongPhase
	}
	player, err := g.FindPlayer(playerUuid)
	if err != nil {
		return err
	}
	if !player.defence.PlacementComplete() {
		return cerr.ErrIncompletePlacement
	}
	player.isReady = true

	if g.IsReadyToStart() {
		g.beginShooting()
	}
	return nil
}

func (g *Game) IsReadyToStart() bool {
	return g.host != nil && g.join != nil && g.host.isReady && g.join.isReady
}

func (g *Game) beginShooting() {
	g.phase = PhaseShooting
	g.active = g.host
	if g.cfg.StartingPlayer == StartingPlayerRandom && g.rng.Intn(2) == 1 {
		g.active = g.join
	}
}

// AutoPlaceFleet places the whole roster and mine quota randomly.
// Used for computer players and for humans requesting auto setup.
func (g *Game) AutoPlaceFleet(playerUuid string) error {
	player, err := g.placementPlayer(playerUuid)
	if err != nil {
		return err
	}

	const maxTries = 10000
	for _, kind := range []ShipKind{ShipBattleship, ShipCruiser, ShipDestroyer, ShipSubmarine} {
		for n := player.defence.placedByKind[kind]; n < g.cfg.Fleet[kind]; n++ {
			if err := g.placeShipRandomly(player, kind, maxTries); err != nil {
				return err
			}
		}
	}

	for player.defence.minesPlaced < g.cfg.MineCount {
		if err := g.placeMineRandomly(player, maxTries); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) placeShipRandomly(player *Player, kind ShipKind, maxTries int) error {
	size := g.cfg.GridSize
	for try := 0; try < maxTries; try++ {
		vertical := g.rng.Intn(2) == 1
		row := g.rng.Intn(size)
		col := g.rng.Intn(size)

		coords := make([]Coord, 0, kind.Length())
		for i := 0; i < kind.Length(); i++ {
			if vertical {
				coords = append(coords, NewCoord(row+i, col))
			} else {
				coords = append(coords, NewCoord(row, col+i))
			}
		}

		if _, err := player.defence.PlaceShip(kind, coords); err == nil {
			return nil
		}
	}
	return cerr.ErrNoLegalPlacement(kind.Length())
}

func (g *Game) placeMineRandomly(player *Player, maxTries int) error {
	size := g.cfg.GridSize
	for try := 0; try < maxTries; try++ {
		c := NewCoord(g.rng.Intn(size), g.rng.Intn(size))
		if _, err := player.defence.PlaceMine(c); err == nil {
			return nil
		}
	}
	return cerr.ErrNoLegalPlacement(1)
}

// FireShot resolves one shot by the attacker against the opponent's
// grid, folds the outcome into the attacker's tracking view, applies
// the turn-continuation policy and checks the terminal condition.
// firingShipId names the selected ship in extended mode; pass 0
// otherwise.
func (g *Game) FireShot(playerUuid string, c Coord, firingShipId int) (ShotOutcome, error) {
	if g.phase != PhaseShooting {
		return ShotOutcome{}, cerr.ErrWrongPhase
	}
	attacker, err := g.FindPlayer(playerUuid)
	if err != nil {
		return ShotOutcome{}, err
	}
	if attacker != g.active {
		return ShotOutcome{}, cerr.ErrNotYourTurn
	}
	defender := g.GetOtherPlayer(attacker)

	outcome, err := defender.defence.ResolveShot(c)
	if err != nil {
		return ShotOutcome{}, err
	}

	g.turn++
	attacker.tracking.RecordOutcome(outcome)

	if g.cfg.Mode == GameModeExtended && outcome.Kind == OutcomeMineTriggered && firingShipId != 0 {
		g.detonateFiringShip(attacker, defender, firingShipId)
	}

	g.checkGameOver()
	if g.phase == PhaseShooting && !outcome.RetainsTurn() {
		g.active = defender
	}

	return outcome, nil
}

// detonateFiringShip applies the extended-mode mine rule: the ship
// that fired the shot is destroyed outright, and the defender's view
// learns its cells as if it had sunk the ship itself.
func (g *Game) detonateFiringShip(attacker, defender *Player, firingShipId int) {
	sunk := attacker.defence.DestroyShip(firingShipId)
	if len(sunk) == 0 {
		return
	}
	defender.tracking.RecordOutcome(ShotOutcome{
		Kind:   OutcomeHitAndSunk,
		Coord:  sunk[0],
		ShipId: firingShipId,
		Sunk:   sunk,
	})
}

func (g *Game) checkGameOver() {
	for _, p := range [2]*Player{g.host, g.join} {
		if p != nil && p.defence.AllShipsSunk() {
			loser := p
			winner := g.GetOtherPlayer(loser)
			loser.matchStatus = PlayerMatchStatusLost
			winner.matchStatus = PlayerMatchStatusWon
			g.winner = winner
			g.phase = PhaseGameOver
			return
		}
	}
}

// AiSelectTarget produces the next shot for an ai player. It is the
// caller's job to follow up with FireShot.
func (g *Game) AiSelectTarget(playerUuid string) (Coord, error) {
	if g.phase != PhaseShooting {
		return Coord{}, cerr.ErrWrongPhase
	}
	player, err := g.FindPlayer(playerUuid)
	if err != nil {
		return Coord{}, err
	}
	if !player.IsAi() {
		return Coord{}, cerr.ErrPlayerNotExist(playerUuid)
	}
	if player != g.active {
		return Coord{}, cerr.ErrNotYourTurn
	}
	return player.SelectTarget()
}

// AiFiringShipId picks the ship an ai player fires with in extended
// mode: the lowest-numbered ship still afloat. Standard mode gets 0,
// which FireShot ignores.
func (g *Game) AiFiringShipId(playerUuid string) int {
	if g.cfg.Mode != GameModeExtended {
		return 0
	}
	player, err := g.FindPlayer(playerUuid)
	if err != nil {
		return 0
	}
	for id := 1; id < player.defence.nextShipId; id++ {
		if ship, prs := player.defence.Ship(id); prs && !ship.IsSunk() {
			return id
		}
	}
	return 0
}

// ResetForRematch starts a fresh match between the same players.
func (g *Game) ResetForRematch() {
	g.phase = PhasePlacement
	g.turn = 0
	g.active = nil
	g.winner = nil
	for _, p := range g.players {
		p.resetForRematch(g.cfg)
	}
}
