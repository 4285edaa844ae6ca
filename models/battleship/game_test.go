package battleship

import (
	"errors"
	"testing"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

// newShootingGame returns a game in the shooting phase with a single
// submarine per side: host at (0,0)-(0,1), join at (5,5)-(5,6). The
// host starts.
func newShootingGame(t *testing.T, cfg GameConfig) (*Game, *Player, *Player) {
	t.Helper()

	gm := NewSeededGameManager(7)
	game := gm.CreateGame(cfg)
	host := game.CreateHostPlayer("host-session")
	join := game.CreateJoinPlayer("join-session")

	if _, err := game.AttemptPlaceShip(host.Uuid(), ShipSubmarine, horizontalCoords(0, 0, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := game.AttemptPlaceShip(join.Uuid(), ShipSubmarine, horizontalCoords(5, 5, 2)); err != nil {
		t.Fatal(err)
	}

	if cfg.MineCount > 0 {
		if _, err := game.AttemptPlaceMine(host.Uuid(), NewCoord(9, 9)); err != nil {
			t.Fatal(err)
		}
		if _, err := game.AttemptPlaceMine(join.Uuid(), NewCoord(9, 0)); err != nil {
			t.Fatal(err)
		}
	}

	if err := game.FinalizePlacement(host.Uuid()); err != nil {
		t.Fatal(err)
	}
	if err := game.FinalizePlacement(join.Uuid()); err != nil {
		t.Fatal(err)
	}

	if game.Phase() != PhaseShooting {
		t.Fatalf("expected shooting phase, got %d", game.Phase())
	}
	return game, host, join
}

func singleSubConfig() GameConfig {
	cfg := NewDefaultGameConfig()
	cfg.Fleet = FleetSpec{ShipSubmarine: 1}
	return cfg
}

func TestFinalizePlacementIncomplete(t *testing.T) {
	gm := NewSeededGameManager(7)
	game := gm.CreateGame(singleSubConfig())
	host := game.CreateHostPlayer("host-session")
	game.CreateJoinPlayer("join-session")

	if err := game.FinalizePlacement(host.Uuid()); !errors.Is(err, cerr.ErrIncompletePlacement) {
		t.Fatalf("expected ErrIncompletePlacement, got %v", err)
	}
}

func TestFireShotPhaseAndTurnRules(t *testing.T) {
	game, host, join := newShootingGame(t, singleSubConfig())

	if game.ActivePlayer() != host {
		t.Fatal("host must start by configuration")
	}

	// Placement cannot recur once shooting started.
	if _, err := game.AttemptPlaceShip(host.Uuid(), ShipSubmarine, horizontalCoords(8, 0, 2)); !errors.Is(err, cerr.ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}

	// Join is not the active player.
	if _, err := game.FireShot(join.Uuid(), NewCoord(0, 0), 0); !errors.Is(err, cerr.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	// A hit keeps the host shooting.
	outcome, err := game.FireShot(host.Uuid(), NewCoord(5, 5), 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeHit {
		t.Fatalf("expected hit, got kind %d", outcome.Kind)
	}
	if game.ActivePlayer() != host {
		t.Fatal("hit must retain the turn")
	}

	// A miss passes the turn.
	if _, err := game.FireShot(host.Uuid(), NewCoord(9, 9), 0); err != nil {
		t.Fatal(err)
	}
	if game.ActivePlayer() != join {
		t.Fatal("miss must pass the turn")
	}

	if game.State().Turn != 2 {
		t.Fatalf("expected turn counter 2, got %d", game.State().Turn)
	}
}

func TestGameOverOnLastShipSunk(t *testing.T) {
	game, host, join := newShootingGame(t, singleSubConfig())

	if _, err := game.FireShot(host.Uuid(), NewCoord(5, 5), 0); err != nil {
		t.Fatal(err)
	}
	outcome, err := game.FireShot(host.Uuid(), NewCoord(5, 6), 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeHitAndSunk {
		t.Fatalf("expected hit-and-sunk, got kind %d", outcome.Kind)
	}

	if game.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got phase %d", game.Phase())
	}
	if game.Winner() != host {
		t.Fatal("host must be the winner")
	}
	if host.MatchStatus() != PlayerMatchStatusWon || join.MatchStatus() != PlayerMatchStatusLost {
		t.Fatal("match statuses not set")
	}

	// GameOver is terminal.
	if _, err := game.FireShot(host.Uuid(), NewCoord(0, 0), 0); !errors.Is(err, cerr.ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase after game over, got %v", err)
	}
}

func TestExtendedModeMineDestroysFiringShip(t *testing.T) {
	cfg := singleSubConfig()
	cfg.Mode = GameModeExtended
	cfg.MineCount = 1

	game, host, join := newShootingGame(t, cfg)

	hostShip := host.Defence().ships[1]

	// Host fires with its submarine selected and hits join's mine at
	// (9,0): the submarine detonates. It was the host's only ship, so
	// join wins on the spot.
	outcome, err := game.FireShot(host.Uuid(), NewCoord(9, 0), hostShip.Id)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeMineTriggered {
		t.Fatalf("expected mine trigger, got kind %d", outcome.Kind)
	}
	if !hostShip.IsSunk() {
		t.Fatal("firing ship must be destroyed by the mine")
	}

	// Join's view learned the destroyed ship.
	state, _ := join.Tracking().StateAt(NewCoord(0, 0))
	if state != CellSunk {
		t.Fatalf("join view: expected CellSunk at (0,0), got %d", state)
	}
	if len(join.Tracking().RemainingShipLengths()) != 0 {
		t.Fatal("join view must drop the destroyed ship from the roster")
	}

	if game.Phase() != PhaseGameOver || game.Winner() != join {
		t.Fatal("join must win after the host fleet detonates")
	}
}

func TestStandardModeMineDoesNotDestroyFiringShip(t *testing.T) {
	cfg := singleSubConfig()
	cfg.MineCount = 1

	game, host, _ := newShootingGame(t, cfg)
	hostShip := host.Defence().ships[1]

	outcome, err := game.FireShot(host.Uuid(), NewCoord(9, 0), hostShip.Id)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeMineTriggered {
		t.Fatalf("expected mine trigger, got kind %d", outcome.Kind)
	}
	if hostShip.IsSunk() {
		t.Fatal("standard mode must not destroy the firing ship")
	}
	if game.Phase() != PhaseShooting {
		t.Fatal("game must continue")
	}
}

func TestAutoPlaceFleetMeetsQuotas(t *testing.T) {
	cfg := NewDefaultGameConfig()
	cfg.MineCount = 2

	gm := NewSeededGameManager(42)
	game := gm.CreateGame(cfg)
	host := game.CreateHostPlayer("host-session")

	if err := game.AutoPlaceFleet(host.Uuid()); err != nil {
		t.Fatal(err)
	}
	if !host.Defence().PlacementComplete() {
		t.Fatal("auto placement must satisfy all quotas")
	}

	// Adjacency invariant across all placed ships.
	for id, ship := range host.Defence().ships {
		for _, c := range ship.Coords() {
			for _, n := range host.Defence().Neighbors(c) {
				cell, _ := host.Defence().CellAt(n)
				if cell.State == CellShip && cell.ShipId != id {
					t.Fatalf("ships %d and %d touch at %+v", id, cell.ShipId, n)
				}
			}
		}
	}
}

func TestRematchResetsMatchState(t *testing.T) {
	game, host, join := newShootingGame(t, singleSubConfig())

	if _, err := game.FireShot(host.Uuid(), NewCoord(5, 5), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := game.FireShot(host.Uuid(), NewCoord(5, 6), 0); err != nil {
		t.Fatal(err)
	}

	game.ResetForRematch()

	if game.Phase() != PhasePlacement {
		t.Fatalf("expected placement phase after rematch, got %d", game.Phase())
	}
	if game.Winner() != nil {
		t.Fatal("winner must be cleared")
	}
	if host.IsReady() || join.IsReady() {
		t.Fatal("players must not be ready after rematch")
	}
	if host.MatchStatus() != PlayerMatchStatusUndefined {
		t.Fatal("match status must reset")
	}

	cell, err := join.Defence().CellAt(NewCoord(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if cell.State != CellEmpty {
		t.Fatal("grids must be fresh after rematch")
	}
}
