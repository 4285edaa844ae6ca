package error

import (
	"errors"
	"fmt"
)

// Placement rejections. All of them are recoverable; the caller
// is expected to retry with a different placement.
var (
	ErrOutOfBounds        = errors.New("coordinate out of grid bounds")
	ErrOverlap            = errors.New("coordinate already occupied")
	ErrAdjacencyViolation = errors.New("ship adjacent to another ship")
	ErrInvalidShape       = errors.New("coordinates do not form a valid ship shape")
	ErrQuotaExhausted     = errors.New("no remaining quota for this entity type")
)

// Shooting phase errors.
var (
	ErrAlreadyShot = errors.New("cell was already fired at")
	ErrNotYourTurn = errors.New("not this player's turn")
)

// ErrInternalInconsistency signals a violated core invariant. It is
// fatal and must never be swallowed by a caller.
var ErrInternalInconsistency = errors.New("internal inconsistency")

var (
	ErrWrongPhase          = errors.New("operation not allowed in current phase")
	ErrIncompletePlacement = errors.New("placement quotas not met")
)

func ErrCoordOutOfBounds(row, col int) error {
	return fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
}

func ErrCoordOccupied(row, col int) error {
	return fmt.Errorf("%w: row %d, col %d", ErrOverlap, row, col)
}

func ErrShipTouchesShip(row, col int) error {
	return fmt.Errorf("%w: row %d, col %d", ErrAdjacencyViolation, row, col)
}

func ErrShapeNotStraightLine() error {
	return fmt.Errorf("%w: cells must form a contiguous straight line", ErrInvalidShape)
}

func ErrShapeWrongLength(kind string, want, got int) error {
	return fmt.Errorf("%w: %s needs %d cells, got %d", ErrInvalidShape, kind, want, got)
}

func ErrShipQuotaExhausted(kind string) error {
	return fmt.Errorf("%w: %s", ErrQuotaExhausted, kind)
}

func ErrMineQuotaExhausted() error {
	return fmt.Errorf("%w: mine", ErrQuotaExhausted)
}

func ErrCellAlreadyShot(row, col int) error {
	return fmt.Errorf("%w: row %d, col %d", ErrAlreadyShot, row, col)
}

func ErrNoLegalPlacement(shipLen int) error {
	return fmt.Errorf("%w: no legal placement left for ship of length %d", ErrInternalInconsistency, shipLen)
}

func ErrHitCellNotCoverable(row, col int) error {
	return fmt.Errorf("%w: hit cell at row %d, col %d cannot belong to any remaining ship", ErrInternalInconsistency, row, col)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrPlayerNotExist(playerUuid string) error {
	return fmt.Errorf("player with this uuid does not exist, uuid: %s", playerUuid)
}

func ErrInvalidAiDifficulty(difficulty uint8) error {
	return fmt.Errorf("invalid ai difficulty: %d", difficulty)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session not found, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}
