package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame
	CodeJoinGame

	// Server tells both clients to start placing their fleets.
	CodeSelectFleet

	CodePlaceShip
	CodePlaceMine
	CodeAutoPlace
	CodeReady
	CodeStartGame
	CodeAttack

	// Server-pushed shot of a computer opponent.
	CodeAiShot

	CodeEndGame
	CodeInvalidSignal

	// The incoming request payload carried no "code" field.
	CodeSignalAbsent

	CodeOtherPlayerDisconnected
	CodeOtherPlayerReconnected
	CodeOtherPlayerGracePeriod

	CodeRematchCall
	CodeRematchCallAccepted
	CodeRematchCallRejected
	CodeRematch
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
