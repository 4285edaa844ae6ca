package connection

import (
	mb "github.com/navalclash/navalclash-backend/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
	HostUuid string `json:"host_uuid"`
}

type RespJoinGame struct {
	GameUuid   string `json:"game_uuid"`
	PlayerUuid string `json:"player_uuid"`
}

type RespPlaceShip struct {
	ShipId int        `json:"ship_id"`
	Coords []mb.Coord `json:"coords"`
}

type RespPlaceMine struct {
	MineId int      `json:"mine_id"`
	Coord  mb.Coord `json:"coord"`
}

type RespStartGame struct {
	ActivePlayerUuid string `json:"active_player_uuid"`
}

type RespAttack struct {
	Outcome mb.ShotOutcome `json:"outcome"`
	IsTurn  bool           `json:"is_turn"`
	State   mb.GameState   `json:"state"`
}

type RespAiShot struct {
	Outcome mb.ShotOutcome `json:"outcome"`
	State   mb.GameState   `json:"state"`
}

type RespEndGame struct {
	PlayerMatchStatus int    `json:"player_match_status"`
	WinnerUuid        string `json:"winner_uuid"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
