package connection

import (
	mb "github.com/navalclash/navalclash-backend/models/battleship"
)

type ReqCreateGame struct {
	GridSize       int   `json:"grid_size,omitempty"`
	GameMode       uint8 `json:"game_mode"`
	MineCount      int   `json:"mine_count"`
	StartingPlayer uint8 `json:"starting_player"`
	VsAi           bool  `json:"vs_ai"`
	AiDifficulty   uint8 `json:"ai_difficulty"`
}

type ReqJoinGame struct {
	GameUuid string `json:"game_uuid"`
}

type ReqPlaceShip struct {
	GameUuid   string     `json:"game_uuid"`
	PlayerUuid string     `json:"player_uuid"`
	ShipKind   uint8      `json:"ship_kind"`
	Coords     []mb.Coord `json:"coords"`
}

type ReqPlaceMine struct {
	GameUuid   string   `json:"game_uuid"`
	PlayerUuid string   `json:"player_uuid"`
	Coord      mb.Coord `json:"coord"`
}

type ReqAutoPlace struct {
	GameUuid   string `json:"game_uuid"`
	PlayerUuid string `json:"player_uuid"`
}

type ReqReady struct {
	GameUuid   string `json:"game_uuid"`
	PlayerUuid string `json:"player_uuid"`
}

type ReqAttack struct {
	GameUuid   string   `json:"game_uuid"`
	PlayerUuid string   `json:"player_uuid"`
	Coord      mb.Coord `json:"coord"`

	// Selected firing ship; only meaningful in extended mode.
	FiringShipId int `json:"firing_ship_id,omitempty"`
}
