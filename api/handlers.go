package api

import (
	"encoding/json"
	"fmt"
	"log"

	mb "github.com/navalclash/navalclash-backend/models/battleship"
	mc "github.com/navalclash/navalclash-backend/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager, baseCfg mb.GameConfig, sessionId string) (*mb.Game, *mb.Player, mc.Message[mc.RespCreateGame])
	HandleJoinPlayer(gameManager mb.GameManager, sessionId string) (*mb.Game, *mb.Player, mc.Message[mc.RespJoinGame])
	HandlePlaceShip(game *mb.Game, player *mb.Player) mc.Message[mc.RespPlaceShip]
	HandlePlaceMine(game *mb.Game, player *mb.Player) mc.Message[mc.RespPlaceMine]
	HandleAutoPlace(game *mb.Game, player *mb.Player) mc.Message[mc.NoPayload]
	HandleReady(game *mb.Game, player *mb.Player) mc.Message[mc.NoPayload]
	HandleAttack(game *mb.Game, player *mb.Player) mc.Message[mc.RespAttack]
}

// Request wraps one incoming frame. Each handler unmarshals the
// payload it expects and answers with a ready-to-send message; game
// rule decisions stay inside the battleship package.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	req := Request{}
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return nil
	}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return &req
}

func (r *Request) HandleCreateGame(gameManager mb.GameManager, baseCfg mb.GameConfig, sessionId string) (*mb.Game, *mb.Player, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), "failed to create game")
		return nil, nil, resp
	}

	cfg := baseCfg
	cfg.Mode = reqCreateGame.Payload.GameMode
	cfg.MineCount = reqCreateGame.Payload.MineCount
	cfg.StartingPlayer = reqCreateGame.Payload.StartingPlayer
	if gridSize := reqCreateGame.Payload.GridSize; gridSize != 0 {
		// Client input; an unchecked size would reach the grid
		// allocation.
		if gridSize < 1 || gridSize > mb.MaxGridSize {
			resp.AddError(fmt.Sprintf("grid size must be between 1 and %d, got %d", mb.MaxGridSize, gridSize), "failed to create game")
			return nil, nil, resp
		}
		cfg.GridSize = gridSize
	}

	game := gameManager.CreateGame(cfg)
	hostPlayer := game.CreateHostPlayer(sessionId)

	if reqCreateGame.Payload.VsAi {
		aiPlayer, err := game.CreateAiPlayer(reqCreateGame.Payload.AiDifficulty)
		if err != nil {
			gameManager.TerminateGame(game.Uuid())
			resp.AddError(err.Error(), "failed to create ai opponent")
			return nil, nil, resp
		}

		// The computer sets up its fleet right away; it is ready
		// before the human places the first ship.
		if err := game.AutoPlaceFleet(aiPlayer.Uuid()); err != nil {
			gameManager.TerminateGame(game.Uuid())
			resp.AddError(err.Error(), "failed to place ai fleet")
			return nil, nil, resp
		}
		if err := game.FinalizePlacement(aiPlayer.Uuid()); err != nil {
			gameManager.TerminateGame(game.Uuid())
			resp.AddError(err.Error(), "failed to finalize ai fleet")
			return nil, nil, resp
		}
	}

	resp.AddPayload(mc.RespCreateGame{GameUuid: game.Uuid(), HostUuid: hostPlayer.Uuid()})
	return game, hostPlayer, resp
}

func (r *Request) HandleJoinPlayer(gameManager mb.GameManager, sessionId string) (*mb.Game, *mb.Player, mc.Message[mc.RespJoinGame]) {
	resp := mc.NewMessage[mc.RespJoinGame](mc.CodeJoinGame)

	var reqJoinGame mc.Message[mc.ReqJoinGame]
	if err := json.Unmarshal(r.payload, &reqJoinGame); err != nil {
		resp.AddError(err.Error(), "failed to join game")
		return nil, nil, resp
	}

	game, err := gameManager.FetchGame(reqJoinGame.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "failed to join game")
		return nil, nil, resp
	}
	if game.FetchPlayer(false) != nil {
		resp.AddError("game is full", "failed to join game")
		return nil, nil, resp
	}

	joinPlayer := game.CreateJoinPlayer(sessionId)
	resp.AddPayload(mc.RespJoinGame{GameUuid: game.Uuid(), PlayerUuid: joinPlayer.Uuid()})
	return game, joinPlayer, resp
}

func (r *Request) HandlePlaceShip(game *mb.Game, player *mb.Player) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var reqPlaceShip mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqPlaceShip); err != nil {
		resp.AddError(err.Error(), "failed to place ship")
		return resp
	}
	if game == nil || player == nil {
		resp.AddError("no game in this session", "failed to place ship")
		return resp
	}

	ship, err := game.AttemptPlaceShip(player.Uuid(), mb.ShipKind(reqPlaceShip.Payload.ShipKind), reqPlaceShip.Payload.Coords)
	if err != nil {
		resp.AddError(err.Error(), "placement rejected")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{ShipId: ship.Id, Coords: ship.Coords()})
	return resp
}

func (r *Request) HandlePlaceMine(game *mb.Game, player *mb.Player) mc.Message[mc.RespPlaceMine] {
	resp := mc.NewMessage[mc.RespPlaceMine](mc.CodePlaceMine)

	var reqPlaceMine mc.Message[mc.ReqPlaceMine]
	if err := json.Unmarshal(r.payload, &reqPlaceMine); err != nil {
		resp.AddError(err.Error(), "failed to place mine")
		return resp
	}
	if game == nil || player == nil {
		resp.AddError("no game in this session", "failed to place mine")
		return resp
	}

	mine, err := game.AttemptPlaceMine(player.Uuid(), reqPlaceMine.Payload.Coord)
	if err != nil {
		resp.AddError(err.Error(), "placement rejected")
		return resp
	}

	resp.AddPayload(mc.RespPlaceMine{MineId: mine.Id, Coord: mine.Coord})
	return resp
}

func (r *Request) HandleAutoPlace(game *mb.Game, player *mb.Player) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodeAutoPlace)

	var reqAutoPlace mc.Message[mc.ReqAutoPlace]
	if err := json.Unmarshal(r.payload, &reqAutoPlace); err != nil {
		resp.AddError(err.Error(), "failed to auto place")
		return resp
	}
	if game == nil || player == nil {
		resp.AddError("no game in this session", "failed to auto place")
		return resp
	}
	if err := game.AutoPlaceFleet(player.Uuid()); err != nil {
		resp.AddError(err.Error(), "failed to auto place")
	}
	return resp
}

func (r *Request) HandleReady(game *mb.Game, player *mb.Player) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodeReady)

	var reqReady mc.Message[mc.ReqReady]
	if err := json.Unmarshal(r.payload, &reqReady); err != nil {
		resp.AddError(err.Error(), "failed to ready up")
		return resp
	}
	if game == nil || player == nil {
		resp.AddError("no game in this session", "failed to ready up")
		return resp
	}
	if err := game.FinalizePlacement(player.Uuid()); err != nil {
		resp.AddError(err.Error(), "failed to ready up")
	}
	return resp
}

func (r *Request) HandleAttack(game *mb.Game, player *mb.Player) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	var reqAttack mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &reqAttack); err != nil {
		resp.AddError(err.Error(), "failed to attack")
		return resp
	}
	if game == nil || player == nil {
		resp.AddError("no game in this session", "failed to attack")
		return resp
	}

	outcome, err := game.FireShot(player.Uuid(), reqAttack.Payload.Coord, reqAttack.Payload.FiringShipId)
	if err != nil {
		resp.AddError(err.Error(), "attack rejected")
		return resp
	}

	resp.AddPayload(mc.RespAttack{
		Outcome: outcome,
		IsTurn:  outcome.RetainsTurn() && game.Phase() == mb.PhaseShooting,
		State:   game.State(),
	})
	return resp
}
