package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/navalclash/navalclash-backend/db/sqlc"
	mb "github.com/navalclash/navalclash-backend/models/battleship"
	mc "github.com/navalclash/navalclash-backend/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: time.Second * 5,
	ReadBufferSize:   2048,
	WriteBufferSize:  2048,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// RequestProcessor owns one websocket session loop per client and
// translates signal codes into game operations.
type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	baseCfg        mb.GameConfig
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
	baseCfg mb.GameConfig,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
		baseCfg:        baseCfg,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

// Analytics rows are keyed by the server ip so multiple instances can
// share one table.
func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	panic("ipnet could not be found")
}

func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			log.Println(err)
		}
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	var (
		sessionGame   *mb.Game
		sessionPlayer *mb.Player

		receiverSessionId string
		sessionId         = session.Id()
	)

	defer func() {
		if sessionGame != nil {
			rp.gameManager.TerminateGame(sessionGame.Uuid())
		}
		if session != nil && session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Retries and the reconnection grace period are already
			// spent by the time this is non-nil.
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		case mc.CodeCreateGame:
			ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
			if err := rp.q.AnalyticsIncrementGamesCreatedCount(ctx, serverPqtypeInet); err != nil {
				// Analytics never kills the game.
				log.Println(err)
			}
			cancel()

			game, hostPlayer, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager, rp.baseCfg, sessionId)
			sessionGame = game
			sessionPlayer = hostPlayer
			rp.sessionManager.SetSessionGame(session, game)
			rp.sessionManager.SetSessionPlayer(session, hostPlayer)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeJoinGame:
			game, joinPlayer, respMsg := NewRequest(payload).HandleJoinPlayer(rp.gameManager, sessionId)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				break sessionLoop
			}

			sessionGame = game
			sessionPlayer = joinPlayer
			rp.sessionManager.SetSessionGame(session, game)
			rp.sessionManager.SetSessionPlayer(session, joinPlayer)
			receiverSessionId = rp.otherSessionId(sessionGame, sessionPlayer)

			readyMsg := mc.NewMessage[mc.NoPayload](mc.CodeSelectFleet)
			if err := rp.sessionManager.WriteToSessionConn(session, readyMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if receiverSessionId != "" {
				if err := rp.sessionManager.Communicate(receiverSessionId, readyMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodePlaceShip:
			respMsg := NewRequest(payload).HandlePlaceShip(sessionGame, sessionPlayer)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceMine:
			respMsg := NewRequest(payload).HandlePlaceMine(sessionGame, sessionPlayer)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAutoPlace:
			respMsg := NewRequest(payload).HandleAutoPlace(sessionGame, sessionPlayer)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeReady:
			respMsg := NewRequest(payload).HandleReady(sessionGame, sessionPlayer)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if receiverSessionId == "" {
				receiverSessionId = rp.otherSessionId(sessionGame, sessionPlayer)
			}

			if sessionGame.IsReadyToStart() {
				respStartGame := mc.NewMessage[mc.RespStartGame](mc.CodeStartGame)
				respStartGame.AddPayload(mc.RespStartGame{ActivePlayerUuid: sessionGame.State().ActivePlayerUuid})

				if err := rp.sessionManager.WriteToSessionConn(session, respStartGame, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
				if receiverSessionId != "" {
					if err := rp.sessionManager.Communicate(receiverSessionId, respStartGame, mc.MessageTypeJSON); err != nil {
						break sessionLoop
					}
				}

				// Against the computer the opening move may belong to
				// the machine.
				if err := rp.driveAiTurns(session, sessionGame, sessionPlayer); err != nil {
					break sessionLoop
				}
				if rp.notifyGameOver(session, receiverSessionId, sessionGame, sessionPlayer, serverPqtypeInet) != nil {
					break sessionLoop
				}
			}

		case mc.CodeAttack:
			respMsg := NewRequest(payload).HandleAttack(sessionGame, sessionPlayer)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
			if err := rp.q.AnalyticsIncrementShotsFiredCount(ctx, serverPqtypeInet); err != nil {
				log.Println(err)
			}
			cancel()

			if receiverSessionId == "" {
				receiverSessionId = rp.otherSessionId(sessionGame, sessionPlayer)
			}
			if receiverSessionId != "" {
				// The defender learns the shot with the turn flag from
				// its own perspective.
				defenderMsg := respMsg
				defenderMsg.Payload.IsTurn = !respMsg.Payload.IsTurn && sessionGame.Phase() == mb.PhaseShooting
				if err := rp.sessionManager.Communicate(receiverSessionId, defenderMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

			if err := rp.driveAiTurns(session, sessionGame, sessionPlayer); err != nil {
				break sessionLoop
			}
			if rp.notifyGameOver(session, receiverSessionId, sessionGame, sessionPlayer, serverPqtypeInet) != nil {
				break sessionLoop
			}

		case mc.CodeRematchCall:
			ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
			if err := rp.q.AnalyticsIncrementRematchCalledCount(ctx, serverPqtypeInet); err != nil {
				log.Println(err)
			}
			cancel()

			if sessionGame == nil || sessionGame.Phase() != mb.PhaseGameOver {
				continue sessionLoop
			}

			other := sessionGame.GetOtherPlayer(sessionPlayer)
			if other != nil && other.IsAi() {
				// No one to ask; restart right away.
				sessionGame.ResetForRematch()
				if err := rp.restartAiPlacement(sessionGame, other); err != nil {
					break sessionLoop
				}
				msg := mc.NewMessage[mc.NoPayload](mc.CodeRematch)
				if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			msg := mc.NewMessage[mc.NoPayload](mc.CodeRematchCall)
			if err := rp.sessionManager.Communicate(receiverSessionId, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRematchCallAccepted:
			if sessionGame == nil || sessionGame.Phase() != mb.PhaseGameOver {
				continue sessionLoop
			}
			sessionGame.ResetForRematch()

			msg := mc.NewMessage[mc.NoPayload](mc.CodeRematch)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if err := rp.sessionManager.Communicate(receiverSessionId, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRematchCallRejected:
			msg := mc.NewMessage[mc.NoPayload](mc.CodeRematchCallRejected)
			rp.sessionManager.Communicate(receiverSessionId, msg, mc.MessageTypeJSON)
			break sessionLoop

		case mc.CodeEndGame:
			break sessionLoop

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp *RequestProcessor) otherSessionId(game *mb.Game, player *mb.Player) string {
	if game == nil || player == nil {
		return ""
	}
	other := game.GetOtherPlayer(player)
	if other == nil || other.IsAi() {
		return ""
	}
	return other.SessionId()
}

// driveAiTurns fires computer shots until the turn comes back to the
// human or the match ends, pushing each outcome to the human session.
func (rp *RequestProcessor) driveAiTurns(session *mc.Session, game *mb.Game, human *mb.Player) error {
	if game == nil || human == nil {
		return nil
	}
	aiPlayer := game.GetOtherPlayer(human)
	if aiPlayer == nil || !aiPlayer.IsAi() {
		return nil
	}

	for game.Phase() == mb.PhaseShooting && game.ActivePlayer() == aiPlayer {
		target, err := game.AiSelectTarget(aiPlayer.Uuid())
		if err != nil {
			// A selector error means the board state is corrupt; the
			// match cannot continue.
			log.Println("ai target selection failed:", err)
			return err
		}

		outcome, err := game.FireShot(aiPlayer.Uuid(), target, game.AiFiringShipId(aiPlayer.Uuid()))
		if err != nil {
			log.Println("ai shot failed:", err)
			return err
		}

		msg := mc.NewMessage[mc.RespAiShot](mc.CodeAiShot)
		msg.AddPayload(mc.RespAiShot{Outcome: outcome, State: game.State()})
		if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
			return err
		}
	}
	return nil
}

// notifyGameOver tells both sides the result once the game reaches its
// terminal phase.
func (rp *RequestProcessor) notifyGameOver(session *mc.Session, receiverSessionId string, game *mb.Game, player *mb.Player, serverPqtypeInet pqtype.Inet) error {
	if game == nil || game.Phase() != mb.PhaseGameOver {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	if err := rp.q.AnalyticsIncrementMatchesFinishedCount(ctx, serverPqtypeInet); err != nil {
		log.Println(err)
	}
	cancel()

	winnerUuid := game.State().WinnerUuid

	respPlayer := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	respPlayer.AddPayload(mc.RespEndGame{PlayerMatchStatus: player.MatchStatus(), WinnerUuid: winnerUuid})
	if err := rp.sessionManager.WriteToSessionConn(session, respPlayer, mc.MessageTypeJSON); err != nil {
		return err
	}

	if receiverSessionId != "" {
		other := game.GetOtherPlayer(player)
		respOther := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
		respOther.AddPayload(mc.RespEndGame{PlayerMatchStatus: other.MatchStatus(), WinnerUuid: winnerUuid})
		if err := rp.sessionManager.Communicate(receiverSessionId, respOther, mc.MessageTypeJSON); err != nil {
			return err
		}
	}
	return nil
}

// restartAiPlacement re-seats the computer fleet after a rematch reset.
func (rp *RequestProcessor) restartAiPlacement(game *mb.Game, aiPlayer *mb.Player) error {
	if err := game.AutoPlaceFleet(aiPlayer.Uuid()); err != nil {
		return err
	}
	return game.FinalizePlacement(aiPlayer.Uuid())
}
