package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
	mb "github.com/navalclash/navalclash-backend/models/battleship"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	Communicate(receiverSessionId string, msg interface{}, msgType uint8) error
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)

	GetSessionGame(session *Session) *mb.Game
	GetSessionPlayer(session *Session) *mb.Player
	SetSessionGame(session *Session, game *mb.Game)
	SetSessionPlayer(session *Session, player *mb.Player)
}

type NavalSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex

	// game/player attachments live here rather than on the session
	// so only the manager mediates between plumbing and match state.
	games   map[*Session]*mb.Game
	players map[*Session]*mb.Player
}

var _ SessionManager = (*NavalSessionManager)(nil)

func NewNavalSessionManager() *NavalSessionManager {
	initMapSize := 10

	return &NavalSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		games:           make(map[*Session]*mb.Game, initMapSize),
		players:         make(map[*Session]*mb.Player, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

func (nsm *NavalSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	nsm.mu.Lock()
	nsm.sessions[sessionId] = session
	nsm.mu.Unlock()

	return session
}

func (nsm *NavalSessionManager) FindSession(sessionId string) (*Session, error) {
	nsm.mu.RLock()
	defer nsm.mu.RUnlock()

	session, prs := nsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}
	return session, nil
}

func (nsm *NavalSessionManager) TerminateSession(sessionId string) {
	nsm.mu.Lock()
	if session, prs := nsm.sessions[sessionId]; prs {
		delete(nsm.games, session)
		delete(nsm.players, session)
	}
	delete(nsm.sessions, sessionId)
	nsm.mu.Unlock()
}

func (nsm *NavalSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := nsm.FindSession(sessionId)
	if err != nil {
		return err
	}
	session.reconnectionAfterAbnormalClosure(conn)
	return nil
}

func (nsm *NavalSessionManager) GetSessionGame(session *Session) *mb.Game {
	nsm.mu.RLock()
	defer nsm.mu.RUnlock()
	return nsm.games[session]
}

func (nsm *NavalSessionManager) SetSessionGame(session *Session, game *mb.Game) {
	nsm.mu.Lock()
	nsm.games[session] = game
	nsm.mu.Unlock()
}

func (nsm *NavalSessionManager) GetSessionPlayer(session *Session) *mb.Player {
	nsm.mu.RLock()
	defer nsm.mu.RUnlock()
	return nsm.players[session]
}

func (nsm *NavalSessionManager) SetSessionPlayer(session *Session, player *mb.Player) {
	nsm.mu.Lock()
	nsm.players[session] = player
	nsm.mu.Unlock()
}

// Communicate sends msg to another session's connection.
func (nsm *NavalSessionManager) Communicate(receiverSessionId string, msg interface{}, msgType uint8) error {
	receiverSession, err := nsm.FindSession(receiverSessionId)
	if err != nil {
		return err
	}
	return nsm.WriteToSessionConn(receiverSession, msg, msgType)
}

// Sessions older than the cleanup interval are assumed stale and
// dropped so dangling connections do not pile up.
func (nsm *NavalSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(nsm.cleanupInterval)

		nsm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)
		for id, session := range nsm.sessions {
			if time.Since(session.createdAt) > nsm.cleanupInterval {
				toDelete = append(toDelete, id)
			}
		}
		for _, id := range toDelete {
			session := nsm.sessions[id]
			delete(nsm.games, session)
			delete(nsm.players, session)
			delete(nsm.sessions, id)
			log.Printf("cleaned up stale session: %s", id)
		}
		nsm.mu.Unlock()
	}
}

// handleAbnormalClosure keeps the match alive for the grace period in
// case the disconnected client comes back.
func (nsm *NavalSessionManager) handleAbnormalClosure(s *Session) error {
	game := nsm.GetSessionGame(s)
	player := nsm.GetSessionPlayer(s)
	if game == nil || player == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("no game or player attached to session")
	}

	otherPlayer := game.GetOtherPlayer(player)
	if otherPlayer == nil || otherPlayer.IsAi() {
		// Nobody to notify; the session simply ends.
		return NewConnErr(ConnLoopBreak).AddDesc("no remote opponent for grace period")
	}

	otherSession, err := nsm.FindSession(otherPlayer.SessionId())
	if err != nil {
		return NewConnErr(ConnLoopBreak).AddDesc("opponent session gone")
	}

	if err := otherSession.writeToConnWithRetry(NewMessage[NoPayload](CodeOtherPlayerGracePeriod), MessageTypeJSON); err != nil {
		return err
	}

	timer := time.NewTimer(gracePeriod)
	select {
	case <-timer.C:
		if err := otherSession.writeToConnWithRetry(NewMessage[NoPayload](CodeOtherPlayerDisconnected), MessageTypeJSON); err != nil {
			return err
		}
		log.Printf("session terminated after grace period: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period over for session " + s.id)

	case <-s.reconnectionSignalChan:
		timer.Stop()
		if err := otherSession.writeToConnWithRetry(NewMessage[NoPayload](CodeOtherPlayerReconnected), MessageTypeJSON); err != nil {
			return err
		}
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (nsm *NavalSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		return err
	}

	switch connErr.Code() {
	case ConnLoopAbnormalClosureRetry:
		if err := nsm.handleAbnormalClosure(session); err != nil {
			return connErr
		}
		return nil

	default:
		return connErr
	}
}

func (nsm *NavalSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := nsm.handleAbnormalClosure(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}
