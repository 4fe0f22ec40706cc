package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"primordia/internal/app/shared/wire"
	"primordia/internal/app/trait"
)

const sendBuffer = 32

type Session struct {
	ID     string
	UserID string

	hub    *Hub
	conn   *websocket.Conn
	out    chan []byte
	logger *slog.Logger
}

func newSession(hub *Hub, conn *websocket.Conn, userID string) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		UserID: userID,
		hub:    hub,
		conn:   conn,
		out:    make(chan []byte, sendBuffer),
		logger: hub.Logger.With("session_id", id, "user_id", userID),
	}
}

// Enqueue hands a payload to the write loop. A session that cannot keep up
// loses the message instead of blocking the broadcaster.
func (s *Session) Enqueue(payload []byte) {
	select {
	case s.out <- payload:
	default:
		s.logger.Warn("send buffer full, dropping message")
	}
}

// Run drives both loops until the connection dies, then unregisters.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.hub.register(s)
	defer s.hub.unregister(s)

	go s.writeLoop(ctx)
	s.readLoop(ctx)
}

func (s *Session) readLoop(ctx context.Context) {
	for {
		_, payload, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				s.logger.Debug("session closed")
			} else {
				s.logger.Debug("read failed", "err", err)
			}
			return
		}

		var action wire.Action
		if err := json.Unmarshal(payload, &action); err != nil {
			s.logger.Warn("malformed frame", "err", err)
			continue
		}
		// Requests carry meta.server; confirmed actions carry a recipient
		// set or the clientOnly mark instead. A confirmed action echoed
		// back by a client is ignored, not rejected.
		if action.Meta != nil && (action.Meta.ClientOnly || len(action.Meta.Users) > 0) {
			continue
		}

		if _, err := s.hub.Submit(ctx, s.UserID, action); err != nil {
			s.sendError(action.Type, err)
		}
	}
}

func (s *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-s.out:
			if err := s.conn.Write(ctx, websocket.MessageText, payload); err != nil {
				s.logger.Debug("write failed", "err", err)
				return
			}
		}
	}
}

// sendError reports a rejection to the requester only. Other room members
// never learn about failed attempts.
func (s *Session) sendError(requestType string, cause error) {
	data := wire.RequestErrorData{
		RequestType: requestType,
		Kind:        trait.KindLabel(cause),
		Message:     cause.Error(),
	}
	var checkErr *trait.ActionCheckError
	if errors.As(cause, &checkErr) {
		data.Origin = checkErr.Origin
		data.Message = checkErr.Message
	}

	action, err := wire.NewAction(wire.TypeRequestError, data, &wire.Meta{Users: []string{s.UserID}})
	if err != nil {
		return
	}
	payload, err := json.Marshal(action)
	if err != nil {
		return
	}
	s.Enqueue(payload)
}
