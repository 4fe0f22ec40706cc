// Package ws is the realtime transport. The hub owns every live session and
// is the process-wide ordering authority for request actions: submissions
// for one game are serialized no matter which connection they came in on.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"primordia/internal/app/ports"
	"primordia/internal/app/round"
	"primordia/internal/app/shared/wire"
	"primordia/internal/app/trait"
)

type Hub struct {
	Traits trait.UseCase
	Rounds round.UseCase
	Logger *slog.Logger

	mu       sync.Mutex
	lanes    map[string]*sync.Mutex
	sessions map[string]map[string]*Session
}

// NewHub builds an empty hub. Traits and Rounds are assigned after
// construction because the usecases broadcast through the hub itself.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Logger:   logger,
		lanes:    map[string]*sync.Mutex{},
		sessions: map[string]map[string]*Session{},
	}
}

var _ ports.ActionGateway = (*Hub)(nil)
var _ ports.Broadcaster = (*Hub)(nil)

// Submit routes one request action. The per-game lane lock holds for the
// whole usecase call, so two submissions for the same game can never
// interleave their load, validate and persist steps.
func (h *Hub) Submit(ctx context.Context, userID string, action wire.Action) (ports.ActionOutcome, error) {
	gameID, err := gameIDOf(action)
	if err != nil {
		return ports.ActionOutcome{}, err
	}

	lane := h.lane(gameID)
	lane.Lock()
	defer lane.Unlock()

	if action.Type == wire.TypeGameEndTurnRequest {
		resp, err := h.Rounds.Execute(ctx, round.Request{UserID: userID, GameID: gameID})
		if err != nil {
			return ports.ActionOutcome{}, err
		}
		return ports.ActionOutcome{Game: resp.Game, Broadcasts: []wire.Action{resp.Broadcast}}, nil
	}

	resp, err := h.Traits.Execute(ctx, trait.Request{UserID: userID, Action: action})
	if err != nil {
		return ports.ActionOutcome{}, err
	}
	return ports.ActionOutcome{Game: resp.Game, Broadcasts: resp.Broadcasts}, nil
}

// Publish fans a confirmed action out to every live session of the listed
// users. Users without a session are skipped; they catch up from the action
// log on reconnect.
func (h *Hub) Publish(ctx context.Context, users []string, action wire.Action) error {
	payload, err := json.Marshal(action)
	if err != nil {
		return err
	}

	h.mu.Lock()
	var targets []*Session
	for _, userID := range users {
		for _, s := range h.sessions[userID] {
			targets = append(targets, s)
		}
	}
	h.mu.Unlock()

	for _, s := range targets {
		s.Enqueue(payload)
	}
	return nil
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	byID, ok := h.sessions[s.UserID]
	if !ok {
		byID = map[string]*Session{}
		h.sessions[s.UserID] = byID
	}
	byID[s.ID] = s
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	byID := h.sessions[s.UserID]
	delete(byID, s.ID)
	if len(byID) == 0 {
		delete(h.sessions, s.UserID)
	}
}

func (h *Hub) lane(gameID string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	lane, ok := h.lanes[gameID]
	if !ok {
		lane = &sync.Mutex{}
		h.lanes[gameID] = lane
	}
	return lane
}

func gameIDOf(action wire.Action) (string, error) {
	var ref struct {
		GameID string `json:"gameId"`
	}
	if err := json.Unmarshal(action.Data, &ref); err != nil {
		return "", fmt.Errorf("%w: malformed action data", trait.ErrInvalidRequest)
	}
	if ref.GameID == "" {
		return "", fmt.Errorf("%w: missing gameId", trait.ErrInvalidRequest)
	}
	return ref.GameID, nil
}
