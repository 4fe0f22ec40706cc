// Package wire defines the action record shape shared by both directions of
// the client/server boundary and the payloads the trait engine puts on it.
package wire

import "encoding/json"

// Request action types (client to server).
const (
	TypeTraitTakeFoodRequest = "traitTakeFoodRequest"
	TypeTraitActivateRequest = "traitActivateRequest"
	TypeGameEndTurnRequest   = "gameEndTurnRequest"
)

// Confirmed action types (server to client).
const (
	TypeGameNextPlayer = "gameNextPlayer"
	TypeRequestError   = "requestError"
)

type Meta struct {
	// Server marks a request action for server-side routing.
	Server bool `json:"server,omitempty"`
	// ClientOnly suppresses re-validation of a composite batch by the very
	// process that produced it.
	ClientOnly bool `json:"clientOnly,omitempty"`
	// Users is the exact recipient set of a confirmed action.
	Users []string `json:"users,omitempty"`
}

// Action is the wire format for every dispatched record, both requests and
// confirmed effects.
type Action struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta,omitempty"`
}

// NewAction marshals data into an action record. Marshal failures are
// returned, not swallowed; the engine's payload types never produce one.
func NewAction(actionType string, data any, meta *Meta) (Action, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Action{}, err
	}
	return Action{Type: actionType, Data: raw, Meta: meta}, nil
}

type TakeFoodRequestData struct {
	GameID   string `json:"gameId"`
	AnimalID string `json:"animalId"`
}

type ActivateRequestData struct {
	GameID    string `json:"gameId"`
	AnimalID  string `json:"animalId"`
	TraitType string `json:"traitType"`
	TargetID  string `json:"targetId,omitempty"`
}

type EndTurnRequestData struct {
	GameID string `json:"gameId"`
}

type MoveFoodData struct {
	GameID     string `json:"gameId"`
	AnimalID   string `json:"animalId"`
	Amount     int    `json:"amount"`
	SourceType string `json:"sourceType"`
	SourceID   string `json:"sourceId,omitempty"`
}

type KillAnimalData struct {
	GameID         string `json:"gameId"`
	SourcePlayerID string `json:"sourcePlayerId"`
	SourceAnimalID string `json:"sourceAnimalId"`
	TargetPlayerID string `json:"targetPlayerId"`
	TargetAnimalID string `json:"targetAnimalId"`
}

type StartCooldownData struct {
	GameID   string `json:"gameId"`
	Link     string `json:"link"`
	Duration int    `json:"duration"`
	Place    string `json:"place"`
	PlaceID  string `json:"placeId"`
}

type ExecuteFeedingData struct {
	GameID      string   `json:"gameId"`
	ActionsList []Action `json:"actionsList"`
}

type NextPlayerData struct {
	GameID string `json:"gameId"`
	UserID string `json:"userId"`
	Round  int    `json:"round"`
}

type RequestErrorData struct {
	RequestType string `json:"requestType"`
	Origin      string `json:"origin,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Message     string `json:"message"`
}
