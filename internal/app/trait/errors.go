package trait

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest    = errors.New("invalid action request")
	ErrNotRouted         = errors.New("action type not routed")
	ErrNotFound          = errors.New("entity not found")
	ErrForbidden         = errors.New("user not seated in game")
	ErrWrongPhase        = errors.New("wrong game phase")
	ErrOutOfTurn         = errors.New("not player's turn")
	ErrCooldownActive    = errors.New("cooldown active")
	ErrInvalidTarget     = errors.New("invalid target")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrNotImplemented    = errors.New("target type not implemented")
)

// ActionCheckError is the single rejection kind every precondition failure
// raises. Kind is one of the sentinels above so callers branch with
// errors.Is instead of parsing text; Origin identifies the handler and game,
// e.g. "traitActivateRequest@Game(g-1)".
type ActionCheckError struct {
	Origin  string
	Kind    error
	Message string
}

func (e *ActionCheckError) Error() string {
	return e.Origin + ": " + e.Message
}

func (e *ActionCheckError) Unwrap() error {
	return e.Kind
}

func checkError(kind error, origin, format string, args ...any) *ActionCheckError {
	return &ActionCheckError{Origin: origin, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindLabel names the error kind for metrics and wire payloads.
func KindLabel(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrWrongPhase):
		return "wrong_phase"
	case errors.Is(err, ErrOutOfTurn):
		return "out_of_turn"
	case errors.Is(err, ErrCooldownActive):
		return "cooldown_active"
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, ErrResourceExhausted):
		return "resource_exhausted"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "internal"
	}
}
