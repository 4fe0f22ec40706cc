package ports

import "errors"

// Repository errors. ErrConflict is how optimistic versioning surfaces a
// lost race on a game snapshot; the engine rejects the submission rather
// than retrying it.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
