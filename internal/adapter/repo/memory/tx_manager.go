package memory

import "context"

// TxManager satisfies the port without transactional semantics; the memory
// store relies on per-game serialization for consistency.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
