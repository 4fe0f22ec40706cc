package ports

import "context"

// TxManager scopes one action submission to a transaction: the validate,
// apply and persist steps either all commit or leave the snapshot untouched.
// The memory adapter degrades this to a plain call, relying on the gateway's
// per-game serialization instead.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
