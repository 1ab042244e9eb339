package memory

import (
	"context"

	"farmstead/internal/app/ports"
)

// TxManager serialises units of work on the store. When Next is set the
// work also runs inside Next's transaction. Farm changes reach the store
// only through FarmRepo.Save, so use cases save after the journal write.
type TxManager struct {
	store *Store
	Next  ports.TxManager
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.Next != nil {
		return t.Next.RunInTx(ctx, fn)
	}
	return fn(ctx)
}
