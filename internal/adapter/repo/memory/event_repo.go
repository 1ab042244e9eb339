package memory

import (
	"context"

	"farmstead/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, farmID string, events []farm.Event) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()
	r.store.events[farmID] = append(r.store.events[farmID], events...)
	return nil
}

// ListByFarmID returns the newest limit events oldest first. A limit of
// zero returns the whole journal.
func (r EventRepo) ListByFarmID(_ context.Context, farmID string, limit int) ([]farm.Event, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()
	all := r.store.events[farmID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	out := make([]farm.Event, limit)
	copy(out, all[len(all)-limit:])
	return out, nil
}
