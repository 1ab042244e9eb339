package memory

import (
	"sync"

	"farmstead/internal/domain/farm"
)

// Store keeps farms and their journals in process memory. Farm models are
// guarded by mu, which TxManager holds for the whole unit of work, so repo
// methods touching farms must run inside RunInTx. The journal has its own
// lock and may be read outside a transaction.
type Store struct {
	mu    sync.RWMutex
	farms map[string]*farm.Model

	eventsMu sync.RWMutex
	events   map[string][]farm.Event
}

func NewStore() *Store {
	return &Store{
		farms:  make(map[string]*farm.Model),
		events: make(map[string][]farm.Event),
	}
}

func (s *Store) SeedFarm(farmID string, m *farm.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms[farmID] = m
}

func (s *Store) FarmIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.farms))
	for id := range s.farms {
		out = append(out, id)
	}
	return out
}
