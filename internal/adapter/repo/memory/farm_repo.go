package memory

import (
	"context"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

// FarmRepo stores private copies of farm models. Callers must hold the
// store lock through TxManager.RunInTx.
type FarmRepo struct {
	store *Store
}

func NewFarmRepo(store *Store) FarmRepo {
	return FarmRepo{store: store}
}

func (r FarmRepo) Create(_ context.Context, farmID string, m *farm.Model) error {
	if _, exists := r.store.farms[farmID]; exists {
		return ports.ErrConflict
	}
	r.store.farms[farmID] = m.Clone()
	return nil
}

func (r FarmRepo) Get(_ context.Context, farmID string) (*farm.Model, error) {
	m, ok := r.store.farms[farmID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return m.Clone(), nil
}

func (r FarmRepo) Save(_ context.Context, farmID string, m *farm.Model) error {
	if _, ok := r.store.farms[farmID]; !ok {
		return ports.ErrNotFound
	}
	r.store.farms[farmID] = m.Clone()
	return nil
}

func (r FarmRepo) Delete(_ context.Context, farmID string) error {
	if _, ok := r.store.farms[farmID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.farms, farmID)
	return nil
}
