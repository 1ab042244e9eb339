package ports

import (
	"context"
	"errors"

	"farmstead/internal/domain/farm"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// TxManager scopes a unit of work. The memory implementation also
// serialises every farm read and write through it.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// FarmRepository holds live farms by value. Get hands out a working copy;
// changes become visible only through Save.
type FarmRepository interface {
	Create(ctx context.Context, farmID string, model *farm.Model) error
	Get(ctx context.Context, farmID string) (*farm.Model, error)
	Save(ctx context.Context, farmID string, model *farm.Model) error
	Delete(ctx context.Context, farmID string) error
}

type EventRepository interface {
	Append(ctx context.Context, farmID string, events []farm.Event) error
	ListByFarmID(ctx context.Context, farmID string, limit int) ([]farm.Event, error)
}

type MapProvider interface {
	Map(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}
