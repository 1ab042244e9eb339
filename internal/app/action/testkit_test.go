package action

import (
	"context"
	"strconv"
	"testing"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubFarmRepo struct {
	byID map[string]*farm.Model
}

func (r *stubFarmRepo) Create(_ context.Context, farmID string, m *farm.Model) error {
	if _, ok := r.byID[farmID]; ok {
		return ports.ErrConflict
	}
	r.byID[farmID] = m
	return nil
}

func (r *stubFarmRepo) Get(_ context.Context, farmID string) (*farm.Model, error) {
	m, ok := r.byID[farmID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return m.Clone(), nil
}

func (r *stubFarmRepo) Save(_ context.Context, farmID string, m *farm.Model) error {
	if _, ok := r.byID[farmID]; !ok {
		return ports.ErrNotFound
	}
	r.byID[farmID] = m
	return nil
}

func (r *stubFarmRepo) Delete(_ context.Context, farmID string) error {
	delete(r.byID, farmID)
	return nil
}

type stubEventRepo struct {
	events []farm.Event
	err    error
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []farm.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByFarmID(_ context.Context, _ string, limit int) ([]farm.Event, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	return append([]farm.Event(nil), r.events[len(r.events)-limit:]...), nil
}

type stubMetrics struct {
	success  map[string]int
	rejected map[string]int
	failures int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{success: map[string]int{}, rejected: map[string]int{}}
}

func (m *stubMetrics) RecordSuccess(actionType string) { m.success[actionType]++ }
func (m *stubMetrics) RecordRejected(code string)      { m.rejected[code]++ }
func (m *stubMetrics) RecordFailure()                  { m.failures++ }

type harness struct {
	uc      UseCase
	farms   *stubFarmRepo
	events  *stubEventRepo
	metrics *stubMetrics
}

// newHarness builds a use case over a single farm "farm-1" on a 3x3 map of
// untilled soil with grass in the middle.
func newHarness(t *testing.T, catalog *farm.Catalog) *harness {
	t.Helper()
	grid, err := world.NewGridFromRows([]string{"UUU", "UGU", "UUU"})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	model := farm.NewModel(grid, catalog)
	events := &stubEventRepo{}
	metrics := newStubMetrics()
	farms := &stubFarmRepo{byID: map[string]*farm.Model{"farm-1": model}}
	ids := 0
	return &harness{
		uc: UseCase{
			TxManager: stubTxManager{},
			Farms:     farms,
			Events:    events,
			Metrics:   metrics,
			Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
			NewID: func() string {
				ids++
				return "evt-" + strconv.Itoa(ids)
			},
		},
		farms:   farms,
		events:  events,
		metrics: metrics,
	}
}

// model returns the committed farm. Tests may seed it directly before
// running actions.
func (h *harness) model() *farm.Model {
	return h.farms.byID["farm-1"]
}

func (h *harness) do(t *testing.T, in Intent) (Response, error) {
	t.Helper()
	return h.uc.Execute(context.Background(), Request{FarmID: "farm-1", Intent: in})
}

func (h *harness) mustDo(t *testing.T, in Intent) Response {
	t.Helper()
	resp, err := h.do(t, in)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", in.Type, err)
	}
	return resp
}

func at(row, col int) *world.Position {
	return &world.Position{Row: row, Col: col}
}
