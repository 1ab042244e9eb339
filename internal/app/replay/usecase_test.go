package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmstead/internal/domain/farm"
)

func TestUseCase_SummarizesJournal(t *testing.T) {
	repo := fakeRepo{events: []farm.Event{
		{Type: farm.EventPlayerMoved, OccurredAt: time.Unix(1, 0), Payload: map[string]any{"day": 0, "to": map[string]any{"row": 1.0, "col": 2.0}}},
		{Type: farm.EventItemBought, OccurredAt: time.Unix(2, 0), Payload: map[string]any{"day": 0, "money": 8.0}},
		{Type: farm.EventDayAdvanced, OccurredAt: time.Unix(3, 0), Payload: map[string]any{"day": 1}},
		{Type: farm.EventPlantHarvested, OccurredAt: time.Unix(4, 0), Payload: map[string]any{"day": 1}},
	}}

	uc := UseCase{Events: repo}
	out, err := uc.Execute(context.Background(), Request{FarmID: "farm-1", Limit: 10})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(out.Events))
	}
	if out.Latest.Day != 1 || out.Latest.Money != 8 || out.Latest.Harvests != 1 {
		t.Fatalf("unexpected summary: %+v", out.Latest)
	}
	if out.Latest.PlayerPosition.Row != 1 || out.Latest.PlayerPosition.Col != 2 {
		t.Fatalf("unexpected position: %+v", out.Latest.PlayerPosition)
	}
}

func TestUseCase_AppliesWindowBeforeLimit(t *testing.T) {
	repo := fakeRepo{events: []farm.Event{
		{Type: farm.EventSoilTilled, OccurredAt: time.Unix(100, 0)},
		{Type: farm.EventPlantAdded, OccurredAt: time.Unix(200, 0)},
		{Type: farm.EventDayAdvanced, OccurredAt: time.Unix(300, 0)},
		{Type: farm.EventPlantHarvested, OccurredAt: time.Unix(400, 0)},
	}}

	out, err := UseCase{Events: repo}.Execute(context.Background(), Request{
		FarmID:       "farm-1",
		Limit:        1,
		OccurredFrom: 150,
		OccurredTo:   350,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Type != farm.EventDayAdvanced {
		t.Fatalf("expected newest event inside window, got %+v", out.Events)
	}
}

func TestUseCase_RejectsInvalidRequests(t *testing.T) {
	uc := UseCase{Events: fakeRepo{}}
	for _, req := range []Request{
		{},
		{FarmID: "farm-1", Limit: -1},
		{FarmID: "farm-1", OccurredFrom: 10, OccurredTo: 5},
	} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest for %+v, got %v", req, err)
		}
	}
}

type fakeRepo struct {
	events []farm.Event
}

func (r fakeRepo) Append(_ context.Context, _ string, _ []farm.Event) error {
	return nil
}

func (r fakeRepo) ListByFarmID(_ context.Context, _ string, limit int) ([]farm.Event, error) {
	if limit <= 0 || limit >= len(r.events) {
		return r.events, nil
	}
	return r.events[len(r.events)-limit:], nil
}
