package replay

import (
	"context"
	"errors"
	"strings"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const DefaultLimit = 50

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	farmID := strings.TrimSpace(req.FarmID)
	if farmID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	fetch := limit
	if req.OccurredFrom > 0 || req.OccurredTo > 0 {
		// the window is applied before the limit
		fetch = 0
	}
	events, err := u.Events.ListByFarmID(ctx, farmID, fetch)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	return Response{Events: events, Latest: summarize(events)}, nil
}

func filterByTimeWindow(events []farm.Event, from, to int64) []farm.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]farm.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func summarize(events []farm.Event) Summary {
	var s Summary
	for _, evt := range events {
		if day, ok := evt.Payload["day"]; ok {
			s.Day = int(num(day))
		}
		switch evt.Type {
		case farm.EventItemBought, farm.EventItemSold:
			s.Money = int(num(evt.Payload["money"]))
		case farm.EventPlayerMoved:
			if to, ok := evt.Payload["to"].(map[string]any); ok {
				s.PlayerPosition.Row = int(num(to["row"]))
				s.PlayerPosition.Col = int(num(to["col"]))
			}
		case farm.EventPlantHarvested:
			s.Harvests++
		}
	}
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
