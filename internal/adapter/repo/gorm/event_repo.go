package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, farmID string, events []farm.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.FarmEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.FarmEvent{
			EventID:    e.ID,
			FarmID:     farmID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    string(b),
		})
	}
	return conn(ctx, r.db).Create(&rows).Error
}

// ListByFarmID returns the newest limit events oldest first; limit 0 returns
// the whole journal.
func (r EventRepo) ListByFarmID(ctx context.Context, farmID string, limit int) ([]farm.Event, error) {
	rows := []model.FarmEvent{}
	query := conn(ctx, r.db).
		Where(&model.FarmEvent{FarmID: farmID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]farm.Event, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		var payload map[string]any
		if row.Payload != "" {
			if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
				return nil, fmt.Errorf("decode event %s: %w", row.EventID, err)
			}
		}
		out = append(out, farm.Event{
			ID:         row.EventID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
