package model

import "time"

const TableNameFarmEvent = "farm_events"

// FarmEvent is one row of a farm's action journal.
type FarmEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	EventID    string    `gorm:"column:event_id;not null;uniqueIndex" json:"event_id"`
	FarmID     string    `gorm:"column:farm_id;not null;index:idx_farm_events_farm_time,priority:1" json:"farm_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index:idx_farm_events_farm_time,priority:2" json:"occurred_at"`
	Payload    string    `gorm:"column:payload;type:text" json:"payload"`
}

func (*FarmEvent) TableName() string {
	return TableNameFarmEvent
}
