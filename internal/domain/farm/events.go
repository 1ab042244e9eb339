package farm

import "time"

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventFarmCreated    = "farm_created"
	EventPlayerMoved    = "player_moved"
	EventSoilTilled     = "soil_tilled"
	EventSoilUntilled   = "soil_untilled"
	EventPlantAdded     = "plant_added"
	EventPlantRemoved   = "plant_removed"
	EventPlantHarvested = "plant_harvested"
	EventItemSelected   = "item_selected"
	EventItemBought     = "item_bought"
	EventItemSold       = "item_sold"
	EventDayAdvanced    = "day_advanced"
)
