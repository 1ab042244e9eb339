package observe

import (
	"farmstead/internal/app/stateview"
	"farmstead/internal/domain/world"
)

type Request struct {
	FarmID string
}

type Response struct {
	State       stateview.State `json:"state"`
	Tiles       []ObservedTile  `json:"tiles"`
	ActionCosts map[string]int  `json:"action_costs"`
	Prices      []Price         `json:"prices"`
}

type ObservedTile struct {
	Pos         world.Position `json:"pos"`
	Ground      string         `json:"ground"`
	Plant       string         `json:"plant,omitempty"`
	Harvestable bool           `json:"harvestable,omitempty"`
	Tillable    bool           `json:"tillable"`
	Plantable   bool           `json:"plantable"`
	Player      bool           `json:"player,omitempty"`
}

type Price struct {
	Item string `json:"item"`
	Sell int    `json:"sell"`
	Buy  *int   `json:"buy,omitempty"`
}
