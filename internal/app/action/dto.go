package action

import (
	"farmstead/internal/app/stateview"
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

type ActionType string

const (
	ActionMove    ActionType = "move"
	ActionTill    ActionType = "till"
	ActionUntill  ActionType = "untill"
	ActionPlant   ActionType = "plant"
	ActionRemove  ActionType = "remove"
	ActionHarvest ActionType = "harvest"
	ActionBuy     ActionType = "buy"
	ActionSell    ActionType = "sell"
	ActionSelect  ActionType = "select"
	ActionNewDay  ActionType = "new_day"
)

type ResultCode string

const (
	ResultOK       ResultCode = "OK"
	ResultRejected ResultCode = "REJECTED"
)

// Intent is one player request. Pos defaults to the player's tile and Item
// defaults to the selected item.
type Intent struct {
	Type      ActionType      `json:"type"`
	Direction string          `json:"direction,omitempty"`
	Pos       *world.Position `json:"pos,omitempty"`
	Item      string          `json:"item,omitempty"`
}

type Request struct {
	FarmID string
	Intent Intent
}

type Response struct {
	ResultCode ResultCode      `json:"result_code"`
	State      stateview.State `json:"state"`
	Events     []farm.Event    `json:"events"`
}
