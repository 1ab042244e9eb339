package action

import (
	"time"

	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

type ActionSpec struct {
	Type    ActionType
	Handler ActionHandler
}

// ActionHandler applies one intent to the loaded farm. Handlers append the
// events they produce to ac.Events; the use case stamps and journals them.
type ActionHandler interface {
	Apply(ac *ActionContext) error
}

type ActionContext struct {
	FarmID string
	Intent Intent
	Spec   ActionSpec
	NowAt  time.Time
	Model  *farm.Model
	Target world.Position
	Events []farm.Event
}

func (ac *ActionContext) emit(eventType string, payload map[string]any) {
	ac.Events = append(ac.Events, farm.Event{Type: eventType, Payload: payload})
}

func actionRegistry() map[ActionType]ActionSpec {
	return map[ActionType]ActionSpec{
		ActionMove:    {Type: ActionMove, Handler: moveActionHandler{}},
		ActionTill:    {Type: ActionTill, Handler: tillActionHandler{}},
		ActionUntill:  {Type: ActionUntill, Handler: untillActionHandler{}},
		ActionPlant:   {Type: ActionPlant, Handler: plantActionHandler{}},
		ActionRemove:  {Type: ActionRemove, Handler: removeActionHandler{}},
		ActionHarvest: {Type: ActionHarvest, Handler: harvestActionHandler{}},
		ActionBuy:     {Type: ActionBuy, Handler: buyActionHandler{}},
		ActionSell:    {Type: ActionSell, Handler: sellActionHandler{}},
		ActionSelect:  {Type: ActionSelect, Handler: selectActionHandler{}},
		ActionNewDay:  {Type: ActionNewDay, Handler: newDayActionHandler{}},
	}
}

func actionParamValidators() map[ActionType]func(Intent) bool {
	return map[ActionType]func(Intent) bool{
		ActionMove: func(in Intent) bool {
			_, ok := world.ParseDirection(in.Direction)
			return ok
		},
		ActionSelect: func(in Intent) bool { return in.Item != "" },
	}
}

func SupportedActionTypes() []ActionType {
	return []ActionType{
		ActionMove, ActionTill, ActionUntill, ActionPlant, ActionRemove,
		ActionHarvest, ActionBuy, ActionSell, ActionSelect, ActionNewDay,
	}
}

func resolveTarget(m *farm.Model, in Intent) world.Position {
	if in.Pos != nil {
		return *in.Pos
	}
	return m.PlayerPosition()
}

// resolveItem falls back to the selected item when the intent names none.
func resolveItem(m *farm.Model, in Intent) (string, error) {
	if in.Item != "" {
		return in.Item, nil
	}
	item, ok := m.Player().SelectedItem()
	if !ok {
		return "", farm.ErrUnknownItem
	}
	return item, nil
}

func positionPayload(p world.Position) map[string]any {
	return map[string]any{"row": p.Row, "col": p.Col}
}
