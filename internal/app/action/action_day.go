package action

import "farmstead/internal/domain/farm"

type newDayActionHandler struct{}

func (newDayActionHandler) Apply(ac *ActionContext) error {
	day := ac.Model.NewDay()
	ripe := 0
	for _, placed := range ac.Model.Plants() {
		if placed.Plant.IsHarvestable() {
			ripe++
		}
	}
	ac.emit(farm.EventDayAdvanced, map[string]any{
		"days_elapsed": day,
		"plants":       len(ac.Model.Plants()),
		"harvestable":  ripe,
	})
	return nil
}
