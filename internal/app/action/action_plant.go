package action

import (
	"fmt"

	"farmstead/internal/domain/farm"
)

type plantActionHandler struct{}

func (plantActionHandler) Apply(ac *ActionContext) error {
	player := ac.Model.Player()
	prev, hadPrev := player.SelectedItem()
	if ac.Intent.Item != "" {
		if err := ac.Model.SelectItem(ac.Intent.Item); err != nil {
			return err
		}
	}
	plant, err := ac.Model.PlantSeed(ac.Target)
	if err != nil {
		if hadPrev {
			_ = player.SelectItem(prev)
		} else {
			player.ClearSelection()
		}
		return err
	}
	ac.emit(farm.EventPlantAdded, map[string]any{
		"pos":     positionPayload(ac.Target),
		"variant": string(plant.Variant()),
	})
	return nil
}

type removeActionHandler struct{}

func (removeActionHandler) Apply(ac *ActionContext) error {
	plant, ok := ac.Model.PlantAt(ac.Target)
	if !ok {
		return fmt.Errorf("remove %d,%d: %w", ac.Target.Row, ac.Target.Col, farm.ErrNoPlant)
	}
	variant := plant.Variant()
	if err := ac.Model.RemovePlant(ac.Target); err != nil {
		return err
	}
	ac.emit(farm.EventPlantRemoved, map[string]any{
		"pos":     positionPayload(ac.Target),
		"variant": string(variant),
	})
	return nil
}

type harvestActionHandler struct{}

func (harvestActionHandler) Apply(ac *ActionContext) error {
	plant, ok := ac.Model.PlantAt(ac.Target)
	if !ok {
		return fmt.Errorf("harvest %d,%d: %w", ac.Target.Row, ac.Target.Col, farm.ErrNoPlant)
	}
	variant := plant.Variant()
	yield, err := ac.Model.Harvest(ac.Target)
	if err != nil {
		return err
	}
	_, remains := ac.Model.PlantAt(ac.Target)
	ac.emit(farm.EventPlantHarvested, map[string]any{
		"pos":     positionPayload(ac.Target),
		"variant": string(variant),
		"item":    yield.Item,
		"count":   yield.Count,
		"remains": remains,
	})
	return nil
}
