package action

import "farmstead/internal/domain/farm"

type tillActionHandler struct{}

func (tillActionHandler) Apply(ac *ActionContext) error {
	if err := ac.Model.TillSoil(ac.Target); err != nil {
		return err
	}
	ac.emit(farm.EventSoilTilled, map[string]any{"pos": positionPayload(ac.Target)})
	return nil
}

type untillActionHandler struct{}

func (untillActionHandler) Apply(ac *ActionContext) error {
	if err := ac.Model.UntillSoil(ac.Target); err != nil {
		return err
	}
	ac.emit(farm.EventSoilUntilled, map[string]any{"pos": positionPayload(ac.Target)})
	return nil
}
