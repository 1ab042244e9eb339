package action

import (
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

type moveActionHandler struct{}

func (moveActionHandler) Apply(ac *ActionContext) error {
	dir, ok := world.ParseDirection(ac.Intent.Direction)
	if !ok {
		return farm.ErrInvalidDirection
	}
	from := ac.Model.PlayerPosition()
	moved, err := ac.Model.MovePlayer(dir)
	if err != nil {
		return err
	}
	to := ac.Model.PlayerPosition()
	ac.emit(farm.EventPlayerMoved, map[string]any{
		"direction": string(dir),
		"moved":     moved,
		"from":      positionPayload(from),
		"to":        positionPayload(to),
	})
	return nil
}
