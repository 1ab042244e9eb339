package stateview

import (
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

func CurrentGroundAtPosition(m *farm.Model, pos world.Position) string {
	cell, ok := m.Ground(pos)
	if !ok {
		return ""
	}
	return cell.String()
}
