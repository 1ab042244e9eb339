package replay

import (
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

type Request struct {
	FarmID       string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// Summary is what the journal alone says about the farm: the last day seen,
// the player's last money balance and last position.
type Summary struct {
	Day            int            `json:"day"`
	Money          int            `json:"money"`
	PlayerPosition world.Position `json:"player_position"`
	Harvests       int            `json:"harvests"`
}

type Response struct {
	Events []farm.Event `json:"events"`
	Latest Summary      `json:"latest"`
}
