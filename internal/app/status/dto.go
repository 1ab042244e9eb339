package status

import "farmstead/internal/app/stateview"

type Request struct {
	FarmID string
}

type Response struct {
	State stateview.State `json:"state"`
}
