package status

import (
	"context"
	"errors"
	"strings"

	"farmstead/internal/app/ports"
	"farmstead/internal/app/stateview"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	TxManager ports.TxManager
	Farms     ports.FarmRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	farmID := strings.TrimSpace(req.FarmID)
	if farmID == "" {
		return Response{}, ErrInvalidRequest
	}
	var out Response
	read := func(ctx context.Context) error {
		m, err := u.Farms.Get(ctx, farmID)
		if err != nil {
			return err
		}
		out.State = stateview.FromModel(farmID, m)
		return nil
	}
	var err error
	if u.TxManager != nil {
		err = u.TxManager.RunInTx(ctx, read)
	} else {
		err = read(ctx)
	}
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
