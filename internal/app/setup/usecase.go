package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/app/stateview"
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"

	"github.com/google/uuid"
)

const DefaultMapName = "map1.txt"

var (
	ErrInvalidRequest = errors.New("invalid setup request")
	ErrInvalidMap     = errors.New("invalid map")
)

// Request picks the ground layout: inline map text wins over a map name,
// and an empty request uses DefaultMapName.
type Request struct {
	MapName string `json:"map_name,omitempty"`
	Map     string `json:"map,omitempty"`
}

type Response struct {
	FarmID string          `json:"farm_id"`
	State  stateview.State `json:"state"`
}

type UseCase struct {
	TxManager  ports.TxManager
	Farms      ports.FarmRepository
	Events     ports.EventRepository
	Maps       ports.MapProvider
	Catalog    *farm.Catalog
	StartMoney int
	Now        func() time.Time
	NewID      func() string
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Farms == nil || u.TxManager == nil {
		return Response{}, ErrInvalidRequest
	}
	grid, mapName, err := u.loadGrid(ctx, req)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := nowFn().UTC()

	for i := 0; i < 3; i++ {
		farmID := newID()
		model := farm.NewModel(grid.Clone(), u.Catalog)
		if u.StartMoney > 0 {
			model.Player().AddMoney(u.StartMoney)
		}
		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := u.Farms.Create(txCtx, farmID, model); err != nil {
				return err
			}
			if u.Events == nil {
				return nil
			}
			dims := model.Dimensions()
			err := u.Events.Append(txCtx, farmID, []farm.Event{{
				ID:         newID(),
				Type:       farm.EventFarmCreated,
				OccurredAt: now,
				Payload: map[string]any{
					"farm_id": farmID,
					"map":     mapName,
					"rows":    dims.Rows,
					"cols":    dims.Cols,
					"money":   model.Player().Money(),
					"day":     0,
				},
			}})
			if err != nil {
				if delErr := u.Farms.Delete(txCtx, farmID); delErr != nil {
					return errors.Join(err, delErr)
				}
				return err
			}
			return nil
		})
		if errors.Is(err, ports.ErrConflict) {
			continue
		}
		if err != nil {
			return Response{}, err
		}
		return Response{FarmID: farmID, State: stateview.FromModel(farmID, model)}, nil
	}
	return Response{}, ports.ErrConflict
}

func (u UseCase) loadGrid(ctx context.Context, req Request) (*world.Grid, string, error) {
	if strings.TrimSpace(req.Map) != "" {
		grid, err := world.ParseMapString(req.Map)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrInvalidMap, err)
		}
		return grid, "inline", nil
	}
	name := strings.TrimSpace(req.MapName)
	if name == "" {
		name = DefaultMapName
	}
	if u.Maps == nil {
		return nil, "", ErrInvalidRequest
	}
	raw, err := u.Maps.Map(ctx, name)
	if err != nil {
		return nil, "", err
	}
	grid, err := world.ParseMapString(string(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrInvalidMap, name, err)
	}
	return grid, name, nil
}
