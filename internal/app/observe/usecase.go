package observe

import (
	"context"
	"errors"
	"strings"

	"farmstead/internal/app/ports"
	"farmstead/internal/app/stateview"
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

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
		out = Response{
			State:       stateview.FromModel(farmID, m),
			Tiles:       projectTiles(m),
			ActionCosts: actionCosts(m.Catalog()),
			Prices:      prices(m.Catalog()),
		}
		return nil
	}
	if u.TxManager == nil {
		return out, read(ctx)
	}
	if err := u.TxManager.RunInTx(ctx, read); err != nil {
		return Response{}, err
	}
	return out, nil
}

func projectTiles(m *farm.Model) []ObservedTile {
	dims := m.Dimensions()
	player := m.PlayerPosition()
	out := make([]ObservedTile, 0, dims.Rows*dims.Cols)
	for row := 0; row < dims.Rows; row++ {
		for col := 0; col < dims.Cols; col++ {
			pos := world.Position{Row: row, Col: col}
			cell, _ := m.Ground(pos)
			tile := ObservedTile{
				Pos:      pos,
				Ground:   cell.String(),
				Tillable: cell.Tillable(),
				Player:   pos == player,
			}
			if plant, ok := m.PlantAt(pos); ok {
				tile.Plant = plant.ImageName()
				tile.Harvestable = plant.IsHarvestable()
			} else {
				tile.Plantable = cell.Plantable()
			}
			out = append(out, tile)
		}
	}
	return out
}

func actionCosts(c *farm.Catalog) map[string]int {
	out := map[string]int{"move": 0}
	for _, a := range []farm.Action{farm.ActionTill, farm.ActionUntill, farm.ActionPlant, farm.ActionHarvest, farm.ActionRemove} {
		out[string(a)] = c.EnergyCost(a)
	}
	return out
}

func prices(c *farm.Catalog) []Price {
	out := make([]Price, 0, len(c.Items))
	for _, item := range c.Items {
		sell, _ := c.SellPrice(item)
		p := Price{Item: item, Sell: sell}
		if buy, ok := c.BuyPrice(item); ok {
			p.Buy = &buy
		}
		out = append(out, p)
	}
	return out
}
