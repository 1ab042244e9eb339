package maps

import (
	"context"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/world"
)

type MapInfo struct {
	Name       string           `json:"name"`
	Dimensions world.Dimensions `json:"dimensions"`
	Rows       []string         `json:"rows"`
}

type UseCase struct {
	Provider ports.MapProvider
}

func (u UseCase) List(ctx context.Context) ([]string, error) {
	return u.Provider.List(ctx)
}

// Get loads a named map and checks that it parses.
func (u UseCase) Get(ctx context.Context, name string) (MapInfo, error) {
	raw, err := u.Provider.Map(ctx, name)
	if err != nil {
		return MapInfo{}, err
	}
	grid, err := world.ParseMapString(string(raw))
	if err != nil {
		return MapInfo{}, err
	}
	return MapInfo{Name: name, Dimensions: grid.Dimensions(), Rows: grid.Rows()}, nil
}
