package stateview

import (
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"
)

const lowEnergyThreshold = 20

type State struct {
	FarmID     string           `json:"farm_id,omitempty"`
	Day        int              `json:"day"`
	Dimensions world.Dimensions `json:"dimensions"`
	Ground     []string         `json:"ground"`
	Plants     []PlantView      `json:"plants"`
	Player     PlayerView       `json:"player"`
}

type PlantView struct {
	Position    world.Position `json:"position"`
	Variant     farm.Variant   `json:"variant"`
	Age         int            `json:"age"`
	Stage       int            `json:"stage"`
	MaxStage    int            `json:"max_stage"`
	Harvestable bool           `json:"harvestable"`
	Regrowable  bool           `json:"regrowable"`
	Image       string         `json:"image"`
}

type PlayerView struct {
	Position      world.Position  `json:"position"`
	Facing        world.Direction `json:"facing"`
	Ground        string          `json:"ground"`
	Money         int             `json:"money"`
	Energy        int             `json:"energy"`
	MaxEnergy     int             `json:"max_energy"`
	Selected      string          `json:"selected,omitempty"`
	Inventory     []ItemView      `json:"inventory"`
	StatusEffects []string        `json:"status_effects"`
}

// ItemView is one row of the shop/inventory panel. Every catalog item is
// listed, held or not.
type ItemView struct {
	Item      string `json:"item"`
	Count     int    `json:"count"`
	SellPrice int    `json:"sell_price"`
	BuyPrice  *int   `json:"buy_price,omitempty"`
	Seed      bool   `json:"seed"`
	Selected  bool   `json:"selected"`
}

func FromModel(farmID string, m *farm.Model) State {
	plants := m.Plants()
	out := State{
		FarmID:     farmID,
		Day:        m.DaysElapsed(),
		Dimensions: m.Dimensions(),
		Ground:     m.Map(),
		Plants:     make([]PlantView, 0, len(plants)),
		Player:     playerView(m),
	}
	for _, placed := range plants {
		out.Plants = append(out.Plants, plantView(placed))
	}
	out.Player.StatusEffects = deriveStatusEffects(out)
	return out
}

func plantView(placed farm.PlacedPlant) PlantView {
	p := placed.Plant
	return PlantView{
		Position:    placed.Position,
		Variant:     p.Variant(),
		Age:         p.Age(),
		Stage:       p.Stage(),
		MaxStage:    p.MaxStage(),
		Harvestable: p.IsHarvestable(),
		Regrowable:  p.Regrowable(),
		Image:       p.ImageName(),
	}
}

func playerView(m *farm.Model) PlayerView {
	player := m.Player()
	catalog := m.Catalog()
	selected, _ := player.SelectedItem()
	inv := player.Inventory()

	items := make([]ItemView, 0, len(catalog.Items))
	for _, item := range catalog.Items {
		sell, _ := catalog.SellPrice(item)
		row := ItemView{
			Item:      item,
			Count:     inv.Count(item),
			SellPrice: sell,
			Selected:  item == selected,
		}
		if buy, ok := catalog.BuyPrice(item); ok {
			row.BuyPrice = &buy
		}
		_, row.Seed = catalog.SeedSpec(item)
		items = append(items, row)
	}

	return PlayerView{
		Position:  player.Position(),
		Facing:    player.Facing(),
		Ground:    CurrentGroundAtPosition(m, player.Position()),
		Money:     player.Money(),
		Energy:    player.Energy(),
		MaxEnergy: player.MaxEnergy(),
		Selected:  selected,
		Inventory: items,
	}
}

func deriveStatusEffects(s State) []string {
	effects := make([]string, 0, 2)
	if s.Player.Energy <= lowEnergyThreshold {
		effects = append(effects, "EXHAUSTED")
	}
	for _, p := range s.Plants {
		if p.Harvestable {
			effects = append(effects, "HARVEST_READY")
			break
		}
	}
	return effects
}
