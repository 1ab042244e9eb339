package farm

import (
	"fmt"
	"sort"

	"farmstead/internal/domain/world"
)

// Model owns one farm: its ground, the plants standing on it, the player
// and the day counter. Every mutating method either succeeds completely or
// returns a rejection error and leaves the model as it was. Model is not
// safe for concurrent use.
type Model struct {
	catalog *Catalog
	grid    *world.Grid
	plants  map[world.Position]*Plant
	player  *Player
	days    int
}

func NewModel(grid *world.Grid, catalog *Catalog) *Model {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Model{
		catalog: catalog,
		grid:    grid,
		plants:  make(map[world.Position]*Plant),
		player:  NewPlayer(catalog),
	}
}

// Clone returns an independent copy. The catalog is shared since it never
// changes after load.
func (m *Model) Clone() *Model {
	plants := make(map[world.Position]*Plant, len(m.plants))
	for pos, plant := range m.plants {
		cp := *plant
		plants[pos] = &cp
	}
	player := *m.player
	player.inventory = make(Inventory, len(m.player.inventory))
	for item, n := range m.player.inventory {
		player.inventory[item] = n
	}
	return &Model{
		catalog: m.catalog,
		grid:    m.grid.Clone(),
		plants:  plants,
		player:  &player,
		days:    m.days,
	}
}

func (m *Model) Catalog() *Catalog                { return m.catalog }
func (m *Model) Player() *Player                  { return m.player }
func (m *Model) DaysElapsed() int                 { return m.days }
func (m *Model) Dimensions() world.Dimensions     { return m.grid.Dimensions() }
func (m *Model) Map() []string                    { return m.grid.Rows() }
func (m *Model) PlayerPosition() world.Position   { return m.player.Position() }
func (m *Model) PlayerDirection() world.Direction { return m.player.Facing() }

func (m *Model) Ground(p world.Position) (world.Cell, bool) {
	return m.grid.At(p)
}

func (m *Model) PlantAt(p world.Position) (*Plant, bool) {
	plant, ok := m.plants[p]
	return plant, ok
}

type PlacedPlant struct {
	Position world.Position
	Plant    *Plant
}

// Plants lists occupied positions in row-major order.
func (m *Model) Plants() []PlacedPlant {
	out := make([]PlacedPlant, 0, len(m.plants))
	for pos, plant := range m.plants {
		out = append(out, PlacedPlant{Position: pos, Plant: plant})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Position, out[j].Position
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return out
}

func (m *Model) MovePlayer(dir world.Direction) (moved bool, err error) {
	if !dir.Valid() {
		return false, fmt.Errorf("move %q: %w", dir, ErrInvalidDirection)
	}
	return m.player.Move(dir, m.grid), nil
}

func (m *Model) TillSoil(p world.Position) error {
	return m.withEnergy(ActionTill, func() error {
		if err := m.grid.Till(p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}
		return nil
	})
}

func (m *Model) UntillSoil(p world.Position) error {
	return m.withEnergy(ActionUntill, func() error {
		if _, ok := m.plants[p]; ok {
			return fmt.Errorf("untill %d,%d: %w", p.Row, p.Col, ErrOccupied)
		}
		if err := m.grid.Untill(p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}
		return nil
	})
}

// AddPlant places plant at p. It does not touch the inventory and costs no
// energy; PlantSeed is the player-facing action.
func (m *Model) AddPlant(p world.Position, plant *Plant) error {
	if err := m.checkPlantable(p); err != nil {
		return err
	}
	m.plants[p] = plant
	return nil
}

// PlantSeed plants the player's selected seed at p and consumes one seed.
func (m *Model) PlantSeed(p world.Position) (*Plant, error) {
	var planted *Plant
	err := m.withEnergy(ActionPlant, func() error {
		seed, ok := m.player.SelectedItem()
		if !ok {
			return ErrNoSeedSelected
		}
		spec, ok := m.catalog.SeedSpec(seed)
		if !ok {
			return fmt.Errorf("%s is not a seed: %w", seed, ErrNoSeedSelected)
		}
		if m.player.Count(seed) <= 0 {
			return fmt.Errorf("plant %s: %w", seed, ErrInsufficientStock)
		}
		if err := m.checkPlantable(p); err != nil {
			return err
		}
		planted = NewPlant(spec)
		m.plants[p] = planted
		m.player.RemoveItem(ItemAmount{Item: seed, Count: 1})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return planted, nil
}

func (m *Model) RemovePlant(p world.Position) error {
	return m.withEnergy(ActionRemove, func() error {
		if _, ok := m.plants[p]; !ok {
			return fmt.Errorf("remove %d,%d: %w", p.Row, p.Col, ErrNoPlant)
		}
		delete(m.plants, p)
		return nil
	})
}

// HarvestPlant harvests the plant at p and returns its yield without adding
// it to the inventory. Single-harvest plants are removed from the farm.
func (m *Model) HarvestPlant(p world.Position) (ItemAmount, error) {
	var out ItemAmount
	err := m.withEnergy(ActionHarvest, func() error {
		plant, ok := m.plants[p]
		if !ok {
			return fmt.Errorf("harvest %d,%d: %w", p.Row, p.Col, ErrNoPlant)
		}
		yield, err := plant.Harvest()
		if err != nil {
			return fmt.Errorf("harvest %s at %d,%d: %w", plant.Variant(), p.Row, p.Col, err)
		}
		if !plant.Regrowable() {
			delete(m.plants, p)
		}
		out = yield
		return nil
	})
	return out, err
}

// Harvest is HarvestPlant followed by crediting the yield to the player.
func (m *Model) Harvest(p world.Position) (ItemAmount, error) {
	yield, err := m.HarvestPlant(p)
	if err != nil {
		return ItemAmount{}, err
	}
	m.player.AddItem(yield)
	return yield, nil
}

func (m *Model) SelectItem(item string) error {
	return m.player.SelectItem(item)
}

func (m *Model) Buy(item string) error {
	if !m.catalog.HasItem(item) {
		return fmt.Errorf("buy %q: %w", item, ErrUnknownItem)
	}
	price, ok := m.catalog.BuyPrice(item)
	if !ok {
		return fmt.Errorf("buy %s: %w", item, ErrNotForSale)
	}
	return m.player.Buy(item, price)
}

func (m *Model) Sell(item string) error {
	price, ok := m.catalog.SellPrice(item)
	if !ok {
		return fmt.Errorf("sell %q: %w", item, ErrUnknownItem)
	}
	return m.player.Sell(item, price)
}

// NewDay ages every plant once, restores the player's energy and advances
// the day counter. The ground is left alone.
func (m *Model) NewDay() int {
	m.days++
	for _, plant := range m.plants {
		plant.AdvanceDay()
	}
	m.player.RestoreEnergy()
	return m.days
}

func (m *Model) checkPlantable(p world.Position) error {
	cell, ok := m.grid.At(p)
	if !ok {
		return fmt.Errorf("%w: plant at %d,%d: %w", ErrInvalidTarget, p.Row, p.Col, world.ErrOutOfBounds)
	}
	if _, taken := m.plants[p]; taken {
		return fmt.Errorf("plant at %d,%d: %w", p.Row, p.Col, ErrOccupied)
	}
	if !cell.Plantable() {
		return fmt.Errorf("%w: plant on %s at %d,%d: %w", ErrInvalidTarget, cell, p.Row, p.Col, world.ErrWrongTerrain)
	}
	return nil
}

// withEnergy runs fn only if the player can pay for action and charges the
// cost only when fn succeeds.
func (m *Model) withEnergy(action Action, fn func() error) error {
	cost := m.catalog.EnergyCost(action)
	if cost > m.player.Energy() {
		return fmt.Errorf("%s: need %d energy, have %d: %w", action, cost, m.player.Energy(), ErrExhausted)
	}
	if err := fn(); err != nil {
		return err
	}
	return m.player.SpendEnergy(cost)
}
