package farm

import (
	"errors"
	"testing"

	"farmstead/internal/domain/world"
)

func newScenarioModel(t *testing.T, catalog *Catalog) *Model {
	t.Helper()
	g, err := world.NewGridFromRows([]string{"UUU", "UGU", "UUU"})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return NewModel(g, catalog)
}

func at(r, c int) world.Position {
	return world.Position{Row: r, Col: c}
}

func TestModelPotatoLifecycle(t *testing.T) {
	m := newScenarioModel(t, nil)
	p := m.Player()
	if p.Energy() != 100 || p.Money() != 0 || len(p.Inventory()) != 0 {
		t.Fatalf("unexpected starting player: energy=%d money=%d inv=%v", p.Energy(), p.Money(), p.Inventory())
	}

	if err := m.TillSoil(at(0, 0)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if err := m.SelectItem(ItemPotatoSeed); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := m.PlantSeed(at(0, 0)); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected planting without seeds to fail, got %v", err)
	}
	if _, ok := m.PlantAt(at(0, 0)); ok {
		t.Fatalf("failed plant left a plant behind")
	}

	p.AddItem(ItemAmount{Item: ItemPotatoSeed, Count: 1})
	if _, err := m.PlantSeed(at(0, 0)); err != nil {
		t.Fatalf("plant: %v", err)
	}
	if p.Count(ItemPotatoSeed) != 0 {
		t.Fatalf("expected seed consumed")
	}

	days := 0
	for {
		plant, _ := m.PlantAt(at(0, 0))
		if plant.IsHarvestable() {
			break
		}
		if _, err := m.Harvest(at(0, 0)); !errors.Is(err, ErrNotReady) {
			t.Fatalf("day %d: expected ErrNotReady, got %v", days, err)
		}
		m.NewDay()
		days++
		if days > 20 {
			t.Fatalf("potato never ripened")
		}
	}
	if days != 6 {
		t.Fatalf("potato ripened after %d days, want 6", days)
	}

	yield, err := m.Harvest(at(0, 0))
	if err != nil {
		t.Fatalf("harvest: %v", err)
	}
	if yield != (ItemAmount{Item: ItemPotato, Count: 1}) {
		t.Fatalf("unexpected yield %+v", yield)
	}
	if p.Count(ItemPotato) != 1 {
		t.Fatalf("expected yield in inventory, got %d", p.Count(ItemPotato))
	}
	if _, ok := m.PlantAt(at(0, 0)); ok {
		t.Fatalf("potato should be removed after harvest")
	}
	if cell, _ := m.Ground(at(0, 0)); cell != world.CellSoil {
		t.Fatalf("ground should stay soil, got %s", cell)
	}
}

func TestModelBerryStaysAfterHarvest(t *testing.T) {
	m := newScenarioModel(t, nil)
	spec, _ := m.Catalog().SeedSpec(ItemBerrySeed)
	if err := m.TillSoil(at(2, 2)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if err := m.AddPlant(at(2, 2), NewPlant(spec)); err != nil {
		t.Fatalf("add plant: %v", err)
	}
	for i := 0; i < spec.MatureAge(); i++ {
		m.NewDay()
	}
	yield, err := m.HarvestPlant(at(2, 2))
	if err != nil {
		t.Fatalf("harvest: %v", err)
	}
	if yield.Count != 2 {
		t.Fatalf("expected 2 berries, got %d", yield.Count)
	}
	if m.Player().Count(ItemBerry) != 0 {
		t.Fatalf("HarvestPlant must not credit the inventory")
	}
	plant, ok := m.PlantAt(at(2, 2))
	if !ok {
		t.Fatalf("berry should stay planted")
	}
	if plant.IsHarvestable() || plant.Age() >= spec.MatureAge() {
		t.Fatalf("berry should be reset to a pre-mature age, got %d", plant.Age())
	}
}

func TestModelAddPlantRejections(t *testing.T) {
	m := newScenarioModel(t, nil)
	spec, _ := m.Catalog().SeedSpec(ItemKaleSeed)

	if err := m.AddPlant(at(0, 0), NewPlant(spec)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("untilled: expected ErrInvalidTarget, got %v", err)
	}
	if err := m.AddPlant(at(1, 1), NewPlant(spec)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("grass: expected ErrInvalidTarget, got %v", err)
	}
	if err := m.AddPlant(at(5, 5), NewPlant(spec)); !errors.Is(err, world.ErrOutOfBounds) {
		t.Fatalf("outside: expected ErrOutOfBounds, got %v", err)
	}
	if err := m.TillSoil(at(0, 0)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if err := m.AddPlant(at(0, 0), NewPlant(spec)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.AddPlant(at(0, 0), NewPlant(spec)); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if got := len(m.Plants()); got != 1 {
		t.Fatalf("expected one plant, got %d", got)
	}
}

func TestModelUntillBlockedByPlant(t *testing.T) {
	m := newScenarioModel(t, nil)
	spec, _ := m.Catalog().SeedSpec(ItemKaleSeed)
	if err := m.TillSoil(at(0, 1)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if err := m.AddPlant(at(0, 1), NewPlant(spec)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.UntillSoil(at(0, 1)); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if cell, _ := m.Ground(at(0, 1)); cell != world.CellSoil {
		t.Fatalf("occupied soil was untilled")
	}
	if err := m.RemovePlant(at(0, 1)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.RemovePlant(at(0, 1)); !errors.Is(err, ErrNoPlant) {
		t.Fatalf("expected ErrNoPlant on second remove, got %v", err)
	}
	if err := m.UntillSoil(at(0, 1)); err != nil {
		t.Fatalf("untill after remove: %v", err)
	}
	if got := m.Map()[0]; got != "UUU" {
		t.Fatalf("unexpected row: %q", got)
	}
}

func TestModelTillErrorsWrapInvalidTarget(t *testing.T) {
	m := newScenarioModel(t, nil)
	if err := m.TillSoil(at(1, 1)); !errors.Is(err, ErrInvalidTarget) || !errors.Is(err, world.ErrWrongTerrain) {
		t.Fatalf("grass till error mismatch: %v", err)
	}
	if err := m.TillSoil(at(-1, 0)); !errors.Is(err, ErrInvalidTarget) || !errors.Is(err, world.ErrOutOfBounds) {
		t.Fatalf("outside till error mismatch: %v", err)
	}
}

func TestModelNewDay(t *testing.T) {
	cat := DefaultCatalog()
	cat.EnergyCosts[ActionTill] = 10
	for _, plants := range []int{0, 1, 3} {
		m := newScenarioModel(t, cat)
		spec, _ := cat.SeedSpec(ItemPotatoSeed)
		for i := 0; i < plants; i++ {
			pos := at(0, i)
			if err := m.TillSoil(pos); err != nil {
				t.Fatalf("till: %v", err)
			}
			if err := m.AddPlant(pos, NewPlant(spec)); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		before := m.DaysElapsed()
		if got := m.NewDay(); got != before+1 {
			t.Fatalf("%d plants: NewDay returned %d, want %d", plants, got, before+1)
		}
		if m.DaysElapsed() != before+1 {
			t.Fatalf("%d plants: day counter %d", plants, m.DaysElapsed())
		}
		if m.Player().Energy() != m.Player().MaxEnergy() {
			t.Fatalf("%d plants: energy not restored: %d", plants, m.Player().Energy())
		}
		for _, placed := range m.Plants() {
			if placed.Plant.Age() != 1 {
				t.Fatalf("plant at %v aged %d times", placed.Position, placed.Plant.Age())
			}
		}
	}
}

func TestModelMoveBlockedAtBoundary(t *testing.T) {
	m := newScenarioModel(t, nil)
	moved, err := m.MovePlayer(world.DirectionUp)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved || m.PlayerPosition() != at(0, 0) {
		t.Fatalf("move into wall changed position to %v", m.PlayerPosition())
	}
	if m.PlayerDirection() != world.DirectionUp {
		t.Fatalf("facing should update even when blocked, got %s", m.PlayerDirection())
	}
	moved, err = m.MovePlayer(world.DirectionDown)
	if err != nil || !moved {
		t.Fatalf("move away from wall: moved=%v err=%v", moved, err)
	}
	if m.PlayerPosition() != at(1, 0) || m.PlayerDirection() != world.DirectionDown {
		t.Fatalf("unexpected player after move: %v %s", m.PlayerPosition(), m.PlayerDirection())
	}
	if _, err := m.MovePlayer("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if m.Player().Energy() != 100 {
		t.Fatalf("movement should cost no energy")
	}
}

func TestModelMoveOntoGrass(t *testing.T) {
	m := newScenarioModel(t, nil)
	m.MovePlayer(world.DirectionDown)
	moved, _ := m.MovePlayer(world.DirectionRight)
	if !moved || m.PlayerPosition() != at(1, 1) {
		t.Fatalf("player should walk onto grass, at %v", m.PlayerPosition())
	}
}

func TestModelEnergyCharging(t *testing.T) {
	cat := DefaultCatalog()
	cat.EnergyCosts[ActionTill] = 60
	m := newScenarioModel(t, cat)

	if err := m.TillSoil(at(1, 1)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected grass rejection, got %v", err)
	}
	if m.Player().Energy() != 100 {
		t.Fatalf("failed action charged energy: %d", m.Player().Energy())
	}
	if err := m.TillSoil(at(0, 0)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if m.Player().Energy() != 40 {
		t.Fatalf("expected 40 energy, got %d", m.Player().Energy())
	}
	if err := m.TillSoil(at(0, 1)); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if cell, _ := m.Ground(at(0, 1)); cell != world.CellUntilled {
		t.Fatalf("exhausted till mutated ground")
	}
	m.NewDay()
	if err := m.TillSoil(at(0, 1)); err != nil {
		t.Fatalf("till after rest: %v", err)
	}
}

func TestModelBuySell(t *testing.T) {
	m := newScenarioModel(t, nil)
	p := m.Player()
	if err := m.Buy(ItemKaleSeed); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if err := m.Buy(ItemKale); !errors.Is(err, ErrNotForSale) {
		t.Fatalf("expected ErrNotForSale, got %v", err)
	}
	if err := m.Buy("Gold"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := m.Sell(ItemKale); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	for _, item := range []string{ItemPotatoSeed, ItemKaleSeed, ItemBerrySeed} {
		p.AddMoney(10)
		before := p.Money()
		if err := m.Buy(item); err != nil {
			t.Fatalf("buy %s: %v", item, err)
		}
		if err := m.Sell(item); err != nil {
			t.Fatalf("sell %s: %v", item, err)
		}
		if p.Money() > before {
			t.Fatalf("buy then sell of %s made money: %d -> %d", item, before, p.Money())
		}
	}
}

func TestModelPlantSeedNeedsSeedSelection(t *testing.T) {
	m := newScenarioModel(t, nil)
	if err := m.TillSoil(at(0, 0)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if _, err := m.PlantSeed(at(0, 0)); !errors.Is(err, ErrNoSeedSelected) {
		t.Fatalf("expected ErrNoSeedSelected, got %v", err)
	}
	m.Player().AddItem(ItemAmount{Item: ItemKale, Count: 1})
	if err := m.SelectItem(ItemKale); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := m.PlantSeed(at(0, 0)); !errors.Is(err, ErrNoSeedSelected) {
		t.Fatalf("produce is not a seed, got %v", err)
	}
	m.Player().AddItem(ItemAmount{Item: ItemKaleSeed, Count: 2})
	if err := m.SelectItem(ItemKaleSeed); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := m.PlantSeed(at(0, 1)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("untilled: expected ErrInvalidTarget, got %v", err)
	}
	if m.Player().Count(ItemKaleSeed) != 2 {
		t.Fatalf("failed plant consumed a seed")
	}
}

func TestModelCloneIsIndependent(t *testing.T) {
	m := newScenarioModel(t, nil)
	m.Player().AddMoney(5)
	m.Player().AddItem(ItemAmount{Item: ItemKaleSeed, Count: 1})
	if err := m.TillSoil(at(0, 0)); err != nil {
		t.Fatalf("till: %v", err)
	}
	if err := m.SelectItem(ItemKaleSeed); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := m.PlantSeed(at(0, 0)); err != nil {
		t.Fatalf("plant: %v", err)
	}

	c := m.Clone()
	c.NewDay()
	if err := c.TillSoil(at(2, 2)); err != nil {
		t.Fatalf("till clone: %v", err)
	}
	if err := c.Buy(ItemPotatoSeed); err != nil {
		t.Fatalf("buy on clone: %v", err)
	}
	if _, err := c.MovePlayer(world.DirectionRight); err != nil {
		t.Fatalf("move clone: %v", err)
	}

	if m.DaysElapsed() != 0 {
		t.Fatalf("original day moved to %d", m.DaysElapsed())
	}
	if plant, _ := m.PlantAt(at(0, 0)); plant.Age() != 0 {
		t.Fatalf("original plant aged to %d", plant.Age())
	}
	if cell, _ := m.Ground(at(2, 2)); cell != world.CellUntilled {
		t.Fatalf("original ground changed to %s", cell)
	}
	if m.Player().Money() != 5 || m.Player().Count(ItemPotatoSeed) != 0 {
		t.Fatalf("original player changed: money=%d potato seeds=%d", m.Player().Money(), m.Player().Count(ItemPotatoSeed))
	}
	if m.PlayerPosition() != at(0, 0) {
		t.Fatalf("original player moved to %+v", m.PlayerPosition())
	}
	if c.DaysElapsed() != 1 || c.Player().Count(ItemPotatoSeed) != 1 {
		t.Fatalf("clone lost its own changes")
	}
}
