package farm

import (
	"fmt"

	"farmstead/internal/domain/world"
)

type Player struct {
	catalog   *Catalog
	position  world.Position
	facing    world.Direction
	money     int
	energy    int
	inventory Inventory
	selected  string
}

func NewPlayer(catalog *Catalog) *Player {
	return &Player{
		catalog:   catalog,
		facing:    world.DefaultDirection,
		energy:    catalog.MaxEnergy,
		inventory: Inventory{},
	}
}

func (p *Player) Position() world.Position { return p.position }
func (p *Player) Facing() world.Direction  { return p.facing }
func (p *Player) Money() int               { return p.money }
func (p *Player) Energy() int              { return p.energy }
func (p *Player) MaxEnergy() int           { return p.catalog.MaxEnergy }
func (p *Player) Inventory() Inventory     { return p.inventory.Clone() }
func (p *Player) Count(item string) int    { return p.inventory.Count(item) }

// SelectedItem returns the selected item name and whether one is selected.
func (p *Player) SelectedItem() (string, bool) {
	return p.selected, p.selected != ""
}

// Move always turns the player toward dir and steps only if the destination
// is inside the grid.
func (p *Player) Move(dir world.Direction, grid *world.Grid) (moved bool) {
	p.facing = dir
	next := p.position.Step(dir)
	if !grid.InBounds(next) {
		return false
	}
	p.position = next
	return true
}

func (p *Player) SelectItem(item string) error {
	if !p.catalog.HasItem(item) {
		return fmt.Errorf("select %q: %w", item, ErrUnknownItem)
	}
	p.selected = item
	return nil
}

func (p *Player) ClearSelection() {
	p.selected = ""
}

func (p *Player) AddItem(a ItemAmount) {
	p.inventory.Add(a.Item, a.Count)
}

func (p *Player) RemoveItem(a ItemAmount) {
	p.inventory.Remove(a.Item, a.Count)
}

func (p *Player) Buy(item string, price int) error {
	if _, ok := p.catalog.BuyPrice(item); !ok {
		return fmt.Errorf("buy %q: %w", item, ErrNotForSale)
	}
	if p.money < price {
		return fmt.Errorf("buy %s for %d with %d: %w", item, price, p.money, ErrInsufficientFunds)
	}
	p.money -= price
	p.inventory.Add(item, 1)
	return nil
}

func (p *Player) Sell(item string, price int) error {
	if !p.catalog.HasItem(item) {
		return fmt.Errorf("sell %q: %w", item, ErrUnknownItem)
	}
	if p.inventory.Count(item) <= 0 {
		return fmt.Errorf("sell %s: %w", item, ErrInsufficientStock)
	}
	p.inventory.Remove(item, 1)
	p.money += price
	return nil
}

func (p *Player) SpendEnergy(amount int) error {
	if amount <= 0 {
		return nil
	}
	if amount > p.energy {
		return fmt.Errorf("need %d energy, have %d: %w", amount, p.energy, ErrExhausted)
	}
	p.energy -= amount
	return nil
}

func (p *Player) RestoreEnergy() {
	p.energy = p.catalog.MaxEnergy
}

// AddMoney credits or debits money directly; it never drops below zero.
func (p *Player) AddMoney(amount int) {
	p.money += amount
	if p.money < 0 {
		p.money = 0
	}
}
