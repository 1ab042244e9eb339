package farm

import "fmt"

const (
	ItemPotatoSeed = "Potato Seed"
	ItemKaleSeed   = "Kale Seed"
	ItemBerrySeed  = "Berry Seed"
	ItemPotato     = "Potato"
	ItemKale       = "Kale"
	ItemBerry      = "Berry"
)

const DefaultMaxEnergy = 100

type Action string

const (
	ActionTill    Action = "till"
	ActionUntill  Action = "untill"
	ActionPlant   Action = "plant"
	ActionHarvest Action = "harvest"
	ActionRemove  Action = "remove"
)

// Catalog is the fixed economy and plant table of a game. It is loaded once
// and shared read-only by every farm built from it.
type Catalog struct {
	Items       []string               `json:"items" yaml:"items"`
	SellPrices  map[string]int         `json:"sell_prices" yaml:"sell_prices"`
	BuyPrices   map[string]int         `json:"buy_prices" yaml:"buy_prices"`
	Seeds       map[string]VariantSpec `json:"seeds" yaml:"seeds"`
	MaxEnergy   int                    `json:"max_energy" yaml:"max_energy"`
	EnergyCosts map[Action]int         `json:"energy_costs" yaml:"energy_costs"`
}

// DefaultCatalog returns the built-in tables. Farming actions cost no energy
// until a catalog says otherwise.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Items: []string{
			ItemPotatoSeed,
			ItemKaleSeed,
			ItemBerrySeed,
			ItemPotato,
			ItemKale,
			ItemBerry,
		},
		SellPrices: map[string]int{
			ItemPotatoSeed: 1,
			ItemKaleSeed:   2,
			ItemBerrySeed:  3,
			ItemPotato:     3,
			ItemKale:       8,
			ItemBerry:      4,
		},
		BuyPrices: map[string]int{
			ItemPotatoSeed: 2,
			ItemKaleSeed:   5,
			ItemBerrySeed:  6,
		},
		Seeds: map[string]VariantSpec{
			ItemPotatoSeed: {
				Variant:   VariantPotato,
				StageDays: []int{2, 2, 2},
				Yield:     ItemAmount{Item: ItemPotato, Count: 1},
			},
			ItemKaleSeed: {
				Variant:   VariantKale,
				StageDays: []int{1, 2, 2, 3},
				Yield:     ItemAmount{Item: ItemKale, Count: 1},
			},
			ItemBerrySeed: {
				Variant:    VariantBerry,
				StageDays:  []int{2, 2, 2, 3},
				Yield:      ItemAmount{Item: ItemBerry, Count: 2},
				Regrowable: true,
			},
		},
		MaxEnergy: DefaultMaxEnergy,
		EnergyCosts: map[Action]int{
			ActionTill:    0,
			ActionUntill:  0,
			ActionPlant:   0,
			ActionHarvest: 0,
			ActionRemove:  0,
		},
	}
}

func (c *Catalog) HasItem(item string) bool {
	_, ok := c.SellPrices[item]
	return ok
}

func (c *Catalog) SellPrice(item string) (int, bool) {
	price, ok := c.SellPrices[item]
	return price, ok
}

func (c *Catalog) BuyPrice(item string) (int, bool) {
	price, ok := c.BuyPrices[item]
	return price, ok
}

func (c *Catalog) SeedSpec(item string) (VariantSpec, bool) {
	spec, ok := c.Seeds[item]
	return spec, ok
}

func (c *Catalog) EnergyCost(action Action) int {
	return c.EnergyCosts[action]
}

func (c *Catalog) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("at least one item is required: %w", ErrInvalidCatalog)
	}
	if c.MaxEnergy <= 0 {
		return fmt.Errorf("max_energy must be positive, got %d: %w", c.MaxEnergy, ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		if item == "" || seen[item] {
			return fmt.Errorf("item %q is empty or repeated: %w", item, ErrInvalidCatalog)
		}
		seen[item] = true
		price, ok := c.SellPrices[item]
		if !ok || price < 0 {
			return fmt.Errorf("item %s needs a non-negative sell price: %w", item, ErrInvalidCatalog)
		}
	}
	if len(c.SellPrices) != len(c.Items) {
		return fmt.Errorf("sell prices list items outside the item table: %w", ErrInvalidCatalog)
	}
	for item, buy := range c.BuyPrices {
		if !seen[item] {
			return fmt.Errorf("buy price for unknown item %s: %w", item, ErrInvalidCatalog)
		}
		if buy < 0 {
			return fmt.Errorf("item %s has negative buy price %d: %w", item, buy, ErrInvalidCatalog)
		}
		if sell := c.SellPrices[item]; sell > buy {
			return fmt.Errorf("item %s sells for %d but costs %d: %w", item, sell, buy, ErrInvalidCatalog)
		}
	}
	for seed, spec := range c.Seeds {
		if !seen[seed] {
			return fmt.Errorf("seed %s is not an item: %w", seed, ErrInvalidCatalog)
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("seed %s: %w", seed, err)
		}
		if !seen[spec.Yield.Item] {
			return fmt.Errorf("seed %s yields unknown item %s: %w", seed, spec.Yield.Item, ErrInvalidCatalog)
		}
	}
	for action, cost := range c.EnergyCosts {
		if cost < 0 {
			return fmt.Errorf("energy cost for %s is negative: %w", action, ErrInvalidCatalog)
		}
	}
	return nil
}
