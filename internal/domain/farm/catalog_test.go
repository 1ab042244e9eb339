package farm

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if got, want := len(c.Items), 6; got != want {
		t.Fatalf("item count mismatch: got=%d want=%d", got, want)
	}
	if c.MaxEnergy != 100 {
		t.Fatalf("expected max energy 100, got %d", c.MaxEnergy)
	}
}

func TestDefaultCatalogBuyThenSellNeverProfits(t *testing.T) {
	c := DefaultCatalog()
	for item, buy := range c.BuyPrices {
		sell, ok := c.SellPrice(item)
		if !ok {
			t.Fatalf("buyable item %s has no sell price", item)
		}
		if sell > buy {
			t.Fatalf("%s sells for %d but costs %d", item, sell, buy)
		}
	}
	for _, produce := range []string{ItemPotato, ItemKale, ItemBerry} {
		if _, ok := c.BuyPrice(produce); ok {
			t.Fatalf("produce %s must not be buyable", produce)
		}
	}
}

func TestCatalogValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{name: "sell above buy", mutate: func(c *Catalog) { c.SellPrices[ItemKaleSeed] = 50 }},
		{name: "buy unknown", mutate: func(c *Catalog) { c.BuyPrices["Gold"] = 1 }},
		{name: "missing sell", mutate: func(c *Catalog) { delete(c.SellPrices, ItemBerry) }},
		{name: "no energy", mutate: func(c *Catalog) { c.MaxEnergy = 0 }},
		{name: "negative cost", mutate: func(c *Catalog) { c.EnergyCosts[ActionTill] = -1 }},
		{name: "duplicate item", mutate: func(c *Catalog) { c.Items = append(c.Items, ItemKale) }},
		{name: "seed yields unknown", mutate: func(c *Catalog) {
			spec := c.Seeds[ItemKaleSeed]
			spec.Yield.Item = "Cabbage"
			c.Seeds[ItemKaleSeed] = spec
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultCatalog()
			tc.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}
