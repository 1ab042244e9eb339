package farm

// Inventory counts items by name. A missing key means zero; counts never go
// negative.
type Inventory map[string]int

func (inv Inventory) Count(item string) int {
	return inv[item]
}

func (inv Inventory) Add(item string, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	inv[item] += amount
}

func (inv Inventory) Remove(item string, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	left := inv[item] - amount
	if left <= 0 {
		delete(inv, item)
		return
	}
	inv[item] = left
}

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
