package entity

import (
	"fmt"
	"strings"
)

// Inventory is an ordered bag of item names, duplicates allowed
type Inventory struct {
	items []string
}

// Add appends an item
func (inv *Inventory) Add(item string) {
	inv.items = append(inv.items, item)
}

// Remove drops the first occurrence of item
func (inv *Inventory) Remove(item string) error {
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", item, ErrItemNotFound)
}

// Items returns a copy of the content
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) String() string {
	return "Inventory: " + strings.Join(inv.items, ", ")
}
