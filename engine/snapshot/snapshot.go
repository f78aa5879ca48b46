// Package snapshot renders the world as sorted, JSON-serializable tables.
// Snapshots are for inspection only; there is no load path.
package snapshot

import (
	"encoding/json"
	"sort"

	"github.com/nathoo/witchertrack/types"
)

// Snapshot is the JSON form of a World. Every table is sorted by name.
type Snapshot struct {
	Turn        int             `json:"turn"`
	Ingredients []types.ItemQty `json:"ingredients"`
	Trophies    []types.ItemQty `json:"trophies"`
	Potions     []Potion        `json:"potions"`
	Signs       []string        `json:"signs"`
	Beasts      []Beast         `json:"beasts"`
}

// Potion is a learned formula and its brewed stock.
type Potion struct {
	Name         string          `json:"name"`
	Stock        int             `json:"stock"`
	Requirements []types.ItemQty `json:"requirements"`
}

// Beast is a bestiary entry. Counters keep the order they were learned in.
type Beast struct {
	Name    string            `json:"name"`
	Signs   []string          `json:"signs"`
	Potions []types.PotionRef `json:"potions"`
}

// Take copies w into a Snapshot. Records at quantity 0 are included.
func Take(w *types.World) *Snapshot {
	s := &Snapshot{
		Turn:        w.Turn,
		Ingredients: table(w.Ingredients),
		Trophies:    table(w.Trophies),
		Potions:     []Potion{},
		Signs:       []string{},
		Beasts:      []Beast{},
	}

	for _, name := range sortedKeys(w.Potions) {
		f := w.Potions[name]
		reqs := make([]types.ItemQty, len(f.Requirements))
		copy(reqs, f.Requirements)
		s.Potions = append(s.Potions, Potion{Name: name, Stock: f.Stock, Requirements: reqs})
	}

	for name, known := range w.Signs {
		if known {
			s.Signs = append(s.Signs, name)
		}
	}
	sort.Strings(s.Signs)

	for _, name := range sortedKeys(w.Beasts) {
		b := w.Beasts[name]
		s.Beasts = append(s.Beasts, Beast{
			Name:    name,
			Signs:   append([]string{}, b.Signs...),
			Potions: append([]types.PotionRef{}, b.Potions...),
		})
	}

	return s
}

// Marshal serializes a snapshot of w to indented JSON bytes.
func Marshal(w *types.World) ([]byte, error) {
	return json.MarshalIndent(Take(w), "", "  ")
}

func table(m map[string]int) []types.ItemQty {
	items := make([]types.ItemQty, 0, len(m))
	for _, name := range sortedKeys(m) {
		items = append(items, types.ItemQty{Name: name, Quantity: m[name]})
	}
	return items
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
