// Package state manages the World tables and the name-keyed lookups over
// them. Records are unique by name because every table is a map.
package state

import (
	"math"

	"github.com/nathoo/witchertrack/types"
)

// NewWorld creates an empty world.
func NewWorld() *types.World {
	return &types.World{
		Ingredients: map[string]int{},
		Trophies:    map[string]int{},
		Potions:     map[string]*types.Formula{},
		Signs:       map[string]bool{},
		Beasts:      map[string]*types.Beast{},
	}
}

// Ingredient returns the stock of an ingredient. Unknown ingredients return 0.
func Ingredient(w *types.World, name string) int {
	return w.Ingredients[name]
}

// Trophy returns the stock of a trophy. Unknown trophies return 0.
func Trophy(w *types.World, name string) int {
	return w.Trophies[name]
}

// PotionStock returns how many units of a potion have been brewed and not
// consumed. Potions without a formula return 0.
func PotionStock(w *types.World, name string) int {
	if f, ok := w.Potions[name]; ok {
		return f.Stock
	}
	return 0
}

// Formula returns the learned formula for a potion.
func Formula(w *types.World, name string) (*types.Formula, bool) {
	f, ok := w.Potions[name]
	return f, ok
}

// KnowsFormula returns true if a formula with that name has been learned.
func KnowsFormula(w *types.World, name string) bool {
	_, ok := w.Potions[name]
	return ok
}

// Beast returns bestiary knowledge about a beast.
func Beast(w *types.World, name string) (*types.Beast, bool) {
	b, ok := w.Beasts[name]
	return b, ok
}

// EnsureIngredient creates an ingredient record at 0 if it does not exist.
func EnsureIngredient(w *types.World, name string) {
	if _, ok := w.Ingredients[name]; !ok {
		w.Ingredients[name] = 0
	}
}

// EnsureTrophy creates a trophy record at 0 if it does not exist.
func EnsureTrophy(w *types.World, name string) {
	if _, ok := w.Trophies[name]; !ok {
		w.Trophies[name] = 0
	}
}

// EnsureBeast returns the beast record, creating it if needed. created
// reports whether this call made the record.
func EnsureBeast(w *types.World, name string) (b *types.Beast, created bool) {
	if b, ok := w.Beasts[name]; ok {
		return b, false
	}
	b = &types.Beast{Name: name}
	w.Beasts[name] = b
	return b, true
}

// HasCounter reports whether a sign or potion of that name is already
// recorded as effective against b. Potion refs compare by name only.
func HasCounter(b *types.Beast, kind types.CounterKind, name string) bool {
	switch kind {
	case types.CounterSign:
		for _, s := range b.Signs {
			if s == name {
				return true
			}
		}
	case types.CounterPotion:
		for _, r := range b.Potions {
			if r.Name == name {
				return true
			}
		}
	}
	return false
}

// RefFor builds the reference to store for a potion counter: Known when
// its formula has been learned, NameOnly otherwise.
func RefFor(w *types.World, name string) types.PotionRef {
	if KnowsFormula(w, name) {
		return types.PotionRef{Name: name, Tag: types.RefKnown}
	}
	return types.PotionRef{Name: name, Tag: types.RefNameOnly}
}

// PromoteRefs re-tags every NameOnly reference to name as Known. Called
// once the formula for name is learned.
func PromoteRefs(w *types.World, name string) {
	for _, b := range w.Beasts {
		for i := range b.Potions {
			if b.Potions[i].Name == name {
				b.Potions[i].Tag = types.RefKnown
			}
		}
	}
}

// Quantity returns the stock for name in a category.
func Quantity(w *types.World, cat types.Category, name string) int {
	switch cat {
	case types.CategoryIngredient:
		return Ingredient(w, name)
	case types.CategoryTrophy:
		return Trophy(w, name)
	case types.CategoryPotion:
		return PotionStock(w, name)
	}
	return 0
}

// InStock returns every record of a category with a positive quantity, in
// no particular order.
func InStock(w *types.World, cat types.Category) []types.ItemQty {
	var items []types.ItemQty
	switch cat {
	case types.CategoryIngredient:
		items = positive(w.Ingredients)
	case types.CategoryTrophy:
		items = positive(w.Trophies)
	case types.CategoryPotion:
		for name, f := range w.Potions {
			if f.Stock > 0 {
				items = append(items, types.ItemQty{Name: name, Quantity: f.Stock})
			}
		}
	}
	return items
}

// Units returns the summed stock of a category.
func Units(w *types.World, cat types.Category) int {
	total := 0
	for _, it := range InStock(w, cat) {
		total += it.Quantity
	}
	return total
}

func positive(table map[string]int) []types.ItemQty {
	var items []types.ItemQty
	for name, qty := range table {
		if qty > 0 {
			items = append(items, types.ItemQty{Name: name, Quantity: qty})
		}
	}
	return items
}

// AddStock returns a+b for non-negative a and b, saturating at math.MaxInt
// instead of wrapping.
func AddStock(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
