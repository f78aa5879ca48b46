// Package query answers the read-only Total and What sentences. Output
// order is deterministic: names compare as raw bytes.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// None is the answer to a listing with nothing in stock.
const None = "None"

// TotalAll lists every record of cat with positive stock, by name.
func TotalAll(w *types.World, cat types.Category) string {
	items := state.InStock(w, cat)
	if len(items) == 0 {
		return None
	}
	SortByName(items)
	return FormatItems(items)
}

// TotalOne returns the stock of a single record, 0 when unknown.
func TotalOne(w *types.World, cat types.Category, name string) string {
	return strconv.Itoa(state.Quantity(w, cat, name))
}

// Effective lists every sign and potion known to work against beast. A
// sign and a potion with the same name are separate counters and are both
// listed.
func Effective(w *types.World, beast string) string {
	b, ok := state.Beast(w, beast)
	if !ok {
		return "No knowledge of " + beast
	}

	names := make([]string, 0, len(b.Potions)+len(b.Signs))
	for _, ref := range b.Potions {
		names = append(names, ref.Name)
	}
	names = append(names, b.Signs...)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Ingredients lists a formula's requirements, largest quantity first and
// by name within equal quantities.
func Ingredients(w *types.World, potion string) string {
	f, ok := state.Formula(w, potion)
	if !ok {
		return "No formula for " + potion
	}

	items := make([]types.ItemQty, len(f.Requirements))
	copy(items, f.Requirements)
	SortByQuantityDesc(items)
	return FormatItems(items)
}

// SortByName sorts items ascending by name.
func SortByName(items []types.ItemQty) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
}

// SortByQuantityDesc sorts items by quantity descending, then by name.
func SortByQuantityDesc(items []types.ItemQty) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
}

// FormatItems renders "<qty> <name>" pairs joined by ", ".
func FormatItems(items []types.ItemQty) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d %s", it.Quantity, it.Name)
	}
	return strings.Join(parts, ", ")
}
