// Package rules evaluates conditions against the world before any effect
// is committed. Every guard of a command is checked against the same,
// untouched world; nothing here mutates state.
package rules

import (
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// Guard pairs a condition with the response reported when it fails.
type Guard struct {
	Condition types.Condition
	Fail      string
}

// EvalCondition evaluates a single condition against the current world.
func EvalCondition(c types.Condition, w *types.World) bool {
	switch c.Type {
	case "has_ingredient":
		return state.Ingredient(w, c.Name) >= c.Amount

	case "has_trophy":
		return state.Trophy(w, c.Name) >= c.Amount

	case "has_potion":
		return state.PotionStock(w, c.Name) >= c.Amount

	case "knows_formula":
		return state.KnowsFormula(w, c.Name)

	case "knows_beast":
		_, ok := state.Beast(w, c.Name)
		return ok

	case "not":
		if c.Inner == nil {
			return true
		}
		return !EvalCondition(*c.Inner, w)

	default:
		return false
	}
}

// FirstFailing returns the first guard whose condition does not hold.
func FirstFailing(guards []Guard, w *types.World) (Guard, bool) {
	for _, g := range guards {
		if !EvalCondition(g.Condition, w) {
			return g, true
		}
	}
	return Guard{}, false
}

// Not wraps c in a negation.
func Not(c types.Condition) types.Condition {
	return types.Condition{Type: "not", Inner: &c}
}

// RequireAll returns one condType condition per distinct name in items, with
// quantities of repeated names summed, in first-seen order. Checking the
// totals keeps a list that names one record twice from overdrawing it.
// Sums saturate, so a total too large to represent can never be met.
func RequireAll(condType string, items []types.ItemQty) []types.Condition {
	var order []string
	totals := map[string]int{}
	for _, it := range items {
		if _, seen := totals[it.Name]; !seen {
			order = append(order, it.Name)
		}
		totals[it.Name] = state.AddStock(totals[it.Name], it.Quantity)
	}

	conds := make([]types.Condition, 0, len(order))
	for _, name := range order {
		conds = append(conds, types.Condition{Type: condType, Name: name, Amount: totals[name]})
	}
	return conds
}

// Guards attaches the same failure response to every condition.
func Guards(conds []types.Condition, fail string) []Guard {
	guards := make([]Guard, 0, len(conds))
	for _, c := range conds {
		guards = append(guards, Guard{Condition: c, Fail: fail})
	}
	return guards
}
