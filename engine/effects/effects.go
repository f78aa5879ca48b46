// Package effects implements centralized world mutation via the Apply function.
// Every effect type is one atomic operation. Feasibility is decided by the
// caller before Apply runs; effects do not check stock.
package effects

import (
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// Apply applies a list of effects to the world, mutating it, and returns
// the events emitted.
func Apply(w *types.World, effects []types.Effect) []types.Event {
	var events []types.Event

	for _, eff := range effects {
		switch eff.Type {
		case "add_ingredient":
			state.EnsureIngredient(w, eff.Name)
			w.Ingredients[eff.Name] = state.AddStock(w.Ingredients[eff.Name], eff.Amount)
			events = append(events, stockEvent("ingredient_gained", eff.Name, eff.Amount, w.Ingredients[eff.Name]))

		case "take_ingredient":
			state.EnsureIngredient(w, eff.Name)
			w.Ingredients[eff.Name] -= eff.Amount
			events = append(events, stockEvent("ingredient_spent", eff.Name, eff.Amount, w.Ingredients[eff.Name]))

		case "add_trophy":
			state.EnsureTrophy(w, eff.Name)
			w.Trophies[eff.Name] = state.AddStock(w.Trophies[eff.Name], eff.Amount)
			events = append(events, stockEvent("trophy_gained", eff.Name, eff.Amount, w.Trophies[eff.Name]))

		case "take_trophy":
			state.EnsureTrophy(w, eff.Name)
			w.Trophies[eff.Name] -= eff.Amount
			events = append(events, stockEvent("trophy_spent", eff.Name, eff.Amount, w.Trophies[eff.Name]))

		case "add_potion":
			f, ok := state.Formula(w, eff.Name)
			if !ok {
				continue
			}
			f.Stock = state.AddStock(f.Stock, eff.Amount)
			events = append(events, stockEvent("potion_brewed", eff.Name, eff.Amount, f.Stock))

		case "take_potion":
			f, ok := state.Formula(w, eff.Name)
			if !ok {
				continue
			}
			f.Stock -= eff.Amount
			events = append(events, stockEvent("potion_consumed", eff.Name, eff.Amount, f.Stock))

		case "learn_formula":
			reqs := make([]types.ItemQty, len(eff.Requirements))
			copy(reqs, eff.Requirements)
			w.Potions[eff.Name] = &types.Formula{Name: eff.Name, Requirements: reqs}
			for _, r := range reqs {
				state.EnsureIngredient(w, r.Name)
			}
			state.PromoteRefs(w, eff.Name)
			events = append(events, types.Event{
				Type: "formula_learned",
				Data: map[string]any{"potion": eff.Name, "ingredients": len(reqs)},
			})

		case "learn_counter":
			events = append(events, learnCounter(w, eff)...)
		}
	}

	return events
}

// learnCounter records eff.Name as effective against eff.Beast, creating
// the beast and, for signs, the sign record on first reference.
func learnCounter(w *types.World, eff types.Effect) []types.Event {
	var events []types.Event

	b, created := state.EnsureBeast(w, eff.Beast)
	if state.HasCounter(b, eff.Counter, eff.Name) {
		return nil
	}

	switch eff.Counter {
	case types.CounterSign:
		if !w.Signs[eff.Name] {
			w.Signs[eff.Name] = true
			events = append(events, types.Event{
				Type: "sign_learned",
				Data: map[string]any{"sign": eff.Name},
			})
		}
		b.Signs = append(b.Signs, eff.Name)

	case types.CounterPotion:
		b.Potions = append(b.Potions, state.RefFor(w, eff.Name))

	default:
		return nil
	}

	return append(events, types.Event{
		Type: "bestiary_updated",
		Data: map[string]any{
			"beast":   eff.Beast,
			"counter": string(eff.Counter),
			"name":    eff.Name,
			"created": created,
		},
	})
}

func stockEvent(typ, name string, amount, total int) types.Event {
	return types.Event{
		Type: typ,
		Data: map[string]any{"name": name, "amount": amount, "total": total},
	}
}
