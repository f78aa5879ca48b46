package engine

import (
	"github.com/nathoo/witchertrack/engine/rules"
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// loot credits every listed ingredient. It cannot fail.
func (e *Engine) loot(s types.Sentence) types.Result {
	effs := make([]types.Effect, 0, len(s.Items))
	for _, it := range s.Items {
		effs = append(effs, types.Effect{Type: "add_ingredient", Name: it.Name, Amount: it.Quantity})
	}
	return e.commit(nil, effs, "Alchemy ingredients obtained")
}

// trade swaps trophies for ingredients. Every trophy total is checked
// before anything moves.
func (e *Engine) trade(s types.Sentence) types.Result {
	guards := rules.Guards(rules.RequireAll("has_trophy", s.Trophies), "Not enough trophies")

	effs := make([]types.Effect, 0, len(s.Trophies)+len(s.Items))
	for _, t := range s.Trophies {
		effs = append(effs, types.Effect{Type: "take_trophy", Name: t.Name, Amount: t.Quantity})
	}
	for _, it := range s.Items {
		effs = append(effs, types.Effect{Type: "add_ingredient", Name: it.Name, Amount: it.Quantity})
	}
	return e.commit(guards, effs, "Trade successful")
}

// brew turns a formula's requirements into one unit of the potion.
func (e *Engine) brew(s types.Sentence) types.Result {
	f, ok := state.Formula(e.World, s.Name)
	if !ok {
		return reply("No formula for " + s.Name)
	}

	guards := rules.Guards(rules.RequireAll("has_ingredient", f.Requirements), "Not enough ingredients")

	effs := make([]types.Effect, 0, len(f.Requirements)+1)
	for _, r := range f.Requirements {
		effs = append(effs, types.Effect{Type: "take_ingredient", Name: r.Name, Amount: r.Quantity})
	}
	effs = append(effs, types.Effect{Type: "add_potion", Name: s.Name, Amount: 1})
	return e.commit(guards, effs, "Alchemy item created: "+s.Name)
}
