package engine

import (
	"github.com/nathoo/witchertrack/engine/rules"
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// learnEffect records a sign or potion as effective against a beast.
func (e *Engine) learnEffect(s types.Sentence) types.Result {
	b, known := state.Beast(e.World, s.Beast)
	if known && state.HasCounter(b, s.Counter, s.Name) {
		return reply("Already known effectiveness")
	}

	msg := "Bestiary entry updated: " + s.Beast
	if !known {
		msg = "New bestiary entry added: " + s.Beast
	}

	effs := []types.Effect{{
		Type:    "learn_counter",
		Name:    s.Name,
		Beast:   s.Beast,
		Counter: s.Counter,
	}}
	return e.commit(nil, effs, msg)
}

// learnFormula stores a new potion formula. Formulas are immutable once
// learned.
func (e *Engine) learnFormula(s types.Sentence) types.Result {
	guards := []rules.Guard{{
		Condition: rules.Not(types.Condition{Type: "knows_formula", Name: s.Name}),
		Fail:      "Already known formula",
	}}
	effs := []types.Effect{{
		Type:         "learn_formula",
		Name:         s.Name,
		Requirements: s.Items,
	}}
	return e.commit(guards, effs, "New alchemy formula obtained: "+s.Name)
}
