package engine

import (
	"github.com/nathoo/witchertrack/engine/rules"
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// Unprepared is the response when Geralt has nothing that works on a beast.
const Unprepared = "Geralt is unprepared and barely escapes with his life"

// encounter fights a beast with whatever the bestiary says works on it.
// Encounters are deterministic: Geralt wins whenever he holds at least one
// stocked effective potion or knows an effective sign.
func (e *Engine) encounter(s types.Sentence) types.Result {
	guards := []rules.Guard{{
		Condition: types.Condition{Type: "knows_beast", Name: s.Beast},
		Fail:      Unprepared,
	}}

	effs := consumeEffective(e.World, s.Beast)
	if b, ok := state.Beast(e.World, s.Beast); ok && len(effs) == 0 && len(b.Signs) == 0 {
		return reply(Unprepared)
	}

	effs = append(effs, types.Effect{Type: "add_trophy", Name: s.Beast, Amount: 1})
	return e.commit(guards, effs, "Geralt defeats "+s.Beast)
}

// consumeEffective returns one take_potion effect for every effective
// potion the world currently has in stock, in bestiary order. Unknown
// beasts yield none.
func consumeEffective(w *types.World, beast string) []types.Effect {
	b, ok := state.Beast(w, beast)
	if !ok {
		return nil
	}

	var effs []types.Effect
	for _, ref := range b.Potions {
		stocked := types.Condition{Type: "has_potion", Name: ref.Name, Amount: 1}
		if !rules.EvalCondition(stocked, w) {
			continue
		}
		effs = append(effs, types.Effect{Type: "take_potion", Name: ref.Name, Amount: 1})
	}
	return effs
}
