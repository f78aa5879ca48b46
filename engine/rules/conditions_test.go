package rules

import (
	"math"
	"testing"

	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

func condTestWorld() *types.World {
	w := state.NewWorld()
	w.Ingredients["Rebis"] = 3
	w.Ingredients["Vitriol"] = 0
	w.Trophies["Harpy"] = 2
	w.Potions["Swallow"] = &types.Formula{Name: "Swallow", Stock: 1}
	w.Beasts["Harpy"] = &types.Beast{Name: "Harpy"}
	return w
}

func TestEvalCondition(t *testing.T) {
	w := condTestWorld()

	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{
			name: "has_ingredient: enough",
			cond: types.Condition{Type: "has_ingredient", Name: "Rebis", Amount: 3},
			want: true,
		},
		{
			name: "has_ingredient: short",
			cond: types.Condition{Type: "has_ingredient", Name: "Rebis", Amount: 4},
			want: false,
		},
		{
			name: "has_ingredient: zero stock",
			cond: types.Condition{Type: "has_ingredient", Name: "Vitriol", Amount: 1},
			want: false,
		},
		{
			name: "has_ingredient: unknown",
			cond: types.Condition{Type: "has_ingredient", Name: "Quebrith", Amount: 1},
			want: false,
		},
		{
			name: "has_trophy: enough",
			cond: types.Condition{Type: "has_trophy", Name: "Harpy", Amount: 2},
			want: true,
		},
		{
			name: "has_trophy: unknown",
			cond: types.Condition{Type: "has_trophy", Name: "Forktail", Amount: 1},
			want: false,
		},
		{
			name: "has_potion: stocked",
			cond: types.Condition{Type: "has_potion", Name: "Swallow", Amount: 1},
			want: true,
		},
		{
			name: "has_potion: no formula",
			cond: types.Condition{Type: "has_potion", Name: "Cat", Amount: 1},
			want: false,
		},
		{
			name: "knows_formula: learned",
			cond: types.Condition{Type: "knows_formula", Name: "Swallow"},
			want: true,
		},
		{
			name: "knows_formula: not learned",
			cond: types.Condition{Type: "knows_formula", Name: "Cat"},
			want: false,
		},
		{
			name: "knows_beast: known",
			cond: types.Condition{Type: "knows_beast", Name: "Harpy"},
			want: true,
		},
		{
			name: "knows_beast: unknown",
			cond: types.Condition{Type: "knows_beast", Name: "Wyvern"},
			want: false,
		},
		{
			name: "not: negates",
			cond: Not(types.Condition{Type: "knows_formula", Name: "Swallow"}),
			want: false,
		},
		{
			name: "not: empty inner",
			cond: types.Condition{Type: "not"},
			want: true,
		},
		{
			name: "unknown type",
			cond: types.Condition{Type: "bogus"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvalCondition(tt.cond, w)
			if got != tt.want {
				t.Errorf("EvalCondition(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestFirstFailing(t *testing.T) {
	w := condTestWorld()

	guards := []Guard{
		{Condition: types.Condition{Type: "has_ingredient", Name: "Rebis", Amount: 1}, Fail: "first"},
		{Condition: types.Condition{Type: "has_ingredient", Name: "Vitriol", Amount: 1}, Fail: "second"},
		{Condition: types.Condition{Type: "has_trophy", Name: "Forktail", Amount: 1}, Fail: "third"},
	}

	g, failed := FirstFailing(guards, w)
	if !failed {
		t.Fatal("expected a failing guard")
	}
	if g.Fail != "second" {
		t.Errorf("expected first failure 'second', got %q", g.Fail)
	}

	if _, failed := FirstFailing(guards[:1], w); failed {
		t.Error("expected no failing guard")
	}
}

func TestRequireAll_AggregatesRepeatedNames(t *testing.T) {
	items := []types.ItemQty{
		{Name: "Rebis", Quantity: 2},
		{Name: "Vitriol", Quantity: 1},
		{Name: "Rebis", Quantity: 2},
	}

	conds := RequireAll("has_ingredient", items)
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Name != "Rebis" || conds[0].Amount != 4 {
		t.Errorf("expected Rebis x4 first, got %+v", conds[0])
	}
	if conds[1].Name != "Vitriol" || conds[1].Amount != 1 {
		t.Errorf("expected Vitriol x1 second, got %+v", conds[1])
	}

	// Two entries of 2 each pass individually against 3 Rebis but not together.
	w := condTestWorld()
	if EvalCondition(conds[0], w) {
		t.Error("aggregated requirement of 4 Rebis should fail with 3 in stock")
	}
}

func TestRequireAll_HugeTotalCannotBeMet(t *testing.T) {
	items := []types.ItemQty{
		{Name: "Rebis", Quantity: math.MaxInt},
		{Name: "Rebis", Quantity: math.MaxInt},
	}

	conds := RequireAll("has_ingredient", items)
	if len(conds) != 1 || conds[0].Amount != math.MaxInt {
		t.Fatalf("expected one Rebis condition saturated at MaxInt, got %+v", conds)
	}
	if EvalCondition(conds[0], condTestWorld()) {
		t.Error("saturated requirement should fail with 3 Rebis in stock")
	}
}

func TestGuards(t *testing.T) {
	conds := []types.Condition{
		{Type: "has_trophy", Name: "Harpy", Amount: 1},
		{Type: "has_trophy", Name: "Nekker", Amount: 1},
	}
	guards := Guards(conds, "Not enough trophies")
	if len(guards) != 2 {
		t.Fatalf("expected 2 guards, got %d", len(guards))
	}
	for _, g := range guards {
		if g.Fail != "Not enough trophies" {
			t.Errorf("unexpected fail message %q", g.Fail)
		}
	}
}
