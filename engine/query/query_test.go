package query

import (
	"testing"

	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

func queryWorld() *types.World {
	w := state.NewWorld()
	w.Ingredients["Vitriol"] = 2
	w.Ingredients["Rebis"] = 5
	w.Ingredients["Aether"] = 0
	w.Ingredients["aether"] = 1
	w.Trophies["Harpy"] = 1
	w.Potions["Swallow"] = &types.Formula{
		Name: "Swallow",
		Requirements: []types.ItemQty{
			{Name: "Vitriol", Quantity: 1},
			{Name: "Rebis", Quantity: 2},
			{Name: "Aether", Quantity: 2},
		},
	}
	w.Beasts["Harpy"] = &types.Beast{
		Name:    "Harpy",
		Signs:   []string{"Igni", "Aard"},
		Potions: []types.PotionRef{{Name: "Swallow", Tag: types.RefKnown}, {Name: "Black Blood", Tag: types.RefNameOnly}},
	}
	w.Beasts["Nekker"] = &types.Beast{Name: "Nekker"}
	return w
}

func TestTotalAll(t *testing.T) {
	w := queryWorld()

	tests := []struct {
		cat  types.Category
		want string
	}{
		// Ordinal order: upper case sorts before lower case.
		{types.CategoryIngredient, "5 Rebis, 2 Vitriol, 1 aether"},
		{types.CategoryTrophy, "1 Harpy"},
		{types.CategoryPotion, "None"},
	}

	for _, tt := range tests {
		if got := TotalAll(w, tt.cat); got != tt.want {
			t.Errorf("TotalAll(%s) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestTotalOne(t *testing.T) {
	w := queryWorld()

	if got := TotalOne(w, types.CategoryIngredient, "Rebis"); got != "5" {
		t.Errorf("expected 5, got %q", got)
	}
	if got := TotalOne(w, types.CategoryIngredient, "Aether"); got != "0" {
		t.Errorf("expected 0 for a record at zero, got %q", got)
	}
	if got := TotalOne(w, types.CategoryTrophy, "Wyvern"); got != "0" {
		t.Errorf("expected 0 for an unknown record, got %q", got)
	}
}

func TestEffective(t *testing.T) {
	w := queryWorld()

	if got, want := Effective(w, "Harpy"), "Aard, Black Blood, Igni, Swallow"; got != want {
		t.Errorf("Effective(Harpy) = %q, want %q", got, want)
	}
	if got := Effective(w, "Nekker"); got != "" {
		t.Errorf("expected empty list for a beast with no counters, got %q", got)
	}
	if got, want := Effective(w, "Wyvern"), "No knowledge of Wyvern"; got != want {
		t.Errorf("Effective(Wyvern) = %q, want %q", got, want)
	}
}

func TestEffective_SignAndPotionSharingANameAreBothListed(t *testing.T) {
	w := state.NewWorld()
	w.Beasts["Wraith"] = &types.Beast{
		Name:    "Wraith",
		Signs:   []string{"Yrden"},
		Potions: []types.PotionRef{{Name: "Yrden", Tag: types.RefNameOnly}},
	}

	if got, want := Effective(w, "Wraith"), "Yrden, Yrden"; got != want {
		t.Errorf("Effective(Wraith) = %q, want %q", got, want)
	}
}

func TestIngredients(t *testing.T) {
	w := queryWorld()

	if got, want := Ingredients(w, "Swallow"), "2 Aether, 2 Rebis, 1 Vitriol"; got != want {
		t.Errorf("Ingredients(Swallow) = %q, want %q", got, want)
	}
	if got, want := Ingredients(w, "Cat"), "No formula for Cat"; got != want {
		t.Errorf("Ingredients(Cat) = %q, want %q", got, want)
	}

	// The stored order is not disturbed by the query.
	if w.Potions["Swallow"].Requirements[0].Name != "Vitriol" {
		t.Errorf("query reordered stored requirements: %v", w.Potions["Swallow"].Requirements)
	}
}
