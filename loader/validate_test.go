package loader

import (
	"testing"

	"github.com/nathoo/witchertrack/types"
)

func validLore() *Lore {
	return &Lore{
		Formulas: []types.Formula{{
			Name:         "Swallow",
			Requirements: []types.ItemQty{{Name: "Celandine", Quantity: 2}},
		}},
		Beasts: []BeastLore{{Name: "Drowner", Signs: []string{"Igni"}, Potions: []string{"Swallow"}}},
	}
}

func TestValidate_ValidLore(t *testing.T) {
	lore := validLore()
	if err := validate(lore); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(lore.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", lore.Warnings)
	}
}

func TestValidate_DuplicateFormula(t *testing.T) {
	lore := validLore()
	lore.Formulas = append(lore.Formulas, lore.Formulas[0])

	err := validate(lore)
	if err == nil {
		t.Fatal("expected error for duplicate formula")
	}
	assertContains(t, err.(*ValidationError).Errors, "duplicate formula")
}

func TestValidate_DuplicateCounterWarns(t *testing.T) {
	lore := validLore()
	lore.Beasts[0].Signs = append(lore.Beasts[0].Signs, "Igni")

	if err := validate(lore); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	assertContains(t, lore.Warnings, "twice")
}

func TestValidate_TrophyNames(t *testing.T) {
	lore := validLore()
	lore.Trophies = []types.ItemQty{{Name: "Rotfiend Queen", Quantity: 1}}

	err := validate(lore)
	if err == nil {
		t.Fatal("expected error for a multi-word stock name")
	}
	assertContains(t, err.(*ValidationError).Errors, "stock trophies")
}
