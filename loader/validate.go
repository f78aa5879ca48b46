package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/witchertrack/engine/grammar"
	"github.com/nathoo/witchertrack/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks that every name in the lore could also have been typed
// as a command, and that quantities are positive. Warnings are kept on
// the lore for the caller to report.
func validate(lore *Lore) error {
	ve := &ValidationError{}

	formulas := map[string]bool{}
	for _, f := range lore.Formulas {
		if !grammar.IsPotionName(f.Name) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("formula %q: not a potion name", f.Name))
		}
		if formulas[f.Name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate formula %q", f.Name))
		}
		formulas[f.Name] = true

		if len(f.Requirements) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("formula %q has no ingredients", f.Name))
		}
		validateItems(ve, "formula "+quote(f.Name), f.Requirements)
	}

	for _, b := range lore.Beasts {
		if !grammar.IsName(b.Name) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("bestiary %q: not a beast name", b.Name))
		}
		seen := map[string]bool{}
		for _, s := range b.Signs {
			if !grammar.IsName(s) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("bestiary %q: sign %q is not a name", b.Name, s))
			}
			if seen["sign:"+s] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("bestiary %q lists sign %q twice", b.Name, s))
			}
			seen["sign:"+s] = true
		}
		for _, p := range b.Potions {
			if !grammar.IsPotionName(p) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("bestiary %q: potion %q is not a potion name", b.Name, p))
			}
			if seen["potion:"+p] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("bestiary %q lists potion %q twice", b.Name, p))
			}
			seen["potion:"+p] = true
			if !formulas[p] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"bestiary %q potion %q has no formula in lore; recorded by name only", b.Name, p))
			}
		}
	}

	validateItems(ve, "stock ingredients", lore.Ingredients)
	validateItems(ve, "stock trophies", lore.Trophies)

	lore.Warnings = append(lore.Warnings, ve.Warnings...)

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateItems(ve *ValidationError, where string, items []types.ItemQty) {
	for _, it := range items {
		if !grammar.IsName(it.Name) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %q is not a name", where, it.Name))
		}
		if it.Quantity <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %q quantity %d must be positive", where, it.Name, it.Quantity))
		}
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
