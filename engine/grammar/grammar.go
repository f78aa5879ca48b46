// Package grammar classifies token sequences into sentence kinds.
// One validator per sentence form; validators are tried in a fixed order
// and the first full match wins. A validator never accepts a prefix.
package grammar

import (
	"strings"

	"github.com/nathoo/witchertrack/types"
)

// validator accepts or rejects a whole token sequence.
type validator func(toks []string) (types.Sentence, bool)

// validators in priority order.
var validators = []validator{
	loot,
	trade,
	brew,
	learnEffect,
	learnFormula,
	encounter,
	total,
	whatEffective,
	whatIn,
	exit,
}

// Classify returns the parsed sentence for toks. The zero Sentence
// (KindInvalid) means no form matched.
func Classify(toks []string) types.Sentence {
	for _, v := range validators {
		if s, ok := v(toks); ok {
			return s
		}
	}
	return types.Sentence{}
}

// hasPrefix reports whether toks starts with the given literal words.
func hasPrefix(toks []string, words ...string) bool {
	if len(toks) < len(words) {
		return false
	}
	for i, w := range words {
		if toks[i] != w {
			return false
		}
	}
	return true
}

// Loot ::= "Geralt" "loots" ItemList
func loot(toks []string) (types.Sentence, bool) {
	if !hasPrefix(toks, "Geralt", "loots") {
		return types.Sentence{}, false
	}
	items, ok := itemList(toks[2:])
	if !ok {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindLoot, Items: items}, true
}

// Trade ::= "Geralt" "trades" TrophyList "for" ItemList
func trade(toks []string) (types.Sentence, bool) {
	if !hasPrefix(toks, "Geralt", "trades") {
		return types.Sentence{}, false
	}
	forAt := -1
	for i := 2; i < len(toks); i++ {
		if toks[i] == "for" {
			forAt = i
			break
		}
	}
	if forAt < 0 {
		return types.Sentence{}, false
	}

	trophies, ok := trophyList(toks[2:forAt])
	if !ok {
		return types.Sentence{}, false
	}
	items, ok := itemList(toks[forAt+1:])
	if !ok {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindTrade, Trophies: trophies, Items: items}, true
}

// Brew ::= "Geralt" "brews" PotionName
func brew(toks []string) (types.Sentence, bool) {
	if len(toks) != 3 || !hasPrefix(toks, "Geralt", "brews") || !IsPotionName(toks[2]) {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindBrew, Name: toks[2]}, true
}

// LearnEff ::= "Geralt" "learns" (Name|PotionName) ("sign"|"potion")
// "is" "effective" "against" Name
func learnEffect(toks []string) (types.Sentence, bool) {
	if len(toks) != 8 || !hasPrefix(toks, "Geralt", "learns") {
		return types.Sentence{}, false
	}
	if toks[4] != "is" || toks[5] != "effective" || toks[6] != "against" || !IsName(toks[7]) {
		return types.Sentence{}, false
	}

	name := toks[2]
	switch types.CounterKind(toks[3]) {
	case types.CounterSign:
		if !IsName(name) {
			return types.Sentence{}, false
		}
	case types.CounterPotion:
		if !IsPotionName(name) {
			return types.Sentence{}, false
		}
	default:
		return types.Sentence{}, false
	}

	return types.Sentence{
		Kind:    types.KindLearnEffect,
		Name:    name,
		Counter: types.CounterKind(toks[3]),
		Beast:   toks[7],
	}, true
}

// LearnFormula ::= "Geralt" "learns" PotionName "potion" "consists" "of" ItemList
func learnFormula(toks []string) (types.Sentence, bool) {
	if len(toks) < 8 || !hasPrefix(toks, "Geralt", "learns") {
		return types.Sentence{}, false
	}
	if toks[3] != "potion" || toks[4] != "consists" || toks[5] != "of" || !IsPotionName(toks[2]) {
		return types.Sentence{}, false
	}
	items, ok := itemList(toks[6:])
	if !ok {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindLearnFormula, Name: toks[2], Items: items}, true
}

// Encounter ::= "Geralt" "encounters" "a" Name
func encounter(toks []string) (types.Sentence, bool) {
	if len(toks) != 4 || !hasPrefix(toks, "Geralt", "encounters", "a") || !IsName(toks[3]) {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindEncounter, Beast: toks[3]}, true
}

// TotalAll ::= "Total" Category "?"
// TotalOne ::= "Total" Category (Name|PotionName) "?"
func total(toks []string) (types.Sentence, bool) {
	if len(toks) < 3 || len(toks) > 4 || toks[0] != "Total" || toks[len(toks)-1] != "?" {
		return types.Sentence{}, false
	}

	cat := types.Category(toks[1])
	switch cat {
	case types.CategoryIngredient, types.CategoryPotion, types.CategoryTrophy:
	default:
		return types.Sentence{}, false
	}

	if len(toks) == 3 {
		return types.Sentence{Kind: types.KindTotalAll, Category: cat}, true
	}

	name := toks[2]
	valid := IsName(name)
	if cat == types.CategoryPotion {
		valid = IsPotionName(name)
	}
	if !valid {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindTotalOne, Category: cat, Name: name}, true
}

// WhatEff ::= "What" "is" "effective" "against" Name "?"
func whatEffective(toks []string) (types.Sentence, bool) {
	if len(toks) != 6 || !hasPrefix(toks, "What", "is", "effective", "against") {
		return types.Sentence{}, false
	}
	if !IsName(toks[4]) || toks[5] != "?" {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindWhatEffective, Beast: toks[4]}, true
}

// WhatIn ::= "What" "is" "in" PotionName "?"
func whatIn(toks []string) (types.Sentence, bool) {
	if len(toks) != 5 || !hasPrefix(toks, "What", "is", "in") {
		return types.Sentence{}, false
	}
	if !IsPotionName(toks[3]) || toks[4] != "?" {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindWhatIn, Name: toks[3]}, true
}

// Exit ::= "Exit"
func exit(toks []string) (types.Sentence, bool) {
	if len(toks) != 1 || toks[0] != "Exit" {
		return types.Sentence{}, false
	}
	return types.Sentence{Kind: types.KindExit}, true
}

// itemList parses Int Name ("," Int Name)*. A trailing comma or an empty
// list is rejected.
func itemList(toks []string) ([]types.ItemQty, bool) {
	if len(toks) == 0 {
		return nil, false
	}

	var items []types.ItemQty
	i := 0
	for {
		if i+1 >= len(toks) {
			return nil, false
		}
		qty, ok := ParseQuantity(toks[i])
		if !ok || !IsName(toks[i+1]) {
			return nil, false
		}
		items = append(items, types.ItemQty{Name: toks[i+1], Quantity: qty})
		i += 2

		if i == len(toks) {
			return items, true
		}
		if toks[i] != "," {
			return nil, false
		}
		i++
	}
}

// trophyList parses Int Name+ ["trophy"] ("," Int Name+ ["trophy"])*.
// The keyword is required after the last entry and optional before it.
func trophyList(toks []string) ([]types.ItemQty, bool) {
	if len(toks) == 0 {
		return nil, false
	}

	var trophies []types.ItemQty
	i := 0
	for {
		if i >= len(toks) {
			return nil, false
		}
		qty, ok := ParseQuantity(toks[i])
		if !ok {
			return nil, false
		}
		i++

		var words []string
		for i < len(toks) && toks[i] != "," && toks[i] != "trophy" {
			if !IsName(toks[i]) {
				return nil, false
			}
			words = append(words, toks[i])
			i++
		}
		if len(words) == 0 {
			return nil, false
		}

		closed := false
		if i < len(toks) && toks[i] == "trophy" {
			closed = true
			i++
		}
		trophies = append(trophies, types.ItemQty{Name: strings.Join(words, " "), Quantity: qty})

		if i == len(toks) {
			return trophies, closed
		}
		if toks[i] != "," {
			return nil, false
		}
		i++
	}
}
