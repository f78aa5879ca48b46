// Package types defines the shared data structures for the witchertrack interpreter.
// It holds type definitions only; behavior lives in the engine packages.
package types

// Kind identifies which sentence form a line matched.
type Kind string

const (
	KindInvalid       Kind = ""
	KindLoot          Kind = "loot"
	KindTrade         Kind = "trade"
	KindBrew          Kind = "brew"
	KindLearnEffect   Kind = "learn_effect"
	KindLearnFormula  Kind = "learn_formula"
	KindEncounter     Kind = "encounter"
	KindTotalOne      Kind = "total_one"
	KindTotalAll      Kind = "total_all"
	KindWhatEffective Kind = "what_effective"
	KindWhatIn        Kind = "what_in"
	KindExit          Kind = "exit"
)

// Category is the inventory table a Total query reads.
type Category string

const (
	CategoryIngredient Category = "ingredient"
	CategoryPotion     Category = "potion"
	CategoryTrophy     Category = "trophy"
)

// CounterKind tells a sign apart from a potion in effectiveness knowledge.
type CounterKind string

const (
	CounterSign   CounterKind = "sign"
	CounterPotion CounterKind = "potion"
)

// ItemQty is a quantity paired with an item name.
type ItemQty struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Sentence is the validated, parsed form of one input line.
type Sentence struct {
	Kind     Kind
	Items    []ItemQty   // looted items, trade gains, formula requirements
	Trophies []ItemQty   // trophies given up in a trade
	Name     string      // potion, counter, or queried item name
	Counter  CounterKind // learn_effect only
	Beast    string      // learn_effect, encounter, what_effective
	Category Category    // total_one, total_all
}

// RefTag records whether a potion reference pointed at a learned formula
// at the time it was stored.
type RefTag string

const (
	RefKnown    RefTag = "known"
	RefNameOnly RefTag = "name_only"
)

// PotionRef refers to a potion by name. Two refs with the same Name are
// the same counter regardless of Tag.
type PotionRef struct {
	Name string `json:"name"`
	Tag  RefTag `json:"tag"`
}

// Formula is a learned potion: its ordered requirements and brewed stock.
type Formula struct {
	Name         string
	Requirements []ItemQty
	Stock        int
}

// Beast is bestiary knowledge about one monster.
type Beast struct {
	Name    string
	Signs   []string    // insertion order, unique
	Potions []PotionRef // insertion order, unique by Name
}

// World is the complete mutable interpreter state.
type World struct {
	Ingredients map[string]int
	Trophies    map[string]int
	Potions     map[string]*Formula
	Signs       map[string]bool
	Beasts      map[string]*Beast
	Turn        int
}

// Condition is a predicate over the World that must hold before effects
// are committed.
type Condition struct {
	Type   string     // "has_ingredient", "has_trophy", "has_potion", "knows_formula", "knows_beast", "not"
	Name   string     // record name the predicate inspects
	Amount int        // minimum quantity for has_* predicates
	Inner  *Condition // for "not": the negated inner condition
}

// Effect is a single atomic state mutation instruction.
type Effect struct {
	Type         string // "add_ingredient", "take_ingredient", "learn_formula", ...
	Name         string
	Amount       int
	Beast        string      // learn_counter
	Counter      CounterKind // learn_counter
	Requirements []ItemQty   // learn_formula
}

// Event is emitted after effects are applied.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single interpreter step.
type Result struct {
	Kind    Kind
	Effects []Effect
	Events  []Event
	Output  []string
	Exit    bool
}
