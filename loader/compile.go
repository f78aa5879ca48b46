package loader

import (
	"fmt"
	"math"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/witchertrack/types"
)

// Lore is everything a set of lore files declares, in declaration order.
type Lore struct {
	Formulas    []types.Formula
	Beasts      []BeastLore
	Ingredients []types.ItemQty
	Trophies    []types.ItemQty
	Warnings    []string
}

// BeastLore lists the counters declared for one beast.
type BeastLore struct {
	Name    string
	Signs   []string
	Potions []string
}

// rawFormula holds a Formula table before compilation.
type rawFormula struct {
	name  string
	where string
	table *lua.LTable
}

// rawBeast holds a Bestiary table before compilation.
type rawBeast struct {
	name  string
	where string
	table *lua.LTable
}

// rawStock holds a Stock table before compilation.
type rawStock struct {
	where string
	table *lua.LTable
}

// Effects returns the effects that seed a world with this lore. Formulas
// come first so bestiary potions that name them are stored as known.
func (l *Lore) Effects() []types.Effect {
	var effs []types.Effect

	for _, f := range l.Formulas {
		effs = append(effs, types.Effect{Type: "learn_formula", Name: f.Name, Requirements: f.Requirements})
	}
	for _, b := range l.Beasts {
		for _, s := range b.Signs {
			effs = append(effs, types.Effect{Type: "learn_counter", Name: s, Beast: b.Name, Counter: types.CounterSign})
		}
		for _, p := range b.Potions {
			effs = append(effs, types.Effect{Type: "learn_counter", Name: p, Beast: b.Name, Counter: types.CounterPotion})
		}
	}
	for _, it := range l.Ingredients {
		effs = append(effs, types.Effect{Type: "add_ingredient", Name: it.Name, Amount: it.Quantity})
	}
	for _, it := range l.Trophies {
		effs = append(effs, types.Effect{Type: "add_trophy", Name: it.Name, Amount: it.Quantity})
	}

	return effs
}

// compile converts collected Lua tables into a Lore.
func compile(coll *collector) (*Lore, error) {
	lore := &Lore{}

	for _, rf := range coll.formulas {
		f, err := compileFormula(rf)
		if err != nil {
			return nil, err
		}
		lore.Formulas = append(lore.Formulas, f)
	}

	for _, rb := range coll.beasts {
		b, err := compileBeast(rb)
		if err != nil {
			return nil, err
		}
		lore.Beasts = append(lore.Beasts, b)
	}

	for _, rs := range coll.stocks {
		ingredients, err := compileStockTable(rs, "ingredients")
		if err != nil {
			return nil, err
		}
		trophies, err := compileStockTable(rs, "trophies")
		if err != nil {
			return nil, err
		}
		lore.Ingredients = append(lore.Ingredients, ingredients...)
		lore.Trophies = append(lore.Trophies, trophies...)
	}

	return lore, nil
}

// compileFormula reads a list of {qty, "name"} pairs.
func compileFormula(rf rawFormula) (types.Formula, error) {
	f := types.Formula{Name: rf.name}

	n := rf.table.MaxN()
	for i := 1; i <= n; i++ {
		pair, ok := rf.table.RawGetInt(i).(*lua.LTable)
		if !ok {
			return f, fmt.Errorf("%sformula %q entry %d: expected {qty, name}", rf.where, rf.name, i)
		}
		qty, err := toInt(pair.RawGetInt(1))
		if err != nil {
			return f, fmt.Errorf("%sformula %q entry %d: %w", rf.where, rf.name, i, err)
		}
		name, ok := pair.RawGetInt(2).(lua.LString)
		if !ok {
			return f, fmt.Errorf("%sformula %q entry %d: ingredient name must be a string", rf.where, rf.name, i)
		}
		f.Requirements = append(f.Requirements, types.ItemQty{Name: string(name), Quantity: qty})
	}

	return f, nil
}

// compileBeast reads the signs and potions string lists.
func compileBeast(rb rawBeast) (BeastLore, error) {
	b := BeastLore{Name: rb.name}

	signs, err := stringList(rb.table, "signs")
	if err != nil {
		return b, fmt.Errorf("%sbestiary %q: %w", rb.where, rb.name, err)
	}
	potions, err := stringList(rb.table, "potions")
	if err != nil {
		return b, fmt.Errorf("%sbestiary %q: %w", rb.where, rb.name, err)
	}
	b.Signs = signs
	b.Potions = potions
	return b, nil
}

// compileStockTable reads a name = qty table, sorted by name.
func compileStockTable(rs rawStock, key string) ([]types.ItemQty, error) {
	tbl := getTable(rs.table, key)
	if tbl == nil {
		return nil, nil
	}

	var items []types.ItemQty
	var ferr error
	tbl.ForEach(func(k, v lua.LValue) {
		if ferr != nil {
			return
		}
		name, ok := k.(lua.LString)
		if !ok {
			ferr = fmt.Errorf("%sstock %s: keys must be names", rs.where, key)
			return
		}
		qty, err := toInt(v)
		if err != nil {
			ferr = fmt.Errorf("%sstock %s %q: %w", rs.where, key, string(name), err)
			return
		}
		items = append(items, types.ItemQty{Name: string(name), Quantity: qty})
	})
	if ferr != nil {
		return nil, ferr
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList reads an array field of strings. A missing field is empty.
func stringList(tbl *lua.LTable, key string) ([]string, error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return nil, nil
	}
	list, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s must be a list", key)
	}

	var out []string
	n := list.MaxN()
	for i := 1; i <= n; i++ {
		s, ok := list.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%s entry %d must be a string", key, i)
		}
		out = append(out, string(s))
	}
	return out, nil
}

// toInt converts a Lua number with no fractional part to int.
func toInt(v lua.LValue) (int, error) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("quantity must be a number, got %s", v.Type())
	}
	f := float64(n)
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("quantity %v is not a whole number", f)
	}
	return int(f), nil
}
