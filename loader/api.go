package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the lore constructors as globals.
//
//	Formula "Black Blood" { {2, "Vitriol"}, {1, "Rebis"} }
//	Bestiary "Harpy" { signs = {"Aard"}, potions = {"Black Blood"} }
//	Stock { ingredients = { Rebis = 3 }, trophies = { Harpy = 1 } }
func registerAPI(L *lua.LState, coll *collector) {
	// Formula("name") returns the function that receives the requirement list.
	L.SetGlobal("Formula", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		line := L.Where(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.formulas = append(coll.formulas, rawFormula{name: name, where: line, table: tbl})
			return 0
		}))
		return 1
	}))

	// Bestiary("beast") likewise returns a function taking the counters table.
	L.SetGlobal("Bestiary", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		line := L.Where(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.beasts = append(coll.beasts, rawBeast{name: name, where: line, table: tbl})
			return 0
		}))
		return 1
	}))

	// Stock { ingredients = {...}, trophies = {...} }
	L.SetGlobal("Stock", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.stocks = append(coll.stocks, rawStock{where: L.Where(1), table: tbl})
		return 0
	}))
}
