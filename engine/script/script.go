// Package script evaluates the small Lua expressions carried by item
// interactions. Each evaluation runs in a fresh sandboxed VM: safe
// libraries only, dangerous globals removed, discarded afterwards —
// the same discipline the world loader would apply to any authored
// code.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dirkkok101/zorkcore/types"
)

// EvalCondition evaluates a boolean Lua expression against the item's
// state, e.g. "not state.open" or "state.lit and state.open". An empty
// expression is vacuously true.
func EvalCondition(expr string, item *types.Item) (bool, error) {
	if expr == "" {
		return true, nil
	}

	L := newVM(item)
	defer L.Close()

	if err := L.DoString("return " + expr); err != nil {
		return false, fmt.Errorf("evaluating condition %q: %w", expr, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// RunEffect executes a Lua statement against the item's state, e.g.
// "state.open = true", and writes the resulting state table back onto
// the item. An empty effect is a no-op.
func RunEffect(stmt string, item *types.Item) error {
	if stmt == "" {
		return nil
	}

	L := newVM(item)
	defer L.Close()

	if err := L.DoString(stmt); err != nil {
		return fmt.Errorf("running effect %q: %w", stmt, err)
	}

	tbl, ok := L.GetGlobal("state").(*lua.LTable)
	if !ok {
		return nil
	}
	item.State.Open = lua.LVAsBool(tbl.RawGetString("open"))
	item.State.IsLit = lua.LVAsBool(tbl.RawGetString("lit"))
	item.State.IsLocked = lua.LVAsBool(tbl.RawGetString("locked"))
	return nil
}

// newVM builds a sandboxed VM with the item's state bound to the
// global "state" table.
func newVM(item *types.Item) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "print",
	} {
		L.SetGlobal(name, lua.LNil)
	}

	tbl := L.NewTable()
	tbl.RawSetString("open", lua.LBool(item.State.Open))
	tbl.RawSetString("lit", lua.LBool(item.State.IsLit))
	tbl.RawSetString("locked", lua.LBool(item.State.IsLocked))
	L.SetGlobal("state", tbl)
	return L
}
