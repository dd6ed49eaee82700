// Package lua exposes packet parsing and ordering to gopher-lua scripts.
//
// integers map to Lua numbers and lists map to array tables, so the packet
// [1,[2,3],[]] is the Lua value {1, {2, 3}, {}}.
//
// usage:
//
//	L := lua.NewState()
//	L.PreloadModule("packet", packetlua.Loader)
//
//	-- in Lua:
//	local packet = require("packet")
//	local p, err = packet.parse("[1,[2,3]]")
//	print(packet.compare(p, "[1,[2,4]]"))  -- -1
package lua

import (
	"errors"
	"fmt"
	"math"

	"github.com/alttpo/packet"
	"github.com/yuin/gopher-lua"
)

var ErrUnsupportedValue = errors.New("value is not a packet")

var exports = map[string]lua.LGFunction{
	"parse":       parse,
	"compare":     compare,
	"tostring":    tostring,
	"sum_ordered": sumOrdered,
}

// Loader pushes the packet module table; pass it to LState.PreloadModule.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.SetField(mod, "LESS", lua.LNumber(packet.Less))
	L.SetField(mod, "EQUAL", lua.LNumber(packet.Equal))
	L.SetField(mod, "GREATER", lua.LNumber(packet.Greater))
	L.Push(mod)
	return 1
}

// ToLua converts a packet into a Lua value owned by L.
func ToLua(L *lua.LState, n *packet.Node) lua.LValue {
	if n == nil {
		return lua.LNil
	}
	if n.Kind == packet.KindInteger {
		return lua.LNumber(n.Value)
	}

	t := L.CreateTable(len(n.List), 0)
	for _, c := range n.List {
		t.Append(ToLua(L, c))
	}
	return t
}

// FromLua converts a Lua number or array table back into a packet.
func FromLua(v lua.LValue) (*packet.Node, error) {
	switch v.Type() {
	case lua.LTNumber:
		f := float64(v.(lua.LNumber))
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: non-integral number %v", ErrUnsupportedValue, f)
		}
		return packet.Int(int64(f)), nil
	case lua.LTTable:
		t := v.(*lua.LTable)
		children := make([]*packet.Node, 0, t.Len())
		for i := 1; i <= t.Len(); i++ {
			c, err := FromLua(t.RawGetInt(i))
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return packet.List(children...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type())
	}
}

// check reads argument n as a packet; strings are parsed.
func check(L *lua.LState, n int) *packet.Node {
	v := L.CheckAny(n)
	if s, ok := v.(lua.LString); ok {
		p, err := packet.Parse(string(s))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return p
	}

	p, err := FromLua(v)
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return p
}

func parse(L *lua.LState) int {
	n, err := packet.Parse(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(ToLua(L, n))
	return 1
}

func compare(L *lua.LState) int {
	a, b := check(L, 1), check(L, 2)
	L.Push(lua.LNumber(packet.Compare(a, b)))
	return 1
}

func tostring(L *lua.LState) int {
	L.Push(lua.LString(check(L, 1).String()))
	return 1
}

// sum_ordered takes an array of {left, right} pairs.
func sumOrdered(L *lua.LState) int {
	t := L.CheckTable(1)
	pairs := make([]packet.Pair, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		pt, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok || pt.Len() != 2 {
			L.ArgError(1, fmt.Sprintf("pair %d must be a table of two packets", i))
		}

		var p packet.Pair
		var err error
		if p.Left, err = fromLuaOrString(pt.RawGetInt(1)); err == nil {
			p.Right, err = fromLuaOrString(pt.RawGetInt(2))
		}
		if err != nil {
			L.ArgError(1, fmt.Sprintf("pair %d: %v", i, err))
		}
		pairs = append(pairs, p)
	}

	L.Push(lua.LNumber(packet.SumOrdered(pairs)))
	return 1
}

func fromLuaOrString(v lua.LValue) (*packet.Node, error) {
	if s, ok := v.(lua.LString); ok {
		return packet.Parse(string(s))
	}
	return FromLua(v)
}
