package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/notelex/internal/command"
	"github.com/dshills/notelex/internal/trigger"
)

// ErrClosed is returned when running an action whose state has been closed.
var ErrClosed = errors.New("script: action is closed")

// entryFunc is the global function a script must define.
const entryFunc = "run"

// Action executes a Lua script as a command action.
//
// gopher-lua's LState is not goroutine-safe, so every execution goes
// through the action's mutex. Each action owns its own state; scripts do
// not share globals.
type Action struct {
	name string

	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// Load compiles source into a new sandboxed state and verifies it defines
// run(ctx). The name is used in error messages only.
func Load(name, source string) (*Action, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	openSafeLibraries(L)
	registerEditorModule(L)

	a := &Action{name: name, state: L}
	if err := a.doWithRecovery(func() error {
		return L.DoString(source)
	}); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	fn := L.GetGlobal(entryFunc)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("script %s: no %s function defined", name, entryFunc)
	}
	return a, nil
}

// openSafeLibraries opens only side-effect-free standard libraries.
// io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// registerEditorModule exposes a small editor helper module to scripts.
func registerEditorModule(L *lua.LState) {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"strip": func(L *lua.LState) int {
			L.Push(lua.LString(trigger.Strip(L.CheckString(1))))
			return 1
		},
	})
	L.SetGlobal("editor", mod)
}

// Run calls the script's run(ctx) function and maps the returned table to
// a command result.
func (a *Action) Run(ctx command.Context) (command.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return command.Result{}, ErrClosed
	}

	L := a.state
	var ret lua.LValue
	err := a.doWithRecovery(func() error {
		L.Push(L.GetGlobal(entryFunc))
		L.Push(contextTable(L, ctx))
		if err := L.PCall(1, 1, nil); err != nil {
			return err
		}
		ret = L.Get(-1)
		L.Pop(1)
		return nil
	})
	if err != nil {
		return command.Result{}, fmt.Errorf("script %s: %w", a.name, err)
	}

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return command.Result{}, fmt.Errorf("script %s: %s returned %s, want table", a.name, entryFunc, ret.Type())
	}
	return resultFromTable(tbl), nil
}

// Close releases the underlying Lua state.
func (a *Action) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.state.Close()
	a.closed = true
}

// doWithRecovery executes fn, converting Lua panics into errors.
func (a *Action) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// contextTable builds the Lua view of an execution context.
func contextTable(L *lua.LState, ctx command.Context) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("text", lua.LString(ctx.Text))
	tbl.RawSetString("cursor", lua.LNumber(ctx.Cursor))
	tbl.RawSetString("nodeType", lua.LString(ctx.NodeType))
	if ctx.Selection != nil {
		sel := L.NewTable()
		sel.RawSetString("start", lua.LNumber(ctx.Selection.Start))
		sel.RawSetString("finish", lua.LNumber(ctx.Selection.End))
		tbl.RawSetString("selection", sel)
	}
	return tbl
}

// resultFromTable maps a script's return table onto a command result.
// Absent fields keep their zero values; success defaults to true since
// failures surface as Lua errors.
func resultFromTable(tbl *lua.LTable) command.Result {
	res := command.Result{Success: true}

	if v, ok := tbl.RawGetString("success").(lua.LBool); ok {
		res.Success = bool(v)
	}
	if v, ok := tbl.RawGetString("replacementText").(lua.LString); ok {
		res.Replace = true
		res.ReplacementText = string(v)
	}
	if v, ok := tbl.RawGetString("cursorPosition").(lua.LNumber); ok {
		res.Replace = true
		res.CursorPosition = int(v)
	}
	if v, ok := tbl.RawGetString("nodeType").(lua.LString); ok {
		res.NodeType = string(v)
	}
	if v, ok := tbl.RawGetString("message").(lua.LString); ok {
		res.Message = string(v)
	}
	if v, ok := tbl.RawGetString("closePanel").(lua.LBool); ok {
		res.ClosePanel = bool(v)
	}
	if v, ok := tbl.RawGetString("data").(*lua.LTable); ok {
		if m, ok := toGoValue(v, map[*lua.LTable]bool{}).(map[string]any); ok {
			res.NodeData = m
		}
	}
	return res
}

// toGoValue converts a Lua value to its Go equivalent. Tables with
// contiguous 1-based integer keys become slices, everything else becomes
// a string-keyed map. Visited tables break reference cycles.
func toGoValue(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		return tableToGo(v, visited)
	default:
		return nil
	}
}

func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	isArray := true
	count, maxN := 0, 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) || int(kn) < 1 {
			isArray = false
			return
		}
		if int(kn) > maxN {
			maxN = int(kn)
		}
	})

	if isArray && maxN > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = toGoValue(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		m[k.String()] = toGoValue(v, visited)
	})
	return m
}
