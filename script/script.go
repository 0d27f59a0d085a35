// Package script drives the console bus from Lua. Scripts play the
// part of the CPU: they write the PPU registers and inspect the result.
//
//	write(0x2006, 0x3f)  -- CPU bus write
//	read(0x0000)         -- CPU bus read
//	vram(0x3f00)         -- VRAM byte
//	ctrl(), mask(), status(), oamaddr(), addr()
//	x, y = scroll()
package script

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/bdwalton/nesppu/console"
	lua "github.com/yuin/gopher-lua"
)

const busErrorType = "bus_error"

type runner struct {
	bus *console.Bus
}

// Run executes src against b.
func Run(b *console.Bus, src string) error {
	L := lua.NewState()
	defer L.Close()

	r := &runner{bus: b}
	r.register(L)

	if err := L.DoString(src); err != nil {
		return r.wrap(err)
	}

	return nil
}

// RunFile executes the Lua file at path against b.
func RunFile(b *console.Bus, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read script %q: %w", path, err)
	}

	return Run(b, string(src))
}

// wrap unwraps a bus error that escaped the script so the sentinel
// errors stay reachable through errors.Is. Errors caught by pcall
// never get here.
func (r *runner) wrap(err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if ud, ok := apiErr.Object.(*lua.LUserData); ok {
			if busErr, ok := ud.Value.(error); ok {
				return fmt.Errorf("script aborted: %w", busErr)
			}
		}
	}
	return fmt.Errorf("script failed: %w", err)
}

func (r *runner) register(L *lua.LState) {
	fns := map[string]lua.LGFunction{
		"write":   r.write,
		"read":    r.read,
		"vram":    r.vram,
		"ctrl":    r.reg(func() int { return int(r.bus.PPU().Regs().Ctrl) }),
		"mask":    r.reg(func() int { return int(r.bus.PPU().Regs().Mask) }),
		"status":  r.reg(func() int { return int(r.bus.PPU().Regs().Status) }),
		"oamaddr": r.reg(func() int { return int(r.bus.PPU().Regs().OAMAddr) }),
		"addr":    r.reg(func() int { return int(r.bus.PPU().Regs().Addr) }),
		"scroll":  r.scroll,
	}
	for name, fn := range fns {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	mt := L.NewTypeMetatable(busErrorType)
	L.SetField(mt, "__tostring", L.NewFunction(busErrorString))
}

// busErrorString lets scripts that pcall a bus function print the
// error they caught.
func busErrorString(L *lua.LState) int {
	ud := L.CheckUserData(1)
	if err, ok := ud.Value.(error); ok {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	L.Push(lua.LString(busErrorType))
	return 1
}

// fail raises err as the Lua error value itself.
func (r *runner) fail(L *lua.LState, err error) {
	ud := L.NewUserData()
	ud.Value = err
	L.SetMetatable(ud, L.GetTypeMetatable(busErrorType))
	L.Error(ud, 1)
}

func checkRange(L *lua.LState, n int, limit int) int {
	v := L.CheckInt(n)
	if v < 0 || v > limit {
		L.ArgError(n, fmt.Sprintf("%d out of range 0-%d", v, limit))
	}
	return v
}

func (r *runner) write(L *lua.LState) int {
	addr := checkRange(L, 1, math.MaxUint16)
	val := checkRange(L, 2, math.MaxUint8)

	if err := r.bus.Write(uint16(addr), uint8(val)); err != nil {
		r.fail(L, err)
	}

	return 0
}

func (r *runner) read(L *lua.LState) int {
	addr := checkRange(L, 1, math.MaxUint16)

	val, err := r.bus.Read(uint16(addr))
	if err != nil {
		r.fail(L, err)
	}
	L.Push(lua.LNumber(val))

	return 1
}

func (r *runner) vram(L *lua.LState) int {
	addr := checkRange(L, 1, math.MaxUint16)

	val, err := r.bus.PPU().VRAM().Load(uint16(addr))
	if err != nil {
		r.fail(L, err)
	}
	L.Push(lua.LNumber(val))

	return 1
}

func (r *runner) scroll(L *lua.LState) int {
	s := r.bus.PPU().Regs().Scroll
	L.Push(lua.LNumber(s.X()))
	L.Push(lua.LNumber(s.Y()))

	return 2
}

func (r *runner) reg(get func() int) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(get()))
		return 1
	}
}
