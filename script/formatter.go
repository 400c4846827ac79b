// Package script provides Lua-scriptable value formatting. A script
// defines a global format(value) function returning the display string,
// letting hosts customize the readout without recompiling.
package script

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Formatter errors.
var (
	// ErrClosed is returned when the formatter has been closed.
	ErrClosed = errors.New("script: formatter closed")
	// ErrNoFormat is returned when the script defines no format function.
	ErrNoFormat = errors.New("script: format function not defined")
)

// Formatter evaluates a Lua format(value) function. It satisfies the
// dial's Formatter interface.
//
// The Lua state is not goroutine-safe; the mutex serializes access.
type Formatter struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewFormatter compiles a script from source. The script must define a
// global function format(value) returning a string or number.
func NewFormatter(source string) (*Formatter, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: loading formatter: %w", err)
	}

	fn := L.GetGlobal("format")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoFormat
	}

	return &Formatter{state: L}, nil
}

// LoadFormatter compiles a script from a file.
func LoadFormatter(path string) (*Formatter, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: reading %s: %w", path, err)
	}
	return NewFormatter(string(source))
}

// openSafeLibraries opens the side-effect-free standard libraries.
// io, os, debug and package stay closed; a formatter has no business
// touching the file system.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Format evaluates format(v) and returns the result as a string. Script
// errors fall back to a plain decimal rendering so a broken script never
// blanks the readout.
func (f *Formatter) Format(v float64) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fallback(v)
	}

	out, err := f.call(v)
	if err != nil {
		return fallback(v)
	}
	return out
}

// call invokes the Lua function with panic recovery.
func (f *Formatter) call(v float64) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script: lua panic: %v", r)
		}
	}()

	L := f.state
	if err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal("format"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(v)); err != nil {
		return "", err
	}

	ret := L.Get(-1)
	L.Pop(1)

	switch ret.Type() {
	case lua.LTString, lua.LTNumber:
		return ret.String(), nil
	default:
		return "", fmt.Errorf("script: format returned %s, want string", ret.Type())
	}
}

// IsClosed reports whether Close has been called.
func (f *Formatter) IsClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Close releases the Lua state. Format keeps working afterwards using
// the decimal fallback.
func (f *Formatter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.state.Close()
	f.closed = true
	return nil
}

func fallback(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
