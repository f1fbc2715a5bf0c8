// Package procaddr binds native entry points into Go function variables.
//
// Generated bindings declare one function variable per command and call
// Bind for each of them from their Init function. The address comes from a
// caller-supplied Func, typically the platform's GetProcAddress wrapped by
// the windowing library, or a resolver returned by Open.
package procaddr

import (
	"errors"

	"github.com/ebitengine/purego"
)

// ErrNoLibrary is returned by Open when none of the candidate libraries
// could be loaded.
var ErrNoLibrary = errors.New("no OpenGL library could be loaded")

// Func resolves an entry point name to its address. Zero means the entry
// point is not available.
type Func func(name string) uintptr

// Bind resolves name and, when the address is non-zero, makes fptr (a
// pointer to a function variable) call it. An unresolved entry point leaves
// the variable untouched so callers can probe optional commands. Bind
// reports whether the variable was bound.
func Bind(fptr any, resolve Func, name string) bool {
	if resolve == nil {
		return false
	}
	addr := resolve(name)
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

// Chain returns a Func that asks each resolver in turn and returns the
// first non-zero address. Nil resolvers are skipped.
func Chain(resolvers ...Func) Func {
	return func(name string) uintptr {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if addr := r(name); addr != 0 {
				return addr
			}
		}
		return 0
	}
}
