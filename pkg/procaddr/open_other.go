//go:build !(darwin || freebsd || linux || netbsd)

package procaddr

import "fmt"

// DefaultLibraries returns nil on platforms without dlopen support.
func DefaultLibraries() []string {
	return nil
}

// Open is not supported on this platform; pass the windowing library's
// GetProcAddress to Init instead.
func Open(paths ...string) (Func, error) {
	return nil, fmt.Errorf("%w: dynamic loading is not supported on this platform", ErrNoLibrary)
}
