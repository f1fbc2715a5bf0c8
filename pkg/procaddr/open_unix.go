//go:build darwin || freebsd || linux || netbsd

package procaddr

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// DefaultLibraries returns the library names tried by Open when it is
// called without arguments.
func DefaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	default:
		return []string{"libGL.so.1", "libGL.so", "libOpenGL.so.0"}
	}
}

// Open loads the first library of paths that can be opened (DefaultLibraries
// when paths is empty) and returns a resolver for it. On GLX systems the
// resolver asks glXGetProcAddressARB first, so extension entry points that
// are not exported symbols are found too.
func Open(paths ...string) (Func, error) {
	if len(paths) == 0 {
		paths = DefaultLibraries()
	}

	var lastErr error
	for _, p := range paths {
		handle, err := purego.Dlopen(p, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		return Chain(glxResolver(handle), symbolResolver(handle)), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNoLibrary, lastErr)
}

func symbolResolver(handle uintptr) Func {
	return func(name string) uintptr {
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}
}

func glxResolver(handle uintptr) Func {
	sym, err := purego.Dlsym(handle, "glXGetProcAddressARB")
	if err != nil || sym == 0 {
		return nil
	}
	var getProcAddress func(name string) uintptr
	purego.RegisterFunc(&getProcAddress, sym)
	return getProcAddress
}
