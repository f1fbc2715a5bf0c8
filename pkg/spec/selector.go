package spec

import "github.com/isncg/glad-go/pkg/version"

// Selector answers which commands belong to an API version/profile and which
// are contributed by extensions. Results are in registry order and contain
// each name at most once.
type Selector struct {
	spec *Spec
}

// NewSelector creates a Selector over s.
func NewSelector(s *Spec) *Selector {
	return &Selector{spec: s}
}

// Commands returns the core commands of api up to and including v (the zero
// version selects every feature) for the given profile.
//
// Require blocks apply when unprofiled, when profile is empty, or when the
// profiles match. Remove blocks apply only when unprofiled or matching, so an
// empty profile keeps everything that was ever required.
func (sel *Selector) Commands(api string, v version.APIVersion, profile string) []*Command {
	var order []string
	included := make(map[string]bool)

	for _, f := range sel.spec.Features {
		if f.API != api || !v.Includes(f.Number) {
			continue
		}
		for _, r := range f.Requires {
			if r.API != "" && r.API != api {
				continue
			}
			if r.Profile != "" && profile != "" && r.Profile != profile {
				continue
			}
			for _, name := range r.Commands {
				if _, seen := included[name]; !seen {
					order = append(order, name)
				}
				included[name] = true
			}
		}
		for _, r := range f.Removes {
			if r.API != "" && r.API != api {
				continue
			}
			if r.Profile != "" && r.Profile != profile {
				continue
			}
			for _, name := range r.Commands {
				if _, seen := included[name]; seen {
					included[name] = false
				}
			}
		}
	}

	var out []*Command
	for _, name := range order {
		if !included[name] {
			continue
		}
		if c, ok := sel.spec.Command(name); ok {
			out = append(out, c)
		}
	}
	return out
}

// ExtensionCommands returns the commands required by every extension that
// supports api.
func (sel *Selector) ExtensionCommands(api string) []*Command {
	var out []*Command
	seen := make(map[string]bool)

	for _, x := range sel.spec.Extensions {
		if !x.Supports(api) {
			continue
		}
		for _, r := range x.Requires {
			if r.API != "" && r.API != api {
				continue
			}
			for _, name := range r.Commands {
				if seen[name] {
					continue
				}
				seen[name] = true
				if c, ok := sel.spec.Command(name); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}
