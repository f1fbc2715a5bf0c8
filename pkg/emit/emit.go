// Package emit renders Go bindings for a registry: the flat constant table,
// one named type per resolved group, function-pointer slots with exported
// wrappers, and the Init loader.
//
// Output is deterministic. Every section iterates registry order or an
// explicit value sort; maps are used for lookups only.
package emit

import (
	"errors"
	"strconv"
	"strings"

	"github.com/isncg/glad-go/pkg/diag"
	"github.com/isncg/glad-go/pkg/resolve"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/translate"
	"github.com/isncg/glad-go/pkg/version"
)

// DefaultRuntime is the import path of the loader support package used by
// generated code.
const DefaultRuntime = "github.com/isncg/glad-go/pkg/procaddr"

// ErrNoAPI is returned when Options.API is empty.
var ErrNoAPI = errors.New("no API selected")

// CommandSource selects the commands to emit. *spec.Selector implements it.
type CommandSource interface {
	Commands(api string, v version.APIVersion, profile string) []*spec.Command
	ExtensionCommands(api string) []*spec.Command
}

var _ CommandSource = (*spec.Selector)(nil)

// Options controls command selection and the generated package.
type Options struct {
	API     string
	Version version.APIVersion // zero selects every feature
	Profile string

	Package string // defaults to "gl"
	Runtime string // defaults to DefaultRuntime
}

// Generator renders bindings from a model and its resolved groups.
type Generator struct {
	spec     *spec.Spec
	resolver *resolve.Resolver
	tables   *translate.Tables
	source   CommandSource
	logger   diag.Logger
}

// New creates a Generator. tables must already include the registry's
// vendor words.
func New(s *spec.Spec, r *resolve.Resolver, tables *translate.Tables, source CommandSource, logger diag.Logger) *Generator {
	return &Generator{
		spec:     s,
		resolver: r,
		tables:   tables,
		source:   source,
		logger:   diag.OrNoop(logger),
	}
}

// Generate renders the complete Go source file. The result is not gofmt'd.
func (g *Generator) Generate(opts Options) ([]byte, error) {
	if opts.API == "" {
		return nil, ErrNoAPI
	}
	if opts.Package == "" {
		opts.Package = "gl"
	}
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}

	ids := newIdentifiers(g.logger)
	for _, n := range resolve.FixedNames {
		ids.declare(n, "")
	}

	// Commands are the API; their identifiers are claimed first so constants
	// never shadow a wrapper.
	selected := g.selectCommands(opts, ids)
	types := g.declareTypes(ids)
	commands := g.commands(selected, types)
	constants := g.constants(ids)
	groups, special := g.groups(ids, types)

	var b strings.Builder
	steps := []struct {
		name string
		data any
	}{
		{"header", fileData{Package: opts.Package, Selected: selection(opts), Runtime: opts.Runtime}},
		{"callbacks", nil},
		{"constants", constants},
		{"groups", groups},
		{"special", special},
		{"commands", commands},
		{"init", commands},
	}
	for _, s := range steps {
		if err := renderTemplate(&b, s.name, s.data); err != nil {
			return nil, err
		}
	}
	return []byte(b.String()), nil
}

func selection(opts Options) string {
	parts := []string{opts.API}
	if !opts.Version.IsZero() {
		parts = append(parts, opts.Version.String())
	}
	if opts.Profile != "" {
		parts = append(parts, opts.Profile)
	}
	return strings.Join(parts, " ")
}

// declareTypes claims the group type names and maps every non-special group
// to the Go type its parameters use. A group whose type name is already
// taken is not emitted; its parameters fall back to the storage type.
func (g *Generator) declareTypes(ids *identifiers) map[string]string {
	types := make(map[string]string)
	for _, gr := range g.resolver.Groups() {
		if gr.Special() {
			continue
		}
		if ids.declare(gr.TypeName, gr.Name) {
			types[gr.Name] = gr.TypeName
		} else {
			types[gr.Name] = gr.Storage
		}
	}
	return types
}

// constants builds the flat table: every member under its registry name,
// first occurrence wins.
func (g *Generator) constants(ids *identifiers) []constData {
	var out []constData
	first := make(map[string]string)

	for _, e := range g.spec.Enumerations {
		for _, m := range e.Members {
			if prev, dup := first[m.Name]; dup {
				g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindDuplicateConstant, m.Name,
					"constant already declared; keeping the first value", prev, m.Value))
				continue
			}
			first[m.Name] = m.Value
			if !ids.declare(m.Name, m.Name) {
				continue
			}
			out = append(out, constData{
				Name:  m.Name,
				Type:  g.resolver.MemberStorage(m),
				Value: m.Value,
			})
		}
	}
	return out
}

// groups builds the typed groups and the SpecialNumbers constants.
func (g *Generator) groups(ids *identifiers, types map[string]string) ([]groupData, []constData) {
	var groups []groupData
	var special []constData

	for _, gr := range g.resolver.Groups() {
		if gr.Special() {
			for _, m := range g.members(gr) {
				name := g.tables.EnumMemberName(m.Name)
				if !translate.IsIdentifier(name) {
					g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindInvalidIdentifier, m.Name,
						"translated name is not a Go identifier; dropping the constant", name))
					continue
				}
				if !ids.declare(name, m.Name) {
					continue
				}
				special = append(special, constData{Name: name, Type: g.resolver.HintStorage(m), Value: m.Value})
			}
			continue
		}
		if types[gr.Name] != gr.TypeName {
			continue
		}

		gd := groupData{
			Name:     gr.Name,
			TypeName: gr.TypeName,
			Storage:  gr.Storage,
			Hints:    gr.Hints,
		}
		values := make(map[string]bool)
		for _, m := range g.members(gr) {
			name := gr.TypeName + g.tables.EnumMemberName(m.Name)
			if !ids.declare(name, m.Name) {
				continue
			}
			gd.Members = append(gd.Members, constData{Name: name, Type: gr.TypeName, Value: m.Value})

			key := valueKey(m.Value)
			if !values[key] {
				values[key] = true
				gd.Cases = append(gd.Cases, caseData{Const: name, Name: m.Name})
			}
		}
		if len(gd.Members) > 0 {
			groups = append(groups, gd)
		}
	}
	return groups, special
}

// members returns the group members sorted by value with duplicate
// translated names dropped.
func (g *Generator) members(gr *resolve.Group) []*spec.EnumMember {
	var out []*spec.EnumMember
	seen := make(map[string]string)

	for _, m := range gr.SortedMembers() {
		name := g.tables.EnumMemberName(m.Name)
		if prev, dup := seen[name]; dup {
			if prev != m.Name {
				g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindDuplicateMember, gr.Name,
					"members translate to the same name; keeping the first", prev, m.Name))
			}
			continue
		}
		seen[name] = m.Name
		out = append(out, m)
	}
	return out
}

// valueKey identifies a constant value for String() cases.
func valueKey(v string) string {
	lit := resolve.ParseLiteral(v)
	switch {
	case !lit.OK:
		return "?" + v
	case lit.Neg:
		return "-" + strconv.FormatUint(lit.Magnitude, 10)
	default:
		return strconv.FormatUint(lit.Magnitude, 10)
	}
}
