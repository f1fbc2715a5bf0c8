package emit

import (
	"strconv"
	"strings"

	"github.com/isncg/glad-go/pkg/diag"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/translate"
)

// selectCommands picks the core set followed by the extension set, keeps
// the first occurrence of every name and claims the command identifiers.
func (g *Generator) selectCommands(opts Options, ids *identifiers) []*spec.Command {
	core := g.source.Commands(opts.API, opts.Version, opts.Profile)
	ext := g.source.ExtensionCommands(opts.API)

	var out []*spec.Command
	seen := make(map[string]bool)
	for _, c := range append(append([]*spec.Command(nil), core...), ext...) {
		if seen[c.Name] {
			g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindDuplicateCommand, c.Name,
				"command selected more than once; keeping the core binding"))
			continue
		}
		seen[c.Name] = true

		if !ids.declare(translate.FuncName(c.Name), c.Name) ||
			!ids.declare(translate.PFNName(c.Name), c.Name) ||
			!ids.declare(translate.SlotName(c.Name), c.Name) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// commands translates the signatures of the selected commands. types maps
// group names to the Go type their parameters use.
func (g *Generator) commands(selected []*spec.Command, types map[string]string) []commandData {
	out := make([]commandData, 0, len(selected))
	for _, c := range selected {
		out = append(out, commandData{
			Name:   c.Name,
			Alias:  c.Alias,
			PFN:    translate.PFNName(c.Name),
			Slot:   translate.SlotName(c.Name),
			Func:   translate.FuncName(c.Name),
			Params: g.params(c, types),
			Return: g.returnType(c, types),
		})
	}
	return out
}

func (g *Generator) params(c *spec.Command, types map[string]string) []paramData {
	out := make([]paramData, 0, len(c.Params))
	used := make(map[string]bool)

	for i, p := range c.Params {
		name := g.tables.ParamName(p.Name)
		if used[name] {
			name += strconv.Itoa(i)
		}
		used[name] = true

		out = append(out, paramData{
			Name: name,
			Type: g.goType(types, p.Type, p.Group, p.Stars, c.Name+"."+p.Name),
		})
	}
	return out
}

func (g *Generator) returnType(c *spec.Command, types map[string]string) string {
	proto := c.Proto
	if proto.Stars > 0 {
		return "unsafe.Pointer"
	}
	if isVoid(proto.Type) && proto.Type != "" {
		return ""
	}
	return g.goType(types, proto.Type, proto.Group, 0, c.Name)
}

// goType translates a declared type. Enum and bitmask tokens resolve
// through their group; everything else goes through the primitive table.
// Indirection becomes pointer prefixes, except for untyped declarations
// ("const void *") which become unsafe.Pointer. Opaque structs spend one
// level of indirection on unsafe.Pointer.
func (g *Generator) goType(types map[string]string, typ, group string, stars int, subject string) string {
	if isVoid(typ) {
		if stars > 0 {
			return "unsafe.Pointer"
		}
		g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindUntypedParameter, subject,
			"declaration has no usable type; using uintptr"))
		return "uintptr"
	}

	if g.tables.Opaque(typ) {
		if stars == 0 {
			g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindUntypedParameter, subject,
				"opaque struct passed by value; using uintptr", typ))
			return "uintptr"
		}
		return strings.Repeat("*", stars-1) + "unsafe.Pointer"
	}

	var base string
	switch typ {
	case "GLenum", "GLbitfield":
		if t, ok := types[group]; ok {
			base = t
		} else if typ == "GLenum" {
			base = g.resolver.EnumType(group)
		} else {
			base = g.resolver.BitmaskType(group)
		}
	default:
		var ok bool
		if base, ok = g.tables.Primitive(typ); !ok {
			g.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindUnknownPrimitiveType, subject,
				"type has no mapping; passing it through", typ))
			base = typ
		}
	}
	return strings.Repeat("*", stars) + base
}

func isVoid(typ string) bool {
	return typ == "" || typ == "void" || typ == "GLvoid"
}
