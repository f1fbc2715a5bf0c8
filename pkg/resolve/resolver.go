// Package resolve merges the per-enumeration groups of a registry into one
// global group table and answers which Go type a group, an enum-shaped
// token or a single constant is emitted as.
package resolve

import (
	"math"
	"sort"

	"github.com/isncg/glad-go/pkg/diag"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/translate"
)

// SpecialNumbers is the group whose members are emitted as plain constants
// rather than as a named type.
const SpecialNumbers = "SpecialNumbers"

// FixedNames are the identifiers every generated file declares regardless
// of the registry contents.
var FixedNames = []string{"Init", "GetProcAddressFunc", "DebugProc", "DebugProcAMD", "VulkanProcNV"}

// Group is a merged group.
type Group struct {
	// Name is the registry group name.
	Name string

	// TypeName is the Go type the group is emitted as. It differs from Name
	// only when Name would clash with another generated identifier.
	TypeName string

	// Members in merge order: enumeration order, then member order.
	Members []*spec.EnumMember

	// Hints are the distinct storage hints in first-seen order.
	Hints []string

	// Storage is the Go storage type of the group.
	Storage string
}

// Ambiguous reports whether the group carries more than one storage hint.
func (g *Group) Ambiguous() bool {
	return len(g.Hints) > 1
}

// Special reports whether the group is emitted as plain constants.
func (g *Group) Special() bool {
	return g.Name == SpecialNumbers
}

// SortedMembers returns the members ordered by ascending numeric value.
// The sort is stable; unparseable values keep their order after all numbers.
func (g *Group) SortedMembers() []*spec.EnumMember {
	out := append([]*spec.EnumMember(nil), g.Members...)
	sort.SliceStable(out, func(i, j int) bool {
		return ParseLiteral(out[i].Value).Compare(ParseLiteral(out[j].Value)) < 0
	})
	return out
}

// Resolver is the global group view over a Spec. It is built once by New
// and read-only afterwards.
type Resolver struct {
	spec   *spec.Spec
	tables *translate.Tables
	logger diag.Logger

	groups []*Group
	byName map[string]*Group
}

// New merges the groups of s. Conditions that change or guess at the
// output are reported to logger.
func New(s *spec.Spec, tables *translate.Tables, logger diag.Logger) *Resolver {
	r := &Resolver{
		spec:   s,
		tables: tables,
		logger: diag.OrNoop(logger),
		byName: make(map[string]*Group),
	}

	r.checkHints()
	r.merge()

	taken := make(map[string]bool)
	for _, n := range FixedNames {
		taken[n] = true
	}
	for _, c := range s.Commands {
		taken[translate.FuncName(c.Name)] = true
	}

	for _, g := range r.groups {
		g.Storage = r.storage(g)
		g.TypeName = r.typeName(g, taken)
	}
	return r
}

func (r *Resolver) merge() {
	for _, e := range r.spec.Enumerations {
		for _, m := range e.Members {
			if len(e.GroupsOf(m)) == 0 {
				r.logger.Log(diag.NewEvent(diag.StageResolve, diag.KindEmptyGroupKey, m.Name,
					"member has no group and no block default; kept in the flat table only"))
			}
		}

		for _, eg := range e.Groups {
			g, ok := r.byName[eg.Name]
			if !ok {
				g = &Group{Name: eg.Name}
				r.byName[eg.Name] = g
				r.groups = append(r.groups, g)
			}
			g.Members = append(g.Members, eg.Members...)
			for _, h := range eg.Hints {
				g.Hints = addHint(g.Hints, h)
			}
		}
	}
}

// checkHints reports every hint code without a storage mapping once, in
// registry order.
func (r *Resolver) checkHints() {
	seen := make(map[string]bool)
	check := func(hint, subject string) {
		if hint == "" || seen[hint] {
			return
		}
		seen[hint] = true
		if _, ok := r.tables.Storage(hint); !ok {
			r.logger.Log(diag.NewEvent(diag.StageResolve, diag.KindUnknownStorageHint, subject,
				"storage hint has no mapping and is ignored", hint))
		}
	}

	for _, e := range r.spec.Enumerations {
		check(e.Type, e.Group)
		for _, m := range e.Members {
			check(m.Type, m.Name)
		}
	}
}

func (r *Resolver) storage(g *Group) string {
	if g.Ambiguous() {
		r.logger.Log(diag.NewEvent(diag.StageResolve, diag.KindAmbiguousGroupType, g.Name,
			"group has conflicting storage hints; using the widest", g.Hints...))
	}

	best := ""
	for _, h := range g.Hints {
		s, ok := r.tables.Storage(h)
		if !ok {
			continue
		}
		if best == "" || storageWidth(s) > storageWidth(best) {
			best = s
		}
	}
	if best != "" {
		return best
	}

	values := make([]string, len(g.Members))
	for i, m := range g.Members {
		values[i] = m.Value
	}
	return smallestStorage(values)
}

func (r *Resolver) typeName(g *Group, taken map[string]bool) string {
	if g.Special() {
		return ""
	}
	name := g.Name
	if !taken[name] {
		taken[name] = true
		return name
	}

	renamed := name + "Enum"
	r.logger.Log(diag.NewEvent(diag.StageResolve, diag.KindRenamedType, g.Name,
		"group type renamed to avoid a clash with a generated identifier", renamed))
	taken[renamed] = true
	return renamed
}

// Groups returns the merged groups in order of first appearance.
func (r *Resolver) Groups() []*Group {
	return r.groups
}

// Group returns the merged group named name.
func (r *Resolver) Group(name string) (*Group, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// EnumType returns the Go type of an enum-shaped token in group, or int32
// when the group is unknown or not emitted as a type.
func (r *Resolver) EnumType(group string) string {
	if g, ok := r.byName[group]; ok && !g.Special() {
		return g.TypeName
	}
	return "int32"
}

// BitmaskType returns the Go type of a bitmask-shaped token in group, or
// uint32 when the group is unknown or not emitted as a type.
func (r *Resolver) BitmaskType(group string) string {
	if g, ok := r.byName[group]; ok && !g.Special() {
		return g.TypeName
	}
	return "uint32"
}

// MemberStorage returns the storage type of a constant in the flat table:
// its own hint, else its enumeration's hint, else uint32 for literals in
// the 0x80000000-0xFFFFFFFF hex range, else int32. Literals that fit
// neither 32-bit type get the narrowest 64-bit type that holds them.
func (r *Resolver) MemberStorage(m *spec.EnumMember) string {
	if s, ok := r.tables.Storage(m.Type); ok {
		return s
	}
	if s, ok := r.tables.Storage(r.spec.Parent(m).Type); ok {
		return s
	}
	if IsUnsignedHex32(m.Value) {
		return "uint32"
	}
	return smallestStorage([]string{m.Value})
}

// HintStorage returns the storage of a SpecialNumbers constant: its own
// hint, else uint32. Values uint32 cannot hold get the narrowest type that
// does.
func (r *Resolver) HintStorage(m *spec.EnumMember) string {
	if s, ok := r.tables.Storage(m.Type); ok {
		return s
	}
	lit := ParseLiteral(m.Value)
	if !lit.OK || (!lit.Neg && lit.Magnitude <= math.MaxUint32) {
		return "uint32"
	}
	return smallestStorage([]string{m.Value})
}

func addHint(hints []string, h string) []string {
	for _, x := range hints {
		if x == h {
			return hints
		}
	}
	return append(hints, h)
}
