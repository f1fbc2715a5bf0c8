// Package spec builds the typed registry model: enumerations and their
// members, per-enumeration groups, commands with prototypes and parameters,
// and the feature/extension blocks used for command selection.
//
// The model is built once by Build and is not modified afterwards.
package spec

import (
	"errors"
	"strings"

	"github.com/isncg/glad-go/pkg/version"
)

// ErrMalformed is wrapped by every error caused by a registry entry that is
// missing a required name or value.
var ErrMalformed = errors.New("malformed registry")

// EnumMember is one <enum> entry of an <enums> block.
type EnumMember struct {
	Name  string
	Value string // literal as written in the registry
	Type  string // optional storage hint code ("u", "ull", "bitmask")
	Alias string

	// Groups lists the explicit group names; blanks are dropped.
	Groups []string

	// Enumeration is the index of the declaring block in Spec.Enumerations.
	Enumeration int
}

// Enumeration is one <enums> block.
type Enumeration struct {
	Namespace string
	Group     string // default group for members that declare none
	Type      string // default storage hint
	Vendor    string
	Start     string
	End       string
	Comment   string

	Members []*EnumMember

	// Groups holds this block's members by group name, in first-seen order.
	Groups []*Group
}

// GroupsOf returns the effective group names of m: its explicit groups, or
// the block default. The result is empty for ungrouped members.
func (e *Enumeration) GroupsOf(m *EnumMember) []string {
	if len(m.Groups) > 0 {
		return m.Groups
	}
	if e.Group != "" {
		return []string{e.Group}
	}
	return nil
}

// Group is a named list of members with the storage hints seen for them.
type Group struct {
	Name    string
	Members []*EnumMember
	Hints   []string // distinct, first-seen order
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add appends a member.
func (g *Group) Add(m *EnumMember) {
	g.Members = append(g.Members, m)
}

// AddHint records a storage hint. Blank and already-known hints are ignored.
// It reports whether the hint was new.
func (g *Group) AddHint(hint string) bool {
	if hint == "" {
		return false
	}
	for _, h := range g.Hints {
		if h == hint {
			return false
		}
	}
	g.Hints = append(g.Hints, hint)
	return true
}

// CommandItem holds what prototypes and parameters share: a name and the
// declared type as a word sequence.
type CommandItem struct {
	Name  string
	Words []string // trimmed, non-empty child texts in order
	Stars int      // number of '*' across Words
	Group string   // optional group override
}

// IsPointer reports whether the declared type has any indirection.
func (c *CommandItem) IsPointer() bool {
	return c.Stars > 0
}

// IsConst reports whether any word of the declaration contains "const".
func (c *CommandItem) IsConst() bool {
	return c.constWords() > 0
}

// IsConstConst reports whether "const" appears in more than one word, as in
// "const GLchar *const*".
func (c *CommandItem) IsConstConst() bool {
	return c.constWords() > 1
}

func (c *CommandItem) constWords() int {
	n := 0
	for _, w := range c.Words {
		if strings.Contains(w, "const") {
			n++
		}
	}
	return n
}

// Parameter is one <param> of a command.
type Parameter struct {
	CommandItem
	Len string // length-parameter reference

	// Type is the single-word <ptype>. It is empty when the declaration has
	// no <ptype> or the <ptype> spans several words.
	Type string
}

// Prototype is the <proto> of a command and describes its return type.
type Prototype struct {
	CommandItem
	Type string
}

// Command is one <command> entry.
type Command struct {
	Name   string
	Proto  Prototype
	Params []*Parameter
	Alias  string
}

// Require lists the names pulled in (or dropped, for <remove>) by one block.
type Require struct {
	API      string
	Profile  string
	Commands []string
	Enums    []string
}

// Feature is one <feature> block, a core API version.
type Feature struct {
	API      string
	Name     string
	Number   version.APIVersion
	Requires []Require
	Removes  []Require
}

// Extension is one <extension> block.
type Extension struct {
	Name      string
	Supported []string
	Requires  []Require
}

// Supports reports whether the extension lists api in its supported set.
func (x *Extension) Supports(api string) bool {
	for _, s := range x.Supported {
		if s == api {
			return true
		}
	}
	return false
}

// Spec is the complete registry model.
type Spec struct {
	Enumerations []*Enumeration
	Commands     []*Command
	Features     []*Feature
	Extensions   []*Extension

	commands map[string]*Command
}

// Parent returns the enumeration that declared m.
func (s *Spec) Parent(m *EnumMember) *Enumeration {
	return s.Enumerations[m.Enumeration]
}

// Command returns the first command declared under name.
func (s *Spec) Command(name string) (*Command, bool) {
	c, ok := s.commands[name]
	return c, ok
}

// Vendors returns the distinct vendor tags of all enumerations as written,
// in first-seen order.
func (s *Spec) Vendors() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range s.Enumerations {
		if e.Vendor == "" || seen[e.Vendor] {
			continue
		}
		seen[e.Vendor] = true
		out = append(out, e.Vendor)
	}
	return out
}
