// Package translate holds the token translation tables used while emitting
// Go bindings: vendor/word capitalization, GL primitive types, reserved
// identifiers and enum storage codes.
//
// Tables are values. They are built once by New, extended once with the
// registry's vendor tags by WithVendors, and passed explicitly to the
// resolver and emitter. Nothing in this package mutates a Tables after it
// has been returned.
package translate

import (
	"sort"
	"strings"

	"github.com/isncg/glad-go/pkg/diag"
)

// Overrides replaces or extends the seeded table entries. Keys of Words are
// matched case-insensitively.
type Overrides struct {
	Words map[string]string
	Types map[string]string
	Names map[string]string
}

// Tables is an immutable set of translation tables.
type Tables struct {
	words      map[string]string
	primitives map[string]string
	reserved   map[string]string
	storage    map[string]string
	opaque     map[string]bool
}

var seedVendorWords = []string{
	"nv", "arb", "amd", "ati", "ext", "qcom", "pgi", "intel", "apple", "mesa",
	"1d", "2d", "3d", "3dfx", "sgix", "oes",
}

var seedWords = map[string]string{
	"2x": "TwoX",
	"4x": "FourX",
	"8x": "EightX",
}

var seedPrimitives = map[string]string{
	"GLboolean":   "bool",
	"GLbyte":      "int8",
	"GLubyte":     "uint8",
	"GLchar":      "byte",
	"GLcharARB":   "byte",
	"GLshort":     "int16",
	"GLushort":    "uint16",
	"GLint":       "int32",
	"GLuint":      "uint32",
	"GLsizei":     "int32",
	"GLfixed":     "int32",
	"GLclampx":    "int32",
	"GLint64":     "int64",
	"GLint64EXT":  "int64",
	"GLuint64":    "uint64",
	"GLuint64EXT": "uint64",
	"GLfloat":     "float32",
	"GLclampf":    "float32",
	"GLdouble":    "float64",
	"GLclampd":    "float64",
	"GLhalf":      "uint16",
	"GLhalfARB":   "uint16",
	"GLhalfNV":    "uint16",
	"GLhandleARB": "uint32",

	"GLintptr":      "int",
	"GLintptrARB":   "int",
	"GLsizeiptr":    "int",
	"GLsizeiptrARB": "int",

	"GLsync":               "uintptr",
	"GLvdpauSurfaceNV":     "uintptr",
	"GLeglImageOES":        "unsafe.Pointer",
	"GLeglClientBufferEXT": "unsafe.Pointer",

	"GLDEBUGPROC":    "DebugProc",
	"GLDEBUGPROCARB": "DebugProc",
	"GLDEBUGPROCKHR": "DebugProc",
	"GLDEBUGPROCAMD": "DebugProcAMD",
	"GLVULKANPROCNV": "VulkanProcNV",
}

// seedOpaque lists struct tags that are only ever used behind a pointer
// (struct _cl_context *). One level of indirection becomes unsafe.Pointer.
var seedOpaque = []string{"_cl_context", "_cl_event"}

var seedReserved = map[string]string{
	"in":     "input",
	"out":    "output",
	"params": "parameters",
	"string": "str",
	"ref":    "reference",
	"object": "obj",
	"event":  "evt",
	"unsafe": "unsafePtr",

	"break":       "brk",
	"case":        "cs",
	"chan":        "ch",
	"const":       "cnst",
	"continue":    "cont",
	"default":     "def",
	"defer":       "dfr",
	"else":        "els",
	"fallthrough": "fallthru",
	"for":         "forValue",
	"func":        "fn",
	"go":          "goValue",
	"goto":        "gotoValue",
	"if":          "ifValue",
	"import":      "imp",
	"interface":   "iface",
	"map":         "mapping",
	"package":     "pkg",
	"range":       "rng",
	"return":      "ret",
	"select":      "sel",
	"struct":      "strct",
	"switch":      "sw",
	"type":        "typ",
	"var":         "variable",
}

var seedStorage = map[string]string{
	"bitmask": "uint32",
	"u":       "uint32",
	"ull":     "uint64",
}

// New builds the seeded tables with o applied on top.
func New(o Overrides) *Tables {
	t := &Tables{
		words:      make(map[string]string, len(seedVendorWords)+len(seedWords)+len(o.Words)),
		primitives: copyMap(seedPrimitives),
		reserved:   copyMap(seedReserved),
		storage:    copyMap(seedStorage),
		opaque:     make(map[string]bool, len(seedOpaque)),
	}
	for _, tok := range seedOpaque {
		t.opaque[tok] = true
	}
	for _, w := range seedVendorWords {
		t.words[w] = strings.ToUpper(w)
	}
	for k, v := range seedWords {
		t.words[k] = v
	}
	for k, v := range o.Words {
		t.words[strings.ToLower(k)] = v
	}
	for k, v := range o.Types {
		t.primitives[k] = v
	}
	for k, v := range o.Names {
		t.reserved[k] = v
	}
	return t
}

// Default returns the seeded tables without overrides.
func Default() *Tables {
	return New(Overrides{})
}

// WithVendors returns a copy of t whose word table also maps every vendor
// tag, lower-cased, to its upper-case form. Existing entries win, so "NV"
// and "nv" both end up as the single word NV, and applying the same vendors
// again yields an equal table.
func (t *Tables) WithVendors(vendors []string) *Tables {
	out := &Tables{
		words:      copyMap(t.words),
		primitives: t.primitives,
		reserved:   t.reserved,
		storage:    t.storage,
		opaque:     t.opaque,
	}
	for _, v := range vendors {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := out.words[key]; !ok {
			out.words[key] = strings.ToUpper(key)
		}
	}
	return out
}

// ForRegistry builds the tables for one registry: the seeds, o, and the
// registry's vendor tags. Every vendor tag that adds a word is reported as a
// VendorWord event.
func ForRegistry(o Overrides, vendors []string, logger diag.Logger) *Tables {
	logger = diag.OrNoop(logger)
	base := New(o)
	out := base.WithVendors(vendors)

	reported := make(map[string]bool)
	for _, v := range vendors {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || reported[key] {
			continue
		}
		reported[key] = true
		if _, known := base.words[key]; !known {
			logger.Log(diag.NewEvent(diag.StageTables, diag.KindVendorWord, v,
				"vendor tag added to the word table", out.words[key]))
		}
	}
	return out
}

// Word returns the fixed spelling of a name word, matched case-insensitively.
func (t *Tables) Word(w string) (string, bool) {
	v, ok := t.words[strings.ToLower(w)]
	return v, ok
}

// Primitive returns the Go type for a GL type token.
func (t *Tables) Primitive(tok string) (string, bool) {
	v, ok := t.primitives[tok]
	return v, ok
}

// Primitives returns every mapped type token, sorted.
func (t *Tables) Primitives() []string {
	out := make([]string, 0, len(t.primitives))
	for k := range t.primitives {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Opaque reports whether tok names a struct that is only used through a
// pointer.
func (t *Tables) Opaque(tok string) bool {
	return t.opaque[tok]
}

// Reserved returns the replacement for a name that cannot be used as a Go
// identifier.
func (t *Tables) Reserved(name string) (string, bool) {
	v, ok := t.reserved[name]
	return v, ok
}

// Storage returns the Go storage type for an enum hint code.
func (t *Tables) Storage(hint string) (string, bool) {
	v, ok := t.storage[hint]
	return v, ok
}

// WordCount returns the number of word-table entries.
func (t *Tables) WordCount() int {
	return len(t.words)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
