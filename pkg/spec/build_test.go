package spec_test

import (
	"errors"
	"testing"

	"github.com/isncg/glad-go/internal/spectest"
	"github.com/isncg/glad-go/pkg/registry"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/version"
)

func build(t *testing.T, xml string) (*spec.Spec, error) {
	t.Helper()
	root, err := registry.Parse([]byte(xml))
	if err != nil {
		t.Fatalf("registry.Parse failed: %v", err)
	}
	return spec.Build(root)
}

func TestBuild_Counts(t *testing.T) {
	s := spectest.GL(t)

	if got := len(s.Enumerations); got != 5 {
		t.Errorf("len(Enumerations) = %d, want 5", got)
	}
	if got := len(s.Commands); got != 16 {
		t.Errorf("len(Commands) = %d, want 16", got)
	}
	if got := len(s.Features); got != 6 {
		t.Errorf("len(Features) = %d, want 6", got)
	}
	if got := len(s.Extensions); got != 5 {
		t.Errorf("len(Extensions) = %d, want 5", got)
	}
}

func TestBuild_EnumerationGroups(t *testing.T) {
	s := spectest.GL(t)

	// Block default group plus the type applied to every group of the block.
	special := s.Enumerations[0]
	if len(special.Groups) != 1 || special.Groups[0].Name != "SpecialNumbers" {
		t.Fatalf("SpecialNumbers groups = %+v", special.Groups)
	}
	if got := special.Groups[0].Hints; len(got) != 2 || got[0] != "u" || got[1] != "ull" {
		t.Errorf("SpecialNumbers hints = %v, want [u ull]", got)
	}

	attrib := s.Enumerations[1]
	var names []string
	for _, g := range attrib.Groups {
		names = append(names, g.Name)
	}
	if len(names) != 2 || names[0] != "ClearBufferMask" || names[1] != "AttribMask" {
		t.Fatalf("AttribMask block groups = %v, want [ClearBufferMask AttribMask]", names)
	}
	for _, g := range attrib.Groups {
		if len(g.Hints) != 1 || g.Hints[0] != "bitmask" {
			t.Errorf("%s hints = %v, want [bitmask]", g.Name, g.Hints)
		}
	}
	// GL_ALL_ATTRIB_BITS has no explicit groups and falls back to the block group.
	if got := len(attrib.Groups[1].Members); got != 4 {
		t.Errorf("len(AttribMask members) = %d, want 4", got)
	}
	if got := len(attrib.Groups[0].Members); got != 3 {
		t.Errorf("len(ClearBufferMask members) = %d, want 3", got)
	}
}

func TestBuild_UngroupedMember(t *testing.T) {
	s := spectest.GL(t)

	block := s.Enumerations[2]
	var found *spec.EnumMember
	for _, m := range block.Members {
		if m.Name == "GL_FRAMEBUFFER_BINDING" {
			found = m
		}
	}
	if found == nil {
		t.Fatal("GL_FRAMEBUFFER_BINDING not found")
	}
	if groups := block.GroupsOf(found); len(groups) != 0 {
		t.Errorf("GroupsOf = %v, want none", groups)
	}
	if s.Parent(found) != block {
		t.Error("Parent should return the declaring block")
	}
}

func TestBuild_MemberFields(t *testing.T) {
	s := spectest.GL(t)

	m := s.Enumerations[2].Members[6] // GL_TEXTURE_2D
	if m.Name != "GL_TEXTURE_2D" {
		t.Fatalf("member = %s", m.Name)
	}
	if m.Value != "0x0DE1" {
		t.Errorf("Value = %q", m.Value)
	}
	if len(m.Groups) != 2 || m.Groups[0] != "EnableCap" || m.Groups[1] != "TextureTarget" {
		t.Errorf("Groups = %v", m.Groups)
	}
	if m.Enumeration != 2 {
		t.Errorf("Enumeration = %d, want 2", m.Enumeration)
	}
}

func TestBuild_Vendors(t *testing.T) {
	s := spectest.GL(t)

	got := s.Vendors()
	want := []string{"ARB", "nv", "NV"}
	if len(got) != len(want) {
		t.Fatalf("Vendors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vendors[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuild_CommandPointerParams(t *testing.T) {
	s := spectest.GL(t)

	c, ok := s.Command("glBufferData")
	if !ok {
		t.Fatal("glBufferData not found")
	}
	if len(c.Params) != 4 {
		t.Fatalf("len(Params) = %d, want 4", len(c.Params))
	}

	data := c.Params[2]
	if data.Name != "data" {
		t.Errorf("Name = %q, want data", data.Name)
	}
	if data.Type != "" {
		t.Errorf("Type = %q, want empty", data.Type)
	}
	if !data.IsPointer() || data.Stars != 1 {
		t.Errorf("Stars = %d, want 1", data.Stars)
	}
	if !data.IsConst() || data.IsConstConst() {
		t.Errorf("IsConst = %v, IsConstConst = %v", data.IsConst(), data.IsConstConst())
	}
	if data.Len != "size" {
		t.Errorf("Len = %q, want size", data.Len)
	}

	target := c.Params[0]
	if target.Type != "GLenum" || target.Group != "BufferTargetARB" || target.IsPointer() {
		t.Errorf("target = %+v", target)
	}
}

func TestBuild_OpaqueStructPointer(t *testing.T) {
	s := spectest.GL(t)

	c, ok := s.Command("glCreateSyncFromCLeventARB")
	if !ok {
		t.Fatal("glCreateSyncFromCLeventARB not found")
	}
	ctx := c.Params[0]
	if ctx.Type != "_cl_context" || ctx.Stars != 1 {
		t.Errorf("context = %q with %d stars, want _cl_context with 1", ctx.Type, ctx.Stars)
	}
	if c.Proto.Type != "GLsync" {
		t.Errorf("Proto.Type = %q, want GLsync", c.Proto.Type)
	}
}

func TestBuild_ConstConst(t *testing.T) {
	s := spectest.GL(t)

	c, _ := s.Command("glShaderSource")
	p := c.Params[2]
	if p.Type != "GLchar" {
		t.Errorf("Type = %q, want GLchar", p.Type)
	}
	if p.Stars != 2 {
		t.Errorf("Stars = %d, want 2", p.Stars)
	}
	if !p.IsConstConst() {
		t.Error("IsConstConst should be true")
	}
	want := []string{"const", "GLchar", "*const*", "string"}
	if len(p.Words) != len(want) {
		t.Fatalf("Words = %q, want %q", p.Words, want)
	}
	for i := range want {
		if p.Words[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, p.Words[i], want[i])
		}
	}
}

func TestBuild_Prototype(t *testing.T) {
	s := spectest.GL(t)

	tests := []struct {
		name  string
		typ   string
		stars int
		group string
	}{
		{"glClear", "void", 0, ""},
		{"glMapBuffer", "void", 1, ""},
		{"glGetString", "GLubyte", 1, "String"},
		{"glGetError", "GLenum", 0, "ErrorCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := s.Command(tt.name)
			if !ok {
				t.Fatalf("%s not found", tt.name)
			}
			if c.Proto.Name != tt.name {
				t.Errorf("Proto.Name = %q", c.Proto.Name)
			}
			if c.Proto.Type != tt.typ {
				t.Errorf("Proto.Type = %q, want %q", c.Proto.Type, tt.typ)
			}
			if c.Proto.Stars != tt.stars {
				t.Errorf("Proto.Stars = %d, want %d", c.Proto.Stars, tt.stars)
			}
			if c.Proto.Group != tt.group {
				t.Errorf("Proto.Group = %q, want %q", c.Proto.Group, tt.group)
			}
		})
	}
}

func TestBuild_Alias(t *testing.T) {
	s := spectest.GL(t)

	c, _ := s.Command("glBeginConditionalRenderNV")
	if c.Alias != "glBeginConditionalRender" {
		t.Errorf("Alias = %q", c.Alias)
	}
}

func TestBuild_Features(t *testing.T) {
	s := spectest.GL(t)

	f := s.Features[3]
	if f.Name != "GL_VERSION_3_2" || f.Number != (version.APIVersion{Major: 3, Minor: 2}) {
		t.Fatalf("feature = %s %s", f.Name, f.Number)
	}
	if len(f.Requires) != 0 || len(f.Removes) != 1 {
		t.Fatalf("requires=%d removes=%d", len(f.Requires), len(f.Removes))
	}
	if f.Removes[0].Profile != "core" || f.Removes[0].Commands[0] != "glBegin" {
		t.Errorf("remove = %+v", f.Removes[0])
	}

	v15 := s.Features[1]
	if len(v15.Requires[0].Enums) != 1 || v15.Requires[0].Enums[0] != "GL_STATIC_DRAW" {
		t.Errorf("1.5 enums = %v", v15.Requires[0].Enums)
	}
}

func TestBuild_Extensions(t *testing.T) {
	s := spectest.GL(t)

	x := s.Extensions[0]
	if x.Name != "GL_NV_conditional_render" {
		t.Fatalf("Name = %q", x.Name)
	}
	if !x.Supports("glcore") || !x.Supports("gl") || x.Supports("gles1") {
		t.Errorf("Supported = %v", x.Supported)
	}
	if s.Extensions[1].Requires[0].API != "gl" {
		t.Errorf("require api = %q, want gl", s.Extensions[1].Requires[0].API)
	}
}

func TestBuild_Malformed(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"enum without name", `<registry><enums><enum value="1"/></enums></registry>`},
		{"enum without value", `<registry><enums><enum name="GL_X"/></enums></registry>`},
		{"command without proto", `<registry><commands><command/></commands></registry>`},
		{"proto without name", `<registry><commands><command><proto>void</proto></command></commands></registry>`},
		{"param without name", `<registry><commands><command><proto>void <name>glX</name></proto><param><ptype>GLint</ptype></param></command></commands></registry>`},
		{"feature without name", `<registry><feature api="gl" number="1.0"/></registry>`},
		{"feature bad number", `<registry><feature api="gl" name="GL_VERSION_X" number="x"/></registry>`},
		{"extension without name", `<registry><extensions><extension supported="gl"/></extensions></registry>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.xml)
			if !errors.Is(err, spec.ErrMalformed) {
				t.Errorf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestBuild_DuplicateCommandKeepsFirst(t *testing.T) {
	s, err := build(t, `<registry><commands>
		<command><proto>void <name>glX</name></proto></command>
		<command><proto><ptype>GLint</ptype> <name>glX</name></proto></command>
	</commands></registry>`)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(s.Commands) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(s.Commands))
	}
	c, _ := s.Command("glX")
	if c.Proto.Type != "void" {
		t.Errorf("Proto.Type = %q, want void (first declaration)", c.Proto.Type)
	}
}

func TestGroup_AddHint(t *testing.T) {
	g := spec.NewGroup("G")
	if g.AddHint("") {
		t.Error("blank hint should be ignored")
	}
	if !g.AddHint("u") {
		t.Error("first u should be new")
	}
	if g.AddHint("u") {
		t.Error("second u should not be new")
	}
	g.AddHint("ull")
	if len(g.Hints) != 2 || g.Hints[1] != "ull" {
		t.Errorf("Hints = %v", g.Hints)
	}
}
