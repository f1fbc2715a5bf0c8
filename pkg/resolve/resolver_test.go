package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isncg/glad-go/internal/spectest"
	"github.com/isncg/glad-go/pkg/diag"
	"github.com/isncg/glad-go/pkg/resolve"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/translate"
)

func newResolver(t *testing.T, s *spec.Spec) (*resolve.Resolver, *diag.Recorder) {
	t.Helper()
	rec := diag.NewRecorder()
	tables := translate.Default().WithVendors(s.Vendors())
	return resolve.New(s, tables, rec), rec
}

func groupNames(r *resolve.Resolver) []string {
	var out []string
	for _, g := range r.Groups() {
		out = append(out, g.Name)
	}
	return out
}

func TestResolver_MergeOrder(t *testing.T) {
	r, _ := newResolver(t, spectest.GL(t))

	assert.Equal(t, []string{
		"SpecialNumbers",
		"ClearBufferMask", "AttribMask",
		"PrimitiveType", "ErrorCode", "EnableCap", "TextureTarget", "StencilOp", "StringName", "BufferUsageARB",
		"ConditionalRenderMode",
	}, groupNames(r))
}

func TestResolver_CrossEnumerationMerge(t *testing.T) {
	r, _ := newResolver(t, spectest.GL(t))

	g, ok := r.Group("TextureTarget")
	require.True(t, ok)

	var names []string
	for _, m := range g.Members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"GL_TEXTURE_2D", "GL_TEXTURE_2D_MULTISAMPLE_NV"}, names)
	assert.Equal(t, "int32", g.Storage)
}

func TestResolver_EmptyGroupKey(t *testing.T) {
	_, rec := newResolver(t, spectest.GL(t))

	events := rec.OfKind(diag.KindEmptyGroupKey)
	require.Len(t, events, 1)
	assert.Equal(t, "GL_FRAMEBUFFER_BINDING", events[0].Subject)
	assert.Equal(t, diag.StageResolve, events[0].Stage)
}

func TestResolver_Storage(t *testing.T) {
	r, _ := newResolver(t, spectest.GL(t))

	tests := map[string]string{
		"AttribMask":      "uint32",
		"ClearBufferMask": "uint32",
		"PrimitiveType":   "int32",
		"SpecialNumbers":  "uint64",
	}
	for name, want := range tests {
		g, ok := r.Group(name)
		require.True(t, ok, name)
		assert.Equal(t, want, g.Storage, name)
	}
}

func TestResolver_AmbiguousHintsUseWidest(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL" group="Limits">
			<enum value="0xFFFFFFFF" name="GL_A" type="u"/>
			<enum value="0xFFFFFFFFFFFFFFFF" name="GL_B" type="ull"/>
		</enums>
	</registry>`)
	r, rec := newResolver(t, s)

	g, _ := r.Group("Limits")
	assert.True(t, g.Ambiguous())
	assert.Equal(t, "uint64", g.Storage)

	events := rec.OfKind(diag.KindAmbiguousGroupType)
	require.Len(t, events, 1)
	assert.Equal(t, "Limits", events[0].Subject)
	assert.Equal(t, []string{"u", "ull"}, events[0].Values)
}

func TestResolver_EqualWidthHintsUseFirstSeen(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL" group="Mixed" type="bitmask">
			<enum value="0x1" name="GL_A" type="u"/>
		</enums>
	</registry>`)
	r, rec := newResolver(t, s)

	g, _ := r.Group("Mixed")
	assert.Equal(t, []string{"u", "bitmask"}, g.Hints)
	assert.Equal(t, "uint32", g.Storage)
	assert.Len(t, rec.OfKind(diag.KindAmbiguousGroupType), 1)
}

func TestResolver_HintsMergeAcrossEnumerations(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL"><enum value="0x1" name="GL_A" group="G"/></enums>
		<enums namespace="GL" type="bitmask"><enum value="0x2" name="GL_B" group="G"/></enums>
	</registry>`)
	r, rec := newResolver(t, s)

	g, _ := r.Group("G")
	assert.Equal(t, []string{"bitmask"}, g.Hints)
	assert.Equal(t, "uint32", g.Storage)
	assert.Len(t, g.Members, 2)
	assert.Empty(t, rec.OfKind(diag.KindAmbiguousGroupType))
}

func TestResolver_UnknownHint(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL" group="G">
			<enum value="0x1" name="GL_A" type="i"/>
			<enum value="0x2" name="GL_B" type="i"/>
		</enums>
	</registry>`)
	r, rec := newResolver(t, s)

	events := rec.OfKind(diag.KindUnknownStorageHint)
	require.Len(t, events, 1, "each unknown code is reported once")
	assert.Equal(t, []string{"i"}, events[0].Values)

	g, _ := r.Group("G")
	assert.Equal(t, "int32", g.Storage)
}

func TestResolver_UnhintedGroupWidens(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL" group="G">
			<enum value="0x1" name="GL_A"/>
			<enum value="0x80000000" name="GL_B"/>
		</enums>
		<enums namespace="GL" group="H">
			<enum value="0x100000000" name="GL_C"/>
		</enums>
	</registry>`)
	r, _ := newResolver(t, s)

	g, _ := r.Group("G")
	assert.Equal(t, "uint32", g.Storage)
	h, _ := r.Group("H")
	assert.Equal(t, "uint64", h.Storage)
}

func TestResolver_RenamesClashingType(t *testing.T) {
	r, rec := newResolver(t, spectest.GL(t))

	g, _ := r.Group("StencilOp")
	assert.Equal(t, "StencilOpEnum", g.TypeName)
	assert.Equal(t, "StencilOpEnum", r.EnumType("StencilOp"))

	events := rec.OfKind(diag.KindRenamedType)
	require.Len(t, events, 1)
	assert.Equal(t, diag.SeverityInfo, events[0].Severity)

	p, _ := r.Group("PrimitiveType")
	assert.Equal(t, "PrimitiveType", p.TypeName)
}

func TestResolver_TypeQueries(t *testing.T) {
	r, _ := newResolver(t, spectest.GL(t))

	assert.Equal(t, "PrimitiveType", r.EnumType("PrimitiveType"))
	assert.Equal(t, "int32", r.EnumType("BufferTargetARB"))
	assert.Equal(t, "int32", r.EnumType(""))
	assert.Equal(t, "int32", r.EnumType("SpecialNumbers"))

	assert.Equal(t, "ClearBufferMask", r.BitmaskType("ClearBufferMask"))
	assert.Equal(t, "uint32", r.BitmaskType("MapBufferAccessMask"))
}

func TestResolver_MemberStorage(t *testing.T) {
	s := spectest.GL(t)
	r, _ := newResolver(t, s)

	find := func(name string) *spec.EnumMember {
		for _, e := range s.Enumerations {
			for _, m := range e.Members {
				if m.Name == name {
					return m
				}
			}
		}
		t.Fatalf("%s not found", name)
		return nil
	}

	tests := map[string]string{
		"GL_INVALID_INDEX":       "uint32", // explicit u
		"GL_TIMEOUT_IGNORED":     "uint64", // explicit ull
		"GL_ALL_ATTRIB_BITS":     "uint32", // enumeration bitmask
		"GL_TRUE":                "int32",
		"GL_FRAMEBUFFER_BINDING": "int32",
	}
	for name, want := range tests {
		assert.Equal(t, want, r.MemberStorage(find(name)), name)
	}

	special, _ := r.Group("SpecialNumbers")
	assert.Equal(t, "uint32", r.HintStorage(special.Members[0]))
	assert.Equal(t, "uint64", r.HintStorage(special.Members[3]))
}

func TestResolver_MemberStorageHeuristic(t *testing.T) {
	s := spectest.Build(t, `<registry>
		<enums namespace="GL">
			<enum value="0x80000000" name="GL_HIGH"/>
			<enum value="0x7FFFFFFF" name="GL_LOW"/>
			<enum value="-1" name="GL_NEG"/>
		</enums>
	</registry>`)
	r, _ := newResolver(t, s)

	members := s.Enumerations[0].Members
	assert.Equal(t, "uint32", r.MemberStorage(members[0]))
	assert.Equal(t, "int32", r.MemberStorage(members[1]))
	assert.Equal(t, "int32", r.MemberStorage(members[2]))
}

func TestGroup_SortedMembers(t *testing.T) {
	r, _ := newResolver(t, spectest.GL(t))

	g, _ := r.Group("PrimitiveType")
	var names []string
	for _, m := range g.SortedMembers() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"GL_POINTS", "GL_LINES", "GL_TRIANGLES", "GL_TRIANGLE_STRIP"}, names)

	// Merge order is untouched.
	assert.Equal(t, "GL_TRIANGLES", g.Members[0].Name)
}
