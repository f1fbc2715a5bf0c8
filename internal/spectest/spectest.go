// Package spectest provides a small OpenGL registry fixture and helpers for
// building models from inline registry XML in tests.
package spectest

import (
	"testing"

	"github.com/isncg/glad-go/pkg/registry"
	"github.com/isncg/glad-go/pkg/spec"
)

// GLXML is a trimmed-down gl.xml covering every construct the generator
// handles: block and member groups, storage hints, vendor tags in both
// cases, ungrouped members, pointer parameters, opaque OpenCL handles,
// callbacks, versioned features with a core-profile removal, and
// overlapping extensions.
const GLXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <comment>Fixture registry</comment>
    <enums namespace="GL" group="SpecialNumbers" vendor="ARB">
        <enum value="0" name="GL_FALSE"/>
        <enum value="1" name="GL_TRUE"/>
        <enum value="0xFFFFFFFF" name="GL_INVALID_INDEX" type="u"/>
        <enum value="0xFFFFFFFFFFFFFFFF" name="GL_TIMEOUT_IGNORED" type="ull"/>
    </enums>

    <enums namespace="GL" group="AttribMask" type="bitmask">
        <enum value="0x00000100" name="GL_DEPTH_BUFFER_BIT" group="ClearBufferMask,AttribMask"/>
        <enum value="0x00000400" name="GL_STENCIL_BUFFER_BIT" group="ClearBufferMask,AttribMask"/>
        <enum value="0x00004000" name="GL_COLOR_BUFFER_BIT" group="ClearBufferMask,AttribMask"/>
        <enum value="0xFFFFFFFF" name="GL_ALL_ATTRIB_BITS"/>
    </enums>

    <enums namespace="GL" start="0x0000" end="0x7FFF" vendor="ARB" comment="Mostly OpenGL 1.0 enums">
        <enum value="0x0004" name="GL_TRIANGLES" group="PrimitiveType"/>
        <enum value="0x0000" name="GL_POINTS" group="PrimitiveType"/>
        <enum value="0x0005" name="GL_TRIANGLE_STRIP" group="PrimitiveType"/>
        <enum value="0x0001" name="GL_LINES" group="PrimitiveType"/>
        <enum value="0x0500" name="GL_INVALID_ENUM" group="ErrorCode"/>
        <enum value="0x0B71" name="GL_DEPTH_TEST" group="EnableCap"/>
        <enum value="0x0DE1" name="GL_TEXTURE_2D" group="EnableCap,TextureTarget"/>
        <enum value="0x1E00" name="GL_KEEP" group="StencilOp"/>
        <enum value="0x1E01" name="GL_REPLACE" group="StencilOp"/>
        <enum value="0x1F03" name="GL_EXTENSIONS" group="StringName"/>
        <enum value="0x88E4" name="GL_STATIC_DRAW" group="BufferUsageARB"/>
        <enum value="0x8CA6" name="GL_FRAMEBUFFER_BINDING"/>
        <unused start="0x7000" end="0x7FFF"/>
    </enums>

    <enums namespace="GL" start="0x8E13" end="0x8E1F" vendor="nv">
        <enum value="0x8E13" name="GL_QUERY_WAIT" group="ConditionalRenderMode"/>
        <enum value="0x8E13" name="GL_QUERY_WAIT_NV" group="ConditionalRenderMode"/>
        <enum value="0x8E14" name="GL_QUERY_NO_WAIT_NV" group="ConditionalRenderMode"/>
    </enums>

    <enums namespace="GL" start="0x9000" end="0x900F" vendor="NV">
        <enum value="0x9001" name="GL_TEXTURE_2D_MULTISAMPLE_NV" group="TextureTarget"/>
    </enums>

    <commands namespace="GL">
        <command>
            <proto>void <name>glClear</name></proto>
            <param group="ClearBufferMask"><ptype>GLbitfield</ptype> <name>mask</name></param>
        </command>
        <command>
            <proto>void <name>glBegin</name></proto>
            <param group="PrimitiveType"><ptype>GLenum</ptype> <name>mode</name></param>
        </command>
        <command>
            <proto>void <name>glDrawArrays</name></proto>
            <param group="PrimitiveType"><ptype>GLenum</ptype> <name>mode</name></param>
            <param><ptype>GLint</ptype> <name>first</name></param>
            <param><ptype>GLsizei</ptype> <name>count</name></param>
        </command>
        <command>
            <proto group="ErrorCode"><ptype>GLenum</ptype> <name>glGetError</name></proto>
        </command>
        <command>
            <proto>void <name>glEnable</name></proto>
            <param group="EnableCap"><ptype>GLenum</ptype> <name>cap</name></param>
        </command>
        <command>
            <proto>void <name>glStencilOp</name></proto>
            <param group="StencilOp"><ptype>GLenum</ptype> <name>fail</name></param>
            <param group="StencilOp"><ptype>GLenum</ptype> <name>zfail</name></param>
            <param group="StencilOp"><ptype>GLenum</ptype> <name>zpass</name></param>
        </command>
        <command>
            <proto group="String">const <ptype>GLubyte</ptype> *<name>glGetString</name></proto>
            <param group="StringName"><ptype>GLenum</ptype> <name>name</name></param>
        </command>
        <command>
            <proto>void <name>glBufferData</name></proto>
            <param group="BufferTargetARB"><ptype>GLenum</ptype> <name>target</name></param>
            <param><ptype>GLsizeiptr</ptype> <name>size</name></param>
            <param len="size">const void *<name>data</name></param>
            <param group="BufferUsageARB"><ptype>GLenum</ptype> <name>usage</name></param>
        </command>
        <command>
            <proto>void *<name>glMapBuffer</name></proto>
            <param group="BufferTargetARB"><ptype>GLenum</ptype> <name>target</name></param>
            <param group="BufferAccessARB"><ptype>GLenum</ptype> <name>access</name></param>
        </command>
        <command>
            <proto>void <name>glShaderSource</name></proto>
            <param class="shader"><ptype>GLuint</ptype> <name>shader</name></param>
            <param><ptype>GLsizei</ptype> <name>count</name></param>
            <param len="count">const <ptype>GLchar</ptype> *const*<name>string</name></param>
            <param len="count">const <ptype>GLint</ptype> *<name>length</name></param>
        </command>
        <command>
            <proto>void <name>glGetIntegerv</name></proto>
            <param group="GetPName"><ptype>GLenum</ptype> <name>pname</name></param>
            <param len="COMPSIZE(pname)"><ptype>GLint</ptype> *<name>data</name></param>
        </command>
        <command>
            <proto>void <name>glDebugMessageCallback</name></proto>
            <param><ptype>GLDEBUGPROC</ptype> <name>callback</name></param>
            <param>const void *<name>userParam</name></param>
        </command>
        <command>
            <proto>void <name>glBeginConditionalRenderNV</name></proto>
            <param><ptype>GLuint</ptype> <name>id</name></param>
            <param group="ConditionalRenderMode"><ptype>GLenum</ptype> <name>mode</name></param>
            <alias name="glBeginConditionalRender"/>
        </command>
        <command>
            <proto>void <name>glImportSyncEXT</name></proto>
            <param><ptype>GLenum</ptype> <name>external_sync_type</name></param>
            <param><ptype>GLintptr</ptype> <name>external_sync</name></param>
            <param><ptype>GLbitfield</ptype> <name>flags</name></param>
        </command>
        <command>
            <proto>void <name>glFooOES</name></proto>
            <param><ptype>GLfixed</ptype> <name>type</name></param>
        </command>
        <command>
            <proto><ptype>GLsync</ptype> <name>glCreateSyncFromCLeventARB</name></proto>
            <param>struct <ptype>_cl_context</ptype> *<name>context</name></param>
            <param>struct <ptype>_cl_event</ptype> *<name>event</name></param>
            <param><ptype>GLbitfield</ptype> <name>flags</name></param>
        </command>
    </commands>

    <feature api="gl" name="GL_VERSION_1_0" number="1.0">
        <require>
            <command name="glClear"/>
            <command name="glBegin"/>
            <command name="glDrawArrays"/>
            <command name="glGetError"/>
            <command name="glEnable"/>
            <command name="glStencilOp"/>
            <command name="glGetString"/>
            <command name="glGetIntegerv"/>
        </require>
    </feature>
    <feature api="gl" name="GL_VERSION_1_5" number="1.5">
        <require>
            <enum name="GL_STATIC_DRAW"/>
            <command name="glBufferData"/>
            <command name="glMapBuffer"/>
        </require>
    </feature>
    <feature api="gl" name="GL_VERSION_2_0" number="2.0">
        <require>
            <command name="glShaderSource"/>
        </require>
    </feature>
    <feature api="gl" name="GL_VERSION_3_2" number="3.2">
        <remove profile="core" comment="Compatibility-only commands removed from core">
            <command name="glBegin"/>
        </remove>
    </feature>
    <feature api="gl" name="GL_VERSION_4_3" number="4.3">
        <require>
            <command name="glDebugMessageCallback"/>
        </require>
    </feature>
    <feature api="gles2" name="GL_ES_VERSION_2_0" number="2.0">
        <require>
            <command name="glClear"/>
        </require>
    </feature>

    <extensions>
        <extension name="GL_NV_conditional_render" supported="gl|glcore|gles2">
            <require>
                <enum name="GL_QUERY_WAIT_NV"/>
                <command name="glBeginConditionalRenderNV"/>
            </require>
        </extension>
        <extension name="GL_KHR_debug" supported="gl|glcore|gles2">
            <require api="gl">
                <command name="glDebugMessageCallback"/>
            </require>
        </extension>
        <extension name="GL_EXT_x11_sync_object" supported="gl">
            <require>
                <command name="glImportSyncEXT"/>
                <command name="glMissingFromRegistryEXT"/>
            </require>
        </extension>
        <extension name="GL_OES_fixed_point" supported="gles1">
            <require>
                <command name="glFooOES"/>
            </require>
        </extension>
        <extension name="GL_ARB_cl_event" supported="gl|glcore">
            <require>
                <command name="glCreateSyncFromCLeventARB"/>
            </require>
        </extension>
    </extensions>
</registry>`

// Build parses xml and builds the model, failing the test on error.
func Build(tb testing.TB, xml string) *spec.Spec {
	tb.Helper()
	root, err := registry.Parse([]byte(xml))
	if err != nil {
		tb.Fatalf("registry.Parse failed: %v", err)
	}
	s, err := spec.Build(root)
	if err != nil {
		tb.Fatalf("spec.Build failed: %v", err)
	}
	return s
}

// GL builds the fixture registry.
func GL(tb testing.TB) *spec.Spec {
	tb.Helper()
	return Build(tb, GLXML)
}
