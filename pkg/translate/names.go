package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// namespaceWord is the leading word of every registry constant.
const namespaceWord = "GL"

// EnumMemberName translates a registry constant name into its Go spelling:
// the name is split on underscores, the leading GL word is dropped and every
// remaining word is either looked up in the word table or title-cased.
//
//	GL_TEXTURE_2D_MULTISAMPLE_NV -> Texture2DMultisampleNV
//	GL_MULTISAMPLE_4X            -> MultisampleFourX
func (t *Tables) EnumMemberName(name string) string {
	words := strings.Split(name, "_")
	if len(words) > 1 && words[0] == namespaceWord {
		words = words[1:]
	}

	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		if fixed, ok := t.Word(w); ok {
			b.WriteString(fixed)
			continue
		}
		b.WriteString(title(w))
	}
	return b.String()
}

// FuncName returns the exported wrapper name of a command: glDrawArrays ->
// DrawArrays.
func FuncName(command string) string {
	name := strings.TrimPrefix(command, "gl")
	if name == "" {
		name = command
	}
	return upperFirst(name)
}

// SlotName returns the name of the package variable holding the bound
// function pointer of a command.
func SlotName(command string) string {
	return "p" + command
}

// PFNName returns the function type name of a command, following the C
// header convention: glDrawArrays -> PFNGLDRAWARRAYSPROC.
func PFNName(command string) string {
	return "PFN" + strings.ToUpper(command) + "PROC"
}

// ParamName returns a usable Go identifier for a parameter name.
func (t *Tables) ParamName(name string) string {
	if r, ok := t.Reserved(name); ok {
		return r
	}
	return name
}

// IsIdentifier reports whether s is a valid Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func title(w string) string {
	return upperFirst(strings.ToLower(w))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
