package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want Literal
	}{
		{"0", Literal{Magnitude: 0, OK: true}},
		{"0x8E13", Literal{Magnitude: 0x8E13, OK: true}},
		{"0xFFFFFFFFFFFFFFFF", Literal{Magnitude: 0xFFFFFFFFFFFFFFFF, OK: true}},
		{"-1", Literal{Neg: true, Magnitude: 1, OK: true}},
		{"-9223372036854775808", Literal{Neg: true, Magnitude: 1 << 63, OK: true}},
		{"GL_FOO", Literal{}},
		{"", Literal{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLiteral(tt.in), tt.in)
	}
}

func TestLiteralCompare(t *testing.T) {
	ordered := []string{"-2", "-1", "0", "0x1", "2", "0xFFFFFFFF", "0xFFFFFFFFFFFFFFFF", "bogus"}
	for i := 0; i+1 < len(ordered); i++ {
		a, b := ParseLiteral(ordered[i]), ParseLiteral(ordered[i+1])
		assert.Equal(t, -1, a.Compare(b), "%s < %s", ordered[i], ordered[i+1])
		assert.Equal(t, 1, b.Compare(a), "%s > %s", ordered[i+1], ordered[i])
	}
	assert.Equal(t, 0, ParseLiteral("0x10").Compare(ParseLiteral("16")))
	assert.Equal(t, 0, ParseLiteral("x").Compare(ParseLiteral("y")))
}

func TestIsUnsignedHex32(t *testing.T) {
	tests := map[string]bool{
		"0x80000000":  true,
		"0xFFFFFFFF":  true,
		"0XA0000000":  true,
		"0xf0000000":  true,
		"0x7FFFFFFF":  false,
		"0x8000000":   false,
		"0x800000000": false,
		"2147483648":  false,
		"0xG0000000":  false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsUnsignedHex32(in), in)
	}
}

func TestSmallestStorage(t *testing.T) {
	assert.Equal(t, "int32", smallestStorage([]string{"0", "-1", "0x7FFFFFFF"}))
	assert.Equal(t, "uint32", smallestStorage([]string{"0x1", "0xFFFFFFFF"}))
	assert.Equal(t, "uint64", smallestStorage([]string{"0x100000000"}))
	assert.Equal(t, "int64", smallestStorage([]string{"-1", "0x100000000"}))
	assert.Equal(t, "int32", smallestStorage([]string{"bogus"}))
}
