package resolve

import (
	"math"
	"strconv"
	"strings"
)

// Literal is the numeric value of a registry constant.
type Literal struct {
	Neg       bool
	Magnitude uint64
	OK        bool // false when the text is not an integer literal
}

// ParseLiteral parses a registry value ("0x8E13", "1", "-1",
// "0xFFFFFFFFFFFFFFFF"). Decimal, hex and octal spellings are accepted.
func ParseLiteral(s string) Literal {
	s = strings.TrimSpace(s)
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return Literal{Magnitude: u, OK: true}
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		if i >= 0 {
			return Literal{Magnitude: uint64(i), OK: true}
		}
		return Literal{Neg: true, Magnitude: uint64(-(i + 1)) + 1, OK: true}
	}
	return Literal{}
}

// Compare orders literals numerically. Unparseable literals sort after
// every number and compare equal to each other.
func (a Literal) Compare(b Literal) int {
	switch {
	case !a.OK && !b.OK:
		return 0
	case !a.OK:
		return 1
	case !b.OK:
		return -1
	case a.Neg != b.Neg:
		if a.Neg {
			return -1
		}
		return 1
	}

	c := 0
	switch {
	case a.Magnitude < b.Magnitude:
		c = -1
	case a.Magnitude > b.Magnitude:
		c = 1
	}
	if a.Neg {
		return -c
	}
	return c
}

// FitsInt32 reports whether the literal is representable as int32.
func (a Literal) FitsInt32() bool {
	if !a.OK {
		return true
	}
	if a.Neg {
		return a.Magnitude <= -math.MinInt32
	}
	return a.Magnitude <= math.MaxInt32
}

// IsUnsignedHex32 reports whether s is written as "0x" followed by exactly
// eight hex digits with a leading digit of 8 or above, the range
// 0x80000000-0xFFFFFFFF that does not fit a signed 32-bit integer.
func IsUnsignedHex32(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 10 || (s[:2] != "0x" && s[:2] != "0X") {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return s[2] >= '8' && s[2] <= '9' || lower(s[2]) >= 'a' && lower(s[2]) <= 'f'
}

// smallestStorage returns the narrowest of int32, uint32, uint64 and int64
// holding every literal in values.
func smallestStorage(values []string) string {
	fitsInt32, fitsUint32, anyNeg := true, true, false
	for _, v := range values {
		lit := ParseLiteral(v)
		if !lit.OK {
			continue
		}
		if lit.Neg {
			anyNeg = true
		}
		if !lit.FitsInt32() {
			fitsInt32 = false
		}
		if lit.Neg || lit.Magnitude > math.MaxUint32 {
			fitsUint32 = false
		}
	}
	switch {
	case fitsInt32:
		return "int32"
	case fitsUint32:
		return "uint32"
	case !anyNeg:
		return "uint64"
	default:
		return "int64"
	}
}

// storageWidth returns the size in bits of a storage type.
func storageWidth(goType string) int {
	switch goType {
	case "int8", "uint8", "byte":
		return 8
	case "int16", "uint16":
		return 16
	case "int32", "uint32", "float32", "rune":
		return 32
	default:
		return 64
	}
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= lower(c) && lower(c) <= 'f'
}

func lower(c byte) byte {
	return c | 0x20
}
