// Package version provides API version parsing and ordering for registry
// <feature> blocks.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// APIVersion represents a parsed "major.minor" API version such as the
// number attribute of a <feature> block ("4.6").
//
// The zero value means "no version given" and is treated as unbounded by
// command selection.
type APIVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (APIVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return APIVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return APIVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return APIVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return APIVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// ParseOptional parses s, returning the zero version for an empty string.
func ParseOptional(s string) (APIVersion, error) {
	if strings.TrimSpace(s) == "" {
		return APIVersion{}, nil
	}
	return Parse(strings.TrimSpace(s))
}

// String returns the version as "major.minor", or "" for the zero version.
func (v APIVersion) String() string {
	if v.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero reports whether v is the unset version.
func (v APIVersion) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Compare returns -1, 0 or +1 depending on whether v is lower than, equal to
// or higher than other.
func (v APIVersion) Compare(other APIVersion) int {
	switch {
	case v.Major < other.Major:
		return -1
	case v.Major > other.Major:
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders before other.
func (v APIVersion) Less(other APIVersion) bool {
	return v.Compare(other) < 0
}

// Includes reports whether a feature at version feature is in scope for a
// selection bounded by v. The zero v includes everything.
func (v APIVersion) Includes(feature APIVersion) bool {
	if v.IsZero() {
		return true
	}
	return feature.Compare(v) <= 0
}
