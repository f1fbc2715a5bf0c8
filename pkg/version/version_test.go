package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"4.6", 4, 6},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	v, err := ParseOptional("  ")
	if err != nil {
		t.Fatalf("ParseOptional(blank) returned error: %v", err)
	}
	if !v.IsZero() {
		t.Errorf("ParseOptional(blank) = %v, want zero", v)
	}

	v, err = ParseOptional("3.3")
	if err != nil {
		t.Fatal(err)
	}
	if v != (APIVersion{Major: 3, Minor: 3}) {
		t.Errorf("ParseOptional(3.3) = %+v", v)
	}

	if _, err := ParseOptional("3"); err == nil {
		t.Error("ParseOptional(3) should return error")
	}
}

func TestAPIVersion_String(t *testing.T) {
	v, err := Parse("4.6")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "4.6" {
		t.Errorf("String() = %q, want %q", v.String(), "4.6")
	}

	if got := (APIVersion{}).String(); got != "" {
		t.Errorf("zero String() = %q, want empty", got)
	}
}

func TestAPIVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.5", "2.0", -1},
		{"3.2", "3.10", -1},
		{"4.6", "4.5", 1},
		{"10.0", "9.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, _ := Parse(tt.a)
			b, _ := Parse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := a.Less(b); got != (tt.want < 0) {
				t.Errorf("Less(%s, %s) = %v", tt.a, tt.b, got)
			}
		})
	}
}

func TestAPIVersion_Includes(t *testing.T) {
	bound, _ := Parse("3.3")
	v12, _ := Parse("1.2")
	v33, _ := Parse("3.3")
	v40, _ := Parse("4.0")

	if !bound.Includes(v12) {
		t.Error("3.3 should include 1.2")
	}
	if !bound.Includes(v33) {
		t.Error("3.3 should include 3.3")
	}
	if bound.Includes(v40) {
		t.Error("3.3 should not include 4.0")
	}
	if !(APIVersion{}).Includes(v40) {
		t.Error("zero bound should include everything")
	}
}
