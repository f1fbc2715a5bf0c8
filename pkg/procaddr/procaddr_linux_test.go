package procaddr

import "testing"

func TestBindLibc(t *testing.T) {
	resolve, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("libc not loadable: %v", err)
	}

	var strlen func(s string) int
	if !Bind(&strlen, resolve, "strlen") {
		t.Fatal("strlen not resolved")
	}
	if got := strlen("glad"); got != 4 {
		t.Errorf("strlen(glad) = %d, want 4", got)
	}

	var missing func()
	if Bind(&missing, resolve, "glad_no_such_symbol") {
		t.Error("unknown symbol should not bind")
	}
}
