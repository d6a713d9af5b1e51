package envutil

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	t.Setenv("SALES_TEST_STR", "  admin  ")
	if got := String("SALES_TEST_STR", "x"); got != "admin" {
		t.Fatalf("String: got=%q", got)
	}
	if got := String("SALES_TEST_UNSET", "x"); got != "x" {
		t.Fatalf("String default: got=%q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("SALES_TEST_INT", "42")
	if got := Int("SALES_TEST_INT", 1); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	t.Setenv("SALES_TEST_INT", "forty")
	if got := Int("SALES_TEST_INT", 1); got != 1 {
		t.Fatalf("Int fallback: got=%d", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"1": true, "TRUE": true, "on": true, "0": false, "off": false}
	for raw, want := range cases {
		t.Setenv("SALES_TEST_BOOL", raw)
		if got := Bool("SALES_TEST_BOOL", !want); got != want {
			t.Fatalf("Bool(%q): got=%v want=%v", raw, got, want)
		}
	}
	t.Setenv("SALES_TEST_BOOL", "maybe")
	if !Bool("SALES_TEST_BOOL", true) {
		t.Fatalf("Bool should fall back to default")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("SALES_TEST_DUR", "3s")
	if got := Duration("SALES_TEST_DUR", time.Second); got != 3*time.Second {
		t.Fatalf("Duration: got=%v", got)
	}
	t.Setenv("SALES_TEST_DUR", "250")
	if got := Duration("SALES_TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("Duration ms: got=%v", got)
	}
	t.Setenv("SALES_TEST_DUR", "soon")
	if got := Duration("SALES_TEST_DUR", time.Second); got != time.Second {
		t.Fatalf("Duration fallback: got=%v", got)
	}
}
