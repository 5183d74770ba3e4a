package util

import "testing"

func TestPtrDeref(t *testing.T) {
	p := Ptr("warm")
	if Deref(p) != "warm" {
		t.Fatalf("Deref(Ptr) = %q", Deref(p))
	}
	var nilStr *string
	if Deref(nilStr) != "" {
		t.Fatalf("expected zero value for nil pointer")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 5); got != 0 {
		t.Fatalf("Clamp(-1) = %d", got)
	}
	if got := Clamp(9, 0, 5); got != 5 {
		t.Fatalf("Clamp(9) = %d", got)
	}
	if got := Clamp(3, 0, 5); got != 3 {
		t.Fatalf("Clamp(3) = %d", got)
	}
}

func TestClampInvertedRange(t *testing.T) {
	if got := Clamp(4, 0, -1); got != 0 {
		t.Fatalf("Clamp with empty range = %d, want lower bound", got)
	}
}
