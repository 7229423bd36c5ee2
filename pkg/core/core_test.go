package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("equal seeds must produce identical fills")
	}

	c := make([]uint8, 64)
	FillBinary(NewRNG(8).Source(), c)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different fills")
	}

	for i, v := range a {
		if v > 1 {
			t.Fatalf("fill value %d at index %d out of range", v, i)
		}
	}
}

func TestSizeArea(t *testing.T) {
	if got := (Size{W: 4, H: 3}).Area(); got != 12 {
		t.Fatalf("Area = %d, want 12", got)
	}
	if got := (Size{W: 0, H: 3}).Area(); got != 0 {
		t.Fatalf("Area of empty size = %d, want 0", got)
	}
	if got := (Size{W: 4, H: -1}).Area(); got != 0 {
		t.Fatalf("Area of negative size = %d, want 0", got)
	}
}
