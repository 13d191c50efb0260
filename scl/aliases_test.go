package scl

import "testing"

func TestNamedConstructors(t *testing.T) {
	zero := F32x4()
	if zero.NumLanes() != 4 {
		t.Fatalf("F32x4(): got %d lanes, want 4", zero.NumLanes())
	}
	for i := 0; i < 4; i++ {
		if zero.At(i) != 0 {
			t.Errorf("F32x4(): lane %d: got %v, want 0", i, zero.At(i))
		}
	}

	splat := I16x8(7)
	for i := 0; i < 8; i++ {
		if splat.At(i) != 7 {
			t.Errorf("I16x8(7): lane %d: got %v, want 7", i, splat.At(i))
		}
	}

	full := U64x2(3, 9)
	if full.At(0) != 3 || full.At(1) != 9 {
		t.Errorf("U64x2(3, 9): got %v", full)
	}
}

func TestNamedConstructorBadArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("F32x4 with 2 values did not panic")
		}
	}()
	F32x4(1, 2)
}
