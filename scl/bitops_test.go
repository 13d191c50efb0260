package scl

import "testing"

func TestBitwiseOps(t *testing.T) {
	a := Of[uint8](0b1100, 0b1010)
	b := Of[uint8](0b1010, 0b0110)

	checks := []struct {
		name string
		got  Vec[uint8]
		want []uint8
	}{
		{"And", And(a, b), []uint8{0b1000, 0b0010}},
		{"Or", Or(a, b), []uint8{0b1110, 0b1110}},
		{"Xor", Xor(a, b), []uint8{0b0110, 0b1100}},
		{"AndNot", AndNot(a, b), []uint8{0b0100, 0b1000}},
	}
	for _, c := range checks {
		for i, w := range c.want {
			if c.got.At(i) != w {
				t.Errorf("%s: lane %d: got %#b, want %#b", c.name, i, c.got.At(i), w)
			}
		}
	}

	inv := Not(Of[uint8](0x0f))
	if inv.At(0) != 0xf0 {
		t.Errorf("Not: got %#x, want 0xf0", inv.At(0))
	}
}

func TestShifts(t *testing.T) {
	v := Of[int32](1, -8, 16)

	left := ShiftLeft(v, 2)
	wantLeft := []int32{4, -32, 64}
	for i, w := range wantLeft {
		if left.At(i) != w {
			t.Errorf("ShiftLeft: lane %d: got %v, want %v", i, left.At(i), w)
		}
	}

	// Arithmetic shift for signed types.
	right := ShiftRight(v, 1)
	wantRight := []int32{0, -4, 8}
	for i, w := range wantRight {
		if right.At(i) != w {
			t.Errorf("ShiftRight: lane %d: got %v, want %v", i, right.At(i), w)
		}
	}

	// Logical shift for unsigned types.
	u := ShiftRight(Of[uint8](0x80), 1)
	if u.At(0) != 0x40 {
		t.Errorf("ShiftRight unsigned: got %#x, want 0x40", u.At(0))
	}
}

func TestVariableShifts(t *testing.T) {
	v := Splat[uint32](4, 1)
	counts := Of[uint32](0, 1, 2, 3)

	left := ShiftLeftVec(v, counts)
	wantLeft := []uint32{1, 2, 4, 8}
	for i, w := range wantLeft {
		if left.At(i) != w {
			t.Errorf("ShiftLeftVec: lane %d: got %v, want %v", i, left.At(i), w)
		}
	}

	right := ShiftRightVec(Splat[uint32](4, 8), counts)
	wantRight := []uint32{8, 4, 2, 1}
	for i, w := range wantRight {
		if right.At(i) != w {
			t.Errorf("ShiftRightVec: lane %d: got %v, want %v", i, right.At(i), w)
		}
	}
}

func TestBitCounts(t *testing.T) {
	v := Of[uint16](0, 1, 0b0110, 0xffff)

	pop := PopCount(v)
	wantPop := []uint16{0, 1, 2, 16}
	for i, w := range wantPop {
		if pop.At(i) != w {
			t.Errorf("PopCount: lane %d: got %v, want %v", i, pop.At(i), w)
		}
	}

	lzc := LeadingZeroCount(v)
	wantLzc := []uint16{16, 15, 13, 0}
	for i, w := range wantLzc {
		if lzc.At(i) != w {
			t.Errorf("LeadingZeroCount: lane %d: got %v, want %v", i, lzc.At(i), w)
		}
	}

	tzc := TrailingZeroCount(v)
	wantTzc := []uint16{16, 0, 1, 0}
	for i, w := range wantTzc {
		if tzc.At(i) != w {
			t.Errorf("TrailingZeroCount: lane %d: got %v, want %v", i, tzc.At(i), w)
		}
	}
}

type laneID uint16

func TestBitCountsDefinedElementType(t *testing.T) {
	v := Of[laneID](0b0110, 1, 0)

	pop := PopCount(v)
	wantPop := []laneID{2, 1, 0}
	for i, w := range wantPop {
		if pop.At(i) != w {
			t.Errorf("PopCount: lane %d: got %v, want %v", i, pop.At(i), w)
		}
	}

	lzc := LeadingZeroCount(v)
	wantLzc := []laneID{13, 15, 16}
	for i, w := range wantLzc {
		if lzc.At(i) != w {
			t.Errorf("LeadingZeroCount: lane %d: got %v, want %v", i, lzc.At(i), w)
		}
	}

	tzc := TrailingZeroCount(v)
	wantTzc := []laneID{1, 0, 16}
	for i, w := range wantTzc {
		if tzc.At(i) != w {
			t.Errorf("TrailingZeroCount: lane %d: got %v, want %v", i, tzc.At(i), w)
		}
	}
}

func TestBitCountsNegativeSigned(t *testing.T) {
	v := Of[int8](-1, -128)

	pop := PopCount(v)
	wantPop := []int8{8, 1}
	for i, w := range wantPop {
		if pop.At(i) != w {
			t.Errorf("PopCount: lane %d: got %v, want %v", i, pop.At(i), w)
		}
	}

	lzc := LeadingZeroCount(v)
	wantLzc := []int8{0, 0}
	for i, w := range wantLzc {
		if lzc.At(i) != w {
			t.Errorf("LeadingZeroCount: lane %d: got %v, want %v", i, lzc.At(i), w)
		}
	}

	tzc := TrailingZeroCount(v)
	wantTzc := []int8{0, 7}
	for i, w := range wantTzc {
		if tzc.At(i) != w {
			t.Errorf("TrailingZeroCount: lane %d: got %v, want %v", i, tzc.At(i), w)
		}
	}
}
