package scl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReverse(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5)
	got := Reverse(v).Data()

	if diff := cmp.Diff([]int32{5, 4, 3, 2, 1}, got); diff != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcast(t *testing.T) {
	v := Of[float32](1, 2, 3, 4)
	got := Broadcast(v, 2).Data()

	if diff := cmp.Diff([]float32{3, 3, 3, 3}, got); diff != "" {
		t.Errorf("Broadcast mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerUpper(t *testing.T) {
	v := Of[int16](10, 20, 30, 40, 50, 60)

	if diff := cmp.Diff([]int16{10, 20}, Lower(v, 2).Data()); diff != "" {
		t.Errorf("Lower mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int16{50, 60}, Upper(v, 2).Data()); diff != "" {
		t.Errorf("Upper mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	v := Of[uint32](1, 2, 3, 4, 5, 6, 7, 8)
	lo, hi := Split(v)

	if diff := cmp.Diff([]uint32{1, 2, 3, 4}, lo.Data()); diff != "" {
		t.Errorf("Split low mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint32{5, 6, 7, 8}, hi.Data()); diff != "" {
		t.Errorf("Split high mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v.Data(), Merge(lo, hi).Data()); diff != "" {
		t.Errorf("merge(split(v)) != v (-want +got):\n%s", diff)
	}
}

func TestSplitOddPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Split of odd width did not panic")
		}
	}()
	Split(Of[int32](1, 2, 3))
}

func TestCutoff(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5)

	if diff := cmp.Diff([]int32{1, 2, 0, 0, 0}, Cutoff(v, 2).Data()); diff != "" {
		t.Errorf("Cutoff mismatch (-want +got):\n%s", diff)
	}
	// Counts beyond the width clamp.
	if diff := cmp.Diff(v.Data(), Cutoff(v, 99).Data()); diff != "" {
		t.Errorf("Cutoff clamp mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{0, 0, 0, 0, 0}, Cutoff(v, -1).Data()); diff != "" {
		t.Errorf("Cutoff negative mismatch (-want +got):\n%s", diff)
	}
}

func TestPermute(t *testing.T) {
	v := Of[int32](10, 20, 30)
	got := Permute(v, 2, 0, 1).Data()

	if diff := cmp.Diff([]int32{30, 10, 20}, got); diff != "" {
		t.Errorf("Permute mismatch (-want +got):\n%s", diff)
	}

	// Narrowing permute.
	if diff := cmp.Diff([]int32{30}, Permute(v, 2).Data()); diff != "" {
		t.Errorf("Permute narrow mismatch (-want +got):\n%s", diff)
	}
}

func TestPermuteBadIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Permute with out-of-range index did not panic")
		}
	}()
	Permute(Of[int32](1, 2, 3), 3)
}

func TestPermuteTooManyIndicesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Permute with too many indices did not panic")
		}
	}()
	Permute(Of[int32](1, 2), 0, 1, 1)
}

func TestShuffle(t *testing.T) {
	a := Of[int32](1, 2, 3, 4)
	b := Of[int32](5, 6, 7, 8)

	got := Shuffle(a, b, 0, 4, 1, 5).Data()
	if diff := cmp.Diff([]int32{1, 5, 2, 6}, got); diff != "" {
		t.Errorf("Shuffle mismatch (-want +got):\n%s", diff)
	}

	// A widening shuffle may take up to 2N indices.
	wide := Shuffle(a, b, 7, 6, 5, 4, 3, 2, 1, 0).Data()
	if diff := cmp.Diff([]int32{8, 7, 6, 5, 4, 3, 2, 1}, wide); diff != "" {
		t.Errorf("Shuffle wide mismatch (-want +got):\n%s", diff)
	}
}

func TestBlend(t *testing.T) {
	a := Of[int32](1, 2, 3, 4)
	b := Of[int32](5, 6, 7, 8)

	// Indices below the width pick a's lane, others pick b's.
	got := Blend(a, b, 0, 5, 2, 7).Data()
	if diff := cmp.Diff([]int32{1, 6, 3, 8}, got); diff != "" {
		t.Errorf("Blend mismatch (-want +got):\n%s", diff)
	}
}

func TestSignCombine(t *testing.T) {
	a := Of[float64](2, -3, 4, -5)
	b := Of[float64](-1, -1, 1, 1)

	got := SignCombine(a, b).Data()
	if diff := cmp.Diff([]float64{-2, 3, 4, -5}, got); diff != "" {
		t.Errorf("SignCombine mismatch (-want +got):\n%s", diff)
	}
}

func TestInterleave(t *testing.T) {
	a := Of[int32](1, 2, 3, 4)
	b := Of[int32](5, 6, 7, 8)

	if diff := cmp.Diff([]int32{1, 5, 2, 6}, InterleaveLower(a, b).Data()); diff != "" {
		t.Errorf("InterleaveLower mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{3, 7, 4, 8}, InterleaveUpper(a, b).Data()); diff != "" {
		t.Errorf("InterleaveUpper mismatch (-want +got):\n%s", diff)
	}
}
