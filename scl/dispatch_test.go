package scl

import "testing"

func TestCurrentTarget(t *testing.T) {
	if CurrentName() == "" {
		t.Error("CurrentName: got empty string")
	}
	if w := CurrentWidth(); w < 16 {
		t.Errorf("CurrentWidth: got %d, want at least 16", w)
	}
}

func TestPreferredLanes(t *testing.T) {
	w := CurrentWidth()

	if got := PreferredLanes[float32](); got != w/4 {
		t.Errorf("PreferredLanes[float32]: got %d, want %d", got, w/4)
	}
	if got := PreferredLanes[float64](); got != w/8 {
		t.Errorf("PreferredLanes[float64]: got %d, want %d", got, w/8)
	}
	if got := PreferredLanes[int8](); got != w {
		t.Errorf("PreferredLanes[int8]: got %d, want %d", got, w)
	}

	// A full vector built at the preferred width must hold that many lanes.
	v := New[float32](PreferredLanes[float32]())
	if v.NumLanes() != w/4 {
		t.Errorf("NumLanes: got %d, want %d", v.NumLanes(), w/4)
	}
}
