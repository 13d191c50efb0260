// Package scl provides fixed-width numeric vectors for auto-vectorizable
// element-wise arithmetic.
//
// A Vec holds a fixed number of lanes decided when the vector is built; the
// width never changes afterwards. All operations are plain scalar loops over
// contiguous storage, written so the Go compiler can turn them into hardware
// vector instructions. There is no per-architecture dispatch: the same code
// runs everywhere, and PreferredLanes only reports the width the hardware
// likes best.
//
// Basic usage:
//
//	a := scl.Of[float32](1, 2, 3, 4)
//	b := scl.Splat[float32](4, 10)
//
//	sum := scl.Add(a, b)          // {11, 12, 13, 14}
//	m := scl.Less(a, b)           // comparison mask
//	c := scl.IfThenElse(m, a, b)  // per-lane select
//
// Contract violations (lane index out of range, mismatched widths, bad
// permute indices) panic with an "scl:"-prefixed message. Operations never
// clamp or wrap silently.
package scl

import "fmt"

//go:generate go run github.com/sforzinda/go-scl/cmd/sclgen -output aliases.go

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a fixed-width vector of numeric lanes. The lane count is fixed at
// construction and carried by the value; copies are independent.
//
// Vec instances should not be created directly; use New, Splat, Of, Load,
// FromSlice or one of the width-named constructors instead.
type Vec[T Lanes] struct {
	// data holds the lanes in order. Its length is the vector width and
	// never changes for the lifetime of the value.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// At returns the value of lane i. Panics if i is out of range.
func (v Vec[T]) At(i int) T {
	checkLane("At", i, len(v.data))
	return v.data[i]
}

// SetAt overwrites lane i with value. Panics if i is out of range.
// The lanes are reallocated before the write, so other copies of the
// vector are unaffected.
func (v *Vec[T]) SetAt(i int, value T) {
	checkLane("SetAt", i, len(v.data))
	data := make([]T, len(v.data))
	copy(data, v.data)
	data[i] = value
	v.data = data
}

// Data returns the underlying slice representation of the vector. The
// slice aliases the vector's storage; writes through it are visible to
// the vector. This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
// This is the method form of the scl.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// Mask is the result of a lane-wise comparison. Lane i is true iff the
// comparison held for lane i of the operands. A mask as a whole is
// considered true when any lane is true (see AnyTrue).
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or Greater, or MaskFromBits, instead.
type Mask[T Lanes] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if every lane in the mask is active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
// This is the truth value of the mask as a whole.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// NoneTrue returns true if every lane in the mask is inactive.
func (m Mask[T]) NoneTrue() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// At returns whether lane i is active. Panics if i is out of range.
func (m Mask[T]) At(i int) bool {
	checkLane("Mask.At", i, len(m.bits))
	return m.bits[i]
}

// checkWidth panics unless lanes is a legal vector width.
func checkWidth(op string, lanes int) {
	if lanes <= 0 {
		panic(fmt.Sprintf("scl: %s: lane count must be positive, got %d", op, lanes))
	}
}

// checkLane panics unless 0 <= i < n.
func checkLane(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("scl: %s: lane index %d out of range [0,%d)", op, i, n))
	}
}

// checkSameLanes panics unless both operands have the same width.
func checkSameLanes(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("scl: %s: lane count mismatch (%d vs %d)", op, a, b))
	}
}
