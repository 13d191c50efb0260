package scl

// This file provides lane-wise comparisons. Each comparison evaluates every
// lane independently (no early exit) and produces a Mask of the same width.
// Scalar forms broadcast the scalar against every lane; a scalar on the left
// is the mirrored comparison with swapped arguments.

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("Equal", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("NotEqual", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less performs element-wise less-than comparison.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("Less", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs element-wise less-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("LessEqual", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater performs element-wise greater-than comparison.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("Greater", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs element-wise greater-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkSameLanes("GreaterEqual", len(a.data), len(b.data))
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// EqualScalar compares every lane against s for equality.
func EqualScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] == s
	}
	return Mask[T]{bits: bits}
}

// NotEqualScalar compares every lane against s for inequality.
func NotEqualScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] != s
	}
	return Mask[T]{bits: bits}
}

// LessScalar reports, per lane, whether the lane is less than s.
func LessScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] < s
	}
	return Mask[T]{bits: bits}
}

// LessEqualScalar reports, per lane, whether the lane is at most s.
func LessEqualScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] <= s
	}
	return Mask[T]{bits: bits}
}

// GreaterScalar reports, per lane, whether the lane is greater than s.
func GreaterScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] > s
	}
	return Mask[T]{bits: bits}
}

// GreaterEqualScalar reports, per lane, whether the lane is at least s.
func GreaterEqualScalar[T Lanes](v Vec[T], s T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i := range bits {
		bits[i] = v.data[i] >= s
	}
	return Mask[T]{bits: bits}
}
