package scl

import (
	"fmt"
	"math"
	"unsafe"
)

// This file provides lane-reordering operations: reverse, permute, shuffle,
// blend, halves, split/merge and sign manipulation. Index lists are checked
// against the source width and panic on violation.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// Broadcast replicates a single lane to all lanes of the vector.
// Panics if lane is out of range.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	n := len(v.data)
	checkLane("Broadcast", lane, n)
	result := make([]T, n)
	value := v.data[lane]
	for i := range result {
		result[i] = value
	}
	return Vec[T]{data: result}
}

// Lower returns a vector containing the first m lanes of v.
func Lower[T Lanes](v Vec[T], m int) Vec[T] {
	checkWidth("Lower", m)
	if m > len(v.data) {
		panic(fmt.Sprintf("scl: Lower: %d lanes requested from a %d-lane vector", m, len(v.data)))
	}
	result := make([]T, m)
	copy(result, v.data[:m])
	return Vec[T]{data: result}
}

// Upper returns a vector containing the last m lanes of v.
func Upper[T Lanes](v Vec[T], m int) Vec[T] {
	checkWidth("Upper", m)
	if m > len(v.data) {
		panic(fmt.Sprintf("scl: Upper: %d lanes requested from a %d-lane vector", m, len(v.data)))
	}
	result := make([]T, m)
	copy(result, v.data[len(v.data)-m:])
	return Vec[T]{data: result}
}

// Split divides a vector of even width into its first-half and second-half
// vectors. Panics if the width is odd.
func Split[T Lanes](v Vec[T]) (Vec[T], Vec[T]) {
	n := len(v.data)
	if n%2 != 0 {
		panic(fmt.Sprintf("scl: Split: width %d is not even", n))
	}
	return Lower(v, n/2), Upper(v, n/2)
}

// Merge concatenates two vectors of equal width into one double-width
// vector, a's lanes first.
func Merge[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Merge", len(a.data), len(b.data))
	result := make([]T, len(a.data)+len(b.data))
	copy(result, a.data)
	copy(result[len(a.data):], b.data)
	return Vec[T]{data: result}
}

// Cutoff returns a vector identical to v in the first n lanes and zero in
// the rest. Counts outside [0, width] are clamped.
func Cutoff[T Lanes](v Vec[T], n int) Vec[T] {
	if n < 0 {
		n = 0
	}
	if n > len(v.data) {
		n = len(v.data)
	}
	result := make([]T, len(v.data))
	copy(result, v.data[:n])
	return Vec[T]{data: result}
}

// Permute selects and reorders lanes from a single source vector. The
// result has one lane per index, so the width may differ from the source;
// at most NumLanes indices are accepted and each must address a source
// lane. Permute(v, 2, 0, 1) on {10, 20, 30} yields {30, 10, 20}.
func Permute[T Lanes](v Vec[T], indices ...int) Vec[T] {
	n := len(v.data)
	if len(indices) == 0 || len(indices) > n {
		panic(fmt.Sprintf("scl: Permute: want 1..%d indices, got %d", n, len(indices)))
	}
	result := make([]T, len(indices))
	for i, idx := range indices {
		checkLane("Permute", idx, n)
		result[i] = v.data[idx]
	}
	return Vec[T]{data: result}
}

// Shuffle selects lanes from two equal-width source vectors. Indices in
// [0, N) address a, indices in [N, 2N) address b offset by N; at most 2N
// indices are accepted.
func Shuffle[T Lanes](a, b Vec[T], indices ...int) Vec[T] {
	checkSameLanes("Shuffle", len(a.data), len(b.data))
	n := len(a.data)
	if len(indices) == 0 || len(indices) > 2*n {
		panic(fmt.Sprintf("scl: Shuffle: want 1..%d indices, got %d", 2*n, len(indices)))
	}
	result := make([]T, len(indices))
	for i, idx := range indices {
		checkLane("Shuffle", idx, 2*n)
		if idx < n {
			result[i] = a.data[idx]
		} else {
			result[i] = b.data[idx-n]
		}
	}
	return Vec[T]{data: result}
}

// Blend selects per lane from two equal-width vectors: lane i takes a's
// value when indices[i] addresses a (index below the width) and b's value
// otherwise. One index per lane is required. It is the constant-pattern
// form of IfThenElse.
func Blend[T Lanes](a, b Vec[T], indices ...int) Vec[T] {
	checkSameLanes("Blend", len(a.data), len(b.data))
	n := len(a.data)
	if len(indices) != n {
		panic(fmt.Sprintf("scl: Blend: want %d indices, got %d", n, len(indices)))
	}
	result := make([]T, n)
	for i, idx := range indices {
		checkLane("Blend", idx, 2*n)
		if idx < n {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// SignCombine copies each lane of a with its sign flipped wherever the
// corresponding lane of b is negative: the magnitude bits come from a, the
// sign bit is a's XOR b's.
func SignCombine[T Floats](a, b Vec[T]) Vec[T] {
	checkSameLanes("SignCombine", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = signCombine(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// signCombine XORs b's sign bit into a for a single element.
func signCombine[T Floats](a, b T) T {
	if unsafe.Sizeof(a) == 4 {
		bits := math.Float32bits(float32(a)) ^ (math.Float32bits(float32(b)) & (1 << 31))
		return T(math.Float32frombits(bits))
	}
	bits := math.Float64bits(float64(a)) ^ (math.Float64bits(float64(b)) & (1 << 63))
	return T(math.Float64frombits(bits))
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("InterleaveLower", len(a.data), len(b.data))
	n := len(a.data)
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("InterleaveUpper", len(a.data), len(b.data))
	n := len(a.data)
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}
