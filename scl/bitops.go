// Copyright 2025 go-scl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scl

import (
	"math/bits"
	"unsafe"
)

// This file provides bit manipulation for integer vectors. The Integers
// constraint rejects floating-point element types at compile time.

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	checkSameLanes("And", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	checkSameLanes("Or", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	checkSameLanes("Xor", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: result}
}

// AndNot computes a &^ b per lane (a AND the complement of b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	checkSameLanes("AndNot", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] &^ b.data[i]
	}
	return Vec[T]{data: result}
}

// Not inverts all bits of each lane.
func Not[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = ^v.data[i]
	}
	return Vec[T]{data: result}
}

// ShiftLeft shifts every lane left by the same count.
func ShiftLeft[T Integers](v Vec[T], count uint) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] << count
	}
	return Vec[T]{data: result}
}

// ShiftRight shifts every lane right by the same count. Signed element
// types shift arithmetically, unsigned logically, as in Go.
func ShiftRight[T Integers](v Vec[T], count uint) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] >> count
	}
	return Vec[T]{data: result}
}

// ShiftLeftVec shifts lane i of v left by lane i of counts.
// A negative count lane panics as ordinary Go shifts do.
func ShiftLeftVec[T Integers](v, counts Vec[T]) Vec[T] {
	checkSameLanes("ShiftLeftVec", len(v.data), len(counts.data))
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] << counts.data[i]
	}
	return Vec[T]{data: result}
}

// ShiftRightVec shifts lane i of v right by lane i of counts.
func ShiftRightVec[T Integers](v, counts Vec[T]) Vec[T] {
	checkSameLanes("ShiftRightVec", len(v.data), len(counts.data))
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] >> counts.data[i]
	}
	return Vec[T]{data: result}
}

// PopCount counts the number of set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = popCount(v.data[i])
	}
	return Vec[T]{data: result}
}

// widen reports the value's bits widened to uint64 (negative values
// masked to the element width, not sign-extended) and that width.
func widen[T Integers](val T) (uint64, uint) {
	width := 8 * uint(unsafe.Sizeof(val))
	return uint64(val) & (^uint64(0) >> (64 - width)), width
}

// popCount counts set bits for a single value.
func popCount[T Integers](val T) T {
	w, _ := widen(val)
	return T(bits.OnesCount64(w))
}

// LeadingZeroCount counts the number of leading zero bits in each lane.
func LeadingZeroCount[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = leadingZeroCount(v.data[i])
	}
	return Vec[T]{data: result}
}

// leadingZeroCount counts leading zeros for a single value.
func leadingZeroCount[T Integers](val T) T {
	w, width := widen(val)
	return T(uint(bits.LeadingZeros64(w)) - (64 - width))
}

// TrailingZeroCount counts the number of trailing zero bits in each lane.
func TrailingZeroCount[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = trailingZeroCount(v.data[i])
	}
	return Vec[T]{data: result}
}

// trailingZeroCount counts trailing zeros for a single value.
func trailingZeroCount[T Integers](val T) T {
	w, width := widen(val)
	if w == 0 {
		return T(width)
	}
	return T(bits.TrailingZeros64(w))
}
