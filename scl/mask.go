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

import "fmt"

// This file provides mask construction, mask logic and mask-driven selection.

// IfThenElse selects, per lane, a's value where the mask lane is true and
// b's value where it is false.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	checkSameLanes("IfThenElse", len(mask.bits), len(a.data))
	checkSameLanes("IfThenElse", len(mask.bits), len(b.data))
	result := make([]T, len(mask.bits))
	for i := range result {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Bits packs the mask into an integer, lane i contributing bit i.
// Panics for masks wider than 64 lanes.
func (m Mask[T]) Bits() uint64 {
	if len(m.bits) > 64 {
		panic(fmt.Sprintf("scl: Mask.Bits: %d lanes do not fit in a uint64", len(m.bits)))
	}
	var out uint64
	for i, bit := range m.bits {
		if bit {
			out |= 1 << uint(i)
		}
	}
	return out
}

// MaskFromBits unpacks bit i of bits into lane i of a mask with the given
// width. This is the inverse of Mask.Bits and shares its 64-lane domain:
// with a wider mask, lanes beyond 63 are false.
func MaskFromBits[T Lanes](lanes int, bits uint64) Mask[T] {
	checkWidth("MaskFromBits", lanes)
	out := make([]bool, lanes)
	for i := range out {
		out[i] = bits&(1<<uint(i)) != 0
	}
	return Mask[T]{bits: out}
}

// MaskAnd returns the lane-wise logical AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	checkSameLanes("MaskAnd", len(a.bits), len(b.bits))
	bits := make([]bool, len(a.bits))
	for i := range bits {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr returns the lane-wise logical OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	checkSameLanes("MaskOr", len(a.bits), len(b.bits))
	bits := make([]bool, len(a.bits))
	for i := range bits {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor returns the lane-wise logical XOR of two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	checkSameLanes("MaskXor", len(a.bits), len(b.bits))
	bits := make([]bool, len(a.bits))
	for i := range bits {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot returns the lane-wise logical negation of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i := range bits {
		bits[i] = !m.bits[i]
	}
	return Mask[T]{bits: bits}
}

// FirstN creates a mask of the given width with the first count lanes
// active. Useful for handling the tail of an array whose size is not a
// multiple of the vector width. Counts outside [0, lanes] are clamped.
func FirstN[T Lanes](lanes, count int) Mask[T] {
	checkWidth("FirstN", lanes)
	if count < 0 {
		count = 0
	}
	if count > lanes {
		count = lanes
	}
	bits := make([]bool, lanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
