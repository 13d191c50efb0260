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

// This file provides construction and element-wise arithmetic. Everything is
// a plain loop over the lanes so the compiler can auto-vectorize; operations
// with a vector right-hand side require equal widths, scalar forms broadcast
// the scalar against every lane.

// New creates a zeroed vector with the given number of lanes.
func New[T Lanes](lanes int) Vec[T] {
	checkWidth("New", lanes)
	return Vec[T]{data: make([]T, lanes)}
}

// Splat creates a vector with all lanes set to the same value.
func Splat[T Lanes](lanes int, value T) Vec[T] {
	checkWidth("Splat", lanes)
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Of creates a vector whose width is the number of arguments, one lane per
// argument in order. At least one value is required.
func Of[T Lanes](values ...T) Vec[T] {
	checkWidth("Of", len(values))
	data := make([]T, len(values))
	copy(data, values)
	return Vec[T]{data: data}
}

// FromSlice creates a vector of the given width, copying up to lanes values
// from src in order. When src is shorter than the width, the trailing lanes
// keep their default content.
func FromSlice[T Lanes](lanes int, src []T) Vec[T] {
	checkWidth("FromSlice", lanes)
	data := make([]T, lanes)
	copy(data, src)
	return Vec[T]{data: data}
}

// Load creates a vector of the given width from the first lanes elements of
// src. The caller guarantees len(src) >= lanes; no further checking is done.
func Load[T Lanes](src []T, lanes int) Vec[T] {
	checkWidth("Load", lanes)
	data := make([]T, lanes)
	copy(data, src[:lanes])
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to dst in order.
// The caller guarantees len(dst) >= v.NumLanes().
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// StoreReverse writes lane i of v into dst position NumLanes-1-i.
// The caller guarantees len(dst) >= v.NumLanes().
func StoreReverse[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	for i := 0; i < n; i++ {
		dst[n-1-i] = v.data[i]
	}
}

// sized backs the width-named constructors: no values gives a zeroed
// vector, one value broadcasts, exactly lanes values fill in order.
func sized[T Lanes](name string, lanes int, values []T) Vec[T] {
	switch len(values) {
	case 0:
		return New[T](lanes)
	case 1:
		return Splat(lanes, values[0])
	case lanes:
		return Of(values...)
	default:
		panic(fmt.Sprintf("scl: %s: want 0, 1 or %d values, got %d", name, lanes, len(values)))
	}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Add", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// AddScalar adds s to every lane.
func AddScalar[T Lanes](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] + s
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Sub", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// SubScalar subtracts s from every lane.
func SubScalar[T Lanes](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] - s
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Mul", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// MulScalar multiplies every lane by s.
func MulScalar[T Lanes](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] * s
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division. Integer division by a zero lane
// panics as ordinary Go integer division does; floating-point division by
// zero yields ±Inf or NaN per IEEE-754, untouched.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Div", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// DivScalar divides every lane by s.
func DivScalar[T Lanes](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] / s
	}
	return Vec[T]{data: result}
}

// Mod performs element-wise remainder. Defined for integer lanes only; a
// zero lane in b panics as ordinary Go % does. For the floating-point
// remainder see Remainder.
func Mod[T Integers](a, b Vec[T]) Vec[T] {
	checkSameLanes("Mod", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		result[i] = a.data[i] % b.data[i]
	}
	return Vec[T]{data: result}
}

// ModScalar computes every lane modulo s.
func ModScalar[T Integers](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i] % s
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = -v.data[i]
	}
	return Vec[T]{data: result}
}

// Abs computes the absolute value of each lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		val := v.data[i]
		if val < 0 {
			result[i] = -val
		} else {
			result[i] = val
		}
	}
	return Vec[T]{data: result}
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Min", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameLanes("Max", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i := range result {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Clamp limits each lane of v to the range [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	checkSameLanes("Clamp", len(v.data), len(lo.data))
	checkSameLanes("Clamp", len(v.data), len(hi.data))
	result := make([]T, len(v.data))
	for i := range result {
		val := v.data[i]
		if val < lo.data[i] {
			val = lo.data[i]
		}
		if val > hi.data[i] {
			val = hi.data[i]
		}
		result[i] = val
	}
	return Vec[T]{data: result}
}

// Swap exchanges the contents of two vectors of equal width.
func Swap[T Lanes](a, b *Vec[T]) {
	checkSameLanes("Swap", len(a.data), len(b.data))
	a.data, b.data = b.data, a.data
}
