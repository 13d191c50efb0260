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

// This file provides horizontal reductions and index sequences. Reductions
// fold lanes left to right starting from lane 0; a one-lane vector reduces
// to that lane unchanged.

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	sum := v.data[0]
	for i := 1; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceProduct multiplies all lanes.
func ReduceProduct[T Lanes](v Vec[T]) T {
	prod := v.data[0]
	for i := 1; i < len(v.data); i++ {
		prod *= v.data[i]
	}
	return prod
}

// ReduceMin returns the smallest lane value.
func ReduceMin[T Lanes](v Vec[T]) T {
	result := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] < result {
			result = v.data[i]
		}
	}
	return result
}

// ReduceMax returns the largest lane value.
func ReduceMax[T Lanes](v Vec[T]) T {
	result := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] > result {
			result = v.data[i]
		}
	}
	return result
}

// ReduceAverage returns the lane sum divided by the width, in T.
// Integer element types divide with truncation.
func ReduceAverage[T Lanes](v Vec[T]) T {
	return ReduceSum(v) / T(len(v.data))
}

// DotProduct returns the sum of the element-wise product of two vectors.
// Equivalent to ReduceSum(Mul(a, b)).
func DotProduct[T Lanes](a, b Vec[T]) T {
	checkSameLanes("DotProduct", len(a.data), len(b.data))
	sum := a.data[0] * b.data[0]
	for i := 1; i < len(a.data); i++ {
		sum += a.data[i] * b.data[i]
	}
	return sum
}

// Iota returns a vector whose lane i holds T(i).
func Iota[T Lanes](lanes int) Vec[T] {
	checkWidth("Iota", lanes)
	data := make([]T, lanes)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// IotaReversed returns a vector whose lane i holds T(lanes-1-i).
func IotaReversed[T Lanes](lanes int) Vec[T] {
	checkWidth("IotaReversed", lanes)
	data := make([]T, lanes)
	for i := range data {
		data[i] = T(lanes - 1 - i)
	}
	return Vec[T]{data: data}
}
