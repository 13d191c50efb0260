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
	"unsafe"

	"github.com/xyproto/env/v2"
)

// Every operation in this package is the same scalar loop at every width;
// the functions here only report the register width the hardware prefers so
// callers can pick vector sizes the optimizer maps onto full registers.

// currentWidth is the preferred register width in bytes.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the detected target.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentWidth returns the preferred register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// PreferredLanes returns the number of T lanes that fill one preferred
// register. With AVX2 (32 bytes): 8 for float32, 4 for float64.
func PreferredLanes[T Lanes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// setTarget records the detected target, honoring the environment
// overrides: SCL_FORCE_SCALAR discards the detection, SCL_VECTOR_WIDTH
// replaces the width with a byte count of the caller's choosing.
func setTarget(name string, width int) {
	if env.Bool("SCL_FORCE_SCALAR") {
		name, width = "scalar", 16
	}
	if w := env.Int("SCL_VECTOR_WIDTH", 0); w > 0 {
		width = w
	}
	currentName = name
	currentWidth = width
}
