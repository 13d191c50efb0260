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

//go:build arm64

package scl

import "golang.org/x/sys/cpu"

func init() {
	// NEON (ASIMD) is mandatory on arm64: 128-bit registers. SVE would
	// allow wider hints but Go's autovectorizer does not target it.
	name := "neon"
	if !cpu.ARM64.HasASIMD {
		name = "scalar"
	}
	setTarget(name, 16)
}
