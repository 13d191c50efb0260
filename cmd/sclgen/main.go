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

// Command sclgen generates the width-named constructor catalogue
// (I8x16, F32x4, ...) for the scl package.
//
// Usage:
//
//	sclgen -output aliases.go
//
// Or via go:generate from the scl package directory:
//
//	//go:generate go run github.com/sforzinda/go-scl/cmd/sclgen -output aliases.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var output = flag.String("output", "aliases.go", "Output file path")

// family is one element type with the widths it is commonly used at.
type family struct {
	Prefix string // exported name prefix, e.g. "I8"
	GoType string // Go element type, e.g. "int8"
	Widths []int
}

// families lists every (element type, width) pair that gets a named
// constructor. Widths are the register-friendly byte multiples from 64 to
// 512 bits per vector.
var families = []family{
	{"I8", "int8", []int{8, 16, 32, 64}},
	{"I16", "int16", []int{2, 4, 8, 16, 32}},
	{"I32", "int32", []int{2, 4, 8, 16}},
	{"I64", "int64", []int{2, 4, 8}},
	{"U8", "uint8", []int{8, 16, 32, 64}},
	{"U16", "uint16", []int{2, 4, 8, 16, 32}},
	{"U32", "uint32", []int{2, 4, 8, 16}},
	{"U64", "uint64", []int{2, 4, 8}},
	{"F32", "float32", []int{2, 4, 8, 16}},
	{"F64", "float64", []int{2, 4, 8}},
}

const funcTemplate = `
// {{.Name}} returns a vector of {{.Width}} {{.GoType}} lanes: no arguments
// gives a zeroed vector, one argument broadcasts, and exactly {{.Width}}
// arguments fill the lanes in order.
func {{.Name}}(values ...{{.GoType}}) Vec[{{.GoType}}] {
	return sized[{{.GoType}}]("{{.Name}}", {{.Width}}, values)
}
`

type funcData struct {
	Name   string
	GoType string
	Width  int
}

func main() {
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sclgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "sclgen: %v\n", err)
		os.Exit(1)
	}
}

// generate renders the full catalogue and gofmt-formats it.
func generate() ([]byte, error) {
	tmpl, err := template.New("func").Parse(funcTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by sclgen; DO NOT EDIT.\n\n")
	buf.WriteString("package scl\n\n")
	buf.WriteString("// Width-named constructors for the common (element type, lane count)\n")
	buf.WriteString("// pairs. Each accepts no arguments (zeroed vector), one argument\n")
	buf.WriteString("// (broadcast into every lane) or exactly as many arguments as lanes.\n")

	for _, fam := range families {
		for _, w := range fam.Widths {
			data := funcData{
				Name:   fmt.Sprintf("%sx%d", fam.Prefix, w),
				GoType: fam.GoType,
				Width:  w,
			}
			if err := tmpl.Execute(&buf, data); err != nil {
				return nil, err
			}
		}
	}

	formatted, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
