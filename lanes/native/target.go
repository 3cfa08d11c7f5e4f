// Copyright 2025 go-highway Authors
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

package native

// ISA identifies the instruction set the register types are reported to
// compile to.
type ISA uint8

const (
	// ISAGeneric is the portable register model with no vector unit assumed.
	ISAGeneric ISA = iota

	// ISASSE4 indicates 128-bit x86-64 registers with SSE4.1.
	ISASSE4

	// ISANEON indicates 128-bit ARM Advanced SIMD registers.
	ISANEON
)

// String returns a human-readable name for the instruction set.
func (i ISA) String() string {
	switch i {
	case ISAGeneric:
		return "generic"
	case ISASSE4:
		return "sse4"
	case ISANEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentISA, hasFMA and features are set by init() in target_*.go files.
var (
	currentISA ISA
	hasFMA     bool
	features   []string
)

// CurrentISA returns the instruction set selected for this build.
func CurrentISA() ISA {
	return currentISA
}

// Target returns the name of the instruction set selected for this build:
// "neon", "sse4" or "generic".
func Target() string {
	return currentISA.String()
}

// HasFMA reports whether the CPU has fused multiply-add instructions.
func HasFMA() bool {
	return hasFMA
}

// Features returns the names of the CPU features relevant to the register
// types that were detected at startup.
func Features() []string {
	return append([]string(nil), features...)
}

type feature struct {
	name    string
	present bool
}

func detected(all ...feature) []string {
	var names []string
	for _, f := range all {
		if f.present {
			names = append(names, f.name)
		}
	}
	return names
}
