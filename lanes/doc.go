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

// Package lanes provides fixed-width vectors of 2, 3 or 4 lanes of float32,
// float64, int32, uint32, int64 or uint64 that compile down to native
// 128-bit and 64-bit registers.
//
// Every (kind, lanes) pair is its own type, e.g. Float32x4 or Uint64x3, and
// the storage behind it is fixed by the binding table of package native:
//
//   - 2 lanes of 32 bits live in a 64-bit register.
//   - 4 lanes of 32 bits and 2 lanes of 64 bits live in a 128-bit register.
//   - 4 lanes of 64 bits live in a pair of 128-bit registers.
//   - 3 lanes live in the 4-lane vector of the same kind. The 4th lane is
//     zero when the vector is built and is never loaded, stored or reduced.
//
// Float vectors carry a precision parameter. Float32x4[Exact] divides and
// takes square roots with the exact instructions, while Float32x4[Approx]
// refines the hardware reciprocal estimates with Newton-Raphson steps:
//
//	v := lanes.LoadFloat32x4[lanes.Approx](xs)
//	n := v.Mul(v.RSqrt()) // about 22 correct bits per lane
//
// Lane permutations are named at compile time with type-level patterns:
//
//	r := lanes.Shuffle4[lanes.Perm4[lanes.L3, lanes.L2, lanes.L1, lanes.L0]](v)
//
// Patterns with a dedicated instruction (broadcast, reverse, interleave,
// rotate, ...) use it; any other pattern goes through a byte table lookup.
//
// Comparisons return masks with all bits of a lane set or clear, which
// select between vectors with [IfThenElse]. A mask converts to the other lane
// width with its BitCastTo constructor, so Float32x4 comparisons can select
// Float64x4 values.
package lanes

//go:generate go run ../cmd/lanesgen --output .
