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

// Package native holds the register types that lane vectors compile down to.
//
// Each register is a named byte array of the register width: 128-bit
// registers are [16]byte and 64-bit registers are [8]byte. Reinterpreting a
// register as another register of the same width is therefore a plain Go
// conversion, e.g. Uint8x16(f) for a Float32x4 f.
//
// The operations mirror the AArch64 Advanced SIMD instructions: the estimate
// and step functions follow FRECPE/FRECPS and FRSQRTE/FRSQRTS, comparisons
// return all-ones lanes in a signed register of the same shape, and
// TableLookupBytes follows TBL, returning zero for out of range indices.
//
// The binding table (see [Lookup] and [Bindings]) records which register, or
// pair of registers, backs every element kind and lane count.
package native
