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

import (
	"math"
	"unsafe"
)

// Float64x2 is a 128-bit register of 2 float64 lanes.
type Float64x2 [16]byte

// ===== Float64x2 constructors =====

// BroadcastFloat64x2 returns a register with every lane set to x.
func BroadcastFloat64x2(x float64) Float64x2 {
	return broadcast[Float64x2](x)
}

// ZeroFloat64x2 returns a register with every lane zero.
func ZeroFloat64x2() Float64x2 {
	return Float64x2{}
}

// LoadFloat64x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadFloat64x2(s []float64) Float64x2 {
	return load[Float64x2](s)
}

// LoadFloat64x2Unaligned copies the first 2 elements of s into a register.
func LoadFloat64x2Unaligned(s []float64) Float64x2 {
	return loadUnaligned[Float64x2](s)
}

// ===== Float64x2 accessors =====

// Get returns lane i.
func (v Float64x2) Get(i int) float64 {
	return view[float64](&v)[i]
}

// Set sets lane i to x.
func (v *Float64x2) Set(i int, x float64) {
	view[float64](v)[i] = x
}

// Array returns the lanes as an array.
func (v Float64x2) Array() [2]float64 {
	return *(*[2]float64)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Float64x2) StoreSlice(s []float64) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Float64x2) StoreSliceUnaligned(s []float64) {
	storeUnaligned[Float64x2, float64](v, s)
}

// ===== Float64x2 arithmetic =====

// Add performs element-wise addition.
func (v Float64x2) Add(o Float64x2) Float64x2 {
	return map2(v, o, add[float64])
}

// Sub performs element-wise subtraction.
func (v Float64x2) Sub(o Float64x2) Float64x2 {
	return map2(v, o, sub[float64])
}

// Mul performs element-wise multiplication.
func (v Float64x2) Mul(o Float64x2) Float64x2 {
	return map2(v, o, mul[float64])
}

// Min returns v where v < o and o otherwise.
func (v Float64x2) Min(o Float64x2) Float64x2 {
	return map2(v, o, minSelect[float64])
}

// Max returns v where v > o and o otherwise.
func (v Float64x2) Max(o Float64x2) Float64x2 {
	return map2(v, o, maxSelect[float64])
}

// Div performs element-wise division.
func (v Float64x2) Div(o Float64x2) Float64x2 {
	return map2(v, o, div[float64])
}

// Sqrt performs element-wise square root.
func (v Float64x2) Sqrt() Float64x2 {
	return map1(v, math.Sqrt)
}

// Abs clears the sign bit of every lane.
func (v Float64x2) Abs() Float64x2 {
	return map1(v, abs64)
}

// Neg flips the sign bit of every lane.
func (v Float64x2) Neg() Float64x2 {
	return map1(v, neg64)
}

// MulAdd computes v*a + b with a single rounding.
func (v Float64x2) MulAdd(a, b Float64x2) Float64x2 {
	return map3(v, a, b, mulAdd64)
}

// MulSub computes v*a - b with a single rounding.
func (v Float64x2) MulSub(a, b Float64x2) Float64x2 {
	return map3(v, a, b, mulSub64)
}

// NegMulAdd computes -(v*a) + b with a single rounding.
func (v Float64x2) NegMulAdd(a, b Float64x2) Float64x2 {
	return map3(v, a, b, negMulAdd64)
}

// NegMulSub computes -(v*a) - b with a single rounding.
func (v Float64x2) NegMulSub(a, b Float64x2) Float64x2 {
	return map3(v, a, b, negMulSub64)
}

// RoundToEven rounds to the nearest integer, ties to even.
func (v Float64x2) RoundToEven() Float64x2 {
	return map1(v, math.RoundToEven)
}

// Floor rounds toward negative infinity.
func (v Float64x2) Floor() Float64x2 {
	return map1(v, math.Floor)
}

// Ceil rounds toward positive infinity.
func (v Float64x2) Ceil() Float64x2 {
	return map1(v, math.Ceil)
}

// Trunc rounds toward zero.
func (v Float64x2) Trunc() Float64x2 {
	return map1(v, math.Trunc)
}

// RecipEstimate returns an estimate of 1/v with about 8 bits of precision.
func (v Float64x2) RecipEstimate() Float64x2 {
	return map1(v, recipEstimate64)
}

// RecipStep returns 2 - v*o computed with a single rounding, the
// Newton-Raphson correction for a reciprocal estimate o of v.
func (v Float64x2) RecipStep(o Float64x2) Float64x2 {
	return map2(v, o, recipStep64)
}

// RSqrtEstimate returns an estimate of 1/sqrt(v) with about 8 bits of precision.
func (v Float64x2) RSqrtEstimate() Float64x2 {
	return map1(v, rsqrtEstimate64)
}

// RSqrtStep returns (3 - v*o)/2 computed with a single rounding.
func (v Float64x2) RSqrtStep(o Float64x2) Float64x2 {
	return map2(v, o, rsqrtStep64)
}

// ===== Float64x2 bitwise =====

// And performs bitwise AND.
func (v Float64x2) And(o Float64x2) Float64x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Float64x2) Or(o Float64x2) Float64x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Float64x2) Xor(o Float64x2) Float64x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Float64x2) AndNot(o Float64x2) Float64x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Float64x2) Not() Float64x2 {
	return bitwise(v, v, not)
}

// ===== Float64x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Float64x2) Equal(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, eq[float64])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Float64x2) NotEqual(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, ne[float64])
}

// Less returns a mask of the lanes where v < o.
func (v Float64x2) Less(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, lt[float64])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Float64x2) LessEqual(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, le[float64])
}

// Greater returns a mask of the lanes where v > o.
func (v Float64x2) Greater(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, gt[float64])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Float64x2) GreaterEqual(o Float64x2) Int64x2 {
	return compare[Int64x2](v, o, ge[float64])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Float64x2) Merge(o Float64x2, mask Int64x2) Float64x2 {
	return merge(v, o, mask)
}

// ===== Float64x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Float64x2) ReduceSum() float64 {
	return reduce(v, add[float64])
}

// ReduceMin returns the minimum lane.
func (v Float64x2) ReduceMin() float64 {
	return reduce(v, minSelect[float64])
}

// ReduceMax returns the maximum lane.
func (v Float64x2) ReduceMax() float64 {
	return reduce(v, maxSelect[float64])
}

// ===== Float64x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Float64x2) DupLane(i int) Float64x2 {
	return dup[uint64](v, i)
}

// Reverse reverses the lane order.
func (v Float64x2) Reverse() Float64x2 {
	return reverse[uint64](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Float64x2) ZipLower(o Float64x2) Float64x2 {
	return zip[uint64](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Float64x2) ZipUpper(o Float64x2) Float64x2 {
	return zip[uint64](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Float64x2) UnzipEven(o Float64x2) Float64x2 {
	return unzip[uint64](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Float64x2) UnzipOdd(o Float64x2) Float64x2 {
	return unzip[uint64](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Float64x2) Ext(o Float64x2, n int) Float64x2 {
	return ext[uint64](v, o, n)
}

// ===== Float64x2 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Float64x2) ConvertToFloat32() Float32x2 {
	return convert[Float32x2](v, func(x float64) float32 { return float32(x) })
}

// ConvertToInt32 converts every lane to int32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float64x2) ConvertToInt32() Int32x2 {
	return convert[Int32x2](v, func(x float64) int32 { return roundInt32(x) })
}

// ConvertToUint32 converts every lane to uint32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float64x2) ConvertToUint32() Uint32x2 {
	return convert[Uint32x2](v, func(x float64) uint32 { return roundUint32(x) })
}

// ConvertToInt64 converts every lane to int64, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float64x2) ConvertToInt64() Int64x2 {
	return convert[Int64x2](v, func(x float64) int64 { return roundInt64(x) })
}

// ConvertToUint64 converts every lane to uint64, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float64x2) ConvertToUint64() Uint64x2 {
	return convert[Uint64x2](v, func(x float64) uint64 { return roundUint64(x) })
}
