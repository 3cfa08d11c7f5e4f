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

import "unsafe"

// Float32x4 is a 128-bit register of 4 float32 lanes.
type Float32x4 [16]byte

// Float32x2 is a 64-bit register of 2 float32 lanes.
type Float32x2 [8]byte

// ===== Float32x4 constructors =====

// BroadcastFloat32x4 returns a register with every lane set to x.
func BroadcastFloat32x4(x float32) Float32x4 {
	return broadcast[Float32x4](x)
}

// ZeroFloat32x4 returns a register with every lane zero.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// LoadFloat32x4 reads 4 lanes from s with a single register-width load.
// s must hold at least 4 elements; the length is not checked.
func LoadFloat32x4(s []float32) Float32x4 {
	return load[Float32x4](s)
}

// LoadFloat32x4Unaligned copies the first 4 elements of s into a register.
func LoadFloat32x4Unaligned(s []float32) Float32x4 {
	return loadUnaligned[Float32x4](s)
}

// CombineFloat32x4 joins two halves: lo fills lanes 0-1 and hi lanes 2-3.
func CombineFloat32x4(lo, hi Float32x2) Float32x4 {
	return combine[Float32x4](lo, hi)
}

// ===== Float32x4 accessors =====

// Get returns lane i.
func (v Float32x4) Get(i int) float32 {
	return view[float32](&v)[i]
}

// Set sets lane i to x.
func (v *Float32x4) Set(i int, x float32) {
	view[float32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Float32x4) Array() [4]float32 {
	return *(*[4]float32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 4 elements; the length is not checked.
func (v Float32x4) StoreSlice(s []float32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 4 lanes into s.
func (v Float32x4) StoreSliceUnaligned(s []float32) {
	storeUnaligned[Float32x4, float32](v, s)
}

// Low returns lanes 0-1.
func (v Float32x4) Low() Float32x2 {
	return Float32x2(v[:8])
}

// High returns lanes 2-3.
func (v Float32x4) High() Float32x2 {
	return Float32x2(v[8:])
}

// ===== Float32x4 arithmetic =====

// Add performs element-wise addition.
func (v Float32x4) Add(o Float32x4) Float32x4 {
	return map2(v, o, add[float32])
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(o Float32x4) Float32x4 {
	return map2(v, o, sub[float32])
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	return map2(v, o, mul[float32])
}

// Min returns v where v < o and o otherwise.
func (v Float32x4) Min(o Float32x4) Float32x4 {
	return map2(v, o, minSelect[float32])
}

// Max returns v where v > o and o otherwise.
func (v Float32x4) Max(o Float32x4) Float32x4 {
	return map2(v, o, maxSelect[float32])
}

// Div performs element-wise division.
func (v Float32x4) Div(o Float32x4) Float32x4 {
	return map2(v, o, div[float32])
}

// Sqrt performs element-wise square root.
func (v Float32x4) Sqrt() Float32x4 {
	return map1(v, sqrt32)
}

// Abs clears the sign bit of every lane.
func (v Float32x4) Abs() Float32x4 {
	return map1(v, abs32)
}

// Neg flips the sign bit of every lane.
func (v Float32x4) Neg() Float32x4 {
	return map1(v, neg32)
}

// MulAdd computes v*a + b with a single rounding.
func (v Float32x4) MulAdd(a, b Float32x4) Float32x4 {
	return map3(v, a, b, mulAdd32)
}

// MulSub computes v*a - b with a single rounding.
func (v Float32x4) MulSub(a, b Float32x4) Float32x4 {
	return map3(v, a, b, mulSub32)
}

// NegMulAdd computes -(v*a) + b with a single rounding.
func (v Float32x4) NegMulAdd(a, b Float32x4) Float32x4 {
	return map3(v, a, b, negMulAdd32)
}

// NegMulSub computes -(v*a) - b with a single rounding.
func (v Float32x4) NegMulSub(a, b Float32x4) Float32x4 {
	return map3(v, a, b, negMulSub32)
}

// RoundToEven rounds to the nearest integer, ties to even.
func (v Float32x4) RoundToEven() Float32x4 {
	return map1(v, roundToEven32)
}

// Floor rounds toward negative infinity.
func (v Float32x4) Floor() Float32x4 {
	return map1(v, floor32)
}

// Ceil rounds toward positive infinity.
func (v Float32x4) Ceil() Float32x4 {
	return map1(v, ceil32)
}

// Trunc rounds toward zero.
func (v Float32x4) Trunc() Float32x4 {
	return map1(v, trunc32)
}

// RecipEstimate returns an estimate of 1/v with about 8 bits of precision.
func (v Float32x4) RecipEstimate() Float32x4 {
	return map1(v, recipEstimate32)
}

// RecipStep returns 2 - v*o computed with a single rounding, the
// Newton-Raphson correction for a reciprocal estimate o of v.
func (v Float32x4) RecipStep(o Float32x4) Float32x4 {
	return map2(v, o, recipStep32)
}

// RSqrtEstimate returns an estimate of 1/sqrt(v) with about 8 bits of precision.
func (v Float32x4) RSqrtEstimate() Float32x4 {
	return map1(v, rsqrtEstimate32)
}

// RSqrtStep returns (3 - v*o)/2 computed with a single rounding.
func (v Float32x4) RSqrtStep(o Float32x4) Float32x4 {
	return map2(v, o, rsqrtStep32)
}

// ===== Float32x4 bitwise =====

// And performs bitwise AND.
func (v Float32x4) And(o Float32x4) Float32x4 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Float32x4) Or(o Float32x4) Float32x4 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Float32x4) Xor(o Float32x4) Float32x4 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Float32x4) AndNot(o Float32x4) Float32x4 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Float32x4) Not() Float32x4 {
	return bitwise(v, v, not)
}

// ===== Float32x4 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Float32x4) Equal(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, eq[float32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Float32x4) NotEqual(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, ne[float32])
}

// Less returns a mask of the lanes where v < o.
func (v Float32x4) Less(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, lt[float32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Float32x4) LessEqual(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, le[float32])
}

// Greater returns a mask of the lanes where v > o.
func (v Float32x4) Greater(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, gt[float32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Float32x4) GreaterEqual(o Float32x4) Int32x4 {
	return compare[Int32x4](v, o, ge[float32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Float32x4) Merge(o Float32x4, mask Int32x4) Float32x4 {
	return merge(v, o, mask)
}

// ===== Float32x4 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Float32x4) ReduceSum() float32 {
	return reduce(v, add[float32])
}

// ReduceMin returns the minimum lane.
func (v Float32x4) ReduceMin() float32 {
	return reduce(v, minSelect[float32])
}

// ReduceMax returns the maximum lane.
func (v Float32x4) ReduceMax() float32 {
	return reduce(v, maxSelect[float32])
}

// ===== Float32x4 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Float32x4) DupLane(i int) Float32x4 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Float32x4) Reverse() Float32x4 {
	return reverse[uint32](v)
}

// ReversePairs swaps lanes 0,1 and lanes 2,3.
func (v Float32x4) ReversePairs() Float32x4 {
	return reversePairs[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Float32x4) ZipLower(o Float32x4) Float32x4 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Float32x4) ZipUpper(o Float32x4) Float32x4 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Float32x4) UnzipEven(o Float32x4) Float32x4 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Float32x4) UnzipOdd(o Float32x4) Float32x4 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+3 of the concatenation v:o.
func (v Float32x4) Ext(o Float32x4, n int) Float32x4 {
	return ext[uint32](v, o, n)
}

// ===== Float32x4 conversions =====

// ConvertToInt32 converts every lane to int32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x4) ConvertToInt32() Int32x4 {
	return convert[Int32x4](v, func(x float32) int32 { return roundInt32(float64(x)) })
}

// ConvertToUint32 converts every lane to uint32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x4) ConvertToUint32() Uint32x4 {
	return convert[Uint32x4](v, func(x float32) uint32 { return roundUint32(float64(x)) })
}

// ===== Float32x2 constructors =====

// BroadcastFloat32x2 returns a register with every lane set to x.
func BroadcastFloat32x2(x float32) Float32x2 {
	return broadcast[Float32x2](x)
}

// ZeroFloat32x2 returns a register with every lane zero.
func ZeroFloat32x2() Float32x2 {
	return Float32x2{}
}

// LoadFloat32x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadFloat32x2(s []float32) Float32x2 {
	return load[Float32x2](s)
}

// LoadFloat32x2Unaligned copies the first 2 elements of s into a register.
func LoadFloat32x2Unaligned(s []float32) Float32x2 {
	return loadUnaligned[Float32x2](s)
}

// ===== Float32x2 accessors =====

// Get returns lane i.
func (v Float32x2) Get(i int) float32 {
	return view[float32](&v)[i]
}

// Set sets lane i to x.
func (v *Float32x2) Set(i int, x float32) {
	view[float32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Float32x2) Array() [2]float32 {
	return *(*[2]float32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Float32x2) StoreSlice(s []float32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Float32x2) StoreSliceUnaligned(s []float32) {
	storeUnaligned[Float32x2, float32](v, s)
}

// ===== Float32x2 arithmetic =====

// Add performs element-wise addition.
func (v Float32x2) Add(o Float32x2) Float32x2 {
	return map2(v, o, add[float32])
}

// Sub performs element-wise subtraction.
func (v Float32x2) Sub(o Float32x2) Float32x2 {
	return map2(v, o, sub[float32])
}

// Mul performs element-wise multiplication.
func (v Float32x2) Mul(o Float32x2) Float32x2 {
	return map2(v, o, mul[float32])
}

// Min returns v where v < o and o otherwise.
func (v Float32x2) Min(o Float32x2) Float32x2 {
	return map2(v, o, minSelect[float32])
}

// Max returns v where v > o and o otherwise.
func (v Float32x2) Max(o Float32x2) Float32x2 {
	return map2(v, o, maxSelect[float32])
}

// Div performs element-wise division.
func (v Float32x2) Div(o Float32x2) Float32x2 {
	return map2(v, o, div[float32])
}

// Sqrt performs element-wise square root.
func (v Float32x2) Sqrt() Float32x2 {
	return map1(v, sqrt32)
}

// Abs clears the sign bit of every lane.
func (v Float32x2) Abs() Float32x2 {
	return map1(v, abs32)
}

// Neg flips the sign bit of every lane.
func (v Float32x2) Neg() Float32x2 {
	return map1(v, neg32)
}

// MulAdd computes v*a + b with a single rounding.
func (v Float32x2) MulAdd(a, b Float32x2) Float32x2 {
	return map3(v, a, b, mulAdd32)
}

// MulSub computes v*a - b with a single rounding.
func (v Float32x2) MulSub(a, b Float32x2) Float32x2 {
	return map3(v, a, b, mulSub32)
}

// NegMulAdd computes -(v*a) + b with a single rounding.
func (v Float32x2) NegMulAdd(a, b Float32x2) Float32x2 {
	return map3(v, a, b, negMulAdd32)
}

// NegMulSub computes -(v*a) - b with a single rounding.
func (v Float32x2) NegMulSub(a, b Float32x2) Float32x2 {
	return map3(v, a, b, negMulSub32)
}

// RoundToEven rounds to the nearest integer, ties to even.
func (v Float32x2) RoundToEven() Float32x2 {
	return map1(v, roundToEven32)
}

// Floor rounds toward negative infinity.
func (v Float32x2) Floor() Float32x2 {
	return map1(v, floor32)
}

// Ceil rounds toward positive infinity.
func (v Float32x2) Ceil() Float32x2 {
	return map1(v, ceil32)
}

// Trunc rounds toward zero.
func (v Float32x2) Trunc() Float32x2 {
	return map1(v, trunc32)
}

// RecipEstimate returns an estimate of 1/v with about 8 bits of precision.
func (v Float32x2) RecipEstimate() Float32x2 {
	return map1(v, recipEstimate32)
}

// RecipStep returns 2 - v*o computed with a single rounding, the
// Newton-Raphson correction for a reciprocal estimate o of v.
func (v Float32x2) RecipStep(o Float32x2) Float32x2 {
	return map2(v, o, recipStep32)
}

// RSqrtEstimate returns an estimate of 1/sqrt(v) with about 8 bits of precision.
func (v Float32x2) RSqrtEstimate() Float32x2 {
	return map1(v, rsqrtEstimate32)
}

// RSqrtStep returns (3 - v*o)/2 computed with a single rounding.
func (v Float32x2) RSqrtStep(o Float32x2) Float32x2 {
	return map2(v, o, rsqrtStep32)
}

// ===== Float32x2 bitwise =====

// And performs bitwise AND.
func (v Float32x2) And(o Float32x2) Float32x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Float32x2) Or(o Float32x2) Float32x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Float32x2) Xor(o Float32x2) Float32x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Float32x2) AndNot(o Float32x2) Float32x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Float32x2) Not() Float32x2 {
	return bitwise(v, v, not)
}

// ===== Float32x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Float32x2) Equal(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, eq[float32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Float32x2) NotEqual(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, ne[float32])
}

// Less returns a mask of the lanes where v < o.
func (v Float32x2) Less(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, lt[float32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Float32x2) LessEqual(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, le[float32])
}

// Greater returns a mask of the lanes where v > o.
func (v Float32x2) Greater(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, gt[float32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Float32x2) GreaterEqual(o Float32x2) Int32x2 {
	return compare[Int32x2](v, o, ge[float32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Float32x2) Merge(o Float32x2, mask Int32x2) Float32x2 {
	return merge(v, o, mask)
}

// ===== Float32x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Float32x2) ReduceSum() float32 {
	return reduce(v, add[float32])
}

// ReduceMin returns the minimum lane.
func (v Float32x2) ReduceMin() float32 {
	return reduce(v, minSelect[float32])
}

// ReduceMax returns the maximum lane.
func (v Float32x2) ReduceMax() float32 {
	return reduce(v, maxSelect[float32])
}

// ===== Float32x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Float32x2) DupLane(i int) Float32x2 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Float32x2) Reverse() Float32x2 {
	return reverse[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Float32x2) ZipLower(o Float32x2) Float32x2 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Float32x2) ZipUpper(o Float32x2) Float32x2 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Float32x2) UnzipEven(o Float32x2) Float32x2 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Float32x2) UnzipOdd(o Float32x2) Float32x2 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Float32x2) Ext(o Float32x2, n int) Float32x2 {
	return ext[uint32](v, o, n)
}

// ===== Float32x2 conversions =====

// ConvertToFloat64 converts every lane to float64.
func (v Float32x2) ConvertToFloat64() Float64x2 {
	return convert[Float64x2](v, func(x float32) float64 { return float64(x) })
}

// ConvertToInt32 converts every lane to int32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x2) ConvertToInt32() Int32x2 {
	return convert[Int32x2](v, func(x float32) int32 { return roundInt32(float64(x)) })
}

// ConvertToUint32 converts every lane to uint32, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x2) ConvertToUint32() Uint32x2 {
	return convert[Uint32x2](v, func(x float32) uint32 { return roundUint32(float64(x)) })
}

// ConvertToInt64 converts every lane to int64, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x2) ConvertToInt64() Int64x2 {
	return convert[Int64x2](v, func(x float32) int64 { return roundInt64(float64(x)) })
}

// ConvertToUint64 converts every lane to uint64, rounding to nearest even.
// Out of range lanes saturate and NaN converts to 0.
func (v Float32x2) ConvertToUint64() Uint64x2 {
	return convert[Uint64x2](v, func(x float32) uint64 { return roundUint64(float64(x)) })
}
