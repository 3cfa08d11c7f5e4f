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

// Int32x4 is a 128-bit register of 4 int32 lanes.
type Int32x4 [16]byte

// Int32x2 is a 64-bit register of 2 int32 lanes.
type Int32x2 [8]byte

// ===== Int32x4 constructors =====

// BroadcastInt32x4 returns a register with every lane set to x.
func BroadcastInt32x4(x int32) Int32x4 {
	return broadcast[Int32x4](x)
}

// ZeroInt32x4 returns a register with every lane zero.
func ZeroInt32x4() Int32x4 {
	return Int32x4{}
}

// LoadInt32x4 reads 4 lanes from s with a single register-width load.
// s must hold at least 4 elements; the length is not checked.
func LoadInt32x4(s []int32) Int32x4 {
	return load[Int32x4](s)
}

// LoadInt32x4Unaligned copies the first 4 elements of s into a register.
func LoadInt32x4Unaligned(s []int32) Int32x4 {
	return loadUnaligned[Int32x4](s)
}

// CombineInt32x4 joins two halves: lo fills lanes 0-1 and hi lanes 2-3.
func CombineInt32x4(lo, hi Int32x2) Int32x4 {
	return combine[Int32x4](lo, hi)
}

// ===== Int32x4 accessors =====

// Get returns lane i.
func (v Int32x4) Get(i int) int32 {
	return view[int32](&v)[i]
}

// Set sets lane i to x.
func (v *Int32x4) Set(i int, x int32) {
	view[int32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Int32x4) Array() [4]int32 {
	return *(*[4]int32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 4 elements; the length is not checked.
func (v Int32x4) StoreSlice(s []int32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 4 lanes into s.
func (v Int32x4) StoreSliceUnaligned(s []int32) {
	storeUnaligned[Int32x4, int32](v, s)
}

// Low returns lanes 0-1.
func (v Int32x4) Low() Int32x2 {
	return Int32x2(v[:8])
}

// High returns lanes 2-3.
func (v Int32x4) High() Int32x2 {
	return Int32x2(v[8:])
}

// ===== Int32x4 arithmetic =====

// Add performs element-wise addition.
func (v Int32x4) Add(o Int32x4) Int32x4 {
	return map2(v, o, add[int32])
}

// Sub performs element-wise subtraction.
func (v Int32x4) Sub(o Int32x4) Int32x4 {
	return map2(v, o, sub[int32])
}

// Mul performs element-wise multiplication.
func (v Int32x4) Mul(o Int32x4) Int32x4 {
	return map2(v, o, mul[int32])
}

// Min performs element-wise minimum.
func (v Int32x4) Min(o Int32x4) Int32x4 {
	return map2(v, o, minSelect[int32])
}

// Max performs element-wise maximum.
func (v Int32x4) Max(o Int32x4) Int32x4 {
	return map2(v, o, maxSelect[int32])
}

// Abs performs element-wise absolute value. The minimum value maps to itself.
func (v Int32x4) Abs() Int32x4 {
	return map1(v, abs[int32])
}

// Neg performs element-wise negation.
func (v Int32x4) Neg() Int32x4 {
	return map1(v, neg[int32])
}

// ===== Int32x4 bitwise =====

// And performs bitwise AND.
func (v Int32x4) And(o Int32x4) Int32x4 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Int32x4) Or(o Int32x4) Int32x4 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Int32x4) Xor(o Int32x4) Int32x4 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Int32x4) AndNot(o Int32x4) Int32x4 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Int32x4) Not() Int32x4 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Int32x4) ShiftLeftImm(n uint) Int32x4 {
	return map1(v, func(x int32) int32 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (arithmetic shift).
func (v Int32x4) ShiftRightImm(n uint) Int32x4 {
	return map1(v, func(x int32) int32 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 32 in magnitude saturate.
func (v Int32x4) Shl(counts Int32x4) Int32x4 {
	return map2(v, counts, shift[int32, int32])
}

// MulHigh returns the upper 32 bits of the 64-bit product of each lane pair.
func (v Int32x4) MulHigh(o Int32x4) Int32x4 {
	return map2(v, o, mulHigh32[int32])
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Int32x4) LeadingZeroCount() Int32x4 {
	return map1(v, leadingZeros[int32])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 32.
func (v Int32x4) TrailingZeroCount() Int32x4 {
	return map1(v, trailingZeros[int32])
}

// PopCount counts the set bits of every lane.
func (v Int32x4) PopCount() Int32x4 {
	return map1(v, popCount[int32])
}

// ===== Int32x4 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Int32x4) Equal(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, eq[int32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Int32x4) NotEqual(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, ne[int32])
}

// Less returns a mask of the lanes where v < o.
func (v Int32x4) Less(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, lt[int32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Int32x4) LessEqual(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, le[int32])
}

// Greater returns a mask of the lanes where v > o.
func (v Int32x4) Greater(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, gt[int32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Int32x4) GreaterEqual(o Int32x4) Int32x4 {
	return compare[Int32x4](v, o, ge[int32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Int32x4) Merge(o Int32x4, mask Int32x4) Int32x4 {
	return merge(v, o, mask)
}

// ===== Int32x4 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Int32x4) ReduceSum() int32 {
	return reduce(v, add[int32])
}

// ReduceMin returns the minimum lane.
func (v Int32x4) ReduceMin() int32 {
	return reduce(v, minSelect[int32])
}

// ReduceMax returns the maximum lane.
func (v Int32x4) ReduceMax() int32 {
	return reduce(v, maxSelect[int32])
}

// ===== Int32x4 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Int32x4) DupLane(i int) Int32x4 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Int32x4) Reverse() Int32x4 {
	return reverse[uint32](v)
}

// ReversePairs swaps lanes 0,1 and lanes 2,3.
func (v Int32x4) ReversePairs() Int32x4 {
	return reversePairs[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Int32x4) ZipLower(o Int32x4) Int32x4 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Int32x4) ZipUpper(o Int32x4) Int32x4 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Int32x4) UnzipEven(o Int32x4) Int32x4 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Int32x4) UnzipOdd(o Int32x4) Int32x4 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+3 of the concatenation v:o.
func (v Int32x4) Ext(o Int32x4, n int) Int32x4 {
	return ext[uint32](v, o, n)
}

// ===== Int32x4 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Int32x4) ConvertToFloat32() Float32x4 {
	return convert[Float32x4](v, func(x int32) float32 { return float32(x) })
}

// ConvertToUint32 converts every lane to uint32.
func (v Int32x4) ConvertToUint32() Uint32x4 {
	return convert[Uint32x4](v, func(x int32) uint32 { return uint32(x) })
}

// ===== Int32x2 constructors =====

// BroadcastInt32x2 returns a register with every lane set to x.
func BroadcastInt32x2(x int32) Int32x2 {
	return broadcast[Int32x2](x)
}

// ZeroInt32x2 returns a register with every lane zero.
func ZeroInt32x2() Int32x2 {
	return Int32x2{}
}

// LoadInt32x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadInt32x2(s []int32) Int32x2 {
	return load[Int32x2](s)
}

// LoadInt32x2Unaligned copies the first 2 elements of s into a register.
func LoadInt32x2Unaligned(s []int32) Int32x2 {
	return loadUnaligned[Int32x2](s)
}

// ===== Int32x2 accessors =====

// Get returns lane i.
func (v Int32x2) Get(i int) int32 {
	return view[int32](&v)[i]
}

// Set sets lane i to x.
func (v *Int32x2) Set(i int, x int32) {
	view[int32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Int32x2) Array() [2]int32 {
	return *(*[2]int32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Int32x2) StoreSlice(s []int32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Int32x2) StoreSliceUnaligned(s []int32) {
	storeUnaligned[Int32x2, int32](v, s)
}

// ===== Int32x2 arithmetic =====

// Add performs element-wise addition.
func (v Int32x2) Add(o Int32x2) Int32x2 {
	return map2(v, o, add[int32])
}

// Sub performs element-wise subtraction.
func (v Int32x2) Sub(o Int32x2) Int32x2 {
	return map2(v, o, sub[int32])
}

// Mul performs element-wise multiplication.
func (v Int32x2) Mul(o Int32x2) Int32x2 {
	return map2(v, o, mul[int32])
}

// Min performs element-wise minimum.
func (v Int32x2) Min(o Int32x2) Int32x2 {
	return map2(v, o, minSelect[int32])
}

// Max performs element-wise maximum.
func (v Int32x2) Max(o Int32x2) Int32x2 {
	return map2(v, o, maxSelect[int32])
}

// Abs performs element-wise absolute value. The minimum value maps to itself.
func (v Int32x2) Abs() Int32x2 {
	return map1(v, abs[int32])
}

// Neg performs element-wise negation.
func (v Int32x2) Neg() Int32x2 {
	return map1(v, neg[int32])
}

// ===== Int32x2 bitwise =====

// And performs bitwise AND.
func (v Int32x2) And(o Int32x2) Int32x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Int32x2) Or(o Int32x2) Int32x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Int32x2) Xor(o Int32x2) Int32x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Int32x2) AndNot(o Int32x2) Int32x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Int32x2) Not() Int32x2 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Int32x2) ShiftLeftImm(n uint) Int32x2 {
	return map1(v, func(x int32) int32 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (arithmetic shift).
func (v Int32x2) ShiftRightImm(n uint) Int32x2 {
	return map1(v, func(x int32) int32 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 32 in magnitude saturate.
func (v Int32x2) Shl(counts Int32x2) Int32x2 {
	return map2(v, counts, shift[int32, int32])
}

// MulHigh returns the upper 32 bits of the 64-bit product of each lane pair.
func (v Int32x2) MulHigh(o Int32x2) Int32x2 {
	return map2(v, o, mulHigh32[int32])
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Int32x2) LeadingZeroCount() Int32x2 {
	return map1(v, leadingZeros[int32])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 32.
func (v Int32x2) TrailingZeroCount() Int32x2 {
	return map1(v, trailingZeros[int32])
}

// PopCount counts the set bits of every lane.
func (v Int32x2) PopCount() Int32x2 {
	return map1(v, popCount[int32])
}

// ===== Int32x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Int32x2) Equal(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, eq[int32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Int32x2) NotEqual(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, ne[int32])
}

// Less returns a mask of the lanes where v < o.
func (v Int32x2) Less(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, lt[int32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Int32x2) LessEqual(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, le[int32])
}

// Greater returns a mask of the lanes where v > o.
func (v Int32x2) Greater(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, gt[int32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Int32x2) GreaterEqual(o Int32x2) Int32x2 {
	return compare[Int32x2](v, o, ge[int32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Int32x2) Merge(o Int32x2, mask Int32x2) Int32x2 {
	return merge(v, o, mask)
}

// ===== Int32x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Int32x2) ReduceSum() int32 {
	return reduce(v, add[int32])
}

// ReduceMin returns the minimum lane.
func (v Int32x2) ReduceMin() int32 {
	return reduce(v, minSelect[int32])
}

// ReduceMax returns the maximum lane.
func (v Int32x2) ReduceMax() int32 {
	return reduce(v, maxSelect[int32])
}

// ===== Int32x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Int32x2) DupLane(i int) Int32x2 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Int32x2) Reverse() Int32x2 {
	return reverse[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Int32x2) ZipLower(o Int32x2) Int32x2 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Int32x2) ZipUpper(o Int32x2) Int32x2 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Int32x2) UnzipEven(o Int32x2) Int32x2 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Int32x2) UnzipOdd(o Int32x2) Int32x2 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Int32x2) Ext(o Int32x2, n int) Int32x2 {
	return ext[uint32](v, o, n)
}

// ===== Int32x2 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Int32x2) ConvertToFloat32() Float32x2 {
	return convert[Float32x2](v, func(x int32) float32 { return float32(x) })
}

// ConvertToFloat64 converts every lane to float64.
func (v Int32x2) ConvertToFloat64() Float64x2 {
	return convert[Float64x2](v, func(x int32) float64 { return float64(x) })
}

// ConvertToUint32 converts every lane to uint32.
func (v Int32x2) ConvertToUint32() Uint32x2 {
	return convert[Uint32x2](v, func(x int32) uint32 { return uint32(x) })
}

// ConvertToInt64 converts every lane to int64.
func (v Int32x2) ConvertToInt64() Int64x2 {
	return convert[Int64x2](v, func(x int32) int64 { return int64(x) })
}

// ConvertToUint64 converts every lane to uint64.
func (v Int32x2) ConvertToUint64() Uint64x2 {
	return convert[Uint64x2](v, func(x int32) uint64 { return uint64(x) })
}
