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

// Uint32x4 is a 128-bit register of 4 uint32 lanes.
type Uint32x4 [16]byte

// Uint32x2 is a 64-bit register of 2 uint32 lanes.
type Uint32x2 [8]byte

// ===== Uint32x4 constructors =====

// BroadcastUint32x4 returns a register with every lane set to x.
func BroadcastUint32x4(x uint32) Uint32x4 {
	return broadcast[Uint32x4](x)
}

// ZeroUint32x4 returns a register with every lane zero.
func ZeroUint32x4() Uint32x4 {
	return Uint32x4{}
}

// LoadUint32x4 reads 4 lanes from s with a single register-width load.
// s must hold at least 4 elements; the length is not checked.
func LoadUint32x4(s []uint32) Uint32x4 {
	return load[Uint32x4](s)
}

// LoadUint32x4Unaligned copies the first 4 elements of s into a register.
func LoadUint32x4Unaligned(s []uint32) Uint32x4 {
	return loadUnaligned[Uint32x4](s)
}

// CombineUint32x4 joins two halves: lo fills lanes 0-1 and hi lanes 2-3.
func CombineUint32x4(lo, hi Uint32x2) Uint32x4 {
	return combine[Uint32x4](lo, hi)
}

// ===== Uint32x4 accessors =====

// Get returns lane i.
func (v Uint32x4) Get(i int) uint32 {
	return view[uint32](&v)[i]
}

// Set sets lane i to x.
func (v *Uint32x4) Set(i int, x uint32) {
	view[uint32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Uint32x4) Array() [4]uint32 {
	return *(*[4]uint32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 4 elements; the length is not checked.
func (v Uint32x4) StoreSlice(s []uint32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 4 lanes into s.
func (v Uint32x4) StoreSliceUnaligned(s []uint32) {
	storeUnaligned[Uint32x4, uint32](v, s)
}

// Low returns lanes 0-1.
func (v Uint32x4) Low() Uint32x2 {
	return Uint32x2(v[:8])
}

// High returns lanes 2-3.
func (v Uint32x4) High() Uint32x2 {
	return Uint32x2(v[8:])
}

// ===== Uint32x4 arithmetic =====

// Add performs element-wise addition.
func (v Uint32x4) Add(o Uint32x4) Uint32x4 {
	return map2(v, o, add[uint32])
}

// Sub performs element-wise subtraction.
func (v Uint32x4) Sub(o Uint32x4) Uint32x4 {
	return map2(v, o, sub[uint32])
}

// Mul performs element-wise multiplication.
func (v Uint32x4) Mul(o Uint32x4) Uint32x4 {
	return map2(v, o, mul[uint32])
}

// Min performs element-wise minimum.
func (v Uint32x4) Min(o Uint32x4) Uint32x4 {
	return map2(v, o, minSelect[uint32])
}

// Max performs element-wise maximum.
func (v Uint32x4) Max(o Uint32x4) Uint32x4 {
	return map2(v, o, maxSelect[uint32])
}

// ===== Uint32x4 bitwise =====

// And performs bitwise AND.
func (v Uint32x4) And(o Uint32x4) Uint32x4 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Uint32x4) Or(o Uint32x4) Uint32x4 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Uint32x4) Xor(o Uint32x4) Uint32x4 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Uint32x4) AndNot(o Uint32x4) Uint32x4 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Uint32x4) Not() Uint32x4 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Uint32x4) ShiftLeftImm(n uint) Uint32x4 {
	return map1(v, func(x uint32) uint32 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (logical shift).
func (v Uint32x4) ShiftRightImm(n uint) Uint32x4 {
	return map1(v, func(x uint32) uint32 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 32 in magnitude saturate.
func (v Uint32x4) Shl(counts Int32x4) Uint32x4 {
	var out Uint32x4
	x, c, dst := view[uint32](&v), view[int32](&counts), view[uint32](&out)
	for i := range dst {
		dst[i] = shift(x[i], c[i])
	}
	return out
}

// MulHigh returns the upper 32 bits of the 64-bit product of each lane pair.
func (v Uint32x4) MulHigh(o Uint32x4) Uint32x4 {
	return map2(v, o, mulHigh32[uint32])
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Uint32x4) LeadingZeroCount() Uint32x4 {
	return map1(v, leadingZeros[uint32])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 32.
func (v Uint32x4) TrailingZeroCount() Uint32x4 {
	return map1(v, trailingZeros[uint32])
}

// PopCount counts the set bits of every lane.
func (v Uint32x4) PopCount() Uint32x4 {
	return map1(v, popCount[uint32])
}

// ===== Uint32x4 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Uint32x4) Equal(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, eq[uint32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Uint32x4) NotEqual(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, ne[uint32])
}

// Less returns a mask of the lanes where v < o.
func (v Uint32x4) Less(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, lt[uint32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Uint32x4) LessEqual(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, le[uint32])
}

// Greater returns a mask of the lanes where v > o.
func (v Uint32x4) Greater(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, gt[uint32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Uint32x4) GreaterEqual(o Uint32x4) Int32x4 {
	return compare[Int32x4](v, o, ge[uint32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Uint32x4) Merge(o Uint32x4, mask Int32x4) Uint32x4 {
	return merge(v, o, mask)
}

// ===== Uint32x4 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Uint32x4) ReduceSum() uint32 {
	return reduce(v, add[uint32])
}

// ReduceMin returns the minimum lane.
func (v Uint32x4) ReduceMin() uint32 {
	return reduce(v, minSelect[uint32])
}

// ReduceMax returns the maximum lane.
func (v Uint32x4) ReduceMax() uint32 {
	return reduce(v, maxSelect[uint32])
}

// ===== Uint32x4 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Uint32x4) DupLane(i int) Uint32x4 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Uint32x4) Reverse() Uint32x4 {
	return reverse[uint32](v)
}

// ReversePairs swaps lanes 0,1 and lanes 2,3.
func (v Uint32x4) ReversePairs() Uint32x4 {
	return reversePairs[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Uint32x4) ZipLower(o Uint32x4) Uint32x4 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Uint32x4) ZipUpper(o Uint32x4) Uint32x4 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Uint32x4) UnzipEven(o Uint32x4) Uint32x4 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Uint32x4) UnzipOdd(o Uint32x4) Uint32x4 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+3 of the concatenation v:o.
func (v Uint32x4) Ext(o Uint32x4, n int) Uint32x4 {
	return ext[uint32](v, o, n)
}

// ===== Uint32x4 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Uint32x4) ConvertToFloat32() Float32x4 {
	return convert[Float32x4](v, func(x uint32) float32 { return float32(x) })
}

// ConvertToInt32 converts every lane to int32.
func (v Uint32x4) ConvertToInt32() Int32x4 {
	return convert[Int32x4](v, func(x uint32) int32 { return int32(x) })
}

// ===== Uint32x2 constructors =====

// BroadcastUint32x2 returns a register with every lane set to x.
func BroadcastUint32x2(x uint32) Uint32x2 {
	return broadcast[Uint32x2](x)
}

// ZeroUint32x2 returns a register with every lane zero.
func ZeroUint32x2() Uint32x2 {
	return Uint32x2{}
}

// LoadUint32x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadUint32x2(s []uint32) Uint32x2 {
	return load[Uint32x2](s)
}

// LoadUint32x2Unaligned copies the first 2 elements of s into a register.
func LoadUint32x2Unaligned(s []uint32) Uint32x2 {
	return loadUnaligned[Uint32x2](s)
}

// ===== Uint32x2 accessors =====

// Get returns lane i.
func (v Uint32x2) Get(i int) uint32 {
	return view[uint32](&v)[i]
}

// Set sets lane i to x.
func (v *Uint32x2) Set(i int, x uint32) {
	view[uint32](v)[i] = x
}

// Array returns the lanes as an array.
func (v Uint32x2) Array() [2]uint32 {
	return *(*[2]uint32)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Uint32x2) StoreSlice(s []uint32) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Uint32x2) StoreSliceUnaligned(s []uint32) {
	storeUnaligned[Uint32x2, uint32](v, s)
}

// ===== Uint32x2 arithmetic =====

// Add performs element-wise addition.
func (v Uint32x2) Add(o Uint32x2) Uint32x2 {
	return map2(v, o, add[uint32])
}

// Sub performs element-wise subtraction.
func (v Uint32x2) Sub(o Uint32x2) Uint32x2 {
	return map2(v, o, sub[uint32])
}

// Mul performs element-wise multiplication.
func (v Uint32x2) Mul(o Uint32x2) Uint32x2 {
	return map2(v, o, mul[uint32])
}

// Min performs element-wise minimum.
func (v Uint32x2) Min(o Uint32x2) Uint32x2 {
	return map2(v, o, minSelect[uint32])
}

// Max performs element-wise maximum.
func (v Uint32x2) Max(o Uint32x2) Uint32x2 {
	return map2(v, o, maxSelect[uint32])
}

// ===== Uint32x2 bitwise =====

// And performs bitwise AND.
func (v Uint32x2) And(o Uint32x2) Uint32x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Uint32x2) Or(o Uint32x2) Uint32x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Uint32x2) Xor(o Uint32x2) Uint32x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Uint32x2) AndNot(o Uint32x2) Uint32x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Uint32x2) Not() Uint32x2 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Uint32x2) ShiftLeftImm(n uint) Uint32x2 {
	return map1(v, func(x uint32) uint32 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (logical shift).
func (v Uint32x2) ShiftRightImm(n uint) Uint32x2 {
	return map1(v, func(x uint32) uint32 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 32 in magnitude saturate.
func (v Uint32x2) Shl(counts Int32x2) Uint32x2 {
	var out Uint32x2
	x, c, dst := view[uint32](&v), view[int32](&counts), view[uint32](&out)
	for i := range dst {
		dst[i] = shift(x[i], c[i])
	}
	return out
}

// MulHigh returns the upper 32 bits of the 64-bit product of each lane pair.
func (v Uint32x2) MulHigh(o Uint32x2) Uint32x2 {
	return map2(v, o, mulHigh32[uint32])
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Uint32x2) LeadingZeroCount() Uint32x2 {
	return map1(v, leadingZeros[uint32])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 32.
func (v Uint32x2) TrailingZeroCount() Uint32x2 {
	return map1(v, trailingZeros[uint32])
}

// PopCount counts the set bits of every lane.
func (v Uint32x2) PopCount() Uint32x2 {
	return map1(v, popCount[uint32])
}

// ===== Uint32x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Uint32x2) Equal(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, eq[uint32])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Uint32x2) NotEqual(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, ne[uint32])
}

// Less returns a mask of the lanes where v < o.
func (v Uint32x2) Less(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, lt[uint32])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Uint32x2) LessEqual(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, le[uint32])
}

// Greater returns a mask of the lanes where v > o.
func (v Uint32x2) Greater(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, gt[uint32])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Uint32x2) GreaterEqual(o Uint32x2) Int32x2 {
	return compare[Int32x2](v, o, ge[uint32])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Uint32x2) Merge(o Uint32x2, mask Int32x2) Uint32x2 {
	return merge(v, o, mask)
}

// ===== Uint32x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Uint32x2) ReduceSum() uint32 {
	return reduce(v, add[uint32])
}

// ReduceMin returns the minimum lane.
func (v Uint32x2) ReduceMin() uint32 {
	return reduce(v, minSelect[uint32])
}

// ReduceMax returns the maximum lane.
func (v Uint32x2) ReduceMax() uint32 {
	return reduce(v, maxSelect[uint32])
}

// ===== Uint32x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Uint32x2) DupLane(i int) Uint32x2 {
	return dup[uint32](v, i)
}

// Reverse reverses the lane order.
func (v Uint32x2) Reverse() Uint32x2 {
	return reverse[uint32](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Uint32x2) ZipLower(o Uint32x2) Uint32x2 {
	return zip[uint32](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Uint32x2) ZipUpper(o Uint32x2) Uint32x2 {
	return zip[uint32](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Uint32x2) UnzipEven(o Uint32x2) Uint32x2 {
	return unzip[uint32](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Uint32x2) UnzipOdd(o Uint32x2) Uint32x2 {
	return unzip[uint32](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Uint32x2) Ext(o Uint32x2, n int) Uint32x2 {
	return ext[uint32](v, o, n)
}

// ===== Uint32x2 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Uint32x2) ConvertToFloat32() Float32x2 {
	return convert[Float32x2](v, func(x uint32) float32 { return float32(x) })
}

// ConvertToFloat64 converts every lane to float64.
func (v Uint32x2) ConvertToFloat64() Float64x2 {
	return convert[Float64x2](v, func(x uint32) float64 { return float64(x) })
}

// ConvertToInt32 converts every lane to int32.
func (v Uint32x2) ConvertToInt32() Int32x2 {
	return convert[Int32x2](v, func(x uint32) int32 { return int32(x) })
}

// ConvertToInt64 converts every lane to int64.
func (v Uint32x2) ConvertToInt64() Int64x2 {
	return convert[Int64x2](v, func(x uint32) int64 { return int64(x) })
}

// ConvertToUint64 converts every lane to uint64.
func (v Uint32x2) ConvertToUint64() Uint64x2 {
	return convert[Uint64x2](v, func(x uint32) uint64 { return uint64(x) })
}
