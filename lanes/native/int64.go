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

// Int64x2 is a 128-bit register of 2 int64 lanes.
type Int64x2 [16]byte

// ===== Int64x2 constructors =====

// BroadcastInt64x2 returns a register with every lane set to x.
func BroadcastInt64x2(x int64) Int64x2 {
	return broadcast[Int64x2](x)
}

// ZeroInt64x2 returns a register with every lane zero.
func ZeroInt64x2() Int64x2 {
	return Int64x2{}
}

// LoadInt64x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadInt64x2(s []int64) Int64x2 {
	return load[Int64x2](s)
}

// LoadInt64x2Unaligned copies the first 2 elements of s into a register.
func LoadInt64x2Unaligned(s []int64) Int64x2 {
	return loadUnaligned[Int64x2](s)
}

// ===== Int64x2 accessors =====

// Get returns lane i.
func (v Int64x2) Get(i int) int64 {
	return view[int64](&v)[i]
}

// Set sets lane i to x.
func (v *Int64x2) Set(i int, x int64) {
	view[int64](v)[i] = x
}

// Array returns the lanes as an array.
func (v Int64x2) Array() [2]int64 {
	return *(*[2]int64)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Int64x2) StoreSlice(s []int64) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Int64x2) StoreSliceUnaligned(s []int64) {
	storeUnaligned[Int64x2, int64](v, s)
}

// ===== Int64x2 arithmetic =====

// Add performs element-wise addition.
func (v Int64x2) Add(o Int64x2) Int64x2 {
	return map2(v, o, add[int64])
}

// Sub performs element-wise subtraction.
func (v Int64x2) Sub(o Int64x2) Int64x2 {
	return map2(v, o, sub[int64])
}

// Min performs element-wise minimum.
func (v Int64x2) Min(o Int64x2) Int64x2 {
	return map2(v, o, minSelect[int64])
}

// Max performs element-wise maximum.
func (v Int64x2) Max(o Int64x2) Int64x2 {
	return map2(v, o, maxSelect[int64])
}

// Abs performs element-wise absolute value. The minimum value maps to itself.
func (v Int64x2) Abs() Int64x2 {
	return map1(v, abs[int64])
}

// Neg performs element-wise negation.
func (v Int64x2) Neg() Int64x2 {
	return map1(v, neg[int64])
}

// ===== Int64x2 bitwise =====

// And performs bitwise AND.
func (v Int64x2) And(o Int64x2) Int64x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Int64x2) Or(o Int64x2) Int64x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Int64x2) Xor(o Int64x2) Int64x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Int64x2) AndNot(o Int64x2) Int64x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Int64x2) Not() Int64x2 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Int64x2) ShiftLeftImm(n uint) Int64x2 {
	return map1(v, func(x int64) int64 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (arithmetic shift).
func (v Int64x2) ShiftRightImm(n uint) Int64x2 {
	return map1(v, func(x int64) int64 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 64 in magnitude saturate.
func (v Int64x2) Shl(counts Int64x2) Int64x2 {
	return map2(v, counts, shift[int64, int64])
}

// MulHigh returns the upper 64 bits of the 128-bit product of each lane pair.
func (v Int64x2) MulHigh(o Int64x2) Int64x2 {
	return map2(v, o, mulHighInt64)
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Int64x2) LeadingZeroCount() Int64x2 {
	return map1(v, leadingZeros[int64])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 64.
func (v Int64x2) TrailingZeroCount() Int64x2 {
	return map1(v, trailingZeros[int64])
}

// PopCount counts the set bits of every lane.
func (v Int64x2) PopCount() Int64x2 {
	return map1(v, popCount[int64])
}

// ===== Int64x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Int64x2) Equal(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, eq[int64])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Int64x2) NotEqual(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, ne[int64])
}

// Less returns a mask of the lanes where v < o.
func (v Int64x2) Less(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, lt[int64])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Int64x2) LessEqual(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, le[int64])
}

// Greater returns a mask of the lanes where v > o.
func (v Int64x2) Greater(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, gt[int64])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Int64x2) GreaterEqual(o Int64x2) Int64x2 {
	return compare[Int64x2](v, o, ge[int64])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Int64x2) Merge(o Int64x2, mask Int64x2) Int64x2 {
	return merge(v, o, mask)
}

// ===== Int64x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Int64x2) ReduceSum() int64 {
	return reduce(v, add[int64])
}

// ReduceMin returns the minimum lane.
func (v Int64x2) ReduceMin() int64 {
	return reduce(v, minSelect[int64])
}

// ReduceMax returns the maximum lane.
func (v Int64x2) ReduceMax() int64 {
	return reduce(v, maxSelect[int64])
}

// ===== Int64x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Int64x2) DupLane(i int) Int64x2 {
	return dup[uint64](v, i)
}

// Reverse reverses the lane order.
func (v Int64x2) Reverse() Int64x2 {
	return reverse[uint64](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Int64x2) ZipLower(o Int64x2) Int64x2 {
	return zip[uint64](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Int64x2) ZipUpper(o Int64x2) Int64x2 {
	return zip[uint64](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Int64x2) UnzipEven(o Int64x2) Int64x2 {
	return unzip[uint64](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Int64x2) UnzipOdd(o Int64x2) Int64x2 {
	return unzip[uint64](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Int64x2) Ext(o Int64x2, n int) Int64x2 {
	return ext[uint64](v, o, n)
}

// ===== Int64x2 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Int64x2) ConvertToFloat32() Float32x2 {
	return convert[Float32x2](v, func(x int64) float32 { return float32(x) })
}

// ConvertToFloat64 converts every lane to float64.
func (v Int64x2) ConvertToFloat64() Float64x2 {
	return convert[Float64x2](v, func(x int64) float64 { return float64(x) })
}

// ConvertToInt32 converts every lane to int32.
func (v Int64x2) ConvertToInt32() Int32x2 {
	return convert[Int32x2](v, func(x int64) int32 { return int32(x) })
}

// ConvertToUint32 converts every lane to uint32.
func (v Int64x2) ConvertToUint32() Uint32x2 {
	return convert[Uint32x2](v, func(x int64) uint32 { return uint32(x) })
}

// ConvertToUint64 converts every lane to uint64.
func (v Int64x2) ConvertToUint64() Uint64x2 {
	return convert[Uint64x2](v, func(x int64) uint64 { return uint64(x) })
}
