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

// Uint64x2 is a 128-bit register of 2 uint64 lanes.
type Uint64x2 [16]byte

// ===== Uint64x2 constructors =====

// BroadcastUint64x2 returns a register with every lane set to x.
func BroadcastUint64x2(x uint64) Uint64x2 {
	return broadcast[Uint64x2](x)
}

// ZeroUint64x2 returns a register with every lane zero.
func ZeroUint64x2() Uint64x2 {
	return Uint64x2{}
}

// LoadUint64x2 reads 2 lanes from s with a single register-width load.
// s must hold at least 2 elements; the length is not checked.
func LoadUint64x2(s []uint64) Uint64x2 {
	return load[Uint64x2](s)
}

// LoadUint64x2Unaligned copies the first 2 elements of s into a register.
func LoadUint64x2Unaligned(s []uint64) Uint64x2 {
	return loadUnaligned[Uint64x2](s)
}

// ===== Uint64x2 accessors =====

// Get returns lane i.
func (v Uint64x2) Get(i int) uint64 {
	return view[uint64](&v)[i]
}

// Set sets lane i to x.
func (v *Uint64x2) Set(i int, x uint64) {
	view[uint64](v)[i] = x
}

// Array returns the lanes as an array.
func (v Uint64x2) Array() [2]uint64 {
	return *(*[2]uint64)(unsafe.Pointer(&v))
}

// StoreSlice writes the register to s with a single register-width store.
// s must hold at least 2 elements; the length is not checked.
func (v Uint64x2) StoreSlice(s []uint64) {
	store(v, s)
}

// StoreSliceUnaligned copies the 2 lanes into s.
func (v Uint64x2) StoreSliceUnaligned(s []uint64) {
	storeUnaligned[Uint64x2, uint64](v, s)
}

// ===== Uint64x2 arithmetic =====

// Add performs element-wise addition.
func (v Uint64x2) Add(o Uint64x2) Uint64x2 {
	return map2(v, o, add[uint64])
}

// Sub performs element-wise subtraction.
func (v Uint64x2) Sub(o Uint64x2) Uint64x2 {
	return map2(v, o, sub[uint64])
}

// Min performs element-wise minimum.
func (v Uint64x2) Min(o Uint64x2) Uint64x2 {
	return map2(v, o, minSelect[uint64])
}

// Max performs element-wise maximum.
func (v Uint64x2) Max(o Uint64x2) Uint64x2 {
	return map2(v, o, maxSelect[uint64])
}

// ===== Uint64x2 bitwise =====

// And performs bitwise AND.
func (v Uint64x2) And(o Uint64x2) Uint64x2 {
	return bitwise(v, o, and)
}

// Or performs bitwise OR.
func (v Uint64x2) Or(o Uint64x2) Uint64x2 {
	return bitwise(v, o, or)
}

// Xor performs bitwise XOR.
func (v Uint64x2) Xor(o Uint64x2) Uint64x2 {
	return bitwise(v, o, xor)
}

// AndNot performs v AND NOT o.
func (v Uint64x2) AndNot(o Uint64x2) Uint64x2 {
	return bitwise(v, o, andNot)
}

// Not inverts every bit.
func (v Uint64x2) Not() Uint64x2 {
	return bitwise(v, v, not)
}

// ShiftLeftImm shifts every lane left by n bits.
func (v Uint64x2) ShiftLeftImm(n uint) Uint64x2 {
	return map1(v, func(x uint64) uint64 { return x << n })
}

// ShiftRightImm shifts every lane right by n bits (logical shift).
func (v Uint64x2) ShiftRightImm(n uint) Uint64x2 {
	return map1(v, func(x uint64) uint64 { return x >> n })
}

// Shl shifts lane i left by counts[i], or right by -counts[i] when the
// count is negative. Counts of at least 64 in magnitude saturate.
func (v Uint64x2) Shl(counts Int64x2) Uint64x2 {
	var out Uint64x2
	x, c, dst := view[uint64](&v), view[int64](&counts), view[uint64](&out)
	for i := range dst {
		dst[i] = shift(x[i], c[i])
	}
	return out
}

// MulHigh returns the upper 64 bits of the 128-bit product of each lane pair.
func (v Uint64x2) MulHigh(o Uint64x2) Uint64x2 {
	return map2(v, o, mulHighUint64)
}

// LeadingZeroCount counts the leading zero bits of every lane.
func (v Uint64x2) LeadingZeroCount() Uint64x2 {
	return map1(v, leadingZeros[uint64])
}

// TrailingZeroCount counts the trailing zero bits of every lane. Zero
// lanes give 64.
func (v Uint64x2) TrailingZeroCount() Uint64x2 {
	return map1(v, trailingZeros[uint64])
}

// PopCount counts the set bits of every lane.
func (v Uint64x2) PopCount() Uint64x2 {
	return map1(v, popCount[uint64])
}

// ===== Uint64x2 comparisons =====

// Equal returns a mask of the lanes where v == o.
func (v Uint64x2) Equal(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, eq[uint64])
}

// NotEqual returns a mask of the lanes where v != o.
func (v Uint64x2) NotEqual(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, ne[uint64])
}

// Less returns a mask of the lanes where v < o.
func (v Uint64x2) Less(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, lt[uint64])
}

// LessEqual returns a mask of the lanes where v <= o.
func (v Uint64x2) LessEqual(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, le[uint64])
}

// Greater returns a mask of the lanes where v > o.
func (v Uint64x2) Greater(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, gt[uint64])
}

// GreaterEqual returns a mask of the lanes where v >= o.
func (v Uint64x2) GreaterEqual(o Uint64x2) Int64x2 {
	return compare[Int64x2](v, o, ge[uint64])
}

// Merge returns v in the lanes where mask is set and o elsewhere.
func (v Uint64x2) Merge(o Uint64x2, mask Int64x2) Uint64x2 {
	return merge(v, o, mask)
}

// ===== Uint64x2 reductions =====

// ReduceSum returns the sum of all lanes, added as a pairwise tree.
func (v Uint64x2) ReduceSum() uint64 {
	return reduce(v, add[uint64])
}

// ReduceMin returns the minimum lane.
func (v Uint64x2) ReduceMin() uint64 {
	return reduce(v, minSelect[uint64])
}

// ReduceMax returns the maximum lane.
func (v Uint64x2) ReduceMax() uint64 {
	return reduce(v, maxSelect[uint64])
}

// ===== Uint64x2 permutations =====

// DupLane broadcasts lane i to every lane.
func (v Uint64x2) DupLane(i int) Uint64x2 {
	return dup[uint64](v, i)
}

// Reverse reverses the lane order.
func (v Uint64x2) Reverse() Uint64x2 {
	return reverse[uint64](v)
}

// ZipLower interleaves the lower halves of v and o.
func (v Uint64x2) ZipLower(o Uint64x2) Uint64x2 {
	return zip[uint64](v, o, false)
}

// ZipUpper interleaves the upper halves of v and o.
func (v Uint64x2) ZipUpper(o Uint64x2) Uint64x2 {
	return zip[uint64](v, o, true)
}

// UnzipEven returns the even lanes of the concatenation v:o.
func (v Uint64x2) UnzipEven(o Uint64x2) Uint64x2 {
	return unzip[uint64](v, o, 0)
}

// UnzipOdd returns the odd lanes of the concatenation v:o.
func (v Uint64x2) UnzipOdd(o Uint64x2) Uint64x2 {
	return unzip[uint64](v, o, 1)
}

// Ext returns lanes n..n+1 of the concatenation v:o.
func (v Uint64x2) Ext(o Uint64x2, n int) Uint64x2 {
	return ext[uint64](v, o, n)
}

// ===== Uint64x2 conversions =====

// ConvertToFloat32 converts every lane to float32.
func (v Uint64x2) ConvertToFloat32() Float32x2 {
	return convert[Float32x2](v, func(x uint64) float32 { return float32(x) })
}

// ConvertToFloat64 converts every lane to float64.
func (v Uint64x2) ConvertToFloat64() Float64x2 {
	return convert[Float64x2](v, func(x uint64) float64 { return float64(x) })
}

// ConvertToInt32 converts every lane to int32.
func (v Uint64x2) ConvertToInt32() Int32x2 {
	return convert[Int32x2](v, func(x uint64) int32 { return int32(x) })
}

// ConvertToUint32 converts every lane to uint32.
func (v Uint64x2) ConvertToUint32() Uint32x2 {
	return convert[Uint32x2](v, func(x uint64) uint32 { return uint32(x) })
}

// ConvertToInt64 converts every lane to int64.
func (v Uint64x2) ConvertToInt64() Int64x2 {
	return convert[Int64x2](v, func(x uint64) int64 { return int64(x) })
}
