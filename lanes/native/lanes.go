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
	"math/bits"
	"unsafe"
)

// reg is the set of register backings. Every register type in this package
// is a named byte array so that reinterpreting one register as another of
// the same size is a plain Go conversion.
type reg interface {
	~[8]byte | ~[16]byte
}

type scalar interface {
	~uint8 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

type number interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

type integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// view returns the lanes of r as a slice of T aliasing the register bytes.
func view[T scalar, R reg](r *R) []T {
	var zero T
	return unsafe.Slice((*T)(unsafe.Pointer(r)), unsafe.Sizeof(*r)/unsafe.Sizeof(zero))
}

func broadcast[R reg, T scalar](x T) R {
	var r R
	lanes := view[T](&r)
	for i := range lanes {
		lanes[i] = x
	}
	return r
}

// load reads a full register from s without checking its length.
func load[R reg, T scalar](s []T) R {
	return *(*R)(unsafe.Pointer(unsafe.SliceData(s)))
}

func loadUnaligned[R reg, T scalar](s []T) R {
	var r R
	lanes := view[T](&r)
	copy(lanes, s[:len(lanes)])
	return r
}

// store writes a full register to s without checking its length.
func store[R reg, T scalar](v R, s []T) {
	*(*R)(unsafe.Pointer(unsafe.SliceData(s))) = v
}

func storeUnaligned[R reg, T scalar](v R, s []T) {
	lanes := view[T](&v)
	copy(s[:len(lanes)], lanes)
}

func combine[R, H reg](lo, hi H) R {
	var r R
	b := view[uint8](&r)
	n := copy(b, view[uint8](&lo))
	copy(b[n:], view[uint8](&hi))
	return r
}

func map1[R reg, T scalar](v R, f func(T) T) R {
	var out R
	src, dst := view[T](&v), view[T](&out)
	for i := range src {
		dst[i] = f(src[i])
	}
	return out
}

func map2[R reg, T scalar](a, b R, f func(x, y T) T) R {
	var out R
	x, y, dst := view[T](&a), view[T](&b), view[T](&out)
	for i := range dst {
		dst[i] = f(x[i], y[i])
	}
	return out
}

func map3[R reg, T scalar](a, b, c R, f func(x, y, z T) T) R {
	var out R
	x, y, z, dst := view[T](&a), view[T](&b), view[T](&c), view[T](&out)
	for i := range dst {
		dst[i] = f(x[i], y[i], z[i])
	}
	return out
}

// compare sets every byte of lane i of the mask when f holds for lane i.
func compare[M, R reg, T scalar](a, b R, f func(x, y T) bool) M {
	var m M
	x, y := view[T](&a), view[T](&b)
	bytes := view[uint8](&m)
	w := len(bytes) / len(x)
	for i := range x {
		if f(x[i], y[i]) {
			for j := range w {
				bytes[i*w+j] = 0xFF
			}
		}
	}
	return m
}

func convert[D, S reg, TD, TS scalar](v S, f func(TS) TD) D {
	var out D
	src, dst := view[TS](&v), view[TD](&out)
	for i := range src {
		dst[i] = f(src[i])
	}
	return out
}

func bitwise[R reg](a, b R, f func(x, y uint8) uint8) R {
	return map2(a, b, f)
}

// merge picks bits of yes where mask is set and bits of no elsewhere.
func merge[R, M reg](yes, no R, mask M) R {
	var out R
	y, n, m, dst := view[uint8](&yes), view[uint8](&no), view[uint8](&mask), view[uint8](&out)
	for i := range dst {
		dst[i] = y[i]&m[i] | n[i]&^m[i]
	}
	return out
}

// reduce folds the lanes as a pairwise tree: (x0 op x1) op (x2 op x3).
func reduce[R reg, T scalar](v R, f func(x, y T) T) T {
	var buf [4]T
	n := copy(buf[:], view[T](&v))
	for n > 1 {
		for i := range n / 2 {
			buf[i] = f(buf[2*i], buf[2*i+1])
		}
		n /= 2
	}
	return buf[0]
}

// Permutation primitives move raw lane bits, so T is the unsigned type of
// the lane width and float payloads pass through untouched.

func dup[T scalar, R reg](v R, i int) R {
	return broadcast[R](view[T](&v)[i])
}

func reverse[T scalar, R reg](v R) R {
	var out R
	src, dst := view[T](&v), view[T](&out)
	for i := range dst {
		dst[i] = src[len(src)-1-i]
	}
	return out
}

func reversePairs[T scalar, R reg](v R) R {
	var out R
	src, dst := view[T](&v), view[T](&out)
	for i := range dst {
		dst[i] = src[i^1]
	}
	return out
}

// concat returns lane k of the concatenation a:b.
func concat[T scalar](a, b []T, k int) T {
	if k < len(a) {
		return a[k]
	}
	return b[k-len(a)]
}

func ext[T scalar, R reg](a, b R, n int) R {
	var out R
	x, y, dst := view[T](&a), view[T](&b), view[T](&out)
	for i := range dst {
		dst[i] = concat(x, y, i+n)
	}
	return out
}

func zip[T scalar, R reg](a, b R, upper bool) R {
	var out R
	x, y, dst := view[T](&a), view[T](&b), view[T](&out)
	base := 0
	if upper {
		base = len(x) / 2
	}
	for i := range len(dst) / 2 {
		dst[2*i] = x[base+i]
		dst[2*i+1] = y[base+i]
	}
	return out
}

func unzip[T scalar, R reg](a, b R, odd int) R {
	var out R
	x, y, dst := view[T](&a), view[T](&b), view[T](&out)
	for i := range dst {
		dst[i] = concat(x, y, 2*i+odd)
	}
	return out
}

func add[T number](x, y T) T { return x + y }
func sub[T number](x, y T) T { return x - y }
func mul[T number](x, y T) T { return x * y }

func div[T float32 | float64](x, y T) T { return x / y }

// minSelect and maxSelect are x<y ? x : y and x>y ? x : y, so a NaN in
// either operand selects y.
func minSelect[T number](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func maxSelect[T number](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func eq[T number](x, y T) bool { return x == y }
func ne[T number](x, y T) bool { return x != y }
func lt[T number](x, y T) bool { return x < y }
func le[T number](x, y T) bool { return x <= y }
func gt[T number](x, y T) bool { return x > y }
func ge[T number](x, y T) bool { return x >= y }

func and(x, y uint8) uint8    { return x & y }
func or(x, y uint8) uint8     { return x | y }
func xor(x, y uint8) uint8    { return x ^ y }
func andNot(x, y uint8) uint8 { return x &^ y }
func not(x, _ uint8) uint8    { return ^x }

func neg[T ~int32 | ~int64](x T) T { return -x }

func abs[T ~int32 | ~int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// shift shifts left by count, or right by -count when count is negative.
// Go shifts already saturate: counts of at least the lane width give zero,
// or the sign fill for a signed right shift.
func shift[T integer, C ~int32 | ~int64](x T, count C) T {
	if count >= 0 {
		return x << uint64(count)
	}
	return x >> -uint64(count)
}

// mulHigh32 relies on the int64 conversion sign-extending int32 lanes and
// zero-extending uint32 lanes: the low 64 bits of the product are exact
// either way.
func mulHigh32[T ~int32 | ~uint32](x, y T) T {
	return T(int64(x) * int64(y) >> 32)
}

func mulHighUint64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// mulHighInt64 corrects the unsigned high word for negative operands.
func mulHighInt64(x, y int64) int64 {
	hi, _ := bits.Mul64(uint64(x), uint64(y))
	return int64(hi) - (x>>63)&y - (y>>63)&x
}

func leadingZeros[T integer](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(bits.LeadingZeros32(uint32(x)))
	}
	return T(bits.LeadingZeros64(uint64(x)))
}

func trailingZeros[T integer](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(bits.TrailingZeros32(uint32(x)))
	}
	return T(bits.TrailingZeros64(uint64(x)))
}

func popCount[T integer](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(bits.OnesCount32(uint32(x)))
	}
	return T(bits.OnesCount64(uint64(x)))
}

func abs32(x float32) float32 { return math.Float32frombits(math.Float32bits(x) &^ (1 << 31)) }
func neg32(x float32) float32 { return math.Float32frombits(math.Float32bits(x) ^ (1 << 31)) }
func abs64(x float64) float64 { return math.Float64frombits(math.Float64bits(x) &^ (1 << 63)) }
func neg64(x float64) float64 { return math.Float64frombits(math.Float64bits(x) ^ (1 << 63)) }

// Single precision results are computed in float64 and rounded once; the
// extra precision is enough for these to be correctly rounded.
func sqrt32(x float32) float32        { return float32(math.Sqrt(float64(x))) }
func roundToEven32(x float32) float32 { return float32(math.RoundToEven(float64(x))) }
func floor32(x float32) float32       { return float32(math.Floor(float64(x))) }
func ceil32(x float32) float32        { return float32(math.Ceil(float64(x))) }
func trunc32(x float32) float32       { return float32(math.Trunc(float64(x))) }

// fma32 rounds x*y + z once. The float64 product is exact, and the float64
// sum is rounded to odd so that narrowing it to float32 cannot round twice.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// s+err == p+z exactly (TwoSum).
	pv := s - float64(z)
	err := (p - pv) + (float64(z) - (s - pv))
	if err != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), err))
	}
	return float32(s)
}

func mulAdd32(a, b, c float32) float32    { return fma32(a, b, c) }
func mulSub32(a, b, c float32) float32    { return fma32(a, b, -c) }
func negMulAdd32(a, b, c float32) float32 { return fma32(-a, b, c) }
func negMulSub32(a, b, c float32) float32 { return -fma32(a, b, c) }

func mulAdd64(a, b, c float64) float64    { return math.FMA(a, b, c) }
func mulSub64(a, b, c float64) float64    { return math.FMA(a, b, -c) }
func negMulAdd64(a, b, c float64) float64 { return math.FMA(-a, b, c) }
func negMulSub64(a, b, c float64) float64 { return -math.FMA(a, b, c) }
