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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5}
	v := LoadFloat32x4(src)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, v.Array())

	dst := make([]float32, 5)
	v.StoreSlice(dst)
	assert.Equal(t, []float32{1, 2, 3, 4, 0}, dst)

	u := LoadUint64x2Unaligned([]uint64{7, 9})
	out := make([]uint64, 3)
	u.StoreSliceUnaligned(out[1:])
	assert.Equal(t, []uint64{0, 7, 9}, out)

	assert.Panics(t, func() { LoadInt32x4Unaligned([]int32{1, 2}) })
}

func TestLowHighCombine(t *testing.T) {
	v := LoadInt32x4([]int32{1, 2, 3, 4})
	assert.Equal(t, [2]int32{1, 2}, v.Low().Array())
	assert.Equal(t, [2]int32{3, 4}, v.High().Array())
	assert.Equal(t, v, CombineInt32x4(v.Low(), v.High()))
}

func TestArithmetic(t *testing.T) {
	a := LoadFloat32x4([]float32{1, -2, 3, -4})
	b := LoadFloat32x4([]float32{2, 2, 2, 2})
	assert.Equal(t, [4]float32{3, 0, 5, -2}, a.Add(b).Array())
	assert.Equal(t, [4]float32{-1, -4, 1, -6}, a.Sub(b).Array())
	assert.Equal(t, [4]float32{2, -4, 6, -8}, a.Mul(b).Array())
	assert.Equal(t, [4]float32{0.5, -1, 1.5, -2}, a.Div(b).Array())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, a.Abs().Array())
	assert.Equal(t, [4]float32{-1, 2, -3, 4}, a.Neg().Array())
	assert.Equal(t, [4]float32{1, -2, 2, -4}, a.Min(b).Array())
	assert.Equal(t, [4]float32{4, -2, 8, -6}, a.MulAdd(b, b).Array())
	assert.Equal(t, [4]float32{-4, 2, -8, 6}, a.NegMulSub(b, b).Array())

	r := LoadFloat64x2([]float64{2.5, -1.5})
	assert.Equal(t, [2]float64{2, -2}, r.RoundToEven().Array())
	assert.Equal(t, [2]float64{2, -2}, r.Floor().Array())
	assert.Equal(t, [2]float64{3, -1}, r.Ceil().Array())
	assert.Equal(t, [2]float64{2, -1}, r.Trunc().Array())

	i := LoadInt32x4([]int32{math.MinInt32, -1, 0, 5})
	assert.Equal(t, [4]int32{math.MinInt32, 1, 0, 5}, i.Abs().Array())
	assert.Equal(t, [4]int32{0, -2, 0, 10}, i.Mul(BroadcastInt32x4(2)).Array())
}

func TestMulAddSingleRounding(t *testing.T) {
	// x*x = 1 + 2^-11 + 2^-24 sits exactly halfway between two float32
	// values, so the sign of a tiny addend decides the rounding.
	const x = float32(1 + 0x1p-12)
	a := LoadFloat32x4([]float32{x, x, -x, 3})
	b := LoadFloat32x4([]float32{x, x, x, 0.5})
	c := LoadFloat32x4([]float32{0x1p-80, -0x1p-80, -0x1p-80, 0})
	want := [4]float32{1 + 0x1p-11 + 0x1p-23, 1 + 0x1p-11, -(1 + 0x1p-11 + 0x1p-23), 1.5}
	assert.Equal(t, want, a.MulAdd(b, c).Array())

	inf := float32(math.Inf(1))
	d := LoadFloat32x2([]float32{inf, 2})
	assert.Equal(t, [2]float32{inf, 4}, d.MulAdd(LoadFloat32x2([]float32{1, 1}), LoadFloat32x2([]float32{1, 2})).Array())
	nan := LoadFloat32x2([]float32{inf, 0}).MulAdd(LoadFloat32x2([]float32{0, 1}), ZeroFloat32x2())
	assert.True(t, math.IsNaN(float64(nan.Get(0))))
}

func TestMinMaxNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := BroadcastFloat32x2(nan)
	b := BroadcastFloat32x2(1)
	assert.Equal(t, float32(1), a.Min(b).Get(0))
	assert.Equal(t, float32(1), a.Max(b).Get(1))
	assert.True(t, b.Min(a).Get(0) != b.Min(a).Get(0))
}

func TestCompareMerge(t *testing.T) {
	a := LoadUint32x4([]uint32{1, 5, math.MaxUint32, 0})
	b := BroadcastUint32x4(4)
	m := a.Less(b)
	assert.Equal(t, [4]int32{-1, 0, 0, -1}, m.Array())
	assert.Equal(t, [4]uint32{1, 4, 4, 0}, a.Merge(b, m).Array())
	assert.Equal(t, [4]int32{0, -1, -1, 0}, a.GreaterEqual(b).Array())

	f := LoadFloat64x2([]float64{math.NaN(), 1})
	assert.Equal(t, [2]int64{0, -1}, f.Equal(f).Array())
	assert.Equal(t, [2]int64{-1, 0}, f.NotEqual(f).Array())
}

func TestBitwise(t *testing.T) {
	a := BroadcastUint64x2(0b1100)
	b := BroadcastUint64x2(0b1010)
	assert.Equal(t, uint64(0b1000), a.And(b).Get(0))
	assert.Equal(t, uint64(0b1110), a.Or(b).Get(0))
	assert.Equal(t, uint64(0b0110), a.Xor(b).Get(1))
	assert.Equal(t, uint64(0b0100), a.AndNot(b).Get(1))
	assert.Equal(t, ^uint64(0b1100), a.Not().Get(0))

	f := BroadcastFloat32x4(-1)
	sign := Float32x4(BroadcastUint32x4(1 << 31))
	assert.Equal(t, float32(1), f.AndNot(sign).Get(2))
}

func TestReduce(t *testing.T) {
	v := LoadInt64x2([]int64{-3, 8})
	assert.Equal(t, int64(5), v.ReduceSum())
	assert.Equal(t, int64(-3), v.ReduceMin())
	assert.Equal(t, int64(8), v.ReduceMax())

	// Pairwise: (1e8 + 1) and (-1e8 + 1) each round back to ±1e8, so the sum
	// is 0 where a sequential sum gives 1.
	f := LoadFloat32x4([]float32{1e8, 1, -1e8, 1})
	assert.Equal(t, float32(0), f.ReduceSum())
}

func TestPermutations(t *testing.T) {
	a := LoadUint32x4([]uint32{0, 1, 2, 3})
	b := LoadUint32x4([]uint32{4, 5, 6, 7})
	tests := []struct {
		name string
		got  Uint32x4
		want [4]uint32
	}{
		{"DupLane", a.DupLane(2), [4]uint32{2, 2, 2, 2}},
		{"Reverse", a.Reverse(), [4]uint32{3, 2, 1, 0}},
		{"ReversePairs", a.ReversePairs(), [4]uint32{1, 0, 3, 2}},
		{"ZipLower", a.ZipLower(b), [4]uint32{0, 4, 1, 5}},
		{"ZipUpper", a.ZipUpper(b), [4]uint32{2, 6, 3, 7}},
		{"UnzipEven", a.UnzipEven(b), [4]uint32{0, 2, 4, 6}},
		{"UnzipOdd", a.UnzipOdd(b), [4]uint32{1, 3, 5, 7}},
		{"Ext1", a.Ext(b, 1), [4]uint32{1, 2, 3, 4}},
		{"Ext3", a.Ext(a, 3), [4]uint32{3, 0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Array())
		})
	}

	p := LoadFloat64x2([]float64{1, 2})
	q := LoadFloat64x2([]float64{3, 4})
	assert.Equal(t, [2]float64{2, 1}, p.Reverse().Array())
	assert.Equal(t, [2]float64{1, 3}, p.ZipLower(q).Array())
	assert.Equal(t, [2]float64{2, 4}, p.UnzipOdd(q).Array())
	assert.Equal(t, [2]float64{2, 3}, p.Ext(q, 1).Array())
}

func TestShifts(t *testing.T) {
	v := LoadInt32x4([]int32{-16, 16, -1, 1})
	assert.Equal(t, [4]int32{-4, 4, -1, 0}, v.ShiftRightImm(2).Array())
	assert.Equal(t, [4]int32{-64, 64, -4, 4}, v.ShiftLeftImm(2).Array())

	counts := LoadInt32x4([]int32{-40, 40, 31, -1})
	assert.Equal(t, [4]int32{-1, 0, math.MinInt32, 0}, v.Shl(counts).Array())

	u := LoadUint32x2([]uint32{0x80000000, 3})
	assert.Equal(t, [2]uint32{0x40000000, 0}, u.Shl(LoadInt32x2([]int32{-1, 32})).Array())
	assert.Equal(t, [2]uint32{0x40000000, 1}, u.ShiftRightImm(1).Array())

	w := LoadInt64x2([]int64{math.MinInt64, 5})
	assert.Equal(t, [2]int64{-1, 0}, w.Shl(LoadInt64x2([]int64{math.MinInt64, 64})).Array())
}

func TestBitOps(t *testing.T) {
	a := LoadInt32x4([]int32{-2, 1 << 30, math.MinInt32, 5})
	b := LoadInt32x4([]int32{3, 8, math.MinInt32, 0})
	assert.Equal(t, [4]int32{-1, 2, 1 << 30, 0}, a.MulHigh(b).Array())
	assert.Equal(t, [4]int32{0, 1, 0, 29}, a.LeadingZeroCount().Array())
	assert.Equal(t, [4]int32{1, 30, 31, 0}, a.TrailingZeroCount().Array())
	assert.Equal(t, [4]int32{31, 1, 1, 2}, a.PopCount().Array())

	u := LoadUint64x2([]uint64{math.MaxUint64, 1 << 32})
	assert.Equal(t, [2]uint64{math.MaxUint64 - 1, 1}, u.MulHigh(LoadUint64x2([]uint64{math.MaxUint64, 1 << 32})).Array())
	assert.Equal(t, [2]uint64{0, 31}, u.LeadingZeroCount().Array())
	assert.Equal(t, [2]uint64{0, 32}, u.TrailingZeroCount().Array())
	assert.Equal(t, [2]uint64{64, 1}, u.PopCount().Array())

	s := LoadInt64x2([]int64{-3, math.MinInt64})
	assert.Equal(t, [2]int64{-1, 1 << 62}, s.MulHigh(LoadInt64x2([]int64{5, math.MinInt64})).Array())

	require.Equal(t, [2]uint32{0xFFFFFFFE, 0}, LoadUint32x2([]uint32{math.MaxUint32, 7}).MulHigh(LoadUint32x2([]uint32{math.MaxUint32, 9})).Array())
}

func TestConversions(t *testing.T) {
	f := LoadFloat32x4([]float32{2.5, -3.5, float32(math.NaN()), 1e10})
	assert.Equal(t, [4]int32{2, -4, 0, math.MaxInt32}, f.ConvertToInt32().Array())
	assert.Equal(t, [4]uint32{2, 0, 0, math.MaxUint32}, f.ConvertToUint32().Array())

	d := LoadFloat64x2([]float64{-1e30, 0.5})
	assert.Equal(t, [2]int64{math.MinInt64, 0}, d.ConvertToInt64().Array())
	assert.Equal(t, [2]uint64{0, 0}, d.ConvertToUint64().Array())
	assert.Equal(t, [2]float32{float32(-1e30), 0.5}, d.ConvertToFloat32().Array())

	i := LoadInt64x2([]int64{-1, 1 << 40})
	assert.Equal(t, [2]uint32{math.MaxUint32, 0}, i.ConvertToUint32().Array())
	assert.Equal(t, [2]int32{-1, 0}, i.ConvertToInt32().Array())
	assert.Equal(t, [2]float64{-1, 1 << 40}, i.ConvertToFloat64().Array())

	u := LoadUint32x2([]uint32{math.MaxUint32, 1})
	assert.Equal(t, [2]int64{math.MaxUint32, 1}, u.ConvertToInt64().Array())
	assert.Equal(t, [2]int32{-1, 1}, u.ConvertToInt32().Array())

	s := LoadInt32x2([]int32{-1, 2})
	assert.Equal(t, [2]uint64{math.MaxUint64, 2}, s.ConvertToUint64().Array())
}

func TestTableLookupBytes(t *testing.T) {
	var table, idx Uint8x16
	for i := range table {
		table[i] = uint8(100 + i)
		idx[i] = uint8(15 - i)
	}
	idx[0] = 16
	idx[1] = 0xFF
	got := table.TableLookupBytes(idx)
	assert.Equal(t, uint8(0), got[0])
	assert.Equal(t, uint8(0), got[1])
	assert.Equal(t, uint8(113), got[2])
	assert.Equal(t, uint8(100), got[15])

	var hi Uint8x16
	for i := range hi {
		hi[i] = uint8(200 + i)
	}
	idx2 := LoadUint8x16([]uint8{0, 15, 16, 31, 32, 255, 1, 17, 0, 0, 0, 0, 0, 0, 0, 0})
	got2 := TableLookupBytes2(table, hi, idx2)
	assert.Equal(t, []uint8{100, 115, 200, 215, 0, 0, 101, 201}, got2[:8])

	small := LoadUint8x8([]uint8{1, 2, 3, 4, 5, 6, 7, 8})
	got3 := small.TableLookupBytes(LoadUint8x8([]uint8{7, 8, 0, 1, 2, 3, 4, 5}))
	assert.Equal(t, Uint8x8{8, 0, 1, 2, 3, 4, 5, 6}, got3)
}

func TestReinterpret(t *testing.T) {
	f := BroadcastFloat32x4(1)
	bits := Uint32x4(f)
	require.Equal(t, uint32(0x3F800000), bits.Get(3))
	assert.Equal(t, f, Float32x4(bits))
	b := Uint8x16(f)
	assert.Equal(t, uint8(0x3F), b[3])
}
