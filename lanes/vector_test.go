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

package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	f := []float32{1, 2, 3, 4, 5}
	require.Equal(t, [4]float32{1, 2, 3, 4}, LoadFloat32x4[Exact](f).Array())
	require.Equal(t, [4]float32{2, 3, 4, 5}, LoadFloat32x4Unaligned[Exact](f[1:]).Array())

	d := []float64{1, 2, 3, 4}
	dst := make([]float64, 4)
	LoadFloat64x4[Exact](d).Store(dst)
	require.Equal(t, d, dst)

	u := NewUint64x4(1, 2, 3, 4)
	out := make([]uint64, 5)
	u.StoreUnaligned(out[1:])
	require.Equal(t, []uint64{0, 1, 2, 3, 4}, out)

	require.Panics(t, func() { LoadInt32x4([]int32{1, 2, 3}) })
	require.Panics(t, func() { LoadInt64x4([]int64{1, 2, 3}) })
}

type element interface {
	~float32 | ~float64 | ~int32 | ~uint32 | ~int64 | ~uint64
}

type storer[T element] interface {
	Store(dst []T)
	StoreUnaligned(dst []T)
}

// checkRoundTrip stores a loaded vector with the matching store, for the
// aligned and the unaligned variants. The element after the last lane is a
// sentinel that no store may touch.
func checkRoundTrip[T element, V storer[T]](t *testing.T, lanes int, load, loadUnaligned func([]T) V) {
	t.Helper()
	const sentinel = 99
	buf := make([]T, lanes+2)
	for i := range buf {
		buf[i] = T(10 * (i + 1))
	}

	variants := []struct {
		name  string
		load  func([]T) V
		store func(V, []T)
	}{
		{"Aligned", load, func(v V, dst []T) { v.Store(dst) }},
		{"Unaligned", loadUnaligned, func(v V, dst []T) { v.StoreUnaligned(dst) }},
	}
	for _, variant := range variants {
		// Start one element in so the unaligned variants see an offset slice.
		src := buf[1 : lanes+1]
		dst := make([]T, lanes+1)
		dst[lanes] = sentinel

		v := variant.load(src)
		variant.store(v, dst)
		require.Equal(t, src, dst[:lanes], variant.name)
		require.Equal(t, T(sentinel), dst[lanes], "%s store wrote past lane %d", variant.name, lanes-1)
		require.Equal(t, v, variant.load(dst), "%s reload", variant.name)
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"Float32x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadFloat32x2[Exact], LoadFloat32x2Unaligned[Exact]) }},
		{"Float32x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadFloat32x3[Exact], LoadFloat32x3Unaligned[Exact]) }},
		{"Float32x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadFloat32x4[Approx], LoadFloat32x4Unaligned[Approx]) }},
		{"Float64x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadFloat64x2[Exact], LoadFloat64x2Unaligned[Exact]) }},
		{"Float64x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadFloat64x3[Approx], LoadFloat64x3Unaligned[Approx]) }},
		{"Float64x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadFloat64x4[Exact], LoadFloat64x4Unaligned[Exact]) }},
		{"Int32x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadInt32x2, LoadInt32x2Unaligned) }},
		{"Int32x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadInt32x3, LoadInt32x3Unaligned) }},
		{"Int32x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadInt32x4, LoadInt32x4Unaligned) }},
		{"Uint32x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadUint32x2, LoadUint32x2Unaligned) }},
		{"Uint32x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadUint32x3, LoadUint32x3Unaligned) }},
		{"Uint32x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadUint32x4, LoadUint32x4Unaligned) }},
		{"Int64x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadInt64x2, LoadInt64x2Unaligned) }},
		{"Int64x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadInt64x3, LoadInt64x3Unaligned) }},
		{"Int64x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadInt64x4, LoadInt64x4Unaligned) }},
		{"Uint64x2", func(t *testing.T) { checkRoundTrip(t, 2, LoadUint64x2, LoadUint64x2Unaligned) }},
		{"Uint64x3", func(t *testing.T) { checkRoundTrip(t, 3, LoadUint64x3, LoadUint64x3Unaligned) }},
		{"Uint64x4", func(t *testing.T) { checkRoundTrip(t, 4, LoadUint64x4, LoadUint64x4Unaligned) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestThreeLaneMemory(t *testing.T) {
	// Loads read exactly three elements and stores never touch the fourth.
	v := LoadInt32x3([]int32{1, 2, 3})
	require.Equal(t, [3]int32{1, 2, 3}, v.Array())

	dst := []int32{0, 0, 0, 99}
	v.Store(dst)
	require.Equal(t, []int32{1, 2, 3, 99}, dst)

	g := []float64{0, 0, 0, -1}
	LoadFloat64x3[Exact]([]float64{4, 5, 6}).Store(g)
	require.Equal(t, []float64{4, 5, 6, -1}, g)

	require.Panics(t, func() { LoadUint64x3([]uint64{1, 2}) })
	require.Panics(t, func() { v.InsertLane(3, 0) })
	require.Panics(t, func() { v.GetLane(3) })
}

func TestLanes(t *testing.T) {
	v := NewFloat64x4[Exact](1, 2, 3, 4)
	v = v.InsertLane(2, 30)
	assert.Equal(t, 30.0, v.GetLane(2))
	assert.Equal(t, [2]float64{1, 2}, v.Low().Array())
	assert.Equal(t, [2]float64{30, 4}, v.High().Array())
	assert.Equal(t, v, CombineFloat64x4(v.Low(), v.High()))

	w := NewInt32x4(5, 6, 7, 8)
	assert.Equal(t, [2]int32{7, 8}, w.High().Array())
	assert.Equal(t, w, CombineInt32x4(w.Low(), w.High()))
	assert.Equal(t, [4]uint32{9, 9, 9, 9}, BroadcastUint32x4(9).Array())
	assert.Equal(t, [3]float32{}, ZeroFloat32x3[Approx]().Array())
}

func TestArithmetic(t *testing.T) {
	a := NewFloat32x4[Exact](1, -2, 3, 4)
	b := NewFloat32x4[Exact](2, 2, -1, 0.5)
	assert.Equal(t, [4]float32{3, 0, 2, 4.5}, a.Add(b).Array())
	assert.Equal(t, [4]float32{-1, -4, 4, 3.5}, a.Sub(b).Array())
	assert.Equal(t, [4]float32{2, -4, -3, 2}, a.Mul(b).Array())
	assert.Equal(t, [4]float32{0.5, -1, -3, 8}, a.Div(b).Array())
	assert.Equal(t, [4]float32{1, -2, -1, 0.5}, a.Min(b).Array())
	assert.Equal(t, [4]float32{2, 2, 3, 4}, a.Max(b).Array())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, a.Abs().Array())
	assert.Equal(t, [4]float32{-1, 2, -3, -4}, a.Neg().Array())
	assert.Equal(t, [4]float32{3, -6, 0, 6}, a.MulAdd(b, a).Array())
	assert.Equal(t, [4]float32{1, -2, -6, -2}, a.MulSub(b, a).Array())

	c := NewFloat64x3[Exact](2.5, -0.5, 9)
	assert.Equal(t, [3]float64{2, -0, 9}, c.RoundToEven().Array())
	assert.Equal(t, [3]float64{2, -1, 9}, c.Floor().Array())
	assert.Equal(t, [3]float64{3, -0, 9}, c.Ceil().Array())
	assert.Equal(t, [3]float64{2, -0, 9}, c.Trunc().Array())
	assert.Equal(t, 3.0, c.Sqrt().GetLane(2))
}

func TestIntegerArithmetic(t *testing.T) {
	a := NewInt32x4(7, -7, math.MinInt32, 5)
	b := NewInt32x4(2, 0, -1, -5)
	assert.Equal(t, [4]int32{3, 0, math.MinInt32, -1}, a.Div(b).Array())
	assert.Equal(t, [4]int32{14, 0, math.MinInt32, -25}, a.Mul(b).Array())
	assert.Equal(t, [4]int32{7, 7, math.MinInt32, 5}, a.Abs().Array())

	// 64-bit multiplies wrap like Go integer arithmetic.
	x := NewInt64x4(1<<62, -3, math.MaxInt64, 6)
	y := NewInt64x4(4, 5, 2, -7)
	assert.Equal(t, [4]int64{0, -15, -2, -42}, x.Mul(y).Array())
	u := NewUint64x2(math.MaxUint64, 1<<32)
	assert.Equal(t, [2]uint64{math.MaxUint64 - 1, 0}, u.Mul(NewUint64x2(2, 1<<32)).Array())
	assert.Equal(t, [2]uint64{0, 1 << 31}, u.Div(NewUint64x2(0, 2)).Array())

	p := NewUint32x3(10, 20, 30)
	assert.Equal(t, [3]uint32{0, 10, 3}, p.Div(NewUint32x3(0, 2, 10)).Array())
}

func TestShifts(t *testing.T) {
	s := NewInt32x4(-16, 16, 1, math.MinInt32)
	assert.Equal(t, [4]int32{-4, 4, 0, math.MinInt32 >> 2}, s.ShiftRightImm(2).Array())
	assert.Equal(t, [4]int32{-64, 64, 4, 0}, s.ShiftLeftImm(2).Array())
	assert.Equal(t, [4]int32{-1, 0, 0, -1}, s.ShiftAllRight(40).Array())
	assert.Equal(t, [4]int32{0, 0, 0, 0}, s.ShiftAllLeft(32).Array())
	assert.Equal(t, [4]int32{-8, 32, 1, math.MinInt32 >> 3}, s.ShiftLeft(NewInt32x4(-1, 1, 0, -3)).Array())
	assert.Equal(t, [4]int32{-32, 8, 1, math.MinInt32 >> 3}, s.ShiftRight(NewInt32x4(-1, 1, 0, 3)).Array())

	u := NewUint32x4(0x80000000, 16, 1, 3)
	assert.Equal(t, [4]uint32{0x20000000, 4, 0, 0}, u.ShiftRightImm(2).Array())
	assert.Equal(t, [4]uint32{0, 0, 0, 0}, u.ShiftAllRight(32).Array())
	assert.Equal(t, [4]uint32{0x80000000, 8, 0, 0}, u.ShiftRight(NewUint32x4(0, 1, math.MaxUint32, 2)).Array())
	assert.Equal(t, [4]uint32{0, 32, 0, 3}, u.ShiftLeft(NewUint32x4(1, 1, 100, 0)).Array())

	w := NewInt64x3(-256, 256, 3)
	assert.Equal(t, [3]int64{-1, 1, 0}, w.ShiftAllRight(8).Array())
	assert.Equal(t, [3]int64{-512, 512, 6}, w.ShiftAllLeft(1).Array())
	assert.Equal(t, [3]int64{0, 0, 0}, w.ShiftAllLeft(200).Array())
	assert.Equal(t, [3]int64{-1, 0, 0}, w.ShiftAllRight(200).Array())

	q := NewUint64x4(1<<63, 2, 3, math.MaxUint64)
	assert.Equal(t, [4]uint64{0, 0, 0, 0}, q.ShiftAllRight(64).Array())
	assert.Equal(t, [4]uint64{1, 0, 0, 1}, q.ShiftAllRight(63).Array())
	assert.Equal(t, [4]uint64{0, 8, 12, math.MaxUint64 - 3}, q.ShiftAllLeft(2).Array())
}

func TestMulHigh(t *testing.T) {
	a := NewInt32x4(1<<30, -2, math.MinInt32, 7)
	assert.Equal(t, [4]int32{2, -1, 1 << 30, -1}, a.MulHigh(NewInt32x4(8, 3, math.MinInt32, -1)).Array())

	u := NewUint32x4(math.MaxUint32, 1<<31, 3, 0)
	assert.Equal(t, [4]uint32{math.MaxUint32 - 1, 2, 0, 0}, u.MulHigh(NewUint32x4(math.MaxUint32, 4, 5, 9)).Array())

	x := NewInt64x4(math.MinInt64, -1, 1<<40, math.MaxInt64)
	y := NewInt64x4(2, -1, 1<<40, math.MaxInt64)
	assert.Equal(t, [4]int64{-1, 0, 1 << 16, 1<<62 - 1}, x.MulHigh(y).Array())

	w := NewUint64x3(math.MaxUint64, 1<<63, 16)
	assert.Equal(t, [3]uint64{math.MaxUint64 - 1, 2, 1}, w.MulHigh(NewUint64x3(math.MaxUint64, 4, 1<<60)).Array())
}

func TestBitCounts(t *testing.T) {
	u := NewUint32x4(1, 0, 0x80000000, 0xF0)
	assert.Equal(t, [4]uint32{31, 32, 0, 24}, u.LeadingZeroCount().Array())
	assert.Equal(t, [4]uint32{0, 32, 31, 4}, u.TrailingZeroCount().Array())
	assert.Equal(t, [4]uint32{1, 0, 1, 4}, u.PopCount().Array())

	s := NewInt64x4(-1, 0, 1<<40, 6)
	assert.Equal(t, [4]int64{0, 64, 23, 61}, s.LeadingZeroCount().Array())
	assert.Equal(t, [4]int64{0, 64, 40, 1}, s.TrailingZeroCount().Array())
	assert.Equal(t, [4]int64{64, 0, 1, 2}, s.PopCount().Array())

	p := NewInt32x3(-8, 3, 0)
	assert.Equal(t, [3]int32{0, 30, 32}, p.LeadingZeroCount().Array())
	assert.Equal(t, [3]int32{3, 0, 32}, p.TrailingZeroCount().Array())
	assert.Equal(t, [3]int32{29, 2, 0}, p.PopCount().Array())

	q := NewUint64x2(1<<63, 255)
	assert.Equal(t, [2]uint64{0, 56}, q.LeadingZeroCount().Array())
	assert.Equal(t, [2]uint64{63, 0}, q.TrailingZeroCount().Array())
	assert.Equal(t, [2]uint64{1, 8}, q.PopCount().Array())
}

func TestBitwise(t *testing.T) {
	a := NewUint32x4(0b1100, 0b1010, 0, math.MaxUint32)
	b := NewUint32x4(0b1010, 0b1010, 1, 0xFF)
	assert.Equal(t, [4]uint32{0b1000, 0b1010, 0, 0xFF}, a.And(b).Array())
	assert.Equal(t, [4]uint32{0b1110, 0b1010, 1, math.MaxUint32}, a.Or(b).Array())
	assert.Equal(t, [4]uint32{0b0110, 0, 1, 0xFFFFFF00}, a.Xor(b).Array())
	assert.Equal(t, [4]uint32{0b0100, 0, 0, 0xFFFFFF00}, a.AndNot(b).Array())
	assert.Equal(t, [4]uint32{^uint32(0b1100), ^uint32(0b1010), math.MaxUint32, 0}, a.Not().Array())

	f := NewFloat64x2[Exact](-2, 3)
	sign := BitCastToFloat64x2[Exact](NewUint64x2(1<<63, 1<<63))
	assert.Equal(t, [2]float64{2, 3}, f.AndNot(sign).Array())
	assert.Equal(t, [2]float64{2, -3}, f.Xor(sign).Array())
}

func TestReductions(t *testing.T) {
	assert.Equal(t, int32(10), NewInt32x4(1, 2, 3, 4).ReduceSum())
	assert.Equal(t, int64(-7), NewInt64x4(3, -7, 9, 0).ReduceMin())
	assert.Equal(t, uint64(9), NewUint64x4(3, 7, 9, 0).ReduceMax())
	assert.Equal(t, 4.5, NewFloat64x2[Exact](1.5, 3).ReduceSum())

	// Pairwise order: (1e8 + 1) + (-1e8 + 1) rounds both halves.
	assert.Equal(t, float32(0), NewFloat32x4[Exact](1e8, 1, -1e8, 1).ReduceSum())
}

func TestThreeLaneReductionsIgnorePadding(t *testing.T) {
	// Not sets every bit of the padding lane as well.
	n := ZeroInt32x3().Not()
	assert.Equal(t, int32(-3), n.ReduceSum())
	assert.Equal(t, int32(-1), n.ReduceMin())

	// 1/sqrt(0) in the padding lane is +Inf.
	r := NewFloat32x3[Exact](4, 1, 16).RSqrt()
	assert.Equal(t, [3]float32{0.5, 1, 0.25}, r.Array())
	assert.Equal(t, float32(1.75), r.ReduceSum())
	assert.Equal(t, float32(1), r.ReduceMax())
	assert.Equal(t, float32(0.25), r.ReduceMin())

	u := NewUint64x3(5, 2, 8).Sub(BroadcastUint64x3(1))
	assert.Equal(t, uint64(1), u.ReduceMin())
	assert.Equal(t, uint64(12), u.ReduceSum())
	assert.Equal(t, uint64(7), u.ReduceMax())

	m := NewFloat64x3[Exact](-1, -2, -3)
	assert.Equal(t, -1.0, m.ReduceMax())
}

func TestComparisons(t *testing.T) {
	a := NewFloat32x4[Exact](1, 2, float32(math.NaN()), 4)
	b := NewFloat32x4[Exact](1, 3, 0, 3)
	assert.Equal(t, [4]bool{true, false, false, false}, a.Equal(b).Bools())
	assert.Equal(t, [4]bool{false, true, true, true}, a.NotEqual(b).Bools())
	assert.Equal(t, [4]bool{false, true, false, false}, a.Less(b).Bools())
	assert.Equal(t, [4]bool{true, true, false, false}, a.LessEqual(b).Bools())
	assert.Equal(t, [4]bool{false, false, false, true}, a.Greater(b).Bools())
	assert.Equal(t, [4]bool{true, false, false, true}, a.GreaterEqual(b).Bools())
	assert.Equal(t, [4]bool{false, false, true, false}, a.IsNaN().Bools())

	i := NewUint64x4(1, math.MaxUint64, 5, 0)
	j := NewUint64x4(2, 1, 5, 0)
	assert.Equal(t, [4]bool{true, false, false, false}, i.Less(j).Bools())
	assert.Equal(t, [4]bool{false, true, true, true}, i.GreaterEqual(j).Bools())
}

func TestMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	a := NewFloat64x2[Exact](nan, 1)
	b := NewFloat64x2[Exact](2, nan)
	// The second operand is returned wherever a comparison involves NaN.
	lo := a.Min(b).Array()
	assert.Equal(t, 2.0, lo[0])
	assert.True(t, math.IsNaN(lo[1]))
	hi := b.Max(a).Array()
	assert.True(t, math.IsNaN(hi[0]))
	assert.Equal(t, 1.0, hi[1])
}
