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
)

func TestConvertFloatToInt(t *testing.T) {
	f := NewFloat32x4[Exact](2.5, -3.5, 1e10, float32(math.NaN()))
	assert.Equal(t, [4]int32{2, -4, math.MaxInt32, 0}, ConvertToInt32x4(f).Array())
	assert.Equal(t, [4]uint32{2, 0, math.MaxUint32, 0}, ConvertToUint32x4(f).Array())
	assert.Equal(t, [4]int64{2, -4, 1e10, 0}, ConvertToInt64x4(f).Array())

	d := NewFloat64x2[Exact](-1e300, 1e300)
	assert.Equal(t, [2]int64{math.MinInt64, math.MaxInt64}, ConvertToInt64x2(d).Array())
	assert.Equal(t, [2]uint64{0, math.MaxUint64}, ConvertToUint64x2(d).Array())
	assert.Equal(t, [2]int32{math.MinInt32, math.MaxInt32}, ConvertToInt32x2(d).Array())

	p := NewFloat64x3[Approx](0.5, 1.5, -0.5)
	assert.Equal(t, [3]int32{0, 2, 0}, ConvertToInt32x3(p).Array())
}

func TestConvertWidths(t *testing.T) {
	i := NewInt32x4(-1, 2, math.MaxInt32, math.MinInt32)
	wide := ConvertToFloat64x4[Exact](i)
	assert.Equal(t, [4]float64{-1, 2, math.MaxInt32, math.MinInt32}, wide.Array())
	assert.Equal(t, i, ConvertToInt32x4(wide))
	assert.Equal(t, [4]int64{-1, 2, math.MaxInt32, math.MinInt32}, ConvertToInt64x4(i).Array())

	// Narrowing integer conversions keep the low bits.
	l := NewInt64x4(1<<32+5, -1, 7, 1<<31)
	assert.Equal(t, [4]int32{5, -1, 7, math.MinInt32}, ConvertToInt32x4(l).Array())
	assert.Equal(t, [4]uint32{5, math.MaxUint32, 7, 1 << 31}, ConvertToUint32x4(l).Array())

	u := NewUint32x2(math.MaxUint32, 3)
	assert.Equal(t, [2]float64{math.MaxUint32, 3}, ConvertToFloat64x2[Exact](u).Array())
	assert.Equal(t, [2]int64{math.MaxUint32, 3}, ConvertToInt64x2(u).Array())

	s := NewUint64x3(1, 1<<40, 3)
	assert.Equal(t, [3]float32{1, 1 << 40, 3}, ConvertToFloat32x3[Approx](s).Array())

	h := ConvertToFloat32x4[Exact](NewFloat64x4[Exact](0.1, 1, 1e40, -2))
	assert.Equal(t, [4]float32{0.1, 1, float32(math.Inf(1)), -2}, h.Array())
}

func TestConvertKeepsPrecisionParameter(t *testing.T) {
	x := ConvertToFloat32x4[Approx](NewInt32x4(4, 16, 64, 1))
	assert.Equal(t, [4]float32{0.5, 0.25, 0.125, 1}, x.RSqrt().Array())
}

func TestBitCastRoundTrip(t *testing.T) {
	f := NewFloat32x4[Exact](1, -2, float32(math.Inf(-1)), 0.1)
	u := BitCastToUint32x4(f)
	assert.Equal(t, [4]uint32{0x3F800000, 0xC0000000, 0xFF800000, math.Float32bits(0.1)}, u.Array())
	assert.Equal(t, f, BitCastToFloat32x4[Exact](u))
	assert.Equal(t, f, BitCastToFloat32x4[Exact](BitCastToInt32x4(f)))

	g := NewFloat64x4[Exact](1, -1, 0.5, math.MaxFloat64)
	assert.Equal(t, g, BitCastToFloat64x4[Exact](BitCastToInt64x4(BitCastToUint64x4(g))))
	assert.Equal(t, uint64(0x3FF0000000000000), BitCastToUint64x4(g).GetLane(0))

	h := NewInt32x3(-1, 0, 1)
	assert.Equal(t, [3]uint32{math.MaxUint32, 0, 1}, BitCastToUint32x3(h).Array())
	assert.Equal(t, h, BitCastToInt32x3(BitCastToFloat32x3[Approx](h)))

	k := NewUint64x2(1, 2)
	assert.Equal(t, k, BitCastToUint64x2(BitCastToFloat64x2[Exact](k)))
}

func TestPaddedFloatCasts(t *testing.T) {
	x := ConvertToFloat32x3[Approx](NewInt32x3(4, 16, 64))
	assert.Equal(t, [3]float32{0.5, 0.25, 0.125}, x.RSqrt().Array())
	assert.Equal(t, [3]float64{4, 16, 64}, ConvertToFloat64x3[Exact](x).Array())

	y := ConvertToFloat64x3[Approx](NewUint64x3(1, 4, 1<<20))
	assert.Equal(t, [3]float64{1, 0.5, 1.0 / 1024}, y.RSqrt().Array())

	m := BitCastToFloat64x3[Exact](Mask64x3FromBools([3]bool{true, false, true}))
	assert.Equal(t, [3]uint64{math.MaxUint64, 0, math.MaxUint64}, BitCastToUint64x3(m).Array())
	assert.True(t, math.IsNaN(m.GetLane(0)))

	f := BitCastToFloat32x3[Approx](NewUint32x3(0x3F800000, 0x40000000, 0))
	assert.Equal(t, [3]float32{1, 2, 0}, f.Array())
	assert.Equal(t, [3]float32{1, 0.5, float32(math.Inf(1))}, f.Recip().Array())
}
