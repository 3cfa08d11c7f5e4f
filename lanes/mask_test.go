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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskFromBools(t *testing.T) {
	b := [4]bool{true, false, false, true}
	m := Mask32x4FromBools(b)
	assert.Equal(t, b, m.Bools())
	assert.Equal(t, b, Mask64x4FromBools(b).Bools())
	assert.Equal(t, 2, m.CountTrue())
	assert.Equal(t, 0, m.FindFirstTrue())
	assert.False(t, m.AllTrue())
	assert.True(t, m.AnyTrue())

	none := Mask64x2FromBools([2]bool{})
	assert.False(t, none.AnyTrue())
	assert.Equal(t, -1, none.FindFirstTrue())
	assert.True(t, none.Not().AllTrue())

	two := Mask32x2FromBools([2]bool{false, true})
	assert.Equal(t, 1, two.FindFirstTrue())
	assert.Equal(t, [2]bool{true, true}, two.Or(two.Not()).Bools())
}

func TestMaskAlgebra(t *testing.T) {
	a := Mask32x4FromBools([4]bool{true, true, false, false})
	b := Mask32x4FromBools([4]bool{true, false, true, false})
	assert.Equal(t, [4]bool{true, false, false, false}, a.And(b).Bools())
	assert.Equal(t, [4]bool{true, true, true, false}, a.Or(b).Bools())
	assert.Equal(t, [4]bool{false, true, true, false}, a.Xor(b).Bools())
	assert.Equal(t, [4]bool{false, true, false, false}, a.AndNot(b).Bools())
	assert.Equal(t, [4]bool{false, false, true, true}, a.Not().Bools())
	assert.Equal(t, [4]bool{true, false, false, true}, a.Equal(b).Bools())

	c := Mask64x4FromBools([4]bool{true, true, false, false})
	d := Mask64x4FromBools([4]bool{true, false, true, false})
	assert.Equal(t, a.Xor(b).Bools(), c.Xor(d).Bools())
	assert.Equal(t, a.AndNot(b).Bools(), c.AndNot(d).Bools())
	assert.Equal(t, a.Equal(b).Bools(), c.Equal(d).Bools())
}

func TestThreeLaneMasksIgnorePadding(t *testing.T) {
	m := Mask32x3FromBools([3]bool{true, true, true})
	assert.True(t, m.AllTrue())
	assert.Equal(t, 3, m.CountTrue())

	// Not sets the padding lane; it must stay invisible.
	n := m.Not()
	assert.False(t, n.AnyTrue())
	assert.Equal(t, 0, n.CountTrue())
	assert.Equal(t, -1, n.FindFirstTrue())

	w := Mask64x3FromBools([3]bool{false, false, true})
	assert.Equal(t, 2, w.FindFirstTrue())
	assert.Equal(t, 2, w.Not().CountTrue())
	assert.Equal(t, [3]bool{true, true, false}, w.Not().Bools())
	assert.Equal(t, [3]bool{false, false, true}, w.Or(w).And(w).Bools())

	// Comparing zeros also sets the padding lane.
	z := ZeroFloat64x3[Exact]().Equal(ZeroFloat64x3[Exact]())
	assert.Equal(t, 3, z.CountTrue())
}

func TestIfThenElse(t *testing.T) {
	mask := Mask32x4FromBools([4]bool{true, false, true, false})
	got := IfThenElse(mask, NewInt32x4(1, 2, 3, 4), NewInt32x4(-1, -2, -3, -4))
	assert.Equal(t, [4]int32{1, -2, 3, -4}, got.Array())

	f := IfThenElse(Mask64x4FromBools([4]bool{false, true, true, false}),
		NewFloat64x4[Exact](1, 2, 3, 4), NewFloat64x4[Exact](5, 6, 7, 8))
	assert.Equal(t, [4]float64{5, 2, 3, 8}, f.Array())

	p := IfThenElse(Mask64x3FromBools([3]bool{true, false, false}),
		NewUint64x3(1, 2, 3), NewUint64x3(4, 5, 6))
	assert.Equal(t, [3]uint64{1, 5, 6}, p.Array())

	q := IfThenElse(Mask32x2FromBools([2]bool{false, true}),
		NewFloat32x2[Approx](1, 2), NewFloat32x2[Approx](3, 4))
	assert.Equal(t, [2]float32{3, 2}, q.Array())
}

// TestMinMaxMatchSelect checks that Min and Max agree with a comparison
// followed by IfThenElse, NaN lanes included.
func TestMinMaxMatchSelect(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	value := func() float32 {
		if rng.IntN(8) == 0 {
			return float32(math.NaN())
		}
		return float32(rng.NormFloat64())
	}
	sameBits := func(a, b [4]float32) bool {
		for i := range a {
			if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
				return false
			}
		}
		return true
	}
	for range 1000 {
		a := NewFloat32x4[Exact](value(), value(), value(), value())
		b := NewFloat32x4[Exact](value(), value(), value(), value())
		require.True(t, sameBits(IfThenElse(a.Less(b), a, b).Array(), a.Min(b).Array()))
		require.True(t, sameBits(IfThenElse(a.Greater(b), a, b).Array(), a.Max(b).Array()))
	}

	for range 1000 {
		a := NewInt64x3(rng.Int64N(10), rng.Int64N(10), rng.Int64N(10))
		b := NewInt64x3(rng.Int64N(10), rng.Int64N(10), rng.Int64N(10))
		require.Equal(t, IfThenElse(a.Less(b), a, b).Array(), a.Min(b).Array())
		require.Equal(t, IfThenElse(a.Greater(b), a, b).Array(), a.Max(b).Array())
	}
}

func TestMaskBitCasts(t *testing.T) {
	m := BitCastToMask32x4(NewInt32x4(0, 1, -1, 0))
	assert.Equal(t, [4]bool{false, true, true, false}, m.Bools())
	assert.Equal(t, [4]int32{0, -1, -1, 0}, BitCastToInt32x4(m).Array())

	f := BitCastToMask64x2(NewFloat64x2[Exact](0, math.Copysign(0, -1)))
	assert.Equal(t, [2]bool{false, true}, f.Bools())

	p := BitCastToMask64x3(NewUint64x3(5, 0, 1))
	assert.Equal(t, [3]bool{true, false, true}, p.Bools())
	assert.Equal(t, [3]uint64{math.MaxUint64, 0, math.MaxUint64}, BitCastToUint64x3(p).Array())

	bits := BitCastToUint32x4(NewFloat32x4[Exact](1, 2, 3, 4).Equal(NewFloat32x4[Exact](1, 0, 3, 0)))
	assert.Equal(t, [4]uint32{math.MaxUint32, 0, math.MaxUint32, 0}, bits.Array())
}

func TestMaskLaneWidthCasts(t *testing.T) {
	// A comparison of float32 lanes selects float64 lanes.
	a := NewFloat32x4[Exact](1, 5, -2, 8)
	b := NewFloat32x4[Exact](2, 4, -2, 9)
	wide := BitCastToMask64x4(a.Less(b))
	assert.Equal(t, [4]bool{true, false, false, true}, wide.Bools())
	got := IfThenElse(wide, NewFloat64x4[Exact](10, 20, 30, 40), NewFloat64x4[Exact](-10, -20, -30, -40))
	assert.Equal(t, [4]float64{10, -20, -30, 40}, got.Array())
	assert.Equal(t, [4]int64{-1, 0, 0, -1}, BitCastToInt64x4(wide).Array())

	narrow := BitCastToMask32x4(NewInt64x4(3, 4, 4, 0).Equal(NewInt64x4(3, 0, 4, 1)))
	assert.Equal(t, [4]bool{true, false, true, false}, narrow.Bools())
	assert.Equal(t, [4]uint32{math.MaxUint32, 0, math.MaxUint32, 0}, BitCastToUint32x4(narrow).Array())

	for _, bs := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
		assert.Equal(t, bs, BitCastToMask64x2(Mask32x2FromBools(bs)).Bools())
		assert.Equal(t, bs, BitCastToMask32x2(Mask64x2FromBools(bs)).Bools())
	}

	three := [3]bool{false, true, true}
	m64 := BitCastToMask64x3(Mask32x3FromBools(three))
	assert.Equal(t, three, m64.Bools())
	assert.Equal(t, three, BitCastToMask32x3(m64).Bools())
	// The padding lane set by Not stays unobserved after resizing.
	assert.Equal(t, 1, BitCastToMask64x3(Mask32x3FromBools(three).Not()).CountTrue())

	sel := BitCastToMask64x3(NewUint32x3(1, 2, 3).Greater(NewUint32x3(2, 2, 2)))
	p := IfThenElse(sel, NewInt64x3(1, 2, 3), NewInt64x3(-1, -2, -3))
	assert.Equal(t, [3]int64{-1, -2, 3}, p.Array())
}
