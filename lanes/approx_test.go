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

// sweep32 returns positive float32 values spread over many binades.
func sweep32(n int) []float32 {
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Ldexp(1+rng.Float64(), rng.IntN(160)-80))
	}
	return out
}

func sweep64(n int) []float64 {
	rng := rand.New(rand.NewPCG(3, 4))
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Ldexp(1+rng.Float64(), rng.IntN(1000)-500)
	}
	return out
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestApproxRSqrtFloat32(t *testing.T) {
	const tol = 0x1p-22
	xs := sweep32(4096)
	for i := 0; i < len(xs); i += 4 {
		got := LoadFloat32x4[Approx](xs[i:]).RSqrt().Array()
		for j, g := range got {
			want := 1 / math.Sqrt(float64(xs[i+j]))
			require.LessOrEqual(t, relErr(float64(g), want), tol, "rsqrt(%g) = %g", xs[i+j], g)
		}
	}
}

func TestApproxRecipFloat32(t *testing.T) {
	const tol = 0x1p-22
	xs := sweep32(4096)
	for i := 0; i < len(xs); i += 2 {
		got := LoadFloat32x2[Approx](xs[i:]).Recip().Array()
		for j, g := range got {
			want := 1 / float64(xs[i+j])
			require.LessOrEqual(t, relErr(float64(g), want), tol, "recip(%g) = %g", xs[i+j], g)
		}
	}
}

func TestApproxRSqrtFloat64(t *testing.T) {
	const tol = 0x1p-50
	xs := sweep64(4096)
	for i := 0; i < len(xs); i += 4 {
		got := LoadFloat64x4[Approx](xs[i:]).RSqrt().Array()
		for j, g := range got {
			want := 1 / math.Sqrt(xs[i+j])
			require.LessOrEqual(t, relErr(g, want), tol, "rsqrt(%g) = %g", xs[i+j], g)
		}
	}
}

func TestApproxRecipFloat64(t *testing.T) {
	const tol = 0x1p-50
	xs := sweep64(4096)
	for i := 0; i < len(xs); i += 3 {
		if i+3 > len(xs) {
			break
		}
		got := LoadFloat64x3[Approx](xs[i:]).Recip().Array()
		for j, g := range got {
			want := 1 / xs[i+j]
			require.LessOrEqual(t, relErr(g, want), tol, "recip(%g) = %g", xs[i+j], g)
		}
	}
}

func TestApproxSpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	v := NewFloat32x4[Approx](0, float32(math.Copysign(0, -1)), inf, 4)

	r := v.RSqrt().Array()
	assert.Equal(t, [4]float32{inf, -inf, 0, 0.5}, r)

	q := v.Recip().Array()
	assert.Equal(t, [4]float32{inf, -inf, 0, 0.25}, q)

	nan := NewFloat32x4[Approx](float32(math.NaN()), -1, -inf, 1).RSqrt().Array()
	assert.True(t, math.IsNaN(float64(nan[0])))
	assert.True(t, math.IsNaN(float64(nan[1])))
	assert.True(t, math.IsNaN(float64(nan[2])))
	assert.Equal(t, float32(1), nan[3])

	d := NewFloat64x2[Approx](0, math.Inf(-1)).RSqrt().Array()
	assert.Equal(t, math.Inf(1), d[0])
	assert.True(t, math.IsNaN(d[1]))
}

func TestExactMatchesScalar(t *testing.T) {
	xs := sweep64(64)
	for i := 0; i < len(xs); i += 2 {
		v := LoadFloat64x2[Exact](xs[i:])
		got := v.RSqrt().Array()
		div := BroadcastFloat64x2[Exact](1).Div(v).Array()
		for j := range got {
			assert.Equal(t, 1/math.Sqrt(xs[i+j]), got[j])
			assert.Equal(t, 1/xs[i+j], div[j])
		}
	}
}

func TestApproxDiv(t *testing.T) {
	a := NewFloat32x4[Approx](1, 10, -3, 7)
	b := NewFloat32x4[Approx](3, 4, 8, -2)
	got := a.Div(b).Array()
	want := [4]float32{1.0 / 3, 2.5, -0.375, -3.5}
	for i := range got {
		assert.InEpsilon(t, want[i], got[i], 0x1p-21)
	}
	assert.Equal(t, want, a.Exact().Div(b.Exact()).Array())
}

func TestPrecisionSwitch(t *testing.T) {
	v := NewFloat32x3[Exact](2, 8, 0.5)
	a := v.Approx()
	require.Equal(t, v.Array(), a.Array())
	require.Equal(t, v.Array(), a.Exact().Array())
	require.True(t, approximate[Approx]())
	require.False(t, approximate[Exact]())
}

func BenchmarkRSqrt(b *testing.B) {
	xs := sweep32(1024)
	dst := make([]float32, 4)
	b.Run("Exact", func(b *testing.B) {
		for b.Loop() {
			for i := 0; i < len(xs); i += 4 {
				LoadFloat32x4[Exact](xs[i:]).RSqrt().Store(dst)
			}
		}
	})
	b.Run("Approx", func(b *testing.B) {
		for b.Loop() {
			for i := 0; i < len(xs); i += 4 {
				LoadFloat32x4[Approx](xs[i:]).RSqrt().Store(dst)
			}
		}
	})
}
