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
)

func TestRecipEstimateFloat32x4(t *testing.T) {
	in := [4]float32{1, 3, -0.1, 12345.678}
	est := LoadFloat32x4(in[:]).RecipEstimate()
	for i, x := range in {
		got := est.Get(i)
		want := 1 / float64(x)
		assert.LessOrEqual(t, math.Abs(float64(got)-want)/math.Abs(want), 1.0/256, "lane %d", i)
		// Only the top 8 fraction bits survive.
		assert.Zero(t, math.Float32bits(got)&estimateMask32, "lane %d", i)
	}
}

func TestEstimateSpecialCases(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	v := Float32x4{}
	v.Set(0, 0)
	v.Set(1, float32(math.Copysign(0, -1)))
	v.Set(2, inf)
	v.Set(3, nan)

	r := v.RecipEstimate()
	assert.True(t, math.IsInf(float64(r.Get(0)), 1))
	assert.True(t, math.IsInf(float64(r.Get(1)), -1))
	assert.Equal(t, float32(0), r.Get(2))
	assert.True(t, r.Get(3) != r.Get(3))

	s := v.RSqrtEstimate()
	assert.True(t, math.IsInf(float64(s.Get(0)), 1))
	assert.True(t, math.IsInf(float64(s.Get(1)), -1))
	assert.Equal(t, float32(0), s.Get(2))
	assert.True(t, s.Get(3) != s.Get(3))

	neg := BroadcastFloat32x4(-4).RSqrtEstimate()
	assert.Equal(t, uint32(defaultNaN32), math.Float32bits(neg.Get(0)))
	neg64 := BroadcastFloat64x2(-4).RSqrtEstimate()
	assert.Equal(t, uint64(defaultNaN64), math.Float64bits(neg64.Get(1)))
}

func TestStepZeroTimesInf(t *testing.T) {
	zero := ZeroFloat32x4()
	inf := BroadcastFloat32x4(float32(math.Inf(1)))
	assert.Equal(t, float32(2), zero.RecipStep(inf).Get(0))
	assert.Equal(t, float32(2), inf.RecipStep(zero).Get(1))
	assert.Equal(t, float32(1.5), zero.RSqrtStep(inf).Get(2))
	assert.Equal(t, float32(1.5), inf.RSqrtStep(zero).Get(3))

	zero64 := ZeroFloat64x2()
	inf64 := BroadcastFloat64x2(math.Inf(-1))
	assert.Equal(t, 2.0, zero64.RecipStep(inf64).Get(0))
	assert.Equal(t, 1.5, inf64.RSqrtStep(zero64).Get(1))
}

func TestSteps(t *testing.T) {
	a := BroadcastFloat64x2(3)
	b := BroadcastFloat64x2(0.25)
	assert.Equal(t, 1.25, a.RecipStep(b).Get(0))
	assert.Equal(t, 1.125, a.RSqrtStep(b).Get(0))
}

func TestRSqrtEstimateFloat64x2(t *testing.T) {
	in := [2]float64{2, 1e-300}
	est := LoadFloat64x2(in[:]).RSqrtEstimate()
	for i, x := range in {
		want := 1 / math.Sqrt(x)
		got := est.Get(i)
		assert.LessOrEqual(t, math.Abs(got-want)/want, 1.0/256, "lane %d", i)
		assert.Zero(t, math.Float64bits(got)&estimateMask64, "lane %d", i)
	}
}
