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

import "math"

// The estimate instructions return about 8 significant bits. They are
// modelled by computing the exact result and truncating the fraction to its
// top 8 bits, which keeps the relative error below 2^-8 as the hardware
// guarantees.
const (
	estimateMask32 = 1<<15 - 1
	estimateMask64 = 1<<44 - 1

	defaultNaN32 = 0x7FC00000
	defaultNaN64 = 0x7FF8000000000000
)

func recipEstimate32(x float32) float32 {
	switch {
	case x != x:
		return x
	case x == 0:
		return float32(math.Copysign(math.Inf(1), float64(x)))
	}
	r := float32(1 / float64(x))
	return math.Float32frombits(math.Float32bits(r) &^ estimateMask32)
}

func rsqrtEstimate32(x float32) float32 {
	switch {
	case x != x:
		return x
	case x == 0:
		return float32(math.Copysign(math.Inf(1), float64(x)))
	case x < 0:
		return math.Float32frombits(defaultNaN32)
	}
	r := float32(1 / math.Sqrt(float64(x)))
	return math.Float32frombits(math.Float32bits(r) &^ estimateMask32)
}

func recipEstimate64(x float64) float64 {
	switch {
	case x != x:
		return x
	case x == 0:
		return math.Copysign(math.Inf(1), x)
	}
	return math.Float64frombits(math.Float64bits(1/x) &^ estimateMask64)
}

func rsqrtEstimate64(x float64) float64 {
	switch {
	case x != x:
		return x
	case x == 0:
		return math.Copysign(math.Inf(1), x)
	case x < 0:
		return math.Float64frombits(defaultNaN64)
	}
	return math.Float64frombits(math.Float64bits(1/math.Sqrt(x)) &^ estimateMask64)
}

// zeroTimesInf reports whether a*b is 0*Inf in either order. The step
// instructions return a fixed value in that case so that Newton iterations
// starting from an infinite estimate stay finite.
func zeroTimesInf(a, b float64) bool {
	return (a == 0 && math.IsInf(b, 0)) || (math.IsInf(a, 0) && b == 0)
}

func recipStep32(a, b float32) float32 {
	if zeroTimesInf(float64(a), float64(b)) {
		return 2
	}
	return fma32(-a, b, 2)
}

func rsqrtStep32(a, b float32) float32 {
	if zeroTimesInf(float64(a), float64(b)) {
		return 1.5
	}
	return fma32(-a, b, 3) / 2
}

func recipStep64(a, b float64) float64 {
	if zeroTimesInf(a, b) {
		return 2
	}
	return math.FMA(-a, b, 2)
}

func rsqrtStep64(a, b float64) float64 {
	if zeroTimesInf(a, b) {
		return 1.5
	}
	return math.FMA(-a, b, 3) / 2
}
