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

// floatReg is the subset of a native float register used by the
// Newton-Raphson refinements. M is the mask register of R.
type floatReg[R, M any] interface {
	Mul(R) R
	Sub(R) R
	Equal(R) M
	Merge(R, M) R
	RecipEstimate() R
	RecipStep(R) R
	RSqrtEstimate() R
	RSqrtStep(R) R
}

type maskReg[M any] interface {
	And(M) M
}

// recipNewton refines the reciprocal estimate of x with the iteration
// r' = r * (2 - x*r).
func recipNewton[R floatReg[R, M], M maskReg[M]](x R, steps int) R {
	r := x.RecipEstimate()
	for range steps {
		r = r.Mul(x.RecipStep(r))
	}
	return r
}

// rsqrtNewton refines the reciprocal square root estimate of x with the
// iteration r' = r * (3 - x*r*r) / 2.
//
// Lanes whose estimate is not finite (x is zero, negative, infinite or NaN)
// and lanes where the iteration produced NaN keep the estimate, so that
// rsqrt(±0) is ±Inf and rsqrt(+Inf) is 0.
func rsqrtNewton[R floatReg[R, M], M maskReg[M]](x R, steps int) R {
	e := x.RSqrtEstimate()
	r := e
	for range steps {
		r = r.Mul(x.Mul(r).RSqrtStep(r))
	}
	d := e.Sub(e) // NaN exactly where e is not finite
	ok := d.Equal(d).And(r.Equal(r))
	return r.Merge(e, ok)
}
