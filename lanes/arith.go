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

import "fmt"

type integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

type number interface {
	integer | ~float32 | ~float64
}

// lanewise applies f to the first n lane pairs of a and b. It is the
// fallback for operations with no vector instruction.
func lanewise[R any, PR interface {
	*R
	Get(int) T
	Set(int, T)
}, T any](a, b R, n int, f func(x, y T) T) R {
	var out R
	pa, pb, po := PR(&a), PR(&b), PR(&out)
	for i := range n {
		po.Set(i, f(pa.Get(i), pb.Get(i)))
	}
	return out
}

func scalarMul[T integer](x, y T) T {
	return x * y
}

// scalarDiv truncates toward zero. Division by zero yields 0, as the
// AArch64 SDIV and UDIV instructions do, and MinInt / -1 wraps to MinInt.
func scalarDiv[T integer](x, y T) T {
	if y == 0 {
		return 0
	}
	return x / y
}

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

func checkLane(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("lanes: lane index %d out of range [0, %d)", i, n))
	}
}
