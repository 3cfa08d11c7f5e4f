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

// Precision selects how float vectors divide and take reciprocals.
type Precision interface {
	Exact | Approx
	approximate() bool
}

// Exact vectors use the exact division and square root instructions.
type Exact struct{}

// Approx vectors compute reciprocals and reciprocal square roots from the
// hardware estimates refined with Newton-Raphson steps: 2 steps for 32-bit
// lanes and 3 for 64-bit lanes. Division multiplies by the reciprocal.
type Approx struct{}

func (Exact) approximate() bool  { return false }
func (Approx) approximate() bool { return true }

func approximate[P Precision]() bool {
	var p P
	return p.approximate()
}
