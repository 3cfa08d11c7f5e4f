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

// Masks hold one boolean per lane as a lane with all bits set (true) or
// clear (false). They are produced by comparisons and consumed by
// IfThenElse, and convert to and from vectors only with the BitCastTo
// constructors. BitCastTo also moves a mask between 32-bit and 64-bit lanes
// of the same lane count, so a comparison of Float32x4 values can select
// Float64x4 values. The mask types are generated into z_mask*.go.

// blender is implemented by the vectors selected by masks of type M.
type blender[M, V any] interface {
	blend(mask M, no V) V
}

// IfThenElse returns yes in the lanes where mask is set and no elsewhere.
func IfThenElse[M any, V blender[M, V]](mask M, yes, no V) V {
	return yes.blend(mask, no)
}

// lane returns all bits set for true and clear for false.
func lane[T ~int32 | ~int64](b bool) T {
	if b {
		return -1
	}
	return 0
}

func allTrue(b []bool) bool {
	for _, x := range b {
		if !x {
			return false
		}
	}
	return true
}

func anyTrue(b []bool) bool {
	for _, x := range b {
		if x {
			return true
		}
	}
	return false
}

func countTrue(b []bool) int {
	n := 0
	for _, x := range b {
		if x {
			n++
		}
	}
	return n
}

func findFirstTrue(b []bool) int {
	for i, x := range b {
		if x {
			return i
		}
	}
	return -1
}
