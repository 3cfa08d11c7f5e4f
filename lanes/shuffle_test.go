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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type permutable2[V any] interface {
	permute2(idx [2]uint8) V
	permuteGeneral2(idx [2]uint8) V
}

type permutable3[V any] interface {
	permute3(idx [3]uint8) V
	permuteGeneral3(idx [3]uint8) V
}

type permutable4[V any] interface {
	permute4(idx [4]uint8) V
	permuteGeneral4(idx [4]uint8) V
}

// checkPermute4 compares the dedicated and the table lookup paths with the
// reference permutation for all 256 patterns.
func checkPermute4[V permutable4[V], T comparable](t *testing.T, v V, array func(V) [4]T) {
	t.Helper()
	in := array(v)
	for p := range 256 {
		idx := [4]uint8{uint8(p & 3), uint8(p >> 2 & 3), uint8(p >> 4 & 3), uint8(p >> 6 & 3)}
		var want [4]T
		for i, k := range idx {
			want[i] = in[k]
		}
		require.Equal(t, want, array(v.permute4(idx)), "permute4(%v)", idx)
		require.Equal(t, want, array(v.permuteGeneral4(idx)), "permuteGeneral4(%v)", idx)
	}
}

func checkPermute3[V permutable3[V], T comparable](t *testing.T, v V, array func(V) [3]T) {
	t.Helper()
	in := array(v)
	for p := range 27 {
		idx := [3]uint8{uint8(p % 3), uint8(p / 3 % 3), uint8(p / 9)}
		want := [3]T{in[idx[0]], in[idx[1]], in[idx[2]]}
		require.Equal(t, want, array(v.permute3(idx)), "permute3(%v)", idx)
		require.Equal(t, want, array(v.permuteGeneral3(idx)), "permuteGeneral3(%v)", idx)
	}
}

func checkPermute2[V permutable2[V], T comparable](t *testing.T, v V, array func(V) [2]T) {
	t.Helper()
	in := array(v)
	for p := range 4 {
		idx := [2]uint8{uint8(p & 1), uint8(p >> 1)}
		want := [2]T{in[idx[0]], in[idx[1]]}
		require.Equal(t, want, array(v.permute2(idx)), "permute2(%v)", idx)
		require.Equal(t, want, array(v.permuteGeneral2(idx)), "permuteGeneral2(%v)", idx)
	}
}

func TestPermuteFastMatchesGeneral(t *testing.T) {
	t.Run("Float32x4", func(t *testing.T) {
		checkPermute4(t, NewFloat32x4[Exact](1.5, -2, 3.25, 4e10), Float32x4[Exact].Array)
	})
	t.Run("Float64x4", func(t *testing.T) {
		checkPermute4(t, NewFloat64x4[Approx](1.5, -2, 3.25, 4e100), Float64x4[Approx].Array)
	})
	t.Run("Int32x4", func(t *testing.T) {
		checkPermute4(t, NewInt32x4(-1, 2, -3, 1<<30), Int32x4.Array)
	})
	t.Run("Uint32x4", func(t *testing.T) {
		checkPermute4(t, NewUint32x4(0xDEADBEEF, 2, 3, 4), Uint32x4.Array)
	})
	t.Run("Int64x4", func(t *testing.T) {
		checkPermute4(t, NewInt64x4(-1, 1<<40, -3, 4), Int64x4.Array)
	})
	t.Run("Uint64x4", func(t *testing.T) {
		checkPermute4(t, NewUint64x4(1, 2, 1<<63, 0x0102030405060708), Uint64x4.Array)
	})
	t.Run("Float32x3", func(t *testing.T) {
		checkPermute3(t, NewFloat32x3[Exact](7, 8, 9), Float32x3[Exact].Array)
	})
	t.Run("Float64x3", func(t *testing.T) {
		checkPermute3(t, NewFloat64x3[Exact](7, 8, 9), Float64x3[Exact].Array)
	})
	t.Run("Int32x3", func(t *testing.T) {
		checkPermute3(t, NewInt32x3(-7, 8, 9), Int32x3.Array)
	})
	t.Run("Uint32x3", func(t *testing.T) {
		checkPermute3(t, NewUint32x3(7, 8, 9), Uint32x3.Array)
	})
	t.Run("Int64x3", func(t *testing.T) {
		checkPermute3(t, NewInt64x3(7, -8, 9), Int64x3.Array)
	})
	t.Run("Uint64x3", func(t *testing.T) {
		checkPermute3(t, NewUint64x3(7, 8, 9), Uint64x3.Array)
	})
	t.Run("Float32x2", func(t *testing.T) {
		checkPermute2(t, NewFloat32x2[Exact](1, 2), Float32x2[Exact].Array)
	})
	t.Run("Float64x2", func(t *testing.T) {
		checkPermute2(t, NewFloat64x2[Exact](1, 2), Float64x2[Exact].Array)
	})
	t.Run("Int32x2", func(t *testing.T) {
		checkPermute2(t, NewInt32x2(1, -2), Int32x2.Array)
	})
	t.Run("Uint32x2", func(t *testing.T) {
		checkPermute2(t, NewUint32x2(1, 2), Uint32x2.Array)
	})
	t.Run("Int64x2", func(t *testing.T) {
		checkPermute2(t, NewInt64x2(1, -2), Int64x2.Array)
	})
	t.Run("Uint64x2", func(t *testing.T) {
		checkPermute2(t, NewUint64x2(1, 2), Uint64x2.Array)
	})
}

func TestShuffle(t *testing.T) {
	v := NewInt32x4(10, 11, 12, 13)
	tests := []struct {
		name string
		got  Int32x4
		want [4]int32
	}{
		{"Identity4", Shuffle4[Identity4](v), [4]int32{10, 11, 12, 13}},
		{"Reverse4", Shuffle4[Reverse4](v), [4]int32{13, 12, 11, 10}},
		{"ReversePairs4", Shuffle4[ReversePairs4](v), [4]int32{11, 10, 13, 12}},
		{"RotateDown4", Shuffle4[RotateDown4](v), [4]int32{11, 12, 13, 10}},
		{"RotateUp4", Shuffle4[RotateUp4](v), [4]int32{13, 10, 11, 12}},
		{"InterleaveLower4", Shuffle4[InterleaveLower4](v), [4]int32{10, 10, 11, 11}},
		{"InterleaveUpper4", Shuffle4[InterleaveUpper4](v), [4]int32{12, 12, 13, 13}},
		{"DeinterleaveEven4", Shuffle4[DeinterleaveEven4](v), [4]int32{10, 12, 10, 12}},
		{"DeinterleaveOdd4", Shuffle4[DeinterleaveOdd4](v), [4]int32{11, 13, 11, 13}},
		{"Broadcast4", Shuffle4[Broadcast4[L2]](v), [4]int32{12, 12, 12, 12}},
		{"General", Shuffle4[Perm4[L2, L0, L3, L3]](v), [4]int32{12, 10, 13, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got.Array())
		})
	}

	w := NewFloat64x3[Exact](1, 2, 3)
	require.Equal(t, [3]float64{3, 2, 1}, Shuffle3[Reverse3](w).Array())
	require.Equal(t, [3]float64{2, 2, 2}, Shuffle3[Broadcast3[L1]](w).Array())
	require.Equal(t, [2]uint64{2, 1}, Shuffle2[Swap2](NewUint64x2(1, 2)).Array())
	require.Equal(t, [4]float64{4, 1, 2, 3}, Shuffle4[RotateUp4](NewFloat64x4[Exact](1, 2, 3, 4)).Array())
}

func TestNamedPatternsUseDedicatedInstructions(t *testing.T) {
	patterns := map[string][4]uint8{
		"Identity4":         Identity4{}.indices(),
		"Reverse4":          Reverse4{}.indices(),
		"ReversePairs4":     ReversePairs4{}.indices(),
		"RotateDown4":       RotateDown4{}.indices(),
		"RotateUp4":         RotateUp4{}.indices(),
		"InterleaveLower4":  InterleaveLower4{}.indices(),
		"InterleaveUpper4":  InterleaveUpper4{}.indices(),
		"DeinterleaveEven4": DeinterleaveEven4{}.indices(),
		"DeinterleaveOdd4":  DeinterleaveOdd4{}.indices(),
		"Broadcast4":        Broadcast4[L3]{}.indices(),
	}
	for name, idx := range patterns {
		_, ok := classify4(idx)
		require.True(t, ok, name)
	}
	_, ok := classify4([4]uint8{2, 0, 3, 3})
	require.False(t, ok)
}

func TestComplete3(t *testing.T) {
	tests := []struct {
		idx  [3]uint8
		want [4]uint8
	}{
		{[3]uint8{0, 1, 2}, [4]uint8{0, 1, 2, 3}},
		{[3]uint8{0, 0, 1}, [4]uint8{0, 0, 1, 1}},
		{[3]uint8{1, 1, 1}, [4]uint8{1, 1, 1, 1}},
		{[3]uint8{1, 2, 0}, [4]uint8{1, 2, 0, 3}},
		{[3]uint8{2, 1, 0}, [4]uint8{2, 1, 0, 3}},
		{[3]uint8{0, 2, 0}, [4]uint8{0, 2, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.idx), func(t *testing.T) {
			require.Equal(t, tt.want, complete3(tt.idx))
		})
	}
}

func BenchmarkShuffle4(b *testing.B) {
	v := NewFloat32x4[Exact](1, 2, 3, 4)
	b.Run("Reverse", func(b *testing.B) {
		for b.Loop() {
			v = Shuffle4[Reverse4](v)
		}
	})
	b.Run("General", func(b *testing.B) {
		for b.Loop() {
			v = Shuffle4[Perm4[L2, L0, L3, L3]](v)
		}
	})
}
