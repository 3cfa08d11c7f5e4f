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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTotal(t *testing.T) {
	for _, k := range Kinds {
		for lanes := 2; lanes <= 4; lanes++ {
			b, ok := Lookup(k, lanes)
			require.True(t, ok, "%s x%d", k, lanes)
			assert.Equal(t, k, b.Kind)
			assert.Equal(t, lanes, b.Lanes)
			assert.NotEmpty(t, b.Register)
		}
	}
	for _, lanes := range []int{0, 1, 5, 8} {
		_, ok := Lookup(Float32, lanes)
		assert.False(t, ok, "x%d", lanes)
	}
	_, ok := Lookup(Kind(42), 4)
	assert.False(t, ok)
}

func TestLookupLayouts(t *testing.T) {
	tests := []struct {
		kind     Kind
		lanes    int
		layout   Layout
		register string
		bits     int
		backing  int
	}{
		{Float32, 2, Register, "Float32x2", 64, 2},
		{Float32, 3, Padded, "Float32x4", 128, 4},
		{Float32, 4, Register, "Float32x4", 128, 4},
		{Int32, 2, Register, "Int32x2", 64, 2},
		{Uint32, 4, Register, "Uint32x4", 128, 4},
		{Float64, 2, Register, "Float64x2", 128, 2},
		{Float64, 3, Padded, "Float64x2", 128, 4},
		{Float64, 4, RegisterPair, "Float64x2", 128, 4},
		{Uint64, 4, RegisterPair, "Uint64x2", 128, 4},
		{Int64, 2, Register, "Int64x2", 128, 2},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b, ok := Lookup(tt.kind, tt.lanes)
			require.True(t, ok)
			assert.Equal(t, tt.layout, b.Layout)
			assert.Equal(t, tt.register, b.Register)
			assert.Equal(t, tt.bits, b.RegisterBits)
			assert.Equal(t, tt.backing, b.Backing)
			assert.Equal(t, tt.layout == Register, b.Native())
		})
	}
}

func TestBindings(t *testing.T) {
	all := Bindings()
	require.Len(t, all, 18)
	seen := map[string]bool{}
	for _, b := range all {
		assert.False(t, seen[b.Name()], "duplicate %s", b.Name())
		seen[b.Name()] = true
	}
	assert.Equal(t, "Float32x2", all[0].Name())
	assert.Equal(t, "Uint64x4", all[17].Name())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Uint32", Uint32.Title())
	assert.Equal(t, 64, Int64.Bits())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int32.IsFloat())
	assert.True(t, Float32.IsSigned())
	assert.False(t, Uint64.IsSigned())
}

func TestTarget(t *testing.T) {
	switch Target() {
	case "neon", "sse4", "generic":
	default:
		t.Fatalf("unexpected target %q", Target())
	}
	assert.Equal(t, CurrentISA().String(), Target())
	if CurrentISA() == ISANEON {
		assert.True(t, HasFMA())
	}
}
