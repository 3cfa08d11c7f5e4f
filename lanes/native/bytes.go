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

// Uint8x16 is a 128-bit register of 16 byte lanes. Any 128-bit register
// converts to it, which is how byte table lookups apply to other lane kinds.
type Uint8x16 [16]byte

// Uint8x8 is a 64-bit register of 8 byte lanes.
type Uint8x8 [8]byte

// LoadUint8x16 reads 16 bytes from s.
func LoadUint8x16(s []uint8) Uint8x16 {
	return load[Uint8x16](s)
}

// LoadUint8x8 reads 8 bytes from s.
func LoadUint8x8(s []uint8) Uint8x8 {
	return load[Uint8x8](s)
}

// TableLookupBytes returns the bytes of v selected by idx. Indices of 16 or
// more select zero.
func (v Uint8x16) TableLookupBytes(idx Uint8x16) Uint8x16 {
	var out Uint8x16
	for i, k := range idx {
		if k < 16 {
			out[i] = v[k]
		}
	}
	return out
}

// TableLookupBytes2 looks up idx in the 32-byte table t0:t1. Indices of 32
// or more select zero.
func TableLookupBytes2(t0, t1, idx Uint8x16) Uint8x16 {
	var out Uint8x16
	for i, k := range idx {
		switch {
		case k < 16:
			out[i] = t0[k]
		case k < 32:
			out[i] = t1[k-16]
		}
	}
	return out
}

// TableLookupBytes returns the bytes of v selected by idx. Indices of 8 or
// more select zero.
func (v Uint8x8) TableLookupBytes(idx Uint8x8) Uint8x8 {
	var out Uint8x8
	for i, k := range idx {
		if k < 8 {
			out[i] = v[k]
		}
	}
	return out
}
