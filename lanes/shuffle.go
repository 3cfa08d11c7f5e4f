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

import "github.com/ajroetker/go-lanes/lanes/native"

// L0, L1, L2 and L3 name the lanes of a vector in a permutation pattern.
type (
	L0 struct{}
	L1 struct{}
	L2 struct{}
	L3 struct{}
)

func (L0) lane() uint8 { return 0 }
func (L1) lane() uint8 { return 1 }
func (L2) lane() uint8 { return 2 }
func (L3) lane() uint8 { return 3 }

// Index2 is a lane of a 2-lane vector.
type Index2 interface {
	L0 | L1
	lane() uint8
}

// Index3 is a lane of a 3-lane vector.
type Index3 interface {
	L0 | L1 | L2
	lane() uint8
}

// Index4 is a lane of a 4-lane vector.
type Index4 interface {
	L0 | L1 | L2 | L3
	lane() uint8
}

// Perm2 is the pattern whose output lane 0 is input lane A and output lane
// 1 is input lane B.
type Perm2[A, B Index2] struct{}

// Perm3 is the pattern whose output lanes 0-2 are input lanes A, B and C.
type Perm3[A, B, C Index3] struct{}

// Perm4 is the pattern whose output lanes 0-3 are input lanes A, B, C and D.
type Perm4[A, B, C, D Index4] struct{}

func (Perm2[A, B]) indices() [2]uint8 {
	var a A
	var b B
	return [2]uint8{a.lane(), b.lane()}
}

func (Perm3[A, B, C]) indices() [3]uint8 {
	var a A
	var b B
	var c C
	return [3]uint8{a.lane(), b.lane(), c.lane()}
}

func (Perm4[A, B, C, D]) indices() [4]uint8 {
	var a A
	var b B
	var c C
	var d D
	return [4]uint8{a.lane(), b.lane(), c.lane(), d.lane()}
}

// Pattern2, Pattern3 and Pattern4 are the permutation patterns of 2, 3 and
// 4 lanes. A pattern of the wrong arity, or naming a lane the vector does
// not have, does not compile.
type (
	Pattern2 interface{ indices() [2]uint8 }
	Pattern3 interface{ indices() [3]uint8 }
	Pattern4 interface{ indices() [4]uint8 }
)

// Commonly used patterns.
type (
	Swap2             = Perm2[L1, L0]
	Reverse3          = Perm3[L2, L1, L0]
	Identity4         = Perm4[L0, L1, L2, L3]
	Reverse4          = Perm4[L3, L2, L1, L0]
	ReversePairs4     = Perm4[L1, L0, L3, L2]
	RotateDown4       = Perm4[L1, L2, L3, L0]
	RotateUp4         = Perm4[L3, L0, L1, L2]
	InterleaveLower4  = Perm4[L0, L0, L1, L1]
	InterleaveUpper4  = Perm4[L2, L2, L3, L3]
	DeinterleaveEven4 = Perm4[L0, L2, L0, L2]
	DeinterleaveOdd4  = Perm4[L1, L3, L1, L3]
)

// Broadcast2, Broadcast3 and Broadcast4 copy lane L to every lane.
type (
	Broadcast2[L Index2] = Perm2[L, L]
	Broadcast3[L Index3] = Perm3[L, L, L]
	Broadcast4[L Index4] = Perm4[L, L, L, L]
)

type shuffler2[V any] interface {
	permute2(idx [2]uint8) V
}

type shuffler3[V any] interface {
	permute3(idx [3]uint8) V
}

type shuffler4[V any] interface {
	permute4(idx [4]uint8) V
}

// Shuffle2 permutes the lanes of v by the pattern S.
func Shuffle2[S Pattern2, V shuffler2[V]](v V) V {
	var s S
	return v.permute2(s.indices())
}

// Shuffle3 permutes the lanes of v by the pattern S.
func Shuffle3[S Pattern3, V shuffler3[V]](v V) V {
	var s S
	return v.permute3(s.indices())
}

// Shuffle4 permutes the lanes of v by the pattern S.
func Shuffle4[S Pattern4, V shuffler4[V]](v V) V {
	var s S
	return v.permute4(s.indices())
}

type shapeKind uint8

const (
	shapeIdentity shapeKind = iota
	shapeBroadcast
	shapeReverse
	shapeReversePairs
	shapeZipLower
	shapeZipUpper
	shapeUnzipEven
	shapeUnzipOdd
	shapeRotate
)

// shape is a pattern with a dedicated instruction; arg is the broadcast
// lane or the rotation.
type shape struct {
	kind shapeKind
	arg  int
}

func classify2(idx [2]uint8) (shape, bool) {
	switch {
	case idx == [2]uint8{0, 1}:
		return shape{kind: shapeIdentity}, true
	case idx == [2]uint8{1, 0}:
		return shape{kind: shapeReverse}, true
	case idx[0] == idx[1]:
		return shape{kind: shapeBroadcast, arg: int(idx[0])}, true
	}
	return shape{}, false
}

func classify4(idx [4]uint8) (shape, bool) {
	switch idx {
	case [4]uint8{0, 1, 2, 3}:
		return shape{kind: shapeIdentity}, true
	case [4]uint8{3, 2, 1, 0}:
		return shape{kind: shapeReverse}, true
	case [4]uint8{1, 0, 3, 2}:
		return shape{kind: shapeReversePairs}, true
	case [4]uint8{0, 0, 1, 1}:
		return shape{kind: shapeZipLower}, true
	case [4]uint8{2, 2, 3, 3}:
		return shape{kind: shapeZipUpper}, true
	case [4]uint8{0, 2, 0, 2}:
		return shape{kind: shapeUnzipEven}, true
	case [4]uint8{1, 3, 1, 3}:
		return shape{kind: shapeUnzipOdd}, true
	}
	if idx[0] == idx[1] && idx[1] == idx[2] && idx[2] == idx[3] {
		return shape{kind: shapeBroadcast, arg: int(idx[0])}, true
	}
	for n := uint8(1); n < 4; n++ {
		if idx == [4]uint8{n, (n + 1) % 4, (n + 2) % 4, (n + 3) % 4} {
			return shape{kind: shapeRotate, arg: int(n)}, true
		}
	}
	return shape{}, false
}

// complete3 picks the 4th index of a 3-lane pattern, preferring one that
// gives the 4-lane pattern a dedicated instruction.
func complete3(idx [3]uint8) [4]uint8 {
	for _, k := range [4]uint8{3, 0, 1, 2} {
		p := [4]uint8{idx[0], idx[1], idx[2], k}
		if _, ok := classify4(p); ok {
			return p
		}
	}
	return pad3(idx)
}

func pad3(idx [3]uint8) [4]uint8 {
	return [4]uint8{idx[0], idx[1], idx[2], 3}
}

type permuter[R any] interface {
	DupLane(i int) R
	Reverse() R
	ZipLower(o R) R
	ZipUpper(o R) R
	UnzipEven(o R) R
	UnzipOdd(o R) R
	Ext(o R, n int) R
}

type permuter4[R any] interface {
	permuter[R]
	ReversePairs() R
}

func fastPermute2[R permuter[R]](r R, s shape) R {
	switch s.kind {
	case shapeBroadcast:
		return r.DupLane(s.arg)
	case shapeReverse:
		return r.Reverse()
	}
	return r
}

func fastPermute4[R permuter4[R]](r R, s shape) R {
	switch s.kind {
	case shapeBroadcast:
		return r.DupLane(s.arg)
	case shapeReverse:
		return r.Reverse()
	case shapeReversePairs:
		return r.ReversePairs()
	case shapeZipLower:
		return r.ZipLower(r)
	case shapeZipUpper:
		return r.ZipUpper(r)
	case shapeUnzipEven:
		return r.UnzipEven(r)
	case shapeUnzipOdd:
		return r.UnzipOdd(r)
	case shapeRotate:
		return r.Ext(r, s.arg)
	}
	return r
}

// fastPermutePair applies a 4-lane shape to a vector held as two 2-lane
// registers.
func fastPermutePair[R permuter[R]](lo, hi R, s shape) (R, R) {
	switch s.kind {
	case shapeBroadcast:
		src := lo
		if s.arg >= 2 {
			src = hi
		}
		d := src.DupLane(s.arg % 2)
		return d, d
	case shapeReverse:
		return hi.Reverse(), lo.Reverse()
	case shapeReversePairs:
		return lo.Reverse(), hi.Reverse()
	case shapeZipLower:
		return lo.DupLane(0), lo.DupLane(1)
	case shapeZipUpper:
		return hi.DupLane(0), hi.DupLane(1)
	case shapeUnzipEven:
		e := lo.UnzipEven(hi)
		return e, e
	case shapeUnzipOdd:
		o := lo.UnzipOdd(hi)
		return o, o
	case shapeRotate:
		switch s.arg {
		case 1:
			return lo.Ext(hi, 1), hi.Ext(lo, 1)
		case 2:
			return hi, lo
		case 3:
			return hi.Ext(lo, 1), lo.Ext(hi, 1)
		}
	}
	return lo, hi
}

// byteTable expands lane indices into the byte indices selecting the same
// lanes: output lane i takes bytes idx[i]*width .. idx[i]*width+width-1.
func byteTable[B ~[8]byte | ~[16]byte](idx []uint8, width uint8) B {
	var t B
	for i, k := range idx {
		for j := range width {
			t[uint8(i)*width+j] = k*width + j
		}
	}
	return t
}

func lookup16[R ~[16]byte](r R, idx []uint8, width uint8) R {
	return R(native.Uint8x16(r).TableLookupBytes(byteTable[native.Uint8x16](idx, width)))
}

func lookup8[R ~[8]byte](r R, idx []uint8, width uint8) R {
	return R(native.Uint8x8(r).TableLookupBytes(byteTable[native.Uint8x8](idx, width)))
}

// lookupPair permutes a vector held as two 128-bit registers with lookups
// into their 32-byte concatenation.
func lookupPair[R ~[16]byte](lo, hi R, idx [4]uint8) (R, R) {
	t0, t1 := native.Uint8x16(lo), native.Uint8x16(hi)
	return R(native.TableLookupBytes2(t0, t1, byteTable[native.Uint8x16](idx[:2], 8))),
		R(native.TableLookupBytes2(t0, t1, byteTable[native.Uint8x16](idx[2:], 8)))
}
