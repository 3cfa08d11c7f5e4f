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

import "fmt"

// Kind is the element kind of a lane.
type Kind uint8

const (
	Float32 Kind = iota
	Float64
	Int32
	Uint32
	Int64
	Uint64
)

// Kinds lists every element kind in binding order.
var Kinds = []Kind{Float32, Float64, Int32, Uint32, Int64, Uint64}

// String returns the Go type name of the element, e.g. "float32".
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Title returns the element name as used in type names, e.g. "Float32".
func (k Kind) Title() string {
	s := k.String()
	return string(s[0]-'a'+'A') + s[1:]
}

// Bits returns the lane width in bits.
func (k Kind) Bits() int {
	switch k {
	case Float64, Int64, Uint64:
		return 64
	default:
		return 32
	}
}

// IsFloat reports whether the kind is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether the kind is signed. Float kinds are signed.
func (k Kind) IsSigned() bool {
	return k != Uint32 && k != Uint64
}

// Layout describes how a vector is stored in registers.
type Layout uint8

const (
	// Register stores the vector in one register of exactly its size.
	Register Layout = iota

	// RegisterPair stores the vector in two registers holding half the
	// lanes each. Used where no single register is wide enough.
	RegisterPair

	// Padded stores a 3-lane vector in the 4-lane vector of the same kind.
	// The 4th lane is zero when the vector is built and unspecified after
	// any operation.
	Padded
)

func (l Layout) String() string {
	switch l {
	case Register:
		return "register"
	case RegisterPair:
		return "pair"
	case Padded:
		return "padded"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Binding records the storage chosen for one (kind, lanes) pair.
type Binding struct {
	Kind   Kind
	Lanes  int
	Layout Layout

	// Register is the name of the register type in this package that holds
	// the vector, or each half of it for a RegisterPair.
	Register string

	// RegisterBits is the width of Register.
	RegisterBits int

	// Backing is the number of lanes of storage: Lanes, or 4 when Padded.
	Backing int
}

// Native reports whether the vector is a single hardware register.
func (b Binding) Native() bool {
	return b.Layout == Register
}

// Name returns the vector type name, e.g. "Float32x3".
func (b Binding) Name() string {
	return fmt.Sprintf("%sx%d", b.Kind.Title(), b.Lanes)
}

func (b Binding) String() string {
	return fmt.Sprintf("%s: %s %s (%d bits, %d lanes)", b.Name(), b.Layout, b.Register, b.RegisterBits, b.Backing)
}

// Lookup returns the binding of a vector of the given kind and lane count.
// It is defined for lanes 2, 3 and 4 of every kind.
func Lookup(kind Kind, lanes int) (Binding, bool) {
	if kind > Uint64 {
		return Binding{}, false
	}
	b := Binding{Kind: kind, Lanes: lanes, Backing: lanes}
	switch {
	case lanes == 3:
		b4, _ := Lookup(kind, 4)
		b.Layout = Padded
		b.Register = b4.Register
		b.RegisterBits = b4.RegisterBits
		b.Backing = 4
	case lanes*kind.Bits() == 64:
		b.Layout = Register
		b.Register = fmt.Sprintf("%sx2", kind.Title())
		b.RegisterBits = 64
	case lanes*kind.Bits() == 128:
		b.Layout = Register
		b.Register = fmt.Sprintf("%sx%d", kind.Title(), lanes)
		b.RegisterBits = 128
	case lanes == 4 && kind.Bits() == 64:
		b.Layout = RegisterPair
		b.Register = fmt.Sprintf("%sx2", kind.Title())
		b.RegisterBits = 128
	default:
		return Binding{}, false
	}
	return b, true
}

// Bindings returns the binding of every supported vector, ordered by kind
// and then by lane count.
func Bindings() []Binding {
	var all []Binding
	for _, k := range Kinds {
		for lanes := 2; lanes <= 4; lanes++ {
			b, _ := Lookup(k, lanes)
			all = append(all, b)
		}
	}
	return all
}
