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

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lanes/lanes/native"
)

// VectorType is the template data of one vector type.
type VectorType struct {
	Binding native.Binding

	Name   string // Float32x4
	Elem   string // float32
	Layout string // register, pair or padded

	Lanes     int
	Last      int
	Bits      int
	LaneBytes int
	RegBits   int
	RegBytes  int

	Float     bool
	Signed    bool
	NativeMul bool

	// Decl is the type as declared, Type as used in signatures, and
	// TypeParams/TypeArgs the parameter lists of its generic functions.
	// All but Name and Decl are empty brackets for integer kinds.
	Decl       string
	Type       string
	TypeParams string
	TypeArgs   string

	Reg     string // native register holding the vector, or each half
	MaskReg string // native register produced by comparing Reg values
	Mask    string // lanes mask type

	Half     string // 2-lane type with the same kind, for 4-lane vectors
	Full     string // 4-lane type backing a padded vector
	FullName string

	NewtonSteps int
	Args        string

	CountReg  string
	CountElem string
	Counts    string
	CountsLo  string
	CountsHi  string
}

// File returns the name of the generated file.
func (t *VectorType) File() string {
	return "z_" + strings.ToLower(t.Name) + ".go"
}

// ExactType is the type with Exact precision for floats, and the type
// itself otherwise.
func (t *VectorType) ExactType() string {
	if t.Float {
		return t.Name + "[Exact]"
	}
	return t.Name
}

func newVectorType(b native.Binding) *VectorType {
	k := b.Kind
	t := &VectorType{
		Binding:     b,
		Name:        b.Name(),
		Elem:        k.String(),
		Layout:      b.Layout.String(),
		Lanes:       b.Lanes,
		Last:        b.Lanes - 1,
		Bits:        k.Bits(),
		LaneBytes:   k.Bits() / 8,
		RegBits:     b.RegisterBits,
		RegBytes:    b.RegisterBits / 8,
		Float:       k.IsFloat(),
		Signed:      k.IsSigned(),
		NativeMul:   k.IsFloat() || k.Bits() == 32,
		Reg:         b.Register,
		MaskReg:     fmt.Sprintf("Int%dx%d", k.Bits(), b.RegisterBits/k.Bits()),
		Mask:        fmt.Sprintf("Mask%dx%d", k.Bits(), b.Lanes),
		NewtonSteps: 2,
		Args: strings.Join(lo.Times(b.Lanes, func(i int) string {
			return fmt.Sprintf("x%d", i)
		}), ", "),
	}
	if t.Bits == 64 {
		t.NewtonSteps = 3
	}
	t.Decl, t.Type = t.Name, t.Name
	if t.Float {
		t.Decl = t.Name + "[P Precision]"
		t.Type = t.Name + "[P]"
		t.TypeParams = "[P Precision]"
		t.TypeArgs = "[P]"
	}
	if t.Lanes == 4 {
		t.Half = k.Title() + "x2" + t.TypeArgs
	}
	if b.Layout == native.Padded {
		t.FullName = k.Title() + "x4"
		t.Full = t.FullName + t.TypeArgs
	}
	t.CountReg = t.MaskReg
	t.CountElem = fmt.Sprintf("int%d", t.Bits)
	t.Counts, t.CountsLo, t.CountsHi = "counts.r", "counts.lo", "counts.hi"
	if !t.Signed {
		clamp := func(field string) string {
			return fmt.Sprintf("native.%s(counts.%s.Min(native.Broadcast%s(%d)))", t.CountReg, field, t.Reg, t.Bits)
		}
		t.Counts, t.CountsLo, t.CountsHi = clamp("r"), clamp("lo"), clamp("hi")
	}
	return t
}

// MaskType is the template data of one mask type. Masks are shared by the
// vectors with the same lane width and lane count.
type MaskType struct {
	Name   string // Mask32x4
	Elem   string // signed lane type holding the mask bits
	Layout string

	Lanes int
	Bits  int

	Reg  string // native register, or each half of a pair layout mask
	Half string // 2-lane mask holding each half of a pair layout mask
	Full string // 4-lane mask backing a padded mask

	Ops []MaskOp
}

// MaskOp is one lanewise logical method of a mask.
type MaskOp struct {
	Name   string
	Doc    string
	Params string
	Expr   string
}

// File returns the name of the generated file.
func (m *MaskType) File() string {
	return "z_" + strings.ToLower(m.Name) + ".go"
}

// Other returns the mask with the same lane count and the other lane width.
func (m *MaskType) Other() string {
	bits := 64
	if m.Bits == 64 {
		bits = 32
	}
	return fmt.Sprintf("Mask%dx%d", bits, m.Lanes)
}

// newMaskType returns the mask of the vectors laid out like t.
func newMaskType(t *VectorType) *MaskType {
	m := &MaskType{
		Name:   t.Mask,
		Elem:   fmt.Sprintf("int%d", t.Bits),
		Layout: t.Layout,
		Lanes:  t.Lanes,
		Bits:   t.Bits,
		Reg:    t.MaskReg,
	}
	switch t.Binding.Layout {
	case native.RegisterPair:
		m.Half = fmt.Sprintf("Mask%dx2", t.Bits)
	case native.Padded:
		m.Full = fmt.Sprintf("Mask%dx4", t.Bits)
	}

	expr := func(op, args string) string {
		switch t.Binding.Layout {
		case native.RegisterPair:
			lo, hi := strings.ReplaceAll(args, "_", "lo"), strings.ReplaceAll(args, "_", "hi")
			return fmt.Sprintf("%s{m.lo.%s(%s), m.hi.%s(%s)}", m.Name, op, lo, op, hi)
		case native.Padded:
			return fmt.Sprintf("%s{m.m.%s(%s)}", m.Name, op, strings.ReplaceAll(args, "_", "m"))
		default:
			return fmt.Sprintf("%s{m.r.%s(%s)}", m.Name, op, strings.ReplaceAll(args, "_", "r"))
		}
	}
	for _, op := range []struct{ name, doc string }{
		{"And", ""},
		{"Or", ""},
		{"Xor", ""},
		{"AndNot", "AndNot returns the lanes set in m and clear in o."},
		{"Equal", "Equal returns the lanes where m and o agree."},
	} {
		m.Ops = append(m.Ops, MaskOp{Name: op.name, Doc: op.doc, Params: "o " + m.Name, Expr: expr(op.name, "o._")})
	}
	m.Ops = append(m.Ops, MaskOp{Name: "Not", Expr: expr("Not", "")})
	return m
}

// Masks returns the template data of every mask, in the order the masks
// first appear among types.
func Masks(types []*VectorType) []*MaskType {
	return lo.Map(lo.UniqBy(types, func(t *VectorType) string { return t.Mask }), func(t *VectorType, _ int) *MaskType {
		return newMaskType(t)
	})
}

// Cast is the template data of one family of generic conversion
// constructors targeting a single type.
type Cast struct {
	Name       string
	Elem       string
	Lanes      int
	Bits       int
	Float      bool
	Type       string
	Result     string
	FuncParams string
	Wrap       string
	Methods    []CastMethod
}

// CastMethod is the unexported method a source type implements to be
// accepted by a conversion constructor.
type CastMethod struct {
	Recv   string
	Method string
	Result string
	Expr   string
}

// ConvertData is the template data of z_convert.go.
type ConvertData struct {
	Conversions []Cast
	BitCasts    []Cast
	MaskCasts   []Cast
}

func newCast(prefix, constraint string, dst *VectorType) Cast {
	c := Cast{
		Name:   dst.Name,
		Elem:   dst.Elem,
		Lanes:  dst.Lanes,
		Bits:   dst.Bits,
		Float:  dst.Float,
		Type:   dst.Type,
		Result: dst.ExactType(),
	}
	method := prefix + dst.Name
	c.FuncParams = fmt.Sprintf("[S %s%s]", constraint, dst.Name)
	c.Wrap = fmt.Sprintf("src.%s()", method)
	if dst.Float {
		c.FuncParams = fmt.Sprintf("[P Precision, S %s%s]", constraint, dst.Name)
		c.Wrap = fmt.Sprintf("%s(src.%s())", dst.Type, method)
		if dst.Full != "" {
			// Padded types differ in the precision of their field, so only
			// the backing vector converts.
			c.Wrap = fmt.Sprintf("%s{%s(src.%s().v)}", dst.Type, dst.Full, method)
		}
	}
	return c
}

// convertExpr returns the expression converting receiver v of type src to
// the exact form of dst, lane by lane.
func convertExpr(src, dst *VectorType) string {
	kind := dst.Binding.Kind.Title()
	switch {
	case dst.Lanes == 3:
		return fmt.Sprintf("%s{v.v.convertTo%sx4()}", dst.ExactType(), kind)
	case dst.Lanes == 2 || (src.Bits == 32 && dst.Bits == 32):
		return fmt.Sprintf("%s{v.r.ConvertTo%s()}", dst.ExactType(), kind)
	case src.Bits == 32:
		return fmt.Sprintf("%s{v.r.Low().ConvertTo%s(), v.r.High().ConvertTo%s()}", dst.ExactType(), kind, kind)
	case dst.Bits == 32:
		return fmt.Sprintf("%s{native.Combine%s(v.lo.ConvertTo%s(), v.hi.ConvertTo%s())}", dst.ExactType(), dst.Reg, kind, kind)
	default:
		return fmt.Sprintf("%s{v.lo.ConvertTo%s(), v.hi.ConvertTo%s()}", dst.ExactType(), kind, kind)
	}
}

// bitCastExpr reinterprets the register(s) of receiver v, whose fields are
// named like those of layout, as dst.
func bitCastExpr(layout native.Layout, inner string, dst *VectorType) string {
	switch layout {
	case native.Padded:
		return fmt.Sprintf("%s{v.%s.bitCastTo%sx4()}", dst.ExactType(), inner, dst.Binding.Kind.Title())
	case native.RegisterPair:
		return fmt.Sprintf("%s{native.%s(v.lo), native.%s(v.hi)}", dst.ExactType(), dst.Reg, dst.Reg)
	default:
		return fmt.Sprintf("%s{native.%s(v.r)}", dst.ExactType(), dst.Reg)
	}
}

func maskCastExpr(src *VectorType) string {
	switch src.Binding.Layout {
	case native.Padded:
		return fmt.Sprintf("%s{v.v.bitCastToMask%dx4()}", src.Mask, src.Bits)
	case native.RegisterPair:
		return fmt.Sprintf("%s{native.%s(v.lo).NotEqual(native.Zero%s()), native.%s(v.hi).NotEqual(native.Zero%s())}",
			src.Mask, src.MaskReg, src.MaskReg, src.MaskReg, src.MaskReg)
	default:
		return fmt.Sprintf("%s{native.%s(v.r).NotEqual(native.Zero%s())}", src.Mask, src.MaskReg, src.MaskReg)
	}
}

// maskResizeExpr converts receiver v, a mask with the same lane count and
// the other lane width, to m. Mask lanes are 0 or -1, so converting the
// lanes as integers narrows or sign-extends them intact.
func maskResizeExpr(m *MaskType) string {
	switch {
	case m.Full != "":
		return fmt.Sprintf("%s{v.m.bitCastTo%s()}", m.Name, m.Full)
	case m.Half != "":
		return fmt.Sprintf("%s{v.r.Low().ConvertToInt64(), v.r.High().ConvertToInt64()}", m.Name)
	case m.Bits == 32 && m.Lanes == 4:
		return fmt.Sprintf("%s{native.CombineInt32x4(v.lo.ConvertToInt32(), v.hi.ConvertToInt32())}", m.Name)
	default:
		return fmt.Sprintf("%s{v.r.ConvertToInt%d()}", m.Name, m.Bits)
	}
}

// maskInner is the field of a mask type with the given layout: masks of
// padded vectors wrap the 4-lane mask in m.
func maskInner(layout native.Layout) string {
	if layout == native.Padded {
		return "m"
	}
	return "v"
}

// newConvertData builds the conversion families between all types.
func newConvertData(types []*VectorType) *ConvertData {
	data := &ConvertData{}
	for _, dst := range types {
		conv := newCast("convertTo", "convertibleTo", dst)
		sources := lo.Filter(types, func(src *VectorType, _ int) bool {
			return src.Lanes == dst.Lanes && src.Binding.Kind != dst.Binding.Kind
		})
		conv.Methods = lo.Map(sources, func(src *VectorType, _ int) CastMethod {
			return CastMethod{Recv: src.Type, Method: "convertTo" + dst.Name, Result: dst.ExactType(), Expr: convertExpr(src, dst)}
		})
		data.Conversions = append(data.Conversions, conv)

		cast := newCast("bitCastTo", "bitCastableTo", dst)
		peers := lo.Filter(sources, func(src *VectorType, _ int) bool {
			return src.Bits == dst.Bits
		})
		cast.Methods = lo.Map(peers, func(src *VectorType, _ int) CastMethod {
			return CastMethod{Recv: src.Type, Method: "bitCastTo" + dst.Name, Result: dst.ExactType(), Expr: bitCastExpr(src.Binding.Layout, "v", dst)}
		})
		cast.Methods = append(cast.Methods, CastMethod{
			Recv:   dst.Mask,
			Method: "bitCastTo" + dst.Name,
			Result: dst.ExactType(),
			Expr:   bitCastExpr(dst.Binding.Layout, maskInner(dst.Binding.Layout), dst),
		})
		data.BitCasts = append(data.BitCasts, cast)
	}

	// One mask family per (lane width, lanes). Sources are the vectors the
	// mask selects, then the mask of the other lane width.
	for _, m := range Masks(types) {
		c := Cast{
			Name:       m.Name,
			Lanes:      m.Lanes,
			Bits:       m.Bits,
			Type:       m.Name,
			Result:     m.Name,
			FuncParams: fmt.Sprintf("[S bitCastableTo%s]", m.Name),
			Wrap:       fmt.Sprintf("src.bitCastTo%s()", m.Name),
		}
		sources := lo.Filter(types, func(src *VectorType, _ int) bool {
			return src.Mask == m.Name
		})
		c.Methods = lo.Map(sources, func(src *VectorType, _ int) CastMethod {
			return CastMethod{Recv: src.Type, Method: "bitCastTo" + m.Name, Result: m.Name, Expr: maskCastExpr(src)}
		})
		c.Methods = append(c.Methods, CastMethod{Recv: m.Other(), Method: "bitCastTo" + m.Name, Result: m.Name, Expr: maskResizeExpr(m)})
		data.MaskCasts = append(data.MaskCasts, c)
	}
	return data
}
