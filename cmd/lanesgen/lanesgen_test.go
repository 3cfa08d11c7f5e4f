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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/packages"
)

func findType(t *testing.T, name string) *VectorType {
	t.Helper()
	for _, vt := range Types() {
		if vt.Name == name {
			return vt
		}
	}
	t.Fatalf("no vector type %s", name)
	return nil
}

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != 18 {
		t.Fatalf("Types() returned %d types, want 18", len(types))
	}

	tests := []struct {
		name        string
		layout      string
		reg         string
		mask        string
		typ         string
		newtonSteps int
		half        string
		full        string
	}{
		{"Float32x2", "register", "Float32x2", "Mask32x2", "Float32x2[P]", 2, "", ""},
		{"Float32x3", "padded", "Float32x4", "Mask32x3", "Float32x3[P]", 2, "", "Float32x4[P]"},
		{"Float32x4", "register", "Float32x4", "Mask32x4", "Float32x4[P]", 2, "Float32x2[P]", ""},
		{"Float64x2", "register", "Float64x2", "Mask64x2", "Float64x2[P]", 3, "", ""},
		{"Float64x4", "pair", "Float64x2", "Mask64x4", "Float64x4[P]", 3, "Float64x2[P]", ""},
		{"Int32x4", "register", "Int32x4", "Mask32x4", "Int32x4", 2, "Int32x2", ""},
		{"Uint64x3", "padded", "Uint64x2", "Mask64x3", "Uint64x3", 3, "", "Uint64x4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vt := findType(t, tt.name)
			if vt.Layout != tt.layout {
				t.Errorf("Layout = %q, want %q", vt.Layout, tt.layout)
			}
			if vt.Reg != tt.reg {
				t.Errorf("Reg = %q, want %q", vt.Reg, tt.reg)
			}
			if vt.Mask != tt.mask {
				t.Errorf("Mask = %q, want %q", vt.Mask, tt.mask)
			}
			if vt.Type != tt.typ {
				t.Errorf("Type = %q, want %q", vt.Type, tt.typ)
			}
			if vt.Float && vt.NewtonSteps != tt.newtonSteps {
				t.Errorf("NewtonSteps = %d, want %d", vt.NewtonSteps, tt.newtonSteps)
			}
			if vt.Half != tt.half {
				t.Errorf("Half = %q, want %q", vt.Half, tt.half)
			}
			if vt.Full != tt.full {
				t.Errorf("Full = %q, want %q", vt.Full, tt.full)
			}
			if want := "z_" + strings.ToLower(tt.name) + ".go"; vt.File() != want {
				t.Errorf("File() = %q, want %q", vt.File(), want)
			}
		})
	}
}

func TestUnsignedShiftCounts(t *testing.T) {
	u := findType(t, "Uint32x4")
	want := "native.Int32x4(counts.r.Min(native.BroadcastUint32x4(32)))"
	if u.Counts != want {
		t.Errorf("Counts = %q, want %q", u.Counts, want)
	}
	if s := findType(t, "Int64x4"); s.CountsLo != "counts.lo" {
		t.Errorf("CountsLo = %q, want counts.lo", s.CountsLo)
	}
}

func TestConvertExpr(t *testing.T) {
	tests := []struct {
		src, dst string
		want     string
	}{
		{"Int32x4", "Float32x4", "Float32x4[Exact]{v.r.ConvertToFloat32()}"},
		{"Float32x4", "Int64x4", "Int64x4{v.r.Low().ConvertToInt64(), v.r.High().ConvertToInt64()}"},
		{"Uint64x4", "Int32x4", "Int32x4{native.CombineInt32x4(v.lo.ConvertToInt32(), v.hi.ConvertToInt32())}"},
		{"Int64x4", "Float64x4", "Float64x4[Exact]{v.lo.ConvertToFloat64(), v.hi.ConvertToFloat64()}"},
		{"Float64x3", "Uint32x3", "Uint32x3{v.v.convertToUint32x4()}"},
		{"Float64x2", "Int32x2", "Int32x2{v.r.ConvertToInt32()}"},
	}

	for _, tt := range tests {
		t.Run(tt.src+"To"+tt.dst, func(t *testing.T) {
			got := convertExpr(findType(t, tt.src), findType(t, tt.dst))
			if got != tt.want {
				t.Errorf("convertExpr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertData(t *testing.T) {
	data := newConvertData(Types())
	if len(data.Conversions) != 18 || len(data.BitCasts) != 18 {
		t.Fatalf("got %d conversions and %d bit casts, want 18 each", len(data.Conversions), len(data.BitCasts))
	}
	for _, c := range data.Conversions {
		if len(c.Methods) != 5 {
			t.Errorf("%s has %d conversion sources, want 5", c.Name, len(c.Methods))
		}
	}
	for _, c := range data.BitCasts {
		// Two other kinds share the lane width, plus the mask.
		if len(c.Methods) != 3 {
			t.Errorf("%s has %d bit cast sources, want 3", c.Name, len(c.Methods))
		}
	}

	masks := make([]string, len(data.MaskCasts))
	for i, c := range data.MaskCasts {
		masks[i] = c.Name
		// Three vector kinds, plus the mask of the other lane width.
		if len(c.Methods) != 4 {
			t.Errorf("%s has %d sources, want 4", c.Name, len(c.Methods))
		}
	}
	slices.Sort(masks)
	want := []string{"Mask32x2", "Mask32x3", "Mask32x4", "Mask64x2", "Mask64x3", "Mask64x4"}
	if diff := cmp.Diff(want, masks); diff != "" {
		t.Errorf("mask casts mismatch (-want +got):\n%s", diff)
	}
}

func TestCastWrap(t *testing.T) {
	tests := []struct {
		name string
		cast Cast
		want string
	}{
		{"ConvertToFloat32x4", newCast("convertTo", "convertibleTo", findType(t, "Float32x4")), "Float32x4[P](src.convertToFloat32x4())"},
		{"ConvertToFloat32x3", newCast("convertTo", "convertibleTo", findType(t, "Float32x3")), "Float32x3[P]{Float32x4[P](src.convertToFloat32x3().v)}"},
		{"BitCastToFloat64x3", newCast("bitCastTo", "bitCastableTo", findType(t, "Float64x3")), "Float64x3[P]{Float64x4[P](src.bitCastToFloat64x3().v)}"},
		{"BitCastToInt32x3", newCast("bitCastTo", "bitCastableTo", findType(t, "Int32x3")), "src.bitCastToInt32x3()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cast.Wrap != tt.want {
				t.Errorf("Wrap = %q, want %q", tt.cast.Wrap, tt.want)
			}
		})
	}
}

func TestMasks(t *testing.T) {
	masks := Masks(Types())
	if len(masks) != 6 {
		t.Fatalf("Masks() returned %d masks, want 6", len(masks))
	}

	tests := []struct {
		name   string
		layout string
		reg    string
		half   string
		full   string
		other  string
		resize string
		not    string
	}{
		{"Mask32x2", "register", "Int32x2", "", "", "Mask64x2", "Mask32x2{v.r.ConvertToInt32()}", "Mask32x2{m.r.Not()}"},
		{"Mask32x3", "padded", "Int32x4", "", "Mask32x4", "Mask64x3", "Mask32x3{v.m.bitCastToMask32x4()}", "Mask32x3{m.m.Not()}"},
		{"Mask32x4", "register", "Int32x4", "", "", "Mask64x4", "Mask32x4{native.CombineInt32x4(v.lo.ConvertToInt32(), v.hi.ConvertToInt32())}", "Mask32x4{m.r.Not()}"},
		{"Mask64x2", "register", "Int64x2", "", "", "Mask32x2", "Mask64x2{v.r.ConvertToInt64()}", "Mask64x2{m.r.Not()}"},
		{"Mask64x3", "padded", "Int64x2", "", "Mask64x4", "Mask32x3", "Mask64x3{v.m.bitCastToMask64x4()}", "Mask64x3{m.m.Not()}"},
		{"Mask64x4", "pair", "Int64x2", "Mask64x2", "", "Mask32x4", "Mask64x4{v.r.Low().ConvertToInt64(), v.r.High().ConvertToInt64()}", "Mask64x4{m.lo.Not(), m.hi.Not()}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m *MaskType
			for _, x := range masks {
				if x.Name == tt.name {
					m = x
				}
			}
			if m == nil {
				t.Fatalf("no mask %s", tt.name)
			}
			got := []string{m.Layout, m.Reg, m.Half, m.Full, m.Other(), maskResizeExpr(m)}
			want := []string{tt.layout, tt.reg, tt.half, tt.full, tt.other, tt.resize}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mask data mismatch (-want +got):\n%s", diff)
			}
			if len(m.Ops) != 6 {
				t.Fatalf("got %d ops, want 6", len(m.Ops))
			}
			if not := m.Ops[5]; not.Name != "Not" || not.Expr != tt.not {
				t.Errorf("Not op = %+v, want expression %q", not, tt.not)
			}
		})
	}
}

// renderAll renders every file of package lanes, keyed by file name.
func renderAll(t *testing.T) map[string][]byte {
	t.Helper()
	gen := &Generator{}
	types := Types()
	files := make(map[string][]byte)
	for _, vt := range types {
		src, err := gen.RenderType(vt)
		if err != nil {
			t.Fatalf("RenderType(%s): %v", vt.Name, err)
		}
		files[vt.File()] = src
	}
	for _, m := range Masks(types) {
		src, err := gen.RenderMask(m)
		if err != nil {
			t.Fatalf("RenderMask(%s): %v", m.Name, err)
		}
		files[m.File()] = src
	}
	src, err := gen.RenderConvert(types)
	if err != nil {
		t.Fatalf("RenderConvert: %v", err)
	}
	files[convertFile] = src
	return files
}

// declarations lists the top-level declarations of a Go source file as
// "Recv.Name" for methods and "Name" otherwise.
func declarations(t *testing.T, file string, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), file, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", file, err)
	}
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if idx, ok := recv.(*ast.IndexExpr); ok {
					recv = idx.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	slices.Sort(names)
	return names
}

// TestCheckedInFilesUpToDate renders every file and compares its
// declarations with the files checked into package lanes.
func TestCheckedInFilesUpToDate(t *testing.T) {
	dir := filepath.Join("..", "..", "lanes")
	for file, rendered := range renderAll(t) {
		existing, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		if diff := cmp.Diff(declarations(t, file, existing), declarations(t, file, rendered)); diff != "" {
			t.Errorf("%s is stale, run go generate in package lanes (-checked in +rendered):\n%s", file, diff)
		}
	}
}

// TestRenderedPackageTypeChecks loads package lanes with every generated
// file replaced by its rendering and reports the type errors.
func TestRenderedPackageTypeChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("loads package lanes with the go command")
	}
	dir, err := filepath.Abs(filepath.Join("..", "..", "lanes"))
	if err != nil {
		t.Fatal(err)
	}
	overlay := make(map[string][]byte)
	for file, src := range renderAll(t) {
		overlay[filepath.Join(dir, file)] = src
	}
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: overlay,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("packages.Load: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("loaded %d packages, want 1", len(pkgs))
	}
	for _, e := range pkgs[0].Errors {
		t.Errorf("rendered package lanes: %v", e)
	}
	if len(pkgs[0].GoFiles) < len(overlay) {
		t.Errorf("package lanes has %d files, want at least the %d rendered ones", len(pkgs[0].GoFiles), len(overlay))
	}
}

func TestGeneratorRun(t *testing.T) {
	tmpDir := t.TempDir()
	gen := &Generator{
		OutputDir: filepath.Join(tmpDir, "out"),
		Package:   "vec",
		Only:      []string{"Float32x3", "Int64x4"},
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Generator.Run() failed: %v", err)
	}
	// Two vector types, the six masks and the conversions.
	if gen.written != 9 {
		t.Errorf("written = %d, want 9", gen.written)
	}

	entries, err := os.ReadDir(gen.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	want := []string{
		"z_convert.go", "z_float32x3.go", "z_int64x4.go",
		"z_mask32x2.go", "z_mask32x3.go", "z_mask32x4.go",
		"z_mask64x2.go", "z_mask64x3.go", "z_mask64x4.go",
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}

	content, err := os.ReadFile(filepath.Join(gen.OutputDir, "z_int64x4.go"))
	if err != nil {
		t.Fatal(err)
	}
	src := string(content)
	if !strings.HasPrefix(src, "// Code generated by lanesgen. DO NOT EDIT.") {
		t.Error("missing generation comment")
	}
	if !strings.Contains(src, "package vec") {
		t.Error("missing package declaration")
	}
	for _, decl := range []string{
		"func (v Int64x4) ShiftAllRight(n uint) Int64x4",
		"func (v Int64x4) MulHigh(o Int64x4) Int64x4",
		"func (v Int64x4) PopCount() Int64x4",
	} {
		if !strings.Contains(src, decl) {
			t.Errorf("missing %q", decl)
		}
	}
}

func TestGeneratorRunUnknownType(t *testing.T) {
	gen := &Generator{OutputDir: t.TempDir(), Only: []string{"Float16x8"}}
	err := gen.Run()
	if err == nil || !strings.Contains(err.Error(), "Float16x8") {
		t.Errorf("Run() error = %v, want unknown type error", err)
	}
}

func TestRootCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--output", tmpDir, "--only", "Uint32x2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	for _, file := range []string{"z_uint32x2.go", "z_convert.go"} {
		if _, err := os.Stat(filepath.Join(tmpDir, file)); err != nil {
			t.Errorf("expected %s: %v", file, err)
		}
	}

	cmd = newRootCommand()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with a positional argument succeeded, want error")
	}
}
