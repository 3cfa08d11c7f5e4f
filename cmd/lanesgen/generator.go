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
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-lanes/lanes/native"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const convertFile = "z_convert.go"

// Generator renders the vector types of package lanes.
type Generator struct {
	OutputDir string
	Package   string
	Verbose   bool

	// Only restricts the vector files written to the named types.
	Only []string

	written int
}

// Types returns the template data of every binding, in binding order.
func Types() []*VectorType {
	return lo.Map(native.Bindings(), func(b native.Binding, _ int) *VectorType {
		return newVectorType(b)
	})
}

// Run generates the files into g.OutputDir.
func (g *Generator) Run() error {
	types := Types()
	selected := types
	if len(g.Only) > 0 {
		names := lo.Map(types, func(t *VectorType, _ int) string { return t.Name })
		if unknown, _ := lo.Difference(g.Only, names); len(unknown) > 0 {
			return fmt.Errorf("unknown vector types %v", unknown)
		}
		selected = lo.Filter(types, func(t *VectorType, _ int) bool {
			return lo.Contains(g.Only, t.Name)
		})
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var eg errgroup.Group
	for _, t := range selected {
		eg.Go(func() error {
			src, err := g.RenderType(t)
			if err != nil {
				return err
			}
			return g.write(t.File(), src)
		})
	}
	masks := Masks(types)
	for _, m := range masks {
		eg.Go(func() error {
			src, err := g.RenderMask(m)
			if err != nil {
				return err
			}
			return g.write(m.File(), src)
		})
	}
	eg.Go(func() error {
		src, err := g.RenderConvert(types)
		if err != nil {
			return err
		}
		return g.write(convertFile, src)
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	g.written = len(selected) + len(masks) + 1
	return nil
}

// RenderType returns the formatted source of one vector type.
func (g *Generator) RenderType(t *VectorType) ([]byte, error) {
	return g.render(t.File(), t.Layout+".tmpl", t)
}

// RenderMask returns the formatted source of one mask type.
func (g *Generator) RenderMask(m *MaskType) ([]byte, error) {
	return g.render(m.File(), "mask.tmpl", m)
}

// RenderConvert returns the formatted source of the conversions file.
func (g *Generator) RenderConvert(types []*VectorType) ([]byte, error) {
	return g.render(convertFile, "convert.tmpl", newConvertData(types))
}

func (g *Generator) render(file, tmpl string, data any) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lanesgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.packageName())
	fmt.Fprintf(&buf, "import \"github.com/ajroetker/go-lanes/lanes/native\"\n\n")
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return nil, fmt.Errorf("execute %s for %s: %w", tmpl, file, err)
	}
	formatted, err := imports.Process(file, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", file, err, buf.Bytes())
	}
	return formatted, nil
}

func (g *Generator) write(file string, src []byte) error {
	path := filepath.Join(g.OutputDir, file)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	if g.Verbose {
		fmt.Fprintf(os.Stderr, "  wrote %s\n", path)
	}
	return nil
}

func (g *Generator) packageName() string {
	if g.Package == "" {
		return "lanes"
	}
	return g.Package
}
