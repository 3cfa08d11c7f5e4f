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

// Command lanesgen generates the fixed-width vector types of package lanes
// from the binding table in package native.
//
// Usage:
//
//	lanesgen --output ./lanes
//	lanesgen --output ./lanes --only Float32x4,Float32x3 --verbose
//
// Or via go:generate in package lanes:
//
//	//go:generate go run ../cmd/lanesgen --output .
//
// For every binding it renders one z_<type>.go file from the template of
// the binding's layout (register, pair or padded), one z_mask<bits>x<lanes>.go
// file per mask, and z_convert.go with the conversion and reinterpretation
// constructors between all the types.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	gen := &Generator{}
	var only []string
	cmd := &cobra.Command{
		Use:           "lanesgen",
		Short:         "Generate the lanes vector types from the native binding table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen.Only = only
			if err := gen.Run(); err != nil {
				return err
			}
			if gen.Verbose {
				fmt.Fprintf(os.Stderr, "Generated %d files in %s\n", gen.written, gen.OutputDir)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&gen.OutputDir, "output", "o", ".", "Output directory")
	flags.StringVar(&gen.Package, "package", "lanes", "Package name of the generated files")
	flags.BoolVarP(&gen.Verbose, "verbose", "v", false, "Report every generated file on stderr")
	flags.StringSliceVar(&only, "only", nil, "Comma-separated vector types to generate (default: all); masks and z_convert.go are always generated")
	return cmd
}
