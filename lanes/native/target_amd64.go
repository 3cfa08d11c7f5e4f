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

//go:build !noasm && amd64

package native

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasSSE41 {
		currentISA = ISASSE4
	}
	hasFMA = cpu.X86.HasFMA
	features = detected(
		feature{"sse2", cpu.X86.HasSSE2},
		feature{"ssse3", cpu.X86.HasSSSE3},
		feature{"sse4.1", cpu.X86.HasSSE41},
		feature{"sse4.2", cpu.X86.HasSSE42},
		feature{"avx", cpu.X86.HasAVX},
		feature{"avx2", cpu.X86.HasAVX2},
		feature{"fma", cpu.X86.HasFMA},
		feature{"avx512f", cpu.X86.HasAVX512F},
	)
}
