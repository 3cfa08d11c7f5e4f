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

//go:build !noasm && arm64

package native

import "golang.org/x/sys/cpu"

func init() {
	// Advanced SIMD is part of the ARMv8-A base architecture, and FMLA with
	// it; the flag is still checked to match what the kernel reports.
	if cpu.ARM64.HasASIMD {
		currentISA = ISANEON
		hasFMA = true
	}
	features = detected(
		feature{"asimd", cpu.ARM64.HasASIMD},
		feature{"fphp", cpu.ARM64.HasFPHP},
		feature{"asimdhp", cpu.ARM64.HasASIMDHP},
		feature{"asimddp", cpu.ARM64.HasASIMDDP},
		feature{"sve", cpu.ARM64.HasSVE},
	)
}
