// Copyright 2026 go-vla Authors
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

//go:build arm64

package vla

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	// Check for VLA_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}

	// SVE reports scalable registers; without a runtime RDVL probe we
	// conservatively treat them as the 256-bit floor common to Neoverse V1/V2.
	if HasSVE() {
		currentLevel = DispatchSVE
		currentWidth = 32
		currentName = "sve"
	}
}

// HasSVE returns true if the CPU supports ARM SVE instructions and
// SVE has not been disabled via environment variables.
// Returns false when VLA_NO_SIMD or VLA_NO_SVE is set.
func HasSVE() bool {
	if NoSimdEnv() || os.Getenv("VLA_NO_SVE") != "" {
		return false
	}
	return cpu.ARM64.HasSVE
}
