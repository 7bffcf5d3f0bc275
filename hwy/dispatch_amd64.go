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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there is no way to reach vector registers from Go, so the
// level stays scalar and the lane types run emulated. The CPU features are
// still recorded so callers can report what a simd build would use.

var (
	// hasAVX2 indicates AVX2 support (Haswell+).
	hasAVX2 bool

	// hasFMA indicates FMA3 support, always present alongside AVX2 on Intel.
	hasFMA bool
)

func init() {
	detectFeatures()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectFeatures() {
	hasAVX2 = cpu.X86.HasAVX2
	hasFMA = cpu.X86.HasFMA
}

func detectCPUFeatures() {
	// Build with GOEXPERIMENT=simd for AVX2/AVX512 dispatch.
	setScalarMode()
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return hasAVX2
}

// HasFMA returns true if the CPU supports FMA3 instructions.
func HasFMA() bool {
	return hasFMA
}

// HasASIMD returns false on x86 (ASIMD is the ARM NEON feature flag).
func HasASIMD() bool {
	return false
}
