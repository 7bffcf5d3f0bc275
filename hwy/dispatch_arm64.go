//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

var hasASIMD bool

func init() {
	hasASIMD = cpu.ARM64.HasASIMD

	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if hasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

// HasAVX2 returns false on ARM64.
func HasAVX2() bool {
	return false
}

// HasFMA returns true; fused multiply-add is part of the ARMv8-A base ISA.
func HasFMA() bool {
	return true
}

// HasASIMD returns true if the CPU supports ARM Advanced SIMD (NEON).
func HasASIMD() bool {
	return hasASIMD
}
