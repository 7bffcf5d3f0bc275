//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setScalarMode()
}

// HasAVX2 returns false on non-x86 platforms.
func HasAVX2() bool {
	return false
}

// HasFMA returns false; no fused multiply-add path is wired on this platform.
func HasFMA() bool {
	return false
}

// HasASIMD returns false on non-ARM64 platforms.
func HasASIMD() bool {
	return false
}
