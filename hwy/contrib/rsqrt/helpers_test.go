package rsqrt

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/samber/lo"
)

// runnableKernels returns the registered kernels this CPU can execute.
func runnableKernels(t testing.TB) []Kernel {
	t.Helper()
	ks := lo.Filter(Global.Entries(), func(k Kernel, _ int) bool {
		return cpu.Supports(cpu.DetectFeatures(), k.SIMDLevel)
	})
	if len(ks) == 0 {
		t.Fatal("no runnable kernel registered")
	}
	return ks
}

// sweep returns n values spread geometrically over [from, to].
func sweep(from, to float64, n int) []float64 {
	out := make([]float64, n)
	ratio := math.Pow(to/from, 1/float64(n-1))
	x := from
	for i := range out {
		out[i] = x
		x *= ratio
	}
	out[n-1] = to
	return out
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}
