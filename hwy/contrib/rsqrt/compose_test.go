package rsqrt

import (
	"math"
	"testing"

	"github.com/go-highway/invsqrt/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionConvergence(t *testing.T) {
	const (
		singleBound = 0x1p-11
		doubleBound = 0x1p-20
	)

	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			var worst32, worst64, worstDouble float64
			for _, x := range sweep(1e-3, 1e6, 5000) {
				x32 := float32(x)
				exact32 := 1 / math.Sqrt(float64(x32))
				exact := 1 / math.Sqrt(x)

				s4 := k.SingleF32x4(hwy.BroadcastFloat32x4(x32))
				s8 := k.SingleF32x8(hwy.BroadcastFloat32x8(x32))
				s64 := k.SingleF64x4(hwy.BroadcastFloat64x4(x))
				d64 := k.DoubleF64x4(hwy.BroadcastFloat64x4(x))

				e4 := relErr(float64(s4[1]*ScaleSingle), exact32)
				e8 := relErr(float64(s8[5]*ScaleSingle), exact32)
				e64 := relErr(s64[0]*ScaleSingle, exact)
				eDouble := relErr(d64[3]*ScaleDouble, exact)

				require.LessOrEqual(t, e4, singleBound, "SingleF32x4 x=%g", x)
				require.LessOrEqual(t, e8, singleBound, "SingleF32x8 x=%g", x)
				require.LessOrEqual(t, e64, singleBound, "SingleF64x4 x=%g", x)
				require.LessOrEqual(t, eDouble, doubleBound, "DoubleF64x4 x=%g", x)

				worst32 = max(worst32, e4, e8)
				worst64 = max(worst64, e64)
				worstDouble = max(worstDouble, eDouble)
			}
			t.Logf("worst relative error: f32 single %.3g, f64 single %.3g, f64 double %.3g",
				worst32, worst64, worstDouble)
		})
	}
}

func TestCompositionMonotonicAccuracy(t *testing.T) {
	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			for _, x := range sweep(1, 1e6, 5000) {
				exact := 1 / math.Sqrt(x)
				r2 := hwy.BroadcastFloat64x4(x)

				single := math.Abs(k.SingleF64x4(r2)[0]*ScaleSingle - exact)
				double := math.Abs(k.DoubleF64x4(r2)[0]*ScaleDouble - exact)

				// Allow the final roundings of the double chain when the
				// single step already lands on the correctly rounded value.
				slack := 2 * 0x1p-52 * exact
				require.LessOrEqual(t, double, single+slack, "x=%g", x)
			}
		})
	}
}

func TestCompositionScaleConsistency(t *testing.T) {
	values := []float64{1e-3, 0.1, 0.5, 1, 2, 3, 10, 99, 12345.678, 1e6, 3.7e9}
	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			for _, x := range values {
				exact := 1 / math.Sqrt(x)
				d := k.DoubleF64x4(hwy.BroadcastFloat64x4(x))
				assert.InEpsilon(t, exact, d[0]*ScaleDouble, 1e-9, "DoubleF64x4 x=%g", x)

				s := k.SingleF64x4(hwy.BroadcastFloat64x4(x))
				assert.InEpsilon(t, exact, s[0]*ScaleSingle, 1e-5, "SingleF64x4 x=%g", x)

				f := k.SingleF32x8(hwy.BroadcastFloat32x8(float32(x)))
				assert.InEpsilon(t, exact, float64(f[0]*ScaleSingle), 1e-5, "SingleF32x8 x=%g", x)
			}
		})
	}
}

func TestCompositionZeroLanes(t *testing.T) {
	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			s4 := k.SingleF32x4(hwy.Float32x4{0, 4, 0, 16})
			assert.Equal(t, float32(0), s4[0])
			assert.Equal(t, float32(0), s4[2])
			assert.InEpsilon(t, 0.5, float64(s4[1]*ScaleSingle), 2e-6)

			s8 := k.SingleF32x8(hwy.Float32x8{1, 0, 1, 0, 1, 0, 1, 0})
			for i := 1; i < 8; i += 2 {
				assert.Equal(t, float32(0), s8[i], "SingleF32x8 lane %d", i)
			}

			assert.Equal(t, hwy.Float64x4{}, k.SingleF64x4(hwy.Float64x4{}))
			d := k.DoubleF64x4(hwy.Float64x4{0, 1, 0, 1})
			assert.Equal(t, 0.0, d[0])
			assert.Equal(t, 0.0, d[2])
			assert.False(t, math.IsNaN(d[1]))
		})
	}
}

func TestCompositionLaneIndependence(t *testing.T) {
	in := hwy.Float32x8{0.5, 7, 0, 1e4, 3, 2e-3, 42, 1}
	perm := [8]int{3, 7, 0, 5, 1, 6, 2, 4}

	var permuted hwy.Float32x8
	for i, p := range perm {
		permuted[i] = in[p]
	}

	in64 := hwy.Float64x4{1e5, 0, 3, 0.25}
	perm64 := [4]int{2, 0, 3, 1}
	var permuted64 hwy.Float64x4
	for i, p := range perm64 {
		permuted64[i] = in64[p]
	}

	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			out, outPerm := k.SingleF32x8(in), k.SingleF32x8(permuted)
			for i, p := range perm {
				assert.Equal(t, out[p], outPerm[i], "SingleF32x8 lane %d", i)
			}

			low, lowPerm := k.SingleF32x4(in.GetLo()), k.SingleF32x4(hwy.Float32x4{in[3], in[0], in[1], in[2]})
			assert.Equal(t, hwy.Float32x4{low[3], low[0], low[1], low[2]}, lowPerm)

			for _, fn := range []func(hwy.Float64x4) hwy.Float64x4{k.SingleF64x4, k.DoubleF64x4} {
				out64, outPerm64 := fn(in64), fn(permuted64)
				for i, p := range perm64 {
					assert.Equal(t, out64[p], outPerm64[i], "f64x4 lane %d", i)
				}
			}
		})
	}
}

func TestDoubleF64x4Scenario(t *testing.T) {
	want := []float64{1.0, 0.70711, 0.57735, 0.5}
	for _, k := range runnableKernels(t) {
		t.Run(k.Name, func(t *testing.T) {
			got := k.DoubleF64x4(hwy.Float64x4{1, 2, 3, 4})
			for i := range want {
				assert.InEpsilon(t, 1/math.Sqrt(float64(i+1)), got[i]*ScaleDouble, 1e-6, "lane %d", i)
				assert.InDelta(t, want[i], got[i]*ScaleDouble, 5e-6, "lane %d", i)
			}
		})
	}
}

func TestKernelsAgree(t *testing.T) {
	ks := runnableKernels(t)
	if len(ks) < 2 {
		t.Skip("only one kernel runnable on this CPU")
	}
	ref := ks[len(ks)-1]
	for _, k := range ks[:len(ks)-1] {
		for _, x := range sweep(1e-2, 1e5, 300) {
			r2 := hwy.BroadcastFloat64x4(x)
			assert.InEpsilon(t, ref.DoubleF64x4(r2)[0], k.DoubleF64x4(r2)[0], 1e-10, "%s vs %s x=%g", k.Name, ref.Name, x)
		}

		// Lanes beyond the float32 range and zero lanes are exactly +0 on
		// every kernel.
		r2 := hwy.Float64x4{1e39, 1e300, 0, 1}
		want, got := ref.DoubleF64x4(r2), k.DoubleF64x4(r2)
		assert.Equal(t, want[:3], got[:3], "%s vs %s DoubleF64x4", k.Name, ref.Name)
		want, got = ref.SingleF64x4(r2), k.SingleF64x4(r2)
		assert.Equal(t, want[:3], got[:3], "%s vs %s SingleF64x4", k.Name, ref.Name)
	}
}
