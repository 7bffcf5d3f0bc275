package rsqrt

import (
	"math"
	"testing"

	"github.com/go-highway/invsqrt/hwy"
	"github.com/go-highway/invsqrt/hwy/contrib/workerpool"
)

var (
	sinkF32x8 hwy.Float32x8
	sinkF64x4 hwy.Float64x4
)

func BenchmarkSingleF32x8(b *testing.B) {
	r2 := hwy.Float32x8{0.5, 1, 2, 3, 4, 5, 6, 7}
	for _, k := range runnableKernels(b) {
		b.Run(k.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				sinkF32x8 = k.SingleF32x8(r2)
			}
		})
	}
}

func BenchmarkDoubleF64x4(b *testing.B) {
	r2 := hwy.Float64x4{0.5, 1, 2, 3}
	for _, k := range runnableKernels(b) {
		b.Run(k.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				sinkF64x4 = k.DoubleF64x4(r2)
			}
		})
	}
}

func BenchmarkFloat64s(b *testing.B) {
	r2 := sliceInput(1024)
	dst := make([]float64, len(r2))
	b.ReportAllocs()
	b.SetBytes(int64(len(r2) * 8))
	for b.Loop() {
		Float64s(dst, r2)
	}
}

func BenchmarkFloat64sStdlib(b *testing.B) {
	r2 := sliceInput(1024)
	dst := make([]float64, len(r2))
	b.ReportAllocs()
	b.SetBytes(int64(len(r2) * 8))
	for b.Loop() {
		for i, x := range r2 {
			dst[i] = 1 / math.Sqrt(x)
		}
	}
}

func BenchmarkFloat64sParallel(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	r2 := sliceInput(1 << 16)
	dst := make([]float64, len(r2))
	b.ReportAllocs()
	b.SetBytes(int64(len(r2) * 8))
	for b.Loop() {
		Float64sParallel(pool, dst, r2)
	}
}
