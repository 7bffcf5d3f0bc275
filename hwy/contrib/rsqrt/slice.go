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

package rsqrt

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/go-highway/invsqrt/hwy"
	"github.com/go-highway/invsqrt/hwy/contrib/workerpool"
)

// Float32s sets dst[i] = 1/sqrt(r2[i]) using SingleF32x8.
// It panics if the slices differ in length.
func Float32s(dst, r2 []float32) {
	float32s(dst, r2, hwy.BroadcastFloat32x8(ScaleSingle))
}

// Float32sUnscaled is Float32s without the final multiply. It returns the
// factor the caller owes.
func Float32sUnscaled(dst, r2 []float32) float32 {
	float32s(dst, r2, hwy.BroadcastFloat32x8(1))
	return ScaleSingle
}

// Float64s sets dst[i] = 1/sqrt(r2[i]) using DoubleF64x4.
// It panics if the slices differ in length.
func Float64s(dst, r2 []float64) {
	float64s(dst, r2, DoubleF64x4)
	vecmath.ScaleBlockInPlace(dst, ScaleDouble)
}

// Float64sFast sets dst[i] = 1/sqrt(r2[i]) using SingleF64x4, trading
// accuracy (about 2^-20 relative) for one fewer Newton step.
func Float64sFast(dst, r2 []float64) {
	float64s(dst, r2, SingleF64x4)
	vecmath.ScaleBlockInPlace(dst, ScaleSingle)
}

// Float64sUnscaled is Float64s without the final multiply. It returns the
// factor the caller owes.
func Float64sUnscaled(dst, r2 []float64) float64 {
	float64s(dst, r2, DoubleF64x4)
	return ScaleDouble
}

// Float32sParallel is Float32s split across the pool's workers.
// A nil pool runs on the calling goroutine.
func Float32sParallel(pool *workerpool.Pool, dst, r2 []float32) {
	checkLen(len(dst), len(r2))
	pool.ParallelForBlocks(len(r2), hwy.LanesFloat32x8, func(start, end int) {
		Float32s(dst[start:end], r2[start:end])
	})
}

// Float64sParallel is Float64s split across the pool's workers.
// A nil pool runs on the calling goroutine.
func Float64sParallel(pool *workerpool.Pool, dst, r2 []float64) {
	checkLen(len(dst), len(r2))
	pool.ParallelForBlocks(len(r2), hwy.LanesFloat64x4, func(start, end int) {
		Float64s(dst[start:end], r2[start:end])
	})
}

func float32s(dst, r2 []float32, scale hwy.Float32x8) {
	checkLen(len(dst), len(r2))
	hwy.ProcessWithTail(len(r2), hwy.LanesFloat32x8,
		func(offset int) {
			v := hwy.LoadFloat32x8Slice(r2[offset:])
			SingleF32x8(v).Mul(scale).StoreSlice(dst[offset:])
		},
		func(offset, count int) {
			// Padding lanes are zero and come back as zero.
			var buf hwy.Float32x8
			copy(buf[:], r2[offset:offset+count])
			r := SingleF32x8(buf).Mul(scale)
			copy(dst[offset:offset+count], r[:count])
		},
	)
}

func float64s(dst, r2 []float64, fn func(hwy.Float64x4) hwy.Float64x4) {
	checkLen(len(dst), len(r2))
	hwy.ProcessWithTail(len(r2), hwy.LanesFloat64x4,
		func(offset int) {
			fn(hwy.LoadFloat64x4Slice(r2[offset:])).StoreSlice(dst[offset:])
		},
		func(offset, count int) {
			var buf hwy.Float64x4
			copy(buf[:], r2[offset:offset+count])
			r := fn(buf)
			copy(dst[offset:offset+count], r[:count])
		},
	)
}

func checkLen(dst, src int) {
	if dst != src {
		panic("rsqrt: dst and r2 length mismatch")
	}
}
