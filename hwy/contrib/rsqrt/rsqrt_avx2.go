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

//go:build amd64 && goexperiment.simd

package rsqrt

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/go-highway/invsqrt/hwy"
)

// AVX2Target is the name of the archsimd kernel.
const AVX2Target = "avx2"

func init() {
	Global.Register(Kernel{
		Name:        AVX2Target,
		SIMDLevel:   cpu.SIMDAVX2,
		Priority:    20,
		ApproxF32x4: approxAVX2F32x4,
		ApproxF32x8: approxAVX2F32x8,
		ApproxF64x4: approxAVX2F64x4,
		SingleF32x4: singleAVX2F32x4,
		SingleF32x8: singleAVX2F32x8,
		SingleF64x4: singleAVX2F64x4,
		DoubleF64x4: doubleAVX2F64x4,
	})
}

var (
	rsqrt32_zero   = archsimd.BroadcastFloat32x8(0)
	rsqrt32_first  = archsimd.BroadcastFloat32x8(float32(Schedule[0].Constant))
	rsqrt64_first  = archsimd.BroadcastFloat64x4(Schedule[0].Constant)
	rsqrt64_second = archsimd.BroadcastFloat64x4(Schedule[1].Constant)
)

// Approx_AVX2_F32x8 computes the VRSQRTPS estimate and zeroes lanes where
// r2 == 0.
func Approx_AVX2_F32x8(r2 archsimd.Float32x8) archsimd.Float32x8 {
	est := hwy.ReciprocalSqrt_AVX2_F32x8(r2)
	// Merge semantics: a.Merge(b, mask) returns a when TRUE, b when FALSE
	return rsqrt32_zero.Merge(est, r2.Equal(rsqrt32_zero))
}

// Approx_AVX2_F64x4 narrows r2 to float32, runs Approx_AVX2_F32x8 and
// widens the estimate.
func Approx_AVX2_F64x4(r2 archsimd.Float64x4) archsimd.Float64x4 {
	return hwy.PromoteF32ToF64_AVX2_Lower(Approx_AVX2_F32x8(hwy.DemoteF64ToF32_AVX2(r2)))
}

// Newton_AVX2_F32x8 computes rinv * (c - r2*rinv*rinv).
func Newton_AVX2_F32x8(rinv, r2, c archsimd.Float32x8) archsimd.Float32x8 {
	return rinv.Mul(c.Sub(r2.Mul(rinv).Mul(rinv)))
}

// Newton_AVX2_F64x4 computes rinv * (c - r2*rinv*rinv).
func Newton_AVX2_F64x4(rinv, r2, c archsimd.Float64x4) archsimd.Float64x4 {
	return rinv.Mul(c.Sub(r2.Mul(rinv).Mul(rinv)))
}

// Single_AVX2_F32x8 is SingleF32x8 on registers. Multiply by ScaleSingle.
func Single_AVX2_F32x8(r2 archsimd.Float32x8) archsimd.Float32x8 {
	return Newton_AVX2_F32x8(Approx_AVX2_F32x8(r2), r2, rsqrt32_first)
}

// Single_AVX2_F64x4 is SingleF64x4 on registers. Multiply by ScaleSingle.
func Single_AVX2_F64x4(r2 archsimd.Float64x4) archsimd.Float64x4 {
	return Newton_AVX2_F64x4(Approx_AVX2_F64x4(r2), r2, rsqrt64_first)
}

// Double_AVX2_F64x4 is DoubleF64x4 on registers. Multiply by ScaleDouble.
func Double_AVX2_F64x4(r2 archsimd.Float64x4) archsimd.Float64x4 {
	rinv := Newton_AVX2_F64x4(Approx_AVX2_F64x4(r2), r2, rsqrt64_first)
	return Newton_AVX2_F64x4(rinv, r2, rsqrt64_second)
}

// The Float32x4 kernels run in the lower half of a YMM register. The upper
// lanes load as zero and are masked, so they never produce Inf.

func approxAVX2F32x4(r2 hwy.Float32x4) hwy.Float32x4 {
	return hwy.StoreAVX2_F32x8(Approx_AVX2_F32x8(r2.LoadAVX2())).GetLo()
}

func approxAVX2F32x8(r2 hwy.Float32x8) hwy.Float32x8 {
	return hwy.StoreAVX2_F32x8(Approx_AVX2_F32x8(r2.LoadAVX2()))
}

func approxAVX2F64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	return hwy.StoreAVX2_F64x4(Approx_AVX2_F64x4(r2.LoadAVX2()))
}

func singleAVX2F32x4(r2 hwy.Float32x4) hwy.Float32x4 {
	return hwy.StoreAVX2_F32x8(Single_AVX2_F32x8(r2.LoadAVX2())).GetLo()
}

func singleAVX2F32x8(r2 hwy.Float32x8) hwy.Float32x8 {
	return hwy.StoreAVX2_F32x8(Single_AVX2_F32x8(r2.LoadAVX2()))
}

func singleAVX2F64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	return hwy.StoreAVX2_F64x4(Single_AVX2_F64x4(r2.LoadAVX2()))
}

func doubleAVX2F64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	return hwy.StoreAVX2_F64x4(Double_AVX2_F64x4(r2.LoadAVX2()))
}
