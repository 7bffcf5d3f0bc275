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

package hwy

import "simd/archsimd"

// This file bridges the lane arrays and archsimd registers. Loads and stores
// go through memory; callers that chain several operations should convert
// once, work on archsimd values, and convert back at the end.

// LoadAVX2 moves the 8 lanes into a YMM register.
func (v Float32x8) LoadAVX2() archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(v[:])
}

// LoadAVX2 moves the 4 lanes into a YMM register.
func (v Float64x4) LoadAVX2() archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(v[:])
}

// LoadAVX2 moves the 4 lanes into the lower half of a YMM register.
// The upper 4 lanes are zero.
func (v Float32x4) LoadAVX2() archsimd.Float32x8 {
	return Combine(v, Float32x4{}).LoadAVX2()
}

// StoreAVX2_F32x8 copies a YMM register back into a lane array.
func StoreAVX2_F32x8(x archsimd.Float32x8) Float32x8 {
	var r Float32x8
	x.Store((*[8]float32)(&r))
	return r
}

// StoreAVX2_F64x4 copies a YMM register back into a lane array.
func StoreAVX2_F64x4(x archsimd.Float64x4) Float64x4 {
	var r Float64x4
	x.Store((*[4]float64)(&r))
	return r
}

// ReciprocalSqrt_AVX2_F32x8 computes the hardware 1/sqrt(x) estimate with
// VRSQRTPS. Relative error is at most 1.5 * 2^-12.
func ReciprocalSqrt_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.ReciprocalSqrt()
}

// DemoteF64ToF32_AVX2 demotes 4 float64 lanes to 4 float32 lanes.
// The result occupies the lower 4 lanes of a Float32x8; the upper 4 are zero.
func DemoteF64ToF32_AVX2(v archsimd.Float64x4) archsimd.Float32x8 {
	return StoreAVX2_F64x4(v).DemoteToFloat32().LoadAVX2()
}

// PromoteF32ToF64_AVX2_Lower promotes the lower 4 float32 lanes to float64.
func PromoteF32ToF64_AVX2_Lower(v archsimd.Float32x8) archsimd.Float64x4 {
	return StoreAVX2_F32x8(v).GetLo().PromoteToFloat64().LoadAVX2()
}
