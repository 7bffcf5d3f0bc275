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

// Package hwy provides fixed-width SIMD lane containers with runtime CPU
// dispatch detection.
//
// The lane types mirror the shape of the simd/archsimd vector types
// (Float32x4, Float32x8, Float64x4) but are plain Go arrays, so they can be
// passed by value, stored in slices and compared with ==. On builds where
// archsimd is available, the *_AVX2 helpers convert between these arrays and
// hardware registers.
//
// Basic usage:
//
//	import "github.com/go-highway/invsqrt/hwy"
//
//	r2 := hwy.LoadFloat32x8Slice(data)
//	est := r2.ReciprocalSqrt()
//	est = est.AndNot(r2.Equal(hwy.Float32x8{}))
//	est.StoreSlice(out)
package hwy

// Float32x4 holds 4 float32 lanes (128-bit, SSE/NEON width).
type Float32x4 [4]float32

// Float32x8 holds 8 float32 lanes (256-bit, AVX width).
type Float32x8 [8]float32

// Float64x4 holds 4 float64 lanes (256-bit, AVX width).
type Float64x4 [4]float64

// Mask32x4 is the result of comparing two Float32x4 vectors.
// Each lane is either all ones (true) or all zeros (false), matching the
// register layout produced by CMPPS.
type Mask32x4 [4]uint32

// Mask32x8 is the result of comparing two Float32x8 vectors.
type Mask32x8 [8]uint32

// Mask64x4 is the result of comparing two Float64x4 vectors.
type Mask64x4 [4]uint64

const (
	laneTrue32 = ^uint32(0)
	laneTrue64 = ^uint64(0)
)
