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

// Package rsqrt computes approximate reciprocal square roots of fixed-width
// vectors. A hardware estimate of 1/sqrt(x) is refined by Newton-Raphson
// steps whose 0.5 factors are not applied: the caller multiplies the final
// result by a single constant, or folds it into a constant it already has.
//
// # Compositions
//
// Every composition maps a vector of squared values r2 to an unscaled
// estimate of the same width and precision. The caller owes the factor in
// the last column:
//
//	Function      Lanes        Steps                        Caller owes
//	SingleF32x4   4 x float32  Approx, Newton(3)            ScaleSingle (0.5)
//	SingleF32x8   8 x float32  Approx, Newton(3)            ScaleSingle (0.5)
//	SingleF64x4   4 x float64  Approx via f32, Newton(3)     ScaleSingle (0.5)
//	DoubleF64x4   4 x float64  Approx via f32, Newton(3),    ScaleDouble (1/16)
//	                           Newton(12)
//
// After scaling, the single-step compositions are within about 2^-20 of
// the true value, so SingleF64x4 is a low-accuracy double. DoubleF64x4 is
// within about 2^-40.
//
// Lanes where r2 is exactly zero produce 0, not +Inf. Float64 lanes too
// large for float32 produce 0 as well. Negative, NaN, infinite and
// float32-subnormal inputs give unspecified results.
//
// Example, normalising a distance with the factor folded into a force
// coefficient:
//
//	rinv := rsqrt.DoubleF64x4(r2)
//	k := hwy.BroadcastFloat64x4(G * rsqrt.ScaleDouble)
//	f := rinv.Mul(k)
//
// # Dispatch
//
// Kernels register in a Registry keyed by SIMD level. At init the package
// picks the highest-priority kernel the CPU supports and binds the package
// level function variables to it. The selection can be forced:
//
//	HWY_NO_SIMD=1              use the emulated kernel
//	HWY_RSQRT_TARGET=emulated  same
//	HWY_RSQRT_TARGET=avx2      use the AVX2 kernel; init panics if the CPU
//	                           or the build (GOEXPERIMENT=simd) cannot run it
//
// Automatic selection never fails: without AVX2, or in a build without
// GOEXPERIMENT=simd, the emulated kernel is bound. Drivers that need a
// particular level call Require at startup.
//
// # Low-Level SIMD Functions
//
// With GOEXPERIMENT=simd on amd64 the archsimd forms are exported:
//   - Approx_AVX2_F32x8(r2 Float32x8) Float32x8
//   - Approx_AVX2_F64x4(r2 Float64x4) Float64x4
//   - Newton_AVX2_F32x8(rinv, r2, c Float32x8) Float32x8
//   - Newton_AVX2_F64x4(rinv, r2, c Float64x4) Float64x4
//   - Single_AVX2_F32x8(r2 Float32x8) Float32x8
//   - Single_AVX2_F64x4(r2 Float64x4) Float64x4
//   - Double_AVX2_F64x4(r2 Float64x4) Float64x4
package rsqrt
