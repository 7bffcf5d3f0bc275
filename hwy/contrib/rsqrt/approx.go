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

import "github.com/go-highway/invsqrt/hwy"

// Approx returns the estimate of 1/sqrt(r2) with every lane where r2 == 0
// forced to +0.0. Lanes with non-zero input are the estimate, unmodified.
func Approx[V Vector[V, M], M any](r2 V) V {
	var zero V
	return r2.ReciprocalSqrt().AndNot(r2.Equal(zero))
}

// BaseApproxF32x4 is the emulated Approx for 4 float32 lanes.
func BaseApproxF32x4(r2 hwy.Float32x4) hwy.Float32x4 {
	return Approx[hwy.Float32x4, hwy.Mask32x4](r2)
}

// BaseApproxF32x8 is the emulated Approx for 8 float32 lanes.
func BaseApproxF32x8(r2 hwy.Float32x8) hwy.Float32x8 {
	return Approx[hwy.Float32x8, hwy.Mask32x8](r2)
}

// BaseApproxF64x4 is the emulated Approx for 4 float64 lanes.
//
// There is no double-precision estimate instruction, so r2 is narrowed to
// float32, estimated and masked there, and widened back. Inputs that
// underflow float32 are treated as zero.
func BaseApproxF64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	return BaseApproxF32x4(r2.DemoteToFloat32()).PromoteToFloat64()
}
