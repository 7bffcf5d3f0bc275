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

var (
	first32  = float32(Schedule[0].Constant)
	first64  = hwy.BroadcastFloat64x4(Schedule[0].Constant)
	second64 = hwy.BroadcastFloat64x4(Schedule[1].Constant)
)

// BaseSingleF32x4 is the emulated SingleF32x4. Multiply by ScaleSingle.
func BaseSingleF32x4(r2 hwy.Float32x4) hwy.Float32x4 {
	return NewtonF32x4(BaseApproxF32x4(r2), r2, first32)
}

// BaseSingleF32x8 is the emulated SingleF32x8. Multiply by ScaleSingle.
func BaseSingleF32x8(r2 hwy.Float32x8) hwy.Float32x8 {
	return NewtonF32x8(BaseApproxF32x8(r2), r2, first32)
}

// BaseSingleF64x4 is the emulated SingleF64x4. Multiply by ScaleSingle.
func BaseSingleF64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	return NewtonF64x4(BaseApproxF64x4(r2), r2, first64)
}

// BaseDoubleF64x4 is the emulated DoubleF64x4. Multiply by ScaleDouble.
func BaseDoubleF64x4(r2 hwy.Float64x4) hwy.Float64x4 {
	rinv := NewtonF64x4(BaseApproxF64x4(r2), r2, first64)
	return NewtonF64x4(rinv, r2, second64)
}
