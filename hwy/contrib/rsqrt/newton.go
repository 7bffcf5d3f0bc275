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

// Newton applies one Newton-Raphson step to the estimate rinv of
// 1/sqrt(r2):
//
//	rinv * (c - r2 * rinv * rinv)
//
// The 0.5 of the textbook update is not applied. Use c = 3 on a raw
// estimate; on the output of an unscaled step use the next constant from
// Schedule (12 after one step).
func Newton[V Arith[V]](rinv, r2, c V) V {
	return rinv.Mul(c.Sub(r2.Mul(rinv).Mul(rinv)))
}

// NewtonF32x4 is Newton for 4 float32 lanes with a scalar constant.
func NewtonF32x4(rinv, r2 hwy.Float32x4, c float32) hwy.Float32x4 {
	return Newton(rinv, r2, hwy.BroadcastFloat32x4(c))
}

// NewtonF32x8 is Newton for 8 float32 lanes with a scalar constant.
func NewtonF32x8(rinv, r2 hwy.Float32x8, c float32) hwy.Float32x8 {
	return Newton(rinv, r2, hwy.BroadcastFloat32x8(c))
}

// NewtonF64x4 is Newton for 4 float64 lanes. The constant is passed
// pre-broadcast so a loop can hoist it.
func NewtonF64x4(rinv, r2, c hwy.Float64x4) hwy.Float64x4 {
	return Newton(rinv, r2, c)
}
