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

package hwy

import "math"

// Constants for the bit-level reciprocal square root estimate.
//
// The magic constant halves the biased exponent and subtracts it from a
// shifted bias, giving a first guess within ~3.5% of 1/sqrt(x). The single
// fused correction y * gain * (bias - x*y*y) then lands within ~6.5e-4
// relative error (Moroz et al., 2018), comparable to RSQRTPS (1.5 * 2^-12)
// and well inside the 2^-10 budget the Newton pipeline is designed around.
const (
	rsqrtMagic32 = 0x5f1ffff9
	rsqrtGain32  = float32(0.703952253)
	rsqrtBias32  = float32(2.38924456)
)

// RSqrtEstimateMaxRelErr bounds the relative error of ReciprocalSqrt for
// positive normal float32 inputs.
const RSqrtEstimateMaxRelErr = 1.0 / 1024

// rsqrtEstimate32 approximates 1/sqrt(x) for a positive normal float32.
// +Inf maps to +0, as with RSQRTPS.
func rsqrtEstimate32(x float32) float32 {
	if math.IsInf(float64(x), 1) {
		return 0
	}
	i := rsqrtMagic32 - math.Float32bits(x)>>1
	y := math.Float32frombits(i)
	return y * rsqrtGain32 * (rsqrtBias32 - x*y*y)
}
