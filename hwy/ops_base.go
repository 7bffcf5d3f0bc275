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

// This file provides pure Go implementations of the lane operations.
// Every operation is lane-wise: lane i of the result depends only on lane i
// of the operands. Loops run over fixed-size arrays so the compiler can
// unroll them and keep the values in registers.

// ============================================================================
// Float32x4
// ============================================================================

// BroadcastFloat32x4 returns a vector with all lanes set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// LoadFloat32x4Slice loads the first 4 elements of s.
// It panics if len(s) < 4.
func LoadFloat32x4Slice(s []float32) Float32x4 {
	return Float32x4(s[:4])
}

// StoreSlice writes the 4 lanes to s. It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	copy(s[:4], v[:])
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(o Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Equal compares lanes for ordered equality. NaN lanes compare false.
func (v Float32x4) Equal(o Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		if v[i] == o[i] {
			m[i] = laneTrue32
		}
	}
	return m
}

// AndNot clears the bits of every lane selected by m (v &^ m).
// Lanes where m is true become +0.0; other lanes are returned unchanged.
func (v Float32x4) AndNot(m Mask32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ m[i])
	}
	return r
}

// ReciprocalSqrt returns a per-lane estimate of 1/sqrt(x) with roughly
// 11 bits of precision for positive normal lanes, the same accuracy class
// as RSQRTPS. +Inf lanes give +0. The result for zero, subnormal, negative
// or NaN lanes is unspecified.
func (v Float32x4) ReciprocalSqrt() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = rsqrtEstimate32(v[i])
	}
	return r
}

// PromoteToFloat64 widens every lane to float64.
func (v Float32x4) PromoteToFloat64() Float64x4 {
	return Float64x4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// ============================================================================
// Float32x8
// ============================================================================

// BroadcastFloat32x8 returns a vector with all lanes set to v.
func BroadcastFloat32x8(v float32) Float32x8 {
	return Float32x8{v, v, v, v, v, v, v, v}
}

// LoadFloat32x8Slice loads the first 8 elements of s.
// It panics if len(s) < 8.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return Float32x8(s[:8])
}

// StoreSlice writes the 8 lanes to s. It panics if len(s) < 8.
func (v Float32x8) StoreSlice(s []float32) {
	copy(s[:8], v[:])
}

// GetLo returns lanes 0-3.
func (v Float32x8) GetLo() Float32x4 {
	return Float32x4(v[:4])
}

// GetHi returns lanes 4-7.
func (v Float32x8) GetHi() Float32x4 {
	return Float32x4(v[4:])
}

// Combine builds a Float32x8 from two halves.
func Combine(lo, hi Float32x4) Float32x8 {
	return Float32x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// Mul performs element-wise multiplication.
func (v Float32x8) Mul(o Float32x8) Float32x8 {
	var r Float32x8
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float32x8) Sub(o Float32x8) Float32x8 {
	var r Float32x8
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Equal compares lanes for ordered equality. NaN lanes compare false.
func (v Float32x8) Equal(o Float32x8) Mask32x8 {
	var m Mask32x8
	for i := range v {
		if v[i] == o[i] {
			m[i] = laneTrue32
		}
	}
	return m
}

// AndNot clears the bits of every lane selected by m (v &^ m).
func (v Float32x8) AndNot(m Mask32x8) Float32x8 {
	var r Float32x8
	for i := range v {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ m[i])
	}
	return r
}

// ReciprocalSqrt returns a per-lane estimate of 1/sqrt(x), see
// Float32x4.ReciprocalSqrt.
func (v Float32x8) ReciprocalSqrt() Float32x8 {
	var r Float32x8
	for i := range v {
		r[i] = rsqrtEstimate32(v[i])
	}
	return r
}

// ============================================================================
// Float64x4
// ============================================================================

// BroadcastFloat64x4 returns a vector with all lanes set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return Float64x4{v, v, v, v}
}

// LoadFloat64x4Slice loads the first 4 elements of s.
// It panics if len(s) < 4.
func LoadFloat64x4Slice(s []float64) Float64x4 {
	return Float64x4(s[:4])
}

// StoreSlice writes the 4 lanes to s. It panics if len(s) < 4.
func (v Float64x4) StoreSlice(s []float64) {
	copy(s[:4], v[:])
}

// Mul performs element-wise multiplication.
func (v Float64x4) Mul(o Float64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float64x4) Sub(o Float64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Equal compares lanes for ordered equality. NaN lanes compare false.
func (v Float64x4) Equal(o Float64x4) Mask64x4 {
	var m Mask64x4
	for i := range v {
		if v[i] == o[i] {
			m[i] = laneTrue64
		}
	}
	return m
}

// AndNot clears the bits of every lane selected by m (v &^ m).
func (v Float64x4) AndNot(m Mask64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = math.Float64frombits(math.Float64bits(v[i]) &^ m[i])
	}
	return r
}

// DemoteToFloat32 narrows every lane to float32 with round-to-nearest.
// Values outside the float32 range become ±Inf; values below the smallest
// float32 subnormal become ±0.
func (v Float64x4) DemoteToFloat32() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}
