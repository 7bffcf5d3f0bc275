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

import "fmt"

// MaxIterations is the number of Newton steps Schedule describes.
const MaxIterations = 3

// Step describes one unscaled Newton step in a chain.
type Step struct {
	// Constant is the c passed to Newton for this step.
	Constant float64

	// Scale is the factor the caller owes once this step is the last one.
	Scale float64
}

// Schedule lists the unscaled Newton chain. Schedule[k] is step k+1.
//
// If the true estimate is s*u with u the unscaled value, one textbook step
// 0.5*y*(3 - x*y*y) equals (s*s*s/2) * u*(3/(s*s) - x*u*u). Starting from
// s = 1 that gives c[k+1] = 3/s[k]^2 and s[k+1] = s[k]^3/2.
var Schedule = [MaxIterations]Step{
	{Constant: 3, Scale: 0x1p-1},
	{Constant: 12, Scale: 0x1p-4},
	{Constant: 768, Scale: 0x1p-13},
}

// Deferred factors of the compositions.
const (
	// ScaleSingle is owed by SingleF32x4, SingleF32x8 and SingleF64x4.
	ScaleSingle = 0.5

	// ScaleDouble is owed by DoubleF64x4.
	ScaleDouble = 1.0 / 16
)

// Scale returns the factor owed after the given number of unscaled Newton
// steps. Scale(0) is 1. It panics if iterations is outside [0, MaxIterations].
func Scale(iterations int) float64 {
	if iterations < 0 || iterations > MaxIterations {
		panic(fmt.Sprintf("rsqrt: iterations %d out of range [0, %d]", iterations, MaxIterations))
	}
	if iterations == 0 {
		return 1
	}
	return Schedule[iterations-1].Scale
}

// NewtonConstant returns the constant for step n of an unscaled chain,
// counting from 1. It panics if n is outside [1, MaxIterations].
func NewtonConstant(n int) float64 {
	if n < 1 || n > MaxIterations {
		panic(fmt.Sprintf("rsqrt: step %d out of range [1, %d]", n, MaxIterations))
	}
	return Schedule[n-1].Constant
}
