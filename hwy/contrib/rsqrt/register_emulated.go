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

import "github.com/cwbudde/algo-vecmath/cpu"

// EmulatedTarget is the name of the pure Go kernel.
const EmulatedTarget = "emulated"

func init() {
	Global.Register(Kernel{
		Name:        EmulatedTarget,
		SIMDLevel:   cpu.SIMDNone,
		Priority:    0,
		ApproxF32x4: BaseApproxF32x4,
		ApproxF32x8: BaseApproxF32x8,
		ApproxF64x4: BaseApproxF64x4,
		SingleF32x4: BaseSingleF32x4,
		SingleF32x8: BaseSingleF32x8,
		SingleF64x4: BaseSingleF64x4,
		DoubleF64x4: BaseDoubleF64x4,
	})
}
