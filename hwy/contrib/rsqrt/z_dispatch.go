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

// NOTE: This file is named "z_dispatch.go" (starting with 'z') so its init()
// runs after every kernel file has registered.

package rsqrt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/go-highway/invsqrt/hwy"
	"github.com/samber/lo"
)

// TargetEnv names the environment variable that forces a kernel by name.
const TargetEnv = "HWY_RSQRT_TARGET"

// ErrUnsupportedTarget is returned when a requested kernel or SIMD level
// cannot run on this CPU or was not compiled into the binary.
var ErrUnsupportedTarget = errors.New("rsqrt: unsupported target")

// ApproxF32x4 returns the estimate of 1/sqrt(r2) with zero lanes forced to 0.
var ApproxF32x4 func(r2 hwy.Float32x4) hwy.Float32x4

// ApproxF32x8 returns the estimate of 1/sqrt(r2) with zero lanes forced to 0.
var ApproxF32x8 func(r2 hwy.Float32x8) hwy.Float32x8

// ApproxF64x4 returns the estimate of 1/sqrt(r2) with zero lanes forced to 0,
// computed in float32.
var ApproxF64x4 func(r2 hwy.Float64x4) hwy.Float64x4

// SingleF32x4 returns 2/sqrt(r2) after one Newton step.
// Multiply by ScaleSingle.
var SingleF32x4 func(r2 hwy.Float32x4) hwy.Float32x4

// SingleF32x8 returns 2/sqrt(r2) after one Newton step.
// Multiply by ScaleSingle.
var SingleF32x8 func(r2 hwy.Float32x8) hwy.Float32x8

// SingleF64x4 returns 2/sqrt(r2) after one Newton step on a float32
// estimate. Multiply by ScaleSingle.
var SingleF64x4 func(r2 hwy.Float64x4) hwy.Float64x4

// DoubleF64x4 returns 16/sqrt(r2) after two Newton steps on a float32
// estimate. Multiply by ScaleDouble.
var DoubleF64x4 func(r2 hwy.Float64x4) hwy.Float64x4

var (
	// features is the CPU feature set after HWY_NO_SIMD is applied.
	features cpu.Features

	active Kernel
)

func init() {
	features = effectiveFeatures(cpu.DetectFeatures(), hwy.NoSimdEnv())

	k, err := selectKernel(Global, os.Getenv(TargetEnv), features)
	if err != nil {
		panic(fmt.Errorf("%s=%q: %w", TargetEnv, os.Getenv(TargetEnv), err))
	}
	bind(k)
}

func effectiveFeatures(f cpu.Features, noSimd bool) cpu.Features {
	if noSimd {
		f.ForceGeneric = true
	}
	return f
}

// selectKernel resolves a target name against the registry. An empty name
// or "auto" picks the best supported kernel.
func selectKernel(r *Registry, target string, f cpu.Features) (*Kernel, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" || target == "auto" {
		k := r.Lookup(f)
		if k == nil {
			return nil, fmt.Errorf("%w: no kernel registered for %s", ErrUnsupportedTarget, f.Architecture)
		}
		return k, nil
	}

	k := r.ByName(target)
	if k == nil {
		return nil, fmt.Errorf("%w: %q is not compiled into this binary", ErrUnsupportedTarget, target)
	}
	if !cpu.Supports(f, k.SIMDLevel) {
		return nil, fmt.Errorf("%w: %q needs %s", ErrUnsupportedTarget, target, k.SIMDLevel)
	}
	return k, nil
}

func bind(k *Kernel) {
	active = *k
	ApproxF32x4 = k.ApproxF32x4
	ApproxF32x8 = k.ApproxF32x8
	ApproxF64x4 = k.ApproxF64x4
	SingleF32x4 = k.SingleF32x4
	SingleF32x8 = k.SingleF32x8
	SingleF64x4 = k.SingleF64x4
	DoubleF64x4 = k.DoubleF64x4
}

// Active returns the kernel the package-level functions are bound to.
func Active() Kernel {
	return active
}

// Select rebinds the package-level functions to the named kernel.
// It must not be called concurrently with them.
func Select(name string) error {
	k, err := selectKernel(Global, name, features)
	if err != nil {
		return err
	}
	bind(k)
	return nil
}

// Require reports an error wrapping ErrUnsupportedTarget unless a kernel
// at the given SIMD level is compiled in and supported by this CPU.
func Require(level cpu.SIMDLevel) error {
	if !cpu.Supports(features, level) {
		return fmt.Errorf("%w: CPU lacks %s", ErrUnsupportedTarget, level)
	}
	if lo.ContainsBy(Global.Entries(), func(k Kernel) bool { return k.SIMDLevel == level }) {
		return nil
	}
	return fmt.Errorf("%w: no %s kernel in this build", ErrUnsupportedTarget, level)
}
