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

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/go-highway/invsqrt/hwy"
)

// Kernel is one implementation of the pipeline for a SIMD level.
// All function fields must be set.
type Kernel struct {
	// Name identifies the kernel for HWY_RSQRT_TARGET and Select.
	Name string

	// SIMDLevel is the instruction set the kernel needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible kernels; higher wins.
	//   - emulated (SIMDNone): 0
	//   - AVX2: 20
	Priority int

	ApproxF32x4 func(r2 hwy.Float32x4) hwy.Float32x4
	ApproxF32x8 func(r2 hwy.Float32x8) hwy.Float32x8
	ApproxF64x4 func(r2 hwy.Float64x4) hwy.Float64x4

	SingleF32x4 func(r2 hwy.Float32x4) hwy.Float32x4
	SingleF32x8 func(r2 hwy.Float32x8) hwy.Float32x8
	SingleF64x4 func(r2 hwy.Float64x4) hwy.Float64x4
	DoubleF64x4 func(r2 hwy.Float64x4) hwy.Float64x4
}

// Registry holds the kernels compiled into the binary.
//
// Kernels register from init functions. Registration must complete before
// the first Lookup; the package's own selection runs in the last init of
// the package.
type Registry struct {
	mu      sync.RWMutex
	entries []Kernel
	sorted  bool
}

// Global is the registry the package-level functions dispatch through.
var Global = &Registry{}

// Register adds a kernel.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, k)
	r.sorted = false
}

// Lookup returns the highest-priority kernel supported by features, or nil
// if none is.
func (r *Registry) Lookup(features cpu.Features) *Kernel {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()
	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			k := r.entries[i]
			return &k
		}
	}
	return nil
}

// ByName returns the kernel with the given name, or nil.
func (r *Registry) ByName(name string) *Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			k := r.entries[i]
			return &k
		}
	}
	return nil
}

// Entries returns a copy of the registered kernels, highest priority first.
func (r *Registry) Entries() []Kernel {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()
	return slices.Clone(r.entries)
}

// Reset removes all kernels. For tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sortLocked orders entries by descending priority, keeping registration
// order among equals. r.mu must be held for writing.
func (r *Registry) sortLocked() {
	if r.sorted {
		return
	}
	slices.SortStableFunc(r.entries, func(a, b Kernel) int {
		return b.Priority - a.Priority
	})
	r.sorted = true
}
