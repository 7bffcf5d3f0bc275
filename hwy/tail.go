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

// Lane counts of the fixed-width vector types.
const (
	LanesFloat32x4 = len(Float32x4{})
	LanesFloat32x8 = len(Float32x8{})
	LanesFloat64x4 = len(Float64x4{})
)

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), hwy.LanesFloat32x8,
//	    func(offset int) {
//	        v := hwy.LoadFloat32x8Slice(data[offset:])
//	        v.Mul(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        var buf hwy.Float32x8
//	        copy(buf[:], data[offset:offset+count])
//	        r := buf.Mul(buf)
//	        copy(output[offset:offset+count], r[:count])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		return
	}

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if !IsAligned(size, lanes) {
		tailFn(fullVectors*lanes, size%lanes)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}
