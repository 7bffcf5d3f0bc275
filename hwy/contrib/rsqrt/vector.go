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

// Arith is the lane arithmetic a Newton step needs.
type Arith[V any] interface {
	Mul(V) V
	Sub(V) V
}

// Vector is the set of lane operations the pipeline is written against.
// V is the lane type and M the mask type its Equal returns. The zero value
// of V must be the all-zero vector.
type Vector[V any, M any] interface {
	Arith[V]
	Equal(V) M
	AndNot(M) V
	ReciprocalSqrt() V
}
