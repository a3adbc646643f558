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

// Package hwy provides the fixed-width lane operations used by the vectorized
// perceptron backend.
//
// A Vec holds exactly NumLanes elements, the shape of a 128-bit register of
// float32 values (SSE __m128 or a NEON q register). Operations are written as
// fixed-length array loops so the compiler can keep a Vec in registers, and
// the reduction order of ReduceSum is fixed so results are reproducible across
// targets.
//
// Basic usage:
//
//	w := hwy.Load(weights)
//	x := hwy.Load(input)
//	score := hwy.ReduceSum(hwy.Mul(w, x))
//
//	// w += delta * x
//	w = hwy.MulAdd(hwy.Set(delta), x, w)
//	hwy.Store(w, weights)
package hwy

// NumLanes is the number of lanes in a Vec.
const NumLanes = 4

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a fixed-width group of NumLanes values.
//
// Vec is a value type: operations return new vectors and never alias their
// inputs. Use Load, LoadPartial, Set or Zero to create one.
type Vec[T Floats] struct {
	lanes [NumLanes]T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return NumLanes
}

// Lanes returns a copy of the lane values.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Lanes() [NumLanes]T {
	return v.lanes
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
