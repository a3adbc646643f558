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

import (
	"fmt"
	"math"
)

// Load creates a vector from the first NumLanes elements of src.
// It panics if src holds fewer than NumLanes elements; use LoadPartial for
// a tail.
func Load[T Floats](src []T) Vec[T] {
	if len(src) < NumLanes {
		panic(fmt.Sprintf("hwy: Load of %d elements, need %d", len(src), NumLanes))
	}
	var v Vec[T]
	copy(v.lanes[:], src[:NumLanes])
	return v
}

// LoadPartial creates a vector from up to NumLanes elements of src.
// Lanes past len(src) are zero, so they contribute nothing to Mul, MulAdd
// or ReduceSum.
func LoadPartial[T Floats](src []T) Vec[T] {
	var v Vec[T]
	copy(v.lanes[:], src)
	return v
}

// Store writes all NumLanes lanes of v to dst.
// It panics if dst holds fewer than NumLanes elements; use StorePartial for
// a tail.
func Store[T Floats](v Vec[T], dst []T) {
	if len(dst) < NumLanes {
		panic(fmt.Sprintf("hwy: Store to %d elements, need %d", len(dst), NumLanes))
	}
	copy(dst[:NumLanes], v.lanes[:])
}

// StorePartial writes the first min(len(dst), NumLanes) lanes of v to dst.
func StorePartial[T Floats](v Vec[T], dst []T) {
	copy(dst, v.lanes[:])
}

// Set creates a vector with all lanes set to value (a broadcast).
func Set[T Floats](value T) Vec[T] {
	return Vec[T]{lanes: [NumLanes]T{value, value, value, value}}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{}
}

// Add performs lane-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{lanes: [NumLanes]T{
		a.lanes[0] + b.lanes[0],
		a.lanes[1] + b.lanes[1],
		a.lanes[2] + b.lanes[2],
		a.lanes[3] + b.lanes[3],
	}}
}

// Mul performs lane-wise multiplication.
// Each product is rounded to T before it is returned, so a following Add
// observes the same values a scalar multiply-then-add would.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{lanes: [NumLanes]T{
		T(a.lanes[0] * b.lanes[0]),
		T(a.lanes[1] * b.lanes[1]),
		T(a.lanes[2] * b.lanes[2]),
		T(a.lanes[3] * b.lanes[3]),
	}}
}

// MulAdd performs a lane-wise fused multiply-add: a*b + c with a single
// rounding per lane.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range NumLanes {
		r.lanes[i] = fma(a.lanes[i], b.lanes[i], c.lanes[i])
	}
	return r
}

// fma computes a*b + c in float64. For float32 lanes the product of two
// float32 values is exact in float64, so no intermediate product is rounded.
func fma[T Floats](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// ReduceSum sums all lanes with the fixed tree (l0+l1)+(l2+l3).
func ReduceSum[T Floats](v Vec[T]) T {
	lo := v.lanes[0] + v.lanes[1]
	hi := v.lanes[2] + v.lanes[3]
	return lo + hi
}
