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

package perceptron

import "github.com/go-highway/perceptron/hwy"

// Vector is the data-parallel perceptron. Weights are held in
// hwy.NumLanes-wide blocks; an input size of 4 fits exactly one block, which
// is the shape of a single 128-bit float32 register.
//
// Input sizes that are not a multiple of the lane width are supported: the
// lanes past InputSize in the last block are zero and stay zero, because the
// matching input lanes are loaded as zero.
//
// A Vector is not safe for concurrent use while Fit runs. Activation and
// Predict only read and may be called concurrently once training is done.
type Vector[T hwy.Floats] struct {
	model[T]
	blocks []hwy.Vec[T]
}

// NewVector creates a vectorized perceptron with inputSize features.
// Options and defaults are the same as for NewScalar; the same seed yields
// the same initial weights.
func NewVector[T hwy.Floats](learningRate T, inputSize int, opts ...Option) (*Vector[T], error) {
	o := buildOptions(opts)
	m, err := newModel(learningRate, inputSize, o)
	if err != nil {
		return nil, err
	}
	w, err := initialWeights[T](inputSize, o)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{model: m, blocks: hwy.LoadBlocks(w)}, nil
}

// Weights returns a copy of the weights as a slice of InputSize elements.
func (v *Vector[T]) Weights() []T {
	w := make([]T, v.inputSize)
	hwy.StoreBlocks(v.blocks, w)
	return w
}

// Blocks returns a copy of the weight vectors, padding lanes included.
func (v *Vector[T]) Blocks() []hwy.Vec[T] {
	return append([]hwy.Vec[T](nil), v.blocks...)
}

// Activation returns bias + Σ weights[i]*input[i], computed as a lane-wise
// multiply, a lane-wise accumulation across blocks and one horizontal sum.
// It panics if len(input) != InputSize().
func (v *Vector[T]) Activation(input []T) T {
	v.checkInput(input)
	return v.activation(input)
}

// Predict returns +1 if Activation(input) >= 0 and -1 otherwise.
func (v *Vector[T]) Predict(input []T) int {
	return Sign(v.Activation(input))
}

// Fit trains the perceptron with the same loop, validation and result as
// Scalar.Fit.
func (v *Vector[T]) Fit(samples [][]T, labels []int, maxEpochs int) (Result, error) {
	return fit(&v.model, v, samples, labels, maxEpochs)
}

func (v *Vector[T]) activation(input []T) T {
	acc := hwy.Zero[T]()
	for k, w := range v.blocks {
		acc = hwy.Add(acc, hwy.Mul(w, v.load(input, k)))
	}
	return hwy.ReduceSum(acc) + v.bias
}

func (v *Vector[T]) update(input []T, delta T) {
	v.bias += delta
	d := hwy.Set(delta)
	for k, w := range v.blocks {
		v.blocks[k] = hwy.MulAdd(d, v.load(input, k), w)
	}
}

// load returns block k of input; the last block of an unaligned input is
// zero-filled past its TailCount active lanes.
func (v *Vector[T]) load(input []T, k int) hwy.Vec[T] {
	off := k * hwy.NumLanes
	if k < len(v.blocks)-1 || hwy.IsAligned(v.inputSize) {
		return hwy.Load(input[off:])
	}
	return hwy.LoadPartial(input[off : off+hwy.TailCount(v.inputSize)])
}

func (v *Vector[T]) weightsFloat64() []float64 {
	out := make([]float64, v.inputSize)
	for i, w := range v.Weights() {
		out[i] = float64(w)
	}
	return out
}
