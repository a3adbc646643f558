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

import (
	"math"

	"github.com/go-highway/perceptron/hwy"
)

// Scalar is the reference perceptron. Weights live in a plain slice and the
// activation is accumulated in four interleaved partial sums, the same
// grouping Vector uses for its lanes.
//
// A Scalar is not safe for concurrent use while Fit runs. Activation and
// Predict only read and may be called concurrently once training is done.
type Scalar[T hwy.Floats] struct {
	model[T]
	weights []T
}

// NewScalar creates a scalar perceptron with inputSize features.
//
// Initial weights come from WithWeights, or are drawn in [0, 1) from the
// generator given by WithSeed or WithRand, or from a randomly seeded one.
// The bias starts at 0 unless WithBias is given.
func NewScalar[T hwy.Floats](learningRate T, inputSize int, opts ...Option) (*Scalar[T], error) {
	o := buildOptions(opts)
	m, err := newModel(learningRate, inputSize, o)
	if err != nil {
		return nil, err
	}
	w, err := initialWeights[T](inputSize, o)
	if err != nil {
		return nil, err
	}
	return &Scalar[T]{model: m, weights: w}, nil
}

// Weights returns a copy of the weights.
func (s *Scalar[T]) Weights() []T {
	return append([]T(nil), s.weights...)
}

// Activation returns bias + Σ weights[i]*input[i].
// It panics if len(input) != InputSize().
func (s *Scalar[T]) Activation(input []T) T {
	s.checkInput(input)
	return s.activation(input)
}

// Predict returns +1 if Activation(input) >= 0 and -1 otherwise.
func (s *Scalar[T]) Predict(input []T) int {
	return Sign(s.Activation(input))
}

// Fit trains the perceptron; see the package documentation.
//
// It returns an error, without touching the weights, if labels and samples
// differ in length, a sample has the wrong number of features, a label is
// not ±1 or maxEpochs is negative. Not converging is not an error: the
// Result reports it and TotalEpochs keeps its previous value.
func (s *Scalar[T]) Fit(samples [][]T, labels []int, maxEpochs int) (Result, error) {
	return fit(&s.model, s, samples, labels, maxEpochs)
}

func (s *Scalar[T]) activation(input []T) T {
	w := s.weights
	x := input[:len(w)]

	// The T conversions round each product so the compiler cannot fuse it
	// into the accumulation.
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(w); i += 4 {
		s0 += T(w[i] * x[i])
		s1 += T(w[i+1] * x[i+1])
		s2 += T(w[i+2] * x[i+2])
		s3 += T(w[i+3] * x[i+3])
	}
	switch len(w) - i {
	case 3:
		s2 += T(w[i+2] * x[i+2])
		fallthrough
	case 2:
		s1 += T(w[i+1] * x[i+1])
		fallthrough
	case 1:
		s0 += T(w[i] * x[i])
	}
	return (s0 + s1) + (s2 + s3) + s.bias
}

// update adds delta*input with one rounding per weight, the same fused
// multiply-add hwy.MulAdd applies to each lane of Vector.
func (s *Scalar[T]) update(input []T, delta T) {
	s.bias += delta
	d := float64(delta)
	for i, w := range s.weights {
		s.weights[i] = T(math.FMA(d, float64(input[i]), float64(w)))
	}
}

func (s *Scalar[T]) weightsFloat64() []float64 {
	out := make([]float64, len(s.weights))
	for i, v := range s.weights {
		out[i] = float64(v)
	}
	return out
}
