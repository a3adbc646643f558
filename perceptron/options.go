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
	"fmt"
	"math/rand/v2"

	"github.com/go-highway/perceptron/hwy"
)

// seedStream is the PCG stream used by WithSeed.
const seedStream = 0x9e3779b97f4a7c15

// Option configures a new Scalar or Vector.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	weights  []float64
	bias     float64
	observer Observer
}

// WithSeed draws the initial weights from a PCG generator seeded with seed.
// Two classifiers built with the same seed and input size start from the
// same weights, whatever their backend.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seedStream))
	}
}

// WithRand draws the initial weights from r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithWeights sets the initial weights. len(weights) must equal the input
// size. It takes precedence over WithSeed and WithRand.
func WithWeights(weights ...float64) Option {
	return func(o *options) {
		o.weights = append([]float64(nil), weights...)
	}
}

// WithBias sets the initial bias. The default is 0.
func WithBias(bias float64) Option {
	return func(o *options) {
		o.bias = bias
	}
}

// WithObserver registers an observer called once per training epoch.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// initialWeights returns inputSize starting weights: the caller's weights if
// given, otherwise values in [0, 1) from the configured generator, or from a
// freshly seeded one.
func initialWeights[T hwy.Floats](inputSize int, o *options) ([]T, error) {
	w := make([]T, inputSize)
	if o.weights != nil {
		if len(o.weights) != inputSize {
			return nil, fmt.Errorf("%w: %d initial weights for input size %d", ErrShape, len(o.weights), inputSize)
		}
		for i, v := range o.weights {
			w[i] = T(v)
		}
		return w, nil
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	// Float32 keeps the draw below 1 for float32 weights and is exact in
	// float64, so both element types see the same values for a seed.
	for i := range w {
		w[i] = T(rng.Float32())
	}
	return w, nil
}
