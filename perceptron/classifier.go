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

	"github.com/go-highway/perceptron/hwy"
)

// Class labels.
const (
	Positive = 1
	Negative = -1
)

// Classifier is a trainable binary linear classifier.
//
// Scalar and Vector implement it; code that only trains and predicts should
// accept a Classifier so either backend can be swapped in.
type Classifier[T hwy.Floats] interface {
	// Activation returns bias + Σ weights[i]*input[i].
	// It panics if len(input) != InputSize().
	Activation(input []T) T

	// Predict returns Sign(Activation(input)).
	Predict(input []T) int

	// PredictActivation returns Sign(activation) for an activation the
	// caller already computed.
	PredictActivation(activation T) int

	// Fit trains on samples in order for at most maxEpochs epochs.
	Fit(samples [][]T, labels []int, maxEpochs int) (Result, error)

	Weights() []T
	Bias() T
	LearningRate() T
	InputSize() int

	// TotalEpochs is the 1-based epoch at which the last converging Fit
	// reached zero mistakes, or 0 if no Fit has converged.
	TotalEpochs() int
}

var (
	_ Classifier[float32] = (*Scalar[float32])(nil)
	_ Classifier[float64] = (*Vector[float64])(nil)
)

// Sign maps an activation to a label: +1 for x >= 0, -1 otherwise.
// Zero is positive. NaN compares false and is negative.
func Sign[T hwy.Floats](x T) int {
	if x >= 0 {
		return Positive
	}
	return Negative
}

// model is the state shared by both backends. Only fit mutates bias and
// totalEpochs.
type model[T hwy.Floats] struct {
	learningRate T
	inputSize    int
	bias         T
	totalEpochs  int
	observer     Observer
}

func newModel[T hwy.Floats](learningRate T, inputSize int, o *options) (model[T], error) {
	// NaN fails the comparison and is rejected as well.
	if !(learningRate > 0) {
		return model[T]{}, fmt.Errorf("%w: got %v", ErrLearningRate, learningRate)
	}
	if inputSize <= 0 {
		return model[T]{}, fmt.Errorf("%w: got %d", ErrInputSize, inputSize)
	}
	return model[T]{
		learningRate: learningRate,
		inputSize:    inputSize,
		bias:         T(o.bias),
		observer:     o.observer,
	}, nil
}

// Bias returns the current bias.
func (m *model[T]) Bias() T { return m.bias }

// LearningRate returns the learning rate fixed at construction.
func (m *model[T]) LearningRate() T { return m.learningRate }

// InputSize returns the number of features per sample.
func (m *model[T]) InputSize() int { return m.inputSize }

// TotalEpochs returns the epoch count recorded by the last converging Fit,
// or 0.
func (m *model[T]) TotalEpochs() int { return m.totalEpochs }

// PredictActivation returns Sign(activation).
func (m *model[T]) PredictActivation(activation T) int { return Sign(activation) }

func (m *model[T]) checkInput(input []T) {
	if len(input) != m.inputSize {
		panic(fmt.Sprintf("perceptron: input has %d features, want %d", len(input), m.inputSize))
	}
}
