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

// Result summarizes one call to Fit.
type Result struct {
	// Epochs is the number of passes made over the training set.
	Epochs int

	// Converged is true if the last pass made no mistakes.
	Converged bool

	// Mistakes holds the misclassified count of every pass, in order.
	Mistakes []int
}

// backend is what a classifier supplies to the shared training loop.
// Both methods assume len(input) == inputSize; fit validates that up front.
type backend[T hwy.Floats] interface {
	activation(input []T) T

	// update adds delta to the bias and delta*input[i] to every weight.
	update(input []T, delta T)

	// weightsFloat64 copies the weights for observers.
	weightsFloat64() []float64
}

// fit runs the mistake-driven training loop:
//
//	for each epoch:
//	    for each (x, y) in order:
//	        if Sign(activation(x)) != y:
//	            delta = learningRate * y
//	            bias += delta; w[i] += delta * x[i]
//	    stop when the pass made no mistakes
//
// Updates are applied immediately, before the next sample is scored.
func fit[T hwy.Floats](m *model[T], b backend[T], samples [][]T, labels []int, maxEpochs int) (Result, error) {
	if err := validate(m.inputSize, samples, labels); err != nil {
		return Result{}, err
	}
	if maxEpochs < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrEpochs, maxEpochs)
	}

	res := Result{Mistakes: make([]int, 0, min(maxEpochs, 64))}
	for epoch := range maxEpochs {
		misclassified := 0
		for i, x := range samples {
			label := labels[i]
			if Sign(b.activation(x)) == label {
				continue
			}
			misclassified++
			// label is ±1, so this is +learningRate or -learningRate.
			b.update(x, m.learningRate*T(label))
		}

		res.Epochs = epoch + 1
		res.Mistakes = append(res.Mistakes, misclassified)
		if m.observer != nil {
			m.observer.EpochDone(Epoch{
				Index:         epoch,
				Misclassified: misclassified,
				Weights:       b.weightsFloat64(),
				Bias:          float64(m.bias),
			})
		}
		if misclassified == 0 {
			res.Converged = true
			m.totalEpochs = epoch + 1
			break
		}
	}
	return res, nil
}

// validate checks the whole training set before any weight moves.
func validate[T hwy.Floats](inputSize int, samples [][]T, labels []int) error {
	if len(samples) != len(labels) {
		return fmt.Errorf("%w: %d samples, %d labels", ErrLabelCount, len(samples), len(labels))
	}
	for i, x := range samples {
		if len(x) != inputSize {
			return fmt.Errorf("%w: sample %d has %d features, want %d", ErrShape, i, len(x), inputSize)
		}
		if l := labels[i]; l != Positive && l != Negative {
			return fmt.Errorf("%w: sample %d has label %d", ErrLabel, i, l)
		}
	}
	return nil
}
