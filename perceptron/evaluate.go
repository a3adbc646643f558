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
	"github.com/go-highway/perceptron/internal/workerpool"
)

// PredictAll predicts every sample. Predictions are spread over pool, which
// may be nil to run on the calling goroutine. c must not be trained
// concurrently.
//
// It returns ErrShape if a sample has the wrong number of features.
func PredictAll[T hwy.Floats](pool *workerpool.Pool, c Classifier[T], samples [][]T) ([]int, error) {
	n := c.InputSize()
	for i, x := range samples {
		if len(x) != n {
			return nil, fmt.Errorf("%w: sample %d has %d features, want %d", ErrShape, i, len(x), n)
		}
	}

	out := make([]int, len(samples))
	pool.ParallelFor(len(samples), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = c.Predict(samples[i])
		}
	})
	return out, nil
}

// Accuracy returns the fraction of samples whose prediction equals its
// label, or 0 for an empty set.
func Accuracy[T hwy.Floats](pool *workerpool.Pool, c Classifier[T], samples [][]T, labels []int) (float64, error) {
	if len(samples) != len(labels) {
		return 0, fmt.Errorf("%w: %d samples, %d labels", ErrLabelCount, len(samples), len(labels))
	}
	if len(samples) == 0 {
		return 0, nil
	}
	pred, err := PredictAll(pool, c, samples)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, p := range pred {
		if p == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(samples)), nil
}
