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

import "errors"

var (
	// ErrLearningRate is returned when the learning rate is not a positive number.
	ErrLearningRate = errors.New("perceptron: learning rate must be positive")

	// ErrInputSize is returned when the input size is not positive.
	ErrInputSize = errors.New("perceptron: input size must be positive")

	// ErrShape is returned when a feature vector or an initial weight vector
	// does not have InputSize elements.
	ErrShape = errors.New("perceptron: feature count does not match input size")

	// ErrLabel is returned when a training label is not +1 or -1.
	ErrLabel = errors.New("perceptron: label must be +1 or -1")

	// ErrLabelCount is returned when samples and labels differ in length.
	ErrLabelCount = errors.New("perceptron: sample and label counts differ")

	// ErrEpochs is returned for a negative epoch budget.
	ErrEpochs = errors.New("perceptron: max epochs must not be negative")
)
