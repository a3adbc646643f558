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

// Epoch describes the state after one pass over the training set.
type Epoch struct {
	// Index is the 0-based epoch number.
	Index int

	// Misclassified counts the samples that triggered an update in this pass.
	Misclassified int

	// Weights and Bias are copies taken after the pass.
	Weights []float64
	Bias    float64
}

// Converged reports whether the pass had no mistakes.
func (e Epoch) Converged() bool {
	return e.Misclassified == 0
}

// Observer receives training progress. EpochDone is called synchronously
// from Fit after every epoch, including the converging one.
type Observer interface {
	EpochDone(e Epoch)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Epoch)

// EpochDone calls f(e).
func (f ObserverFunc) EpochDone(e Epoch) {
	f(e)
}
