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

import "math/rand/v2"

type newFunc func(learningRate float64, inputSize int, opts ...Option) (Classifier[float64], error)

// backends lists both implementations so behavioural tests run against each.
var backends = []struct {
	name string
	new  newFunc
}{
	{"scalar", func(lr float64, n int, opts ...Option) (Classifier[float64], error) {
		return NewScalar(lr, n, opts...)
	}},
	{"vector", func(lr float64, n int, opts ...Option) (Classifier[float64], error) {
		return NewVector(lr, n, opts...)
	}},
}

// separable draws integer samples labelled by an integer hyperplane, keeping
// only points at least 2 away from it. With a learning rate of 1 and integer
// initial weights every value training produces is an integer, so both
// backends compute exactly.
func separable(rng *rand.Rand, inputSize, count int) (samples [][]float32, labels []int) {
	plane := make([]float32, inputSize)
	for i := range plane {
		plane[i] = float32(rng.IntN(7) - 3)
	}
	if plane[0] == 0 {
		plane[0] = 1
	}
	bias := float32(rng.IntN(7) - 3)

	for len(samples) < count {
		x := make([]float32, inputSize)
		score := bias
		for i := range x {
			x[i] = float32(rng.IntN(17) - 8)
			score += plane[i] * x[i]
		}
		switch {
		case score >= 2:
			labels = append(labels, Positive)
		case score <= -2:
			labels = append(labels, Negative)
		default:
			continue
		}
		samples = append(samples, x)
	}
	return samples, labels
}

// andGate is the two-point set {[0,0] -> -1, [1,1] -> +1}.
func andGate() ([][]float64, []int) {
	return [][]float64{{0, 0}, {1, 1}}, []int{Negative, Positive}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
