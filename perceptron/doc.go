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

// Package perceptron implements a binary linear classifier trained with the
// Rosenblatt mistake-driven update rule.
//
// Two implementations share one training loop:
//
//   - Scalar keeps the weights in a slice and accumulates the activation in
//     four interleaved partial sums.
//   - Vector keeps the weights in 4-lane hwy.Vec blocks, computes the
//     activation with a lane-wise multiply and a horizontal reduction, and
//     applies updates with a broadcast fused multiply-add.
//
// Both reduce in the same order and both fuse the update, so for identical
// weights and bias their activations and updates are bit-identical. Trained
// from the same initial weights, learning rate and sample order they follow
// the same trajectory: same weights, same predictions, same epoch count.
//
// Labels are +1 and -1. An activation of exactly zero predicts +1.
//
// Basic usage:
//
//	p, err := perceptron.NewVector[float32](0.01, 4, perceptron.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	res, err := p.Fit(features, labels, 1000)
//	if err != nil {
//	    return err
//	}
//	if !res.Converged {
//	    // not linearly separable within the budget; TotalEpochs keeps its previous value
//	}
//	label := p.Predict([]float32{5.1, 3.5, 1.4, 0.2})
package perceptron
