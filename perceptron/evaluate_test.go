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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/perceptron/internal/workerpool"
)

func TestPredictAll(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	samples, labels := separable(newRand(8), 5, 1000)
	c, err := NewVector[float32](1, 5, WithWeights(0, 0, 0, 0, 0))
	require.NoError(t, err)
	res, err := c.Fit(samples, labels, 100000)
	require.NoError(t, err)
	require.True(t, res.Converged)

	got, err := PredictAll[float32](pool, c, samples)
	require.NoError(t, err)
	assert.Equal(t, labels, got)

	seq, err := PredictAll[float32](nil, c, samples)
	require.NoError(t, err)
	assert.Equal(t, got, seq)

	acc, err := Accuracy[float32](pool, c, samples, labels)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestAccuracy(t *testing.T) {
	c, err := NewScalar(1.0, 1, WithWeights(1))
	require.NoError(t, err)

	samples := [][]float64{{1}, {2}, {-1}, {-2}}
	acc, err := Accuracy[float64](nil, c, samples, []int{1, 1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, 0.75, acc)

	acc, err = Accuracy[float64](nil, c, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, acc)

	_, err = Accuracy[float64](nil, c, samples, []int{1})
	require.ErrorIs(t, err, ErrLabelCount)

	_, err = Accuracy[float64](nil, c, [][]float64{{1, 2}}, []int{1})
	require.ErrorIs(t, err, ErrShape)
}
