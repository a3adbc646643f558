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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisPath = "../../dataset/testdata/iris.data"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrainBoth(t *testing.T) {
	out, err := execute(t, "train", "--data", irisPath, "--seed", "42", "--epochs", "100000",
		"--predict", "5.1,3.5,1.4,0.2", "--predict", "6.4,3.2,4.5,1.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Training data: 20\n")
	assert.Contains(t, out, "Training scalar perceptron...")
	assert.Contains(t, out, "Training vector perceptron...")
	assert.Equal(t, 2, strings.Count(out, "Training accuracy: 100.00%"))
	assert.Equal(t, 2, strings.Count(out, "Prediction [5.1 3.5 1.4 0.2]: 1\n"))
	assert.Equal(t, 2, strings.Count(out, "Prediction [6.4 3.2 4.5 1.5]: -1\n"))
	assert.Contains(t, out, "Predictions agree: true")
	assert.NotContains(t, out, "Did not converge")
}

func TestTrainBundledData(t *testing.T) {
	out, err := execute(t, "train", "--data", "../../data/iris.data", "--seed", "7", "--epochs", "100000")
	require.NoError(t, err)

	assert.Contains(t, out, "Training data: 100\n")
	assert.Equal(t, 2, strings.Count(out, "Training accuracy: 100.00%"))
	assert.Contains(t, out, "Epochs agree: true")
	assert.Contains(t, out, "Predictions agree: true")
}

func TestTrainHoldOut(t *testing.T) {
	out, err := execute(t, "train", "--data", irisPath, "--seed", "3", "--epochs", "100000",
		"--shuffle", "--test-ratio", "0.25")
	require.NoError(t, err)

	assert.Contains(t, out, "Training data: 15\n")
	assert.Contains(t, out, "Test data: 5\n")
	assert.Equal(t, 2, strings.Count(out, "Training accuracy: 100.00%"))
	assert.Equal(t, 2, strings.Count(out, "Test accuracy: "))
}

func TestTrainProgressExplicitWeights(t *testing.T) {
	out, err := execute(t, "train", "--data", irisPath, "--backend", "vector", "--progress",
		"--weights", "0,0,0,0", "--learning-rate", "1", "--epochs", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Epoch: 1/3 | Misclassified: ")
	assert.NotContains(t, out, "Training scalar perceptron...")
	assert.NotContains(t, out, "Predictions agree")
}

func TestTrainErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad backend", []string{"--backend", "gpu"}, "invalid --backend"},
		{"bad unknown", []string{"--unknown", "maybe"}, "invalid --unknown"},
		{"same classes", []string{"--positive", "a", "--negative", "a"}, "both"},
		{"short point", []string{"--predict", "1,2"}, "has 2 values, want 4"},
		{"wrong weights", []string{"--weights", "1,2"}, "initial weights"},
		{"bad rate", []string{"--learning-rate", "0"}, "learning rate must be positive"},
		{"bad test ratio", []string{"--test-ratio", "1.5"}, "invalid --test-ratio"},
		{"missing file", []string{"--data", "testdata/nope.data"}, "nope.data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"train", "--data", irisPath, "--seed", "1"}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "SIMD level: ")
	assert.Contains(t, out, "4 lanes per vector")
	assert.Contains(t, out, "Features: ")
}
