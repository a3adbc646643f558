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
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/perceptron/dataset"
	"github.com/go-highway/perceptron/internal/workerpool"
	"github.com/go-highway/perceptron/perceptron"
)

var unknownPolicies = map[string]dataset.UnknownPolicy{
	"stop": dataset.StopAtUnknown,
	"skip": dataset.SkipUnknown,
	"fail": dataset.FailOnUnknown,
}

type trainOptions struct {
	dataPath     string
	features     int
	positive     string
	negative     string
	unknown      string
	seed         uint64
	learningRate float32
	epochs       int
	backend      string
	weights      []float64
	bias         float64
	progress     bool
	predict      []string
	workers      int
	shuffle      bool
	testRatio    float64
}

// sampleStream separates the shuffle and split generator from the one
// drawing initial weights off the same --seed.
const sampleStream = 0x2545f4914f6cdd1d

// run is the outcome of training one backend.
type run struct {
	name    string
	model   perceptron.Classifier[float32]
	result  perceptron.Result
	elapsed time.Duration
}

func newTrainCmd() *cobra.Command {
	o := &trainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train on a data set and report weights, timing and predictions",
		Long: `Train loads a comma-separated data set, trains the selected backends from
the same initial weights and reports weights, timing, accuracy and
predictions. Without --data it reads data/iris.data, the Iris set shipped at
the repository root.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = uint64(time.Now().UnixNano())
			}
			return runTrain(cmd.OutOrStdout(), o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.dataPath, "data", "data/iris.data", "Path of the comma-separated data set (the default is relative to the repository root)")
	f.IntVar(&o.features, "features", 4, "Number of leading numeric fields per record")
	f.StringVar(&o.positive, "positive", "Iris-setosa", "Class name labelled +1")
	f.StringVar(&o.negative, "negative", "Iris-versicolor", "Class name labelled -1")
	f.StringVar(&o.unknown, "unknown", "stop", "Handling of other classes: stop, skip or fail")
	f.Uint64Var(&o.seed, "seed", 0, "Seed for the initial weights (default: current time)")
	f.Float32Var(&o.learningRate, "learning-rate", 0.01, "Learning rate")
	f.IntVar(&o.epochs, "epochs", 1000, "Maximum number of epochs")
	f.StringVar(&o.backend, "backend", "both", "Backend to train: scalar, vector or both")
	f.Float64SliceVar(&o.weights, "weights", nil, "Explicit initial weights, one per feature (overrides --seed)")
	f.Float64Var(&o.bias, "bias", 0, "Initial bias")
	f.BoolVar(&o.progress, "progress", false, "Print the weights after every epoch")
	f.StringArrayVar(&o.predict, "predict", nil, "Comma-separated feature vector to classify after training (repeatable)")
	f.IntVar(&o.workers, "workers", 0, "Workers used to score the data sets (default: GOMAXPROCS)")
	f.BoolVar(&o.shuffle, "shuffle", false, "Shuffle the samples before training (seeded by --seed)")
	f.Float64Var(&o.testRatio, "test-ratio", 0, "Fraction of the samples held out and scored after training, in [0, 1]")
	return cmd
}

func runTrain(out io.Writer, o *trainOptions) error {
	cfg, err := o.datasetConfig()
	if err != nil {
		return err
	}
	backends, err := o.backends()
	if err != nil {
		return err
	}
	points, err := parsePoints(o.predict, o.features)
	if err != nil {
		return err
	}

	d, err := dataset.Load(o.dataPath, cfg)
	if err != nil {
		return err
	}
	slog.Debug("loaded data set", "path", o.dataPath, "samples", d.Len(), "counts", d.Counts())
	if len(o.weights) == 0 {
		slog.Debug("initial weights from seed", "seed", o.seed)
	}

	train, test, err := o.partition(d)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Training data: %d\n", train.Len())
	fmt.Fprintf(out, "Labels: %d\n", len(train.Labels))
	if test != nil {
		fmt.Fprintf(out, "Test data: %d\n", test.Len())
	}
	fmt.Fprintf(out, "Learning rate: %g\n", o.learningRate)
	fmt.Fprintf(out, "Input size: %d\n", o.features)

	pool := workerpool.New(o.workers)
	defer pool.Close()

	var runs []run
	for _, name := range backends {
		r, err := o.train(out, name, train)
		if err != nil {
			return err
		}
		if err := report(out, pool, r, train, test, points); err != nil {
			return err
		}
		runs = append(runs, r)
	}
	if len(runs) == 2 {
		return compare(out, pool, runs[0], runs[1], train)
	}
	return nil
}

func (o *trainOptions) datasetConfig() (dataset.Config, error) {
	policy, ok := unknownPolicies[o.unknown]
	if !ok {
		names := lo.Keys(unknownPolicies)
		slices.Sort(names)
		return dataset.Config{}, fmt.Errorf("invalid --unknown %q, want one of %v", o.unknown, names)
	}
	if o.positive == o.negative {
		return dataset.Config{}, fmt.Errorf("--positive and --negative are both %q", o.positive)
	}
	return dataset.Config{
		NumFeatures: o.features,
		Classes:     map[string]int{o.positive: perceptron.Positive, o.negative: perceptron.Negative},
		Unknown:     policy,
	}, nil
}

// partition applies --shuffle and --test-ratio. test is nil when nothing is
// held out.
func (o *trainOptions) partition(d *dataset.Dataset) (train, test *dataset.Dataset, err error) {
	rng := rand.New(rand.NewPCG(o.seed, sampleStream))
	if o.shuffle {
		d.Shuffle(rng)
	}
	if o.testRatio == 0 {
		return d, nil, nil
	}
	train, test, err = d.Split(o.testRatio, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --test-ratio: %w", err)
	}
	slog.Debug("held out test set", "train", train.Counts(), "test", test.Counts())
	return train, test, nil
}

func (o *trainOptions) backends() ([]string, error) {
	switch o.backend {
	case "scalar", "vector":
		return []string{o.backend}, nil
	case "both":
		return []string{"scalar", "vector"}, nil
	default:
		return nil, fmt.Errorf("invalid --backend %q, want scalar, vector or both", o.backend)
	}
}

func (o *trainOptions) modelOptions(out io.Writer) []perceptron.Option {
	opts := []perceptron.Option{perceptron.WithBias(o.bias)}
	if len(o.weights) > 0 {
		opts = append(opts, perceptron.WithWeights(o.weights...))
	} else {
		opts = append(opts, perceptron.WithSeed(o.seed))
	}
	if o.progress {
		opts = append(opts, perceptron.WithObserver(progressObserver(out, o.epochs)))
	}
	return opts
}

func (o *trainOptions) train(out io.Writer, name string, d *dataset.Dataset) (run, error) {
	var (
		model perceptron.Classifier[float32]
		err   error
	)
	opts := o.modelOptions(out)
	if name == "vector" {
		model, err = perceptron.NewVector(o.learningRate, o.features, opts...)
	} else {
		model, err = perceptron.NewScalar(o.learningRate, o.features, opts...)
	}
	if err != nil {
		return run{}, err
	}

	fmt.Fprintf(out, "Training %s perceptron...\n", name)
	start := time.Now()
	res, err := model.Fit(d.Features, d.Labels, o.epochs)
	elapsed := time.Since(start)
	if err != nil {
		return run{}, err
	}
	slog.Debug("training finished", "backend", name, "epochs", res.Epochs, "converged", res.Converged)
	return run{name: name, model: model, result: res, elapsed: elapsed}, nil
}

func report(out io.Writer, pool *workerpool.Pool, r run, d, test *dataset.Dataset, points [][]float32) error {
	fmt.Fprintf(out, "Time: %dns\n", r.elapsed.Nanoseconds())
	fmt.Fprintf(out, "Total epochs to full learn: %d\n", r.model.TotalEpochs())
	if !r.result.Converged {
		fmt.Fprintf(out, "Did not converge within %d epochs\n", r.result.Epochs)
	}
	fmt.Fprintf(out, "Weights: %g %s\n", r.model.Bias(), formatWeights(r.model.Weights(), "%g"))

	acc, err := perceptron.Accuracy(pool, r.model, d.Features, d.Labels)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Training accuracy: %.2f%%\n", acc*100)
	if test != nil && test.Len() > 0 {
		acc, err := perceptron.Accuracy(pool, r.model, test.Features, test.Labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Test accuracy: %.2f%%\n", acc*100)
	}

	for _, p := range points {
		fmt.Fprintf(out, "Prediction %v: %d\n", p, r.model.Predict(p))
	}
	fmt.Fprintln(out, "---")
	return nil
}

func compare(out io.Writer, pool *workerpool.Pool, scalar, vector run, d *dataset.Dataset) error {
	sp, err := perceptron.PredictAll(pool, scalar.model, d.Features)
	if err != nil {
		return err
	}
	vp, err := perceptron.PredictAll(pool, vector.model, d.Features)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Epochs agree: %v\n", scalar.model.TotalEpochs() == vector.model.TotalEpochs())
	fmt.Fprintf(out, "Predictions agree: %v\n", slices.Equal(sp, vp))

	ts, tv := scalar.elapsed.Nanoseconds(), vector.elapsed.Nanoseconds()
	if ts == 0 || tv == 0 {
		return nil
	}
	if ts > tv {
		fmt.Fprintf(out, "Time difference: %dns\n", ts-tv)
		fmt.Fprintf(out, "Vector is %.1f%% faster than scalar\n", (float64(ts)/float64(tv)-1)*100)
	} else {
		fmt.Fprintf(out, "Time difference: %dns\n", tv-ts)
		fmt.Fprintln(out, "Vector failed to be faster than scalar")
		fmt.Fprintf(out, "Scalar is %.1f%% faster than vector\n", (float64(tv)/float64(ts)-1)*100)
	}
	return nil
}

// progressObserver prints one line per epoch with the bias and weights.
func progressObserver(out io.Writer, maxEpochs int) perceptron.Observer {
	return perceptron.ObserverFunc(func(e perceptron.Epoch) {
		fmt.Fprintf(out, "Epoch: %d/%d | Misclassified: %d | Weights: %9.5f %s\n",
			e.Index+1, maxEpochs, e.Misclassified, e.Bias, formatWeights(e.Weights, "%9.5f"))
	})
}

func formatWeights[T float32 | float64](w []T, format string) string {
	return strings.Join(lo.Map(w, func(v T, _ int) string {
		return fmt.Sprintf(format, v)
	}), " ")
}

// parsePoints parses each "f,f,..." argument into a feature vector of n
// values.
func parsePoints(args []string, n int) ([][]float32, error) {
	points := make([][]float32, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ",")
		if len(fields) != n {
			return nil, fmt.Errorf("--predict %q has %d values, want %d", arg, len(fields), n)
		}
		p := make([]float32, n)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return nil, fmt.Errorf("--predict %q: %w", arg, err)
			}
			p[i] = float32(v)
		}
		points = append(points, p)
	}
	return points, nil
}
