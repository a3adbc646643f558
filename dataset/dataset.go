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

// Package dataset reads labelled feature records for binary classifiers.
//
// The expected format is the UCI iris.data layout: one record per line,
// comma-separated feature values followed by a class name.
//
//	5.1,3.5,1.4,0.2,Iris-setosa
//	7.0,3.2,4.7,1.4,Iris-versicolor
//
// Class names are mapped to the labels +1 and -1 by Config.Classes.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrConfig is returned for an unusable Config.
	ErrConfig = errors.New("dataset: invalid config")

	// ErrRecord is returned for a record with the wrong field count or a
	// feature that is not a number.
	ErrRecord = errors.New("dataset: malformed record")

	// ErrUnknownClass is returned under FailOnUnknown for a class name not
	// in Config.Classes.
	ErrUnknownClass = errors.New("dataset: unknown class")
)

// UnknownPolicy decides what happens to a record whose class is not mapped.
type UnknownPolicy int

const (
	// StopAtUnknown ends reading at the first unmapped class. iris.data is
	// sorted by class, so this keeps the first two species.
	StopAtUnknown UnknownPolicy = iota

	// SkipUnknown drops unmapped records and keeps reading.
	SkipUnknown

	// FailOnUnknown returns ErrUnknownClass.
	FailOnUnknown
)

// Config describes the record layout.
type Config struct {
	// NumFeatures is the number of leading numeric fields.
	NumFeatures int

	// Classes maps a class name to +1 or -1.
	Classes map[string]int

	// Unknown selects the handling of unmapped class names.
	Unknown UnknownPolicy
}

// IrisConfig returns the layout of iris.data with Iris-setosa as +1 and
// Iris-versicolor as -1, stopping at the first Iris-virginica record.
func IrisConfig() Config {
	return Config{
		NumFeatures: 4,
		Classes: map[string]int{
			"Iris-setosa":     1,
			"Iris-versicolor": -1,
		},
		Unknown: StopAtUnknown,
	}
}

func (c Config) validate() error {
	if c.NumFeatures <= 0 {
		return fmt.Errorf("%w: NumFeatures %d", ErrConfig, c.NumFeatures)
	}
	if len(c.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrConfig)
	}
	for name, label := range c.Classes {
		if label != 1 && label != -1 {
			return fmt.Errorf("%w: class %q has label %d, want +1 or -1", ErrConfig, name, label)
		}
	}
	return nil
}

// Dataset is an ordered list of feature vectors and their labels.
type Dataset struct {
	Features [][]float32
	Labels   []int
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Labels)
}

// Counts returns the number of samples per label.
func (d *Dataset) Counts() map[int]int {
	return lo.CountValues(d.Labels)
}

// Load reads the file at path.
func Load(path string, cfg Config) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read parses records from r. Blank lines are ignored and surrounding
// whitespace in fields is trimmed.
func Read(r io.Reader, cfg Config) (*Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	d := &Dataset{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRecord, err)
		}
		line, _ := cr.FieldPos(0)

		if len(rec) != cfg.NumFeatures+1 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrRecord, line, len(rec), cfg.NumFeatures+1)
		}

		class := strings.TrimSpace(rec[cfg.NumFeatures])
		label, ok := cfg.Classes[class]
		if !ok {
			switch cfg.Unknown {
			case SkipUnknown:
				continue
			case FailOnUnknown:
				known := lo.Keys(cfg.Classes)
				slices.Sort(known)
				return nil, fmt.Errorf("%w: line %d has class %q, want one of %v", ErrUnknownClass, line, class, known)
			default:
				return d, nil
			}
		}

		x := make([]float32, cfg.NumFeatures)
		for i := range x {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %w", ErrRecord, line, i+1, err)
			}
			x[i] = float32(v)
		}
		d.Features = append(d.Features, x)
		d.Labels = append(d.Labels, label)
	}
	return d, nil
}

// Shuffle reorders the samples in place using r.
func (d *Dataset) Shuffle(r *rand.Rand) {
	r.Shuffle(d.Len(), func(i, j int) {
		d.Features[i], d.Features[j] = d.Features[j], d.Features[i]
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
	})
}

// Split partitions a shuffled copy of the samples into train and test sets.
// The test set holds int(testRatio*Len()) samples. Feature slices are shared
// with d, not copied.
func (d *Dataset) Split(testRatio float64, r *rand.Rand) (train, test *Dataset, err error) {
	if testRatio < 0 || testRatio > 1 {
		return nil, nil, fmt.Errorf("%w: test ratio %v outside [0, 1]", ErrConfig, testRatio)
	}
	perm := r.Perm(d.Len())
	nTest := int(float64(d.Len()) * testRatio)

	pick := func(idx []int) *Dataset {
		out := &Dataset{
			Features: make([][]float32, len(idx)),
			Labels:   make([]int, len(idx)),
		}
		for i, j := range idx {
			out.Features[i] = d.Features[j]
			out.Labels[i] = d.Labels[j]
		}
		return out
	}
	return pick(perm[nTest:]), pick(perm[:nTest]), nil
}
