// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 10, minChunk, minChunk*4 + 3, 1000} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := 0; i < n; i++ {
			if results[i] != i*2 {
				t.Errorf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(0, func(start, end int) { calls.Add(1) })
	if calls.Load() != 0 {
		t.Errorf("ParallelFor(0) made %d calls, want 0", calls.Load())
	}
}

func TestParallelForNilPool(t *testing.T) {
	var pool *Pool
	var covered atomic.Int32
	pool.ParallelFor(500, func(start, end int) {
		covered.Add(int32(end - start))
	})
	if covered.Load() != 500 {
		t.Errorf("nil pool covered %d indices, want 500", covered.Load())
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var covered atomic.Int32
	pool.ParallelFor(1000, func(start, end int) {
		covered.Add(int32(end - start))
	})
	if covered.Load() != 1000 {
		t.Errorf("closed pool covered %d indices, want 1000", covered.Load())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<14)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
