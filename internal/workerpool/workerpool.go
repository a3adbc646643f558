// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool used to fan read-only
// predictions out over many samples. Training never uses it: the fit loop is
// strictly sequential.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(samples), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = model.Predict(samples[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minChunk is the smallest range handed to a worker. Predicting a handful of
// 4-feature samples is cheaper than a channel send.
const minChunk = 64

// Pool is a set of goroutines that is created once and reused for every
// ParallelFor call.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has finished.
// Calling Close multiple times is safe; a closed pool runs work inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over contiguous ranges covering [0, n) and blocks
// until every range is done. A nil or closed pool, or a small n, runs
// fn(0, n) on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}
