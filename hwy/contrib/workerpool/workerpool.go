// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting large
// slices across cores. A Pool is created once and reused, so a hot loop
// pays neither goroutine spawn nor channel allocation per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	rsqrt.Float64sParallel(pool, dst, r2)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-highway/invsqrt/hwy"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn on contiguous ranges covering [0, n) and blocks
// until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForBlocks(n, 1, fn)
}

// ParallelForBlocks is ParallelFor with every range boundary except n
// falling on a multiple of block. Pass the lane count of the vector type
// so only the last range has a partial vector.
//
// A nil or closed pool runs fn(0, n) on the calling goroutine.
func (p *Pool) ParallelForBlocks(n, block int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if block <= 0 {
		block = 1
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	blocks := (n + block - 1) / block
	workers := min(p.numWorkers, blocks)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := hwy.AlignedSize((n+workers-1)/workers, block)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
