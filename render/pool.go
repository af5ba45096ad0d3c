// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"runtime"
	"sync"
)

// job is a no-argument callable consumed once by whichever worker pops
// it off the queue.
type job func()

// Pool is a fixed-size worker pool draining a single FIFO job queue.
// Jobs are drained FIFO by the collective of workers, but individual
// job completion is unordered and concurrent.
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup

	finalMu sync.Mutex
	final   func()
}

// NewPool starts a Pool with n workers. n <= 0 defaults to
// runtime.NumCPU().
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{jobs: make(chan job, n*4)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j()
	}
}

// Submit enqueues f; it does not block on f's execution.
func (p *Pool) Submit(f func()) {
	p.jobs <- f
}

// SetFinal stores a one-shot callable run during Close, after every
// worker has joined.
func (p *Pool) SetFinal(f func()) {
	p.finalMu.Lock()
	p.final = f
	p.finalMu.Unlock()
}

// Close stops accepting new jobs, waits for every already-submitted job
// to finish and every worker to exit, then runs the final callable (if
// any) before returning.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()

	p.finalMu.Lock()
	final := p.final
	p.finalMu.Unlock()
	if final != nil {
		final()
	}
}
