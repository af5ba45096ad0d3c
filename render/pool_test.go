// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := NewPool(4)
	var count int64
	const n = 100
	for i := 0; i < n; i++ {
		p.Submit(func() { atomic.AddInt64(&count, 1) })
	}
	p.Close()
	if got := atomic.LoadInt64(&count); got != n {
		t.Errorf("ran %d jobs, want %d", got, n)
	}
}

func TestPoolFinalRunsAfterWorkersJoin(t *testing.T) {
	p := NewPool(2)
	var jobsDone, finalDone int64
	for i := 0; i < 10; i++ {
		p.Submit(func() { atomic.AddInt64(&jobsDone, 1) })
	}
	p.SetFinal(func() {
		if atomic.LoadInt64(&jobsDone) != 10 {
			t.Error("final ran before all jobs completed")
		}
		atomic.AddInt64(&finalDone, 1)
	})
	p.Close()
	if atomic.LoadInt64(&finalDone) != 1 {
		t.Error("final callable did not run")
	}
}

func TestPoolDefaultsToNumCPU(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	// NewPool buffers 4 jobs per worker, so the queue capacity reveals
	// the worker count NewPool(0) chose.
	if got, want := cap(p.jobs), runtime.NumCPU()*4; got != want {
		t.Errorf("job queue capacity = %d, want %d (4 per NumCPU worker)", got, want)
	}
}
