// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"sync"

	"pathtracer/camera"
	"pathtracer/math/lin"
)

// Scheduler partitions an image into rows and submits one job per row
// to a Pool. Row completion is unordered and concurrent; Render
// collates the results into a Framebuffer (ordered by row index via
// SetRow), while RenderStream hands each row to a RowWriter as soon as
// it finishes, letting output start before the whole image is done.
type Scheduler struct {
	Integrator *Integrator
	Camera     *camera.Camera
}

// NewScheduler builds a Scheduler over the given integrator and camera.
func NewScheduler(ig *Integrator, cam *camera.Camera) *Scheduler {
	return &Scheduler{Integrator: ig, Camera: cam}
}

// Render drives pool with one job per image row, each of which samples
// SamplesPerPixel rays per pixel, averages them, tone-maps the result,
// and writes the finished row into the returned Framebuffer. Each row
// job seeds its own PRNG from seedBase+y, so no PRNG is shared between
// workers and a fixed seedBase replays the same image.
func (s *Scheduler) Render(pool *Pool, config ImageConfig, seedBase int64) *Framebuffer {
	fb := NewFramebuffer(config.Width, config.Height)

	var wg sync.WaitGroup
	wg.Add(config.Height)
	for y := 0; y < config.Height; y++ {
		y := y
		pool.Submit(func() {
			defer wg.Done()
			rng := lin.NewRNG(seedBase + int64(y))
			row := s.renderRow(y, config, rng)
			fb.SetRow(y, row)
		})
	}
	wg.Wait()

	return fb
}

// RenderStream drives pool the same way Render does, but instead of
// collecting rows into a Framebuffer it hands each finished row
// straight to rw as soon as it completes. Rows reach rw in whatever
// order workers finish them; rw is responsible for putting the bytes
// it writes back into scan order. The first error returned by rw stops
// further rows from being written, but every already-submitted job
// still runs to completion before RenderStream returns.
func (s *Scheduler) RenderStream(pool *Pool, config ImageConfig, seedBase int64, rw *RowWriter) error {
	var (
		errMu sync.Mutex
		first error
	)
	setErr := func(err error) {
		errMu.Lock()
		if first == nil {
			first = err
		}
		errMu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(config.Height)
	for y := 0; y < config.Height; y++ {
		y := y
		pool.Submit(func() {
			defer wg.Done()
			rng := lin.NewRNG(seedBase + int64(y))
			row := s.renderRow(y, config, rng)
			if err := rw.Complete(y, row); err != nil {
				setErr(err)
			}
		})
	}
	wg.Wait()

	errMu.Lock()
	defer errMu.Unlock()
	return first
}

func (s *Scheduler) renderRow(y int, config ImageConfig, rng lin.RNG) []lin.Vec3 {
	row := make([]lin.Vec3, config.Width)
	samples := make([]lin.Vec3, config.SamplesPerPixel)

	for x := 0; x < config.Width; x++ {
		for i := 0; i < config.SamplesPerPixel; i++ {
			u := (float64(x) + rng.Float64()) / float64(config.Width)
			v := (float64(y) + rng.Float64()) / float64(config.Height)
			r := s.Camera.PrimaryRay(u, v, rng)
			samples[i] = s.Integrator.Trace(r, rng)
		}
		row[x] = ToneMap(AverageSamples(samples))
	}
	return row
}
