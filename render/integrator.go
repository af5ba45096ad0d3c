// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render implements the path-tracing integrator, the row-based
// render scheduler and worker pool, and the framebuffer/PPM output
// stage.
package render

import (
	"math"

	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Scene is the core's view of a frozen scene graph: anything that can
// answer a bounded ray query. accel.BVH satisfies this directly.
type Scene interface {
	Intersect(r geom.Ray, tMin, tMax float64, rng lin.RNG) (geom.Hit, bool)
}

// Background is a caller-supplied pure function mapping the escaping
// ray's vertical parameter t in [0,1] to a background color.
type Background func(t float64) lin.Vec3

// ImageConfig describes an image's dimensions and sampling budget.
type ImageConfig struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Background      Background
}

// Integrator evaluates the radiance arriving along a primary ray.
type Integrator struct {
	Scene  Scene
	Config ImageConfig
}

// NewIntegrator builds an Integrator over scene with the given config.
func NewIntegrator(scene Scene, config ImageConfig) *Integrator {
	return &Integrator{Scene: scene, Config: config}
}

// Trace evaluates the accumulated radiance along r, iterating rather
// than recursing so the call stack stays bounded regardless of
// MaxDepth. Throughput (beta) is the running product of every bounce's
// attenuation; radiance (L) is the additive accumulation of emitted
// and background light.
func (ig *Integrator) Trace(r geom.Ray, rng lin.RNG) lin.Vec3 {
	beta := lin.One
	l := lin.Zero
	ray := r

	for depth := 0; depth < ig.Config.MaxDepth; depth++ {
		hit, ok := ig.Scene.Intersect(ray, geom.Epsilon, math.Inf(1), rng)
		if !ok {
			t := 0.5 * (1 - ray.Dir.Y)
			l = l.Add(beta.Mul(ig.Config.Background(t)))
			return l
		}

		e := hit.Material.Emit()
		a := hit.Material.Attenuation()
		// L += beta*a*e: emission is scaled by the hit's own attenuation
		// as well as throughput. See DESIGN.md for why.
		l = l.Add(beta.Mul(a).Mul(e))

		scattered, scatterOk := hit.Material.Scatter(ray, hit, rng)
		if !scatterOk {
			return l
		}
		beta = beta.Mul(a)
		ray = scattered
	}

	return l
}
