// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"pathtracer/math/lin"
)

// Volume is an isotropic participating medium filling the interior of
// a boundary Hittable (typically a Sphere or Prism), sampled via a
// free-flight exponential distance along the ray.
type Volume struct {
	Boundary    Hittable
	InvDensity  float64 // 1/sigma
	Material    Material
}

// NewVolume wraps boundary with a medium of the given density (sigma)
// and material.
func NewVolume(boundary Hittable, density float64, mat Material) *Volume {
	return &Volume{Boundary: boundary, InvDensity: 1 / density, Material: mat}
}

// Intersect finds where the ray enters and exits the boundary, then
// samples a free-flight distance inside that interval; a sample beyond
// the exit point means the ray passed through without scattering.
func (v *Volume) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	enter, ok := v.Boundary.Intersect(r, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return Hit{}, false
	}

	exit, ok := v.Boundary.Intersect(r, enter.T+Epsilon, math.Inf(1), rng)
	if !ok {
		// The ray starts inside the medium and leaves through the
		// boundary it just found; report that exit as the hit.
		if enter.T <= tMin || enter.T >= tMax {
			return Hit{}, false
		}
		return Hit{Point: r.At(enter.T), Normal: enter.Normal, Outer: true, T: enter.T, Material: v.Material}, true
	}

	tIn, tOut := enter.T, exit.T
	if tIn < tMin {
		tIn = tMin
	}
	if tOut > tMax {
		tOut = tMax
	}
	if tIn >= tOut {
		return Hit{}, false
	}

	// Natural-log exponential transform for the free-flight distance.
	// See DESIGN.md for the choice of log base.
	dist := -math.Log(rng.Float64()) * v.InvDensity
	if dist > tOut-tIn {
		return Hit{}, false
	}

	t := tIn + dist
	return Hit{Point: r.At(t), Normal: Vec3{}, Outer: true, T: t, Material: v.Material}, true
}

// BoundingBox delegates to the boundary shape.
func (v *Volume) BoundingBox() AABB { return v.Boundary.BoundingBox() }

// SurfaceArea delegates to the boundary shape.
func (v *Volume) SurfaceArea() float64 { return v.Boundary.SurfaceArea() }
