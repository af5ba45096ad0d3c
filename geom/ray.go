// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom holds the scene-graph primitives: rays, bounding boxes,
// the Hittable/Material capability interfaces, and the concrete shapes
// (sphere, plane, triangle, and their composites) that the accel and
// render packages traverse and shade.
package geom

import "pathtracer/math/lin"

// Epsilon is the ray-origin offset used when spawning a scattered ray,
// nudging it off the surface it originated from to avoid immediate
// self-intersection.
const Epsilon = lin.RayEpsilon

// Ray is an origin point plus a direction, always stored normalized.
// Ray is immutable after construction: nothing in this module ever
// mutates Origin or Dir in place.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Vec3 is an alias so every file in this package can write geom.Vec3
// without every caller needing to import math/lin directly.
type Vec3 = lin.Vec3

// NewRay constructs a Ray, normalizing dir.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Unit()}
}

// At returns the point origin + t*dir.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
