// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene assembles geom.Hittable primitives into a renderable
// World (a BVH-accelerated scene) and ships the two demo scenes the
// original renderer shipped with: a small defocus-blur showcase and a
// Cornell box.
package scene

import (
	"pathtracer/accel"
	"pathtracer/geom"
	"pathtracer/math/lin"
)

// World is a BVH-accelerated collection of primitives satisfying
// render.Scene. Build it once per scene; Intersect is safe for
// concurrent use by multiple render workers.
type World struct {
	bvh *accel.BVH
}

// NewWorld builds the BVH over prims immediately; there is no lazy
// construction since every renderer call traces many rays against it.
func NewWorld(prims []geom.Hittable) *World {
	return &World{bvh: accel.Build(prims)}
}

// Intersect satisfies render.Scene.
func (w *World) Intersect(r geom.Ray, tMin, tMax float64, rng lin.RNG) (geom.Hit, bool) {
	return w.bvh.Intersect(r, tMin, tMax, rng)
}

// BoundingBox returns the world's overall bounds.
func (w *World) BoundingBox() geom.AABB { return w.bvh.BoundingBox() }
