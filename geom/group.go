// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// HittableGroup is an unaccelerated linear-scan collection of
// Hittables. Prism and Icosahedron are built from one; it is also handy
// for small test scenes that don't need a BVH.
type HittableGroup struct {
	Members []Hittable
}

// NewHittableGroup builds a group from the given members.
func NewHittableGroup(members ...Hittable) *HittableGroup {
	return &HittableGroup{Members: members}
}

// Intersect linearly scans every member, keeping the nearest hit.
func (g *HittableGroup) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	closest := tMax
	var best Hit
	found := false
	for _, m := range g.Members {
		if hit, ok := m.Intersect(r, tMin, closest, rng); ok {
			closest = hit.T
			best = hit
			found = true
		}
	}
	return best, found
}

// BoundingBox returns the union of every member's bounding box.
func (g *HittableGroup) BoundingBox() AABB {
	box := EmptyAABB()
	for _, m := range g.Members {
		box = box.Union(m.BoundingBox())
	}
	return box
}

// SurfaceArea returns the sum of member surface areas. Not physically
// meaningful for a group, but kept so HittableGroup satisfies Hittable
// the same way every other composite does.
func (g *HittableGroup) SurfaceArea() float64 {
	total := 0.0
	for _, m := range g.Members {
		total += m.SurfaceArea()
	}
	return total
}
