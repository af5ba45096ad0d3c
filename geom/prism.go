// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// Prism is a parallelepiped built from a center and three spanning
// vectors, represented as six Plane faces (one pair of opposing
// parallelograms per spanning vector). Used for box-like scene geometry
// (e.g. the blocks in a Cornell-box style demo scene).
type Prism struct {
	faces *HittableGroup
	box   AABB
}

// NewPrism builds a Prism from center c and spanning vectors a, b, d.
// Like Plane's u and v, the spanning vectors are half-extents: each
// pair of opposing faces sits at center +/- one spanning vector and is
// spanned by the other two.
func NewPrism(center, a, b, d Vec3, mat Material) *Prism {
	faces := NewHittableGroup(
		NewPlane(center.Add(a), b, d, mat),
		NewPlane(center.Sub(a), b, d, mat),
		NewPlane(center.Add(b), a, d, mat),
		NewPlane(center.Sub(b), a, d, mat),
		NewPlane(center.Add(d), a, b, mat),
		NewPlane(center.Sub(d), a, b, mat),
	)
	return &Prism{faces: faces, box: faces.BoundingBox()}
}

// Intersect delegates to the underlying face group.
func (p *Prism) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	return p.faces.Intersect(r, tMin, tMax, rng)
}

// BoundingBox returns the union of the six faces' bounding boxes,
// cached at construction since a Prism never changes after build.
func (p *Prism) BoundingBox() AABB { return p.box }

// SurfaceArea returns the sum of the six faces' areas.
func (p *Prism) SurfaceArea() float64 { return p.faces.SurfaceArea() }
