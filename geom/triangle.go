// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// Triangle is a flat triangle with corners A, B, C in counter-clockwise
// winding (as seen from the side the normal faces).
type Triangle struct {
	A, B, C  Vec3
	Normal   Vec3
	Material Material
}

// NewTriangle builds a Triangle, deriving its normal from the winding
// of A, B, C.
func NewTriangle(a, b, c Vec3, mat Material) *Triangle {
	normal := b.Sub(a).Cross(c.Sub(a)).Unit()
	return &Triangle{A: a, B: b, C: c, Normal: normal, Material: mat}
}

// Intersect rejects rays parallel to the triangle's plane, solves the
// plane intersection, then tests the point against the three edges via
// sign-consistent cross products.
func (tr *Triangle) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	denom := r.Dir.Dot(tr.Normal)
	if lin.AeqZ(denom) {
		return Hit{}, false
	}

	t := tr.A.Sub(r.Origin).Dot(tr.Normal) / denom
	if t <= tMin || t >= tMax {
		return Hit{}, false
	}

	p := r.At(t)
	if tr.B.Sub(tr.A).Cross(p.Sub(tr.A)).Dot(tr.Normal) < 0 {
		return Hit{}, false
	}
	if tr.C.Sub(tr.B).Cross(p.Sub(tr.B)).Dot(tr.Normal) < 0 {
		return Hit{}, false
	}
	if tr.A.Sub(tr.C).Cross(p.Sub(tr.C)).Dot(tr.Normal) < 0 {
		return Hit{}, false
	}

	normal, outer := FaceNormal(r.Dir, tr.Normal)
	return Hit{Point: p, Normal: normal, Outer: outer, T: t, Material: tr.Material}, true
}

// BoundingBox returns the AABB of the triangle's three corners, padded
// along the flat axis so a triangle lying in an axis-aligned plane
// still has positive volume for SAH binning.
func (tr *Triangle) BoundingBox() AABB {
	box := NewAABB(tr.A, tr.A).UnionPoint(tr.B).UnionPoint(tr.C)
	const pad = 1e-4
	return NewAABB(
		box.BblCorner.Sub(Vec3{pad, pad, pad}),
		box.FtrCorner.Add(Vec3{pad, pad, pad}),
	)
}

// SurfaceArea returns 1/2 * ||(B-A) x (C-A)||.
func (tr *Triangle) SurfaceArea() float64 {
	return tr.B.Sub(tr.A).Cross(tr.C.Sub(tr.A)).Len() * 0.5
}
