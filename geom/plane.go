// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"log/slog"
	"math"

	"pathtracer/math/lin"
)

// Plane is a finite parallelogram spanned by two vectors u, v from a
// center point. Despite the name, it is a bounded quadrilateral, not an
// infinite plane.
type Plane struct {
	Center   Vec3
	U, V     Vec3
	Normal   Vec3
	Material Material
}

// NewPlane builds a Plane from a center and two spanning vectors. If u
// and v are not orthogonal, v is projected onto the orthogonal
// complement of u within the plane (preserving orientation) and a
// warning is logged. This is a non-fatal construction-time correction,
// never a returned error.
func NewPlane(center, u, v Vec3, mat Material) *Plane {
	normal := u.Cross(v).Unit()
	if !lin.AeqZ(u.Dot(v)) {
		slog.Warn("plane spanning vectors are not orthogonal; correcting v",
			"center", center.Dump(), "u", u.Dump(), "v", v.Dump())
		// Remove the component of v along u, then restore v's original
		// length so the quad keeps its extent along the corrected v.
		vLen := v.Len()
		vCorrected := v.Sub(u.Unit().Scale(v.Dot(u.Unit())))
		if !vCorrected.AeqZ() {
			v = vCorrected.Unit().Scale(vLen)
		}
	}
	return &Plane{Center: center, U: u, V: v, Normal: normal, Material: mat}
}

// Intersect solves t = ((c - o).n) / (d.n), rejecting rays parallel to
// the plane and points that fall outside the u/v parallelogram.
func (p *Plane) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	denom := r.Dir.Dot(p.Normal)
	if lin.AeqZ(denom) {
		return Hit{}, false
	}

	t := p.Center.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= tMin || t >= tMax {
		return Hit{}, false
	}

	point := r.At(t)
	local := point.Sub(p.Center)
	uLen, vLen := p.U.Len(), p.V.Len()
	projU := local.Dot(p.U) / uLen
	projV := local.Dot(p.V) / vLen
	if math.Abs(projU) > uLen || math.Abs(projV) > vLen {
		return Hit{}, false
	}

	normal, outer := FaceNormal(r.Dir, p.Normal)
	return Hit{Point: point, Normal: normal, Outer: outer, T: t, Material: p.Material}, true
}

// BoundingBox returns the AABB of the parallelogram's four corners,
// padded slightly along the normal so a flat quad still has positive
// volume for SAH binning.
func (p *Plane) BoundingBox() AABB {
	corners := [4]Vec3{
		p.Center.Add(p.U).Add(p.V),
		p.Center.Add(p.U).Sub(p.V),
		p.Center.Sub(p.U).Add(p.V),
		p.Center.Sub(p.U).Sub(p.V),
	}
	box := NewAABB(corners[0], corners[0])
	for _, c := range corners[1:] {
		box = box.UnionPoint(c)
	}
	const pad = 1e-4
	return NewAABB(
		box.BblCorner.Sub(Vec3{pad, pad, pad}),
		box.FtrCorner.Add(Vec3{pad, pad, pad}),
	)
}

// SurfaceArea returns ||u x v||, the parallelogram's true area. See
// DESIGN.md for why this returns the true area rather than a cheaper
// approximation.
func (p *Plane) SurfaceArea() float64 {
	return p.U.Cross(p.V).Len()
}
