// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"pathtracer/math/lin"
)

// AABB is an axis-aligned bounding box, naming its corners ftr
// (front-top-right, the componentwise max) and bbl (back-bottom-left,
// the componentwise min).
type AABB struct {
	BblCorner Vec3 // componentwise minimum
	FtrCorner Vec3 // componentwise maximum
}

// EmptyAABB returns the identity element for Union: an AABB using
// +/-Inf sentinels such that Union(EmptyAABB(), x) == x.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		BblCorner: Vec3{inf, inf, inf},
		FtrCorner: Vec3{-inf, -inf, -inf},
	}
}

// NewAABB builds an AABB from two corners, ordering them componentwise
// so BblCorner <= FtrCorner always holds.
func NewAABB(a, b Vec3) AABB {
	return AABB{BblCorner: a.Min(b), FtrCorner: a.Max(b)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.BblCorner.Add(b.FtrCorner).Scale(0.5)
}

// Extent returns FtrCorner - BblCorner componentwise.
func (b AABB) Extent() Vec3 {
	return b.FtrCorner.Sub(b.BblCorner)
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		BblCorner: b.BblCorner.Min(o.BblCorner),
		FtrCorner: b.FtrCorner.Max(o.FtrCorner),
	}
}

// UnionPoint returns the smallest AABB containing b and point p.
func (b AABB) UnionPoint(p Vec3) AABB {
	return AABB{
		BblCorner: b.BblCorner.Min(p),
		FtrCorner: b.FtrCorner.Max(p),
	}
}

// SurfaceArea returns the total area of the box's six faces. A
// degenerate (empty, infinite-extent) box returns 0 rather than NaN/Inf
// arithmetic nonsense, since it should never be queried for cost.
func (b AABB) SurfaceArea() float64 {
	e := b.Extent()
	if math.IsInf(e.X, 0) || math.IsInf(e.Y, 0) || math.IsInf(e.Z, 0) {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Volume returns the box's enclosed volume.
func (b AABB) Volume() float64 {
	e := b.Extent()
	if math.IsInf(e.X, 0) || math.IsInf(e.Y, 0) || math.IsInf(e.Z, 0) {
		return 0
	}
	return e.X * e.Y * e.Z
}

// LargestExtentAxis returns the axis (0=X, 1=Y, 2=Z) along which the box
// is longest, used to choose a BVH split axis.
func (b AABB) LargestExtentAxis() int {
	return b.Extent().MaxExtentAxis()
}

// PointOffset returns p's position within the box normalized to [0,1]^3
// per axis; used to bucket a primitive's centroid during SAH binning.
func (b AABB) PointOffset(p Vec3) Vec3 {
	e := b.Extent()
	o := p.Sub(b.BblCorner)
	if e.X > 0 {
		o.X /= e.X
	}
	if e.Y > 0 {
		o.Y /= e.Y
	}
	if e.Z > 0 {
		o.Z /= e.Z
	}
	return o
}

// RayIntersects performs the slab test against the ray given its
// precomputed per-component inverse direction, returning the entry/exit
// parametric interval and whether it is non-empty. Division by a zero
// direction component produces +/-Inf per IEEE-754, which the min/max
// comparisons below handle correctly without a branch.
func (b AABB) RayIntersects(r Ray, invDir Vec3, tMin, tMax float64) (tEnter, tExit float64, hit bool) {
	t0, t1 := tMin, tMax

	for axis := 0; axis < 3; axis++ {
		o := r.Origin.Component(axis)
		d := invDir.Component(axis)
		lo := (b.BblCorner.Component(axis) - o) * d
		hi := (b.FtrCorner.Component(axis) - o) * d
		if d < 0 {
			lo, hi = hi, lo
		}
		if lo > t0 {
			t0 = lo
		}
		if hi < t1 {
			t1 = hi
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// BoxIntersects reports whether b and o overlap (including touching).
func (b AABB) BoxIntersects(o AABB) bool {
	return b.BblCorner.X <= o.FtrCorner.X && b.FtrCorner.X >= o.BblCorner.X &&
		b.BblCorner.Y <= o.FtrCorner.Y && b.FtrCorner.Y >= o.BblCorner.Y &&
		b.BblCorner.Z <= o.FtrCorner.Z && b.FtrCorner.Z >= o.BblCorner.Z
}

// Contains reports whether o lies entirely within b (componentwise),
// used by the BVH-covers-children invariant in tests.
func (b AABB) Contains(o AABB) bool {
	return lin.FLeq(b.BblCorner.X, o.BblCorner.X) && lin.FGeq(b.FtrCorner.X, o.FtrCorner.X) &&
		lin.FLeq(b.BblCorner.Y, o.BblCorner.Y) && lin.FGeq(b.FtrCorner.Y, o.FtrCorner.Y) &&
		lin.FLeq(b.BblCorner.Z, o.BblCorner.Z) && lin.FGeq(b.FtrCorner.Z, o.FtrCorner.Z)
}
