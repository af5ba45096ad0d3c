// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// Icosahedron is a regular 20-sided polyhedron built from the classic
// golden-ratio construction: vertices at the cyclic permutations of
// (0, +/-1, +/-phi), scaled by radius and recentered at center.
type Icosahedron struct {
	faces *HittableGroup
	box   AABB
}

// NewIcosahedron builds an Icosahedron of the given radius centered at
// center.
func NewIcosahedron(center Vec3, radius float64, mat Material) *Icosahedron {
	const phi = 1.6180339887498949

	raw := [12]Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	verts := make([]Vec3, 12)
	for i, v := range raw {
		verts[i] = center.Add(v.Unit().Scale(radius))
	}

	faceIdx := [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	members := make([]Hittable, 20)
	for i, f := range faceIdx {
		members[i] = NewTriangle(verts[f[0]], verts[f[1]], verts[f[2]], mat)
	}

	faces := NewHittableGroup(members...)
	return &Icosahedron{faces: faces, box: faces.BoundingBox()}
}

// Intersect delegates to the underlying triangle group.
func (ic *Icosahedron) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	return ic.faces.Intersect(r, tMin, tMax, rng)
}

// BoundingBox returns the icosahedron's bounding box, cached at
// construction.
func (ic *Icosahedron) BoundingBox() AABB { return ic.box }

// SurfaceArea returns the sum of the 20 triangular faces' areas.
func (ic *Icosahedron) SurfaceArea() float64 { return ic.faces.SurfaceArea() }
