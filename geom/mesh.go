// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// RotationStep is one (axis, angle) entry in a Mesh's rotation
// sequence, applied in slice order.
type RotationStep struct {
	Axis  Vec3
	Angle float64 // radians
}

// Mesh is a triangle soup loaded from an external source (see the
// loader package), transformed once at construction time: uniform
// scale, then the rotation sequence, then a translation that re-centers
// the transformed bounding box onto the requested center point.
// Triangles are materialized once here; subsequent intersection queries
// go through the owning scene's BVH, not this type.
type Mesh struct {
	faces *HittableGroup
	box   AABB
}

// NewMesh builds a Mesh from a flat vertex list and zero-based triangle
// index triples (as produced by loader.LoadOBJ after index normalization).
func NewMesh(vertices []Vec3, triangles [][3]int, scale float64, rotations []RotationStep, center Vec3, mat Material) *Mesh {
	rotation := lin.ComposeRotations(toLinSteps(rotations))

	transformed := make([]Vec3, len(vertices))
	for i, v := range vertices {
		transformed[i] = rotation.RotateVector(v.Scale(scale))
	}

	box := EmptyAABB()
	for _, v := range transformed {
		box = box.UnionPoint(v)
	}
	offset := center.Sub(box.Center())
	for i := range transformed {
		transformed[i] = transformed[i].Add(offset)
	}

	members := make([]Hittable, len(triangles))
	for i, tri := range triangles {
		members[i] = NewTriangle(transformed[tri[0]], transformed[tri[1]], transformed[tri[2]], mat)
	}

	faces := NewHittableGroup(members...)
	return &Mesh{faces: faces, box: faces.BoundingBox()}
}

func toLinSteps(rotations []RotationStep) []struct {
	Axis  Vec3
	Angle float64
} {
	out := make([]struct {
		Axis  Vec3
		Angle float64
	}, len(rotations))
	for i, r := range rotations {
		out[i] = struct {
			Axis  Vec3
			Angle float64
		}{r.Axis, r.Angle}
	}
	return out
}

// Intersect delegates to the underlying triangle group.
func (m *Mesh) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	return m.faces.Intersect(r, tMin, tMax, rng)
}

// BoundingBox returns the mesh's bounding box, cached at construction.
func (m *Mesh) BoundingBox() AABB { return m.box }

// SurfaceArea returns the sum of the mesh's triangle areas.
func (m *Mesh) SurfaceArea() float64 { return m.faces.SurfaceArea() }

// Triangles returns the mesh's materialized faces as a flat slice,
// exposed so the BVH can flatten a scene's Hittables including a
// mesh's individual triangles rather than treating the whole mesh as
// one opaque leaf.
func (m *Mesh) Triangles() []Hittable {
	return m.faces.Members
}
