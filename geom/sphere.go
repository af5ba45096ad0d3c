// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"pathtracer/math/lin"
)

// Sphere is a ray-intersectable ball of given center and radius.
type Sphere struct {
	Center   Vec3
	Radius   float64
	Material Material
}

// NewSphere constructs a Sphere.
func NewSphere(center Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Intersect solves ||o + t*d - c||^2 = r^2 for the nearest root in
// (tMin, tMax).
func (s *Sphere) Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.LenSqr()
	halfB := oc.Dot(r.Dir)
	c := oc.LenSqr() - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return Hit{}, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Sub(s.Center).Div(s.Radius)
	normal, outer := FaceNormal(r.Dir, outwardNormal)
	return Hit{Point: point, Normal: normal, Outer: outer, T: root, Material: s.Material}, true
}

// BoundingBox returns the sphere's axis-aligned bounds.
func (s *Sphere) BoundingBox() AABB {
	r := Vec3{s.Radius, s.Radius, s.Radius}
	return NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// SurfaceArea returns 4*pi*r^2.
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}
