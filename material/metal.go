// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Metal is a rough-reflective ("glossy metal") surface: the reflected
// direction is perturbed by roughness*random_unit_vector.
type Metal struct {
	Albedo    lin.Vec3
	Roughness float64 // clamped to [0,1] at construction
}

// NewMetal builds a Metal material, clamping roughness into [0,1].
func NewMetal(albedo lin.Vec3, roughness float64) Metal {
	return Metal{Albedo: albedo, Roughness: lin.Clamp(roughness, 0, 1)}
}

// Scatter reflects the incoming direction and perturbs it by
// roughness; absorbs the ray if the perturbed direction points back
// into the surface.
func (m Metal) Scatter(r geom.Ray, hit geom.Hit, rng lin.RNG) (geom.Ray, bool) {
	reflected := r.Dir.Reflect(hit.Normal)
	scattered := reflected.Add(lin.RandomUnitVector(rng).Scale(m.Roughness))
	if scattered.Dot(hit.Normal) <= 0 {
		return geom.Ray{}, false
	}
	return geom.NewRay(hit.Point.Add(hit.Normal.Scale(geom.Epsilon)), scattered), true
}

// Attenuation returns the albedo.
func (m Metal) Attenuation() lin.Vec3 { return m.Albedo }

// Emit returns black.
func (m Metal) Emit() lin.Vec3 { return lin.Zero }
