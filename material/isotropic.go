// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Isotropic is the material a geom.Volume scatters into at its sampled
// free-flight hit: uniformly in all directions, with no preferred
// normal (the Volume hit record carries a zero normal).
type Isotropic struct {
	Albedo lin.Vec3
}

// NewIsotropic builds an Isotropic material with the given albedo.
func NewIsotropic(albedo lin.Vec3) Isotropic { return Isotropic{Albedo: albedo} }

// Scatter picks a uniformly random direction on the unit sphere,
// independent of any surface normal.
func (i Isotropic) Scatter(r geom.Ray, hit geom.Hit, rng lin.RNG) (geom.Ray, bool) {
	return geom.NewRay(hit.Point, lin.RandomUnitVector(rng)), true
}

// Attenuation returns the albedo.
func (i Isotropic) Attenuation() lin.Vec3 { return i.Albedo }

// Emit returns black.
func (i Isotropic) Emit() lin.Vec3 { return lin.Zero }
