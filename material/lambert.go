// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package material implements the geom.Material capability: diffuse,
// reflective, dielectric, emissive, and isotropic surfaces. Each type
// here satisfies geom.Material by importing geom for the Hit/Ray types
// it needs; geom itself never imports material, avoiding a cycle.
package material

import (
	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Lambert is a diffuse (Lambertian) surface: scattered rays are
// distributed about the surface normal with a cosine-weighted falloff.
type Lambert struct {
	Albedo lin.Vec3
}

// NewLambert builds a Lambert material with the given albedo.
func NewLambert(albedo lin.Vec3) Lambert { return Lambert{Albedo: albedo} }

// Scatter always succeeds: direction = normal + random unit vector,
// falling back to the normal itself if that sum is degenerate.
func (l Lambert) Scatter(r geom.Ray, hit geom.Hit, rng lin.RNG) (geom.Ray, bool) {
	dir := hit.Normal.Add(lin.RandomUnitVector(rng))
	if dir.AeqZ() {
		dir = hit.Normal
	}
	return geom.NewRay(hit.Point.Add(hit.Normal.Scale(geom.Epsilon)), dir), true
}

// Attenuation returns the albedo.
func (l Lambert) Attenuation() lin.Vec3 { return l.Albedo }

// Emit returns black; Lambert surfaces do not emit.
func (l Lambert) Emit() lin.Vec3 { return lin.Zero }
