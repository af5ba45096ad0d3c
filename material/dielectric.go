// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"math"

	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Dielectric (also called Translucent when Roughness > 0) is a
// refractive surface with Fresnel-weighted reflect/refract choice.
type Dielectric struct {
	IndexOfRefraction float64
	// Roughness in [0,1] linearly blends the refracted ray with a
	// Lambert-like diffuse scatter, modeling a frosted medium.
	Roughness float64
}

// NewDielectric builds a clear Dielectric (Roughness 0) of the given
// refractive index.
func NewDielectric(index float64) Dielectric {
	return Dielectric{IndexOfRefraction: index}
}

// NewTranslucent builds a frosted Dielectric: refraction blended with
// diffuse scatter by roughness, clamped to [0,1].
func NewTranslucent(index, roughness float64) Dielectric {
	return Dielectric{IndexOfRefraction: index, Roughness: lin.Clamp(roughness, 0, 1)}
}

// Scatter chooses between reflection and refraction per the Schlick
// Fresnel test (and total-internal-reflection), then, for a rough
// surface, blends the refracted direction toward a diffuse scatter.
func (d Dielectric) Scatter(r geom.Ray, hit geom.Hit, rng lin.RNG) (geom.Ray, bool) {
	etaI, etaR := 1.0, d.IndexOfRefraction
	if !hit.Outer {
		etaI, etaR = d.IndexOfRefraction, 1.0
	}

	cosThetaI := math.Abs(r.Dir.Dot(hit.Normal))
	sinThetaI := r.Dir.Cross(hit.Normal).Len()

	totalInternalReflection := etaI > etaR && sinThetaI > etaR/etaI
	reflectance := lin.Schlick(cosThetaI, etaI, etaR)

	var dir lin.Vec3
	if totalInternalReflection || rng.Float64() < reflectance {
		dir = r.Dir.Reflect(hit.Normal)
	} else {
		dir = r.Dir.Refract(hit.Normal, etaI, etaR)
		if d.Roughness > 0 {
			diffuse := hit.Normal.Add(lin.RandomUnitVector(rng))
			if diffuse.AeqZ() {
				diffuse = hit.Normal
			}
			dir = dir.Lerp(diffuse, d.Roughness)
		}
	}

	return geom.NewRay(hit.Point.Add(dir.Unit().Scale(geom.Epsilon)), dir), true
}

// Attenuation is always (1,1,1): dielectrics are clear, not tinted.
func (d Dielectric) Attenuation() lin.Vec3 { return lin.One }

// Emit returns black.
func (d Dielectric) Emit() lin.Vec3 { return lin.Zero }
