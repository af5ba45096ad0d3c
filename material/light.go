// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Light is an emissive surface. It never scatters; its own light is
// conveyed by Emit, which is colored only via whatever attenuation the
// integrator multiplies it by (see render.Integrator).
type Light struct {
	Intensity float64
}

// NewLight builds a Light of the given scalar intensity.
func NewLight(intensity float64) Light { return Light{Intensity: intensity} }

// Scatter always fails: light surfaces terminate a path.
func (l Light) Scatter(r geom.Ray, hit geom.Hit, rng lin.RNG) (geom.Ray, bool) {
	return geom.Ray{}, false
}

// Attenuation returns white; the emitter's actual color comes from
// whatever attenuation the integrator applies to Emit's output.
func (l Light) Attenuation() lin.Vec3 { return lin.One }

// Emit returns intensity*(1,1,1).
func (l Light) Emit() lin.Vec3 { return lin.One.Scale(l.Intensity) }
