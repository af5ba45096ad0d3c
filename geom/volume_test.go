// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

// fixedRNG always returns the same value; useful for pinning down
// which branch a probabilistic intersection routine takes.
type fixedRNG struct{ v float64 }

func (f fixedRNG) Float64() float64 { return f.v }

func TestVolumeScattersInsideBoundary(t *testing.T) {
	boundary := NewSphere(Vec3{0, 0, 0}, 1, stubMaterial{})
	vol := NewVolume(boundary, 1, stubMaterial{})
	r := NewRay(Vec3{0, 0, 2}, Vec3{0, 0, -1})

	// U = 0.5 gives a free-flight distance of -ln(0.5) ~= 0.69,
	// comfortably inside the sphere's 2-unit chord, so the ray should
	// scatter rather than pass through.
	hit, ok := vol.Intersect(r, 0, math.Inf(1), fixedRNG{v: 0.5})
	if !ok {
		t.Fatal("expected the ray to scatter inside the volume")
	}
	if hit.T < 1 || hit.T > 3 {
		t.Errorf("hit.T = %v, want within the sphere's chord [1,3]", hit.T)
	}
}

func TestVolumePassesThroughOnLargeSample(t *testing.T) {
	boundary := NewSphere(Vec3{0, 0, 0}, 1, stubMaterial{})
	vol := NewVolume(boundary, 1, stubMaterial{})
	r := NewRay(Vec3{0, 0, 2}, Vec3{0, 0, -1})

	// "Passes through" needs a large sampled free-flight distance, i.e.
	// a large -ln(U), which happens when U is close to 0: U = 0.01 gives
	// ~4.6, longer than the sphere's 2-unit chord.
	hit, ok := vol.Intersect(r, 0, math.Inf(1), fixedRNG{v: 0.01})
	if ok {
		t.Errorf("expected the ray to pass through without scattering, got hit at t=%v", hit.T)
	}
}

func TestVolumeMissesOutsideBoundary(t *testing.T) {
	boundary := NewSphere(Vec3{0, 0, 0}, 1, stubMaterial{})
	vol := NewVolume(boundary, 1, stubMaterial{})
	r := NewRay(Vec3{5, 5, 5}, Vec3{0, 0, -1})
	if _, ok := vol.Intersect(r, 0, math.Inf(1), fixedRNG{v: 0.5}); ok {
		t.Error("expected a miss for a ray that never reaches the boundary")
	}
}
