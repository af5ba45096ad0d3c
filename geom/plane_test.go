// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func TestPlaneHitAndMiss(t *testing.T) {
	p := NewPlane(Vec3{0, 0, -2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, stubMaterial{})

	hitRay := NewRay(Vec3{}, Vec3{0, 0, -1})
	if _, ok := p.Intersect(hitRay, 0, math.Inf(1), nil); !ok {
		t.Error("expected a hit through the center of the quad")
	}

	missRay := NewRay(Vec3{}, Vec3{0, 0, -1}.Add(Vec3{5, 5, 0}))
	if _, ok := p.Intersect(missRay, 0, math.Inf(1), nil); ok {
		t.Error("expected a miss outside the quad's extent")
	}
}

func TestPlaneParallelRayMisses(t *testing.T) {
	p := NewPlane(Vec3{0, 0, -2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, stubMaterial{})
	r := NewRay(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	if _, ok := p.Intersect(r, 0, math.Inf(1), nil); ok {
		t.Error("expected a ray parallel to the plane to miss")
	}
}

func TestPlaneNonOrthogonalCorrected(t *testing.T) {
	// u and v share a component; the constructor should still produce a
	// usable quad (it corrects v rather than panicking or erroring).
	p := NewPlane(Vec3{0, 0, -2}, Vec3{1, 0, 0}, Vec3{1, 1, 0}, stubMaterial{})
	if math.Abs(p.U.Dot(p.V)) > 1e-6 {
		t.Errorf("expected corrected spanning vectors to be orthogonal, got dot=%v", p.U.Dot(p.V))
	}
}

func TestPlaneSurfaceAreaIsParallelogramArea(t *testing.T) {
	p := NewPlane(Vec3{0, 0, 0}, Vec3{2, 0, 0}, Vec3{0, 3, 0}, stubMaterial{})
	if got := p.SurfaceArea(); got != 6 {
		t.Errorf("SurfaceArea() = %v want 6", got)
	}
}
