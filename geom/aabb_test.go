// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"pathtracer/math/lin"
)

func TestAABBSurfaceAreaAndVolume(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{-1, -2.3, -4.2})
	if got := box.SurfaceArea(); math.Abs(got-32.32) > 0.01 {
		t.Errorf("SurfaceArea() = %v, want ~32.32", got)
	}
	if got := box.Volume(); math.Abs(got-9.66) > 0.01 {
		t.Errorf("Volume() = %v, want ~9.66", got)
	}
}

func TestAABBUnionContainsBoth(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewAABB(Vec3{-1, -1, -1}, Vec3{0.5, 0.5, 0.5})
	u := a.Union(b)
	if !u.Contains(a) || !u.Contains(b) {
		t.Error("union does not contain both inputs")
	}
}

func TestAABBUnionIdentity(t *testing.T) {
	a := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	if got := EmptyAABB().Union(a); !got.BblCorner.Aeq(a.BblCorner) || !got.FtrCorner.Aeq(a.FtrCorner) {
		t.Errorf("Union(empty, a) = %+v want %+v", got, a)
	}
}

func TestAABBUnionCommutative(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{2, 1, 1})
	b := NewAABB(Vec3{-2, -2, -2}, Vec3{1, 3, 1})
	ab := a.Union(b)
	ba := b.Union(a)
	if !ab.BblCorner.Aeq(ba.BblCorner) || !ab.FtrCorner.Aeq(ba.FtrCorner) {
		t.Error("Union is not commutative")
	}
}

func TestAABBLargestExtentAxis(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{5, 1, 1})
	if got := box.LargestExtentAxis(); got != 0 {
		t.Errorf("LargestExtentAxis() = %d want 0", got)
	}
}

func TestAABBPointOffset(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{10, 10, 10})
	got := box.PointOffset(Vec3{5, 0, 10})
	want := Vec3{0.5, 0, 1}
	if !got.Aeq(want) {
		t.Errorf("PointOffset() = %s want %s", got.Dump(), want.Dump())
	}
}

func TestAABBRayIntersects(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	r := NewRay(Vec3{0, 0, 5}, Vec3{0, 0, -1})
	invDir := Vec3{1 / r.Dir.X, 1 / r.Dir.Y, 1 / r.Dir.Z}
	tEnter, tExit, hit := box.RayIntersects(r, invDir, 0, math.Inf(1))
	if !hit {
		t.Fatal("expected a hit")
	}
	if !lin.Aeq(tEnter, 4) || !lin.Aeq(tExit, 6) {
		t.Errorf("got [%v,%v] want [4,6]", tEnter, tExit)
	}
}

func TestAABBRayMisses(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	r := NewRay(Vec3{5, 5, 5}, Vec3{0, 0, -1})
	invDir := Vec3{1 / r.Dir.X, 1 / r.Dir.Y, 1 / r.Dir.Z}
	if _, _, hit := box.RayIntersects(r, invDir, 0, math.Inf(1)); hit {
		t.Error("expected a miss")
	}
}

func TestAABBSlabConsistentWithBoxIntersects(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{2, 2, 2})
	b := NewAABB(Vec3{2, 0, 0}, Vec3{4, 2, 2}) // shares the x=2 face
	if !a.BoxIntersects(b) {
		t.Fatal("expected boxes to intersect")
	}
	// ray along the shared face, from outside a through the shared point
	r := NewRay(Vec3{2, 1, 1}, Vec3{-1, 0, 0})
	invDir := Vec3{1 / r.Dir.X, 1 / r.Dir.Y, 1 / r.Dir.Z}
	_, _, hit := a.RayIntersects(r, invDir, 0, math.Inf(1))
	if !hit {
		t.Error("expected ray_intersects to find a non-empty interval")
	}
}
