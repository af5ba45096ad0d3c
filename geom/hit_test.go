// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "testing"

func TestFaceNormalFlipsAgainstRay(t *testing.T) {
	normal, outer := FaceNormal(Vec3{0, 0, -1}, Vec3{0, 0, 1})
	if !outer {
		t.Error("expected outer = true when dir opposes outward normal")
	}
	if !normal.Aeq(Vec3{0, 0, 1}) {
		t.Errorf("normal = %s want (0,0,1)", normal.Dump())
	}

	normal, outer = FaceNormal(Vec3{0, 0, 1}, Vec3{0, 0, 1})
	if outer {
		t.Error("expected outer = false when dir aligns with outward normal")
	}
	if !normal.Aeq(Vec3{0, 0, -1}) {
		t.Errorf("normal = %s want (0,0,-1)", normal.Dump())
	}
}
