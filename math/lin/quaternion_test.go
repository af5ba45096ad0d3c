// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestRotateVectorIdentity(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := QIdentity.RotateVector(v); !got.Aeq(v) {
		t.Errorf(format, got.Dump(), v.Dump())
	}
}

func TestRotateVector90AboutZ(t *testing.T) {
	q := FromAxisAngle(UnitZ, Deg2Rad(90))
	got := q.RotateVector(UnitX)
	want := UnitY
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestRotateVector180AboutX(t *testing.T) {
	q := FromAxisAngle(UnitX, Deg2Rad(180))
	got := q.RotateVector(UnitY)
	want := Vec3{0, -1, 0}
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestConjugateInverts(t *testing.T) {
	q := FromAxisAngle(Vec3{1, 1, 0}, Deg2Rad(37))
	v := Vec3{2, -1, 5}
	rotated := q.RotateVector(v)
	back := q.Conjugate().RotateVector(rotated)
	if !back.Aeq(v) {
		t.Errorf(format, back.Dump(), v.Dump())
	}
}

func TestComposeRotations(t *testing.T) {
	seq := []struct {
		Axis  Vec3
		Angle float64
	}{
		{UnitZ, Deg2Rad(90)},
		{UnitZ, Deg2Rad(90)},
	}
	q := ComposeRotations(seq)
	got := q.RotateVector(UnitX)
	want := Vec3{-1, 0, 0}
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}
