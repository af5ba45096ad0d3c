// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

// While the functions below are not complicated, they are foundational such
// that it is better to test each one of them than have the bugs discovered
// later from other code.

const format = "got %s want %s"

func TestAdd(t *testing.T) {
	v, want := Vec3{1, 2, 3}, Vec3{2, 4, 6}
	if got := v.Add(v); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestSub(t *testing.T) {
	v, want := Vec3{1, 2, 3}, Zero
	if got := v.Sub(v); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestMul(t *testing.T) {
	v, want := Vec3{1, 2, 3}, Vec3{1, 4, 9}
	if got := v.Mul(v); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestScale(t *testing.T) {
	v, want := Vec3{1, 2, 3}, Vec3{2, 4, 6}
	if got := v.Scale(2); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestDiv(t *testing.T) {
	v, want := Vec3{1, 2, 3}, Vec3{2, 4, 6}
	if got := v.Div(0.5); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestDot(t *testing.T) {
	v, a := Vec3{1, 2, 3}, Vec3{2, 4, 8}
	if v.Dot(a) != 34 || v.Dot(v) != 14 {
		t.Error("invalid dot product")
	}
}

func TestLen(t *testing.T) {
	v := Vec3{9, 2, 6}
	if v.Len() != 11 {
		t.Error("invalid length", v.Len())
	}
}

func TestUnit(t *testing.T) {
	if got := Zero.Unit(); !got.Eq(Zero) {
		t.Errorf(format, got.Dump(), Zero.Dump())
	}
	v := Vec3{5, 6, 7}
	if !Aeq(v.Unit().Len(), 1) {
		t.Error("normalized vectors should have length one")
	}
}

func TestCross(t *testing.T) {
	v, b, want := Vec3{3, -3, 1}, Vec3{4, 9, 2}, Vec3{-15, -2, 39}
	if got := v.Cross(b); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestLerp(t *testing.T) {
	v, b, want := Vec3{1, 2, 3}, Vec3{5, 6, 7}, Vec3{3, 4, 5}
	if got := v.Lerp(b, 0.5); !got.Eq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestReflect(t *testing.T) {
	v, n, want := Vec3{1, -1, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 0}
	if got := v.Reflect(n); !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestMaxExtentAxis(t *testing.T) {
	cases := []struct {
		v    Vec3
		axis int
	}{
		{Vec3{5, 1, 1}, 0},
		{Vec3{1, 5, 1}, 1},
		{Vec3{1, 1, 5}, 2},
	}
	for _, c := range cases {
		if got := c.v.MaxExtentAxis(); got != c.axis {
			t.Errorf("MaxExtentAxis(%s) = %d want %d", c.v.Dump(), got, c.axis)
		}
	}
}

func TestAeqZ(t *testing.T) {
	if !(Vec3{0, 0, 0}).AeqZ() {
		t.Error("zero vector should be AeqZ")
	}
	if (Vec3{1, 0, 0}).AeqZ() {
		t.Error("unit vector should not be AeqZ")
	}
}
