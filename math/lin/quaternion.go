// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Quaternion is a unit quaternion used to compose and apply rotations,
// here for a Mesh's scale, rotate (sequence), translate transform
// pipeline. Rotation application returns a new Vec3 rather than
// mutating an argument, matching the rest of this package's value
// semantics.
type Quaternion struct {
	X, Y, Z, W float64
}

// QIdentity is the identity rotation.
var QIdentity = Quaternion{0, 0, 0, 1}

// FromAxisAngle builds a unit quaternion representing a rotation of
// angleRad radians about axis (which need not be pre-normalized).
func FromAxisAngle(axis Vec3, angleRad float64) Quaternion {
	a := axis.Unit()
	half := angleRad / 2
	s := math.Sin(half)
	return Quaternion{a.X * s, a.Y * s, a.Z * s, math.Cos(half)}
}

// Mul composes q then a: the rotation equivalent to applying q first,
// then a (standard Hamilton product, a*q in matrix-composition order).
func (q Quaternion) Mul(a Quaternion) Quaternion {
	return Quaternion{
		W: a.W*q.W - a.X*q.X - a.Y*q.Y - a.Z*q.Z,
		X: a.W*q.X + a.X*q.W + a.Y*q.Z - a.Z*q.Y,
		Y: a.W*q.Y - a.X*q.Z + a.Y*q.W + a.Z*q.X,
		Z: a.W*q.Z + a.X*q.Y - a.Y*q.X + a.Z*q.W,
	}
}

// Conjugate returns the conjugate of q, which for a unit quaternion is
// also its inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Normalize returns q scaled to unit length.
func (q Quaternion) Normalize() Quaternion {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return QIdentity
	}
	inv := 1 / l
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// RotateVector applies q's rotation to v: q * (v,0) * conj(q), via the
// standard expanded form rather than a literal quaternion multiply.
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	s := q.W

	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * s)).Add(uuv.Scale(2))
}

// ComposeRotations folds a sequence of axis/angle rotations into one
// quaternion, applied in slice order, matching the order a Mesh's
// rotation sequence is specified in.
func ComposeRotations(seq []struct {
	Axis  Vec3
	Angle float64
}) Quaternion {
	result := QIdentity
	for _, r := range seq {
		result = result.Mul(FromAxisAngle(r.Axis, r.Angle))
	}
	return result.Normalize()
}
