// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Package lin's Vec3 favours value semantics (methods return a new Vec3
// rather than mutating a receiver in place) because the integrator and
// material code compose long chains of vector expressions per bounce
// (e.g. p.Add(u.Scale(t)).Sub(n)); allocations of a 24-byte value are
// cheap relative to the BVH traversal and scatter sampling surrounding
// them.

import "math"

// Vec3 is a 3-element vector, also used as a point or an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// Common vectors.
var (
	Zero = Vec3{0, 0, 0}
	One  = Vec3{1, 1, 1}
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// New constructs a Vec3 from its components.
func New(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add (+) returns v + a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v - a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul (componentwise *) returns v scaled elementwise by a. Used to apply
// an RGB attenuation factor to a radiance/throughput vector.
func (v Vec3) Mul(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Scale (*) returns v multiplied by scalar s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div (/) returns v divided componentwise by scalar s.
func (v Vec3) Div(s float64) Vec3 { return v.Scale(1 / s) }

// Neg (-v) returns the additive inverse of v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and a.
func (v Vec3) Dot(a Vec3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product v x a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v (avoids a sqrt).
func (v Vec3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length (Euclidean norm) of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// Unit returns v normalized to length 1. The zero vector is returned
// unchanged rather than producing NaN.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation between v and a by ratio t.
func (v Vec3) Lerp(a Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(v.X, a.X, t),
		Lerp(v.Y, a.Y, t),
		Lerp(v.Z, a.Z, t),
	}
}

// Min returns the componentwise minimum of v and a.
func (v Vec3) Min(a Vec3) Vec3 {
	return Vec3{math.Min(v.X, a.X), math.Min(v.Y, a.Y), math.Min(v.Z, a.Z)}
}

// Max returns the componentwise maximum of v and a.
func (v Vec3) Max(a Vec3) Vec3 {
	return Vec3{math.Max(v.X, a.X), math.Max(v.Y, a.Y), math.Max(v.Z, a.Z)}
}

// Abs returns v with each component replaced by its absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Component returns the i'th component of v (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// MaxExtentAxis returns the axis (0=X, 1=Y, 2=Z) along which v is largest.
// v is typically the extent (max - min) of a bounding box.
func (v Vec3) MaxExtentAxis() int {
	switch {
	case v.X > v.Y && v.X > v.Z:
		return 0
	case v.Y > v.Z:
		return 1
	default:
		return 2
	}
}

// Eq (==) reports whether v and a are componentwise exactly equal.
func (v Vec3) Eq(a Vec3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) reports whether v and a are componentwise equal to within Epsilon.
func (v Vec3) Aeq(a Vec3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// AeqZ reports whether v's squared length is close enough to zero that it
// makes no difference (a degenerate direction).
func (v Vec3) AeqZ() bool { return v.LenSqr() < Epsilon }

// Reflect returns the reflection of v about unit normal n: v - 2*(v.n)*n.
// n is assumed to be on the same side as -v (the convention used by every
// caller in this module: n always faces the incoming ray).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends unit direction v across a boundary with incident index
// etaI and refracted index etaR, given unit normal n on the same side as
// -v (facing the incoming ray, as every hit normal in this module does).
// The caller must have already established, via Schlick/critical-angle
// checks, that refraction (rather than total internal reflection) is
// the chosen outcome.
func (v Vec3) Refract(n Vec3, etaI, etaR float64) Vec3 {
	cosThetaI := math.Abs(v.Dot(n))
	sinThetaI := math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))
	sinThetaR := sinThetaI * etaI / etaR
	sinThetaR = Clamp(sinThetaR, -1, 1)
	thetaR := math.Asin(sinThetaR)

	// -n + tan(thetaR) * unit((d x -n) x n)
	negN := n.Neg()
	perp := v.Cross(negN).Cross(n).Unit()
	return negN.Add(perp.Scale(math.Tan(thetaR)))
}

// String renders v for diagnostics and test failure messages.
func (v Vec3) String() string { return Dump(v) }

// Dump renders v in the same short form as String, kept as a separate
// method so test files can call v.Dump() explicitly without implying
// Vec3 satisfies fmt.Stringer only for tests.
func (v Vec3) Dump() string { return Dump(v) }
