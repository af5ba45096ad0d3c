// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the scalar and vector math the path tracer's core
// is built on: floating point comparisons, clamping/interpolation, the
// Schlick Fresnel approximation, and a uniform [0,1) PRNG source each
// render worker owns exclusively.
package lin

import "math"

// Epsilon is the absolute threshold used by Aeq/AeqZ to treat two floats
// as equal. The ray-origin offset for scattered rays is the separate,
// larger RayEpsilon.
const Epsilon = 1e-4

// RayEpsilon offsets scattered-ray t_min away from the surface a ray
// just left, preventing the ray from immediately re-hitting it due to
// floating point error.
const RayEpsilon = 0.001

// Aeq (~=) reports whether a and b are equal to within Epsilon.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqZ (~=) reports whether x is close enough to zero to be treated as zero.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// FLeq (<=) reports a <= b, treating near-equal values as equal.
func FLeq(a, b float64) bool { return a < b || Aeq(a, b) }

// FGeq (>=) reports a >= b, treating near-equal values as equal.
func FGeq(a, b float64) bool { return a > b || Aeq(a, b) }

// Lerp linearly interpolates between a and b by ratio t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp restricts x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// Schlick computes the Schlick approximation of Fresnel reflectance for a
// ray arriving at angle cosine (between the incident ray and the surface
// normal) crossing a boundary between refractive indices etaI and etaR.
func Schlick(cosine, etaI, etaR float64) float64 {
	r0 := (etaI - etaR) / (etaI + etaR)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }
