// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"fmt"
	"math/rand"
)

// RNG is the uniform random source the integrator, camera, and materials
// sample from. Each row job the render scheduler runs owns its own RNG
// instance; RNG is not safe for concurrent use by multiple goroutines,
// and no instance is ever shared across workers.
type RNG interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
}

// NewRNG returns an RNG seeded with seed. Two RNGs constructed with the
// same seed produce the same sequence, which is what makes a render
// replayable given a fixed worker/row assignment.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// RandomInUnitSphere returns a uniformly distributed point inside the
// unit ball, via rejection sampling.
func RandomInUnitSphere(rng RNG) Vec3 {
	for {
		p := Vec3{
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
		}
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere's surface (a direction).
func RandomUnitVector(rng RNG) Vec3 {
	return RandomInUnitSphere(rng).Unit()
}

// RandomInUnitDisc returns a uniformly distributed point inside the unit
// disc in the XY plane (Z==0), used for thin-lens aperture sampling.
func RandomInUnitDisc(rng RNG) Vec3 {
	for {
		p := Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 0}
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// Dump renders a value in a short, grep-friendly form for test failure
// diagnostics. Only the types this package actually compares need an
// entry; everything else falls back to fmt's default verb.
func Dump(v interface{}) string {
	switch t := v.(type) {
	case Vec3:
		return fmt.Sprintf("(%.6f, %.6f, %.6f)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("%v", t)
	}
}
