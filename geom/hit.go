// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "pathtracer/math/lin"

// Hit is the record produced by a successful intersection query.
type Hit struct {
	Point    Vec3
	Normal   Vec3 // unit, always flipped to face the incoming ray
	Outer    bool // true iff the ray approached from outside the surface
	T        float64
	Material Material
}

// Hittable is anything a ray can intersect and that can report its own
// bounding box. Materials live behind this package's own Material
// interface (rather than importing the material package) so geom has
// no dependency on the concrete material implementations; they import
// geom instead, avoiding an import cycle.
type Hittable interface {
	// Intersect returns the nearest hit within the half-open window
	// (tMin, tMax), or ok=false if none exists.
	Intersect(r Ray, tMin, tMax float64, rng lin.RNG) (hit Hit, ok bool)
	BoundingBox() AABB
	SurfaceArea() float64
}

// Centroid returns h's bounding-box center, the same point BVH
// construction uses as a primitive's centroid.
func Centroid(h Hittable) Vec3 {
	return h.BoundingBox().Center()
}

// Material is the scattering/emission capability a Hittable's surface
// exposes to the integrator. Concrete implementations live in the
// sibling material package.
type Material interface {
	// Scatter proposes a single outgoing ray for an incoming ray that
	// hit the surface at hit. ok=false means the ray is absorbed.
	Scatter(r Ray, hit Hit, rng lin.RNG) (scattered Ray, ok bool)
	// Attenuation is the per-wavelength multiplicative factor applied
	// along the ray when it scatters off (or emits from) this material.
	Attenuation() Vec3
	// Emit is the material's own radiance; zero for non-emitters.
	Emit() Vec3
}

// FaceNormal flips outwardNormal (assumed unit) to face against dir,
// the convention every intersection routine in this package uses to
// populate Hit.Normal, and reports whether the ray was on the outward
// side (Outer).
func FaceNormal(dir, outwardNormal Vec3) (normal Vec3, outer bool) {
	if dir.Dot(outwardNormal) < 0 {
		return outwardNormal, true
	}
	return outwardNormal.Neg(), false
}
