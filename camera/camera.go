// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera implements the thin-lens pinhole camera that turns
// pixel coordinates into primary rays.
package camera

import (
	"math"

	"pathtracer/geom"
	"pathtracer/math/lin"
)

// Camera is a pinhole camera with optional thin-lens defocus blur.
type Camera struct {
	position Vec3
	lensRadius float64

	right, up, back Vec3 // local (i, j, k) basis; k points from look-at toward the camera
	topLeft         Vec3
	vpWidth, vpHeight float64
}

// Vec3 is a local alias so this package's API reads naturally.
type Vec3 = lin.Vec3

// New builds a Camera. fovDeg is the vertical field of view in degrees;
// aperture is the lens diameter (0 disables defocus blur); width/height
// are the output image dimensions in pixels, used for the aspect ratio.
func New(position, lookAt, up Vec3, fovDeg, aperture float64, width, height int) *Camera {
	focalLength := position.Sub(lookAt).Len()
	theta := lin.Deg2Rad(fovDeg)
	viewportHeight := 2 * math.Tan(theta/2) * focalLength
	aspect := float64(width) / float64(height)
	viewportWidth := viewportHeight * aspect

	back := position.Sub(lookAt).Unit()
	right := up.Cross(back).Unit()
	trueUp := back.Cross(right)

	topLeft := position.
		Sub(back.Scale(focalLength)).
		Add(right.Scale(-viewportWidth / 2)).
		Add(trueUp.Scale(viewportHeight / 2))

	return &Camera{
		position:   position,
		lensRadius: aperture / 2,
		right:      right,
		up:         trueUp,
		back:       back,
		topLeft:    topLeft,
		vpWidth:    viewportWidth,
		vpHeight:   viewportHeight,
	}
}

// PrimaryRay returns the ray through pixel coordinates u, v in [0,1),
// sampling the lens disc for defocus blur when the aperture is nonzero.
func (c *Camera) PrimaryRay(u, v float64, rng lin.RNG) geom.Ray {
	lensOffset := Vec3{}
	if c.lensRadius > 0 {
		d := lin.RandomInUnitDisc(rng).Scale(c.lensRadius)
		lensOffset = c.right.Scale(d.X).Add(c.up.Scale(d.Y))
	}

	target := c.topLeft.
		Add(c.right.Scale(u * c.vpWidth)).
		Sub(c.up.Scale(v * c.vpHeight))

	origin := c.position.Add(lensOffset)
	dir := target.Sub(c.position).Sub(lensOffset)
	return geom.NewRay(origin, dir)
}
