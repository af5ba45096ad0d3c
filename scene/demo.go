// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"

	"pathtracer/camera"
	"pathtracer/geom"
	"pathtracer/material"
	"pathtracer/math/lin"
	"pathtracer/render"
)

// Background colors used by the demo scenes.
var (
	SkyBlue = lin.Vec3{X: 0.53, Y: 0.81, Z: 0.92}
	White   = lin.Vec3{X: 1, Y: 1, Z: 1}
)

// Demo is a fully assembled scene: its World, a Camera ready to render
// it, and the ImageConfig it was designed for.
type Demo struct {
	World  *World
	Camera *camera.Camera
	Config render.ImageConfig
}

// DefocusShowcase builds a small five-primitive scene demonstrating
// defocus blur, dielectric refraction, and rough metal: a ground
// sphere, two diffuse/glass spheres, a rough green metal sphere, and an
// emissive gray plane behind them. lookFrom lets callers reuse the same
// world across the static shot and the 120-frame orbit animation with a
// different camera each time.
func DefocusShowcase(lookFrom lin.Vec3) *Demo {
	const (
		width, height = 320, 240
		fovDeg        = 50.0
		aperture      = 0.1
		samples       = 100
		maxDepth      = 50
	)
	lookAt := lin.Vec3{X: 0, Y: 0, Z: -1}

	softBlue := material.NewLambert(lin.Vec3{X: 0.3, Y: 0.5, Z: 0.8})
	softRed := material.NewLambert(lin.Vec3{X: 0.8, Y: 0.3, Z: 0.4})
	emissiveGray := material.NewLight(1.0)
	glassWhite := material.NewDielectric(1.52)
	roughGreenMetal := material.NewMetal(lin.Vec3{X: 0.6, Y: 0.8, Z: 0.3}, 0.3)

	ground := geom.NewSphere(lin.Vec3{X: 0, Y: -100.5, Z: -1}, 100, softBlue)
	redBall := geom.NewSphere(lin.Vec3{X: 0.6, Y: -0.2, Z: -1}, 0.3, softRed)
	glassBall := geom.NewSphere(lin.Vec3{X: -0.27, Y: -0.1, Z: -0.8}, 0.4, glassWhite)
	greenMetalBall := geom.NewSphere(lin.Vec3{X: 0, Y: 0, Z: -1.5}, 0.5, roughGreenMetal)
	grayPlane := geom.NewPlane(
		lin.Vec3{X: -0.5, Y: 0.5, Z: -2.5},
		lin.Vec3{X: 0.25, Y: 0, Z: -0.25},
		lin.Vec3{X: 0.25, Y: 0.25, Z: 0},
		emissiveGray,
	)

	world := NewWorld([]geom.Hittable{ground, redBall, glassBall, greenMetalBall, grayPlane})
	cam := camera.New(lookFrom, lookAt, lin.UnitY, fovDeg, aperture, width, height)

	config := render.ImageConfig{
		Width: width, Height: height, SamplesPerPixel: samples, MaxDepth: maxDepth,
		Background: func(t float64) lin.Vec3 { return SkyBlue.Lerp(White, t) },
	}
	return &Demo{World: world, Camera: cam, Config: config}
}

// OrbitCamera returns the lookFrom position for the i'th of frameCount
// frames of a 120-frame orbit animation: a circle of radius 3*sqrt(2)
// around lookAt at a fixed height of 0.4.
func OrbitCamera(lookAt lin.Vec3, i, frameCount int) lin.Vec3 {
	const dist = 3 * math.Sqrt2
	angle := float64(i) * 2 * math.Pi / float64(frameCount)
	return lookAt.Add(lin.Vec3{X: dist * math.Cos(angle), Y: 0.4, Z: dist * math.Sin(angle)})
}

// CornellBox builds the canonical Cornell box: five walls, an area
// light in the ceiling, and two Prism blocks, at its standard
// dimensions and material reflectances.
func CornellBox() *Demo {
	const (
		width, height = 512, 512
		fovDeg        = 37.0
		aperture      = 0.0
		samples       = 10000
		maxDepth      = 500
	)

	white := material.NewLambert(lin.Vec3{X: 1, Y: 1, Z: 1})
	red := material.NewLambert(lin.Vec3{X: 0.57, Y: 0.025, Z: 0.025})
	green := material.NewLambert(lin.Vec3{X: 0.025, Y: 0.236, Z: 0.025})
	light := material.NewLight(16.0)

	floor := geom.NewPlane(
		lin.Vec3{X: 278, Y: 0, Z: 279.6},
		lin.Vec3{X: -278, Y: 0, Z: 0}, lin.Vec3{X: 0, Y: 0, Z: 279.6},
		white,
	)
	ceiling := geom.NewPlane(
		lin.Vec3{X: 278, Y: 548.8, Z: 279.6},
		lin.Vec3{X: 278, Y: 0, Z: 0}, lin.Vec3{X: 0, Y: 0, Z: 279.6},
		white,
	)
	backWall := geom.NewPlane(
		lin.Vec3{X: 278, Y: 274.4, Z: 559.2},
		lin.Vec3{X: -278, Y: 0, Z: 0}, lin.Vec3{X: 0, Y: 274.4, Z: 0},
		white,
	)
	rightWall := geom.NewPlane(
		lin.Vec3{X: 0, Y: 274.4, Z: 279.6},
		lin.Vec3{X: 0, Y: 0, Z: 279.6}, lin.Vec3{X: 0, Y: -274.4, Z: 0},
		green,
	)
	leftWall := geom.NewPlane(
		lin.Vec3{X: 556, Y: 274.4, Z: 279.6},
		lin.Vec3{X: 0, Y: 0, Z: 279.6}, lin.Vec3{X: 0, Y: 274.4, Z: 0},
		red,
	)
	ceilingLight := geom.NewPlane(
		lin.Vec3{X: 278, Y: 548.7, Z: 279.5},
		lin.Vec3{X: 65, Y: 0, Z: 0}, lin.Vec3{X: 0, Y: 0, Z: 52.5},
		light,
	)
	shortBlock := geom.NewPrism(
		lin.Vec3{X: 185, Y: 82.5, Z: 168.5},
		lin.Vec3{X: 80, Y: 0, Z: 24}, lin.Vec3{X: 0, Y: 82.5, Z: 0}, lin.Vec3{X: 24, Y: 0, Z: -80},
		white,
	)
	tallBlock := geom.NewPrism(
		lin.Vec3{X: 368, Y: 165, Z: 351},
		lin.Vec3{X: 79, Y: 0, Z: -24.5}, lin.Vec3{X: 0, Y: 165, Z: 0}, lin.Vec3{X: 24.5, Y: 0, Z: 79},
		white,
	)

	world := NewWorld([]geom.Hittable{
		floor, backWall, rightWall, leftWall, ceiling,
		shortBlock, tallBlock, ceilingLight,
	})
	cam := camera.New(
		lin.Vec3{X: 278, Y: 273, Z: -800}, lin.Vec3{X: 278, Y: 273, Z: 800}, lin.UnitY,
		fovDeg, aperture, width, height,
	)

	config := render.ImageConfig{
		Width: width, Height: height, SamplesPerPixel: samples, MaxDepth: maxDepth,
		Background: func(float64) lin.Vec3 { return White.Scale(0.3) },
	}
	return &Demo{World: world, Camera: cam, Config: config}
}
