// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"math"

	"pathtracer/math/lin"
)

// Framebuffer holds one tone-mapped RGB color per pixel, written a row
// at a time. Each row is written independently by the worker that
// rendered it, so cross-row synchronization is unnecessary: the pixels
// slice is simply partitioned by row.
type Framebuffer struct {
	Width, Height int
	pixels        []lin.Vec3
}

// NewFramebuffer allocates a width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, pixels: make([]lin.Vec3, width*height)}
}

// SetRow writes row y's already-averaged, tone-mapped pixel colors.
// len(row) must equal Width.
func (fb *Framebuffer) SetRow(y int, row []lin.Vec3) {
	copy(fb.pixels[y*fb.Width:(y+1)*fb.Width], row)
}

// At returns the color at pixel (x, y).
func (fb *Framebuffer) At(x, y int) lin.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// ToneMap applies sqrt gamma correction then clamps each component to
// [0,1], per the linear-radiance-to-display conversion the output
// format requires.
func ToneMap(c lin.Vec3) lin.Vec3 {
	gamma := func(x float64) float64 {
		return lin.Clamp(math.Sqrt(math.Max(x, 0)), 0, 1)
	}
	return lin.Vec3{X: gamma(c.X), Y: gamma(c.Y), Z: gamma(c.Z)}
}

// AverageSamples reduces a slice of sample colors to their mean.
func AverageSamples(samples []lin.Vec3) lin.Vec3 {
	sum := lin.Zero
	for _, s := range samples {
		sum = sum.Add(s)
	}
	if len(samples) == 0 {
		return sum
	}
	return sum.Div(float64(len(samples)))
}
