// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"pathtracer/math/lin"
)

// WritePPM serializes fb as a P3-format PPM image to w: the header
// "P3\n<W> <H>\n255\n" followed by one "R G B\n" line per pixel,
// row-major from top-left. Each component is already expected to be
// tone-mapped (see ToneMap) and clamped to [0,1]; WritePPM's own job is
// strictly the 8-bit quantization floor(255.999*c), not gamma.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func quantize(c float64) int {
	c = lin.Clamp(c, 0, 1)
	return int(math.Floor(255.999 * c))
}
