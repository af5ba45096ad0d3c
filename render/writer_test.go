// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"bytes"
	"testing"

	"pathtracer/math/lin"
)

func TestRowWriterOutOfOrderMatchesScanOrder(t *testing.T) {
	const width, height = 4, 5
	rows := make([][]lin.Vec3, height)
	for y := 0; y < height; y++ {
		row := make([]lin.Vec3, width)
		for x := 0; x < width; x++ {
			row[x] = lin.Vec3{X: float64(x) / width, Y: float64(y) / height, Z: 0.5}
		}
		rows[y] = row
	}

	var direct bytes.Buffer
	fb := NewFramebuffer(width, height)
	for y, row := range rows {
		fb.SetRow(y, row)
	}
	if err := WritePPM(&direct, fb); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	var out bytes.Buffer
	rw, err := NewRowWriter(&out, width, height)
	if err != nil {
		t.Fatalf("NewRowWriter: %v", err)
	}
	order := []int{3, 1, 4, 0, 2}
	for _, y := range order {
		if err := rw.Complete(y, rows[y]); err != nil {
			t.Fatalf("Complete(%d): %v", y, err)
		}
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if out.String() != direct.String() {
		t.Errorf("out-of-order RowWriter output diverges from scan-order WritePPM\ngot:  %q\nwant: %q", out.String(), direct.String())
	}
}

func TestRowWriterBuffersUntilContiguous(t *testing.T) {
	const width, height = 2, 3
	var out bytes.Buffer
	rw, err := NewRowWriter(&out, width, height)
	if err != nil {
		t.Fatalf("NewRowWriter: %v", err)
	}

	row := []lin.Vec3{{X: 1, Y: 1, Z: 1}, {X: 0, Y: 0, Z: 0}}
	if err := rw.Complete(2, row); err != nil {
		t.Fatal(err)
	}
	if err := rw.Close(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "P3\n2 3\n255\n" {
		t.Errorf("row 2 should still be buffered behind rows 0,1; got %q", out.String())
	}
}
