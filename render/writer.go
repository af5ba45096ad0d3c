// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"pathtracer/math/lin"
)

// RowWriter collates rows completed in arbitrary order by render
// workers into scan order, writing each row to the underlying stream
// as soon as it and every row before it are available. It is the
// "writer" half of the render scheduler: workers call Complete as rows
// finish, arbitrarily out of order; RowWriter guarantees the bytes that
// reach w are always in top-to-bottom scan order.
type RowWriter struct {
	mu      sync.Mutex
	w       *bufio.Writer
	width   int
	next    int
	pending map[int][]lin.Vec3
}

// NewRowWriter writes the PPM header immediately, then expects Complete
// to be called once per row (0..height-1, any order) before Close.
func NewRowWriter(w io.Writer, width, height int) (*RowWriter, error) {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return nil, err
	}
	return &RowWriter{w: bw, width: width, pending: make(map[int][]lin.Vec3)}, nil
}

// Complete reports that row y finished rendering with the given
// tone-mapped, already-averaged pixel colors. Rows are buffered until
// every row before them has also completed, then flushed in order.
func (rw *RowWriter) Complete(y int, row []lin.Vec3) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	rw.pending[y] = row
	for {
		ready, ok := rw.pending[rw.next]
		if !ok {
			break
		}
		if err := rw.writeRow(ready); err != nil {
			return err
		}
		delete(rw.pending, rw.next)
		rw.next++
	}
	return nil
}

func (rw *RowWriter) writeRow(row []lin.Vec3) error {
	for _, c := range row {
		if _, err := fmt.Fprintf(rw.w, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes any buffered bytes. It does not verify every row
// arrived; a caller that closes before every row completes gets a
// truncated image.
func (rw *RowWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.w.Flush()
}
