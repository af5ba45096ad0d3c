// Copyright © 2026 The Pathtracer Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command tracer renders one of the built-in demo scenes to a PPM file.
// It is deliberately thin: argument parsing, scene selection, and file
// I/O live here; every rendering decision lives in the render, camera,
// scene, and accel packages.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"pathtracer/math/lin"
	"pathtracer/render"
	"pathtracer/scene"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "No scene selected.")
		return 1
	}

	sceneNum, err := strconv.Atoi(args[0])
	if err != nil {
		sceneNum = 1
	}

	switch sceneNum {
	case 1:
		mode := "static"
		if len(args) >= 2 {
			mode = args[1]
		}
		return renderScene1(mode)
	case 2:
		return renderScene2()
	default:
		fmt.Fprintln(os.Stderr, "No scene selected.")
		return 1
	}
}

func renderScene1(mode string) int {
	slog.Info("rendering scene 1")
	lookAt := lin.Vec3{X: 0, Y: 0, Z: -1}
	pool := render.NewPool(0)
	defer pool.Close()

	if mode == "animate" {
		const frames = 120
		if err := os.MkdirAll("frames", 0o755); err != nil {
			slog.Error("creating frames directory", "err", err)
			return 1
		}
		for i := 0; i < frames; i++ {
			slog.Info("rendering frame", "frame", i+1)
			lookFrom := scene.OrbitCamera(lookAt, i, frames)
			demo := scene.DefocusShowcase(lookFrom)
			if err := renderDemo(pool, demo, filepath.Join("frames", fmt.Sprintf("frame%d.ppm", i+1))); err != nil {
				slog.Error("rendering frame", "frame", i+1, "err", err)
				return 1
			}
		}
		return 0
	}

	demo := scene.DefocusShowcase(lin.Vec3{X: -1.5, Y: 1.0, Z: 3.0})
	if err := renderDemo(pool, demo, "temp.ppm"); err != nil {
		slog.Error("rendering scene", "err", err)
		return 1
	}
	return 0
}

func renderScene2() int {
	slog.Info("rendering scene 2 (cornell box)")
	pool := render.NewPool(0)
	defer pool.Close()

	demo := scene.CornellBox()
	if err := renderDemo(pool, demo, "cornell.ppm"); err != nil {
		slog.Error("rendering scene", "err", err)
		return 1
	}
	return 0
}

func renderDemo(pool *render.Pool, demo *scene.Demo, outPath string) error {
	ig := render.NewIntegrator(demo.World, demo.Config)
	sched := render.NewScheduler(ig, demo.Camera)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	rw, err := render.NewRowWriter(f, demo.Config.Width, demo.Config.Height)
	if err != nil {
		return err
	}
	if err := sched.RenderStream(pool, demo.Config, 0, rw); err != nil {
		return err
	}
	return rw.Close()
}
