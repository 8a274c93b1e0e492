// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pointcloud shows procedurally generated point clouds:
// a spiral galaxy and a rippling field of particles. It runs as a
// GUI, renders PNG snapshots, or draws into the terminal.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/pointcloud/cloud"
	"cogentcore.org/pointcloud/config"
	"cogentcore.org/pointcloud/softrender"
	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

func main() { //types:skip
	opts := cli.DefaultOptions("pointcloud", "Procedural point clouds: a spiral galaxy and a rippling particle field.")
	cli.Run(opts, &config.Config{},
		&cli.Cmd[*config.Config]{Func: GUI, Name: "gui", Root: true,
			Doc: "GUI opens a window with the point cloud and its parameters."},
		&cli.Cmd[*config.Config]{Func: Snapshot, Name: "snapshot",
			Doc: "Snapshot renders the point cloud to a PNG file without a GPU."},
		&cli.Cmd[*config.Config]{Func: Term, Name: "term",
			Doc: "Term draws the animated point cloud in the terminal."},
	)
}

// load reads the parameter file, if any, and validates c.
func load(c *config.Config) error {
	if c.Params != "" {
		return config.Load(c, c.Params)
	}
	return c.Validate()
}

// reload reads the parameter file into a copy of c and applies the
// result to vi, returning the new generator.
func reload(c *config.Config, vi *cloud.Visualization) (cloud.Generator, error) {
	nc := *c
	if err := config.Load(&nc, c.Params); err != nil {
		return nil, err
	}
	if nc.Variant != c.Variant {
		slog.Warn("pointcloud: variant cannot change while running", "variant", nc.Variant)
		nc.Variant = c.Variant
	}
	*c = nc
	gen, mo := c.Generator()
	vi.Animator.Motion = mo
	slog.Info("pointcloud: reloaded", "file", c.Params)
	return gen, vi.SetGenerator(gen)
}

// camera returns the software camera for the selected variant.
func camera(c *config.Config) softrender.Camera {
	if c.IsParticles() {
		return softrender.ParticlesCamera()
	}
	return softrender.GalaxyCamera()
}

// Snapshot renders the point cloud to a PNG file without a GPU.
func Snapshot(c *config.Config) error {
	if err := load(c); err != nil {
		return err
	}
	gen, mo := c.Generator()
	r := softrender.NewRenderer(camera(c))
	vi := cloud.NewVisualization(gen, r, mo, config.NewRand(c.Seed), nil)
	defer vi.Close()
	if err := vi.Start(); err != nil {
		return err
	}
	if err := vi.FrameAt(c.Snapshot.Seconds); err != nil {
		return err
	}
	fn, err := homedir.Expand(c.Snapshot.Output)
	if err != nil {
		return err
	}
	opts := softrender.ImageOptions{
		Width:       c.Snapshot.Width,
		Height:      c.Snapshot.Height,
		Supersample: c.Snapshot.Supersample,
		Glow:        c.Snapshot.Glow,
	}
	if err := r.WritePNG(fn, opts); err != nil {
		return err
	}
	slog.Info("pointcloud: wrote snapshot", "file", fn, "variant", c.Variant)
	return nil
}

// Term draws the animated point cloud in the terminal.
// Press r to regenerate and q or Esc to quit.
func Term(c *config.Config) error {
	if err := load(c); err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	gen, mo := c.Generator()
	r := softrender.NewRenderer(camera(c))
	vi := cloud.NewVisualization(gen, r, mo, config.NewRand(c.Seed), nil)
	defer vi.Close()
	if err := vi.Start(); err != nil {
		return err
	}

	tm := softrender.NewTerminal(s, r)
	tm.FPS = c.Term.FPS
	tm.Mono = termenv.EnvColorProfile() == termenv.Ascii

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if c.Watch && c.Params != "" {
		err := config.Watch(ctx, c.Params, func() {
			tm.Post(func() {
				_, err := reload(c, vi)
				errors.Log(err)
			})
		})
		errors.Log(err)
	}
	return tm.Run(ctx, vi)
}
