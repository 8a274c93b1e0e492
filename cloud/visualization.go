// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"cogentcore.org/lab/base/randx"
	"github.com/benbjohnson/clock"
)

// Visualization is the state for one independent point cloud display:
// its [Controller], [Animator] and [Timer]. Nothing in this package is
// global, so several visualizations can share one renderer or use
// separate ones. All methods must be called from the single loop that
// drives the display (GUI main loop or terminal loop).
type Visualization struct {

	// Controller regenerates the live cloud.
	Controller *Controller

	// Animator animates the live cloud.
	Animator *Animator

	// Timer provides the elapsed time passed to the Animator.
	Timer *Timer

	// Rotation is the last rotation about Y set on the renderer.
	Rotation float32
}

// NewVisualization returns a new Visualization. rnd and clk may be nil
// for the global random source and the real clock.
func NewVisualization(gen Generator, rd Renderer, mo Motion, rnd randx.Rand, clk clock.Clock) *Visualization {
	vi := &Visualization{
		Controller: NewController(gen, rd, rnd),
		Animator:   NewAnimator(mo),
		Timer:      NewTimer(clk),
	}
	vi.Controller.OnInstall = func(pc *PointCloud, h Handle) {
		vi.Animator.SetCloud(pc)
	}
	return vi
}

// Start generates the first cloud and starts the timer.
func (vi *Visualization) Start() error {
	vi.Timer.Start()
	return vi.Regenerate()
}

// Regenerate replaces the live cloud using the current generator
// parameters. The animation time continues from where it was.
func (vi *Visualization) Regenerate() error {
	vi.Animator.SetCloud(nil)
	if err := vi.Controller.Regenerate(); err != nil {
		return err
	}
	return vi.Frame()
}

// SetGenerator sets a new generator (e.g., a different variant)
// and regenerates.
func (vi *Visualization) SetGenerator(gen Generator) error {
	vi.Controller.Generator = gen
	return vi.Regenerate()
}

// Frame runs one animation frame at the current elapsed time.
func (vi *Visualization) Frame() error {
	return vi.FrameAt(vi.Timer.Elapsed())
}

// FrameAt runs one animation frame at elapsed time t, in seconds:
// it updates the live positions, marks them dirty if they changed,
// and sets the whole-cloud rotation.
func (vi *Visualization) FrameAt(t float32) error {
	pc, h := vi.Controller.Live()
	if pc == nil {
		return nil
	}
	rot, dirty := vi.Animator.Step(t)
	rd := vi.Controller.Renderer
	if dirty {
		if err := rd.MarkDirty(h); err != nil {
			return err
		}
	}
	vi.Rotation = rot
	return rd.SetRotation(h, rot)
}

// Close releases the live cloud.
func (vi *Visualization) Close() {
	vi.Animator.SetCloud(nil)
	vi.Controller.Close()
}
