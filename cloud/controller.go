// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/base/randx"
)

// ErrRegenerating is returned by [Controller.Regenerate] when it is
// called again before the current regeneration has finished.
var ErrRegenerating = errors.New("cloud: regeneration already in progress")

// Generator makes a new [PointCloud] from its current parameters.
// The parameter types of the galaxy and particles packages implement it.
type Generator interface {

	// Generate returns a new cloud, drawing all randomness from rnd.
	Generate(rnd randx.Rand) *PointCloud

	// Style returns the rendering style for clouds from this generator.
	Style() Style
}

// States are the states of a [Controller].
type States int32 //enums:enum

const (
	// Idle means that a cloud (or none) is installed and stable.
	Idle States = iota

	// Regenerating means that the previous cloud is being replaced.
	Regenerating
)


// Controller replaces the live [PointCloud] on a [Renderer] whenever
// the parameters of its [Generator] have finished changing. At most one
// cloud is live at any time: the previous one is released before the
// new one is installed. It must only be used from one goroutine.
type Controller struct {

	// Generator makes new clouds.
	Generator Generator

	// Renderer displays the live cloud.
	Renderer Renderer

	// Rand is the random source passed to the Generator.
	Rand randx.Rand

	// OnInstall, if set, is called with each newly installed cloud.
	OnInstall func(pc *PointCloud, h Handle)

	state  States
	live   *PointCloud
	handle Handle
}

// NewController returns a new Controller. If rnd is nil, the
// global random source is used.
func NewController(gen Generator, rd Renderer, rnd randx.Rand) *Controller {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &Controller{Generator: gen, Renderer: rd, Rand: rnd}
}

// State returns the current state.
func (c *Controller) State() States {
	return c.state
}

// Live returns the live cloud and its handle, or nil, 0 if none.
func (c *Controller) Live() (*PointCloud, Handle) {
	return c.live, c.handle
}

// Regenerate releases the live cloud, generates a new one and installs it.
// A failure to release is logged and does not stop regeneration.
func (c *Controller) Regenerate() error {
	if c.state == Regenerating {
		return ErrRegenerating
	}
	c.state = Regenerating
	defer func() { c.state = Idle }()

	c.release()
	pc := c.Generator.Generate(c.Rand)
	h, err := c.Renderer.Install(pc, c.Generator.Style())
	if err != nil {
		return err
	}
	c.live, c.handle = pc, h
	slog.Debug("cloud: installed", "handle", h, "points", pc.Len())
	if c.OnInstall != nil {
		c.OnInstall(pc, h)
	}
	return nil
}

// Close releases the live cloud, if any.
func (c *Controller) Close() {
	c.release()
}

func (c *Controller) release() {
	if c.live == nil {
		return
	}
	if err := c.Renderer.Release(c.handle); err != nil {
		slog.Error("cloud: release failed; continuing", "handle", c.handle, "err", err)
	}
	c.live, c.handle = nil, 0
}
