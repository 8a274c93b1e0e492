// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package galaxy generates spiral galaxy point clouds from a small
// set of tunable parameters.
package galaxy

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/pointcloud/cloud"
)

// Documented parameter ranges. The GUI form enforces the full ranges
// through struct tags; [Params.Update] only enforces the minima needed
// for a well-defined cloud.
const (
	MinCount           = 100
	MaxCount           = 1000000
	MinSize            = 0.001
	MaxSize            = 0.1
	MinRadius          = 0.01
	MaxRadius          = 20
	MinBranches        = 2
	MaxBranches        = 20
	MinRandomnessPower = 1
)

// Params are the parameters of a galaxy.
type Params struct {

	// Count is the number of points.
	Count int `default:"100000" min:"100" max:"1000000" step:"100"`

	// Size is the visual size of each point.
	Size float32 `default:"0.01" min:"0.001" max:"0.1" step:"0.001"`

	// Radius is the maximum distance of a point from the center,
	// before jitter.
	Radius float32 `default:"5" min:"0.01" max:"20" step:"0.01"`

	// Branches is the number of spiral arms.
	Branches int `default:"3" min:"2" max:"20" step:"1"`

	// Spin is the twist of the arms, in radians per unit of radius.
	Spin float32 `default:"1" min:"-5" max:"5" step:"0.001"`

	// Randomness scales the jitter of each point, relative to its radius.
	Randomness float32 `default:"0.2" min:"0" max:"2" step:"0.001"`

	// RandomnessPower concentrates jitter toward zero: higher values
	// give thinner arms with occasional outliers.
	RandomnessPower float32 `default:"3" min:"1" max:"10" step:"0.001"`

	// InsideColor is the color at the center.
	InsideColor color.RGBA

	// OutsideColor is the color at the outer edge.
	OutsideColor color.RGBA
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.Count = 100000
	p.Size = 0.01
	p.Radius = 5
	p.Branches = 3
	p.Spin = 1
	p.Randomness = 0.2
	p.RandomnessPower = 3
	p.InsideColor = errors.Must1(colors.FromHex("#ff6030"))
	p.OutsideColor = errors.Must1(colors.FromHex("#1b3984"))
}

// NewParams returns new default parameters.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// Update clamps invalid values to the nearest valid ones, logging each
// adjustment, so that a bad slider or config value never stops rendering.
// The upper ends of the documented ranges are left to the GUI.
func (p *Params) Update() {
	clampInt := func(name string, v *int, min int) {
		if *v < min {
			slog.Warn("galaxy: parameter below minimum; clamped", "param", name, "value", *v, "min", min)
			*v = min
		}
	}
	clampF := func(name string, v *float32, min float32, strict bool) {
		if *v < min || (strict && *v <= 0) {
			slog.Warn("galaxy: parameter below minimum; clamped", "param", name, "value", *v, "min", min)
			*v = min
		}
	}
	clampInt("Count", &p.Count, 0)
	clampInt("Branches", &p.Branches, 1)
	clampF("Size", &p.Size, MinSize, true)
	clampF("Radius", &p.Radius, MinRadius, true)
	clampF("Randomness", &p.Randomness, 0, false)
	clampF("RandomnessPower", &p.RandomnessPower, MinRandomnessPower, false)
}

// Style returns the rendering style for a galaxy: additive, colored
// points that do not write depth, so overlapping arms glow.
func (p *Params) Style() cloud.Style {
	return cloud.Style{
		PointSize:    p.Size,
		Blending:     cloud.BlendAdditive,
		DepthWrite:   false,
		VertexColors: true,
	}
}

// Motion returns the default galaxy motion: a slow rotation, no ripple.
func Motion() cloud.Motion {
	mo := cloud.Motion{}
	mo.Defaults()
	mo.AngularSpeed = 0.05
	return mo
}
