// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particles generates a field of randomly placed, randomly
// colored particles, animated by a vertical ripple.
package particles

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
)

// Modes are the shapes that particles are placed in.
type Modes int32 //enums:enum

const (
	// Box places particles uniformly inside an axis-aligned box
	// centered at the origin.
	Box Modes = iota

	// Sphere places particles uniformly on the surface of a sphere
	// centered at the origin.
	Sphere
)


// Params are the parameters of a particle field.
type Params struct {

	// Mode is the shape that particles are placed in.
	Mode Modes

	// Count is the number of particles.
	Count int `default:"5000" min:"0" max:"1000000" step:"100"`

	// Size is the visual size of each particle.
	Size float32 `default:"0.05" min:"0.001" max:"0.5" step:"0.001"`

	// Width is the X extent of the box.
	Width float32 `default:"10" min:"0" step:"0.1"`

	// Height is the Y extent of the box.
	Height float32 `default:"6" min:"0" step:"0.1"`

	// Depth is the Z extent of the box.
	Depth float32 `default:"10" min:"0" step:"0.1"`

	// SphereRadius is the radius in Sphere mode.
	SphereRadius float32 `default:"1.5" min:"0" step:"0.1"`

	// Additive uses additive blending.
	Additive bool `default:"true"`

	// DepthWrite writes particles to the depth buffer.
	DepthWrite bool

	// Texture applies a round sprite texture to each particle.
	Texture bool `default:"true"`

	// AlphaTest discards sprite fragments below this alpha.
	AlphaTest float32 `default:"0.001" min:"0" max:"1" step:"0.001"`

	// VertexColors gives each particle its own random color;
	// otherwise particles are white.
	VertexColors bool `default:"true"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.Mode = Box
	p.Count = 5000
	p.Size = 0.05
	p.Width = 10
	p.Height = 6
	p.Depth = 10
	p.SphereRadius = 1.5
	p.Additive = true
	p.DepthWrite = false
	p.Texture = true
	p.AlphaTest = 0.001
	p.VertexColors = true
}

// NewParams returns new default parameters.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// Update clamps invalid values, logging each adjustment.
func (p *Params) Update() {
	if p.Count < 0 {
		slog.Warn("particles: negative count; clamped", "value", p.Count)
		p.Count = 0
	}
	if p.Size <= 0 {
		slog.Warn("particles: non-positive size; clamped", "value", p.Size)
		p.Size = 0.001
	}
	for _, v := range []*float32{&p.Width, &p.Height, &p.Depth, &p.SphereRadius} {
		if *v < 0 {
			slog.Warn("particles: negative extent; clamped", "value", *v)
			*v = 0
		}
	}
	p.AlphaTest = math32.Clamp(p.AlphaTest, 0, 1)
}

// Style returns the rendering style from the rendering flags.
func (p *Params) Style() cloud.Style {
	st := cloud.Style{
		PointSize:    p.Size,
		Blending:     cloud.BlendNormal,
		DepthWrite:   p.DepthWrite,
		VertexColors: p.VertexColors,
		Texture:      p.Texture,
		AlphaTest:    p.AlphaTest,
	}
	if p.Additive {
		st.Blending = cloud.BlendAdditive
	}
	return st
}

// Motion returns the default particle motion: a ripple with a
// slightly faster rotation than the galaxy.
func Motion() cloud.Motion {
	mo := cloud.Motion{}
	mo.Defaults()
	mo.AngularSpeed = 0.08
	mo.RippleOn = true
	return mo
}

// Generate implements [cloud.Generator], returning [Generate] of p.
func (p *Params) Generate(rnd randx.Rand) *cloud.PointCloud {
	return Generate(p, rnd)
}

// Generate returns a new particle cloud for the given parameters,
// drawing all randomness from rnd. The positions are also saved as
// the base positions for animation.
func Generate(p *Params, rnd randx.Rand) *cloud.PointCloud {
	n := max(p.Count, 0)
	pc := cloud.New(n, p.VertexColors)
	for i := range n {
		switch p.Mode {
		case Sphere:
			pc.SetPosition(i, spherePoint(rnd, p.SphereRadius))
		default:
			pc.SetPosition(i, math32.Vec3(
				(rnd.Float32()-0.5)*p.Width,
				(rnd.Float32()-0.5)*p.Height,
				(rnd.Float32()-0.5)*p.Depth))
		}
		if pc.HasColors() {
			pc.SetColor(i, math32.Vec3(rnd.Float32(), rnd.Float32(), rnd.Float32()))
		}
	}
	pc.SnapshotBase()
	return pc
}

// spherePoint returns a point uniformly distributed on the surface of
// a sphere of the given radius: uniform height and uniform azimuth.
func spherePoint(rnd randx.Rand, radius float32) math32.Vector3 {
	y := 2*rnd.Float32() - 1
	phi := 2 * math32.Pi * rnd.Float32()
	ring := math32.Sqrt(max(0, 1-y*y))
	sin, cos := math32.Sincos(phi)
	return math32.Vec3(ring*cos, y, ring*sin).MulScalar(radius)
}
