// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
	"github.com/lucasb-eyer/go-colorful"
)

// Generate implements [cloud.Generator], returning [Generate] of p.
func (p *Params) Generate(rnd randx.Rand) *cloud.PointCloud {
	return Generate(p, rnd)
}

// Generate returns a new galaxy point cloud for the given parameters,
// drawing all randomness from rnd.
//
// Point i lies on arm i mod Branches at a radius drawn uniformly in
// [0, Radius), so points are denser toward the center. The arm angle is
// twisted by Spin * radius, and each axis gets a jitter of
// u^RandomnessPower * ±1 * Randomness * radius. The disk is flat:
// Y comes only from jitter. Colors blend from InsideColor to
// OutsideColor by radius / Radius.
func Generate(p *Params, rnd randx.Rand) *cloud.PointCloud {
	n := max(p.Count, 0)
	branches := max(p.Branches, 1)
	pc := cloud.New(n, true)
	inside := toColorful(p.InsideColor)
	outside := toColorful(p.OutsideColor)
	pos := pc.Positions
	clr := pc.Colors
	for i := range n {
		i3 := 3 * i
		r := rnd.Float32() * p.Radius
		spinAngle := r * p.Spin
		branchAngle := BranchAngle(i, branches)

		jx := jitter(rnd, p.RandomnessPower, p.Randomness*r)
		jy := jitter(rnd, p.RandomnessPower, p.Randomness*r)
		jz := jitter(rnd, p.RandomnessPower, p.Randomness*r)

		sin, cos := math32.Sincos(branchAngle + spinAngle)
		pos[i3] = cos*r + jx
		pos[i3+1] = jy
		pos[i3+2] = sin*r + jz

		mix := inside.BlendRgb(outside, float64(radialFactor(r, p.Radius)))
		clr[i3] = float32(mix.R)
		clr[i3+1] = float32(mix.G)
		clr[i3+2] = float32(mix.B)
	}
	return pc
}

// BranchAngle returns the angle of the arm for point i:
// (i mod branches) / branches * 2π.
func BranchAngle(i, branches int) float32 {
	return float32(i%branches) / float32(branches) * 2 * math32.Pi
}

// jitter returns u^power * sign * scale for uniform u and a random sign.
// Higher powers concentrate the result toward zero.
func jitter(rnd randx.Rand, power, scale float32) float32 {
	mag := math32.Pow(rnd.Float32(), power)
	if rnd.Float32() >= 0.5 {
		mag = -mag
	}
	return mag * scale
}

// radialFactor is the color mix factor for radius r, 0 if radius is 0.
func radialFactor(r, radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	return r / radius
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
