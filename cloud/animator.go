// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"cogentcore.org/core/math32"
)

// Ripple parameterizes a traveling vertical wave across a cloud:
// each point moves to baseY + sin(t*Speed + baseX*Frequency) * Amplitude.
type Ripple struct {

	// Speed is the temporal rate of the wave, in radians per second.
	Speed float32 `default:"1.5" min:"0" step:"0.1"`

	// Frequency is the spatial rate of the wave along X,
	// in radians per world unit.
	Frequency float32 `default:"0.5" min:"0" step:"0.05"`

	// Amplitude is the peak vertical displacement, in world units.
	Amplitude float32 `default:"0.35" min:"0" step:"0.05"`
}

// Defaults sets the default ripple parameters.
func (rp *Ripple) Defaults() {
	rp.Speed = 1.5
	rp.Frequency = 0.5
	rp.Amplitude = 0.35
}

// Offset returns the vertical displacement at time t for a point
// whose base X coordinate is x.
func (rp *Ripple) Offset(t, x float32) float32 {
	return math32.Sin(t*rp.Speed+x*rp.Frequency) * rp.Amplitude
}

// Motion is the per-frame animation applied to a cloud.
type Motion struct {

	// AngularSpeed is the rate of rigid rotation of the whole cloud
	// about the vertical axis, in radians per second.
	AngularSpeed float32 `default:"0.05" step:"0.01"`

	// RippleOn turns on the vertical [Ripple] wave.
	RippleOn bool

	// Ripple is the vertical wave, used if RippleOn.
	Ripple Ripple `display:"inline"`
}

// Defaults sets the default motion: slow rotation, no ripple.
func (mo *Motion) Defaults() {
	mo.AngularSpeed = 0.05
	mo.RippleOn = false
	mo.Ripple.Defaults()
}

// Rotation returns the rotation angle about Y at time t.
func (mo *Motion) Rotation(t float32) float32 {
	return t * mo.AngularSpeed
}

// Animator updates the live [PointCloud] each frame according to a
// [Motion]. It is the only writer of [PointCloud.Positions] once the
// cloud is installed; [PointCloud.Base] is read-only to it.
type Animator struct {

	// Motion is the animation to apply.
	Motion Motion

	// Cloud is the cloud being animated.
	Cloud *PointCloud
}

// NewAnimator returns a new Animator with the given motion.
func NewAnimator(mo Motion) *Animator {
	return &Animator{Motion: mo}
}

// SetCloud starts animating the given cloud, which may be nil.
func (an *Animator) SetCloud(pc *PointCloud) {
	an.Cloud = pc
}

// Step advances the animation to elapsed time t, in seconds.
// It returns the whole-cloud rotation about Y and whether the
// position buffer was rewritten, in which case the caller must
// mark it dirty on the renderer.
func (an *Animator) Step(t float32) (rotationY float32, dirty bool) {
	rotationY = an.Motion.Rotation(t)
	pc := an.Cloud
	if pc == nil || !an.Motion.RippleOn || len(pc.Base) != len(pc.Positions) {
		return
	}
	rp := &an.Motion.Ripple
	pos := pc.Positions
	base := pc.Base
	n := pc.Len()
	for i := range n {
		i3 := 3 * i
		pos[i3+1] = base[i3+1] + rp.Offset(t, base[i3])
	}
	return rotationY, n > 0
}
