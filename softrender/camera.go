// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrender

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking at a target.
type Camera struct {

	// Eye is the camera position.
	Eye mgl32.Vec3

	// Target is the point the camera looks at.
	Target mgl32.Vec3

	// Up is the up direction.
	Up mgl32.Vec3

	// FOV is the vertical field of view, in degrees.
	FOV float32

	// Near and Far are the clipping distances.
	Near, Far float32
}

// GalaxyCamera returns the default camera for viewing a galaxy.
func GalaxyCamera() Camera {
	return Camera{Eye: mgl32.Vec3{3, 3, 3}, Up: mgl32.Vec3{0, 1, 0}, FOV: 75, Near: 0.1, Far: 100}
}

// ParticlesCamera returns the default camera for viewing particles.
func ParticlesCamera() Camera {
	return Camera{Eye: mgl32.Vec3{0, 1.5, 4}, Up: mgl32.Vec3{0, 1, 0}, FOV: 60, Near: 0.1, Far: 100}
}

// ViewProjection returns the combined view and projection matrix
// for the given viewport aspect ratio (width / height).
func (cm *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(cm.FOV), aspect, cm.Near, cm.Far)
	view := mgl32.LookAtV(cm.Eye, cm.Target, cm.Up)
	return proj.Mul4(view)
}

// Projector maps world points to screen coordinates.
type Projector struct {
	mvp           mgl32.Mat4
	width, height float32
	focal         float32
}

// NewProjector returns a projector for a viewport of the given size.
// pixelAspect is the width / height of one pixel: 1 for images,
// about 0.5 for terminal cells.
func (cm *Camera) NewProjector(width, height int, pixelAspect float32) *Projector {
	w, h := float32(width), float32(height)
	return &Projector{
		mvp:    cm.ViewProjection(w * pixelAspect / h),
		width:  w,
		height: h,
		focal:  h / (2 * math32.Tan(mgl32.DegToRad(cm.FOV)/2)),
	}
}

// Project returns the screen position of the world point after
// rotating it by rotY about +Y, with its distance from the camera
// plane. ok is false if the point is outside the view volume.
func (pr *Projector) Project(p mgl32.Vec3, rotY float32) (x, y, depth float32, ok bool) {
	if rotY != 0 {
		p = mgl32.HomogRotate3DY(rotY).Mul4x1(p.Vec4(1)).Vec3()
	}
	clip := pr.mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * pr.width
	y = (1 - ndc.Y()) * 0.5 * pr.height
	return x, y, clip.W(), true
}

// PixelSize returns the on-screen size of a world-space size at
// the given depth.
func (pr *Projector) PixelSize(size, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return size * pr.focal / depth
}
