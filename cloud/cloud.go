// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloud provides the point cloud data model shared by the
// galaxy and particles generators, together with the regeneration
// controller and per-frame animator that drive a [Renderer].
package cloud

import (
	"cogentcore.org/core/math32"
)

// PointCloud is an index-aligned collection of points, each having
// a 3D position and an optional RGB color. Point i has its position at
// Positions[3*i:3*i+3] and its color at Colors[3*i:3*i+3].
// The number of points is fixed at creation; position values are
// rewritten in place by the [Animator].
type PointCloud struct {

	// Positions holds x, y, z for each point.
	Positions math32.ArrayF32

	// Colors holds r, g, b in [0,1] for each point,
	// or is nil if the cloud has no per-point colors.
	Colors math32.ArrayF32

	// Base is a snapshot of Positions taken right after generation,
	// used as the rest state for animation. It is nil if the cloud
	// is not animated in place.
	Base math32.ArrayF32
}

// New returns a new PointCloud with room for n points.
// Colors are allocated only if colors is true.
// A negative n is treated as 0.
func New(n int, colors bool) *PointCloud {
	n = max(n, 0)
	pc := &PointCloud{Positions: make(math32.ArrayF32, 3*n)}
	if colors {
		pc.Colors = make(math32.ArrayF32, 3*n)
	}
	return pc
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.Positions) / 3
}

// HasColors returns whether the cloud has per-point colors.
func (pc *PointCloud) HasColors() bool {
	return pc.Colors != nil
}

// Position returns the position of point i.
func (pc *PointCloud) Position(i int) math32.Vector3 {
	i3 := 3 * i
	return math32.Vec3(pc.Positions[i3], pc.Positions[i3+1], pc.Positions[i3+2])
}

// SetPosition sets the position of point i.
func (pc *PointCloud) SetPosition(i int, p math32.Vector3) {
	i3 := 3 * i
	pc.Positions[i3] = p.X
	pc.Positions[i3+1] = p.Y
	pc.Positions[i3+2] = p.Z
}

// Color returns the color of point i, or black if there are no colors.
func (pc *PointCloud) Color(i int) math32.Vector3 {
	if pc.Colors == nil {
		return math32.Vector3{}
	}
	i3 := 3 * i
	return math32.Vec3(pc.Colors[i3], pc.Colors[i3+1], pc.Colors[i3+2])
}

// SetColor sets the color of point i. It does nothing if there are no colors.
func (pc *PointCloud) SetColor(i int, c math32.Vector3) {
	if pc.Colors == nil {
		return
	}
	i3 := 3 * i
	pc.Colors[i3] = c.X
	pc.Colors[i3+1] = c.Y
	pc.Colors[i3+2] = c.Z
}

// SnapshotBase copies the current positions into [PointCloud.Base].
// Generators call this once after placing all points.
func (pc *PointCloud) SnapshotBase() {
	pc.Base = make(math32.ArrayF32, len(pc.Positions))
	copy(pc.Base, pc.Positions)
}

// Bounds returns the bounding box of the current positions.
// It is empty for an empty cloud.
func (pc *PointCloud) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	n := pc.Len()
	for i := range n {
		bb.ExpandByPoint(pc.Position(i))
	}
	return bb
}
