// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzcloud

import (
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/pointcloud/cloud"
)

// Per-point sprite geometry: an octahedron with one vertex along each
// of ±X, ±Y, ±Z, and eight triangular faces.
const (
	spriteVertex = 6
	spriteIndex  = 8 * 3
)

var spriteDirs = [spriteVertex]math32.Vector3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

var spriteFaces = [spriteIndex]uint32{
	0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
	2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
}

// PointsMesh is an [xyz.Mesh] that draws each point of a
// [cloud.PointCloud] as a small octahedron sprite. Vertices are
// recomputed from the cloud positions every time the mesh is set on
// the scene, so re-setting it uploads the current positions.
type PointsMesh struct {
	xyz.MeshBase

	// Cloud is the source of positions and colors.
	Cloud *cloud.PointCloud

	// Size is the sprite diameter, in world units.
	Size float32

	// Alpha is the per-vertex alpha; values below 1 mark the mesh
	// transparent so it is rendered in the blended pass.
	Alpha float32
}

// NewPointsMesh returns a new mesh for the given cloud and style.
func NewPointsMesh(name string, pc *cloud.PointCloud, st cloud.Style) *PointsMesh {
	ms := &PointsMesh{Cloud: pc, Size: st.PointSize, Alpha: 1}
	ms.Name = name
	if st.Blending == cloud.BlendAdditive {
		ms.Alpha = 0.8
	}
	ms.HasColor = true
	ms.Transparent = ms.Alpha < 1
	return ms
}

func (ms *PointsMesh) MeshSize() (numVertex, nIndex int, hasColor bool) {
	n := ms.Cloud.Len()
	ms.NumVertex = n * spriteVertex
	ms.NumIndex = n * spriteIndex
	return ms.NumVertex, ms.NumIndex, ms.HasColor
}

func (ms *PointsMesh) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	pc := ms.Cloud
	n := pc.Len()
	half := 0.5 * ms.Size
	white := math32.Vec3(1, 1, 1)
	for i := range n {
		ctr := pc.Position(i)
		clr := white
		if pc.HasColors() {
			clr = pc.Color(i)
		}
		vo := i * spriteVertex
		for j, dir := range spriteDirs {
			vi := vo + j
			dir.MulScalar(half).Add(ctr).ToSlice(vertex, 3*vi)
			dir.ToSlice(normal, 3*vi)
			texcoord.Set(2*vi, 0.5+0.5*dir.X, 0.5+0.5*dir.Y)
			clrs.Set(4*vi, clr.X, clr.Y, clr.Z, ms.Alpha)
		}
		io := i * spriteIndex
		for j, f := range spriteFaces {
			index[io+j] = uint32(vo) + f
		}
	}
	bb := shape.BBoxFromVtxs(vertex, 0, n*spriteVertex)
	ms.BBox.SetBounds(bb.Min, bb.Max)
}
