// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzcloud renders point clouds in an [xyz.Scene].
package xyzcloud

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/pointcloud/cloud"
)

// Renderer implements [cloud.Renderer] on an [xyz.Scene].
// Each handle owns one [xyz.Solid] and one [PointsMesh]. Mesh names are
// recycled after release, so the GPU mesh slot of a released cloud is
// reused by the next one instead of accumulating.
type Renderer struct {

	// Scene is the scene that clouds are added to.
	Scene *xyz.Scene

	// Parent is the node that solids are added under; Scene if nil.
	Parent tree.Node

	next  cloud.Handle
	items map[cloud.Handle]*item
	free  []string
	names int
}

type item struct {
	mesh  *PointsMesh
	solid *xyz.Solid
}

// NewRenderer returns a new Renderer on the given scene.
func NewRenderer(sc *xyz.Scene) *Renderer {
	return &Renderer{Scene: sc}
}

func (r *Renderer) meshName() string {
	if n := len(r.free); n > 0 {
		nm := r.free[n-1]
		r.free = r.free[:n-1]
		return nm
	}
	r.names++
	return fmt.Sprintf("pointcloud-%d", r.names)
}

func (r *Renderer) item(h cloud.Handle) (*item, error) {
	it, ok := r.items[h]
	if !ok {
		return nil, fmt.Errorf("xyzcloud: handle %d: %w", h, cloud.ErrUnknownHandle)
	}
	return it, nil
}

// Install adds a solid for the given cloud to the scene.
func (r *Renderer) Install(pc *cloud.PointCloud, st cloud.Style) (cloud.Handle, error) {
	if r.items == nil {
		r.items = make(map[cloud.Handle]*item)
	}
	parent := r.Parent
	if parent == nil {
		parent = r.Scene
	}
	name := r.meshName()
	ms := NewPointsMesh(name, pc, st)
	r.Scene.SetMesh(ms)
	sld := xyz.NewSolid(parent).SetMesh(ms)
	sld.SetName(name)
	sld.SetColor(colors.White).SetShiny(0).SetReflective(0)
	if st.Blending == cloud.BlendAdditive {
		// no additive blend state in xyz: brighten the blended pass instead
		sld.SetBright(2)
	}
	r.next++
	r.items[r.next] = &item{mesh: ms, solid: sld}
	r.Scene.SetNeedsUpdate()
	return r.next, nil
}

// MarkDirty re-sets the mesh on the scene, which re-reads the
// cloud positions and uploads them.
func (r *Renderer) MarkDirty(h cloud.Handle) error {
	it, err := r.item(h)
	if err != nil {
		return err
	}
	r.Scene.SetMesh(it.mesh)
	r.Scene.SetNeedsRender()
	return nil
}

// SetRotation rotates the solid about +Y.
func (r *Renderer) SetRotation(h cloud.Handle, angleY float32) error {
	it, err := r.item(h)
	if err != nil {
		return err
	}
	it.solid.Pose.SetAxisRotation(0, 1, 0, math32.RadToDeg(angleY))
	r.Scene.SetNeedsUpdate()
	return nil
}

// Release removes the solid and the mesh from the scene.
func (r *Renderer) Release(h cloud.Handle) error {
	it, err := r.item(h)
	if err != nil {
		return err
	}
	delete(r.items, h)
	it.solid.Delete()
	r.Scene.Meshes.DeleteKey(it.mesh.Name)
	r.free = append(r.free, it.mesh.Name)
	r.Scene.SetNeedsUpdate()
	return nil
}

// Len returns the number of installed clouds.
func (r *Renderer) Len() int {
	return len(r.items)
}

// Solid returns the solid for the given handle, or nil.
func (r *Renderer) Solid(h cloud.Handle) *xyz.Solid {
	if it, ok := r.items[h]; ok {
		return it.solid
	}
	return nil
}
