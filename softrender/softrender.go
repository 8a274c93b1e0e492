// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softrender renders point clouds on the CPU, to images and to
// the terminal, without a GPU. It is used for headless snapshots and
// for viewing over a plain terminal connection.
package softrender

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/pointcloud/cloud"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer implements [cloud.Renderer] by keeping references to the
// installed clouds, which are read directly when drawing.
type Renderer struct {

	// Camera is the view used for drawing.
	Camera Camera

	// Background is the color drawn behind the clouds.
	Background color.RGBA

	next  cloud.Handle
	items map[cloud.Handle]*item
}

type item struct {
	cloud    *cloud.PointCloud
	style    cloud.Style
	rotation float32
	dirty    bool
}

// NewRenderer returns a new Renderer with the given camera
// and a black background.
func NewRenderer(cm Camera) *Renderer {
	return &Renderer{Camera: cm, Background: color.RGBA{A: 255}}
}

func (r *Renderer) item(h cloud.Handle) (*item, error) {
	it, ok := r.items[h]
	if !ok {
		return nil, fmt.Errorf("softrender: handle %d: %w", h, cloud.ErrUnknownHandle)
	}
	return it, nil
}

func (r *Renderer) Install(pc *cloud.PointCloud, st cloud.Style) (cloud.Handle, error) {
	if r.items == nil {
		r.items = make(map[cloud.Handle]*item)
	}
	r.next++
	r.items[r.next] = &item{cloud: pc, style: st, dirty: true}
	return r.next, nil
}

func (r *Renderer) MarkDirty(h cloud.Handle) error {
	it, err := r.item(h)
	if err != nil {
		return err
	}
	it.dirty = true
	return nil
}

func (r *Renderer) SetRotation(h cloud.Handle, angleY float32) error {
	it, err := r.item(h)
	if err != nil {
		return err
	}
	it.rotation = angleY
	return nil
}

func (r *Renderer) Release(h cloud.Handle) error {
	if _, err := r.item(h); err != nil {
		return err
	}
	delete(r.items, h)
	return nil
}

// Len returns the number of installed clouds.
func (r *Renderer) Len() int {
	return len(r.items)
}

// Dirty returns whether the cloud for h changed since it was last drawn.
func (r *Renderer) Dirty(h cloud.Handle) bool {
	it, ok := r.items[h]
	return ok && it.dirty
}

// Splat is one projected point.
type Splat struct {

	// X, Y is the screen position.
	X, Y float32

	// Depth is the distance from the camera plane.
	Depth float32

	// Radius is the on-screen radius.
	Radius float32

	// Color is the point color, each component in [0,1].
	Color math32.Vector3

	// Additive is whether the point is composited additively.
	Additive bool
}

// Splats projects all visible points of all clouds for a viewport of
// the given size and pixel aspect (see [Camera.NewProjector]), sorted
// back to front. It clears the dirty flags.
func (r *Renderer) Splats(width, height int, pixelAspect float32) []Splat {
	pr := r.Camera.NewProjector(width, height, pixelAspect)
	handles := make([]cloud.Handle, 0, len(r.items))
	for h := range r.items {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	var sp []Splat
	white := math32.Vec3(1, 1, 1)
	for _, h := range handles {
		it := r.items[h]
		it.dirty = false
		pc := it.cloud
		colors := pc.HasColors() && it.style.VertexColors
		add := it.style.Blending == cloud.BlendAdditive
		for i := range pc.Len() {
			p := pc.Position(i)
			x, y, d, ok := pr.Project(mgl32.Vec3{p.X, p.Y, p.Z}, it.rotation)
			if !ok {
				continue
			}
			s := Splat{X: x, Y: y, Depth: d, Radius: 0.5 * pr.PixelSize(it.style.PointSize, d), Color: white, Additive: add}
			if colors {
				s.Color = pc.Color(i)
			}
			sp = append(sp, s)
		}
	}
	slices.SortStableFunc(sp, func(a, b Splat) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return sp
}
