// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import "cogentcore.org/core/base/errors"

// ErrUnknownHandle is returned by a [Renderer] for a handle that
// it did not create or has already released.
var ErrUnknownHandle = errors.New("cloud: unknown renderer handle")

// Handle is an opaque reference to renderer-side resources
// for one installed [PointCloud]. The zero Handle is never valid.
type Handle uint64

// Blendings are the ways that overlapping points are composited.
type Blendings int32 //enums:enum -trim-prefix Blend

const (
	// BlendNormal draws points over each other.
	BlendNormal Blendings = iota

	// BlendAdditive adds point colors, so dense regions glow.
	BlendAdditive
)


// Style has the visual properties used when installing a [PointCloud].
type Style struct {

	// PointSize is the visual size of each point, in world units.
	PointSize float32

	// Blending is how overlapping points are composited.
	Blending Blendings

	// DepthWrite is whether points write to the depth buffer.
	DepthWrite bool

	// VertexColors is whether per-point colors are used;
	// otherwise points are drawn white.
	VertexColors bool

	// Texture is whether a round sprite texture is applied to points.
	Texture bool

	// AlphaTest discards fragments with alpha below this value.
	AlphaTest float32
}

// Renderer is the boundary to a rendering backend that can display
// point clouds. Implementations own the device-side resources for each
// [Handle] until [Renderer.Release] is called.
type Renderer interface {

	// Install uploads the given cloud with the given style and
	// returns a handle for it. The renderer keeps a reference to pc
	// and reads its Positions again after [Renderer.MarkDirty].
	Install(pc *PointCloud, st Style) (Handle, error)

	// MarkDirty signals that the cloud's positions changed and must be
	// re-synchronized before the next presented frame.
	MarkDirty(h Handle) error

	// SetRotation sets the rigid rotation of the whole cloud
	// about the vertical (Y) axis, in radians.
	SetRotation(h Handle, angleY float32) error

	// Release frees all resources for the handle.
	Release(h Handle) error
}
