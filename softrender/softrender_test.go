// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrender

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
	"cogentcore.org/pointcloud/galaxy"
	"cogentcore.org/pointcloud/particles"
	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTarget(t *testing.T) {
	cm := GalaxyCamera()
	pr := cm.NewProjector(200, 100, 1)
	x, y, d, ok := pr.Project(mgl32.Vec3{}, 0)
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
	assert.InDelta(t, math32.Sqrt(27), d, 1e-3)

	// behind the camera
	_, _, _, ok = pr.Project(mgl32.Vec3{6, 6, 6}, 0)
	assert.False(t, ok)

	// up is up on screen
	_, yUp, _, ok := pr.Project(mgl32.Vec3{0, 0.5, 0}, 0)
	require.True(t, ok)
	assert.Less(t, yUp, y)

	// rotation about Y keeps the origin fixed
	x2, y2, _, _ := pr.Project(mgl32.Vec3{}, 1.2)
	assert.InDelta(t, x, x2, 1e-3)
	assert.InDelta(t, y, y2, 1e-3)

	assert.InDelta(t, pr.PixelSize(2, 4), 2*pr.PixelSize(1, 4), 1e-5)
	assert.Equal(t, float32(0), pr.PixelSize(1, 0))
}

func TestRendererHandles(t *testing.T) {
	r := NewRenderer(ParticlesCamera())
	pc := cloud.New(1, false)
	h, err := r.Install(pc, cloud.Style{PointSize: 0.1})
	require.NoError(t, err)
	assert.True(t, r.Dirty(h))
	r.Splats(10, 10, 1)
	assert.False(t, r.Dirty(h))
	require.NoError(t, r.MarkDirty(h))
	assert.True(t, r.Dirty(h))
	require.NoError(t, r.Release(h))
	assert.Equal(t, 0, r.Len())
	assert.ErrorIs(t, r.MarkDirty(h), cloud.ErrUnknownHandle)
	assert.ErrorIs(t, r.SetRotation(h, 1), cloud.ErrUnknownHandle)
	assert.ErrorIs(t, r.Release(h), cloud.ErrUnknownHandle)
}

func TestSplatsOrder(t *testing.T) {
	r := NewRenderer(ParticlesCamera())
	pc := cloud.New(2, true)
	pc.SetPosition(0, math32.Vec3(0, 0, 2))
	pc.SetPosition(1, math32.Vec3(0, 0, -2))
	pc.SetColor(0, math32.Vec3(1, 0, 0))
	_, err := r.Install(pc, cloud.Style{PointSize: 0.1, VertexColors: true})
	require.NoError(t, err)
	sp := r.Splats(100, 100, 1)
	require.Len(t, sp, 2)
	assert.Greater(t, sp[0].Depth, sp[1].Depth)
	assert.Equal(t, math32.Vec3(1, 0, 0), sp[1].Color)
	assert.Greater(t, sp[1].Radius, sp[0].Radius)
}

func TestWritePNG(t *testing.T) {
	p := galaxy.NewParams()
	p.Count = 2000
	r := NewRenderer(GalaxyCamera())
	vi := cloud.NewVisualization(p, r, galaxy.Motion(), randx.NewSysRand(1), clock.NewMock())
	require.NoError(t, vi.Start())
	img := r.DrawImage(64, 48)
	assert.Equal(t, 64, img.Bounds().Dx())
	lit := 0
	for y := range 48 {
		for x := range 64 {
			if img.RGBAAt(x, y) != (color.RGBA{A: 255}) {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 10)

	opts := ImageOptions{Width: 64, Height: 48, Supersample: 2, Glow: 1}
	img = r.Image(opts)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())

	fn := filepath.Join(t.TempDir(), "galaxy.png")
	require.NoError(t, r.WritePNG(fn, opts))
	assert.FileExists(t, fn)
}

func TestTerminal(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 20)
	defer s.Fini()

	p := particles.NewParams()
	p.Count = 500
	r := NewRenderer(ParticlesCamera())
	mc := clock.NewMock()
	vi := cloud.NewVisualization(p, r, particles.Motion(), randx.NewSysRand(2), mc)
	require.NoError(t, vi.Start())

	tm := NewTerminal(s, r)
	tm.Clock = mc
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tm.Run(ctx, vi) }()

	// the loop only advances when the mock clock ticks
	regenerated := make(chan struct{})
	tm.Post(func() {
		assert.NoError(t, vi.Regenerate())
		close(regenerated)
	})
	<-regenerated
	for range 3 {
		mc.Add(time.Second / 30)
	}
	drawn := make(chan int)
	tm.Post(func() {
		tm.Draw()
		n := 0
		for y := range 20 {
			for x := range 40 {
				ch, _, _, _ := s.GetContent(x, y)
				if ch != ' ' {
					n++
				}
			}
		}
		drawn <- n
	})
	assert.Greater(t, <-drawn, 0)
	assert.Equal(t, 1, r.Len())

	cancel()
	assert.NoError(t, <-done)
}

func TestTerminalPostAfterRun(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	p := particles.NewParams()
	p.Count = 10
	r := NewRenderer(ParticlesCamera())
	mc := clock.NewMock()
	vi := cloud.NewVisualization(p, r, particles.Motion(), randx.NewSysRand(3), mc)
	require.NoError(t, vi.Start())

	tm := NewTerminal(s, r)
	tm.Clock = mc
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, tm.Run(ctx, vi))

	// more posts than the queue holds must not block once Run is over
	posted := make(chan struct{})
	go func() {
		for range 64 {
			tm.Post(func() { t.Error("posted func ran after Run returned") })
		}
		close(posted)
	}()
	select {
	case <-posted:
	case <-time.After(2 * time.Second):
		t.Fatal("Post blocked after Run returned")
	}
}
