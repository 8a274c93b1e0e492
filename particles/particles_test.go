// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particles

import (
	"testing"
	"time"

	"cogentcore.org/core/enums"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	p := NewParams()
	pc := Generate(p, randx.NewSysRand(1))
	require.Equal(t, 5000, pc.Len())
	assert.Len(t, pc.Colors, 3*5000)
	assert.Equal(t, pc.Positions, pc.Base)
	assert.NotSame(t, &pc.Positions[0], &pc.Base[0])
	for i := range pc.Len() {
		ps := pc.Position(i)
		assert.True(t, ps.X >= -5 && ps.X < 5)
		assert.True(t, ps.Y >= -3 && ps.Y < 3)
		assert.True(t, ps.Z >= -5 && ps.Z < 5)
		c := pc.Color(i)
		for _, v := range []float32{c.X, c.Y, c.Z} {
			assert.True(t, v >= 0 && v < 1)
		}
	}
}

func TestSphere(t *testing.T) {
	p := NewParams()
	p.Mode = Sphere
	p.Count = 1000
	pc := Generate(p, randx.NewSysRand(2))
	for i := range pc.Len() {
		assert.InDelta(t, p.SphereRadius, pc.Position(i).Length(), 1e-4)
	}
}

func TestNoColors(t *testing.T) {
	p := NewParams()
	p.VertexColors = false
	p.Count = 10
	pc := Generate(p, randx.NewSysRand(1))
	assert.Nil(t, pc.Colors)
	assert.False(t, p.Style().VertexColors)
}

func TestStyle(t *testing.T) {
	p := NewParams()
	st := p.Style()
	assert.Equal(t, cloud.BlendAdditive, st.Blending)
	assert.False(t, st.DepthWrite)
	assert.True(t, st.Texture)
	p.Additive = false
	assert.Equal(t, cloud.BlendNormal, p.Style().Blending)
}

func TestUpdate(t *testing.T) {
	p := NewParams()
	p.Count = -1
	p.Size = 0
	p.Height = -2
	p.AlphaTest = 3
	p.Update()
	assert.Equal(t, 0, p.Count)
	assert.Equal(t, float32(0.001), p.Size)
	assert.Equal(t, float32(0), p.Height)
	assert.Equal(t, float32(1), p.AlphaTest)
}

func TestMotion(t *testing.T) {
	mo := Motion()
	assert.True(t, mo.RippleOn)
	assert.Equal(t, float32(0.08), mo.AngularSpeed)
	assert.Equal(t, float32(1.5), mo.Ripple.Speed)
	assert.Equal(t, float32(0.5), mo.Ripple.Frequency)
	assert.Equal(t, float32(0.35), mo.Ripple.Amplitude)
}

// countRenderer counts live handles and dirty marks.
type countRenderer struct {
	next  cloud.Handle
	live  map[cloud.Handle]bool
	dirty int
}

func (cr *countRenderer) Install(pc *cloud.PointCloud, st cloud.Style) (cloud.Handle, error) {
	cr.next++
	cr.live[cr.next] = true
	return cr.next, nil
}

func (cr *countRenderer) MarkDirty(h cloud.Handle) error {
	cr.dirty++
	return nil
}

func (cr *countRenderer) SetRotation(h cloud.Handle, angleY float32) error { return nil }

func (cr *countRenderer) Release(h cloud.Handle) error {
	delete(cr.live, h)
	return nil
}

func TestRippleFrames(t *testing.T) {
	p := NewParams()
	p.Count = 200
	cr := &countRenderer{live: map[cloud.Handle]bool{}}
	mc := clock.NewMock()
	vi := cloud.NewVisualization(p, cr, Motion(), randx.NewSysRand(4), mc)
	require.NoError(t, vi.Start())

	for range 5 {
		mc.Add(16 * time.Millisecond)
		require.NoError(t, vi.Frame())
	}
	assert.Equal(t, 6, cr.dirty)

	pc, _ := vi.Controller.Live()
	tm := float32(0.08)
	for i := range pc.Len() {
		i3 := 3 * i
		want := pc.Base[i3+1] + math32.Sin(tm*1.5+pc.Base[i3]*0.5)*0.35
		assert.InDelta(t, want, pc.Positions[i3+1], 1e-4)
		assert.LessOrEqual(t, math32.Abs(pc.Positions[i3+1]-pc.Base[i3+1]), float32(0.35)+1e-6)
	}

	p.Count = 50
	require.NoError(t, vi.Regenerate())
	assert.Len(t, cr.live, 1)
	pc, _ = vi.Controller.Live()
	assert.Equal(t, 50, pc.Len())
}

func TestModes(t *testing.T) {
	var _ enums.Enum = Box
	assert.Equal(t, "Sphere", Sphere.String())
	assert.Len(t, Box.Values(), 2)
	assert.NotEmpty(t, Sphere.Desc())

	var m Modes
	require.NoError(t, m.SetString("Sphere"))
	assert.Equal(t, Sphere, m)
	assert.Error(t, m.SetString("Torus"))
	require.NoError(t, m.UnmarshalText([]byte("Box")))
	assert.Equal(t, Box, m)
}
