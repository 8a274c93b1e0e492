// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/cli"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
	"cogentcore.org/pointcloud/config"
	"cogentcore.org/pointcloud/galaxy"
	"cogentcore.org/pointcloud/softrender"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVisualization returns a started galaxy visualization on a
// software renderer, configured from a params file in a temp dir.
func newTestVisualization(t *testing.T) (*config.Config, *cloud.Visualization, *softrender.Renderer) {
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Params = filepath.Join(t.TempDir(), "params.toml")
	writeParams(t, c.Params, "[galaxy]\ncount = 200\n")
	require.NoError(t, load(c))

	gen, mo := c.Generator()
	r := softrender.NewRenderer(camera(c))
	vi := cloud.NewVisualization(gen, r, mo, randx.NewSysRand(1), clock.NewMock())
	t.Cleanup(vi.Close)
	require.NoError(t, vi.Start())
	return c, vi, r
}

func writeParams(t *testing.T, fn, s string) {
	require.NoError(t, os.WriteFile(fn, []byte(s), 0o644))
}

func TestReloadKeepsVariant(t *testing.T) {
	c, vi, r := newTestVisualization(t)
	assert.Equal(t, 200, c.Galaxy.Count)

	writeParams(t, c.Params, `
variant = "particles"

[galaxy]
count = 200
branches = 5
angular_speed = 0.5
`)
	ng, err := reload(c, vi)
	require.NoError(t, err)
	assert.Equal(t, "galaxy", c.Variant)
	assert.False(t, c.IsParticles())
	require.IsType(t, &galaxy.Params{}, ng)
	assert.Equal(t, 5, ng.(*galaxy.Params).Branches)
	assert.Same(t, ng, vi.Controller.Generator)
	assert.Equal(t, float32(0.5), vi.Animator.Motion.AngularSpeed)
	assert.Equal(t, 1, r.Len())
}

func TestReloadFailure(t *testing.T) {
	for name, s := range map[string]string{
		"syntax":  "[galaxy\nbranches = ",
		"variant": `variant = "nebula"`,
	} {
		t.Run(name, func(t *testing.T) {
			c, vi, r := newTestVisualization(t)
			writeParams(t, c.Params, s)
			before := *c
			gen := vi.Controller.Generator
			mo := vi.Animator.Motion

			ng, err := reload(c, vi)
			assert.Error(t, err)
			assert.Nil(t, ng)
			assert.Equal(t, before, *c)
			assert.Same(t, gen, vi.Controller.Generator)
			assert.Equal(t, mo, vi.Animator.Motion)
			assert.Equal(t, 1, r.Len())
		})
	}
}
