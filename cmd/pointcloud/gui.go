// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/pointcloud/cloud"
	"cogentcore.org/pointcloud/config"
	"cogentcore.org/pointcloud/xyzcloud"
)

// updater is implemented by parameters that clamp themselves.
type updater interface {
	Update()
}

// GUI opens a window with the point cloud and its parameters.
func GUI(c *config.Config) error {
	if err := load(c); err != nil {
		return err
	}
	gen, mo := c.Generator()

	b := core.NewBody("pointcloud").SetTitle("Point Cloud: " + c.Variant)
	split := core.NewSplits(b)
	fm := core.NewForm(split).SetStruct(gen)
	se := xyzcore.NewSceneEditor(split)
	split.SetSplits(.25, .75)

	se.UpdateWidget()
	sc := se.SceneXYZ()
	sc.Background = colors.Uniform(colors.Black)
	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	xyz.NewDirectional(sc, "directional", 1, xyz.DirectSun).Pos.Set(0, 2, 1)
	if c.IsParticles() {
		sc.Camera.Pose.Pos = math32.Vec3(0, 1.5, 4)
	} else {
		sc.Camera.Pose.Pos = math32.Vec3(3, 3, 3)
	}
	sc.Camera.LookAt(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	rd := xyzcloud.NewRenderer(sc)
	vi := cloud.NewVisualization(gen, rd, mo, config.NewRand(c.Seed), nil)
	if err := vi.Start(); err != nil {
		return err
	}

	regenerate := func() {
		if u, ok := gen.(updater); ok {
			u.Update()
		}
		errors.Log(vi.Regenerate())
		fm.Update()
		se.NeedsRender()
	}
	// only finished edits regenerate; OnInput would regenerate while dragging
	fm.OnChange(func(e events.Event) {
		regenerate()
	})

	sw := se.SceneWidget()
	sw.Animate(func(a *core.Animation) {
		errors.Log(vi.Frame())
		sw.NeedsRender()
	})

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(func(p *tree.Plan) {
			tree.Add(p, func(w *core.Button) {
				w.SetText("Regenerate").SetIcon(icons.Update).
					SetTooltip("Generate a new cloud with the current parameters").
					OnClick(func(e events.Event) {
						regenerate()
					})
			})
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if c.Watch && c.Params != "" {
		err := config.Watch(ctx, c.Params, func() {
			b.AsyncLock()
			defer b.AsyncUnlock()
			ng, err := reload(c, vi)
			if errors.Log(err) != nil {
				return
			}
			gen = ng
			fm.SetStruct(gen)
			fm.Update()
			se.NeedsRender()
		})
		errors.Log(err)
	}

	b.RunMainWindow()
	vi.Close()
	return nil
}
