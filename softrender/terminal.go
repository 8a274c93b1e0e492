// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrender

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/pointcloud/cloud"
	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
)

// cellAspect is the width / height of a typical terminal cell.
const cellAspect = 0.5

// density maps the accumulated brightness of a cell to a glyph.
var density = []rune(" .:-=+*#%@")

// Terminal draws a [Renderer] to a terminal screen and runs the frame
// loop for a [cloud.Visualization]. All regeneration and animation
// happen on the goroutine that calls [Terminal.Run]; other goroutines
// must use [Terminal.Post].
type Terminal struct {

	// Screen is the terminal screen.
	Screen tcell.Screen

	// Renderer holds the clouds to draw.
	Renderer *Renderer

	// FPS is the target frame rate.
	FPS int

	// Clock drives the frame ticker; the real clock if nil.
	Clock clock.Clock

	// Mono draws glyphs only, for terminals without color.
	Mono bool

	post chan func()
	done chan struct{}
}

// NewTerminal returns a new Terminal on the given, initialized screen.
func NewTerminal(s tcell.Screen, r *Renderer) *Terminal {
	return &Terminal{Screen: s, Renderer: r, FPS: 30,
		post: make(chan func(), 16), done: make(chan struct{})}
}

// Post schedules fn to run on the frame loop. It is safe to call from
// any goroutine. Once [Terminal.Run] has returned, fn is dropped.
func (tm *Terminal) Post(fn func()) {
	select {
	case tm.post <- fn:
	case <-tm.done:
	}
}

// Draw renders all clouds to the screen and shows it.
// Each cell sums the colors of the points that fall in it; the glyph
// reflects how bright the sum is.
func (tm *Terminal) Draw() {
	s := tm.Screen
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	acc := make([]math32.Vector3, w*h)
	for _, sp := range tm.Renderer.Splats(w, h, cellAspect) {
		x, y := int(sp.X), int(sp.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		i := y*w + x
		if sp.Additive {
			acc[i] = acc[i].Add(sp.Color)
		} else {
			acc[i] = sp.Color
		}
	}
	base := tcell.StyleDefault
	if !tm.Mono {
		bg := tm.Renderer.Background
		base = base.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	for y := range h {
		for x := range w {
			c := acc[y*w+x]
			lum := (c.X + c.Y + c.Z) / 3
			if lum <= 0 {
				s.SetContent(x, y, ' ', nil, base)
				continue
			}
			g := density[min(1+int(lum*float32(len(density)-2)), len(density)-1)]
			if tm.Mono {
				s.SetContent(x, y, g, nil, base)
				continue
			}
			fg := tcell.NewRGBColor(channel(c.X), channel(c.Y), channel(c.Z))
			s.SetContent(x, y, g, nil, base.Foreground(fg))
		}
	}
	s.Show()
}

func channel(v float32) int32 {
	return int32(math32.Clamp(v, 0, 1) * 255)
}

// Run runs the frame loop until ctx is done or the user quits with
// q, Esc or Ctrl+C. The r key regenerates the cloud.
// Run may only be called once.
func (tm *Terminal) Run(ctx context.Context, vi *cloud.Visualization) error {
	defer close(tm.done)
	if tm.Clock == nil {
		tm.Clock = clock.New()
	}
	evs := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := tm.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evs <- ev:
			case <-quit:
				return
			}
		}
	}()

	fps := max(tm.FPS, 1)
	tick := tm.Clock.Ticker(time.Second / time.Duration(fps))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-tm.post:
			fn()
		case ev := <-evs:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				tm.Screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'r':
					if err := vi.Regenerate(); err != nil {
						slog.Error("softrender: regenerate", "err", err)
					}
				}
			}
		case <-tick.C:
			if err := vi.Frame(); err != nil {
				return err
			}
			tm.Draw()
		}
	}
}
