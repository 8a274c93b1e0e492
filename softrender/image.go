// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrender

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// minRadius keeps distant points visible as at least a single pixel.
const minRadius = 0.5

// DrawImage renders all installed clouds into a new image of the given size.
// Normal points are drawn as filled discs; additive points add their
// color into the pixels they cover, saturating at white.
func (r *Renderer) DrawImage(width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)
	dc.SetColor(r.Background)
	dc.Clear()
	img := dc.Image().(*image.RGBA)
	for _, s := range r.Splats(width, height, 1) {
		rad := math32.Max(s.Radius, minRadius)
		if s.Additive {
			addDisc(img, s.X, s.Y, rad, s.Color)
			continue
		}
		dc.SetRGB(float64(s.Color.X), float64(s.Color.Y), float64(s.Color.Z))
		dc.DrawCircle(float64(s.X), float64(s.Y), float64(rad))
		dc.Fill()
	}
	return img
}

// ImageOptions are the options for [Renderer.Image].
type ImageOptions struct {

	// Width and Height are the size of the final image.
	Width, Height int

	// Supersample draws at this multiple of the size and then
	// scales down, smoothing the edges of points. Values below 1 are 1.
	Supersample int

	// Glow is the radius, in final image pixels, of a blurred copy
	// added on top of the image. 0 disables it.
	Glow float64
}

// Image renders all installed clouds with the given options.
func (r *Renderer) Image(opts ImageOptions) *image.RGBA {
	ss := max(opts.Supersample, 1)
	img := r.DrawImage(opts.Width*ss, opts.Height*ss)
	if opts.Glow > 0 {
		img = blend.Add(img, blur.Gaussian(img, opts.Glow*float64(ss)))
	}
	if ss == 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG renders all installed clouds and saves them as a PNG file.
func (r *Renderer) WritePNG(filename string, opts ImageOptions) error {
	return gg.SavePNG(filename, r.Image(opts))
}

// addDisc adds color c to the pixels within radius rad of (x, y).
func addDisc(img *image.RGBA, x, y, rad float32, c math32.Vector3) {
	b := img.Bounds()
	x0 := max(int(math32.Floor(x-rad)), b.Min.X)
	x1 := min(int(math32.Ceil(x+rad)), b.Max.X)
	y0 := max(int(math32.Floor(y-rad)), b.Min.Y)
	y1 := min(int(math32.Ceil(y+rad)), b.Max.Y)
	r2 := rad * rad
	add := [3]float32{c.X * 255, c.Y * 255, c.Z * 255}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := float32(px) + 0.5 - x
			dy := float32(py) + 0.5 - y
			if dx*dx+dy*dy > r2 && rad > minRadius {
				continue
			}
			o := img.PixOffset(px, py)
			for k := range 3 {
				img.Pix[o+k] = uint8(math32.Min(float32(img.Pix[o+k])+add[k], 255))
			}
		}
	}
}
