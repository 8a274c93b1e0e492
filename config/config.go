// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the pointcloud command:
// command line flags, parameter files in TOML or YAML, and watching a
// parameter file for saved edits.
package config

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/pointcloud/cloud"
	"cogentcore.org/pointcloud/galaxy"
	"cogentcore.org/pointcloud/particles"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the configuration of the pointcloud command.
type Config struct {

	// Variant is the point cloud to show: galaxy or particles.
	Variant string `default:"galaxy" toml:"variant" yaml:"variant"`

	// Seed seeds the random source; 0 uses the global source,
	// which differs on every run.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Params is a TOML or YAML file with values that override
	// the flags.
	Params string `flag:"params,p" toml:"-" yaml:"-"`

	// Watch reloads Params and regenerates whenever the file is saved.
	Watch bool `default:"true" toml:"-" yaml:"-"`

	// Galaxy are the galaxy parameters.
	Galaxy GalaxyConfig `toml:"galaxy" yaml:"galaxy"`

	// Particles are the particle parameters.
	Particles ParticlesConfig `toml:"particles" yaml:"particles"`

	// Snapshot configures the snapshot command.
	Snapshot SnapshotConfig `toml:"snapshot" yaml:"snapshot"`

	// Term configures the term command.
	Term TermConfig `toml:"term" yaml:"term"`
}

// GalaxyConfig are the galaxy parameters, with colors as hex strings.
type GalaxyConfig struct {
	Count           int     `default:"100000" toml:"count" yaml:"count"`
	Size            float32 `default:"0.01" toml:"size" yaml:"size"`
	Radius          float32 `default:"5" toml:"radius" yaml:"radius"`
	Branches        int     `default:"3" toml:"branches" yaml:"branches"`
	Spin            float32 `default:"1" toml:"spin" yaml:"spin"`
	Randomness      float32 `default:"0.2" toml:"randomness" yaml:"randomness"`
	RandomnessPower float32 `default:"3" toml:"randomness_power" yaml:"randomness_power"`
	InsideColor     string  `default:"#ff6030" copier:"-" toml:"inside_color" yaml:"inside_color"`
	OutsideColor    string  `default:"#1b3984" copier:"-" toml:"outside_color" yaml:"outside_color"`

	// AngularSpeed is the rotation speed in radians per second.
	AngularSpeed float32 `default:"0.05" toml:"angular_speed" yaml:"angular_speed"`
}

// ParticlesConfig are the particle parameters.
type ParticlesConfig struct {

	// Mode is box or sphere.
	Mode         string  `default:"box" copier:"-" toml:"mode" yaml:"mode"`
	Count        int     `default:"5000" toml:"count" yaml:"count"`
	Size         float32 `default:"0.05" toml:"size" yaml:"size"`
	Width        float32 `default:"10" toml:"width" yaml:"width"`
	Height       float32 `default:"6" toml:"height" yaml:"height"`
	Depth        float32 `default:"10" toml:"depth" yaml:"depth"`
	SphereRadius float32 `default:"1.5" toml:"sphere_radius" yaml:"sphere_radius"`
	Additive     bool    `default:"true" toml:"additive" yaml:"additive"`
	DepthWrite   bool    `toml:"depth_write" yaml:"depth_write"`
	Texture      bool    `default:"true" toml:"texture" yaml:"texture"`
	AlphaTest    float32 `default:"0.001" toml:"alpha_test" yaml:"alpha_test"`
	VertexColors bool    `default:"true" toml:"vertex_colors" yaml:"vertex_colors"`

	// AngularSpeed is the rotation speed in radians per second.
	AngularSpeed float32 `default:"0.08" toml:"angular_speed" yaml:"angular_speed"`

	// Ripple animates a wave through the particles.
	Ripple bool `default:"true" toml:"ripple" yaml:"ripple"`

	RippleSpeed     float32 `default:"1.5" toml:"ripple_speed" yaml:"ripple_speed"`
	RippleFrequency float32 `default:"0.5" toml:"ripple_frequency" yaml:"ripple_frequency"`
	RippleAmplitude float32 `default:"0.35" toml:"ripple_amplitude" yaml:"ripple_amplitude"`
}

// SnapshotConfig configures the snapshot command.
type SnapshotConfig struct {

	// Output is the PNG file to write.
	Output string `default:"pointcloud.png" toml:"output" yaml:"output"`

	Width  int `default:"1024" toml:"width" yaml:"width"`
	Height int `default:"768" toml:"height" yaml:"height"`

	// Seconds is the animation time at which the snapshot is taken.
	Seconds float32 `toml:"seconds" yaml:"seconds"`

	// Supersample renders at this multiple of the size and scales down.
	Supersample int `default:"2" toml:"supersample" yaml:"supersample"`

	// Glow is the radius of the blur added on top of the image;
	// 0 disables it.
	Glow float64 `default:"2" toml:"glow" yaml:"glow"`
}

// TermConfig configures the term command.
type TermConfig struct {

	// FPS is the frame rate.
	FPS int `default:"30" toml:"fps" yaml:"fps"`
}

// IsParticles returns whether the particles variant is selected.
func (c *Config) IsParticles() bool {
	return c.Variant == "particles"
}

// Validate checks the values that cannot be clamped.
func (c *Config) Validate() error {
	switch c.Variant {
	case "galaxy", "particles":
	default:
		return fmt.Errorf("config: unknown variant %q (want galaxy or particles)", c.Variant)
	}
	if _, err := ParseMode(c.Particles.Mode); err != nil {
		return err
	}
	return nil
}

// ParseMode returns the particle mode with the given name.
func ParseMode(s string) (particles.Modes, error) {
	switch s {
	case "box", "":
		return particles.Box, nil
	case "sphere":
		return particles.Sphere, nil
	}
	return particles.Box, fmt.Errorf("config: unknown particle mode %q (want box or sphere)", s)
}

// ParseColor parses a hex color such as "#ff6030". On error it logs
// and returns def.
func ParseColor(hex string, def color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		slog.Warn("config: invalid color; using default", "value", hex, "err", err)
		return def
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// GalaxyParams returns the galaxy parameters, clamped.
func (c *Config) GalaxyParams() *galaxy.Params {
	p := galaxy.NewParams()
	if err := copier.Copy(p, &c.Galaxy); err != nil {
		slog.Error("config: galaxy params", "err", err)
	}
	p.InsideColor = ParseColor(c.Galaxy.InsideColor, p.InsideColor)
	p.OutsideColor = ParseColor(c.Galaxy.OutsideColor, p.OutsideColor)
	p.Update()
	return p
}

// GalaxyMotion returns the galaxy motion.
func (c *Config) GalaxyMotion() cloud.Motion {
	mo := galaxy.Motion()
	mo.AngularSpeed = c.Galaxy.AngularSpeed
	return mo
}

// ParticlesParams returns the particle parameters, clamped.
func (c *Config) ParticlesParams() *particles.Params {
	p := particles.NewParams()
	if err := copier.Copy(p, &c.Particles); err != nil {
		slog.Error("config: particle params", "err", err)
	}
	mode, err := ParseMode(c.Particles.Mode)
	if err != nil {
		slog.Warn("config: using box mode", "err", err)
	}
	p.Mode = mode
	p.Update()
	return p
}

// ParticlesMotion returns the particle motion.
func (c *Config) ParticlesMotion() cloud.Motion {
	mo := particles.Motion()
	mo.AngularSpeed = c.Particles.AngularSpeed
	mo.RippleOn = c.Particles.Ripple
	mo.Ripple = cloud.Ripple{
		Speed:     c.Particles.RippleSpeed,
		Frequency: c.Particles.RippleFrequency,
		Amplitude: c.Particles.RippleAmplitude,
	}
	return mo
}

// Generator returns the generator and motion of the selected variant.
func (c *Config) Generator() (cloud.Generator, cloud.Motion) {
	if c.IsParticles() {
		return c.ParticlesParams(), c.ParticlesMotion()
	}
	return c.GalaxyParams(), c.GalaxyMotion()
}

// NewRand returns the random source for the seed: the global source
// for 0, otherwise a new seeded source.
func NewRand(seed int64) randx.Rand {
	if seed == 0 {
		return randx.NewGlobalRand()
	}
	return randx.NewSysRand(seed)
}
