// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WatchDelay is how long a parameter file must be quiet after a
// change before it is reloaded.
var WatchDelay = 200 * time.Millisecond

// Load reads the given TOML (.toml) or YAML (.yaml, .yml) file into c.
// Values not present in the file are left unchanged.
func Load(c *Config, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return fmt.Errorf("config: %s: unsupported file type (want .toml, .yaml or .yml)", filename)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return c.Validate()
}

// Save writes c to the given TOML or YAML file, by extension.
func Save(c *Config, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config: %s: unsupported file type (want .toml, .yaml or .yml)", filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0o644)
}

// Watch calls fn once after each burst of saves to the given file,
// until ctx is done. The directory is watched rather than the file so
// that editors which save by renaming are seen. fn is called on a
// separate goroutine.
func Watch(ctx context.Context, filename string, fn func()) error {
	fn0, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	path, err := filepath.Abs(fn0)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return err
	}
	deb := debounce.New(WatchDelay)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					deb(fn)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("config: watch", "file", filename, "err", err)
			}
		}
	}()
	return nil
}
