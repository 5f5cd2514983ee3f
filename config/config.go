// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the user configuration of the shapes tool,
// which can be loaded from a TOML or YAML file and is applied on top
// of a demo's own configuration.
package config

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/base/reflectx"
	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/harness"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the shapes tool.
type Config struct {

	// Width is the window width in screen coordinates.
	Width int `default:"800" toml:"width" yaml:"width"`

	// Height is the window height in screen coordinates.
	Height int `default:"600" toml:"height" yaml:"height"`

	// Title overrides the window title of the demo, if set.
	Title string `toml:"title" yaml:"title"`

	// GLVersion is the OpenGL core profile version to request.
	GLVersion string `default:"4.1" toml:"gl" yaml:"gl"`

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool `default:"true" toml:"vsync" yaml:"vsync"`

	// Frames, if > 0, closes the window after that many frames.
	Frames int `toml:"frames" yaml:"frames"`

	// Verbose shows info log messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// VeryVerbose shows debug log messages.
	VeryVerbose bool `toml:"vv" yaml:"vv"`

	// Quiet only shows error log messages.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// New returns a new [Config] with its default values.
func New() *Config {
	cfg := &Config{}
	errors.Log(SetFromDefaults(cfg))
	return cfg
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values.
func SetFromDefaults(cfg any) error {
	return reflectx.SetFromDefaultTags(cfg)
}

// DefaultFile is the config file that is used when none is given
// and it exists.
const DefaultFile = "~/.config/shapes/config.toml"

// Open reads the given config file into cfg, which keeps the values of
// any fields the file does not set. The format is chosen by the file
// extension: .toml, or .yaml / .yml. A leading ~ is expanded to the
// home directory.
func Open(cfg *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config.Open: %q: unsupported config file type %q", file, ext)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %q: %w", file, err)
	}
	return nil
}

// OpenDefault reads [DefaultFile] into cfg if it exists, and returns
// the expanded name of the file it read, if any.
func OpenDefault(cfg *Config) (string, error) {
	file, err := homedir.Expand(DefaultFile)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(file); err != nil {
		return "", nil
	}
	return file, Open(cfg, file)
}

// Set sets the field whose toml name is name from its string form.
// Command line flags have the same names as the config file keys.
func (c *Config) Set(name, value string) error {
	v := reflect.ValueOf(c).Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		if typ.Field(i).Tag.Get("toml") != name {
			continue
		}
		if err := reflectx.SetFromString(v.Field(i), value); err != nil {
			return fmt.Errorf("config.Set: %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("config.Set: unknown field %q", name)
}

// Validate checks the values that can be checked before a window is
// opened. A non-positive size is left for the window system to reject.
func (c *Config) Validate() error {
	if c.Frames < 0 {
		return fmt.Errorf("config: frames must be >= 0, not %d", c.Frames)
	}
	_, err := gpu.ParseContextVersion(c.GLVersion)
	return err
}

// Apply applies the config to the given demo config.
func (c *Config) Apply(hc *harness.Config) {
	hc.Size = image.Pt(c.Width, c.Height)
	if c.Title != "" {
		hc.Title = c.Title
	}
	if c.GLVersion != "" {
		hc.GLVersion = c.GLVersion
	}
	hc.VSync = c.VSync
	hc.MaxFrames = c.Frames
}
