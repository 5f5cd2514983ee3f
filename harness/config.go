// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/gpu"
)

// Config is the configuration record of one demo.
type Config struct {

	// Title is the window title.
	Title string

	// Size is the window size.
	Size image.Point

	// GLVersion is the requested OpenGL core profile version, e.g. "4.1".
	GLVersion string

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool

	// Shaders is the vertex and fragment shader source.
	Shaders gpu.ShaderSource

	// Geometry returns the mesh to upload. It is called once,
	// before the frame loop starts.
	Geometry func() gpu.Mesh

	// Draws are issued in order every frame.
	Draws []gpu.DrawCall

	// ClearColor is the background color.
	ClearColor color.Color

	// MaxFrames, if > 0, closes the window after that many frames.
	MaxFrames int
}

// DefaultSize is the window size used when none is given.
var DefaultSize = image.Pt(800, 600)

// DefaultGLVersion is the OpenGL version used when none is given.
const DefaultGLVersion = "4.1"

// Validate checks that the config describes something drawable and
// that its shaders fit the requested OpenGL version. It does not check
// the window size; that is up to the window system.
func (c *Config) Validate() error {
	if c.Geometry == nil {
		return errors.New("harness: no geometry function")
	}
	if len(c.Draws) == 0 {
		return errors.New("harness: no draw calls")
	}
	ver, err := gpu.ParseContextVersion(c.glVersion())
	if err != nil {
		return err
	}
	if err := gpu.CheckContextVersion(ver, c.Shaders.Vertex, c.Shaders.Fragment); err != nil {
		return fmt.Errorf("harness: %q: %w", c.Title, err)
	}
	return nil
}

func (c *Config) glVersion() string {
	if c.GLVersion == "" {
		return DefaultGLVersion
	}
	return c.GLVersion
}

func (c *Config) clearColor() [4]float32 {
	if c.ClearColor == nil {
		return [4]float32{0, 0, 0, 1}
	}
	r, g, b, a := c.ClearColor.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{float32(r) * inv, float32(g) * inv, float32(b) * inv, float32(a) * inv}
}
