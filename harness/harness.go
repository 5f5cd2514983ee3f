// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness provides the render harness shared by all of the
// shape demos: it opens a window, builds a shader program and a static
// geometry from a [Config], and redraws that geometry every frame until
// the window is asked to close.
//
// Everything runs on the calling goroutine, which must be locked to the
// main OS thread for desktop window systems.
package harness

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/system"
)

// State is the state of the frame loop.
type State int32

const (
	// Running is the state while frames are being drawn.
	Running State = iota

	// Closing is the terminal state, entered once closing is requested.
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Closing:
		return "Closing"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Platform supplies the window system and graphics API to the harness.
type Platform struct {

	// OpenWindow opens the window and makes its graphics context current.
	OpenWindow func(opts *system.NewWindowOptions) (system.Window, error)

	// LoadDevice resolves the graphics API for the current context.
	LoadDevice func() (gpu.Device, error)
}

// Harness runs one [Config]. A Harness is used for a single [Harness.Run].
type Harness struct {

	// Config is the demo being run.
	Config *Config

	state     State
	frames    int
	win       system.Window
	dev       gpu.Device
	program   *gpu.Program
	geometry  *gpu.Geometry
	fill      gpu.FillMode
	pointSize float32
}

// New returns a new [Harness] for the given config after validating it.
func New(cfg *Config) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Harness{Config: cfg, pointSize: 1}, nil
}

// Run is a convenience function that runs cfg with a new [Harness].
func Run(ctx context.Context, cfg *Config, p Platform) error {
	h, err := New(cfg)
	if err != nil {
		return err
	}
	return h.Run(ctx, p)
}

// State returns the current state of the frame loop.
func (h *Harness) State() State {
	return h.state
}

// Frames returns the number of frames presented so far.
func (h *Harness) Frames() int {
	return h.frames
}

// Run opens the window, builds the program and geometry, and runs the
// frame loop until the window is asked to close, ctx is done, or
// [Config.MaxFrames] frames have been presented. Every resource it
// acquired is released before it returns, on success and on error.
// Closing is not an error: Run returns nil once the loop ends normally.
func (h *Harness) Run(ctx context.Context, p Platform) error {
	cfg := h.Config
	ver, err := gpu.ParseContextVersion(cfg.glVersion())
	if err != nil {
		return err
	}
	opts := &system.NewWindowOptions{
		Size:    cfg.Size,
		Title:   cfg.Title,
		GLMajor: int(ver.Major()),
		GLMinor: int(ver.Minor()),
		VSync:   cfg.VSync,
	}
	win, err := p.OpenWindow(opts)
	if err != nil {
		return err
	}
	h.win = win
	defer h.release()
	win.SetKeyCallback(h.HandleKey)

	if err := h.setup(p); err != nil {
		return err
	}

	slog.Info("harness: running", "title", cfg.Title, "draws", len(cfg.Draws), "vertices", h.geometry.NumVertices())
	h.state = Running
	for {
		win.PollEvents()
		if h.closeRequested(ctx) {
			h.state = Closing
			break
		}
		h.renderFrame()
		win.SwapBuffers()
		h.frames++
	}
	slog.Info("harness: closing", "title", cfg.Title, "frames", h.frames)
	return nil
}

func (h *Harness) setup(p Platform) error {
	dev, err := p.LoadDevice()
	if err != nil {
		var le *gpu.LoaderError
		if !errors.As(err, &le) {
			err = &gpu.LoaderError{Err: err}
		}
		return err
	}
	h.dev = dev

	h.program, err = gpu.BuildProgram(dev, h.Config.Shaders)
	if err != nil {
		return err
	}
	h.program.Use()

	h.geometry, err = gpu.BuildGeometry(dev, h.Config.Geometry())
	if err != nil {
		return fmt.Errorf("harness: %q: %w", h.Config.Title, err)
	}
	for _, dc := range h.Config.Draws {
		if err := dc.Validate(h.geometry); err != nil {
			return fmt.Errorf("harness: %q: %w", h.Config.Title, err)
		}
	}

	cc := h.Config.clearColor()
	dev.ClearColor(cc[0], cc[1], cc[2], cc[3])
	sz := h.win.FramebufferSize()
	dev.Viewport(sz.X, sz.Y)
	h.win.SetFramebufferSizeCallback(func(size image.Point) {
		dev.Viewport(size.X, size.Y)
	})
	return nil
}

func (h *Harness) closeRequested(ctx context.Context) bool {
	switch {
	case h.win.ShouldClose():
		return true
	case ctx.Err() != nil:
		slog.Info("harness: interrupted", "reason", context.Cause(ctx))
		return true
	case h.Config.MaxFrames > 0 && h.frames >= h.Config.MaxFrames:
		return true
	}
	return false
}

// HandleKey is the key callback: escape pressed requests closing the
// window and every other key event is ignored.
func (h *Harness) HandleKey(ev system.KeyEvent) {
	if ev.Key != system.KeyEscape || ev.Action != system.Press || h.win == nil {
		return
	}
	slog.Debug("harness: escape pressed")
	h.win.SetShouldClose(true)
}

func (h *Harness) renderFrame() {
	h.dev.Clear()
	h.geometry.Bind()
	for _, dc := range h.Config.Draws {
		if dc.Fill != h.fill {
			h.dev.SetFillMode(dc.Fill)
			h.fill = dc.Fill
		}
		if dc.PointSize > 0 && dc.PointSize != h.pointSize {
			h.dev.SetPointSize(dc.PointSize)
			h.pointSize = dc.PointSize
		}
		h.geometry.Draw(dc)
	}
	h.geometry.Unbind()
}

// release releases everything in the reverse order of acquisition.
func (h *Harness) release() {
	h.state = Closing
	h.geometry.Release()
	h.program.Release()
	if h.win != nil {
		h.win.SetKeyCallback(nil)
		h.win.SetFramebufferSizeCallback(nil)
		h.win.Close()
	}
}
