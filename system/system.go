// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the operating system window interface used
// by the shapes render harness: one window with a current graphics
// context, its event queue, and buffer presentation.
package system

import (
	"fmt"
	"image"
)

// Window is an OS window that owns the current graphics context and
// the event queue of the process. There is exactly one per process,
// and all of its methods must be called from the thread that opened it.
type Window interface {

	// ShouldClose returns whether closing the window has been requested,
	// either by the user through the OS or by [Window.SetShouldClose].
	ShouldClose() bool

	// SetShouldClose sets the close request flag.
	SetShouldClose(close bool)

	// PollEvents processes pending events, calling the registered
	// callbacks synchronously, and returns without waiting.
	PollEvents()

	// SwapBuffers presents the back buffer. With vsync on,
	// it may block until the next vertical blank.
	SwapBuffers()

	// FramebufferSize returns the current framebuffer size in pixels.
	FramebufferSize() image.Point

	// SetKeyCallback registers the function called for key events
	// during [Window.PollEvents].
	SetKeyCallback(fun func(ev KeyEvent))

	// SetFramebufferSizeCallback registers the function called when the
	// framebuffer is resized.
	SetFramebufferSizeCallback(fun func(size image.Point))

	// Close destroys the window and shuts down the windowing system.
	// It is safe to call more than once.
	Close()
}

// NewWindowOptions are the options for opening a [Window].
type NewWindowOptions struct {

	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Title is the window title.
	Title string

	// GLMajor and GLMinor are the requested OpenGL core profile version.
	GLMajor int
	GLMinor int

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

// Validate returns a [*WindowCreationError] if no window could be
// created with the options.
func (o *NewWindowOptions) Validate() error {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		return &WindowCreationError{Title: o.Title, Err: fmt.Errorf("invalid size %dx%d", o.Size.X, o.Size.Y)}
	}
	return nil
}
