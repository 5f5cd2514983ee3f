// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.Window] with GLFW for desktop platforms.
//
// GLFW must only be used from the main thread: the program must call
// [runtime.LockOSThread] in an init function of its main package and
// call [Open] and every window method from main.
package desktop

import (
	"image"
	"log/slog"

	"cogentcore.org/shapes/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	glw *glfw.Window
}

var _ system.Window = (*Window)(nil)

// Open initializes GLFW, creates a window with an OpenGL core profile
// context of the requested version, and makes that context current.
// It returns a [*system.InitError] if GLFW cannot be initialized and a
// [*system.WindowCreationError] if the window cannot be created.
func Open(opts *system.NewWindowOptions) (system.Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, &system.InitError{Err: err}
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &system.WindowCreationError{Title: opts.Title, Err: err}
	}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	slog.Info("desktop: opened window", "title", opts.Title, "width", opts.Size.X, "height", opts.Size.Y, "glMajor", glw.GetAttrib(glfw.ContextVersionMajor), "glMinor", glw.GetAttrib(glfw.ContextVersionMinor))
	return &Window{glw: glw}, nil
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) SetKeyCallback(fun func(ev system.KeyEvent)) {
	if fun == nil {
		w.glw.SetKeyCallback(nil)
		return
	}
	w.glw.SetKeyCallback(func(_ *glfw.Window, ky glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fun(system.KeyEvent{Key: glfwKey(ky), Action: glfwAction(action)})
	})
}

func (w *Window) SetFramebufferSizeCallback(fun func(size image.Point)) {
	if fun == nil {
		w.glw.SetFramebufferSizeCallback(nil)
		return
	}
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fun(image.Pt(width, height))
	})
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}
