// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package systemtest provides a scripted [system.Window] for tests.
package systemtest

import (
	"image"

	"cogentcore.org/shapes/system"
)

// Window is a [system.Window] whose events are scripted by poll number.
// It records how it was used.
type Window struct {

	// Options are the options the window was opened with.
	Options system.NewWindowOptions

	// Polls and Swaps count PollEvents and SwapBuffers calls.
	Polls int
	Swaps int

	// Closed is set by Close; CloseCalls counts calls.
	Closed     bool
	CloseCalls int

	// OnPoll, if set, is called at the start of each PollEvents
	// with the 1-based poll number.
	OnPoll func(w *Window, poll int)

	size        image.Point
	shouldClose bool
	keys        map[int][]system.KeyEvent
	resizes     map[int]image.Point
	keyFun      func(ev system.KeyEvent)
	sizeFun     func(size image.Point)
}

var _ system.Window = (*Window)(nil)

// NewWindow returns a [Window] with the given options, after checking
// them with [system.NewWindowOptions.Validate].
func NewWindow(opts *system.NewWindowOptions) (*Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Window{
		Options: *opts,
		size:    opts.Size,
		keys:    map[int][]system.KeyEvent{},
		resizes: map[int]image.Point{},
	}, nil
}

// Opener returns a function with the signature of desktop.Open that
// opens w, after validating the options and recording them.
func Opener(w *Window) func(opts *system.NewWindowOptions) (system.Window, error) {
	return func(opts *system.NewWindowOptions) (system.Window, error) {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		w.Options = *opts
		w.size = opts.Size
		return w, nil
	}
}

// KeyAt schedules a key event to be delivered during the given poll.
func (w *Window) KeyAt(poll int, key system.Key, action system.KeyAction) {
	w.keys[poll] = append(w.keys[poll], system.KeyEvent{Key: key, Action: action})
}

// ResizeAt schedules a framebuffer resize during the given poll.
func (w *Window) ResizeAt(poll int, size image.Point) {
	w.resizes[poll] = size
}

func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

func (w *Window) SetShouldClose(close bool) {
	w.shouldClose = close
}

func (w *Window) PollEvents() {
	w.Polls++
	if w.OnPoll != nil {
		w.OnPoll(w, w.Polls)
	}
	if sz, ok := w.resizes[w.Polls]; ok {
		w.size = sz
		if w.sizeFun != nil {
			w.sizeFun(sz)
		}
	}
	for _, ev := range w.keys[w.Polls] {
		if w.keyFun != nil {
			w.keyFun(ev)
		}
	}
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) FramebufferSize() image.Point {
	return w.size
}

func (w *Window) SetKeyCallback(fun func(ev system.KeyEvent)) {
	w.keyFun = fun
}

func (w *Window) SetFramebufferSizeCallback(fun func(size image.Point)) {
	w.sizeFun = fun
}

func (w *Window) Close() {
	w.CloseCalls++
	w.Closed = true
}
