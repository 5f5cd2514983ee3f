// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// InitError is returned when the windowing system cannot be initialized.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("system: initializing windowing system: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// WindowCreationError is returned when no window or graphics context
// could be created, for example for an unsupported OpenGL version.
type WindowCreationError struct {
	Title string
	Err   error
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("system: creating window %q: %v", e.Title, e.Err)
}

func (e *WindowCreationError) Unwrap() error { return e.Err }
