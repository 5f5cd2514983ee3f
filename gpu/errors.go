// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"
)

// LoaderError is returned when the graphics function pointers
// could not be resolved for the current context.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("gpu: loading graphics functions: %v", e.Err)
}

func (e *LoaderError) Unwrap() error { return e.Err }

// ShaderCompileError is returned when a shader stage fails to compile.
type ShaderCompileError struct {

	// Stage is the stage that failed.
	Stage ShaderStage

	// Log is the compiler info log.
	Log string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gpu: compiling %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// ProgramLinkError is returned when compiled stages fail to link.
type ProgramLinkError struct {

	// Log is the linker info log.
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("gpu: linking program: %s", strings.TrimSpace(e.Log))
}
