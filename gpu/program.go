// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "log/slog"

// ShaderSource is the source code of a vertex and fragment shader pair.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Program is a linked shader program.
type Program struct {
	dev    Device
	handle uint32
}

// BuildProgram compiles both stages of src and links them into a
// [Program]. A stage that fails to compile yields a [*ShaderCompileError]
// and a failed link a [*ProgramLinkError]. The intermediate stage objects
// are deleted before returning, whether or not the build succeeded.
func BuildProgram(dev Device, src ShaderSource) (*Program, error) {
	vs, err := compileStage(dev, VertexShader, src.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(dev, FragmentShader, src.Fragment)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}
	handle, log, ok := dev.LinkProgram(vs, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	if !ok {
		dev.DeleteProgram(handle)
		return nil, &ProgramLinkError{Log: log}
	}
	slog.Debug("gpu: linked program", "handle", handle)
	return &Program{dev: dev, handle: handle}, nil
}

func compileStage(dev Device, stage ShaderStage, src string) (uint32, error) {
	sh, log, ok := dev.CompileShader(stage, src)
	if !ok {
		dev.DeleteShader(sh)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

// Handle returns the device handle of the program, or 0 once released.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes the program current for drawing.
func (pr *Program) Use() {
	pr.dev.UseProgram(pr.handle)
}

// Release deletes the program. It is safe to call more than once.
func (pr *Program) Release() {
	if pr == nil || pr.handle == 0 {
		return
	}
	pr.dev.DeleteProgram(pr.handle)
	pr.handle = 0
}
