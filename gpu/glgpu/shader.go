// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"cogentcore.org/shapes/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// cString returns src with a null terminator, as required by gl.Strs.
func cString(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// CompileShader compiles the given source for the stage.
// Source must be GLSL 4.10 or earlier.
func (dv *Device) CompileShader(stage gpu.ShaderStage, src string) (uint32, string, bool) {
	handle := gl.CreateShader(glStages[stage])

	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		return handle, strings.TrimRight(msg, "\x00"), false
	}
	return handle, "", true
}

func (dv *Device) DeleteShader(shader uint32) {
	if shader == 0 {
		return
	}
	gl.DeleteShader(shader)
}

// LinkProgram attaches the shaders to a new program and links it.
func (dv *Device) LinkProgram(shaders ...uint32) (uint32, string, bool) {
	handle := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(handle, sh)
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(msg))
		return handle, strings.TrimRight(msg, "\x00"), false
	}
	for _, sh := range shaders {
		gl.DetachShader(handle, sh)
	}
	return handle, "", true
}

func (dv *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (dv *Device) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	gl.DeleteProgram(program)
}
