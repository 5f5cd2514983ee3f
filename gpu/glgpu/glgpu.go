// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Device] on OpenGL 4.1 core profile.
package glgpu

import (
	"log/slog"

	"cogentcore.org/shapes/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ gpu.Device = (*Device)(nil)

// Device is the OpenGL implementation of [gpu.Device]. It uses
// whatever context is current on the calling thread.
type Device struct{}

// Load resolves the OpenGL function pointers for the context that is
// current on the calling thread and returns a [Device] for it.
// Failure is returned as a [*gpu.LoaderError].
func Load() (gpu.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, &gpu.LoaderError{Err: err}
	}
	slog.Info("glgpu: loaded OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Device{}, nil
}

var glStages = map[gpu.ShaderStage]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glTopologies = map[gpu.Topology]uint32{
	gpu.Points:        gl.POINTS,
	gpu.Lines:         gl.LINES,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.LineLoop:      gl.LINE_LOOP,
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.TriangleFan:   gl.TRIANGLE_FAN,
}

var glFillModes = map[gpu.FillMode]uint32{
	gpu.FillSolid: gl.FILL,
	gpu.FillLine:  gl.LINE,
	gpu.FillPoint: gl.POINT,
}
