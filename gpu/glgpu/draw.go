// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/shapes/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (dv *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color buffer of the current render target
func (dv *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (dv *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetFillMode sets the polygon mode for both front and back faces.
func (dv *Device) SetFillMode(mode gpu.FillMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, glFillModes[mode])
}

func (dv *Device) SetPointSize(size float32) {
	gl.PointSize(size)
}

func (dv *Device) DrawArrays(top gpu.Topology, first, count int) {
	gl.DrawArrays(glTopologies[top], int32(first), int32(count))
}

// DrawElements draws from the bound index buffer, which holds
// 32-bit unsigned indices.
func (dv *Device) DrawElements(top gpu.Topology, first, count int) {
	gl.DrawElements(glTopologies[top], int32(count), gl.UNSIGNED_INT, gl.PtrOffset(first*4))
}
