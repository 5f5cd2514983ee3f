// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/shapes/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CreateGeometry uploads the data with STATIC_DRAW usage. The index
// buffer is bound while the vertex array is bound, so that the vertex
// array records it.
func (dv *Device) CreateGeometry(layout gpu.Layout, vertices []float32, indices []uint32) gpu.GeometryHandles {
	var h gpu.GeometryHandles
	gl.GenVertexArrays(1, &h.VertexArray)
	gl.BindVertexArray(h.VertexArray)

	gl.GenBuffers(1, &h.VertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*gpu.FloatBytes, gl.Ptr(vertices), gl.STATIC_DRAW)

	for _, a := range layout.Attributes {
		gl.VertexAttribPointer(a.Location, int32(a.Size), gl.FLOAT, false, int32(layout.Stride), gl.PtrOffset(a.Offset))
		gl.EnableVertexAttribArray(a.Location)
	}

	if len(indices) > 0 {
		gl.GenBuffers(1, &h.IndexBuffer)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.IndexBuffer)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return h
}

func (dv *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteGeometry deletes the vertex array and its buffers.
func (dv *Device) DeleteGeometry(h gpu.GeometryHandles) {
	if h.VertexArray != 0 {
		gl.DeleteVertexArrays(1, &h.VertexArray)
	}
	if h.VertexBuffer != 0 {
		gl.DeleteBuffers(1, &h.VertexBuffer)
	}
	if h.IndexBuffer != 0 {
		gl.DeleteBuffers(1, &h.IndexBuffer)
	}
}
