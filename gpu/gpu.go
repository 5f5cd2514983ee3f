// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the graphics side of the shapes render harness:
// compiling and linking a shader program, uploading static geometry,
// and issuing draw calls against it.
//
// All calls go through a [Device], which is implemented for OpenGL
// by package glgpu and by a recording fake in package gputest.
// A Device is bound to one graphics context and, like that context,
// must only be used from the thread that made it current.
package gpu

// FloatBytes is the size in bytes of one vertex component.
const FloatBytes = 4

// Device is the subset of a graphics API needed by the harness.
// Handles are the API's own object names; 0 is never a valid object.
type Device interface {
	// CompileShader creates a shader object of the given stage and
	// compiles src into it. It returns the object even when compilation
	// fails, along with the info log and whether it succeeded.
	CompileShader(stage ShaderStage, src string) (shader uint32, log string, ok bool)

	// DeleteShader deletes a shader object.
	DeleteShader(shader uint32)

	// LinkProgram creates a program from the given compiled shaders and
	// links it. It returns the program even when linking fails.
	LinkProgram(shaders ...uint32) (program uint32, log string, ok bool)

	// UseProgram makes the program current for drawing.
	UseProgram(program uint32)

	// DeleteProgram deletes a program object.
	DeleteProgram(program uint32)

	// CreateGeometry uploads the vertices (and indices, if any) as static
	// buffers and records the attribute bindings of layout in a new
	// vertex array. No vertex array is bound on return.
	CreateGeometry(layout Layout, vertices []float32, indices []uint32) GeometryHandles

	// BindVertexArray binds the given vertex array; 0 unbinds.
	BindVertexArray(vao uint32)

	// DeleteGeometry deletes the objects created by CreateGeometry.
	DeleteGeometry(h GeometryHandles)

	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer.
	Clear()

	// Viewport sets the drawing area in framebuffer pixels.
	Viewport(width, height int)

	// SetFillMode sets how triangles are rasterized.
	SetFillMode(mode FillMode)

	// SetPointSize sets the rasterized diameter of points.
	SetPointSize(size float32)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(top Topology, first, count int)

	// DrawElements draws count indices starting at index first
	// from the bound index buffer.
	DrawElements(top Topology, first, count int)
}

// GeometryHandles are the device objects that make up a [Geometry].
type GeometryHandles struct {

	// VertexArray holds the attribute bindings.
	VertexArray uint32

	// VertexBuffer holds the vertex components.
	VertexBuffer uint32

	// IndexBuffer holds the indices; 0 for non-indexed geometry.
	IndexBuffer uint32
}
