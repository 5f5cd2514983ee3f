// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Device] that records every call
// instead of talking to a graphics driver, for use in tests.
package gputest

import (
	"slices"

	"cogentcore.org/shapes/gpu"
)

// Draw is one recorded draw call with the state it was issued under.
type Draw struct {
	Topology    gpu.Topology
	First       int
	Count       int
	Indexed     bool
	VertexArray uint32
	Program     uint32
	Fill        gpu.FillMode
	PointSize   float32
}

// Geometry is one recorded CreateGeometry call.
type Geometry struct {
	Handles  gpu.GeometryHandles
	Layout   gpu.Layout
	Vertices []float32
	Indices  []uint32
}

// Recorder is a [gpu.Device] that records calls. Handles are allocated
// from a counter and tracked until deleted, so tests can check for leaks.
type Recorder struct {

	// CompileFail makes CompileShader fail for the given stage with the log.
	CompileFail map[gpu.ShaderStage]string

	// LinkFail, if set, makes LinkProgram fail with this log.
	LinkFail string

	// Calls is the name of every method called, in order.
	Calls []string

	// Sources holds the compiled source of each shader handle.
	Sources map[uint32]string

	// Geometries holds every CreateGeometry call.
	Geometries []Geometry

	// Draws holds every draw call.
	Draws []Draw

	Program     uint32
	VertexArray uint32
	Fill        gpu.FillMode
	PointSize   float32
	ClearRGBA   [4]float32
	ViewSize    [2]int

	// Clears counts Clear calls.
	Clears int

	next uint32
	live map[uint32]string
}

var _ gpu.Device = (*Recorder)(nil)

// NewRecorder returns a new, empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{Sources: map[uint32]string{}, live: map[uint32]string{}, PointSize: 1}
}

func (r *Recorder) alloc(kind string) uint32 {
	r.next++
	r.live[r.next] = kind
	return r.next
}

func (r *Recorder) free(h uint32) {
	delete(r.live, h)
}

// Live returns the kinds of all handles that have not been deleted,
// sorted.
func (r *Recorder) Live() []string {
	kinds := make([]string, 0, len(r.live))
	for _, k := range r.live {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Count returns how many times the named method was called.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *Recorder) CompileShader(stage gpu.ShaderStage, src string) (uint32, string, bool) {
	r.Calls = append(r.Calls, "CompileShader")
	h := r.alloc("shader")
	r.Sources[h] = src
	if log, ok := r.CompileFail[stage]; ok {
		return h, log, false
	}
	return h, "", true
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.Calls = append(r.Calls, "DeleteShader")
	r.free(shader)
}

func (r *Recorder) LinkProgram(shaders ...uint32) (uint32, string, bool) {
	r.Calls = append(r.Calls, "LinkProgram")
	h := r.alloc("program")
	if r.LinkFail != "" {
		return h, r.LinkFail, false
	}
	return h, "", true
}

func (r *Recorder) UseProgram(program uint32) {
	r.Calls = append(r.Calls, "UseProgram")
	r.Program = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.Calls = append(r.Calls, "DeleteProgram")
	r.free(program)
}

func (r *Recorder) CreateGeometry(layout gpu.Layout, vertices []float32, indices []uint32) gpu.GeometryHandles {
	r.Calls = append(r.Calls, "CreateGeometry")
	h := gpu.GeometryHandles{
		VertexArray:  r.alloc("vertex array"),
		VertexBuffer: r.alloc("vertex buffer"),
	}
	if len(indices) > 0 {
		h.IndexBuffer = r.alloc("index buffer")
	}
	r.Geometries = append(r.Geometries, Geometry{
		Handles:  h,
		Layout:   layout,
		Vertices: slices.Clone(vertices),
		Indices:  slices.Clone(indices),
	})
	return h
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.Calls = append(r.Calls, "BindVertexArray")
	r.VertexArray = vao
}

func (r *Recorder) DeleteGeometry(h gpu.GeometryHandles) {
	r.Calls = append(r.Calls, "DeleteGeometry")
	r.free(h.VertexArray)
	r.free(h.VertexBuffer)
	if h.IndexBuffer != 0 {
		r.free(h.IndexBuffer)
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.Calls = append(r.Calls, "ClearColor")
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, "Clear")
	r.Clears++
}

func (r *Recorder) Viewport(width, height int) {
	r.Calls = append(r.Calls, "Viewport")
	r.ViewSize = [2]int{width, height}
}

func (r *Recorder) SetFillMode(mode gpu.FillMode) {
	r.Calls = append(r.Calls, "SetFillMode")
	r.Fill = mode
}

func (r *Recorder) SetPointSize(size float32) {
	r.Calls = append(r.Calls, "SetPointSize")
	r.PointSize = size
}

func (r *Recorder) DrawArrays(top gpu.Topology, first, count int) {
	r.Calls = append(r.Calls, "DrawArrays")
	r.draw(top, first, count, false)
}

func (r *Recorder) DrawElements(top gpu.Topology, first, count int) {
	r.Calls = append(r.Calls, "DrawElements")
	r.draw(top, first, count, true)
}

func (r *Recorder) draw(top gpu.Topology, first, count int, indexed bool) {
	r.Draws = append(r.Draws, Draw{
		Topology:    top,
		First:       first,
		Count:       count,
		Indexed:     indexed,
		VertexArray: r.VertexArray,
		Program:     r.Program,
		Fill:        r.Fill,
		PointSize:   r.PointSize,
	})
}
