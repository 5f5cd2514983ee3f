// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ShaderStage is a programmable stage of the pipeline.
type ShaderStage int32

const (
	// VertexShader transforms each vertex.
	VertexShader ShaderStage = iota

	// FragmentShader colors each fragment.
	FragmentShader
)

var shaderStageNames = [...]string{"vertex", "fragment"}

func (s ShaderStage) String() string {
	if s < 0 || int(s) >= len(shaderStageNames) {
		return fmt.Sprintf("ShaderStage(%d)", int32(s))
	}
	return shaderStageNames[s]
}

// Topology determines how a sequence of vertices is assembled into primitives.
type Topology int32

const (
	// Points draws each vertex as a point.
	Points Topology = iota

	// Lines draws each pair of vertices as a separate line.
	Lines

	// LineStrip draws a connected line through all vertices.
	LineStrip

	// LineLoop is a LineStrip that also connects the last vertex to the first.
	LineLoop

	// Triangles draws each group of three vertices as a separate triangle.
	Triangles

	// TriangleStrip draws a triangle for each vertex after the first two,
	// using the previous two vertices.
	TriangleStrip

	// TriangleFan draws a triangle for each vertex after the first two,
	// using the first vertex and the previous one.
	TriangleFan
)

var topologyNames = [...]string{"points", "lines", "line-strip", "line-loop", "triangles", "triangle-strip", "triangle-fan"}

func (t Topology) String() string {
	if t < 0 || int(t) >= len(topologyNames) {
		return fmt.Sprintf("Topology(%d)", int32(t))
	}
	return topologyNames[t]
}

// FillMode determines how polygons are rasterized.
type FillMode int32

const (
	// FillSolid fills the interior of polygons. This is the default.
	FillSolid FillMode = iota

	// FillLine draws only polygon edges.
	FillLine

	// FillPoint draws only polygon vertices.
	FillPoint
)

var fillModeNames = [...]string{"solid", "line", "point"}

func (f FillMode) String() string {
	if f < 0 || int(f) >= len(fillModeNames) {
		return fmt.Sprintf("FillMode(%d)", int32(f))
	}
	return fillModeNames[f]
}
