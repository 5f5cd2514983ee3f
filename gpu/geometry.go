// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Geometry is a static mesh uploaded to a [Device], bundling its
// buffers and attribute bindings so that drawing only needs [Geometry.Bind].
// The data is uploaded once and never changes afterward.
type Geometry struct {
	dev     Device
	mesh    Mesh
	handles GeometryHandles
}

// BuildGeometry validates mesh and uploads a copy of it to dev.
func BuildGeometry(dev Device, mesh Mesh) (*Geometry, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	g := &Geometry{dev: dev, mesh: mesh.Clone()}
	g.handles = dev.CreateGeometry(g.mesh.Layout, g.mesh.Vertices, g.mesh.Indices)
	slog.Debug("gpu: uploaded geometry", "vertices", g.mesh.NumVertices(), "indices", len(g.mesh.Indices), "stride", g.mesh.Layout.Stride)
	return g, nil
}

// Handles returns the device objects backing the geometry.
func (g *Geometry) Handles() GeometryHandles {
	return g.handles
}

// Mesh returns a copy of the uploaded mesh.
func (g *Geometry) Mesh() Mesh {
	return g.mesh.Clone()
}

// NumVertices returns the number of uploaded vertex records.
func (g *Geometry) NumVertices() int {
	return g.mesh.NumVertices()
}

// NumIndices returns the number of uploaded indices.
func (g *Geometry) NumIndices() int {
	return len(g.mesh.Indices)
}

// Bind binds the geometry's vertex array for drawing.
func (g *Geometry) Bind() {
	g.dev.BindVertexArray(g.handles.VertexArray)
}

// Unbind unbinds any vertex array.
func (g *Geometry) Unbind() {
	g.dev.BindVertexArray(0)
}

// Draw issues the draw call against the geometry, which must be bound.
// The draw call must have been checked with [DrawCall.Validate].
func (g *Geometry) Draw(dc DrawCall) {
	count := dc.resolveCount(g)
	if dc.Indexed {
		g.dev.DrawElements(dc.Topology, dc.First, count)
		return
	}
	g.dev.DrawArrays(dc.Topology, dc.First, count)
}

// Release deletes the geometry's device objects. It is safe to call
// more than once.
func (g *Geometry) Release() {
	if g == nil || g.handles == (GeometryHandles{}) {
		return
	}
	g.dev.DeleteGeometry(g.handles)
	g.handles = GeometryHandles{}
}

// DrawCall is one draw of a [Geometry] with its rasterization state.
type DrawCall struct {

	// Topology assembles the vertices into primitives.
	Topology Topology

	// Fill is the polygon fill mode for this draw.
	Fill FillMode

	// PointSize, if > 0, sets the point diameter for this draw.
	PointSize float32

	// First is the first vertex, or first index when Indexed.
	First int

	// Count is the number of vertices (or indices) to draw;
	// 0 means all of them from First on.
	Count int

	// Indexed draws through the geometry's index buffer.
	Indexed bool
}

func (dc DrawCall) available(g *Geometry) int {
	if dc.Indexed {
		return g.NumIndices()
	}
	return g.NumVertices()
}

func (dc DrawCall) resolveCount(g *Geometry) int {
	if dc.Count == 0 {
		return dc.available(g) - dc.First
	}
	return dc.Count
}

// Validate checks that the draw call stays within the geometry.
func (dc DrawCall) Validate(g *Geometry) error {
	if dc.Indexed && g.NumIndices() == 0 {
		return fmt.Errorf("gpu.DrawCall: indexed %s draw on geometry without indices", dc.Topology)
	}
	avail := dc.available(g)
	if dc.First < 0 || dc.Count < 0 || dc.First+dc.resolveCount(g) > avail || dc.First >= avail {
		return fmt.Errorf("gpu.DrawCall: %s draw of %d from %d exceeds the %d available", dc.Topology, dc.Count, dc.First, avail)
	}
	return nil
}
