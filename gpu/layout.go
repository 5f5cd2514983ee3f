// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"slices"
)

// Attribute describes how one per-vertex attribute is read from
// an interleaved vertex buffer.
type Attribute struct {

	// Location is the shader input location.
	Location uint32

	// Size is the number of float components (1-4).
	Size int

	// Offset is the byte offset of the attribute within a vertex record.
	Offset int
}

// Layout is the record layout of an interleaved float vertex buffer.
type Layout struct {

	// Attributes in record order.
	Attributes []Attribute

	// Stride is the size in bytes of one vertex record.
	Stride int
}

// NewLayout returns a tightly packed layout with one attribute per
// given component count, at locations 0, 1, ... in order.
func NewLayout(sizes ...int) Layout {
	l := Layout{Attributes: make([]Attribute, len(sizes))}
	off := 0
	for i, sz := range sizes {
		l.Attributes[i] = Attribute{Location: uint32(i), Size: sz, Offset: off}
		off += sz * FloatBytes
	}
	l.Stride = off
	return l
}

// Commonly used layouts.
var (
	// Position3 is a single 3-component position.
	Position3 = NewLayout(3)

	// Position2Color3 is a 2-component position followed by an RGB color.
	Position2Color3 = NewLayout(2, 3)
)

// Components returns the number of floats in one vertex record.
func (l Layout) Components() int {
	return l.Stride / FloatBytes
}

// Validate checks that the attributes fit within the stride
// and have sizes the graphics API accepts.
func (l Layout) Validate() error {
	if len(l.Attributes) == 0 {
		return errors.New("gpu.Layout: no attributes")
	}
	if l.Stride <= 0 || l.Stride%FloatBytes != 0 {
		return fmt.Errorf("gpu.Layout: invalid stride %d", l.Stride)
	}
	for _, a := range l.Attributes {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("gpu.Layout: attribute %d has invalid size %d", a.Location, a.Size)
		}
		if a.Offset < 0 || a.Offset+a.Size*FloatBytes > l.Stride {
			return fmt.Errorf("gpu.Layout: attribute %d at offset %d does not fit in stride %d", a.Location, a.Offset, l.Stride)
		}
	}
	return nil
}

// Mesh is a flat list of vertex records in a given layout, with
// optional indices into it.
type Mesh struct {
	Layout   Layout
	Vertices []float32
	Indices  []uint32
}

// NumVertices returns the number of vertex records.
func (m *Mesh) NumVertices() int {
	n := m.Layout.Components()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

// Vertex returns the components of vertex record i.
// The returned slice shares storage with the mesh.
func (m *Mesh) Vertex(i int) []float32 {
	n := m.Layout.Components()
	return m.Vertices[i*n : (i+1)*n : (i+1)*n]
}

// Indexed returns whether the mesh is drawn through indices.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() Mesh {
	return Mesh{
		Layout:   Layout{Attributes: slices.Clone(m.Layout.Attributes), Stride: m.Layout.Stride},
		Vertices: slices.Clone(m.Vertices),
		Indices:  slices.Clone(m.Indices),
	}
}

// Validate checks that the vertices form whole records and
// that every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if err := m.Layout.Validate(); err != nil {
		return err
	}
	n := m.Layout.Components()
	if len(m.Vertices) == 0 {
		return errors.New("gpu.Mesh: no vertices")
	}
	if len(m.Vertices)%n != 0 {
		return fmt.Errorf("gpu.Mesh: %d components is not a whole number of %d-component records", len(m.Vertices), n)
	}
	nv := m.NumVertices()
	for i, idx := range m.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("gpu.Mesh: index %d at position %d is out of range for %d vertices", idx, i, nv)
		}
	}
	return nil
}
