// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes generates the vertex data of simple 2D shapes in
// normalized device coordinates, as [gpu.Mesh] values ready for upload.
// Every generator is deterministic: the same arguments always give
// bit-identical meshes.
package shapes

import (
	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/math32"
)

// Parameters of the spiral and star demos.
const (
	SpiralPoints = 1000
	SpiralA      = 0.05
	SpiralB      = 0.05
	SpiralStep   = 0.1

	StarPoints = 5
	StarOuter  = 0.5
	StarInner  = 0.2
)

// Spiral returns n points of the Archimedean spiral r = a + bθ,
// with θ advancing by step per point, as 3-component positions with z = 0.
// It is meant to be drawn as a [gpu.LineStrip].
func Spiral(n int, a, b, step float32) gpu.Mesh {
	verts := make([]float32, 0, n*3)
	for i := range n {
		theta := float32(i) * step
		r := a + b*theta
		verts = math32.Vector3FromVector2(math32.Polar2(r, theta), 0).Append(verts)
	}
	return gpu.Mesh{Layout: gpu.Position3, Vertices: verts}
}

// Star returns a star with the given number of points, which must be
// at least 2, as 3-component positions meant to be drawn as a
// [gpu.TriangleFan]. The center comes first, then 2*points vertices
// alternating between the outer and inner radius starting at angle 0,
// then a copy of the first outer vertex to close the fan. That is
// 2 + 2*points vertices in total.
func Star(points int, outer, inner float32) gpu.Mesh {
	verts := make([]float32, 0, (2+2*points)*3)
	verts = math32.Vec3(0, 0, 0).Append(verts)
	for i := range 2 * points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float32(i) * math32.Pi / float32(points)
		verts = math32.Vector3FromVector2(math32.Polar2(r, angle), 0).Append(verts)
	}
	verts = math32.Vector3FromVector2(math32.Polar2(outer, 0), 0).Append(verts)
	return gpu.Mesh{Layout: gpu.Position3, Vertices: verts}
}

// Triangles returns two triangles sharing the edge from (0.5, -0.5)
// to (0, 0.5), as six 3-component positions drawn as [gpu.Triangles].
func Triangles() gpu.Mesh {
	return gpu.Mesh{
		Layout: gpu.Position3,
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,

			0.5, -0.5, 0.0,
			1.0, 0.5, 0.0,
			0.0, 0.5, 0.0,
		},
	}
}

// ColoredTriangle returns a triangle with red, green and blue corners,
// as 2-component positions followed by RGB colors, with 3 indices.
func ColoredTriangle() gpu.Mesh {
	return gpu.Mesh{
		Layout: gpu.Position2Color3,
		Vertices: []float32{
			0.0, 1.0, 1.0, 0.0, 0.0,
			-1.0, -1.0, 0.0, 1.0, 0.0,
			1.0, -1.0, 0.0, 0.0, 1.0,
		},
		Indices: []uint32{0, 1, 2},
	}
}
