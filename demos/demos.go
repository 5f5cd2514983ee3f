// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demos provides the shape demos as [harness.Config] values.
package demos

import (
	_ "embed"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/harness"
	"cogentcore.org/shapes/shapes"
)

var (
	//go:embed shaders/position.vert
	positionVert string

	//go:embed shaders/red.frag
	redFrag string

	//go:embed shaders/yellow.frag
	yellowFrag string

	//go:embed shaders/orange.frag
	orangeFrag string

	//go:embed shaders/colored.vert
	coloredVert string

	//go:embed shaders/colored.frag
	coloredFrag string
)

// Demo is a named demo.
type Demo struct {

	// Name is the name the demo is run by.
	Name string

	// Doc is a one line description.
	Doc string

	// New returns a new config for the demo.
	New func() *harness.Config
}

// All are all of the demos, in the order they are listed.
var All = []Demo{
	{"spiral", "an Archimedean spiral drawn as a red line strip", Spiral},
	{"star", "a yellow five-point star drawn as a triangle fan", Star},
	{"triangles", "two orange triangles drawn filled, outlined and as points", Triangles},
	{"colored", "an indexed triangle with a color per vertex", Colored},
}

// Names returns the names of all of the demos.
func Names() []string {
	names := make([]string, len(All))
	for i, d := range All {
		names[i] = d.Name
	}
	return names
}

// Lookup returns a new config for the demo with the given name.
func Lookup(name string) (*harness.Config, error) {
	i := slices.IndexFunc(All, func(d Demo) bool { return d.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("demos: unknown demo %q; have %v", name, Names())
	}
	return All[i].New(), nil
}

// Spiral returns the Archimedean spiral demo.
func Spiral() *harness.Config {
	return &harness.Config{
		Title:   "Espiral de Arquimedes",
		Size:    harness.DefaultSize,
		VSync:   true,
		Shaders: gpu.ShaderSource{Vertex: positionVert, Fragment: redFrag},
		Geometry: func() gpu.Mesh {
			return shapes.Spiral(shapes.SpiralPoints, shapes.SpiralA, shapes.SpiralB, shapes.SpiralStep)
		},
		Draws: []gpu.DrawCall{{Topology: gpu.LineStrip, Count: shapes.SpiralPoints}},
	}
}

// Star returns the five-point star demo.
func Star() *harness.Config {
	return &harness.Config{
		Title:   "Estrela",
		Size:    harness.DefaultSize,
		VSync:   true,
		Shaders: gpu.ShaderSource{Vertex: positionVert, Fragment: yellowFrag},
		Geometry: func() gpu.Mesh {
			return shapes.Star(shapes.StarPoints, shapes.StarOuter, shapes.StarInner)
		},
		Draws: []gpu.DrawCall{{Topology: gpu.TriangleFan, Count: 2 + 2*shapes.StarPoints}},
	}
}

// Triangles returns the demo that draws the same two triangles
// three times: filled, as outlines, and as points.
func Triangles() *harness.Config {
	return &harness.Config{
		Title:    "Triângulos Preenchidos, Contornos e Pontos",
		Size:     harness.DefaultSize,
		VSync:    true,
		Shaders:  gpu.ShaderSource{Vertex: positionVert, Fragment: orangeFrag},
		Geometry: shapes.Triangles,
		Draws: []gpu.DrawCall{
			{Topology: gpu.Triangles, Fill: gpu.FillSolid, Count: 6},
			{Topology: gpu.Triangles, Fill: gpu.FillLine, Count: 6},
			{Topology: gpu.Triangles, Fill: gpu.FillPoint, PointSize: 5, Count: 6},
		},
	}
}

// Colored returns the indexed colored triangle demo.
func Colored() *harness.Config {
	return &harness.Config{
		Title:      "Triangulo Colorido",
		Size:       harness.DefaultSize,
		VSync:      true,
		Shaders:    gpu.ShaderSource{Vertex: coloredVert, Fragment: coloredFrag},
		Geometry:   shapes.ColoredTriangle,
		Draws:      []gpu.DrawCall{{Topology: gpu.Triangles, Indexed: true, Count: 3}},
		ClearColor: color.Gray16{Y: 0xe666},
	}
}
