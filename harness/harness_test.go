// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/gpu/gputest"
	"cogentcore.org/shapes/harness"
	"cogentcore.org/shapes/shapes"
	"cogentcore.org/shapes/system"
	"cogentcore.org/shapes/system/systemtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShaders = gpu.ShaderSource{
	Vertex:   "#version 330 core\nvoid main() {}\n",
	Fragment: "#version 330 core\nout vec4 color;\nvoid main() { color = vec4(1); }\n",
}

func coloredConfig() *harness.Config {
	return &harness.Config{
		Title:      "Triangulo Colorido",
		Size:       harness.DefaultSize,
		Shaders:    testShaders,
		Geometry:   shapes.ColoredTriangle,
		Draws:      []gpu.DrawCall{{Topology: gpu.Triangles, Indexed: true, Count: 3}},
		ClearColor: color.RGBA{255, 255, 255, 255},
	}
}

func trianglesConfig() *harness.Config {
	return &harness.Config{
		Title:    "Triangles",
		Size:     harness.DefaultSize,
		Shaders:  testShaders,
		Geometry: shapes.Triangles,
		Draws: []gpu.DrawCall{
			{Topology: gpu.Triangles, Fill: gpu.FillSolid, Count: 6},
			{Topology: gpu.Triangles, Fill: gpu.FillLine, Count: 6},
			{Topology: gpu.Triangles, Fill: gpu.FillPoint, PointSize: 5, Count: 6},
		},
	}
}

type testPlatform struct {
	win *systemtest.Window
	dev *gputest.Recorder
}

func newTestPlatform(t *testing.T) *testPlatform {
	win, err := systemtest.NewWindow(&system.NewWindowOptions{Size: image.Pt(1, 1)})
	require.NoError(t, err)
	return &testPlatform{win: win, dev: gputest.NewRecorder()}
}

func (tp *testPlatform) Platform() harness.Platform {
	return harness.Platform{
		OpenWindow: systemtest.Opener(tp.win),
		LoadDevice: func() (gpu.Device, error) { return tp.dev, nil },
	}
}

func TestNewValidates(t *testing.T) {
	cfg := coloredConfig()
	cfg.Geometry = nil
	_, err := harness.New(cfg)
	assert.Error(t, err)

	cfg = coloredConfig()
	cfg.Draws = nil
	_, err = harness.New(cfg)
	assert.Error(t, err)

	cfg = coloredConfig()
	cfg.GLVersion = "3.1"
	_, err = harness.New(cfg)
	assert.Error(t, err)

	cfg = coloredConfig()
	cfg.GLVersion = "3.2"
	cfg.Shaders.Vertex = "#version 400\nvoid main() {}\n"
	_, err = harness.New(cfg)
	assert.ErrorContains(t, err, "needs OpenGL 4.0")
}

func TestColoredEndToEnd(t *testing.T) {
	tp := newTestPlatform(t)
	cfg := coloredConfig()
	cfg.MaxFrames = 1
	h, err := harness.New(cfg)
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background(), tp.Platform()))

	assert.Equal(t, harness.Closing, h.State())
	assert.Equal(t, 1, h.Frames())
	assert.Equal(t, "Triangulo Colorido", tp.win.Options.Title)
	assert.Equal(t, 4, tp.win.Options.GLMajor)
	assert.Equal(t, 1, tp.win.Options.GLMinor)

	require.Len(t, tp.dev.Geometries, 1)
	geom := tp.dev.Geometries[0]
	require.Len(t, geom.Layout.Attributes, 2)
	assert.Equal(t, gpu.Attribute{Location: 0, Size: 2, Offset: 0}, geom.Layout.Attributes[0])
	assert.Equal(t, gpu.Attribute{Location: 1, Size: 3, Offset: 8}, geom.Layout.Attributes[1])
	assert.Equal(t, 20, geom.Layout.Stride)
	assert.Equal(t, []uint32{0, 1, 2}, geom.Indices)

	require.Len(t, tp.dev.Draws, 1)
	d := tp.dev.Draws[0]
	assert.Equal(t, gpu.Triangles, d.Topology)
	assert.True(t, d.Indexed)
	assert.Equal(t, 3, d.Count)
	assert.Equal(t, geom.Handles.VertexArray, d.VertexArray)
	assert.NotZero(t, d.Program)

	assert.Equal(t, [4]float32{1, 1, 1, 1}, tp.dev.ClearRGBA)
	assert.Equal(t, [2]int{800, 600}, tp.dev.ViewSize)
	assert.Equal(t, 1, tp.win.Swaps)
	assert.True(t, tp.win.Closed)
	assert.Empty(t, tp.dev.Live())
}

func TestGeometryUploadedOnce(t *testing.T) {
	tp := newTestPlatform(t)
	cfg := trianglesConfig()
	cfg.MaxFrames = 5
	require.NoError(t, harness.Run(context.Background(), cfg, tp.Platform()))

	assert.Equal(t, 1, tp.dev.Count("CreateGeometry"))
	assert.Equal(t, 1, tp.dev.Count("UseProgram"))
	assert.Equal(t, 5, tp.dev.Clears)
	require.Len(t, tp.dev.Draws, 15)
	// after the first frame every frame issues the same draws
	for i := 6; i < len(tp.dev.Draws); i++ {
		assert.Equal(t, tp.dev.Draws[i-3], tp.dev.Draws[i])
	}
	assert.Equal(t, shapes.Triangles().Vertices, tp.dev.Geometries[0].Vertices)
}

func TestFillModes(t *testing.T) {
	tp := newTestPlatform(t)
	cfg := trianglesConfig()
	cfg.MaxFrames = 2
	require.NoError(t, harness.Run(context.Background(), cfg, tp.Platform()))

	require.Len(t, tp.dev.Draws, 6)
	assert.Equal(t, gpu.FillSolid, tp.dev.Draws[0].Fill)
	assert.Equal(t, gpu.FillLine, tp.dev.Draws[1].Fill)
	assert.Equal(t, gpu.FillPoint, tp.dev.Draws[2].Fill)
	assert.Equal(t, float32(5), tp.dev.Draws[2].PointSize)
	assert.Equal(t, gpu.FillSolid, tp.dev.Draws[3].Fill)

	// point size only changes once
	assert.Equal(t, 1, tp.dev.Count("SetPointSize"))
	assert.Equal(t, 5, tp.dev.Count("SetFillMode"))
}

func TestEscapeCloses(t *testing.T) {
	tp := newTestPlatform(t)
	tp.win.KeyAt(3, system.KeyEnter, system.Press)
	tp.win.KeyAt(3, system.KeyEscape, system.Release)
	tp.win.KeyAt(4, system.KeyEscape, system.Press)
	h, err := harness.New(coloredConfig())
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background(), tp.Platform()))

	assert.Equal(t, harness.Closing, h.State())
	assert.Equal(t, 4, tp.win.Polls)
	assert.Equal(t, 3, h.Frames())
	assert.Equal(t, 3, tp.win.Swaps)
	assert.Len(t, tp.dev.Draws, 3)
	assert.True(t, tp.win.Closed)
	assert.Equal(t, 1, tp.win.CloseCalls)
	assert.Empty(t, tp.dev.Live())
}

func TestHandleKey(t *testing.T) {
	tp := newTestPlatform(t)
	var h *harness.Harness
	tp.win.OnPoll = func(w *systemtest.Window, poll int) {
		h.HandleKey(system.KeyEvent{Key: system.KeySpace, Action: system.Press})
		assert.False(t, w.ShouldClose())
		h.HandleKey(system.KeyEvent{Key: system.KeyEscape, Action: system.Repeat})
		assert.False(t, w.ShouldClose())
		h.HandleKey(system.KeyEvent{Key: system.KeyEscape, Action: system.Press})
		assert.True(t, w.ShouldClose())
	}
	var err error
	h, err = harness.New(coloredConfig())
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background(), tp.Platform()))
	assert.Zero(t, h.Frames())
	assert.Empty(t, tp.dev.Draws)
}

func TestContextCancel(t *testing.T) {
	tp := newTestPlatform(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tp.win.OnPoll = func(w *systemtest.Window, poll int) {
		if poll == 2 {
			cancel()
		}
	}
	h, err := harness.New(coloredConfig())
	require.NoError(t, err)
	require.NoError(t, h.Run(ctx, tp.Platform()))
	assert.Equal(t, 1, h.Frames())
	assert.True(t, tp.win.Closed)
}

func TestResize(t *testing.T) {
	tp := newTestPlatform(t)
	tp.win.ResizeAt(2, image.Pt(1024, 768))
	cfg := coloredConfig()
	cfg.MaxFrames = 3
	require.NoError(t, harness.Run(context.Background(), cfg, tp.Platform()))
	assert.Equal(t, [2]int{1024, 768}, tp.dev.ViewSize)
	assert.Equal(t, 2, tp.dev.Count("Viewport"))
}

func TestZeroSize(t *testing.T) {
	tp := newTestPlatform(t)
	cfg := coloredConfig()
	cfg.Size = image.Pt(0, 600)
	err := harness.Run(context.Background(), cfg, tp.Platform())
	var we *system.WindowCreationError
	require.ErrorAs(t, err, &we)
	assert.Zero(t, tp.dev.Count("CompileShader"))
	assert.False(t, tp.win.Closed)
}

func TestCompileError(t *testing.T) {
	tp := newTestPlatform(t)
	tp.dev.CompileFail = map[gpu.ShaderStage]string{gpu.FragmentShader: "0:3: syntax error"}
	err := harness.Run(context.Background(), coloredConfig(), tp.Platform())
	var ce *gpu.ShaderCompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gpu.FragmentShader, ce.Stage)
	assert.Empty(t, tp.dev.Live())
	assert.Zero(t, tp.dev.Count("CreateGeometry"))
	assert.True(t, tp.win.Closed)
}

func TestLinkError(t *testing.T) {
	tp := newTestPlatform(t)
	tp.dev.LinkFail = "undefined symbol"
	err := harness.Run(context.Background(), coloredConfig(), tp.Platform())
	var le *gpu.ProgramLinkError
	require.ErrorAs(t, err, &le)
	assert.Empty(t, tp.dev.Live())
	assert.True(t, tp.win.Closed)
}

func TestLoaderError(t *testing.T) {
	tp := newTestPlatform(t)
	p := tp.Platform()
	p.LoadDevice = func() (gpu.Device, error) { return nil, errors.New("no context") }
	err := harness.Run(context.Background(), coloredConfig(), p)
	var le *gpu.LoaderError
	require.ErrorAs(t, err, &le)
	assert.ErrorContains(t, err, "no context")
	assert.True(t, tp.win.Closed)
}

func TestBadDraw(t *testing.T) {
	tp := newTestPlatform(t)
	cfg := coloredConfig()
	cfg.Draws[0].Count = 4
	err := harness.Run(context.Background(), cfg, tp.Platform())
	assert.Error(t, err)
	assert.Empty(t, tp.dev.Live())
	assert.True(t, tp.win.Closed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", harness.Running.String())
	assert.Equal(t, "Closing", harness.Closing.String())
	assert.Equal(t, "State(7)", harness.State(7).String())
}
