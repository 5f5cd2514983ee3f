// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSource = gpu.ShaderSource{
	Vertex:   "#version 400\nvoid main() {}\n",
	Fragment: "#version 400\nout vec4 color;\nvoid main() { color = vec4(1); }\n",
}

func TestBuildProgram(t *testing.T) {
	dev := gputest.NewRecorder()
	pr, err := gpu.BuildProgram(dev, testSource)
	require.NoError(t, err)
	assert.NotZero(t, pr.Handle())

	// stage objects are gone as soon as the program is linked
	assert.Equal(t, []string{"CompileShader", "CompileShader", "LinkProgram", "DeleteShader", "DeleteShader"}, dev.Calls)
	assert.Equal(t, []string{"program"}, dev.Live())
	assert.ElementsMatch(t, []string{testSource.Vertex, testSource.Fragment}, []string{dev.Sources[1], dev.Sources[2]})

	pr.Use()
	assert.Equal(t, pr.Handle(), dev.Program)

	pr.Release()
	pr.Release()
	assert.Empty(t, dev.Live())
	assert.Equal(t, 1, dev.Count("DeleteProgram"))
	assert.Zero(t, pr.Handle())
}

func TestBuildProgramCompileError(t *testing.T) {
	for _, stage := range []gpu.ShaderStage{gpu.VertexShader, gpu.FragmentShader} {
		t.Run(stage.String(), func(t *testing.T) {
			dev := gputest.NewRecorder()
			dev.CompileFail = map[gpu.ShaderStage]string{stage: "0:2(1): error: syntax error\n"}
			pr, err := gpu.BuildProgram(dev, testSource)
			assert.Nil(t, pr)

			var ce *gpu.ShaderCompileError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, stage, ce.Stage)
			assert.Contains(t, ce.Log, "syntax error")
			assert.Contains(t, err.Error(), stage.String()+" shader")
			assert.Zero(t, dev.Count("LinkProgram"))
			assert.Empty(t, dev.Live())
		})
	}
}

func TestBuildProgramLinkError(t *testing.T) {
	dev := gputest.NewRecorder()
	dev.LinkFail = "error: fragment shader output not written\n"
	pr, err := gpu.BuildProgram(dev, testSource)
	assert.Nil(t, pr)

	var le *gpu.ProgramLinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "gpu: linking program: error: fragment shader output not written", err.Error())
	assert.Empty(t, dev.Live())
}

func TestLoaderError(t *testing.T) {
	cause := errors.New("no current context")
	err := error(&gpu.LoaderError{Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no current context")
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "vertex", gpu.VertexShader.String())
	assert.Equal(t, "fragment", gpu.FragmentShader.String())
	assert.Equal(t, "line-strip", gpu.LineStrip.String())
	assert.Equal(t, "triangle-fan", gpu.TriangleFan.String())
	assert.Equal(t, "Topology(42)", gpu.Topology(42).String())
	assert.Equal(t, "point", gpu.FillPoint.String())
	assert.Equal(t, "FillMode(-1)", gpu.FillMode(-1).String())
}
