// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/shapes/gpu"
	"cogentcore.org/shapes/gpu/gputest"
	"cogentcore.org/shapes/harness"
	"cogentcore.org/shapes/system"
	"cogentcore.org/shapes/system/systemtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	win  *systemtest.Window
	dev  *gputest.Recorder
	out  bytes.Buffer
	logs bytes.Buffer
}

func execute(t *testing.T, args ...string) (*testRun, error) {
	win, err := systemtest.NewWindow(&system.NewWindowOptions{Size: image.Pt(1, 1)})
	require.NoError(t, err)
	tr := &testRun{win: win, dev: gputest.NewRecorder()}
	p := harness.Platform{
		OpenWindow: systemtest.Opener(win),
		LoadDevice: func() (gpu.Device, error) { return tr.dev, nil },
	}
	cmd := newRootCmd(p, &tr.out, &tr.logs)
	cmd.SetArgs(args)
	cmd.SetOut(&tr.out)
	cmd.SetErr(&tr.out)
	return tr, cmd.Execute()
}

func TestList(t *testing.T) {
	tr, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(tr.out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "spiral "))
	assert.True(t, strings.HasPrefix(lines[3], "colored "))
	assert.Zero(t, tr.win.Polls)
}

func TestRunDemo(t *testing.T) {
	tr, err := execute(t, "--frames", "2", "--width", "640", "--vsync=false", "star")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(640, 600), tr.win.Options.Size)
	assert.Equal(t, "Estrela", tr.win.Options.Title)
	assert.False(t, tr.win.Options.VSync)
	assert.Equal(t, 2, tr.win.Swaps)
	require.Len(t, tr.dev.Draws, 2)
	assert.Equal(t, gpu.TriangleFan, tr.dev.Draws[0].Topology)
	assert.True(t, tr.win.Closed)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "shapes.toml")
	require.NoError(t, os.WriteFile(file, []byte("width = 1024\nheight = 768\ntitle = \"From file\"\nframes = 1\n"), 0666))

	tr, err := execute(t, "-c", file, "--height", "500", "-v", "spiral")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1024, 500), tr.win.Options.Size)
	assert.Equal(t, "From file", tr.win.Options.Title)
	assert.Equal(t, 1, tr.win.Swaps)
	assert.Contains(t, tr.logs.String(), "loaded config")
}

func TestErrors(t *testing.T) {
	tr, err := execute(t, "--width", "0", "--frames", "1", "colored")
	var we *system.WindowCreationError
	assert.ErrorAs(t, err, &we)
	assert.Zero(t, tr.win.Polls)

	_, err = execute(t, "--gl", "3.0", "colored")
	assert.ErrorContains(t, err, "core profile")

	_, err = execute(t, "--gl", "3.3", "--frames", "1", "spiral")
	assert.ErrorContains(t, err, "needs OpenGL 4.0")

	_, err = execute(t, "--frames", "x", "spiral")
	assert.Error(t, err)

	_, err = execute(t, "-c", "shapes.json", "spiral")
	assert.Error(t, err)
}
