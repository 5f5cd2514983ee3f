// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shapes runs the shape demos in an OpenGL window.
//
//	shapes [flags] spiral | star | triangles | colored
//	shapes list
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/shapes/base/errors"
	"cogentcore.org/shapes/gpu/glgpu"
	"cogentcore.org/shapes/harness"
	"cogentcore.org/shapes/system/driver/desktop"
)

func init() {
	// must lock main thread for the window system and GL context
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	p := harness.Platform{OpenWindow: desktop.Open, LoadDevice: glgpu.Load}
	cmd := newRootCmd(p, os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		errors.Log(err)
		os.Exit(-1)
	}
}
