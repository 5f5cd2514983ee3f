// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

var versionDirective = regexp.MustCompile(`(?m)^[ \t]*#version[ \t]+(\d+)`)

// GLSL versions before 3.30 do not follow the OpenGL version number.
var legacyGLSL = map[int]string{
	110: "2.0",
	120: "2.1",
	130: "3.0",
	140: "3.1",
	150: "3.2",
}

// GLSLVersion returns the OpenGL version required by the #version
// directive of the given shader source, e.g. 4.0.0 for "#version 400".
func GLSLVersion(src string) (*semver.Version, error) {
	m := versionDirective.FindStringSubmatch(src)
	if m == nil {
		return nil, fmt.Errorf("gpu.GLSLVersion: no #version directive")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("gpu.GLSLVersion: %w", err)
	}
	if v, ok := legacyGLSL[n]; ok {
		return semver.NewVersion(v)
	}
	if n < 330 {
		return nil, fmt.Errorf("gpu.GLSLVersion: unknown GLSL version %d", n)
	}
	return semver.NewVersion(fmt.Sprintf("%d.%d", n/100, (n%100)/10))
}

// ParseContextVersion parses an OpenGL context version such as "4.1".
func ParseContextVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("gpu: invalid OpenGL version %q: %w", s, err)
	}
	if v.Major() < 3 || (v.Major() == 3 && v.Minor() < 2) {
		return nil, fmt.Errorf("gpu: OpenGL %s has no core profile; need 3.2 or later", v)
	}
	return v, nil
}

// CheckContextVersion returns an error if any of the shader sources
// needs a newer OpenGL version than ctx.
func CheckContextVersion(ctx *semver.Version, srcs ...string) error {
	for _, src := range srcs {
		need, err := GLSLVersion(src)
		if err != nil {
			return err
		}
		if need.GreaterThan(ctx) {
			return fmt.Errorf("gpu: shader needs OpenGL %d.%d but the context is %d.%d", need.Major(), need.Minor(), ctx.Major(), ctx.Minor())
		}
	}
	return nil
}
