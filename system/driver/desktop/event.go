// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/shapes/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// physical key
func glfwKey(ky glfw.Key) system.Key {
	switch ky {
	case glfw.KeyEscape:
		return system.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return system.KeyEnter
	case glfw.KeySpace:
		return system.KeySpace
	}
	return system.KeyUnknown
}

func glfwAction(action glfw.Action) system.KeyAction {
	switch action {
	case glfw.Release:
		return system.Release
	case glfw.Repeat:
		return system.Repeat
	}
	return system.Press
}
