// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	opts := &NewWindowOptions{Size: image.Pt(800, 600), Title: "Estrela"}
	assert.NoError(t, opts.Validate())

	for _, size := range []image.Point{{0, 600}, {800, 0}, {0, 0}, {-1, 600}} {
		opts.Size = size
		err := opts.Validate()
		var wce *WindowCreationError
		if assert.ErrorAs(t, err, &wce, size) {
			assert.Equal(t, "Estrela", wce.Title)
		}
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("X11: the DISPLAY environment variable is missing")
	err := error(&InitError{Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DISPLAY")

	err = &WindowCreationError{Title: "Espiral", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"Espiral"`)
}

func TestKeyStrings(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Unknown", Key(99).String())
	assert.Equal(t, "Press", Press.String())
	assert.Equal(t, "Repeat", Repeat.String())
}
