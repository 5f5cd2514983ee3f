// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// Key is a physical key. Only the keys the harness reacts to are named.
type Key int32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
)

var keyNames = [...]string{"Unknown", "Escape", "Enter", "Space"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// KeyAction is what happened to a key.
type KeyAction int32

const (
	Press KeyAction = iota
	Release
	Repeat
)

var keyActionNames = [...]string{"Press", "Release", "Repeat"}

func (a KeyAction) String() string {
	if a < 0 || int(a) >= len(keyActionNames) {
		return "KeyAction?"
	}
	return keyActionNames[a]
}

// KeyEvent is a key press, release or repeat.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}
