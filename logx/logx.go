// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging setup shared by the shapes
// commands: level selection from command line flags and a
// terminal-aware [slog.Handler].
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [Init] or the command line flags. It defaults to
// [slog.LevelInfo], [slog.LevelDebug] with the "debug" build tag,
// and [slog.LevelWarn] with the "release" build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and quiet are set, it will return [slog.LevelDebug].
func LevelFromFlags(vv, verbose, quiet bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init sets [UserLevel] to the given level and installs a [Handler]
// writing to w as the default [slog.Logger].
func Init(w io.Writer, level slog.Level) *slog.Logger {
	UserLevel = level
	logger := slog.New(NewHandler(w, &UserLevel))
	slog.SetDefault(logger)
	return logger
}
