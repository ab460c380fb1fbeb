// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user logging level and colored terminal
// output on top of [log/slog].
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. Changes take effect
// immediately in the handlers made by [NewHandler].
var UserLevel = defaultUserLevel

// UseColor is whether to use color in terminal output.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - debug: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// debug and quiet are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// userLeveler is a [slog.Leveler] that always returns [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a new text [slog.Handler] writing to w, showing
// messages at or above [UserLevel], with the level colored.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelColor(lvl, lvl.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one using
// [NewHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// ApplyColor applies the given color to the given string, if [UseColor]
// is on and the terminal supports color.
func ApplyColor(c termenv.Color, str string) string {
	if !UseColor {
		return str
	}
	p := termenv.ColorProfile()
	return termenv.String(str).Foreground(p.Convert(c)).String()
}

// LevelColor applies the color for the given level to the given string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return str
	default:
		return DebugColor(str)
	}
}

// ErrorColor applies the error color to the given string.
func ErrorColor(str string) string {
	return ApplyColor(termenv.ANSIRed, str)
}

// WarnColor applies the warning color to the given string.
func WarnColor(str string) string {
	return ApplyColor(termenv.ANSIYellow, str)
}

// SuccessColor applies the success color to the given string.
func SuccessColor(str string) string {
	return ApplyColor(termenv.ANSIGreen, str)
}

// CmdColor applies the command color to the given string.
func CmdColor(str string) string {
	return ApplyColor(termenv.ANSICyan, str)
}

// DebugColor applies the debug color to the given string.
func DebugColor(str string) string {
	return ApplyColor(termenv.ANSIBrightBlack, str)
}
