// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console provides a line based text front end for the scene
// camera editor, with the scene store, the camera editor and the
// viewport all driven from typed commands.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/scenes/base/errors"
	"cogentcore.org/scenes/base/logx"
	"cogentcore.org/scenes/config"
	"cogentcore.org/scenes/editor"
	"cogentcore.org/scenes/scene"
	"cogentcore.org/scenes/viewport"
	"github.com/fsnotify/fsnotify"
)

// ErrQuit is returned by [Console.Exec] for the quit command.
var ErrQuit = errors.New("quit")

// Console runs editor commands given as lines of text.
type Console struct {

	// Config is the current configuration.
	Config *config.Config

	// ConfigFile is the config file that is reloaded when it changes.
	ConfigFile string

	// Store is the scene state store.
	Store *scene.Store

	// Viewport is the viewport controller.
	Viewport *viewport.Viewport

	// Editor is the camera editor on Store and Viewport.
	Editor *editor.CameraEditor

	// Out is where command output goes.
	Out io.Writer

	// Prompt is shown before reading each command, if set.
	Prompt string

	// Override, if set, is applied to the config after each reload,
	// for options that were given on the command line.
	Override func(cfg *config.Config)
}

// New returns a new [Console] with a new scene using the camera of the
// given config, writing output to out.
func New(cfg *config.Config, out io.Writer) *Console {
	cs := &Console{Config: cfg, Out: out}
	cs.Store = scene.NewStore(cfg.Camera)
	cs.Store.OnChange(func(action string) {
		slog.Info("scene changed", "action", action)
	})
	cs.Viewport = viewport.New()
	cs.Editor = editor.New(cs.Store, cs.Viewport)
	cs.ApplyLog()
	return cs
}

// ApplyLog applies the log options of the config.
func (cs *Console) ApplyLog() {
	logx.UserLevel = cs.Config.Log.Level
	logx.UseColor = cs.Config.Log.Color
}

// Reload reads the config file again, keeping the current values of
// any options it does not set. On error the config is unchanged.
func (cs *Console) Reload() error {
	cfg := *cs.Config
	if err := config.Open(&cfg, cs.ConfigFile); err != nil {
		return err
	}
	if cs.Override != nil {
		cs.Override(&cfg)
	}
	*cs.Config = cfg
	cs.ApplyLog()
	slog.Info("config reloaded", "file", cs.ConfigFile)
	return nil
}

// Run reads commands from in and executes them until the input ends,
// a quit command is given, or the context is done. Changes to the config
// file seen by the watcher, if non-nil, are reloaded in between commands.
// Command errors are printed and do not stop the loop.
// Reading is done in a separate goroutine, which may outlive Run while it
// is blocked reading in: it only exits once the read returns.
func (cs *Console) Run(ctx context.Context, in io.Reader, watcher *fsnotify.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
		close(lines)
	}()

	var events <-chan fsnotify.Event
	var werrs <-chan error
	if watcher != nil {
		events = watcher.Events
		werrs = watcher.Errors
	}
	cs.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			err := cs.Exec(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintln(cs.Out, logx.ErrorColor(err.Error()))
			}
			cs.prompt()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if config.IsChange(event, cs.ConfigFile) {
				errors.Log(cs.Reload())
			}
		case err, ok := <-werrs:
			if !ok {
				werrs = nil
				continue
			}
			slog.Warn("config watcher error", "err", err)
		}
	}
}

func (cs *Console) prompt() {
	if cs.Prompt != "" {
		fmt.Fprint(cs.Out, cs.Prompt)
	}
}
