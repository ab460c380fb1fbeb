// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenecam is a text console for editing the camera of a
// 3D scene and synchronizing it with a viewport camera.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/scenes/base/errors"
	"cogentcore.org/scenes/base/logx"
	"cogentcore.org/scenes/config"
	"cogentcore.org/scenes/console"
)

var (
	configFile = flag.String("config", config.DefaultFilename, "the config file (.toml, .yaml or .json); it is reloaded when it changes")
	debug      = flag.Bool("vv", false, "show debug messages")
	verbose    = flag.Bool("v", false, "show info messages")
	quiet      = flag.Bool("q", false, "only show errors")
	noColor    = flag.Bool("no-color", false, "do not color output")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.SetDefaultLogger()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, logx.ErrorColor(err.Error()))
		os.Exit(1)
	}
}

func run() error {
	fnm, err := config.Path(*configFile)
	if err != nil {
		return err
	}
	cfg := &config.Config{}
	cfg.Defaults()
	exists := true
	if err := config.Open(cfg, fnm); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		exists = false
	}
	applyFlags(cfg)

	cs := console.New(cfg, os.Stdout)
	cs.ConfigFile = fnm
	cs.Override = applyFlags
	cs.Prompt = logx.CmdColor("scenecam> ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if !exists {
		slog.Info("no config file, using defaults", "file", fnm)
		return cs.Run(ctx, os.Stdin, nil)
	}
	watcher, err := config.Watch(fnm)
	if err != nil {
		return err
	}
	defer watcher.Close()
	return cs.Run(ctx, os.Stdin, watcher)
}

// applyFlags applies the log flags to the given config.
func applyFlags(cfg *config.Config) {
	if *debug || *verbose || *quiet {
		cfg.Log.Level = logx.LevelFromFlags(*debug, *verbose, *quiet)
	}
	if *noColor {
		cfg.Log.Color = false
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Scenecam is a console for editing the camera of a 3D scene.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tscenecam [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Type help at the prompt for a list of commands.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
