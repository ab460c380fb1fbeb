// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the scene camera editor, and
// the loading, saving and watching of them.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/math32"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file used when none is given.
const DefaultFilename = "~/.scenecam.toml"

// Config is the main config struct
// that contains all of the configuration
// options for the scene camera editor.
type Config struct {

	// Editor has the options for the camera field inputs.
	Editor Editor

	// Viewport has the options for the interactive viewport controls.
	Viewport Viewport

	// Camera is the camera of a new scene.
	Camera camera.SceneCamera

	// Log has the logging options.
	Log Log
}

// Editor has the options for the camera field inputs.
type Editor struct {

	// Step is the amount a nudge changes a position, orientation
	// or up component by.
	Step float32

	// HeightAngleStep is the amount a nudge changes the height angle by.
	HeightAngleStep float32

	// HeightAngleMin is the smallest height angle accepted, in degrees.
	HeightAngleMin float32

	// HeightAngleMax is the largest height angle accepted, in degrees.
	HeightAngleMax float32
}

// Viewport has the options for the interactive viewport controls.
type Viewport struct {

	// RotateStep is the rotation angle per unit of rotate and orbit,
	// in degrees.
	RotateStep float32

	// PanStep is the distance per unit of pan.
	PanStep float32

	// ZoomStep is the distance per unit of zoom.
	ZoomStep float32

	// Target is the point that the viewport orbits around.
	Target math32.Vector3
}

// Log has the logging options.
type Log struct {

	// Level is the minimum level of log messages shown.
	Level slog.Level

	// Color is whether to color terminal output.
	Color bool
}

// Defaults sets the default values.
func (cfg *Config) Defaults() {
	cfg.Editor = Editor{Step: 0.001, HeightAngleStep: 1, HeightAngleMin: 0, HeightAngleMax: 180}
	cfg.Viewport = Viewport{RotateStep: 1, PanStep: 0.1, ZoomStep: 0.5}
	cfg.Camera.Defaults()
	cfg.Log = Log{Level: slog.LevelWarn, Color: true}
}

// HeightAngleInRange returns whether the given height angle is within
// the accepted range, bounds included.
func (ed *Editor) HeightAngleInRange(angle float32) bool {
	return angle >= ed.HeightAngleMin && angle <= ed.HeightAngleMax
}

// Path returns the given config file name with a leading ~
// expanded to the home directory of the user.
func Path(filename string) (string, error) {
	return homedir.Expand(filename)
}

// Open reads the config from the given file, which is in TOML, YAML
// or JSON format according to its extension. Fields not in the file
// keep their current values.
func Open(cfg *Config, filename string) error {
	filename, err := Path(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch format(filename) {
	case "toml":
		err = toml.Unmarshal(b, cfg)
	case "yaml":
		err = yaml.Unmarshal(b, cfg)
	case "json":
		err = json.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q", filepath.Ext(filename))
	}
	if err != nil {
		return fmt.Errorf("config: error reading %s: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given file, in TOML, YAML or JSON format
// according to its extension.
func Save(cfg *Config, filename string) error {
	filename, err := Path(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch format(filename) {
	case "toml":
		b, err = toml.Marshal(cfg)
	case "yaml":
		b, err = yaml.Marshal(cfg)
	case "json":
		b, err = json.MarshalIndent(cfg, "", "\t")
	default:
		return fmt.Errorf("config: unsupported file type %q", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

func format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

// Watch returns a new watcher on the directory of the given config file,
// so that changes saved by editors that replace the file are seen too.
// Use [IsChange] to select the events for the file.
// The caller must close the watcher.
func Watch(filename string) (*fsnotify.Watcher, error) {
	filename, err := Path(filename)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// IsChange returns whether the given watcher event means that the given
// config file, as returned by [Path], has new contents.
func IsChange(event fsnotify.Event, filename string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(filename) {
		return false
	}
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
