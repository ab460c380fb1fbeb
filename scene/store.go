// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene state store, which owns the
// authoritative scene camera of the open scene document.
package scene

import (
	"log/slog"

	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/math32"
	"cogentcore.org/scenes/undo"
)

// Store holds the state of the open scene document. Each camera setter is
// an independent, immediately committed, single field write that records
// one undo step and notifies the change listeners. Setters are no-ops
// while no camera is selected.
type Store struct {
	camera   camera.SceneCamera
	selected bool
	undos    undo.Manager[camera.SceneCamera]
	onChange []func(action string)
}

// NewStore returns a new [Store] holding a new scene with the
// given camera, which is selected.
func NewStore(cam camera.SceneCamera) *Store {
	st := &Store{}
	st.NewScene(cam)
	return st
}

// NewScene replaces the scene document with a new one holding the given
// camera, which is selected. The undo history is cleared.
func (st *Store) NewScene(cam camera.SceneCamera) {
	st.camera = cam
	st.selected = true
	st.undos.Reset("new scene", cam)
	st.changed("new scene")
}

// OnChange adds a function that is called after every change to the scene,
// with a description of the action.
func (st *Store) OnChange(fun func(action string)) {
	st.onChange = append(st.onChange, fun)
}

// SelectCamera selects the scene camera for editing.
func (st *Store) SelectCamera() {
	if st.selected {
		return
	}
	st.selected = true
	st.changed("select camera")
}

// ClearSelection deselects the scene camera.
func (st *Store) ClearSelection() {
	if !st.selected {
		return
	}
	st.selected = false
	st.changed("clear selection")
}

// SelectedCamera returns a copy of the scene camera if it is selected,
// and false otherwise.
func (st *Store) SelectedCamera() (camera.SceneCamera, bool) {
	if !st.selected {
		return camera.SceneCamera{}, false
	}
	return st.camera, true
}

// Camera returns a copy of the scene camera, regardless of selection.
func (st *Store) Camera() camera.SceneCamera {
	return st.camera
}

// SetCameraPosition sets the position of the selected camera.
func (st *Store) SetCameraPosition(pos math32.Vector3) {
	st.update("set camera position", func(cam *camera.SceneCamera) {
		cam.Position = pos
	})
}

// SetCameraLook sets the look vector of the selected camera and makes
// it the active orientation. The focus vector is retained.
func (st *Store) SetCameraLook(look math32.Vector3) {
	st.update("set camera look", func(cam *camera.SceneCamera) {
		cam.Orientation.SetMode(camera.Look)
		cam.Orientation.SetActive(look)
	})
}

// SetCameraFocus sets the focus vector of the selected camera and makes
// it the active orientation. The look vector is retained.
func (st *Store) SetCameraFocus(focus math32.Vector3) {
	st.update("set camera focus", func(cam *camera.SceneCamera) {
		cam.Orientation.SetMode(camera.Focus)
		cam.Orientation.SetActive(focus)
	})
}

// SetCameraUp sets the up vector of the selected camera.
func (st *Store) SetCameraUp(up math32.Vector3) {
	st.update("set camera up", func(cam *camera.SceneCamera) {
		cam.Up = up
	})
}

// SetCameraHeightAngle sets the height angle of the selected camera,
// in degrees. The value is not range checked.
func (st *Store) SetCameraHeightAngle(angle float32) {
	st.update("set camera height angle", func(cam *camera.SceneCamera) {
		cam.HeightAngle = angle
	})
}

// HasUndoAvailable returns true if there is a change to undo.
func (st *Store) HasUndoAvailable() bool {
	return st.undos.HasUndoAvailable()
}

// HasRedoAvailable returns true if there is an undone change to redo.
func (st *Store) HasRedoAvailable() bool {
	return st.undos.HasRedoAvailable()
}

// Undo restores the camera to its state before the last change,
// returning the undone action, or false if there was nothing to undo.
func (st *Store) Undo() (string, bool) {
	action, cam, ok := st.undos.Undo()
	if !ok {
		return "", false
	}
	st.camera = cam
	st.changed("undo " + action)
	return action, true
}

// Redo reapplies the last undone change, returning the redone action,
// or false if there was nothing to redo.
func (st *Store) Redo() (string, bool) {
	action, cam, ok := st.undos.Redo()
	if !ok {
		return "", false
	}
	st.camera = cam
	st.changed("redo " + action)
	return action, true
}

// update applies the given change to the selected camera and commits it.
func (st *Store) update(action string, fun func(cam *camera.SceneCamera)) {
	if !st.selected {
		slog.Debug("scene: no camera selected", "action", action)
		return
	}
	fun(&st.camera)
	st.undos.Save(action, st.camera)
	st.changed(action)
}

func (st *Store) changed(action string) {
	slog.Debug("scene: changed", "action", action)
	for _, fun := range st.onChange {
		fun(action)
	}
}
