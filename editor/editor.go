// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the scene camera editor, which keeps the
// orientation mode of the selected scene camera, turns field edits into
// scene store writes, and synchronizes the scene camera with the viewport
// camera on demand.
package editor

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/math32"
)

// SceneStore is the scene state store as used by the [CameraEditor].
// Each setter is an independent, immediately committed field write.
type SceneStore interface {

	// SelectedCamera returns the selected scene camera, or false if no
	// camera is selected.
	SelectedCamera() (camera.SceneCamera, bool)

	SetCameraPosition(pos math32.Vector3)
	SetCameraLook(look math32.Vector3)
	SetCameraFocus(focus math32.Vector3)
	SetCameraUp(up math32.Vector3)
	SetCameraHeightAngle(angle float32)
}

// ViewportController is the viewport as used by the [CameraEditor].
type ViewportController interface {

	// Camera returns the current viewport camera.
	Camera() camera.ViewportCamera

	// Update replaces the viewport camera in one step.
	Update(cam camera.ViewportCamera)
}

// CameraEditor edits the selected scene camera. It keeps its own
// orientation mode together with the last look and focus vectors entered,
// so that switching modes back and forth never loses a value.
// Every operation is a no-op while no camera is selected.
type CameraEditor struct {

	// Store is the scene state store holding the camera being edited.
	Store SceneStore

	// Viewport is the controller of the live viewport camera.
	Viewport ViewportController

	// orientation is the active mode and the look / focus cache.
	orientation camera.Orientation
}

// New returns a new [CameraEditor] for the given store and viewport,
// initialized from the selected camera.
func New(store SceneStore, vp ViewportController) *CameraEditor {
	ce := &CameraEditor{Store: store, Viewport: vp}
	ce.Refresh()
	return ce
}

// Refresh re-reads the selected camera and resets the orientation mode
// and the look / focus cache from it. It does not write to the store.
// It returns false if no camera is selected.
func (ce *CameraEditor) Refresh() bool {
	cam, ok := ce.Store.SelectedCamera()
	if !ok {
		ce.orientation = camera.LookOrientation(math32.Vector3{})
		return false
	}
	ce.orientation = cam.Orientation
	return true
}

// Mode returns the current orientation mode.
func (ce *CameraEditor) Mode() camera.OrientationModes {
	return ce.orientation.Mode
}

// Orientation returns the current orientation, including the cached
// vector of the inactive mode.
func (ce *CameraEditor) Orientation() camera.Orientation {
	return ce.orientation
}

// SetMode switches the orientation mode. Switching to the current mode does
// nothing. Otherwise the last vector entered for the new mode becomes active
// and is written to the store as is; it is never derived from the vector of
// the other mode.
func (ce *CameraEditor) SetMode(mode camera.OrientationModes) {
	if _, ok := ce.selected("set mode"); !ok {
		return
	}
	if mode == ce.orientation.Mode {
		return
	}
	ce.orientation.SetMode(mode)
	ce.writeOrientation()
}

// EditPosition sets one component of the camera position from the given
// input text. It returns false, writing nothing, if no camera is selected
// or the text is not a valid number.
func (ce *CameraEditor) EditPosition(dim math32.Dims, text string) bool {
	cam, val, ok := ce.parseEdit("position", text)
	if !ok {
		return false
	}
	ce.Store.SetCameraPosition(cam.Position.WithDim(dim, val))
	return true
}

// EditOrientation sets one component of the vector of the active mode
// (look or focus) from the given input text, and writes that vector to
// the store. It returns false, writing nothing, if no camera is selected
// or the text is not a valid number.
func (ce *CameraEditor) EditOrientation(dim math32.Dims, text string) bool {
	_, val, ok := ce.parseEdit("orientation", text)
	if !ok {
		return false
	}
	ce.orientation.SetActive(ce.orientation.Active().WithDim(dim, val))
	ce.writeOrientation()
	return true
}

// EditUp sets one component of the camera up vector from the given
// input text. It returns false, writing nothing, if no camera is selected
// or the text is not a valid number.
func (ce *CameraEditor) EditUp(dim math32.Dims, text string) bool {
	cam, val, ok := ce.parseEdit("up", text)
	if !ok {
		return false
	}
	ce.Store.SetCameraUp(cam.Up.WithDim(dim, val))
	return true
}

// EditHeightAngle sets the camera height angle, in degrees, from the given
// input text. The range is not checked here. It returns false, writing
// nothing, if no camera is selected or the text is not a valid number.
func (ce *CameraEditor) EditHeightAngle(text string) bool {
	_, val, ok := ce.parseEdit("height angle", text)
	if !ok {
		return false
	}
	ce.Store.SetCameraHeightAngle(val)
	return true
}

// ResetViewport moves the viewport camera to the view of the scene camera,
// in a single viewport update. If the scene camera orientation is
// degenerate (see [camera.LookUpBasis]), the current viewport rotation is
// kept. It returns false if no camera is selected.
func (ce *CameraEditor) ResetViewport() bool {
	cam, ok := ce.selected("reset viewport")
	if !ok {
		return false
	}
	rot, ok := cam.Euler()
	if !ok {
		slog.Debug("editor: degenerate camera orientation, keeping viewport rotation", "camera", cam)
		rot = ce.Viewport.Camera().Rotation
	}
	ce.Viewport.Update(camera.ViewportCamera{Position: cam.Position, Rotation: rot, Up: cam.Up})
	return true
}

// SaveView writes the viewport camera to the scene camera: its position,
// and its look and up vectors. The scene camera is always saved in look
// mode; its focus vector is not written. It returns false if no camera
// is selected.
func (ce *CameraEditor) SaveView() bool {
	if _, ok := ce.selected("save view"); !ok {
		return false
	}
	vc := ce.Viewport.Camera()
	look, up := camera.EulerToLookUp(vc.Rotation)
	ce.Store.SetCameraPosition(vc.Position)
	ce.Store.SetCameraLook(look)
	ce.Store.SetCameraUp(up)
	ce.orientation.SetMode(camera.Look)
	ce.orientation.SetActive(look)
	return true
}

// writeOrientation writes the active orientation vector to the store.
func (ce *CameraEditor) writeOrientation() {
	v := ce.orientation.Active()
	if ce.orientation.Mode == camera.Focus {
		ce.Store.SetCameraFocus(v)
	} else {
		ce.Store.SetCameraLook(v)
	}
}

// selected returns the selected camera, logging the skipped action
// when there is none.
func (ce *CameraEditor) selected(action string) (camera.SceneCamera, bool) {
	cam, ok := ce.Store.SelectedCamera()
	if !ok {
		slog.Debug("editor: no camera selected", "action", action)
	}
	return cam, ok
}

// parseEdit returns the selected camera and the value of the input text
// for an edit of the given field.
func (ce *CameraEditor) parseEdit(field, text string) (camera.SceneCamera, float32, bool) {
	cam, ok := ce.selected("edit " + field)
	if !ok {
		return cam, 0, false
	}
	val, ok := ParseValue(text)
	if !ok {
		slog.Debug("editor: ignoring invalid input", "field", field, "text", text)
		return cam, 0, false
	}
	return cam, val, true
}

// ParseValue parses the text of a numeric input field. Surrounding space
// is ignored. It returns false for anything that is not a finite number.
func ParseValue(text string) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0, false
	}
	v := float32(f)
	if !math32.IsFinite(v) {
		return 0, false
	}
	return v, true
}
