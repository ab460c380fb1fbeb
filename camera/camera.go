// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the scene camera and viewport camera models,
// and the conversions between their orientation representations:
// look + up, focus + up, and XYZ Euler angles.
package camera

import (
	"fmt"

	"cogentcore.org/scenes/math32"
)

// Orientation is where a [SceneCamera] points: either a look vector or a
// focus vector, selected by Mode. Both vectors are always retained, so the
// inactive one keeps its last value while the other mode is in use and
// switching back restores it unchanged. Switching never derives one
// vector from the other.
type Orientation struct {

	// Mode selects which of Look or Focus is the active orientation.
	Mode OrientationModes

	// Look is the direction the camera faces; not required to be normalized.
	Look math32.Vector3

	// Focus is the focus vector, used as the negated look direction.
	Focus math32.Vector3
}

// LookOrientation returns an [Orientation] in [Look] mode.
func LookOrientation(look math32.Vector3) Orientation {
	return Orientation{Mode: Look, Look: look}
}

// FocusOrientation returns an [Orientation] in [Focus] mode.
func FocusOrientation(focus math32.Vector3) Orientation {
	return Orientation{Mode: Focus, Focus: focus}
}

// Active returns the vector of the active mode.
func (or *Orientation) Active() math32.Vector3 {
	if or.Mode == Focus {
		return or.Focus
	}
	return or.Look
}

// Vector returns the vector stored for the given mode,
// whether or not it is active.
func (or *Orientation) Vector(mode OrientationModes) math32.Vector3 {
	if mode == Focus {
		return or.Focus
	}
	return or.Look
}

// SetActive sets the vector of the active mode, leaving the other intact.
func (or *Orientation) SetActive(v math32.Vector3) {
	or.SetVector(or.Mode, v)
}

// SetVector sets the vector for the given mode without changing Mode.
func (or *Orientation) SetVector(mode OrientationModes, v math32.Vector3) {
	if mode == Focus {
		or.Focus = v
	} else {
		or.Look = v
	}
}

// SetMode changes the active mode. Neither vector is modified.
func (or *Orientation) SetMode(mode OrientationModes) {
	or.Mode = mode
}

// SceneCamera is the camera specified in the scene document. It is owned
// by the scene store; other components only read copies of it and write
// through the store's per-field setters.
type SceneCamera struct {

	// Position is the location of the camera.
	Position math32.Vector3

	// Orientation is where the camera points (look or focus).
	Orientation Orientation

	// Up is the up direction of the camera; it does not need to be normalized
	// or orthogonal to the look direction.
	Up math32.Vector3

	// HeightAngle is the vertical field of view in degrees.
	// Values outside of (0, 180) are rejected by the input widgets,
	// not by the camera itself.
	HeightAngle float32
}

// Defaults sets the default scene camera: at (0, 0, 5) looking down the
// negative Z axis, with the positive Y axis up and a 30 degree height angle.
func (sc *SceneCamera) Defaults() {
	sc.Position.Set(0, 0, 5)
	sc.Orientation = LookOrientation(math32.Vec3(0, 0, -1))
	sc.Up.Set(0, 1, 0)
	sc.HeightAngle = 30
}

// Euler returns the XYZ Euler angles for the camera orientation,
// see [OrientationToEuler].
func (sc *SceneCamera) Euler() (math32.Vector3, bool) {
	return OrientationToEuler(sc.Orientation, sc.Up)
}

// String returns a short description of the camera.
func (sc SceneCamera) String() string {
	return fmt.Sprintf("pos: %v %s: %v up: %v height: %g", sc.Position, sc.Orientation.Mode, sc.Orientation.Active(), sc.Up, sc.HeightAngle)
}

// ViewportCamera is the live camera of the interactive viewport.
// Its orientation is kept as Euler angles so that drag gestures can be
// applied as incremental angle changes.
type ViewportCamera struct {

	// Position is the location of the camera.
	Position math32.Vector3

	// Rotation is the orientation as XYZ Euler angles, in radians.
	Rotation math32.Vector3

	// Up is the up direction, kept consistent with Rotation.
	Up math32.Vector3
}

// Defaults sets the default viewport camera: looking at the origin
// from (0, 0, 10), with the positive Y axis up.
func (vc *ViewportCamera) Defaults() {
	vc.Position.Set(0, 0, 10)
	vc.Rotation.Set(0, math32.Pi, 0)
	vc.Up = UpAxis
}

// LookUp returns the look and up vectors for the current rotation.
func (vc *ViewportCamera) LookUp() (look, up math32.Vector3) {
	return EulerToLookUp(vc.Rotation)
}

// String returns a short description of the camera.
func (vc ViewportCamera) String() string {
	deg := vc.Rotation.MulScalar(math32.RadToDegFactor)
	return fmt.Sprintf("pos: %v rot(deg): %v up: %v", vc.Position, deg, vc.Up)
}
