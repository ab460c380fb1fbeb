// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport provides the controller of the live viewport camera,
// including interactive manipulation and named saved views.
package viewport

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/math32"
)

// Viewport owns the camera used to render the interactive view.
// The camera is independent of the scene camera; the two are only
// synchronized by explicit commands.
type Viewport struct {

	// Mu is the mutex protecting the camera data.
	Mu sync.RWMutex

	// camera is the live viewport camera.
	camera camera.ViewportCamera

	// saved are the named saved views.
	saved map[string]camera.ViewportCamera
}

// New returns a new [Viewport] with the default camera.
func New() *Viewport {
	vp := &Viewport{}
	vp.Defaults()
	return vp
}

// Defaults resets the camera to the default view, see
// [camera.ViewportCamera.Defaults]. Saved views are kept.
func (vp *Viewport) Defaults() {
	vp.Mu.Lock()
	vp.camera.Defaults()
	vp.Mu.Unlock()
}

// Camera returns a copy of the current viewport camera.
func (vp *Viewport) Camera() camera.ViewportCamera {
	vp.Mu.RLock()
	defer vp.Mu.RUnlock()
	return vp.camera
}

// Update replaces the position, rotation and up vector of the camera
// in a single step. This is the "jump to" command.
func (vp *Viewport) Update(cam camera.ViewportCamera) {
	vp.Mu.Lock()
	vp.camera = cam
	vp.Mu.Unlock()
}

// LookUp returns the current look and up vectors of the camera.
func (vp *Viewport) LookUp() (look, up math32.Vector3) {
	vp.Mu.RLock()
	defer vp.Mu.RUnlock()
	return vp.camera.LookUp()
}

// Rotate applies an incremental rotation in degrees, as from a drag gesture:
// delX is added to the Y (yaw) angle and delY to the X (pitch) angle.
// The up vector is updated to match.
func (vp *Viewport) Rotate(delX, delY float32) {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	vp.camera.Rotation.Y += math32.DegToRad(delX)
	vp.camera.Rotation.X += math32.DegToRad(delY)
	vp.updateUp()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current view).
func (vp *Viewport) Pan(delX, delY float32) {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	q := math32.NewQuatEuler(vp.camera.Rotation)
	// right is forward x up = -X for the unrotated camera
	dx := math32.Vec3(-delX, 0, 0).MulQuat(q)
	dy := math32.Vec3(0, delY, 0).MulQuat(q)
	vp.camera.Position.SetAdd(dx.Add(dy))
}

// Zoom moves the camera along its look direction by the given distance;
// positive values move forward.
func (vp *Viewport) Zoom(del float32) {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	q := math32.NewQuatEuler(vp.camera.Rotation)
	vp.camera.Position.SetAdd(camera.ForwardAxis.MulQuat(q).MulScalar(del))
}

// Orbit moves the camera around the target point by the given angles in
// degrees (delX = left/right around the up vector, delY = up/down around
// the right vector), keeping the same distance from the target, and turns
// the camera to look at the target. Nothing happens if the camera is at
// the target.
func (vp *Viewport) Orbit(target math32.Vector3, delX, delY float32) {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	cam := &vp.camera
	ctdir := cam.Position.Sub(target)
	if ctdir.IsNil() {
		return
	}
	up := cam.Up.Normal()
	if up.IsNil() {
		up = camera.UpAxis
	}
	ctdir = ctdir.MulQuat(math32.NewQuatAxisAngle(up, math32.DegToRad(delX)))
	right := up.Cross(ctdir.Normal())
	if right.LengthSquared() > camera.ParallelTol {
		dyq := math32.NewQuatAxisAngle(right.Normal(), math32.DegToRad(delY))
		ctdir = ctdir.MulQuat(dyq)
		up = up.MulQuat(dyq)
	}
	cam.Position = target.Add(ctdir)
	if rot, ok := camera.LookUpToEuler(ctdir.Negate(), up); ok {
		cam.Rotation = rot
		vp.updateUp()
	}
}

// SaveView saves the current camera with the given name;
// it can be restored later with [Viewport.RestoreView].
func (vp *Viewport) SaveView(name string) {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	if vp.saved == nil {
		vp.saved = make(map[string]camera.ViewportCamera)
	}
	vp.saved[name] = vp.camera
}

// RestoreView sets the camera to the saved view of the given name;
// it returns an error if there is no such view.
func (vp *Viewport) RestoreView(name string) error {
	vp.Mu.Lock()
	defer vp.Mu.Unlock()
	cam, ok := vp.saved[name]
	if !ok {
		return fmt.Errorf("viewport: saved view named %q not found", name)
	}
	vp.camera = cam
	return nil
}

// SavedViews returns the sorted names of the saved views.
func (vp *Viewport) SavedViews() []string {
	vp.Mu.RLock()
	defer vp.Mu.RUnlock()
	return slices.Sorted(maps.Keys(vp.saved))
}

// updateUp sets the up vector from the rotation. Must be called under lock.
func (vp *Viewport) updateUp() {
	_, vp.camera.Up = vp.camera.LookUp()
}
