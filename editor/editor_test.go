// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"testing"

	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/math32"
	"cogentcore.org/scenes/scene"
	"cogentcore.org/scenes/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

type write struct {
	field string
	value any
}

// recordStore is a [SceneStore] that records every write.
type recordStore struct {
	cam      camera.SceneCamera
	selected bool
	writes   []write
}

func newRecordStore() *recordStore {
	st := &recordStore{selected: true}
	st.cam.Defaults()
	return st
}

func (st *recordStore) SelectedCamera() (camera.SceneCamera, bool) {
	return st.cam, st.selected
}

func (st *recordStore) SetCameraPosition(pos math32.Vector3) {
	st.writes = append(st.writes, write{"position", pos})
	st.cam.Position = pos
}

func (st *recordStore) SetCameraLook(look math32.Vector3) {
	st.writes = append(st.writes, write{"look", look})
	st.cam.Orientation.SetMode(camera.Look)
	st.cam.Orientation.SetActive(look)
}

func (st *recordStore) SetCameraFocus(focus math32.Vector3) {
	st.writes = append(st.writes, write{"focus", focus})
	st.cam.Orientation.SetMode(camera.Focus)
	st.cam.Orientation.SetActive(focus)
}

func (st *recordStore) SetCameraUp(up math32.Vector3) {
	st.writes = append(st.writes, write{"up", up})
	st.cam.Up = up
}

func (st *recordStore) SetCameraHeightAngle(angle float32) {
	st.writes = append(st.writes, write{"height angle", angle})
	st.cam.HeightAngle = angle
}

// recordViewport is a [ViewportController] that records every update.
type recordViewport struct {
	cam     camera.ViewportCamera
	updates []camera.ViewportCamera
}

func newRecordViewport() *recordViewport {
	vp := &recordViewport{}
	vp.cam.Defaults()
	return vp
}

func (vp *recordViewport) Camera() camera.ViewportCamera { return vp.cam }

func (vp *recordViewport) Update(cam camera.ViewportCamera) {
	vp.updates = append(vp.updates, cam)
	vp.cam = cam
}

func assertVector(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, have.X, tol, "X: want %v have %v", want, have)
	assert.InDelta(t, want.Y, have.Y, tol, "Y: want %v have %v", want, have)
	assert.InDelta(t, want.Z, have.Z, tol, "Z: want %v have %v", want, have)
}

func TestNew(t *testing.T) {
	st := newRecordStore()
	st.cam.Orientation = camera.Orientation{Mode: camera.Focus, Look: math32.Vec3(1, 0, 0), Focus: math32.Vec3(0, 0, 2)}
	ce := New(st, newRecordViewport())
	assert.Equal(t, camera.Focus, ce.Mode())
	assert.Equal(t, st.cam.Orientation, ce.Orientation())
	assert.Empty(t, st.writes)
}

func TestSetModePreservesData(t *testing.T) {
	st := newRecordStore()
	ce := New(st, newRecordViewport())
	look := st.cam.Orientation.Look

	ce.SetMode(camera.Look)
	assert.Empty(t, st.writes)

	ce.SetMode(camera.Focus)
	assert.Equal(t, []write{{"focus", math32.Vector3{}}}, st.writes)
	assert.Equal(t, look, st.cam.Orientation.Look)

	ce.SetMode(camera.Look)
	assert.Equal(t, camera.Look, ce.Mode())
	assert.Equal(t, look, st.cam.Orientation.Look)
	assert.Equal(t, camera.Look, st.cam.Orientation.Mode)
	assert.Len(t, st.writes, 2)
	assert.Equal(t, write{"look", look}, st.writes[1])
}

func TestSetModeNoDerivation(t *testing.T) {
	st := newRecordStore()
	ce := New(st, newRecordViewport())
	ce.SetMode(camera.Focus)
	require.True(t, ce.EditOrientation(math32.X, "3"))
	ce.SetMode(camera.Look)
	require.True(t, ce.EditOrientation(math32.Y, "2"))

	// the focus edited earlier comes back, not the negated look
	ce.SetMode(camera.Focus)
	assert.Equal(t, math32.Vec3(3, 0, 0), st.cam.Orientation.Focus)
	assert.Equal(t, math32.Vec3(0, 2, -1), st.cam.Orientation.Look)
}

func TestEditOrientation(t *testing.T) {
	st := newRecordStore()
	ce := New(st, newRecordViewport())
	assert.True(t, ce.EditOrientation(math32.X, "0.5"))
	assert.Equal(t, []write{{"look", math32.Vec3(0.5, 0, -1)}}, st.writes)

	ce.SetMode(camera.Focus)
	st.writes = nil
	assert.True(t, ce.EditOrientation(math32.Z, " 2 "))
	assert.Equal(t, []write{{"focus", math32.Vec3(0, 0, 2)}}, st.writes)
	assert.Equal(t, math32.Vec3(0.5, 0, -1), st.cam.Orientation.Look)
	assert.Equal(t, math32.Vec3(0, 0, 2), ce.Orientation().Focus)
}

func TestEditFields(t *testing.T) {
	st := newRecordStore()
	ce := New(st, newRecordViewport())
	assert.True(t, ce.EditPosition(math32.Y, "-1.25"))
	assert.True(t, ce.EditUp(math32.X, "1e-3"))
	assert.True(t, ce.EditHeightAngle("45"))
	assert.True(t, ce.EditHeightAngle("200"))
	assert.Equal(t, []write{
		{"position", math32.Vec3(0, -1.25, 5)},
		{"up", math32.Vec3(0.001, 1, 0)},
		{"height angle", float32(45)},
		{"height angle", float32(200)},
	}, st.writes)
}

func TestInvalidInput(t *testing.T) {
	st := newRecordStore()
	ce := New(st, newRecordViewport())
	before := st.cam
	for _, text := range []string{"", " ", "abc", "1.5x", "NaN", "nan", "Inf", "-inf", "1e999", "1,5"} {
		assert.False(t, ce.EditPosition(math32.X, text), text)
		assert.False(t, ce.EditOrientation(math32.Y, text), text)
		assert.False(t, ce.EditUp(math32.Z, text), text)
		assert.False(t, ce.EditHeightAngle(text), text)
	}
	assert.Empty(t, st.writes)
	assert.Equal(t, before, st.cam)
	assert.Equal(t, before.Orientation, ce.Orientation())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		text string
		want float32
		ok   bool
	}{
		{"1.5", 1.5, true},
		{" -2e-3\t", -0.002, true},
		{"+7", 7, true},
		{"0", 0, true},
		{"x", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}
	for _, test := range tests {
		v, ok := ParseValue(test.text)
		assert.Equal(t, test.ok, ok, test.text)
		assert.Equal(t, test.want, v, test.text)
	}
}

func TestNoSelection(t *testing.T) {
	st := newRecordStore()
	st.selected = false
	vp := newRecordViewport()
	vp.cam.Position.Set(1, 2, 3)
	ce := New(st, vp)

	ce.SetMode(camera.Focus)
	assert.Equal(t, camera.Look, ce.Mode())
	assert.False(t, ce.EditPosition(math32.X, "1"))
	assert.False(t, ce.EditOrientation(math32.X, "1"))
	assert.False(t, ce.EditUp(math32.X, "1"))
	assert.False(t, ce.EditHeightAngle("1"))
	assert.False(t, ce.ResetViewport())
	assert.False(t, ce.SaveView())
	assert.Empty(t, st.writes)
	assert.Empty(t, vp.updates)
}

func TestResetViewport(t *testing.T) {
	st := newRecordStore()
	st.cam.Position.Set(1, 2, 3)
	st.cam.Orientation = camera.LookOrientation(math32.Vec3(0, 0, 1))
	vp := newRecordViewport()
	ce := New(st, vp)

	require.True(t, ce.ResetViewport())
	require.Len(t, vp.updates, 1)
	vc := vp.updates[0]
	assertVector(t, math32.Vector3{}, vc.Rotation)
	assert.Equal(t, math32.Vec3(1, 2, 3), vc.Position)
	assert.Equal(t, math32.Vec3(0, 1, 0), vc.Up)

	// focus behind the camera is the same view
	st.cam.Orientation = camera.FocusOrientation(math32.Vec3(0, 0, -1))
	require.True(t, ce.Refresh())
	require.True(t, ce.ResetViewport())
	require.Len(t, vp.updates, 2)
	assertVector(t, vc.Rotation, vp.updates[1].Rotation)
	assert.Empty(t, st.writes)
}

func TestResetViewportMatchesScene(t *testing.T) {
	st := newRecordStore()
	st.cam.Orientation = camera.LookOrientation(math32.Vec3(1, -2, 0.5))
	st.cam.Up.Set(0.3, 1, 0)
	vp := newRecordViewport()
	ce := New(st, vp)
	require.True(t, ce.ResetViewport())

	look, up := vp.cam.LookUp()
	want := st.cam.Orientation.Look.Normal()
	assertVector(t, want, look)
	assert.InDelta(t, 0, look.Dot(up), tol)
	assert.Greater(t, up.Dot(st.cam.Up), float32(0))
}

func TestResetViewportIdempotent(t *testing.T) {
	st := newRecordStore()
	st.cam.Orientation = camera.FocusOrientation(math32.Vec3(-1, 2, 3))
	st.cam.Up.Set(1, 1, 0)
	vp := newRecordViewport()
	ce := New(st, vp)
	ce.ResetViewport()
	ce.ResetViewport()
	require.Len(t, vp.updates, 2)
	assert.Equal(t, vp.updates[0], vp.updates[1])
}

func TestResetViewportDegenerate(t *testing.T) {
	for _, look := range []math32.Vector3{{}, math32.Vec3(0, 0, 2)} {
		st := newRecordStore()
		st.cam.Orientation = camera.LookOrientation(look)
		st.cam.Up.Set(0, 0, 1)
		vp := newRecordViewport()
		vp.cam.Rotation.Set(0.1, 0.2, 0.3)
		ce := New(st, vp)

		ce.ResetViewport()
		ce.ResetViewport()
		require.Len(t, vp.updates, 2)
		assert.Equal(t, math32.Vec3(0.1, 0.2, 0.3), vp.updates[0].Rotation)
		assert.Equal(t, vp.updates[0], vp.updates[1])
		assert.True(t, vp.cam.Rotation.IsFinite())
	}
}

func TestSaveView(t *testing.T) {
	st := newRecordStore()
	st.cam.Orientation = camera.FocusOrientation(math32.Vec3(1, 1, 1))
	vp := newRecordViewport()
	vp.cam.Position.Set(4, 5, 6)
	vp.cam.Rotation.Set(0.3, 0.5, 0.1)
	ce := New(st, vp)
	require.Equal(t, camera.Focus, ce.Mode())

	require.True(t, ce.SaveView())
	look, up := camera.EulerToLookUp(vp.cam.Rotation)
	assert.Equal(t, []write{
		{"position", math32.Vec3(4, 5, 6)},
		{"look", look},
		{"up", up},
	}, st.writes)
	assert.Equal(t, camera.Look, st.cam.Orientation.Mode)
	assert.Equal(t, math32.Vec3(1, 1, 1), st.cam.Orientation.Focus)
	assert.Equal(t, camera.Look, ce.Mode())
	assert.Equal(t, look, ce.Orientation().Look)
	assert.Equal(t, math32.Vec3(1, 1, 1), ce.Orientation().Focus)
	assert.Empty(t, vp.updates)
}

func TestSyncRoundTrip(t *testing.T) {
	var cam camera.SceneCamera
	cam.Defaults()
	st := scene.NewStore(cam)
	vp := viewport.New()
	ce := New(st, vp)

	require.True(t, ce.EditOrientation(math32.X, "1"))
	require.True(t, ce.EditUp(math32.Z, "0.5"))
	require.True(t, ce.ResetViewport())

	vp.Rotate(15, -10)
	vp.Zoom(1)
	moved := vp.Camera()
	require.True(t, ce.SaveView())
	require.True(t, ce.ResetViewport())
	assert.Equal(t, moved.Position, vp.Camera().Position)
	look, up := vp.LookUp()
	wantLook, wantUp := moved.LookUp()
	assertVector(t, wantLook, look)
	assertVector(t, wantUp, up)

	action, ok := st.Undo()
	assert.True(t, ok)
	assert.Equal(t, "set camera up", action)
}
