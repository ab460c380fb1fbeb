// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/scenes/math32"
	"github.com/stretchr/testify/assert"
)

func TestOrientationModes(t *testing.T) {
	assert.Equal(t, "look", Look.String())
	assert.Equal(t, "focus", Focus.String())
	assert.Equal(t, "OrientationModes(7)", OrientationModes(7).String())
	assert.Equal(t, []OrientationModes{Look, Focus}, OrientationModesValues())

	var m OrientationModes
	assert.NoError(t, m.SetString("Focus"))
	assert.Equal(t, Focus, m)
	assert.Error(t, m.SetString("target"))
	assert.Equal(t, Focus, m)

	b, err := Look.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "look", string(b))
	assert.NoError(t, m.UnmarshalText(b))
	assert.Equal(t, Look, m)
}

func TestOrientationShadowCache(t *testing.T) {
	or := LookOrientation(math32.Vec3(1, 2, 3))
	assert.Equal(t, math32.Vec3(1, 2, 3), or.Active())

	or.SetMode(Focus)
	assert.Equal(t, math32.Vector3{}, or.Active())
	or.SetActive(math32.Vec3(4, 5, 6))
	assert.Equal(t, math32.Vec3(1, 2, 3), or.Look)

	or.SetMode(Look)
	assert.Equal(t, math32.Vec3(1, 2, 3), or.Active())
	assert.Equal(t, math32.Vec3(4, 5, 6), or.Vector(Focus))

	or.SetVector(Focus, math32.Vec3(7, 8, 9))
	assert.Equal(t, Look, or.Mode)
	assert.Equal(t, math32.Vec3(7, 8, 9), or.Focus)
}

func TestSceneCameraDefaults(t *testing.T) {
	var sc SceneCamera
	sc.Defaults()
	assert.Equal(t, math32.Vec3(0, 0, 5), sc.Position)
	assert.Equal(t, Look, sc.Orientation.Mode)
	assert.Equal(t, float32(30), sc.HeightAngle)

	rot, ok := sc.Euler()
	assert.True(t, ok)
	look, up := EulerToLookUp(rot)
	assertVectorTol(t, math32.Vec3(0, 0, -1), look, roundTripTol)
	assertVectorTol(t, math32.Vec3(0, 1, 0), up, roundTripTol)
	assert.Contains(t, sc.String(), "look: (0, 0, -1)")
}

func TestViewportCameraDefaults(t *testing.T) {
	var vc ViewportCamera
	vc.Defaults()
	look, up := vc.LookUp()
	assertVectorTol(t, math32.Vec3(0, 0, -1), look, 1e-6)
	assertVectorTol(t, vc.Up, up, 1e-6)
	assert.Equal(t, math32.Vec3(0, 0, 10), vc.Position)
}
