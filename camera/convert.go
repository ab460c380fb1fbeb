// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import "cogentcore.org/scenes/math32"

var (
	// ForwardAxis is the look direction of a camera with zero rotation.
	ForwardAxis = math32.Vec3(0, 0, 1)

	// UpAxis is the up direction of a camera with zero rotation.
	UpAxis = math32.Vec3(0, 1, 0)

	// ReferenceAxis is the fixed axis that stands in for the up vector
	// when up is parallel to the look direction.
	ReferenceAxis = math32.Vec3(0, 0, 1)
)

// ParallelTol is the squared sine of the smallest angle between two
// directions for them to be considered non-parallel when building a frame.
const ParallelTol = 1.0e-8

// EulerToLookUp returns the look and up vectors of a camera with the given
// XYZ Euler rotation (radians): the rotation applied to [ForwardAxis] and
// [UpAxis]. Both results are unit length.
func EulerToLookUp(rot math32.Vector3) (look, up math32.Vector3) {
	var m math32.Matrix3
	m.SetRotationFromEuler(rot)
	return ForwardAxis.MulMatrix3(&m), UpAxis.MulMatrix3(&m)
}

// LookUpBasis returns the rotation matrix whose columns are the orthonormal
// camera frame for the given look and up vectors: the Z column is the look
// direction, the Y column is up made orthogonal to look, and the X column
// completes a right handed frame. Neither input needs to be normalized or
// orthogonal. If up is parallel to look, [ReferenceAxis] takes its place.
// If no frame can be built (zero or non-finite look, or look parallel to
// both up and the reference axis), it returns the identity and false.
func LookUpBasis(look, up math32.Vector3) (math32.Matrix3, bool) {
	m := math32.Identity3()
	if !look.IsFinite() || !up.IsFinite() {
		return m, false
	}
	z := look.Normal()
	if z.LengthSquared() == 0 {
		return m, false
	}
	x := up.Normal().Cross(z)
	if x.LengthSquared() < ParallelTol {
		x = ReferenceAxis.Cross(z)
		if x.LengthSquared() < ParallelTol {
			return m, false
		}
	}
	x = x.Normal()
	y := z.Cross(x)
	m.SetBasis(x, y, z)
	return m, true
}

// LookUpToEuler returns the XYZ Euler angles (radians) of the camera
// orientation given by the look and up vectors, such that
// [EulerToLookUp] returns the normalized look and the normalized
// component of up orthogonal to look. The result is false, with zero
// angles, when look and up do not determine an orientation
// (see [LookUpBasis]). The angles are never NaN or infinite.
func LookUpToEuler(look, up math32.Vector3) (math32.Vector3, bool) {
	m, ok := LookUpBasis(look, up)
	if !ok {
		return math32.Vector3{}, false
	}
	var rot math32.Vector3
	rot.SetEulerAnglesFromMatrix(&m)
	return rot, true
}

// FocusUpToEuler returns the Euler angles for the focus and up vectors,
// which is [LookUpToEuler] of the negated focus. The focus is treated as
// a direction, independent of the camera position.
func FocusUpToEuler(focus, up math32.Vector3) (math32.Vector3, bool) {
	return LookUpToEuler(focus.Negate(), up)
}

// OrientationToEuler returns the Euler angles for the active vector of the
// orientation together with the up vector.
func OrientationToEuler(or Orientation, up math32.Vector3) (math32.Vector3, bool) {
	if or.Mode == Focus {
		return FocusUpToEuler(or.Focus, up)
	}
	return LookUpToEuler(or.Look, up)
}
