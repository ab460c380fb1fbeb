// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"strings"
)

// OrientationModes are the mutually exclusive ways a [SceneCamera]
// specifies where it is pointing, always paired with its up vector.
type OrientationModes int32

const (
	// Look specifies the direction the camera faces.
	Look OrientationModes = iota

	// Focus specifies a focus vector. The orientation math consumes it as a
	// direction equal to the negated look vector, not as a point relative
	// to the camera position.
	Focus
)

// OrientationModesN is the highest valid value for type OrientationModes, plus one.
const OrientationModesN OrientationModes = 2

var orientationModesNames = [OrientationModesN]string{"look", "focus"}

// OrientationModesValues returns all possible values for the type OrientationModes.
func OrientationModesValues() []OrientationModes {
	return []OrientationModes{Look, Focus}
}

// String returns the string representation of this OrientationModes value.
func (i OrientationModes) String() string {
	if i < 0 || i >= OrientationModesN {
		return fmt.Sprintf("OrientationModes(%d)", int32(i))
	}
	return orientationModesNames[i]
}

// SetString sets the OrientationModes value from its case insensitive
// string representation, and returns an error if the string is invalid.
func (i *OrientationModes) SetString(s string) error {
	for v, nm := range orientationModesNames {
		if strings.EqualFold(nm, s) {
			*i = OrientationModes(v)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type OrientationModes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i OrientationModes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *OrientationModes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
