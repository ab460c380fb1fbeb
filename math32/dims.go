// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
)

// DimsN is the number of [Dims] values.
const DimsN = 3

var dimsNames = [DimsN]string{"X", "Y", "Z"}

// String returns the name of the dimension.
func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return fmt.Sprintf("Dims(%d)", int32(d))
	}
	return dimsNames[d]
}

// SetString sets the dimension from its case insensitive name: "x", "y", or "z".
func (d *Dims) SetString(s string) error {
	for i, nm := range dimsNames {
		if strings.EqualFold(nm, s) {
			*d = Dims(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Dims", s)
}

