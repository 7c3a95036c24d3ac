// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestCalibrate(t *testing.T) {
	ax := Axis{}
	ax.Calibrate(-3, 12)
	assert.Equal(t, -3.0, ax.Range.Min)
	assert.Equal(t, 12.0, ax.Range.Max)

	// recalibration replaces the cached range
	ax.Calibrate(0, 5)
	assert.Equal(t, 0.0, ax.Range.Min)
	assert.Equal(t, 5.0, ax.Range.Max)

	// degenerate dataset convention
	ax.Calibrate(0, 0)
	assert.Equal(t, 0.0, ax.Range.Range())
}

func TestCalibrateForced(t *testing.T) {
	ax := Axis{}
	ax.Forced.Min = 0
	ax.Forced.FixMin = true
	ax.Forced.Max = 100
	ax.Forced.FixMax = true
	ax.Calibrate(13, 42)
	assert.Equal(t, 0.0, ax.Range.Min)
	assert.Equal(t, 100.0, ax.Range.Max)

	// only one end forced: the other follows the data
	ax = Axis{}
	ax.Forced.Min = 0
	ax.Forced.FixMin = true
	ax.Calibrate(13, 42)
	assert.Equal(t, 0.0, ax.Range.Min)
	assert.Equal(t, 42.0, ax.Range.Max)
}

func TestScaleFactor(t *testing.T) {
	ax := Axis{}
	ax.Calibrate(0, 100)
	assert.Equal(t, 1.0, ax.ScaleFactor(math32.Vec2(200, 200)))

	// shorter dimension wins
	assert.Equal(t, 0.5, ax.ScaleFactor(math32.Vec2(400, 100)))

	// empty range: nothing to scale
	ax.Calibrate(5, 5)
	assert.Equal(t, 0.0, ax.ScaleFactor(math32.Vec2(200, 200)))
}
