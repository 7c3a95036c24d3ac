// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Axis is the radial value axis of the chart. It owns the calibrated
// range, which is replaced by [Axis.Calibrate] on every dataset change
// and is read-only everywhere else.
type Axis struct {
	// Range is the calibrated min / max of the axis values.
	Range minmax.F64

	// Forced optionally fixes either end of the range, overriding the
	// calibrated values: set Min / Max and the corresponding FixMin /
	// FixMax flag.
	Forced minmax.Range64
}

// Calibrate replaces the cached range from the given observed dataset
// extrema, applying any forced override. A degenerate dataset yields
// the {0, 0} range, which reads as an empty axis rather than a fault.
func (ax *Axis) Calibrate(dmin, dmax float64) {
	ax.Range.Set(dmin, dmax)
	ax.Range.Min, ax.Range.Max = ax.Forced.Clamp(ax.Range.Min, ax.Range.Max)
	if ax.Range.Max < ax.Range.Min {
		ax.Range.Max = ax.Range.Min
	}
}

// ScaleFactor returns the pixels-per-value-unit factor for a chart
// drawn in a content box of the given size: half the shorter dimension
// divided by the axis range. It returns 0 when the range is empty;
// callers treat that as nothing to draw instead of dividing by zero.
func (ax *Axis) ScaleFactor(size math32.Vector2) float64 {
	r := ax.Range.Range()
	if r <= 0 {
		return 0
	}
	return float64(math32.Min(size.X, size.Y)) / 2 / r
}
