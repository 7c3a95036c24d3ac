// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

// LegendOffset returns the minimum content inset to reserve for the
// legend region, as a function of the legend font size in points, so
// that axis content does not overlap it.
func LegendOffset(fontSize float32) float32 {
	return fontSize * 4
}

// DefaultBaseOffset is the content inset used when category labels are
// not drawn.
const DefaultBaseOffset = 10

// BaseOffset returns the minimum content inset needed to keep category
// labels from clipping: the rotated label width when the category axis
// and its labels are both enabled, else [DefaultBaseOffset]. The label
// width is an externally supplied text measurement.
func BaseOffset(axisOn, labelsOn bool, rotatedLabelWidth float32) float32 {
	if axisOn && labelsOn {
		return rotatedLabelWidth
	}
	return DefaultBaseOffset
}
