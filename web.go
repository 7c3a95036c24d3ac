// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

// Web configures the decorative grid of the chart: the spokes running
// from the center to each category vertex, and the concentric rings
// between the center and the outer edge.
type Web struct {
	// Rings is the number of concentric rings, spaced evenly from the
	// center to the chart radius.
	Rings int

	// LineWidth is the stroke width of web lines, in the same units as
	// the content box.
	LineWidth float32

	// skip counts are kept unexported so the setters can clamp them.
	skipSpokes int
	skipRings  int
}

func (wb *Web) Defaults() {
	wb.Rings = 5
	wb.LineWidth = 1.5
}

// SetSkipSpokes sets the number of spokes skipped between drawn ones,
// clamped to be non-negative.
func (wb *Web) SetSkipSpokes(n int) *Web {
	wb.skipSpokes = max(n, 0)
	return wb
}

// SkipSpokes returns the effective spoke skip count.
func (wb *Web) SkipSpokes() int {
	return wb.skipSpokes
}

// SetSkipRings sets the number of rings skipped between drawn ones,
// clamped to be non-negative.
func (wb *Web) SetSkipRings(n int) *Web {
	wb.skipRings = max(n, 0)
	return wb
}

// SkipRings returns the effective ring skip count.
func (wb *Web) SkipRings() int {
	return wb.skipRings
}

// SpokeEligible reports whether spoke i is eligible for drawing given
// the number of spokes skipped between drawn ones: every (skip+1)th
// spoke survives, and a skip of 0 keeps them all. The renderer still
// applies its own visibility and style decisions on top.
func SpokeEligible(i, skip int) bool {
	return skip == 0 || i%(skip+1) == 0
}

// RingEligible reports whether ring i is eligible for drawing, under
// the same spacing rule as [SpokeEligible].
func RingEligible(i, skip int) bool {
	return SpokeEligible(i, skip)
}

// InnerHoleRadius returns the radius of the decorative terminator
// drawn at the outer end of each web spoke, for the given web line
// width.
func InnerHoleRadius(lineWidth float32) float32 {
	return lineWidth * 3
}
