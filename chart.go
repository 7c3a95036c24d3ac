// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import "cogentcore.org/core/math32"

// Chart holds the full geometry state for one radial chart: the
// dataset, the calibrated value axis, web and hole styling, the chart
// rotation, and the content box it is drawn into. All per-chart state
// lives here; the pure geometry functions in this package take it by
// reference and hold nothing of their own.
//
// A Chart is not goroutine safe: it is owned by the single rendering
// and interaction goroutine of the host view, as elsewhere in Cogent
// Core. Hosts calling from multiple goroutines must serialize access,
// because [Chart.UpdateRange] mutates the cached axis range in place.
type Chart struct {
	// Data is the current dataset. Replace it via [Chart.SetData] so
	// the axis is recalibrated; the chart reads it, never writes it.
	Data *Data

	// Axis is the radial value axis calibration.
	Axis Axis

	// Web is the spoke and ring grid configuration.
	Web Web

	// Hole is the central cut-out configuration.
	Hole Hole

	// Rotation is the chart rotation in degrees, added to every slice
	// angle. User or gesture controlled.
	Rotation float32

	// Box is the content rectangle the chart is drawn into; its
	// shorter half dimension is the chart radius.
	Box math32.Box2

	// Highlighted is the currently highlighted category index, or -1
	// for none.
	Highlighted int
}

// New returns a new Chart with default styling and no data.
func New() *Chart {
	ch := &Chart{Highlighted: -1}
	ch.Web.Defaults()
	ch.Hole.Defaults()
	return ch
}

// SetData replaces the dataset and recalibrates the axis. It returns
// an error, already logged, if the series lengths are inconsistent, in
// which case the dataset is not installed.
func (ch *Chart) SetData(dt *Data) error {
	if err := dt.CheckLengths(); err != nil {
		return err
	}
	ch.Data = dt
	ch.UpdateRange()
	return nil
}

// UpdateRange recalibrates the value axis from the current dataset.
// This is the explicit invalidation point for every value derived from
// the axis: it must be called after any mutation of dataset values,
// and [Chart.SetData] calls it automatically.
func (ch *Chart) UpdateRange() {
	rng := ch.Data.ValueRange()
	ch.Axis.Calibrate(rng.Min, rng.Max)
}

// EntryCount returns the number of categories in the current dataset.
func (ch *Chart) EntryCount() int {
	return ch.Data.EntryCount()
}

// Center returns the center of the content box.
func (ch *Chart) Center() math32.Vector2 {
	return ch.Box.Center()
}

// Radius returns the outer chart radius: half the shorter dimension
// of the content box.
func (ch *Chart) Radius() float32 {
	sz := ch.Box.Size()
	return math32.Min(sz.X, sz.Y) / 2
}

// ScaleFactor returns the pixels-per-value-unit factor under the
// current content box and axis calibration, 0 when the axis range is
// empty.
func (ch *Chart) ScaleFactor() float64 {
	return ch.Axis.ScaleFactor(ch.Box.Size())
}

// SliceAngle returns the angular width of one category slice for the
// current dataset, 0 when it has no entries.
func (ch *Chart) SliceAngle() float32 {
	return SliceAngle(ch.EntryCount())
}

// PointForEntry returns the screen point for the given category index
// and value under the current geometry. In the degenerate cases, no
// entries or an empty axis range, it returns the chart center rather
// than faulting; such charts are not drawn at all.
func (ch *Chart) PointForEntry(index int, value float64) math32.Vector2 {
	n := ch.EntryCount()
	sf := ch.ScaleFactor()
	if n == 0 || sf == 0 {
		return ch.Center()
	}
	return PointForEntry(index, value, ch.Center(), ch.Axis.Range.Min, sf, ch.Rotation, SliceAngle(n))
}

// IndexForAngle resolves an absolute screen angle in degrees to the
// category slice containing it, under the current rotation and entry
// count. See [IndexForAngle] for the boundary rule.
func (ch *Chart) IndexForAngle(angle float32) int {
	return IndexForAngle(angle, ch.Rotation, ch.EntryCount())
}

// HoleRadius returns the center hole radius under the current chart
// radius, 0 when the hole is off.
func (ch *Chart) HoleRadius() float32 {
	if !ch.Hole.On {
		return 0
	}
	return ch.Hole.Radius(ch.Radius())
}

// HighlightAtPoint resolves the category slice under the given screen
// point and records it as the highlighted index, returning it. A chart
// with no entries clears the highlight and returns -1.
func (ch *Chart) HighlightAtPoint(p math32.Vector2) int {
	if ch.EntryCount() == 0 {
		ch.Highlighted = -1
		return -1
	}
	ch.Highlighted = ch.IndexForAngle(AngleForPoint(p, ch.Center()))
	return ch.Highlighted
}

// Draw renders the chart through the given renderer: decorations
// first, then the data series, then any active highlight. It is a
// no-op in the degenerate cases, no entries or an empty axis range,
// implementing the "no entries, nothing is drawn" policy.
func (ch *Chart) Draw(rnd Renderer) {
	if ch.EntryCount() == 0 || ch.ScaleFactor() == 0 {
		return
	}
	rnd.DrawExtras(ch)
	rnd.DrawData(ch)
	if ch.Highlighted >= 0 && ch.Highlighted < ch.EntryCount() {
		rnd.DrawHighlighted(ch, ch.Highlighted)
	}
}
