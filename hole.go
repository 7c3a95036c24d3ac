// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

// Hole configures the optional circular cut-out at the chart center.
type Hole struct {
	// On enables drawing the hole.
	On bool

	// RadiusPercent is the hole radius as a fraction of the overall
	// chart radius. Values outside [0, 1] are passed through
	// unclamped: keeping the hole inside the chart is the caller's
	// responsibility.
	RadiusPercent float32
}

func (hl *Hole) Defaults() {
	hl.RadiusPercent = 0.25
}

// Radius returns the hole radius for the given outer chart radius.
func (hl *Hole) Radius(outer float32) float32 {
	return outer * hl.RadiusPercent
}
