// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

// Renderer is the capability set a drawing backend supplies to paint a
// chart. The geometry core calls it from [Chart.Draw] and never
// touches pixels itself; implementations query the chart read-only for
// points and eligibility decisions. See the svgrender package for a
// reference backend.
type Renderer interface {
	// DrawExtras draws the decorations behind the data: the web grid
	// and the center hole.
	DrawExtras(ch *Chart)

	// DrawData draws the data series polygons.
	DrawData(ch *Chart)

	// DrawHighlighted draws the highlight indication for the given
	// category index.
	DrawHighlighted(ch *Chart, index int)
}
