// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radar implements the geometry core of a radial ("spider web")
// chart: calibration of the radial value axis, the forward mapping from
// (category, value) pairs to screen points, the inverse mapping from
// screen angles back to category indices for highlighting, and the web,
// hole, and inset geometry a renderer needs to lay out the chart.
//
// The package does no drawing itself: pixels are produced by a
// [Renderer] supplied by the host, which queries a [Chart] for points
// and eligibility decisions. All screen geometry uses the image
// convention shared with [cogentcore.org/core/math32]: y grows
// downward, and angles in degrees are measured from the positive x
// axis, increasing clockwise.
package radar
