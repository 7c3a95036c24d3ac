// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import "cogentcore.org/core/math32"

// SliceAngle returns the angular width in degrees of one category
// slice for n categories: 360 / n. The angle is always derived on
// demand from the current entry count, never cached, so a dataset swap
// cannot leave it stale. Returns 0 when n <= 0: a chart with no
// entries draws nothing.
func SliceAngle(n int) float32 {
	if n <= 0 {
		return 0
	}
	return 360 / float32(n)
}

// PointOnCircle returns the point at the given distance from center at
// the given angle in degrees, in the package's screen convention
// (y down, angles clockwise from the positive x axis).
func PointOnCircle(center math32.Vector2, radius, angle float32) math32.Vector2 {
	rad := math32.DegToRad(angle)
	return math32.Vec2(center.X+radius*math32.Cos(rad), center.Y+radius*math32.Sin(rad))
}

// PointForEntry maps a category index and data value to an absolute
// screen point: the radius is (value - axisMin) * scale, and the angle
// is sliceAngle * index + rotation. The mapping is pure: fixed inputs
// always produce the same point. scale and axisMin come from
// [Axis.ScaleFactor] and the calibrated [Axis.Range]; callers must
// short-circuit before calling when scale is 0.
func PointForEntry(index int, value float64, center math32.Vector2, axisMin, scale float64, rotation, sliceAngle float32) math32.Vector2 {
	radius := float32((value - axisMin) * scale)
	angle := sliceAngle*float32(index) + rotation
	return PointOnCircle(center, radius, angle)
}
