// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import "cogentcore.org/core/math32"

// NormAngle normalizes an angle in degrees into [0, 360).
func NormAngle(angle float32) float32 {
	a := math32.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleForPoint returns the screen angle in degrees of p about center,
// normalized into [0, 360), in the same convention as [PointOnCircle].
func AngleForPoint(p, center math32.Vector2) float32 {
	d := p.Sub(center)
	return NormAngle(math32.RadToDeg(math32.Atan2(d.Y, d.X)))
}

// DistanceToCenter returns the distance of p from the chart center.
func DistanceToCenter(p, center math32.Vector2) float32 {
	return p.Sub(center).Length()
}

// ReferenceAngle returns the upper angular boundary of slice i:
// sliceAngle * (i+1) - sliceAngle / 2. The n reference angles
// partition [0, 360) into n equal arcs.
func ReferenceAngle(i int, sliceAngle float32) float32 {
	return sliceAngle*float32(i+1) - sliceAngle/2
}

// IndexForAngle resolves which category slice contains the given
// absolute screen angle, after removing the chart rotation and
// normalizing into [0, 360). The first index whose [ReferenceAngle]
// strictly exceeds the normalized angle wins, so an angle exactly on a
// boundary belongs to the next slice; angles beyond the last reference
// angle wrap around into slice 0. Returns 0 without fault when n <= 0,
// though callers are expected not to resolve angles on an empty chart.
func IndexForAngle(angle, rotation float32, n int) int {
	if n <= 0 {
		return 0
	}
	a := NormAngle(angle - rotation)
	slice := SliceAngle(n)
	for i := 0; i < n; i++ {
		if ReferenceAngle(i, slice) > a {
			return i
		}
	}
	return 0
}
