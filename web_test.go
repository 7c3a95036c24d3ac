// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// eligibility is true exactly for multiples of skip+1.
func TestSpokeEligible(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.True(t, SpokeEligible(i, 0))
	}
	for _, skip := range []int{1, 2, 5} {
		for i := 0; i < 30; i++ {
			assert.Equal(t, i%(skip+1) == 0, SpokeEligible(i, skip), "i=%d skip=%d", i, skip)
			assert.Equal(t, SpokeEligible(i, skip), RingEligible(i, skip))
		}
	}
}

func TestSkipClamp(t *testing.T) {
	wb := &Web{}
	wb.Defaults()
	wb.SetSkipSpokes(-5)
	assert.Equal(t, 0, wb.SkipSpokes())
	wb.SetSkipSpokes(3)
	assert.Equal(t, 3, wb.SkipSpokes())
	wb.SetSkipRings(-1)
	assert.Equal(t, 0, wb.SkipRings())
}

func TestInnerHoleRadius(t *testing.T) {
	assert.Equal(t, float32(4.5), InnerHoleRadius(1.5))
	assert.Equal(t, float32(0), InnerHoleRadius(0))
}

func TestHoleRadius(t *testing.T) {
	hl := &Hole{}
	assert.Equal(t, float32(0), hl.Radius(80))
	hl.RadiusPercent = 1
	assert.Equal(t, float32(80), hl.Radius(80))

	// monotonically non-decreasing in the percent
	prev := float32(0)
	for pct := float32(0); pct <= 1.5; pct += 0.05 {
		hl.RadiusPercent = pct
		r := hl.Radius(80)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, float32(48), LegendOffset(12))
	assert.Equal(t, float32(33), BaseOffset(true, true, 33))
	assert.Equal(t, float32(DefaultBaseOffset), BaseOffset(true, false, 33))
	assert.Equal(t, float32(DefaultBaseOffset), BaseOffset(false, true, 33))
	assert.Equal(t, float32(DefaultBaseOffset), BaseOffset(false, false, 33))
}
