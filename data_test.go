// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import (
	"math"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestValues(t *testing.T) {
	vs := Values{1, 2, 3}
	assert.Equal(t, 3, vs.Len())
	assert.Equal(t, 2.0, vs.Float1D(1))
}

func TestCheckFloats(t *testing.T) {
	assert.NoError(t, CheckFloats(1, 2, 3))
	assert.NoError(t, CheckFloats(math.NaN(), 1))
	assert.ErrorIs(t, CheckFloats(math.Inf(1)), ErrInfinity)
	assert.ErrorIs(t, CheckFloats(math.NaN()), ErrNoData)
	assert.ErrorIs(t, CheckFloats(), ErrNoData)
}

func TestRange(t *testing.T) {
	rng := minmax.F64{}
	rng.SetInfinity()
	Range(Values{3, math.NaN(), -2, 7}, &rng)
	assert.Equal(t, -2.0, rng.Min)
	assert.Equal(t, 7.0, rng.Max)
}

func TestCopyValues(t *testing.T) {
	cpy, err := CopyValues(Values{1, math.NaN(), 2})
	assert.NoError(t, err)
	assert.Equal(t, Values{1, 2}, cpy)

	_, err = CopyValues(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = CopyValues(Values{1, math.Inf(-1)})
	assert.ErrorIs(t, err, ErrInfinity)
}

func TestDataEntryCount(t *testing.T) {
	var nildt *Data
	assert.Equal(t, 0, nildt.EntryCount())
	assert.Equal(t, 0, NewData().EntryCount())

	dt := NewData("a", "b", "c").AddSeries(1, 2, 3).AddSeries(4, 5, 6)
	assert.Equal(t, 3, dt.EntryCount())
	assert.Equal(t, "b", dt.Label(1))
	assert.Equal(t, "", dt.Label(5))
	assert.NoError(t, dt.CheckLengths())

	bad := NewData().AddSeries(1, 2).AddSeries(1)
	assert.Error(t, bad.CheckLengths())
}

func TestDataValueRange(t *testing.T) {
	dt := NewData().AddSeries(1, 5, 3).AddSeries(-2, 0, 4)
	rng := dt.ValueRange()
	assert.Equal(t, -2.0, rng.Min)
	assert.Equal(t, 5.0, rng.Max)

	empty := NewData()
	rng = empty.ValueRange()
	assert.Equal(t, 0.0, rng.Min)
	assert.Equal(t, 0.0, rng.Max)
}
