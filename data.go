// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radar

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	ErrInfinity = errors.New("radar: infinite data value")
	ErrNoData   = errors.New("radar: no data values")
)

// Valuer is the data interface for one series of values, one value per
// category. It is satisfied by [Values] and by tensor types.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D returns the float64 value at given index.
	Float1D(i int) float64
}

// Values provides a minimal implementation of the [Valuer] interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// Range updates the given range with values from data, skipping NaNs.
func Range(data Valuer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}

// CopyValues returns a [Values] that is a copy of the values from data,
// or an error if there are no values or one of them is an Infinity.
// NaN values are skipped in the copying process.
func CopyValues(data Valuer) (Values, error) {
	if data == nil {
		return nil, ErrNoData
	}
	cpy := make(Values, 0, data.Len())
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		if err := CheckFloats(v); err != nil {
			return nil, err
		}
		cpy = append(cpy, v)
	}
	return cpy, nil
}

// Data is the dataset of a radial chart: an ordered sequence of
// categories, each with one value per overlaid series. The chart views
// it read-only; replace it via [Chart.SetData] so the axis is
// recalibrated.
type Data struct {
	// Labels are the category labels, drawn at the outer end of each
	// spoke. Optional: may be nil or shorter than the entry count.
	Labels []string

	// Series are the overlaid value series. All series must have the
	// same length, which is the entry count of the chart.
	Series []Values
}

// NewData returns a Data with the given category labels and no series.
func NewData(labels ...string) *Data {
	return &Data{Labels: labels}
}

// AddSeries appends a series of per-category values.
func (dt *Data) AddSeries(vals ...float64) *Data {
	dt.Series = append(dt.Series, Values(vals))
	return dt
}

// EntryCount returns the number of categories, which is the number of
// slices of the chart. It is 0 for a nil or empty dataset.
func (dt *Data) EntryCount() int {
	if dt == nil {
		return 0
	}
	n := 0
	for _, sr := range dt.Series {
		n = max(n, sr.Len())
	}
	return n
}

// Label returns the label for given category, or "" if not set.
func (dt *Data) Label(i int) string {
	if dt == nil || i < 0 || i >= len(dt.Labels) {
		return ""
	}
	return dt.Labels[i]
}

// CheckLengths checks that all series have the same length.
// Logs and returns an error if not.
func (dt *Data) CheckLengths() error {
	n := 0
	for _, sr := range dt.Series {
		if n == 0 {
			n = sr.Len()
		} else if sr.Len() != n {
			err := errors.New("radar.Data has inconsistent series lengths: all series must have one value per category")
			return errors.Log(err)
		}
	}
	return nil
}

// ValueRange returns the observed minimum and maximum across all
// series, skipping NaNs. A dataset with no values yields the {0, 0}
// range by convention, which downstream geometry treats as nothing to
// draw.
func (dt *Data) ValueRange() minmax.F64 {
	rng := minmax.F64{}
	if dt == nil {
		return rng
	}
	rng.SetInfinity()
	for _, sr := range dt.Series {
		Range(sr, &rng)
	}
	if !rng.IsValid() {
		rng.Set(0, 0)
	}
	return rng
}
