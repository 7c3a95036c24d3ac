// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command radar renders a radar chart to an SVG file from value series
// given on the command line, with chart options read from an optional
// TOML file.
//
//	radar -o chart.svg --labels speed,power,range 80,65,90 55,95,60
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/radar"
	"cogentcore.org/radar/svgrender"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Options are the chart options loadable from a TOML file.
type Options struct {
	// Size is the width and height of the SVG document.
	Size float64 `toml:"size"`

	// Rotation is the chart rotation in degrees. 270 puts the first
	// category at the top.
	Rotation float32 `toml:"rotation"`

	// Rings is the number of concentric web rings.
	Rings int `toml:"rings"`

	// SkipSpokes and SkipRings space out the web grid.
	SkipSpokes int `toml:"skip-spokes"`
	SkipRings  int `toml:"skip-rings"`

	// Hole enables the center cut-out, sized by HolePercent.
	Hole        bool    `toml:"hole"`
	HolePercent float32 `toml:"hole-percent"`

	// AxisMin and AxisMax force the value axis ends when set.
	AxisMin *float64 `toml:"axis-min"`
	AxisMax *float64 `toml:"axis-max"`
}

func (op *Options) Defaults() {
	op.Size = 480
	op.Rotation = 270
	op.Rings = 5
	op.HolePercent = 0.25
}

// Load reads options from the given TOML file, on top of defaults.
func (op *Options) Load(fname string) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, op)
}

// Chart builds a configured chart from the options.
func (op *Options) Chart() *radar.Chart {
	ch := radar.New()
	ch.Rotation = op.Rotation
	ch.Web.Rings = op.Rings
	ch.Web.SetSkipSpokes(op.SkipSpokes)
	ch.Web.SetSkipRings(op.SkipRings)
	ch.Hole.On = op.Hole
	ch.Hole.RadiusPercent = op.HolePercent
	if op.AxisMin != nil {
		ch.Axis.Forced.Min = *op.AxisMin
		ch.Axis.Forced.FixMin = true
	}
	if op.AxisMax != nil {
		ch.Axis.Forced.Max = *op.AxisMax
		ch.Axis.Forced.FixMax = true
	}
	return ch
}

// parseSeries parses one comma-separated series argument.
func parseSeries(arg string) (radar.Values, error) {
	fields := strings.Split(arg, ",")
	vals := make(radar.Values, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

var (
	output    string
	optsFile  string
	labelList string
	highlight int
)

var rootCmd = &cobra.Command{
	Use:   "radar [series ...]",
	Short: "radar renders radar (spider web) charts to SVG",
	Long: `radar renders radar (spider web) charts to SVG.
Each argument is one data series as comma-separated values, one value
per category. All series must have the same number of values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &Options{}
		opts.Defaults()
		if optsFile != "" {
			if err := opts.Load(optsFile); err != nil {
				return err
			}
		}

		var labels []string
		if labelList != "" {
			labels = strings.Split(labelList, ",")
		}
		dt := radar.NewData(labels...)
		for _, arg := range args {
			vals, err := parseSeries(arg)
			if err != nil {
				return err
			}
			dt.Series = append(dt.Series, vals)
		}

		ch := opts.Chart()
		if err := ch.SetData(dt); err != nil {
			return err
		}
		if highlight >= 0 {
			ch.Highlighted = highlight
		}

		fp, err := os.Create(output)
		if err != nil {
			return err
		}
		defer fp.Close()
		svgrender.New(fp).Render(ch, opts.Size, opts.Size)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "radar.svg", "output SVG file")
	rootCmd.Flags().StringVar(&optsFile, "options", "", "TOML chart options file")
	rootCmd.Flags().StringVar(&labelList, "labels", "", "comma-separated category labels")
	rootCmd.Flags().IntVar(&highlight, "highlight", -1, "category index to highlight")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
