// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender renders a radar chart to SVG, implementing the
// [radar.Renderer] capability set on top of svgo. It is the reference
// drawing backend for the geometry core: all placement comes from
// radar geometry queries, and this package only turns points into SVG
// elements.
package svgrender

import (
	"fmt"
	"io"

	"cogentcore.org/core/math32"
	"cogentcore.org/radar"
	svg "github.com/ajstarks/svgo/float"
)

// Styles has the visual styling of the SVG output.
type Styles struct {
	// Background is the chart background fill, also used to punch out
	// the center hole.
	Background string

	// WebColor is the stroke color of the web grid.
	WebColor string

	// SeriesColors are cycled through for the data polygons.
	SeriesColors []string

	// FillOpacity is the opacity of the polygon fills.
	FillOpacity float64

	// HighlightColor is used for the highlight spoke and markers.
	HighlightColor string

	// FontSize is the label and legend font size in points.
	FontSize float32
}

func (st *Styles) Defaults() {
	st.Background = "#ffffff"
	st.WebColor = "#9e9e9e"
	st.SeriesColors = []string{"#1565c0", "#2e7d32", "#c62828", "#6a1b9a"}
	st.FillOpacity = 0.25
	st.HighlightColor = "#fbc02d"
	st.FontSize = 10
}

// Renderer draws a [radar.Chart] into an SVG document.
type Renderer struct {
	Styles Styles

	canvas *svg.SVG
}

// New returns a Renderer writing SVG to the given writer, with default
// styles.
func New(w io.Writer) *Renderer {
	rd := &Renderer{canvas: svg.New(w)}
	rd.Styles.Defaults()
	return rd
}

// Render draws the whole chart into a w x h SVG document. It sets the
// chart content box from the offset estimates, so labels and the
// legend region are not clipped, and then drives [radar.Chart.Draw].
func (rd *Renderer) Render(ch *radar.Chart, w, h float64) {
	labelsOn := ch.Data != nil && len(ch.Data.Labels) > 0
	inset := radar.BaseOffset(true, labelsOn, rd.labelWidth(ch))
	legend := radar.LegendOffset(rd.Styles.FontSize)
	ch.Box = math32.B2(inset, inset, float32(w)-inset, float32(h)-inset-legend)

	rd.canvas.Start(w, h)
	rd.canvas.Rect(0, 0, w, h, "fill:"+rd.Styles.Background)
	ch.Draw(rd)
	rd.drawLegend(ch, w, h)
	rd.canvas.End()
}

// labelWidth estimates the widest category label as rendered; SVG has
// no text measurement, so this uses a mean glyph width heuristic.
func (rd *Renderer) labelWidth(ch *radar.Chart) float32 {
	if ch.Data == nil {
		return 0
	}
	n := 0
	for _, lb := range ch.Data.Labels {
		n = max(n, len(lb))
	}
	return 0.6 * rd.Styles.FontSize * float32(n)
}

// DrawExtras draws the web grid, the category labels, and the center
// hole.
func (rd *Renderer) DrawExtras(ch *radar.Chart) {
	c := ch.Center()
	r := ch.Radius()
	n := ch.EntryCount()
	slice := ch.SliceAngle()
	web := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", rd.Styles.WebColor, ch.Web.LineWidth)

	for i := 1; i <= ch.Web.Rings; i++ {
		if !radar.RingEligible(i-1, ch.Web.SkipRings()) {
			continue
		}
		rr := float64(r) * float64(i) / float64(ch.Web.Rings)
		rd.canvas.Circle(float64(c.X), float64(c.Y), rr, web)
	}

	term := radar.InnerHoleRadius(ch.Web.LineWidth)
	for i := 0; i < n; i++ {
		if !radar.SpokeEligible(i, ch.Web.SkipSpokes()) {
			continue
		}
		angle := slice*float32(i) + ch.Rotation
		p := radar.PointOnCircle(c, r, angle)
		rd.canvas.Line(float64(c.X), float64(c.Y), float64(p.X), float64(p.Y), web)
		rd.canvas.Circle(float64(p.X), float64(p.Y), float64(term), "fill:"+rd.Styles.WebColor)
		if lb := ch.Data.Label(i); lb != "" {
			lp := radar.PointOnCircle(c, r+term+rd.Styles.FontSize, angle)
			rd.canvas.Text(float64(lp.X), float64(lp.Y), lb, rd.textStyle())
		}
	}

	if hr := ch.HoleRadius(); hr > 0 {
		rd.canvas.Circle(float64(c.X), float64(c.Y), float64(hr), "fill:"+rd.Styles.Background)
	}
}

// DrawData draws one closed polygon per data series.
func (rd *Renderer) DrawData(ch *radar.Chart) {
	n := ch.EntryCount()
	for si, sr := range ch.Data.Series {
		xs := make([]float64, 0, n)
		ys := make([]float64, 0, n)
		for i := 0; i < sr.Len(); i++ {
			p := ch.PointForEntry(i, sr.Float1D(i))
			xs = append(xs, float64(p.X))
			ys = append(ys, float64(p.Y))
		}
		clr := rd.seriesColor(si)
		st := fmt.Sprintf("stroke:%s;stroke-width:2;fill:%s;fill-opacity:%g", clr, clr, rd.Styles.FillOpacity)
		rd.canvas.Polygon(xs, ys, st)
	}
}

// DrawHighlighted draws the highlight spoke for the given category and
// a marker on each series value along it.
func (rd *Renderer) DrawHighlighted(ch *radar.Chart, index int) {
	c := ch.Center()
	p := radar.PointOnCircle(c, ch.Radius(), ch.SliceAngle()*float32(index)+ch.Rotation)
	rd.canvas.Line(float64(c.X), float64(c.Y), float64(p.X), float64(p.Y),
		"stroke:"+rd.Styles.HighlightColor+";stroke-width:2")
	for _, sr := range ch.Data.Series {
		if index >= sr.Len() {
			continue
		}
		vp := ch.PointForEntry(index, sr.Float1D(index))
		rd.canvas.Circle(float64(vp.X), float64(vp.Y), 4, "fill:"+rd.Styles.HighlightColor)
	}
}

// drawLegend writes one legend entry per series in the reserved strip
// below the chart.
func (rd *Renderer) drawLegend(ch *radar.Chart, w, h float64) {
	if ch.Data == nil || len(ch.Data.Series) == 0 {
		return
	}
	fs := float64(rd.Styles.FontSize)
	y := h - 2*fs
	x := fs
	for si := range ch.Data.Series {
		rd.canvas.Rect(x, y-fs, fs, fs, "fill:"+rd.seriesColor(si))
		rd.canvas.Text(x+1.5*fs, y, fmt.Sprintf("series %d", si+1), rd.textStyle("text-anchor:start"))
		x += 8 * fs
	}
}

func (rd *Renderer) seriesColor(si int) string {
	return rd.Styles.SeriesColors[si%len(rd.Styles.SeriesColors)]
}

func (rd *Renderer) textStyle(over ...string) string {
	st := fmt.Sprintf("font-size:%gpx;text-anchor:middle;fill:#333", rd.Styles.FontSize)
	for _, ov := range over {
		st += ";" + ov
	}
	return st
}
