// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jusqua/dip-nd-benchmark/results"
)

const (
	lineWidth  = 8 * vg.Inch
	lineHeight = 6 * vg.Inch
	lineDPI    = 100
)

// dimensionTicks labels positions 1..n as "1D".."nD".
func dimensionTicks(n int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: fmt.Sprintf("%dD", i+1)}
	}
	return ticks
}

// LineChart writes <Dir>/<op>.png, one line per technology that
// reported op, plotting its values against dimension on a log
// scale. ok is false only if no technology reported op. Values that
// a log axis cannot show are left out, and a chart with no value left
// is written with empty axes.
func (r *Renderer) LineChart(set *results.Set, op string) (f File, ok bool, err error) {
	series := set.Single(op)
	techs := make([]string, 0, len(series))
	for tech := range series {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	if len(techs) == 0 {
		return File{}, false, nil
	}

	// Every technology is assumed to report every dimension; the
	// first one fixes the axis.
	n := len(series[techs[0]])

	p := plot.New()
	p.X.Label.Text = "Image Dimension"
	p.Y.Label.Text = "Time (μs)"
	p.X.Label.TextStyle.Font.Size = 14
	p.Y.Label.TextStyle.Font.Size = 14
	p.X.Tick.Marker = dimensionTicks(n)
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	bn := newBanner(vg.Points(11))
	drawn := 0
	for _, tech := range techs {
		clr := r.colors().Color(tech)
		xys := make(plotter.XYs, 0, len(series[tech]))
		for i, v := range series[tech] {
			if v <= 0 {
				r.warn("%s: %s: dropping non-positive value %g at %dD\n", op, tech, v, i+1)
				continue
			}
			xys = append(xys, plotter.XY{X: float64(i + 1), Y: v})
		}
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return File{}, false, fmt.Errorf("%s: %s: %w", op, tech, err)
		}
		line.Color = clr
		line.Width = vg.Points(1.5)
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)
		p.Add(line, points)
		bn.Add(set.Name(tech), line, points)
		drawn++
	}
	if drawn == 0 {
		r.warn("%s: no positive values, writing an empty chart\n", op)
		p.X.Min, p.X.Max = 1, float64(n)
		p.Y.Min, p.Y.Max = emptyMin, emptyMax
	}
	widenLogRange(&p.Y)

	path := r.path(op, ".png")
	if err := savePNG(p, bn, lineWidth, lineHeight, lineDPI, path); err != nil {
		return File{}, false, err
	}
	return File{Path: path, Kind: results.Single, Name: op}, true, nil
}

// emptyMin and emptyMax are the y range, in microseconds, of a chart
// with nothing on it.
const (
	emptyMin = 1
	emptyMax = 10
)

// widenLogRange gives a log axis whose data collapsed to a single
// value a decade-wide range around it.
func widenLogRange(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min /= 2
		a.Max *= 2
	}
}
