// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jusqua/dip-nd-benchmark/results"
)

const (
	barWidth  = 14 * vg.Inch
	barHeight = 7 * vg.Inch
	barDPI    = 300

	// clusterWidth is the width, in operator slots, taken by the
	// bars of one operator.
	clusterWidth = 0.8
)

// A GroupTable is the data of one group bar chart.
type GroupTable struct {
	// Operators are the x axis, in first-encountered order.
	Operators []string

	// Techs are the bar series, sorted by identifier.
	Techs []string

	// Heights[i][j] is the rounded mean of Techs[i] for
	// Operators[j], or 0 if Techs[i] did not report it.
	Heights [][]float64
}

// NewGroupTable computes the bar heights of group.
func NewGroupTable(set *results.Set, group string) *GroupTable {
	t := &GroupTable{
		Operators: set.GroupOperators(group),
		Techs:     set.GroupTechnologies(group),
	}
	t.Heights = make([][]float64, len(t.Techs))
	for i, tech := range t.Techs {
		t.Heights[i] = make([]float64, len(t.Operators))
		for j, op := range t.Operators {
			if mean, ok := set.Mean(group, op, tech); ok {
				t.Heights[i][j] = mean
			}
		}
	}
	return t
}

// BarChart writes <Dir>/<group>-group.png with one cluster of bars
// per operator of group and one bar per technology, on a log scale.
// ok is false only if no technology reported group. If no bar has a
// positive height the chart is written without bars.
func (r *Renderer) BarChart(set *results.Set, group string) (f File, ok bool, err error) {
	t := NewGroupTable(set, group)
	if len(t.Techs) == 0 {
		return File{}, false, nil
	}

	p := plot.New()
	p.X.Label.Text = "Operations"
	p.Y.Label.Text = "Time (μs)"
	p.X.Label.TextStyle.Font.Size = 14
	p.Y.Label.TextStyle.Font.Size = 14
	p.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightBold

	ticks := make(plot.ConstantTicks, len(t.Operators))
	for i, op := range t.Operators {
		ticks[i] = plot.Tick{Value: float64(i), Label: op}
	}
	p.X.Tick.Marker = ticks
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{0xB0}
	p.Add(grid)

	bn := newBanner(vg.Points(11))
	w := clusterWidth / float64(len(t.Techs))
	drawn := 0
	for i, tech := range t.Techs {
		b := &bars{
			heights: t.Heights[i],
			offset:  -clusterWidth/2 + w*(float64(i)+0.5),
			width:   w,
			color:   withAlpha(r.colors().Color(tech), 0.8),
			label: text.Style{
				Color:   color.Black,
				Font:    font.From(plot.DefaultFont, 9),
				XAlign:  draw.XCenter,
				YAlign:  draw.YBottom,
				Handler: plot.DefaultTextHandler,
			},
		}
		p.Add(b)
		bn.Add(set.Name(tech), b)
		if b.any() {
			drawn++
		}
	}
	if drawn == 0 {
		r.warn("%s: no positive means, writing an empty chart\n", group)
		p.Y.Min, p.Y.Max = emptyMin, emptyMax
	} else {
		// Leave room below the shortest bar and above the tallest
		// bar's label.
		p.Y.Min /= 2
		p.Y.Max *= 3
	}

	path := r.path(group, "-group.png")
	if err := savePNG(p, bn, barWidth, barHeight, barDPI, path); err != nil {
		return File{}, false, err
	}
	return File{Path: path, Kind: results.Group, Name: group}, true, nil
}

// bars draws one technology's bars of a clustered bar chart. Bar i
// stands at x = i + offset and rises from the bottom of the data
// area, so it works on a log axis. Zero heights are not drawn.
type bars struct {
	heights []float64
	offset  float64
	width   float64
	color   color.Color
	label   text.Style
}

func (b *bars) any() bool {
	for _, h := range b.heights {
		if h > 0 {
			return true
		}
	}
	return false
}

// Plot implements plot.Plotter.
func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, h := range b.heights {
		if h <= 0 {
			continue
		}
		x := float64(i) + b.offset
		x0, x1 := trX(x-b.width/2), trX(x+b.width/2)
		y := trY(h)
		pts := []vg.Point{
			{X: x0, Y: c.Min.Y},
			{X: x0, Y: y},
			{X: x1, Y: y},
			{X: x1, Y: c.Min.Y},
		}
		c.FillPolygon(b.color, c.ClipPolygonY(pts))
		c.FillText(b.label, vg.Point{X: (x0 + x1) / 2, Y: y + vg.Points(1)}, strconv.FormatFloat(h, 'f', 0, 64))
	}
}

// DataRange implements plot.DataRanger. Only positive heights count
// towards the y range.
func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.heights))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, h := range b.heights {
		if h > 0 {
			ymin = math.Min(ymin, h)
			ymax = math.Max(ymax, h)
		}
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, pts)
}
