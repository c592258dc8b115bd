// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// legendColumns is the number of legend entries per banner row.
const legendColumns = 3

// A banner is a legend laid out in rows of legendColumns entries,
// drawn above the data area of a plot and as wide as it.
type banner struct {
	style   text.Style
	entries []bannerEntry
}

type bannerEntry struct {
	name   string
	thumbs []plot.Thumbnailer
}

func newBanner(size vg.Length) *banner {
	return &banner{style: text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
	}}
}

func (b *banner) Add(name string, thumbs ...plot.Thumbnailer) {
	b.entries = append(b.entries, bannerEntry{name, thumbs})
}

func (b *banner) rows() int {
	return (len(b.entries) + legendColumns - 1) / legendColumns
}

func (b *banner) rowHeight() vg.Length {
	return b.style.Height("Hg") * 1.4
}

// height returns the vertical space the banner needs, including a
// gap below it.
func (b *banner) height() vg.Length {
	if len(b.entries) == 0 {
		return 0
	}
	return vg.Length(b.rows())*b.rowHeight() + b.rowHeight()/2
}

func (b *banner) draw(c draw.Canvas) {
	rows := b.rows()
	if rows == 0 {
		return
	}
	c.SetLineStyle(draw.LineStyle{Color: color.Gray{0xCC}, Width: vg.Points(0.5)})
	c.Stroke(c.Rectangle.Path())

	tiles := draw.Tiles{Rows: rows, Cols: legendColumns, PadX: b.rowHeight() / 2}
	for i, e := range b.entries {
		l := plot.NewLegend()
		l.Top, l.Left = true, true
		l.TextStyle = b.style
		l.Add(e.name, e.thumbs...)
		l.Draw(tiles.At(c, i%legendColumns, i/legendColumns))
	}
}

// savePNG draws p with bn above its data area on a w×h canvas at dpi
// and writes it to path.
func savePNG(p *plot.Plot, bn *banner, w, h vg.Length, dpi int, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	dc := draw.New(img)

	pad := vg.Points(6)
	area := draw.Crop(dc, pad, -pad, pad, -pad)
	bh := bn.height()
	plotArea := draw.Crop(area, 0, 0, 0, -bh)
	data := p.DataCanvas(plotArea)
	p.Draw(plotArea)

	legend := draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: data.Min.X, Y: plotArea.Max.Y + bn.rowHeight()/2},
			Max: vg.Point{X: data.Max.X, Y: area.Max.Y},
		},
	}
	bn.draw(legend)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
