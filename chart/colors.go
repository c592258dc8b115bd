// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math/rand"
)

// Palette is the set of high-contrast colors handed out to
// technologies.
var Palette = []color.Color{
	color.NRGBA{0xFF, 0x1F, 0x3F, 0xFF},
	color.NRGBA{0x00, 0xB2, 0xA9, 0xFF},
	color.NRGBA{0xFF, 0xD7, 0x00, 0xFF},
	color.NRGBA{0x4B, 0x00, 0x82, 0xFF},
	color.NRGBA{0xFF, 0x6F, 0x61, 0xFF},
	color.NRGBA{0x00, 0xFF, 0x7F, 0xFF},
	color.NRGBA{0xFF, 0x45, 0x00, 0xFF},
	color.NRGBA{0x1E, 0x90, 0xFF, 0xFF},
}

// Fallback is the color of every technology referenced after the
// palette ran out.
var Fallback color.Color = color.NRGBA{0, 0, 0, 0xFF}

// Colors assigns a color to each technology the first time it is
// referenced and returns the same color ever after.
//
// While palette entries remain no two technologies share a color.
// Once the palette is exhausted every further technology gets
// Fallback.
type Colors struct {
	assigned map[string]color.Color
	free     []color.Color
	rng      *rand.Rand
}

// NewColors returns a Colors that hands out Palette in order, so
// that the same technologies referenced in the same order always get
// the same colors.
func NewColors() *Colors {
	return &Colors{
		assigned: make(map[string]color.Color),
		free:     append([]color.Color(nil), Palette...),
	}
}

// NewRandomColors returns a Colors that pops a uniformly random
// palette entry for each new technology.
func NewRandomColors(src rand.Source) *Colors {
	c := NewColors()
	c.rng = rand.New(src)
	return c
}

// Color returns the color of tech, assigning one if necessary.
func (c *Colors) Color(tech string) color.Color {
	if clr, ok := c.assigned[tech]; ok {
		return clr
	}
	clr := Fallback
	if n := len(c.free); n > 0 {
		i := 0
		if c.rng != nil {
			i = c.rng.Intn(n)
		}
		clr = c.free[i]
		c.free = append(c.free[:i], c.free[i+1:]...)
	}
	c.assigned[tech] = clr
	return clr
}

// Lookup returns the color already assigned to tech, if any.
func (c *Colors) Lookup(tech string) (color.Color, bool) {
	clr, ok := c.assigned[tech]
	return clr, ok
}

// withAlpha returns clr with its opacity scaled by a.
func withAlpha(clr color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}
