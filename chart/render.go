// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders the aggregates of a results.Set as PNG
// charts: one line chart per single-operand operator, plotting time
// against dimension, and one clustered bar chart per group, plotting
// the mean time of every operator of the group.
package chart

import (
	"path/filepath"
	"strings"

	"github.com/jusqua/dip-nd-benchmark/results"
)

// A File is a chart written by a Renderer.
type File struct {
	// Path is the file the chart was written to.
	Path string

	// Kind is results.Single for operator line charts and
	// results.Group for group bar charts.
	Kind results.Kind

	// Name is the operator or group the chart shows.
	Name string
}

// Renderer writes charts for a results.Set.
type Renderer struct {
	// Dir is the directory charts are written to.
	Dir string

	// Colors assigns colors to technologies. It is shared by all
	// charts of a Renderer so a technology keeps its color across
	// charts. If nil, a NewColors is created on first use.
	Colors *Colors

	// Warn, if non-nil, receives non-fatal problems, such as data
	// that cannot be placed on a log axis.
	Warn func(format string, args ...interface{})
}

func (r *Renderer) warn(format string, args ...interface{}) {
	if r.Warn != nil {
		r.Warn(format, args...)
	}
}

func (r *Renderer) colors() *Colors {
	if r.Colors == nil {
		r.Colors = NewColors()
	}
	return r.Colors
}

// Render writes a line chart for every single-operand operator of
// set, in sorted order, then a bar chart for every group, in sorted
// order. It stops at the first error; charts written before it stay
// on disk. It returns the charts that were written.
func (r *Renderer) Render(set *results.Set) ([]File, error) {
	var files []File
	for _, op := range set.Operators() {
		f, ok, err := r.LineChart(set, op)
		if err != nil {
			return files, err
		}
		if ok {
			files = append(files, f)
		}
	}
	for _, g := range set.Groups() {
		f, ok, err := r.BarChart(set, g)
		if err != nil {
			return files, err
		}
		if ok {
			files = append(files, f)
		}
	}
	return files, nil
}

// fileName turns an operator or group name into a file name that
// stays inside the output directory.
func fileName(name, suffix string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "_" + name
	}
	return name + suffix
}

func (r *Renderer) path(name, suffix string) string {
	return filepath.Join(r.Dir, fileName(name, suffix))
}
