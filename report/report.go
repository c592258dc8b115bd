// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes an HTML index of the charts rendered for a
// results tree.
package report

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/safehtml/template"

	"github.com/jusqua/dip-nd-benchmark/chart"
	"github.com/jusqua/dip-nd-benchmark/results"
)

// FileName is the name of the index written by WriteFile.
const FileName = "index.html"

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
.means { border-collapse: collapse; margin-bottom: 2em; }
.means th, .means td { padding: 0.2em 1em; border-bottom: 1px solid #ccc; }
.means td { text-align: right; }
.means th:first-child { text-align: left; }
figure img { max-width: 100%; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{with .Technologies}}
<ul>
{{range .}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
{{range .Groups}}
<h2>{{.Name}}</h2>
{{if .Src}}<figure><img src="{{.Src}}" alt="{{.Name}}"></figure>{{end}}
<table class="means">
<tr><th>Operator (μs)</th>{{range .Techs}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><th>{{.Operator}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}
{{with .Lines}}
<h2>Operators</h2>
{{range .}}<figure><img src="{{.Src}}" alt="{{.Name}}"><figcaption>{{.Name}}</figcaption></figure>
{{end}}
{{end}}
</body>
</html>
`))

type indexData struct {
	Title        string
	Technologies []string
	Groups       []groupData
	Lines        []lineData
}

type groupData struct {
	Name  string
	Src   string
	Techs []string
	Rows  []groupRow
}

type groupRow struct {
	Operator string
	Cells    []string
}

type lineData struct {
	Name string
	Src  string
}

// Write writes an HTML page to w that shows every chart in files and
// tabulates the mean of every group bar of set. Chart images are
// linked by file name, relative to the page.
func Write(w io.Writer, set *results.Set, files []chart.File) error {
	srcs := make(map[results.Kind]map[string]string)
	for _, f := range files {
		if srcs[f.Kind] == nil {
			srcs[f.Kind] = make(map[string]string)
		}
		srcs[f.Kind][f.Name] = url.PathEscape(filepath.Base(f.Path))
	}

	data := indexData{Title: "Benchmark results"}
	for _, tech := range set.Technologies() {
		name := set.Name(tech)
		if name != tech {
			name += " (" + tech + ")"
		}
		data.Technologies = append(data.Technologies, name)
	}
	for _, g := range set.Groups() {
		t := chart.NewGroupTable(set, g)
		gd := groupData{Name: g, Src: srcs[results.Group][g]}
		for _, tech := range t.Techs {
			gd.Techs = append(gd.Techs, set.Name(tech))
		}
		for j, op := range t.Operators {
			row := groupRow{Operator: op}
			for i := range t.Techs {
				cell := "–"
				if _, ok := set.Mean(g, op, t.Techs[i]); ok {
					cell = strconv.FormatFloat(t.Heights[i][j], 'f', 0, 64)
				}
				row.Cells = append(row.Cells, cell)
			}
			gd.Rows = append(gd.Rows, row)
		}
		data.Groups = append(data.Groups, gd)
	}
	for _, op := range set.Operators() {
		if src, ok := srcs[results.Single][op]; ok {
			data.Lines = append(data.Lines, lineData{Name: op, Src: src})
		}
	}
	return indexTmpl.Execute(w, data)
}

// WriteFile writes the page produced by Write to dir/index.html.
func WriteFile(dir string, set *results.Set, files []chart.File) error {
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return err
	}
	if err := Write(f, set, files); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
