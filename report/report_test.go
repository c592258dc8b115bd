// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jusqua/dip-nd-benchmark/chart"
	"github.com/jusqua/dip-nd-benchmark/results"
)

func TestWrite(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a/benchmark.txt":   "Lib <A>",
		"a/1/benchmark.csv": "operator,type,group,once\nedge,group,filters,10\nblur,single,,0.0001\n",
		"a/2/benchmark.csv": "operator,type,group,once\nedge,group,filters,20\nblur,single,,0.0002\n",
		"b/benchmark.txt":   "B",
		"b/1/benchmark.csv": "operator,type,group,once\nsobel,group,filters,1\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0666); err != nil {
			t.Fatal(err)
		}
	}
	set, err := results.Load(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	charts := []chart.File{
		{Path: filepath.Join(root, "blur.png"), Kind: results.Single, Name: "blur"},
		{Path: filepath.Join(root, "filters-group.png"), Kind: results.Group, Name: "filters"},
	}

	if err := WriteFile(root, set, charts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	for _, want := range []string{
		`<img src="blur.png" alt="blur">`,
		`<img src="filters-group.png" alt="filters">`,
		`<th>Lib &lt;A&gt;</th><th>B</th>`,
		`<tr><th>edge</th><td>15000000</td><td>–</td></tr>`,
		`<tr><th>sobel</th><td>–</td><td>1000000</td></tr>`,
		`<li>Lib &lt;A&gt; (a)</li>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page does not contain %q:\n%s", want, page)
		}
	}
	if strings.Contains(page, "<A>") {
		t.Errorf("display name was not escaped:\n%s", page)
	}
}

func TestWriteWithoutCharts(t *testing.T) {
	set, err := results.Load(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := Write(&buf, set, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<img") {
		t.Errorf("empty report contains images:\n%s", buf.String())
	}
}
