// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jusqua/dip-nd-benchmark/results"
)

const header = "operator,type,group,once\n"

func loadTree(t *testing.T, files map[string]string) (string, *results.Set) {
	t.Helper()
	root := t.TempDir()
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
	return root, set
}

// checkPNG checks that path holds a PNG of the given size in pixels.
func checkPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	if cfg.Width != w || cfg.Height != h {
		t.Errorf("%s: got %dx%d image, want %dx%d", path, cfg.Width, cfg.Height, w, h)
	}
}

func TestRenderLineChart(t *testing.T) {
	root, set := loadTree(t, map[string]string{
		"fastlib/benchmark.txt":   "FastLib v1",
		"fastlib/1/benchmark.csv": header + "blur,single,,0.0001\n",
		"fastlib/2/benchmark.csv": header + "blur,single,,0.0002\n",
		"fastlib/3/benchmark.csv": header + "blur,single,,0.0004\n",
	})
	r := &Renderer{Dir: root}
	files, err := r.Render(set)
	if err != nil {
		t.Fatal(err)
	}
	want := []File{{Path: filepath.Join(root, "blur.png"), Kind: results.Single, Name: "blur"}}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	checkPNG(t, files[0].Path, 800, 600)
	if _, ok := r.Colors.Lookup("fastlib"); !ok {
		t.Errorf("fastlib has no color after rendering")
	}
}

func TestDimensionTicks(t *testing.T) {
	var got []string
	for _, tk := range dimensionTicks(3) {
		got = append(got, fmt.Sprintf("%v=%s", tk.Value, tk.Label))
	}
	want := []string{"1=1D", "2=2D", "3=3D"}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRenderBarChart(t *testing.T) {
	root, set := loadTree(t, map[string]string{
		"a/benchmark.txt":   "A",
		"a/1/benchmark.csv": header + "edge,group,filters,10\nblur,group,filters,0.001\n",
		"a/2/benchmark.csv": header + "edge,group,filters,20\n",
		"b/benchmark.txt":   "B",
		"b/1/benchmark.csv": header + "edge,group,filters,15\n",
	})
	r := &Renderer{Dir: root}
	files, err := r.Render(set)
	if err != nil {
		t.Fatal(err)
	}
	want := []File{{Path: filepath.Join(root, "filters-group.png"), Kind: results.Group, Name: "filters"}}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	checkPNG(t, files[0].Path, 4200, 2100)
}

func TestGroupTable(t *testing.T) {
	_, set := loadTree(t, map[string]string{
		"b/benchmark.txt":   "B",
		"b/1/benchmark.csv": header + "edge,group,filters,15\n",
		"a/benchmark.txt":   "A",
		"a/1/benchmark.csv": header + "sobel,group,filters,0.0000025\nedge,group,filters,10\n",
		"a/2/benchmark.csv": header + "edge,group,filters,20\nsobel,group,filters,0.0000035\n",
	})
	got := NewGroupTable(set, "filters")
	want := &GroupTable{
		// "a" is read first, so its row order wins.
		Operators: []string{"sobel", "edge"},
		Techs:     []string{"a", "b"},
		Heights: [][]float64{
			{3, 15000000},
			{0, 15000000},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupTable mismatch (-want +got):\n%s", diff)
	}
}

func TestBarsDataRange(t *testing.T) {
	b := &bars{heights: []float64{0, 40, 5, 0}}
	xmin, xmax, ymin, ymax := b.DataRange()
	if xmin != -0.5 || xmax != 3.5 || ymin != 5 || ymax != 40 {
		t.Errorf("DataRange() = %v, %v, %v, %v; want -0.5, 3.5, 5, 40", xmin, xmax, ymin, ymax)
	}

	empty := &bars{heights: []float64{0, 0}}
	_, _, ymin, ymax = empty.DataRange()
	if !math.IsInf(ymin, 1) || !math.IsInf(ymax, -1) {
		t.Errorf("empty DataRange y = %v, %v; want +Inf, -Inf", ymin, ymax)
	}
	if empty.any() {
		t.Errorf("any() = true for all-zero bars")
	}
}

func TestRenderUnplottable(t *testing.T) {
	root, set := loadTree(t, map[string]string{
		"a/benchmark.txt":   "A",
		"a/1/benchmark.csv": header + "noop,single,,0\nfree,group,fast,0.0000002\n",
		"a/2/benchmark.csv": header + "noop,single,,0\nfree,group,fast,0.0000004\n",
	})
	var warnings int
	r := &Renderer{Dir: root, Warn: func(string, ...interface{}) { warnings++ }}
	files, err := r.Render(set)
	if err != nil {
		t.Fatal(err)
	}
	want := []File{
		{Path: filepath.Join(root, "noop.png"), Kind: results.Single, Name: "noop"},
		{Path: filepath.Join(root, "fast-group.png"), Kind: results.Group, Name: "fast"},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	checkPNG(t, files[0].Path, 800, 600)
	checkPNG(t, files[1].Path, 4200, 2100)
	if warnings == 0 {
		t.Errorf("no warnings for charts without positive values")
	}
}

func TestRenderEmpty(t *testing.T) {
	root, set := loadTree(t, nil)
	files, err := (&Renderer{Dir: root}).Render(set)
	if err != nil || len(files) != 0 {
		t.Errorf("Render(empty) = %v, %v; want no files, no error", files, err)
	}
}

func TestRenderUnwritableDir(t *testing.T) {
	_, set := loadTree(t, map[string]string{
		"a/benchmark.txt":   "A",
		"a/1/benchmark.csv": header + "blur,single,,1\nedge,group,g,1\n",
	})
	r := &Renderer{Dir: filepath.Join(t.TempDir(), "missing")}
	files, err := r.Render(set)
	if err == nil {
		t.Fatalf("Render into missing directory succeeded")
	}
	if len(files) != 0 {
		t.Errorf("got files %v before the first failure, want none", files)
	}
}

func TestFileName(t *testing.T) {
	for in, want := range map[string]string{
		"blur":   "blur.png",
		"a/b":    "a_b.png",
		"..":     "_...png",
		`c:\d`:   "c:_d.png",
		"sp ace": "sp ace.png",
	} {
		if got := fileName(in, ".png"); got != want {
			t.Errorf("fileName(%q) = %q, want %q", in, got, want)
		}
	}
}
