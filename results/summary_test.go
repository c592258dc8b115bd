// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteSummary(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a/benchmark.txt":   "A",
		"a/1/benchmark.csv": header + "edge,group,filters,1,10\nsobel,group,filters,1,3\nblur,single,,0.0001\n",
		"a/2/benchmark.csv": header + "edge,group,filters,1,20\nblur,single,,0.0002\n",
		"b/benchmark.txt":   "B",
		"b/1/benchmark.csv": header + "edge,group,filters,1,15\n",
	})
	set := mustLoad(t, root, nil)

	var buf strings.Builder
	if err := set.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	var got [][]string
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"Group", "Operator", "Tech", "N", "Mean"},
		{"filters", "edge", "A", "2", "15000000"},
		{"filters", "edge", "B", "1", "15000000"},
		{"filters", "sobel", "A", "1", "3000000"},
		nil,
		{"Operator", "Tech", "Values"},
		{"blur", "A", "100", "200"},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(x, y []string) bool {
		return strings.Join(x, " ") == strings.Join(y, " ")
	})); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s\nfull output:\n%s", diff, buf.String())
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	set := mustLoad(t, t.TempDir(), nil)
	var buf strings.Builder
	if err := set.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want no output", buf.String())
	}
}
