// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

type groupSummary struct {
	Group    string
	Operator string
	Tech     string
	N        int
	Mean     float64
}

type seriesSummary struct {
	Operator string
	Tech     string
	Values   string
}

// WriteSummary writes two plain-text tables to w: the rounded means
// of every group bar, then every single-operand series in
// microseconds.
func (s *Set) WriteSummary(w io.Writer) error {
	var gs []groupSummary
	for _, g := range s.Groups() {
		for _, op := range s.GroupOperators(g) {
			for _, tech := range s.GroupTechnologies(g) {
				mean, ok := s.Mean(g, op, tech)
				if !ok {
					continue
				}
				gs = append(gs, groupSummary{g, op, s.Name(tech), len(s.GroupValues(g, op)[tech]), mean})
			}
		}
	}
	var ss []seriesSummary
	for _, op := range s.Operators() {
		series := s.Single(op)
		for _, tech := range s.techs {
			vals, ok := series[tech]
			if !ok {
				continue
			}
			ss = append(ss, seriesSummary{op, s.Name(tech), formatSeries(vals)})
		}
	}

	if len(gs) > 0 {
		if err := table.Fprint(w, table.TableFromStructs(gs), "%s", "%s", "%s", "%d", "%.0f"); err != nil {
			return err
		}
	}
	if len(gs) > 0 && len(ss) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if len(ss) > 0 {
		return table.Fprint(w, table.TableFromStructs(ss))
	}
	return nil
}

func formatSeries(vals []float64) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
	}
	return b.String()
}
