// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results loads benchmark measurements written by competing
// implementations ("technologies") of the same image operations and
// aggregates them for charting.
//
// A results tree looks like
//
//	<root>/
//		<technology>/
//			benchmark.txt        display name of the technology
//			<dimension>/
//				benchmark.csv    operator,type,group,once[,mean]
//
// Rows of type "single" are collected per operator into one series
// per technology, one value per dimension. Rows of type "group" are
// collected per group and operator and averaged when charted. All
// values are stored in microseconds.
package results

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Kind is the type column of a measurement row.
type Kind string

const (
	Single Kind = "single"
	Group  Kind = "group"
)

// A Row is one measurement row that contributed to a Set.
type Row struct {
	Tech      string
	Dimension string
	Operator  string
	Kind      Kind
	Group     string
	Micros    float64
}

// A Set is the aggregate of a results tree. It is not modified after
// Load returns.
type Set struct {
	techs []string
	names map[string]string
	dims  map[string][]string

	// single maps operator → technology → one value per dimension.
	single map[string]map[string][]float64

	groups map[string]*group

	rows []Row
}

type group struct {
	// ops is the group's operators in the order they were first
	// seen.
	ops []string
	// values maps operator → technology → raw values.
	values map[string]map[string][]float64
}

func newSet() *Set {
	return &Set{
		names:  make(map[string]string),
		dims:   make(map[string][]string),
		single: make(map[string]map[string][]float64),
		groups: make(map[string]*group),
	}
}

func (s *Set) add(run *techRun) {
	s.techs = append(s.techs, run.tech)
	s.names[run.tech] = run.name
	s.dims[run.tech] = run.dims
	for _, r := range run.rows {
		switch r.Kind {
		case Single:
			byTech := s.single[r.Operator]
			if byTech == nil {
				byTech = make(map[string][]float64)
				s.single[r.Operator] = byTech
			}
			byTech[r.Tech] = append(byTech[r.Tech], r.Micros)
		case Group:
			g := s.groups[r.Group]
			if g == nil {
				g = &group{values: make(map[string]map[string][]float64)}
				s.groups[r.Group] = g
			}
			byTech := g.values[r.Operator]
			if byTech == nil {
				byTech = make(map[string][]float64)
				g.values[r.Operator] = byTech
				g.ops = append(g.ops, r.Operator)
			}
			byTech[r.Tech] = append(byTech[r.Tech], r.Micros)
		}
	}
	s.rows = append(s.rows, run.rows...)
	sort.Strings(s.techs)
}

// Technologies returns the identifiers of the loaded technologies in
// sorted order.
func (s *Set) Technologies() []string {
	return append([]string(nil), s.techs...)
}

// Name returns the display name of tech, or tech itself if it has
// none.
func (s *Set) Name(tech string) string {
	if n, ok := s.names[tech]; ok && n != "" {
		return n
	}
	return tech
}

// Dimensions returns tech's dimension runs in the order their values
// appear in every single-operand series.
func (s *Set) Dimensions(tech string) []string {
	return append([]string(nil), s.dims[tech]...)
}

// Operators returns the single-operand operators in sorted order.
func (s *Set) Operators() []string {
	return sortedKeys(s.single)
}

// Single returns the series of op, keyed by technology. The result
// must not be modified.
func (s *Set) Single(op string) map[string][]float64 {
	return s.single[op]
}

// Groups returns the group names in sorted order.
func (s *Set) Groups() []string {
	return sortedKeys(s.groups)
}

// GroupOperators returns the operators of group in the order they
// were first encountered.
func (s *Set) GroupOperators(group string) []string {
	g := s.groups[group]
	if g == nil {
		return nil
	}
	return append([]string(nil), g.ops...)
}

// GroupValues returns the raw values of op in group, keyed by
// technology. The result must not be modified.
func (s *Set) GroupValues(group, op string) map[string][]float64 {
	g := s.groups[group]
	if g == nil {
		return nil
	}
	return g.values[op]
}

// GroupTechnologies returns the sorted union of the technologies
// that reported any operator of group.
func (s *Set) GroupTechnologies(group string) []string {
	g := s.groups[group]
	if g == nil {
		return nil
	}
	seen := make(map[string]bool)
	var techs []string
	for _, byTech := range g.values {
		for tech := range byTech {
			if !seen[tech] {
				seen[tech] = true
				techs = append(techs, tech)
			}
		}
	}
	sort.Strings(techs)
	return techs
}

// Mean returns the arithmetic mean of the values of (group, op,
// tech) rounded to a whole microsecond, half to even. ok is false if
// there are no such values.
func (s *Set) Mean(group, op, tech string) (mean float64, ok bool) {
	vals := s.GroupValues(group, op)[tech]
	if len(vals) == 0 {
		return 0, false
	}
	return math.RoundToEven(stats.Mean(vals)), true
}

// Rows returns every row that contributed to s, technology by
// technology, in dimension order.
func (s *Set) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Empty reports whether s holds no measurements at all.
func (s *Set) Empty() bool {
	return len(s.single) == 0 && len(s.groups) == 0
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
