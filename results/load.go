// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Options configures Load.
type Options struct {
	// LabelFile is the name of the file in each technology
	// directory that holds the technology's display name.
	LabelFile string

	// MeasurementFile is the name of the CSV file in each
	// dimension run directory.
	MeasurementFile string

	// SkipBroken makes a technology that fails to load non-fatal.
	// The technology is left out of the Set entirely and the
	// error is passed to Warn.
	SkipBroken bool

	// Warn, if non-nil, receives non-fatal problems.
	Warn func(format string, args ...interface{})
}

// DefaultOptions returns the file names written by the benchmark
// programs.
func DefaultOptions() *Options {
	return &Options{
		LabelFile:       "benchmark.txt",
		MeasurementFile: "benchmark.csv",
	}
}

func (o *Options) warn(format string, args ...interface{}) {
	if o.Warn != nil {
		o.Warn(format, args...)
	}
}

// minColumns is the number of columns of the shortest valid row:
// operator, kind, group and at least one value.
const minColumns = 4

// Load reads the results tree rooted at root.
//
// Every directory directly under root is a technology; every
// directory directly under a technology is a dimension run holding
// one measurement file. Dimension runs are visited in natural order
// of their names, so "2" comes before "10". A nil opts means
// DefaultOptions.
func Load(root string, opts *Options) (*Set, error) {
	o := DefaultOptions()
	if opts != nil {
		o.SkipBroken, o.Warn = opts.SkipBroken, opts.Warn
		if opts.LabelFile != "" {
			o.LabelFile = opts.LabelFile
		}
		if opts.MeasurementFile != "" {
			o.MeasurementFile = opts.MeasurementFile
		}
	}

	techs, err := subdirs(root)
	if err != nil {
		return nil, err
	}
	set := newSet()
	for _, tech := range techs {
		run, err := loadTechnology(filepath.Join(root, tech), tech, o)
		if err != nil {
			if !o.SkipBroken {
				return nil, err
			}
			o.warn("skipping technology %s: %v\n", tech, err)
			continue
		}
		set.add(run)
	}
	return set, nil
}

// techRun is everything read for one technology. It is only merged
// into a Set once the whole technology loaded cleanly.
type techRun struct {
	tech, name string
	dims       []string
	rows       []Row
}

func loadTechnology(dir, tech string, o *Options) (*techRun, error) {
	labelPath := filepath.Join(dir, o.LabelFile)
	label, err := os.ReadFile(labelPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingLabelError{Tech: tech, Path: labelPath, Err: err}
		}
		return nil, fmt.Errorf("technology %s: %w", tech, err)
	}

	dims, err := subdirs(dir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(dims, func(i, j int) bool {
		return lessDimension(dims[i], dims[j])
	})

	run := &techRun{tech: tech, name: strings.TrimSpace(string(label)), dims: dims}
	for _, dim := range dims {
		rows, err := readMeasurements(filepath.Join(dir, dim, o.MeasurementFile), dim)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].Tech = tech
		}
		run.rows = append(run.rows, rows...)
	}
	return run, nil
}

// subdirs returns the names of the directories in dir, in directory
// order. Anything that is not a directory, or a symlink to one, is
// skipped.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &UnreadableDirError{Path: dir, Err: err}
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if e.Type()&fs.ModeSymlink == 0 {
			continue
		}
		if fi, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && fi.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// readMeasurements parses one measurement file. The header row is
// discarded. Rows of an unknown kind are dropped without looking at
// their remaining columns. Values must be finite.
func readMeasurements(path, dim string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingMeasurementError{Path: path, Err: err}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	var rows []Row
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedRowError{Path: path, Line: pe.Line, Msg: pe.Err.Error()}
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		line, _ := r.FieldPos(0)
		if len(rec) < 2 {
			return nil, &MalformedRowError{Path: path, Line: line, Msg: fmt.Sprintf("want at least %d columns, got %d", minColumns, len(rec))}
		}
		kind := Kind(rec[1])
		if kind != Single && kind != Group {
			continue
		}
		if len(rec) < minColumns {
			return nil, &MalformedRowError{Path: path, Line: line, Msg: fmt.Sprintf("want at least %d columns, got %d", minColumns, len(rec))}
		}
		secs, err := strconv.ParseFloat(strings.TrimSpace(rec[len(rec)-1]), 64)
		if err != nil || math.IsInf(secs, 0) || math.IsNaN(secs) {
			return nil, &MalformedRowError{Path: path, Line: line, Msg: fmt.Sprintf("bad value %q", rec[len(rec)-1])}
		}
		rows = append(rows, Row{
			Dimension: dim,
			Operator:  rec[0],
			Kind:      kind,
			Group:     rec[2],
			Micros:    secs * 1e6,
		})
	}
	return rows, nil
}

// lessDimension orders dimension identifiers by their leading
// integer, if any, and then lexically. Numbered identifiers sort
// before unnumbered ones.
func lessDimension(a, b string) bool {
	na, oka := leadingInt(a)
	nb, okb := leadingInt(b)
	switch {
	case oka && okb && na != nb:
		return na < nb
	case oka != okb:
		return oka
	}
	return a < b
}

func leadingInt(s string) (uint64, bool) {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
