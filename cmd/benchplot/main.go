// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot renders comparison charts from a tree of benchmark
// results.
//
// Usage:
//
//	benchplot [flags] [results-dir]
//
// The results directory (default "results") holds one subdirectory per
// technology. Each technology directory contains a benchmark.txt file
// whose contents name the technology, and one subdirectory per image
// dimension, each holding a benchmark.csv file with rows of the form
//
//	operator,type,group,once[,mean]
//
// where type is "single" or "group" and the last column is a time in
// seconds.
//
// For every operator measured with type "single", benchplot writes
// <operator>.png into the results directory: one line per technology,
// time against dimension. For every group, it writes
// <group>-group.png: one cluster of bars per operator of the group,
// one bar per technology, each bar the mean time of that operator.
// Times are plotted in microseconds on a log scale.
//
// The -keep-going flag skips a technology whose files are missing or
// malformed instead of stopping. The -summary flag prints the
// aggregated values as a table. The -html flag writes an index.html
// page showing every chart. The -db flag also stores every
// measurement in the SQL database named by the -driver and -db flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/jusqua/dip-nd-benchmark/chart"
	"github.com/jusqua/dip-nd-benchmark/internal/store"
	"github.com/jusqua/dip-nd-benchmark/report"
	"github.com/jusqua/dip-nd-benchmark/results"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := benchplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func benchplot(w, wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: benchplot [flags] [results-dir]\n")
		fs.PrintDefaults()
	}
	opts := results.DefaultOptions()
	fs.StringVar(&opts.LabelFile, "label", opts.LabelFile, "read technology names from `file` in each technology directory")
	fs.StringVar(&opts.MeasurementFile, "csv", opts.MeasurementFile, "read measurements from `file` in each dimension directory")
	fs.BoolVar(&opts.SkipBroken, "keep-going", false, "skip technologies whose results cannot be read")
	flagRandom := fs.Bool("random-colors", false, "assign palette colors to technologies at random")
	flagSeed := fs.Int64("seed", 0, "random `seed` for -random-colors; 0 means the current time")
	flagSummary := fs.Bool("summary", false, "print the aggregated measurements")
	flagHTML := fs.Bool("html", false, "write an index.html page of all charts")
	flagDB := fs.String("db", "", "also store measurements in the database named by `dsn`")
	flagDriver := fs.String("driver", "sqlite3", "SQL `driver` for -db: sqlite3 or mysql")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			exit(0)
			return nil
		}
		exit(2)
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		exit(2)
		return fmt.Errorf("too many arguments")
	}
	root := "results"
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}

	opts.Warn = func(format string, args ...interface{}) {
		fmt.Fprintf(wErr, "benchplot: "+format, args...)
	}
	set, err := results.Load(root, opts)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintf(wErr, "benchplot: no measurements in %s\n", root)
	}

	r := &chart.Renderer{Dir: root, Warn: opts.Warn}
	if *flagRandom {
		seed := *flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r.Colors = chart.NewRandomColors(rand.NewSource(seed))
	}
	files, err := r.Render(set)
	if err != nil {
		return err
	}

	if *flagSummary {
		if err := set.WriteSummary(w); err != nil {
			return err
		}
	}
	if *flagHTML {
		if err := report.WriteFile(root, set, files); err != nil {
			return err
		}
	}
	if *flagDB != "" {
		db, err := store.Open(*flagDriver, *flagDB)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Save(context.Background(), set); err != nil {
			return fmt.Errorf("saving to %s: %w", *flagDB, err)
		}
	}
	return nil
}
