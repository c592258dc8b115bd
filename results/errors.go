// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import "fmt"

// A MissingLabelError reports a technology directory without a
// readable label file.
type MissingLabelError struct {
	Tech string
	Path string
	Err  error
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("technology %s: missing label %s: %v", e.Tech, e.Path, e.Err)
}

func (e *MissingLabelError) Unwrap() error { return e.Err }

// A MissingMeasurementError reports a dimension run without a
// measurement file.
type MissingMeasurementError struct {
	Path string
	Err  error
}

func (e *MissingMeasurementError) Error() string {
	return fmt.Sprintf("missing measurements %s: %v", e.Path, e.Err)
}

func (e *MissingMeasurementError) Unwrap() error { return e.Err }

// A MalformedRowError represents a measurement row that is too short
// or whose value column is not a number.
type MalformedRowError struct {
	Path string
	Line int
	Msg  string
}

func (e *MalformedRowError) Pos() (path string, line int) {
	return e.Path, e.Line
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// An UnreadableDirError reports a failure to list a directory of the
// results tree.
type UnreadableDirError struct {
	Path string
	Err  error
}

func (e *UnreadableDirError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Path, e.Err)
}

func (e *UnreadableDirError) Unwrap() error { return e.Err }
