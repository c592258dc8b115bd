// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store exports the measurements of a results.Set into a SQL
// database.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jusqua/dip-nd-benchmark/results"
)

// DB is a database of exported measurements. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB

	deleteTech   *sql.Stmt
	deleteRows   *sql.Stmt
	insertTech   *sql.Stmt
	countRows    *sql.Stmt
	countTechRow *sql.Stmt
}

// Open opens the database named by dataSourceName and creates any
// missing tables. The parameters are the same as the parameters for
// sql.Open. Only sqlite3 and mysql are explicitly supported; other
// drivers receive MySQL syntax. The caller must import the driver
// for anything other than sqlite3.
func Open(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite3" && strings.Contains(dataSourceName, ":memory:") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is evaluated with . as a map containing one entry whose
// key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Technologies (
	TechID VARCHAR(255) PRIMARY KEY,
	Name VARCHAR(1024)
);
CREATE TABLE IF NOT EXISTS Measurements (
	RowID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	TechID VARCHAR(255),
	Dimension VARCHAR(255),
	Operator VARCHAR(255),
	Kind VARCHAR(16),
	GroupKey VARCHAR(255),
	Micros DOUBLE,
{{if not .sqlite3}}
	Index (TechID, Operator),
{{end}}
	FOREIGN KEY (TechID) REFERENCES Technologies(TechID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS MeasurementsTechOperator ON Measurements(TechID, Operator);
{{end}}
`))

func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

func (db *DB) prepareStatements() error {
	var err error
	prepare := func(q string) *sql.Stmt {
		if err != nil {
			return nil
		}
		var s *sql.Stmt
		s, err = db.sql.Prepare(q)
		return s
	}
	db.deleteRows = prepare("DELETE FROM Measurements WHERE TechID = ?")
	db.deleteTech = prepare("DELETE FROM Technologies WHERE TechID = ?")
	db.insertTech = prepare("INSERT INTO Technologies(TechID, Name) VALUES (?, ?)")
	db.countRows = prepare("SELECT COUNT(*) FROM Measurements")
	db.countTechRow = prepare("SELECT COUNT(*) FROM Measurements WHERE TechID = ?")
	return err
}

// rowsPerInsert bounds the number of rows in one INSERT statement,
// keeping the placeholder count below SQLite's limit.
const rowsPerInsert = 100

// Save writes every technology and measurement row of set in a single
// transaction. Technologies already present in db are replaced.
func (db *DB) Save(ctx context.Context, set *results.Set) (err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, tech := range set.Technologies() {
		if _, err := tx.StmtContext(ctx, db.deleteRows).ExecContext(ctx, tech); err != nil {
			return err
		}
		if _, err := tx.StmtContext(ctx, db.deleteTech).ExecContext(ctx, tech); err != nil {
			return err
		}
		if _, err := tx.StmtContext(ctx, db.insertTech).ExecContext(ctx, tech, set.Name(tech)); err != nil {
			return fmt.Errorf("insert technology %s: %w", tech, err)
		}
	}

	rows := set.Rows()
	for len(rows) > 0 {
		n := len(rows)
		if n > rowsPerInsert {
			n = rowsPerInsert
		}
		var args []interface{}
		for _, r := range rows[:n] {
			args = append(args, r.Tech, r.Dimension, r.Operator, string(r.Kind), r.Group, r.Micros)
		}
		query := "INSERT INTO Measurements(TechID, Dimension, Operator, Kind, GroupKey, Micros) VALUES " +
			strings.TrimSuffix(strings.Repeat("(?, ?, ?, ?, ?, ?), ", n), ", ")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert measurements: %w", err)
		}
		rows = rows[n:]
	}
	return nil
}

// CountMeasurements returns the number of measurement rows in db.
func (db *DB) CountMeasurements() (int, error) {
	var n int
	err := db.countRows.QueryRow().Scan(&n)
	return n, err
}

// CountTechMeasurements returns the number of measurement rows of
// tech in db.
func (db *DB) CountTechMeasurements(tech string) (int, error) {
	var n int
	err := db.countTechRow.QueryRow(tech).Scan(&n)
	return n, err
}

// A MeanKey identifies one bar of a group chart.
type MeanKey struct {
	Group, Operator, Tech string
}

// Means returns the mean of every (group, operator, technology) of
// kind group stored in db.
func (db *DB) Means(ctx context.Context) (map[MeanKey]float64, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT GroupKey, Operator, TechID, AVG(Micros) FROM Measurements
WHERE Kind = ? GROUP BY GroupKey, Operator, TechID`, string(results.Group))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	means := make(map[MeanKey]float64)
	for rows.Next() {
		var group, op, tech string
		var mean float64
		if err := rows.Scan(&group, &op, &tech, &mean); err != nil {
			return nil, err
		}
		means[MeanKey{group, op, tech}] = mean
	}
	return means, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.deleteTech, db.deleteRows, db.insertTech, db.countRows, db.countTechRow} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return db.sql.Close()
}
