// Package iosqlite keeps Red List assessments in a SQLite file. It is
// a light alternative to PostgreSQL for sharing an imported export.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/schema"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// Store reads and writes assessments of a SQLite file.
type Store struct {
	path string
	db   *sql.DB
}

var (
	_ redlist.Reader   = (*Store)(nil)
	_ redlist.Importer = (*Store)(nil)
)

// Open opens or creates a SQLite file and makes sure the assessments
// table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	var a schema.Assessment
	stmts := append([]string{a.TableDDL()}, a.IndexDDL()...)
	for _, v := range stmts {
		if _, err = db.ExecContext(ctx, v); err != nil {
			db.Close()
			return nil, OpenError(path, err)
		}
	}
	return &Store{path: path, db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Import replaces all assessments with rows in one transaction.
func (s *Store) Import(
	ctx context.Context,
	rows []redlist.Row,
) (int, error) {
	var a schema.Assessment
	table := a.TableName()
	cols := a.Columns()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, WriteError(s.path, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return 0, WriteError(s.path, err)
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (?%s)",
		table,
		strings.Join(cols, ", "),
		strings.Repeat(", ?", len(cols)-1),
	)
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return 0, WriteError(s.path, err)
	}
	defer stmt.Close()

	for i, v := range rows {
		vals := schema.NewAssessment(i+1, v).Values()
		if _, err = stmt.ExecContext(ctx, vals...); err != nil {
			return 0, WriteError(s.path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, WriteError(s.path, err)
	}
	slog.Info("Assessments saved to SQLite", "path", s.path, "rows", len(rows))
	return len(rows), nil
}

// Rows returns assessments in the order of the original export.
func (s *Store) Rows(ctx context.Context) ([]redlist.Row, error) {
	var a schema.Assessment
	q := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY row_id",
		strings.Join(a.Columns(), ", "), a.TableName(),
	)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, ReadError(s.path, err)
	}
	defer rows.Close()

	var res []redlist.Row
	for rows.Next() {
		if err = rows.Scan(a.Fields()...); err != nil {
			return nil, ReadError(s.path, err)
		}
		res = append(res, a.Row())
	}
	if err = rows.Err(); err != nil {
		return nil, ReadError(s.path, err)
	}
	slog.Info("Assessments read from SQLite", "path", s.path, "rows", len(res))
	return res, nil
}
