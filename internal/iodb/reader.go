package iodb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnredlist/pkg/db"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/schema"
)

type reader struct {
	operator db.Operator
}

// NewReader creates a reader of assessments from a connected
// PostgreSQL database.
func NewReader(op db.Operator) redlist.Reader {
	return &reader{operator: op}
}

// Rows returns assessments in the order of the original export.
func (r *reader) Rows(ctx context.Context) ([]redlist.Row, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	var a schema.Assessment
	table := a.TableName()
	exists, err := r.operator.TableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, TableMissingError(table)
	}

	q := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY row_id",
		strings.Join(a.Columns(), ", "), table,
	)
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, QueryError(table, err)
	}
	defer rows.Close()

	var res []redlist.Row
	for rows.Next() {
		if err = rows.Scan(a.Fields()...); err != nil {
			return nil, ScanError(table, err)
		}
		res = append(res, a.Row())
	}
	if err = rows.Err(); err != nil {
		return nil, ScanError(table, err)
	}

	slog.Info("Assessments read from PostgreSQL", "rows", len(res))
	return res, nil
}
