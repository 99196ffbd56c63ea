// Package ioimport saves assessments read from an IUCN export to
// PostgreSQL, so later runs can read them from the database.
package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnredlist/internal/iodb"
	"github.com/gnames/gnredlist/pkg/db"
	"github.com/gnames/gnredlist/pkg/lifecycle"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultBatchSize = 50_000

type importer struct {
	operator  db.Operator
	schema    lifecycle.SchemaManager
	batchSize int
	progress  bool
}

// NewPostgres creates an importer to PostgreSQL. The connection must be
// established by the operator before Import is called.
func NewPostgres(
	op db.Operator,
	sm lifecycle.SchemaManager,
	batchSize int,
	progress bool,
) redlist.Importer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &importer{
		operator:  op,
		schema:    sm,
		batchSize: batchSize,
		progress:  progress,
	}
}

// Import replaces all assessments in the database with rows.
func (i *importer) Import(
	ctx context.Context,
	rows []redlist.Row,
) (int, error) {
	pool := i.operator.Pool()
	if pool == nil {
		return 0, iodb.NotConnectedError()
	}
	if err := i.schema.Migrate(ctx); err != nil {
		return 0, err
	}
	if err := i.schema.Truncate(ctx); err != nil {
		return 0, err
	}

	var a schema.Assessment
	table := a.TableName()
	columns := a.Columns()

	var bar *pb.ProgressBar
	if i.progress {
		bar = pb.Full.Start(len(rows))
		bar.Set("prefix", "Importing assessments: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var total int
	for start := 0; start < len(rows); start += i.batchSize {
		end := min(start+i.batchSize, len(rows))
		batch := make([][]any, 0, end-start)
		for j := start; j < end; j++ {
			batch = append(batch, schema.NewAssessment(j+1, rows[j]).Values())
		}

		count, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			return total, CopyError(table, start, err)
		}
		total += int(count)
		if bar != nil {
			bar.Add(len(batch))
		}
	}

	slog.Info("Assessments imported to PostgreSQL", "rows", total)

	if err := analyze(ctx, pool, table); err != nil {
		// statistics are refreshed by autovacuum later
		slog.Warn("Cannot analyze table", "table", table, "error", err)
	}
	return total, nil
}

// analyze updates planner statistics after bulk copy.
// It cannot run inside a transaction block.
func analyze(ctx context.Context, pool *pgxpool.Pool, table string) error {
	timeStart := time.Now()
	_, err := pool.Exec(ctx, "VACUUM ANALYZE "+pgx.Identifier{table}.Sanitize())
	if err != nil {
		return err
	}
	slog.Info("VACUUM ANALYZE completed",
		"table", table, "duration", time.Since(timeStart).String())
	return nil
}
