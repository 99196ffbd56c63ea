// Package ioschema implements lifecycle.SchemaManager for the
// PostgreSQL assessments table. It wraps GORM AutoMigrate.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnredlist/pkg/db"
	"github.com/gnames/gnredlist/pkg/lifecycle"
	"github.com/gnames/gnredlist/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Migrate creates or updates the assessments table and sets
// collation of scientific name columns.
func (m *manager) Migrate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if err = m.setCollation(ctx); err != nil {
		return err
	}

	slog.Info("Schema is up to date", "table", schema.Assessment{}.TableName())
	return nil
}

// Truncate removes all assessments.
func (m *manager) Truncate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}
	table := schema.Assessment{}.TableName()
	if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return TruncateError(table, err)
	}
	return nil
}

// setCollation sets "C" collation on name columns.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()

	type columnDef struct {
		column  string
		varchar int
	}

	table := schema.Assessment{}.TableName()
	columns := []columnDef{
		{"genus", 100},
		{"epithet", 100},
		{"infraspecies", 100},
		{"stockpop", 255},
	}

	for _, col := range columns {
		q := collationSQL(table, col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(table, col.column, err)
		}
	}

	return nil
}
