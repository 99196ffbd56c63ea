package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database section of <em>~/.config/gnredlist/config.yaml</em>`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// MigrateSchemaError creates an error for failures of
// creating or updating the assessments table.
func MigrateSchemaError(err error) error {
	msg := `Cannot create or update <em>assessments</em> table

<em>How to fix:</em>
  1. Check database user has CREATE and ALTER permissions
  2. Drop the table and run <em>gnredlist import</em> again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// CollationError creates an error for collation
// setting failures.
func CollationError(table, column string, err error) error {
	msg := "Cannot set collation on <em>%s.%s</em>"
	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w",
			table, column, err),
	}
}

// TruncateError creates an error for failures to remove
// old assessments.
func TruncateError(table string, err error) error {
	msg := "Cannot remove old data from <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.SchemaTruncateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to truncate %s: %w", table, err),
	}
}
