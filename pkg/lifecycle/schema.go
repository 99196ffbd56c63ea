// Package lifecycle defines contracts of database maintenance steps.
package lifecycle

import (
	"context"
)

// SchemaManager creates or updates tables of Red List assessments.
// It is idempotent, it is safe to run it several times.
type SchemaManager interface {
	// Migrate creates the assessments table if it does not exist,
	// or updates its columns to the latest version.
	Migrate(ctx context.Context) error

	// Truncate removes all assessments, keeping the table.
	Truncate(ctx context.Context) error
}
