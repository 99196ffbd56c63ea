package ioschema

import "fmt"

// collationSQL makes a statement that sets "C" collation on a varchar
// column, so scientific names sort by bytes, with capitals first.
func collationSQL(table, column string, varchar int) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		table, column, varchar,
	)
}
