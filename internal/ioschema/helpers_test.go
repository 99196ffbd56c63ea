package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollationSQL(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		column   string
		varchar  int
		expected string
	}{
		{
			name:    "genus",
			table:   "assessments",
			column:  "genus",
			varchar: 100,
			expected: `ALTER TABLE assessments ` +
				`ALTER COLUMN genus ` +
				`TYPE VARCHAR(100) COLLATE "C"`,
		},
		{
			name:    "stockpop",
			table:   "assessments",
			column:  "stockpop",
			varchar: 255,
			expected: `ALTER TABLE assessments ` +
				`ALTER COLUMN stockpop ` +
				`TYPE VARCHAR(255) COLLATE "C"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := collationSQL(tt.table, tt.column, tt.varchar)
			assert.Equal(t, tt.expected, result)
		})
	}
}
