package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// DDLGenerator defines how Go models generate DDL for file-based
// databases.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// columns returns `db` tags of the model in the order of fields.
func columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var res []string
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var cols []string
	for i := range t.NumField() {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag != "" && ddlTag != "" {
			cols = append(cols, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(cols, ",\n"))
}

func (a Assessment) TableName() string {
	return "assessments"
}

func (a Assessment) TableDDL() string {
	return generateDDL(a, a.TableName())
}

func (a Assessment) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_assessments_iucn_id ON assessments(iucn_id);",
		"CREATE INDEX IF NOT EXISTS idx_assessments_genus ON assessments(genus);",
		"CREATE INDEX IF NOT EXISTS idx_assessments_status ON assessments(status);",
	}
}

// Columns returns column names of the assessments table in the order
// of Values and Fields.
func (a Assessment) Columns() []string {
	return columns(a)
}
