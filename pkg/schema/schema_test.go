package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestAssessmentTableDDL(t *testing.T) {
	assert := assert.New(t)
	a := schema.Assessment{}
	ddl := a.TableDDL()

	assert.Contains(ddl, "CREATE TABLE IF NOT EXISTS assessments")
	assert.Contains(ddl, "row_id INTEGER PRIMARY KEY")
	assert.Contains(ddl, "iucn_id VARCHAR(20)")
	assert.Contains(ddl, "class_name VARCHAR(100)")
	assert.Contains(ddl, "order_name VARCHAR(100)")
	assert.Contains(ddl, "common_names_eng TEXT")
	assert.Equal("assessments", a.TableName())

	idx := strings.Join(a.IndexDDL(), "\n")
	assert.Contains(idx, "assessments(genus)")
	assert.Contains(idx, "assessments(status)")
}

func TestAssessmentColumns(t *testing.T) {
	assert := assert.New(t)
	a := schema.NewAssessment(7, redlist.Row{ID: "2467", Genus: "Balaena"})
	cols := a.Columns()
	assert.Len(cols, 16)
	assert.Equal("row_id", cols[0])
	assert.Equal("status", cols[len(cols)-1])
	assert.Len(a.Values(), len(cols))
	assert.Len(a.Fields(), len(cols))
	assert.Equal(7, a.Values()[0])
	assert.Equal("2467", a.Values()[1])
}

func TestAssessmentRow(t *testing.T) {
	row := redlist.Row{
		ID:             "133714",
		Kingdom:        "ANIMALIA",
		Phylum:         "CHORDATA",
		Class:          "MAMMALIA",
		Order:          "CETARTIODACTYLA",
		Family:         "DELPHINIDAE",
		Genus:          "Delphinus",
		Epithet:        "delphis",
		Authority:      "Linnaeus, 1758",
		Infrarank:      "ssp.",
		Infraspecies:   "ponticus",
		InfraAuthority: "Barabash, 1935",
		CommonNamesEng: "Black Sea Common Dolphin",
		Status:         "EN",
	}
	a := schema.NewAssessment(1, row)
	assert.Equal(t, "MAMMALIA", a.ClassName)
	assert.Equal(t, "CETARTIODACTYLA", a.OrderName)
	assert.Equal(t, row, a.Row())
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 1)
	_, ok := models[0].(schema.DDLGenerator)
	assert.True(t, ok)
}
