// Package schema provides the database model of Red List assessments.
// The same model creates the PostgreSQL table through GORM and the
// SQLite table through generated DDL.
package schema

import (
	"github.com/gnames/gnredlist/pkg/redlist"
)

// Assessment is one row of the IUCN export.
type Assessment struct {
	// RowID keeps the order of rows in the export.
	RowID int `gorm:"column:row_id;primaryKey;autoIncrement:false" db:"row_id" ddl:"INTEGER PRIMARY KEY"`

	// IUCNID is IUCN's species ID.
	IUCNID string `gorm:"column:iucn_id;type:varchar(20);index" db:"iucn_id" ddl:"VARCHAR(20)"`

	Kingdom   string `gorm:"column:kingdom;type:varchar(50)" db:"kingdom" ddl:"VARCHAR(50)"`
	Phylum    string `gorm:"column:phylum;type:varchar(100)" db:"phylum" ddl:"VARCHAR(100)"`
	ClassName string `gorm:"column:class_name;type:varchar(100)" db:"class_name" ddl:"VARCHAR(100)"`
	OrderName string `gorm:"column:order_name;type:varchar(100)" db:"order_name" ddl:"VARCHAR(100)"`
	Family    string `gorm:"column:family;type:varchar(100)" db:"family" ddl:"VARCHAR(100)"`
	Genus     string `gorm:"column:genus;type:varchar(100);index" db:"genus" ddl:"VARCHAR(100)"`
	Epithet   string `gorm:"column:epithet;type:varchar(100)" db:"epithet" ddl:"VARCHAR(100)"`
	Authority string `gorm:"column:authority;type:varchar(255)" db:"authority" ddl:"VARCHAR(255)"`

	// Infrarank is "ssp.", "subsp." or "var.".
	Infrarank      string `gorm:"column:infrarank;type:varchar(20)" db:"infrarank" ddl:"VARCHAR(20)"`
	Infraspecies   string `gorm:"column:infraspecies;type:varchar(100)" db:"infraspecies" ddl:"VARCHAR(100)"`
	InfraAuthority string `gorm:"column:infra_authority;type:varchar(255)" db:"infra_authority" ddl:"VARCHAR(255)"`

	// Stockpop is a stock or subpopulation label.
	Stockpop string `gorm:"column:stockpop;type:varchar(255)" db:"stockpop" ddl:"VARCHAR(255)"`

	// CommonNamesEng is a comma-separated list of English names.
	CommonNamesEng string `gorm:"column:common_names_eng;type:text" db:"common_names_eng" ddl:"TEXT"`

	// Status is a Red List category, e.g. "CR(PE)".
	Status string `gorm:"column:status;type:varchar(20);index" db:"status" ddl:"VARCHAR(20)"`
}

// NewAssessment converts a row to a model. RowID is the position of
// the row in the export.
func NewAssessment(rowID int, r redlist.Row) Assessment {
	return Assessment{
		RowID:          rowID,
		IUCNID:         r.ID,
		Kingdom:        r.Kingdom,
		Phylum:         r.Phylum,
		ClassName:      r.Class,
		OrderName:      r.Order,
		Family:         r.Family,
		Genus:          r.Genus,
		Epithet:        r.Epithet,
		Authority:      r.Authority,
		Infrarank:      r.Infrarank,
		Infraspecies:   r.Infraspecies,
		InfraAuthority: r.InfraAuthority,
		Stockpop:       r.Stockpop,
		CommonNamesEng: r.CommonNamesEng,
		Status:         r.Status,
	}
}

// Row converts the model back to a row.
func (a Assessment) Row() redlist.Row {
	return redlist.Row{
		ID:             a.IUCNID,
		Kingdom:        a.Kingdom,
		Phylum:         a.Phylum,
		Class:          a.ClassName,
		Order:          a.OrderName,
		Family:         a.Family,
		Genus:          a.Genus,
		Epithet:        a.Epithet,
		Authority:      a.Authority,
		Infrarank:      a.Infrarank,
		Infraspecies:   a.Infraspecies,
		InfraAuthority: a.InfraAuthority,
		Stockpop:       a.Stockpop,
		CommonNamesEng: a.CommonNamesEng,
		Status:         a.Status,
	}
}

// Values returns column values in the order of Columns.
func (a Assessment) Values() []any {
	return []any{
		a.RowID, a.IUCNID, a.Kingdom, a.Phylum, a.ClassName, a.OrderName,
		a.Family, a.Genus, a.Epithet, a.Authority, a.Infrarank,
		a.Infraspecies, a.InfraAuthority, a.Stockpop, a.CommonNamesEng,
		a.Status,
	}
}

// Fields returns pointers to fields in the order of Columns, to scan
// query results.
func (a *Assessment) Fields() []any {
	return []any{
		&a.RowID, &a.IUCNID, &a.Kingdom, &a.Phylum, &a.ClassName,
		&a.OrderName, &a.Family, &a.Genus, &a.Epithet, &a.Authority,
		&a.Infrarank, &a.Infraspecies, &a.InfraAuthority, &a.Stockpop,
		&a.CommonNamesEng, &a.Status,
	}
}
