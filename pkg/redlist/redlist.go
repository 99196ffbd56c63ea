// Package redlist connects flat IUCN Red List rows to the taxonomic
// hierarchy. It defines Row, the interfaces of I/O collaborators, and
// builds trees from rows.
package redlist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row is one assessment as it comes from the IUCN export or from
// a database. Higher ranks are kept as given, the export uses upper case
// for them (e.g. "ANIMALIA").
type Row struct {
	ID             string
	Kingdom        string
	Phylum         string
	Class          string
	Order          string
	Family         string
	Genus          string
	Epithet        string
	Authority      string
	Infrarank      string
	Infraspecies   string
	InfraAuthority string
	Stockpop       string
	CommonNamesEng string
	// Status is the Red List category code, e.g. "CR" or "CR(PE)".
	Status string
}

// Reader provides rows from a source of assessments.
type Reader interface {
	// Rows returns all assessments of the source.
	Rows(ctx context.Context) ([]Row, error)
}

// Importer saves rows to a storage.
type Importer interface {
	// Import saves rows and returns the number of saved rows.
	Import(ctx context.Context, rows []Row) (int, error)
}

// Reporter writes a report about a tree.
type Reporter interface {
	Report(ctx context.Context, w io.Writer, tree *taxon.Tree) error
}

// Entry converts the row to a rank ladder and a record. Ranks from
// kingdom to family are converted to title case. Below genus the
// ladder continues with species, infraspecific name and
// stock/subpopulation rungs, so every taxon gets its own node.
func (r Row) Entry() (taxon.Entry, error) {
	st, err := status.Parse(r.Status)
	if err != nil {
		return taxon.Entry{}, fmt.Errorf("row %s: %w", r.ID, err)
	}

	rec := leaf.Record{
		ID:             strings.TrimSpace(r.ID),
		Kingdom:        leaf.ParseKingdom(r.Kingdom),
		Genus:          strings.TrimSpace(r.Genus),
		Epithet:        strings.TrimSpace(r.Epithet),
		Infrarank:      strings.TrimSpace(r.Infrarank),
		Infraspecies:   strings.TrimSpace(r.Infraspecies),
		Stockpop:       strings.TrimSpace(r.Stockpop),
		CommonNamesEng: strings.TrimSpace(r.CommonNamesEng),
		Status:         st,
	}

	ladder := taxon.Ladder{
		{Rank: taxon.RankKingdom, Name: titleCase(r.Kingdom)},
		{Rank: taxon.RankPhylum, Name: titleCase(r.Phylum)},
		{Rank: taxon.RankClass, Name: titleCase(r.Class)},
		{Rank: taxon.RankOrder, Name: titleCase(r.Order)},
		{Rank: taxon.RankFamily, Name: titleCase(r.Family)},
		{Rank: taxon.RankGenus, Name: rec.Genus},
	}
	if rec.Epithet != "" {
		ladder = append(ladder, taxon.Rung{
			Rank: taxon.RankSpecies,
			Name: rec.Genus + " " + rec.Epithet,
		})
	}
	if rec.Infraspecies != "" {
		ladder = append(ladder, taxon.Rung{
			Rank: taxon.RankInfraspecific,
			Name: rec.BasicName(),
		})
	}
	if rec.Stockpop != "" {
		ladder = append(ladder, taxon.Rung{
			Rank: taxon.RankStockpop,
			Name: rec.Stockpop,
		})
	}
	return taxon.Entry{Ladder: ladder, Record: rec}, nil
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}

// Result is a tree together with the counts of rows that did not make
// it into the tree.
type Result struct {
	Tree *taxon.Tree
	// BadStatus is the number of rows with unknown Red List category.
	BadStatus int
}

// BuildTree inserts rows into a new hierarchy and finalizes it.
// Use nil lookup to build a tree without rules.
// Rows that cannot be converted or inserted are logged and skipped.
// The returned error joins problems with rules, the tree is usable
// when it is not nil.
func BuildTree(rows []Row, lookup rules.Lookup) (Result, error) {
	var res Result
	b := taxon.NewBuilder(lookup)
	for _, v := range rows {
		e, err := v.Entry()
		if err != nil {
			res.BadStatus++
			slog.Warn("Skipping row", "id", v.ID, "error", err)
			continue
		}
		if err = b.Insert(e.Ladder, e.Record); err != nil {
			slog.Warn("Cannot insert row", "id", v.ID, "error", err)
		}
	}

	tree, err := b.Build()
	res.Tree = tree
	return res, err
}
