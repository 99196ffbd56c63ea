// Package iocsv reads Red List assessments from a CSV export of the
// IUCN Red List website. The export is Windows-1252 encoded.
package iocsv

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/redlist"
	"golang.org/x/text/encoding/charmap"
)

// MinFields is the number of fields in the IUCN export.
const MinFields = 23

// Fields of the IUCN export.
const (
	colID = iota
	colKingdom
	colPhylum
	colClass
	colOrder
	colFamily
	colGenus
	colSpecies
	colAuthority
	colInfrarank
	colInfraname
	colInfraAuthority
	colStockpop
	colSynonyms
	colCommonEng
	colCommonFre
	colCommonSpa
	colStatus
)

type reader struct {
	path     string
	pePath   string
	cache    *iocache.Cache
	progress bool
}

// Option changes settings of the reader.
type Option func(*reader)

// OptCache makes the reader use a cache of rows. Rows are read from the
// cache if the input files did not change since they were cached.
func OptCache(c *iocache.Cache) Option {
	return func(r *reader) {
		r.cache = c
	}
}

// OptProgress turns the progress bar on or off.
func OptProgress(b bool) Option {
	return func(r *reader) {
		r.progress = b
	}
}

// New creates a reader of the CSV export and of the optional list of
// possibly extinct taxa set in the configuration.
func New(cfg *config.Config, opts ...Option) redlist.Reader {
	res := &reader{
		path:   cfg.Input.CSVPath,
		pePath: cfg.Input.PossiblyExtinctPath,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Rows reads all assessments of the export.
func (r *reader) Rows(ctx context.Context) ([]redlist.Row, error) {
	var stamp string
	if r.cache != nil {
		var err error
		stamp, err = iocache.Stamp(r.path, r.pePath)
		if err != nil {
			slog.Warn("Cannot stamp input files", "error", err)
		}
	}
	if stamp != "" {
		rows, ok, err := r.cache.Rows(stamp)
		if err != nil {
			slog.Warn("Cannot use cached rows", "error", err)
		}
		if ok {
			slog.Info("Rows loaded from cache", "rows", len(rows))
			return rows, nil
		}
	}

	pe := make(map[string]string)
	if r.pePath != "" {
		f, err := os.Open(r.pePath)
		if err != nil {
			return nil, PossiblyExtinctError(r.pePath, err)
		}
		pe, err = ParsePossiblyExtinct(f)
		f.Close()
		if err != nil {
			return nil, PossiblyExtinctError(r.pePath, err)
		}
		slog.Info("Possibly extinct list loaded", "taxa", len(pe))
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, RecordError(r.path, 0, err)
	}
	defer f.Close()

	var in io.Reader = f
	if r.progress {
		if info, err := f.Stat(); err == nil {
			bar := pb.Full.Start64(info.Size())
			bar.Set("prefix", "Reading CSV: ")
			bar.Set(pb.Bytes, true)
			bar.Set(pb.CleanOnFinish, true)
			defer bar.Finish()
			in = bar.NewProxyReader(f)
		}
	}

	rows, err := Decode(ctx, r.path, in, pe)
	if err != nil {
		return nil, err
	}
	slog.Info("CSV file read", "path", r.path, "rows", len(rows))

	if stamp != "" {
		if err = r.cache.StoreRows(stamp, rows); err != nil {
			slog.Warn("Cannot cache rows", "error", err)
		}
	}
	return rows, nil
}

// Decode reads rows from Windows-1252 encoded CSV data. The path is
// used only in error messages. Critically endangered taxa from the
// possibly extinct map get "CR(PE)" or "CR(PEW)" status.
func Decode(
	ctx context.Context,
	path string,
	in io.Reader,
	pe map[string]string,
) ([]redlist.Row, error) {
	cr := csv.NewReader(charmap.Windows1252.NewDecoder().Reader(in))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, HeaderError(path, 0)
	}
	if err != nil {
		return nil, RecordError(path, 1, err)
	}
	if len(header) < MinFields {
		return nil, HeaderError(path, len(header))
	}

	var res []redlist.Row
	var peCount int
	for line := 2; ; line++ {
		if line%10_000 == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, RecordError(path, line, err)
		}
		if len(fields) <= colStatus {
			return nil, RecordError(path, line, errors.New("not enough fields"))
		}

		row := redlist.Row{
			ID:             fields[colID],
			Kingdom:        fields[colKingdom],
			Phylum:         fields[colPhylum],
			Class:          fields[colClass],
			Order:          fields[colOrder],
			Family:         fields[colFamily],
			Genus:          fields[colGenus],
			Epithet:        fields[colSpecies],
			Authority:      fields[colAuthority],
			Infrarank:      fields[colInfrarank],
			Infraspecies:   fields[colInfraname],
			InfraAuthority: fields[colInfraAuthority],
			Stockpop:       fields[colStockpop],
			CommonNamesEng: fields[colCommonEng],
			Status:         strings.TrimSpace(fields[colStatus]),
		}
		if st, ok := pe[basicName(row)]; ok && strings.EqualFold(row.Status, "CR") {
			row.Status = st
			peCount++
		}
		res = append(res, row)
	}

	if peCount > 0 {
		slog.Info("Possibly extinct taxa marked", "count", humanize.Comma(int64(peCount)))
	}
	return res, nil
}

func basicName(row redlist.Row) string {
	rec := leaf.Record{
		Kingdom:      leaf.ParseKingdom(row.Kingdom),
		Genus:        strings.TrimSpace(row.Genus),
		Epithet:      strings.TrimSpace(row.Epithet),
		Infrarank:    strings.TrimSpace(row.Infrarank),
		Infraspecies: strings.TrimSpace(row.Infraspecies),
	}
	return strings.ToLower(rec.BasicName())
}
