/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/internal/iocsv"
	"github.com/gnames/gnredlist/internal/iodb"
	"github.com/gnames/gnredlist/internal/ioimport"
	"github.com/gnames/gnredlist/internal/ioschema"
	"github.com/gnames/gnredlist/internal/iosqlite"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/spf13/cobra"
)

func getImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import IUCN CSV export to a database",
		Long: `Import reads the IUCN CSV export together with the optional
list of possibly extinct taxa and saves assessments to PostgreSQL or
SQLite. Existing assessments are replaced.

After import the database can be used as a source of assessments
with --source postgres or --source sqlite.

Examples:
  gnredlist import -i export.csv --to postgres
  gnredlist import -i export.csv --to sqlite --sqlite redlist.db`,
		RunE: runImport,
	}

	importCmd.Flags().String("to", config.SourcePostgres,
		"target database: postgres or sqlite")
	importCmd.Flags().String("sqlite", "", "path to SQLite file")
	return importCmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	to, _ := cmd.Flags().GetString("to")
	if cmd.Flags().Changed("sqlite") {
		s, _ := cmd.Flags().GetString("sqlite")
		cfg.Update([]config.Option{config.OptInputSQLitePath(s)})
	}

	var opts []iocsv.Option
	opts = append(opts, iocsv.OptProgress(showProgress()))
	if cfg.WithCache() {
		cache, err := iocache.Open(config.CacheDir(cfg.HomeDir))
		if err != nil {
			gn.Warn("Cache is not available: %s", err)
		} else {
			defer cache.Close()
			opts = append(opts, iocsv.OptCache(cache))
		}
	}

	rows, err := iocsv.New(cfg, opts...).Rows(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var count int
	switch to {
	case config.SourcePostgres:
		count, err = importPostgres(ctx, rows)
	case config.SourceSQLite:
		count, err = importSQLite(ctx, rows)
	default:
		err = UnknownSourceError(to)
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Imported <em>%d</em> assessments to %s", count, to)
	return nil
}

func importPostgres(ctx context.Context, rows []redlist.Row) (int, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return 0, err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	imp := ioimport.NewPostgres(
		op,
		ioschema.NewManager(op),
		cfg.Database.BatchSize,
		showProgress(),
	)
	return imp.Import(ctx, rows)
}

func importSQLite(ctx context.Context, rows []redlist.Row) (int, error) {
	st, err := iosqlite.Open(ctx, cfg.Input.SQLitePath)
	if err != nil {
		return 0, err
	}
	defer st.Close()
	return st.Import(ctx, rows)
}
