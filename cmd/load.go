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
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/internal/iocsv"
	"github.com/gnames/gnredlist/internal/iodb"
	"github.com/gnames/gnredlist/internal/iorules"
	"github.com/gnames/gnredlist/internal/iosqlite"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/mattn/go-isatty"
)

// loaded keeps everything a command needs to work with the hierarchy.
type loaded struct {
	tree  *taxon.Tree
	rules *rules.RuleSet
	cache *iocache.Cache
}

func (l *loaded) Close() {
	if l.cache != nil {
		if err := l.cache.Close(); err != nil {
			slog.Warn("Cannot close cache", "error", err)
		}
	}
}

// loadTree reads rules and assessments according to the configuration
// and builds the hierarchy. Problems with rules are reported as
// warnings, the hierarchy is still usable.
func loadTree(ctx context.Context) (*loaded, error) {
	res := &loaded{}
	var err error
	timeStart := time.Now()

	res.rules, err = iorules.Load(cfg.RulesFile())
	if err != nil {
		return nil, err
	}

	if cfg.WithCache() {
		res.cache, err = iocache.Open(config.CacheDir(cfg.HomeDir))
		if err != nil {
			// works without cache
			slog.Warn("Cannot open cache", "error", err)
			res.cache = nil
		}
	}

	rows, err := readRows(ctx, res.cache)
	if err != nil {
		res.Close()
		return nil, err
	}
	gn.Info("Read <em>%d</em> assessments from %s", len(rows), cfg.Input.Source)

	bt, err := redlist.BuildTree(rows, res.rules)
	if err != nil {
		for _, v := range strings.Split(err.Error(), "\n") {
			gn.Warn("Rules problem: %s", v)
		}
		slog.Warn("Hierarchy built with rule problems", "error", err)
	}
	if bt.BadStatus > 0 {
		gn.Warn("Skipped <em>%d</em> assessments with unknown category",
			bt.BadStatus)
	}
	res.tree = bt.Tree
	slog.Info("Hierarchy is ready",
		"records", bt.Tree.Count(),
		"duration", gnfmt.TimeString(time.Since(timeStart).Seconds()),
	)
	return res, nil
}

func readRows(ctx context.Context, cache *iocache.Cache) ([]redlist.Row, error) {
	switch cfg.Input.Source {
	case config.SourceCSV, "":
		opts := []iocsv.Option{iocsv.OptProgress(showProgress())}
		if cache != nil {
			opts = append(opts, iocsv.OptCache(cache))
		}
		return iocsv.New(cfg, opts...).Rows(ctx)
	case config.SourcePostgres:
		op := iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return nil, err
		}
		defer op.Close()
		return iodb.NewReader(op).Rows(ctx)
	case config.SourceSQLite:
		st, err := iosqlite.Open(ctx, cfg.Input.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Rows(ctx)
	default:
		return nil, UnknownSourceError(cfg.Input.Source)
	}
}

// showProgress is true when stderr is a terminal.
func showProgress() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}

// findTaxon finds a node by name, groups from the rules are searched
// first. Empty name gives the root.
func findTaxon(l *loaded, name string) (*taxon.Node, error) {
	if name == "" {
		return l.tree.Root(), nil
	}
	for _, v := range l.rules.Pseudo() {
		if !strings.EqualFold(v.Name, name) {
			continue
		}
		return l.tree.PseudoNode(v.Name, v.Include, v.Exclude)
	}
	if n, ok := l.tree.FindByName(name); ok {
		return n, nil
	}
	return nil, taxon.NodeNotFoundError(name)
}
