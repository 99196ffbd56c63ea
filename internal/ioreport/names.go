package ioreport

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/parserpool"
	"github.com/gnames/gnredlist/pkg/taxon"
	"golang.org/x/sync/errgroup"
)

// namesReport checks scientific names of assessments with gnparser.
type namesReport struct {
	settings
}

type nameIssue struct {
	name  string
	issue string
}

func (nr *namesReport) Report(
	ctx context.Context,
	w io.Writer,
	tree *taxon.Tree,
) error {
	recs := tree.Root().DeepRecords(func(r leaf.Record) bool {
		return !r.IsStockpop()
	})

	pool := nr.pool
	if pool == nil {
		pool = parserpool.NewPool(nr.jobs)
		defer pool.Close()
	}

	chIn := make(chan leaf.Record)
	chOut := make(chan nameIssue)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for _, v := range recs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- v:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for range nr.jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return nr.worker(ctx, pool, chIn, chOut)
		})
	}
	go func() {
		wg.Wait()
		close(chOut)
	}()

	var issues []nameIssue
	for v := range chOut {
		issues = append(issues, v)
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slices.SortFunc(issues, func(a, b nameIssue) int {
		return cmp.Or(
			strings.Compare(a.name, b.name),
			strings.Compare(a.issue, b.issue),
		)
	})

	var sb strings.Builder
	sb.WriteString("==Scientific names==\n")
	for _, v := range issues {
		fmt.Fprintf(&sb, "* ''%s'': %s\n", v.name, v.issue)
	}
	fmt.Fprintf(&sb, "Checked %s names, found %s issues.\n",
		humanize.Comma(int64(len(recs))), humanize.Comma(int64(len(issues))))
	slog.Info("Scientific names checked",
		"names", len(recs), "issues", len(issues))
	return write(w, Names, sb.String())
}

func (nr *namesReport) worker(
	ctx context.Context,
	pool parserpool.Pool,
	chIn <-chan leaf.Record,
	chOut chan<- nameIssue,
) error {
	for r := range chIn {
		select {
		case <-ctx.Done():
			for range chIn {
			}
			return ctx.Err()
		default:
		}

		p, err := nr.parse(pool, r)
		if err != nil {
			for range chIn {
			}
			return err
		}
		if issue := checkParsed(r, p); issue != "" {
			chOut <- nameIssue{name: r.FullName(), issue: issue}
		}
	}
	return nil
}

func (nr *namesReport) parse(
	pool parserpool.Pool,
	r leaf.Record,
) (iocache.Parsed, error) {
	key := cacheKey(r)
	if nr.cache != nil {
		res, ok, err := nr.cache.Parsed(key)
		if err != nil {
			slog.Warn("Cannot read parsed name from cache", "name", key, "error", err)
		}
		if ok {
			return res, nil
		}
	}

	name := r.BasicName()
	p, err := pool.Parse(name, r.NomCode())
	if err != nil {
		return iocache.Parsed{}, ParseError(name, err)
	}
	res := iocache.Parsed{Quality: p.ParseQuality}
	if p.Parsed && p.Canonical != nil {
		res.Canonical = p.Canonical.Simple
	}
	if nr.cache != nil {
		if err = nr.cache.StoreParsed(key, res); err != nil {
			slog.Warn("Cannot cache parsed name", "name", key, "error", err)
		}
	}
	return res, nil
}

// cacheKey includes the code, because the same string can be parsed
// differently under botanical and zoological rules.
func cacheKey(r leaf.Record) string {
	return fmt.Sprintf("%s|%v", r.BasicName(), r.NomCode())
}

// checkParsed returns a description of a problem, or an empty string.
func checkParsed(r leaf.Record, p iocache.Parsed) string {
	if p.Canonical == "" {
		return "cannot be parsed"
	}
	var issues []string
	if exp := expectedCanonical(r); p.Canonical != exp {
		issues = append(issues, "parsed as "+p.Canonical)
	}
	if p.Quality > 1 {
		issues = append(issues, fmt.Sprintf("parse quality %d", p.Quality))
	}
	return strings.Join(issues, ", ")
}

func expectedCanonical(r leaf.Record) string {
	parts := []string{r.Genus}
	if r.Epithet != "" {
		parts = append(parts, r.Epithet)
	}
	if r.Infraspecies != "" {
		parts = append(parts, r.Infraspecies)
	}
	return strings.Join(parts, " ")
}
