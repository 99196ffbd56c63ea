// Package ioreport creates text reports about Red List data: problems
// with common and scientific names, taxa not covered by lists and
// epithets of threatened species.
package ioreport

import (
	"io"
	"runtime"

	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/pkg/parserpool"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/rules"
)

// Names of reports.
const (
	Names       = "names"
	CommonNames = "common-names"
	Missing     = "missing"
	Epithets    = "epithets"
)

// Reports returns names of all known reports.
func Reports() []string {
	return []string{Names, CommonNames, Missing, Epithets}
}

type settings struct {
	rules    *rules.RuleSet
	cache    *iocache.Cache
	pool     parserpool.Pool
	jobs     int
	dateText string
}

// Option changes settings of a report.
type Option func(*settings)

// OptRules sets rules. The missing taxa report uses lists from the rules.
func OptRules(rs *rules.RuleSet) Option {
	return func(s *settings) {
		s.rules = rs
	}
}

// OptCache keeps results of name parsing between runs.
func OptCache(c *iocache.Cache) Option {
	return func(s *settings) {
		s.cache = c
	}
}

// OptPool sets a pool of parsers. Without it the names report creates
// and closes its own pool.
func OptPool(p parserpool.Pool) Option {
	return func(s *settings) {
		s.pool = p
	}
}

// OptJobs sets the number of concurrent workers.
func OptJobs(i int) Option {
	return func(s *settings) {
		if i > 0 {
			s.jobs = i
		}
	}
}

// OptDateText sets the Red List version shown in report headers.
func OptDateText(txt string) Option {
	return func(s *settings) {
		s.dateText = txt
	}
}

// New creates a reporter by its name.
func New(name string, opts ...Option) (redlist.Reporter, error) {
	s := settings{jobs: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&s)
	}

	switch name {
	case Names:
		return &namesReport{settings: s}, nil
	case CommonNames:
		return &commonNamesReport{settings: s}, nil
	case Missing:
		return &missingReport{settings: s}, nil
	case Epithets:
		return &epithetsReport{}, nil
	}
	return nil, UnknownError(name)
}

func write(w io.Writer, report, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return WriteError(report, err)
	}
	return nil
}
