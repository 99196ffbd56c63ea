// Package parserpool keeps ready gnparser instances for checking
// scientific names of assessments concurrently.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool parses names with parsers configured for a nomenclatural code.
type Pool interface {
	// Parse takes a parser for the code from the pool, parses the name and
	// returns the parser back. It blocks while all parsers for the code
	// are busy. Safe for concurrent use.
	Parse(name string, code nomcode.Code) (parsed.Parsed, error)

	// Close releases parsers. The pool cannot be used afterwards.
	Close()
}

type pool struct {
	parsers map[nomcode.Code]chan gnparser.GNparser
	size    int
}

// NewPool creates parsers for botanical and zoological codes, jobsNum
// of each. If jobsNum is 0, runtime.NumCPU() is used. Bacterial names
// are parsed by botanical parsers.
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	res := &pool{
		parsers: make(map[nomcode.Code]chan gnparser.GNparser),
		size:    size,
	}
	for _, code := range []nomcode.Code{nomcode.Botanical, nomcode.Zoological} {
		cfg := gnparser.NewConfig(
			gnparser.OptCode(code),
			gnparser.OptWithDetails(true),
		)
		res.parsers[code] = gnparser.NewPool(cfg, size)
	}
	res.parsers[nomcode.Bacterial] = res.parsers[nomcode.Botanical]
	return res
}

func (p *pool) Parse(name string, code nomcode.Code) (parsed.Parsed, error) {
	ch, ok := p.parsers[code]
	if !ok {
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	res := parser.ParseName(name)
	ch <- parser

	return res, nil
}

func (p *pool) Close() {
	for _, code := range []nomcode.Code{nomcode.Botanical, nomcode.Zoological} {
		ch := p.parsers[code]
		close(ch)
		for range ch {
		}
	}
	clear(p.parsers)
}
