package iocsv

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	peMarkers = []string{" CR(PE)", " CR(PEW)"}
	// the name ends where a capitalized common name starts
	peNameRe = regexp.MustCompile(`([A-Z].*?) [A-Z]`)
)

// ParsePossiblyExtinct reads a list of possibly extinct taxa. The list is
// a copy of a table from a PDF, lines look like
//
//	Rhizopsammia wellingtoni Wellington's Solitary Coral CR(PE) 2007 2000
//
// The result maps lowercase names to "CR(PE)" or "CR(PEW)". Lines without
// a marker are ignored.
func ParsePossiblyExtinct(r io.Reader) (map[string]string, error) {
	res := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		for _, m := range peMarkers {
			idx := strings.Index(line, m)
			if idx == -1 {
				continue
			}
			left := line[:idx]
			name := left
			if ms := peNameRe.FindStringSubmatch(left); ms != nil {
				name = ms[1]
			}
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" {
				res[name] = strings.TrimSpace(m)
			}
			break
		}
	}
	return res, sc.Err()
}
