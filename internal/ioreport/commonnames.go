package ioreport

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/taxon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonNamesReport finds likely errors and odd formatting in English
// common names and in scientific names of assessments.
type commonNamesReport struct {
	settings
}

type nameCheck struct {
	title string
	note  string
	// check returns descriptions of issues of the record.
	check func(r leaf.Record) []string
}

var (
	parensCommaRe = regexp.MustCompile(`\(.*,.*\)`)
	camelRe       = regexp.MustCompile(`\p{Ll}\p{Lu}`)
	apostCapsRe   = regexp.MustCompile(`\p{Ll}'\p{Lu}`)
	capsPrefixRe  = regexp.MustCompile(`\b(De|Mc|Mac|Van|d'|l')`)
	fbRe          = regexp.MustCompile(`(?i)\(fb\)`)
)

var nameChecks = []nameCheck{
	{
		title: "Separators",
		note: "Entries which appear to break the convention of using " +
			"a comma to separate common names.",
		check: checkSeparators,
	},
	{
		title: "Redundant ''the''",
		check: eachName(func(n string) string {
			if strings.HasPrefix(strings.ToLower(n), "the ") {
				return "common name begins with 'the'"
			}
			return ""
		}),
	},
	{
		title: "Double space",
		check: eachName(func(n string) string {
			if strings.Contains(n, "  ") {
				return "common name contains double space"
			}
			return ""
		}),
	},
	{
		title: "Question marks",
		note: "Usually characters that could not be encoded in the " +
			"IUCN export.",
		check: eachName(func(n string) string {
			if strings.Contains(n, "?") {
				return "contains a question mark"
			}
			return ""
		}),
	},
	{
		title: "Numbers",
		check: eachName(func(n string) string {
			if strings.IndexFunc(n, unicode.IsDigit) != -1 {
				return "contains digits"
			}
			return ""
		}),
	},
	{
		title: "Dot",
		check: eachName(func(n string) string {
			if strings.HasSuffix(n, ".") {
				return "ends with a dot"
			}
			return ""
		}),
	},
	{
		title: "FB",
		note:  "Names marked as coming from FishBase.",
		check: eachName(func(n string) string {
			if fbRe.MatchString(n) {
				return "contains (FB)"
			}
			return ""
		}),
	},
	{
		title: "Species code",
		check: eachName(func(n string) string {
			if strings.HasPrefix(strings.ToLower(n), "species code") {
				return "species code instead of a name"
			}
			return ""
		}),
	},
	{
		title: "All caps",
		check: eachName(checkAllCaps),
	},
	{
		title: "Odd caps",
		note:  "Ignoring names with De, Mc, Mac, Van, d' and l'.",
		check: eachName(func(n string) string {
			if capsPrefixRe.MatchString(n) {
				return ""
			}
			switch {
			case apostCapsRe.MatchString(n):
				return "odd caps with apostrophe"
			case camelRe.MatchString(n):
				return "camel case"
			}
			return ""
		}),
	},
	{
		title: "Symbols in scientific name",
		check: checkSymbols,
	},
}

func (cr *commonNamesReport) Report(
	_ context.Context,
	w io.Writer,
	tree *taxon.Tree,
) error {
	recs := tree.Root().DeepRecords(func(r leaf.Record) bool {
		return !r.IsStockpop()
	})

	var sb strings.Builder
	sb.WriteString("Possible errors or issues of English common names " +
		"found in the IUCN Red List")
	if cr.dateText != "" {
		sb.WriteString(" (" + cr.dateText + ")")
	}
	sb.WriteString(".\n\n")

	for _, v := range nameChecks {
		writeCheck(&sb, v, recs)
	}
	writeDuplicates(&sb, recs)
	writeCommonNameStats(&sb, recs)
	return write(w, CommonNames, sb.String())
}

func writeCheck(sb *strings.Builder, nc nameCheck, recs []leaf.Record) {
	fmt.Fprintf(sb, "==%s==\n", nc.title)
	if nc.note != "" {
		sb.WriteString(nc.note + "\n")
	}
	var found bool
	for _, r := range recs {
		for _, issue := range nc.check(r) {
			fmt.Fprintf(sb, "* ''%s'' %s\n", r.FullName(), issue)
			found = true
		}
	}
	if !found {
		sb.WriteString("No issues found.\n")
	}
	sb.WriteString("\n")
}

// splitNames splits the raw common names field, without the cleanup
// of leaf.Record.CommonNames.
func splitNames(r leaf.Record) []string {
	if strings.TrimSpace(r.CommonNamesEng) == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(r.CommonNamesEng, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func eachName(fn func(string) string) func(leaf.Record) []string {
	return func(r leaf.Record) []string {
		var res []string
		for _, v := range splitNames(r) {
			if issue := fn(v); issue != "" {
				res = append(res, fmt.Sprintf("(%s): %s", v, issue))
			}
		}
		return res
	}
}

func checkSeparators(r leaf.Record) []string {
	field := r.CommonNamesEng
	if field == "" {
		return nil
	}
	var res []string
	add := func(s string) {
		res = append(res, fmt.Sprintf("(%s): %s", field, s))
	}
	switch {
	case strings.Contains(field, " - "):
		add("dash with spaces")
	case strings.Contains(field, "--"):
		add("double dash")
	}
	if strings.Contains(field, ";") {
		add("contains semicolon")
	}
	if strings.Contains(field, " or ") {
		add("contains 'or'")
	}
	if parensCommaRe.MatchString(field) {
		add("comma inside parentheses")
	}
	return res
}

func checkAllCaps(n string) string {
	var letters int
	for _, r := range n {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return ""
		}
		letters++
	}
	if letters < 2 {
		return ""
	}
	caser := cases.Title(language.English)
	return "all caps name, suggested: " + caser.String(strings.ToLower(n))
}

func checkSymbols(r leaf.Record) []string {
	ok := "' .\"-"
	for _, v := range r.BasicName() {
		if (unicode.IsSymbol(v) || unicode.IsPunct(v)) && !strings.ContainsRune(ok, v) {
			return []string{"contains symbols"}
		}
	}
	return nil
}

// writeDuplicates lists common names that are used for more than one
// species.
func writeDuplicates(sb *strings.Builder, recs []leaf.Record) {
	sb.WriteString("==Duplicates==\n")
	byName := make(map[string][]string)
	var keys []string
	for _, r := range recs {
		if !r.IsSpecies() {
			continue
		}
		name := r.BestCommonName()
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := byName[key]; !ok {
			keys = append(keys, key)
		}
		byName[key] = append(byName[key], r.BasicName())
	}
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Compare(a, b)
	})

	var found bool
	for _, k := range keys {
		names := byName[k]
		if len(names) < 2 {
			continue
		}
		found = true
		fmt.Fprintf(sb, "* %s: ''%s''\n", k, strings.Join(names, "'', ''"))
	}
	if !found {
		sb.WriteString("No issues found.\n")
	}
	sb.WriteString("\n")
}

func writeCommonNameStats(sb *strings.Builder, recs []leaf.Record) {
	var sp, ssp, spNamed, sspNamed, spNames, sspNames int
	for _, r := range recs {
		count := len(splitNames(r))
		if r.IsTrinomial() {
			ssp++
			sspNames += count
			if count > 0 {
				sspNamed++
			}
			continue
		}
		sp++
		spNames += count
		if count > 0 {
			spNamed++
		}
	}

	sb.WriteString("==Stats==\n")
	fmt.Fprintf(sb,
		"* %d of %d species have at least one English common name (%s)\n",
		spNamed, sp, percent(spNamed, sp))
	fmt.Fprintf(sb,
		"* %d of %d subspecies have at least one English common name (%s)\n",
		sspNamed, ssp, percent(sspNamed, ssp))
	fmt.Fprintf(sb, "* %d total species common names\n", spNames)
	fmt.Fprintf(sb, "* %d total subspecies common names\n", sspNames)
	fmt.Fprintf(sb, "* %d total common names\n", spNames+sspNames)
}

func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
