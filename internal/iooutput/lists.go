package iooutput

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/gnames/gnsys"
)

const (
	// bigListSize is the number of assessments after which lists use
	// the biglist module instead of the columns-list template.
	bigListSize = 3000

	// minColumns is the smallest list that is split into columns.
	minColumns = 3
)

// ListWriter renders assessments under a node as a wiki article with
// nested headings and bulleted lists.
type ListWriter struct {
	rules    *rules.RuleSet
	dateText string
}

// NewListWriter creates a ListWriter. The rules provide adjectives for
// article introductions and the taxa listed by common names only.
// dateText names the Red List version, like "2024-2".
func NewListWriter(rs *rules.RuleSet, dateText string) *ListWriter {
	if dateText == "" {
		dateText = "the latest assessment"
	}
	return &ListWriter{rules: rs, dateText: dateText}
}

type listCtx struct {
	filter    status.Status
	namesOnly bool
	biglist   bool
}

// WriteList writes the article for assessments under n that match the
// filter. Nothing is written if there are no such assessments.
func (lw *ListWriter) WriteList(
	w io.Writer,
	n *taxon.Node,
	filter status.Status,
) error {
	stats := n.Stats(filter)
	if stats.Empty() {
		return nil
	}
	lc := listCtx{
		filter:    filter,
		namesOnly: lw.isNamesOnly(n),
		biglist:   stats.Total() > bigListSize,
	}

	var sb strings.Builder
	sb.WriteString("<!-- auto-generated by gnredlist -->\n")
	fmt.Fprintf(&sb, "{{IUCN %s chart}}\n", n.Name().LowerOrTaxon())
	sb.WriteString(lw.articleBlurb(n, filter))
	lw.writeNode(&sb, n, lc, 0)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return WriteError(n.Name().Taxon(), err)
	}
	return nil
}

func (lw *ListWriter) writeNode(
	sb *strings.Builder,
	n *taxon.Node,
	lc listCtx,
	depth int,
) {
	stats := n.Stats(lc.filter)
	if stats.Empty() {
		return
	}
	if !lc.namesOnly && lw.isNamesOnly(n) {
		lc.namesOnly = true
	}
	if head := heading(n, stats, depth); head != "" {
		sb.WriteString(head + "\n")
	}

	divs := slices.Collect(n.Divisions(lc.filter, depth))
	if len(divs) > 0 {
		for _, v := range divs {
			lw.writeNode(sb, v, lc, depth+1)
		}
		return
	}

	var sections []taxon.Section
	for _, v := range n.Sections(lc.filter) {
		if len(v.Records) > 0 {
			sections = append(sections, v)
		}
	}
	if len(sections) == 1 && sections[0].Default {
		sb.WriteString(formatList(sections[0].Records, lc) + "\n")
		return
	}
	for _, v := range sections {
		fmt.Fprintf(sb, "'''%s'''\n", v.Title)
		sb.WriteString(formatList(v.Records, lc) + "\n")
	}
}

// heading is empty for the top of the article. Other levels get one
// more "=" than their depth, so the first level is "==Heading==".
func heading(n *taxon.Node, stats taxon.Stats, depth int) string {
	if depth == 0 {
		return ""
	}
	text := n.Name().LinkText()
	if stats.Species > 0 && stats.Subspecies == 0 && stats.SubpopsTotal() == 0 {
		text += " species"
	}
	eq := strings.Repeat("=", depth+1)
	return eq + text + eq
}

func (lw *ListWriter) articleBlurb(n *taxon.Node, filter status.Status) string {
	var sb strings.Builder
	st := n.Stats(filter)
	all := n.Stats(status.Null)

	var statusText string
	if !filter.IsNull() {
		statusText = filter.TextWithRecently() + " "
	}
	fmt.Fprintf(&sb,
		"As of %s, the [[International Union for Conservation of Nature]] "+
			"(IUCN) lists %s %s%s",
		lw.dateText, humanize.Comma(int64(st.Species)), statusText,
		lw.speciesGroup(n),
	)

	if filter == status.CR {
		pe := n.Stats(status.PE).Species + n.Stats(status.PEW).Species
		switch {
		case pe == 0:
			sb.WriteString(", none of which are tagged as ''possibly extinct''.")
		case n.Stats(status.PEW).Species == 0:
			fmt.Fprintf(&sb,
				", including %d which are tagged as ''possibly extinct''.", pe)
		default:
			fmt.Fprintf(&sb,
				", including %d which are tagged as ''possibly extinct'' "+
					"or ''possibly extinct in the wild''.", pe)
		}
	} else {
		sb.WriteString(".")
	}

	if !filter.IsNull() && st.Species > 0 && all.Species > 0 {
		pct := float64(st.Species) * 100 / float64(all.Species)
		fmt.Fprintf(&sb,
			" %.1f%% of all evaluated %s are listed as %s.",
			pct, lw.speciesGroup(n), filter.Text(),
		)
	}
	sb.WriteString("\n")
	return sb.String()
}

// speciesGroup gives "mammalian species" when an adjective is known,
// otherwise "species within Mammalia".
func (lw *ListWriter) speciesGroup(n *taxon.Node) string {
	if n.Rank() == taxon.RankTop {
		return "species"
	}
	name := n.Name().Taxon()
	if adj := lw.rules.Adjective(name); adj != "" {
		return adj + " species"
	}
	return "species within " + name
}

func (lw *ListWriter) isNamesOnly(n *taxon.Node) bool {
	for _, v := range lw.rules.Lists().NamesOnly {
		if n.IsOrParentIs(v) {
			return true
		}
	}
	return false
}

func formatList(recs []leaf.Record, lc listCtx) string {
	if len(recs) == 0 {
		return ""
	}
	recs = slices.Clone(recs)
	slices.SortFunc(recs, func(a, b leaf.Record) int {
		return strings.Compare(a.FullName(), b.FullName())
	})

	lines := make([]string, len(recs))
	for i, v := range recs {
		lines[i] = "*" + formatRecord(v, lc)
	}
	res := strings.Join(lines, "\n")
	if len(recs) < minColumns {
		return res
	}
	start := "{{columns-list|colwidth=30em|"
	if lc.biglist {
		start = "{{#invoke:biglist|columns-list|colwidth=30em|"
	}
	return start + "\n" + res + "\n}}"
}

// formatRecord renders one assessment, e.g.
// "[[Balaena mysticetus|Bowhead whale]] (Svalbard subpopulation) {{IUCN status|CR}}".
func formatRecord(r leaf.Record, lc listCtx) string {
	var sb strings.Builder
	showStatus := lc.filter.IsNull()

	if showStatus && r.Status == status.EX {
		sb.WriteString("{{Extinct}}")
	}
	sb.WriteString(recordLink(r, lc.namesOnly))
	if r.IsStockpop() {
		sb.WriteString(" (" + r.Stockpop + ")")
	}
	if showStatus && r.Status.IsEvaluated() {
		fmt.Fprintf(&sb, " {{IUCN status|%s}}", r.Status.Limited())
	}

	switch lc.filter {
	case status.Null, status.CR, status.EX:
		switch r.Status {
		case status.PE:
			sb.WriteString(" (possibly&nbsp;extinct)")
		case status.PEW:
			sb.WriteString(" (possibly extinct in the wild)")
		case status.EW:
			sb.WriteString(" (extinct in the wild)")
		}
	}
	return sb.String()
}

func recordLink(r leaf.Record, namesOnly bool) string {
	name := r.BasicName()
	common := r.BestCommonName()
	if namesOnly && common != "" {
		return fmt.Sprintf("[[%s|%s]]", name, upperFirst(common))
	}
	res := fmt.Sprintf("''[[%s]]''", name)
	if common != "" {
		res += ", " + common
	}
	return res
}

func upperFirst(s string) string {
	for i := range s {
		if i > 0 {
			return strings.ToUpper(s[:i]) + s[i:]
		}
	}
	return strings.ToUpper(s)
}

// WriteLists creates list files in dir for taxa named in the rules.
// "Per category" taxa get a file for every status filter, "per taxon"
// taxa get one file with all assessments. Paraphyletic groups from
// the rules can be used as taxa too. It returns the paths of created
// files.
func (lw *ListWriter) WriteLists(dir string, tree *taxon.Tree) ([]string, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, WriteError(dir, err)
	}

	pseudo := make(map[string]*taxon.Node)
	for _, v := range lw.rules.Pseudo() {
		n, err := tree.PseudoNode(v.Name, v.Include, v.Exclude)
		if err != nil {
			slog.Warn("Cannot create group", "name", v.Name, "error", err)
			continue
		}
		pseudo[strings.ToLower(v.Name)] = n
	}
	find := func(name string) (*taxon.Node, bool) {
		if n, ok := pseudo[strings.ToLower(name)]; ok {
			return n, true
		}
		return tree.FindByName(name)
	}

	type job struct {
		name   string
		filter status.Status
	}
	lists := lw.rules.Lists()
	var jobs []job
	for _, v := range lists.PerCategory {
		for _, st := range status.Filters() {
			jobs = append(jobs, job{v, st})
		}
	}
	for _, v := range lists.PerTaxon {
		jobs = append(jobs, job{v, status.Null})
	}

	var res []string
	for _, j := range jobs {
		n, ok := find(j.name)
		if !ok {
			slog.Warn("Taxon for a list is not found", "name", j.name)
			continue
		}
		if n.Stats(j.filter).Empty() {
			continue
		}
		path := filepath.Join(dir, ListFileName(n, j.filter))
		if err := lw.WriteFile(path, n, j.filter); err != nil {
			return res, err
		}
		slog.Info("List created",
			"file", filepath.Base(path),
			"items", n.Stats(j.filter).Total(),
		)
		res = append(res, path)
	}
	return res, nil
}

// WriteFile writes the list of n to a file at path.
func (lw *ListWriter) WriteFile(
	path string,
	n *taxon.Node,
	filter status.Status,
) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	if err = lw.WriteList(f, n, filter); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// ListFileName gives a file name like "mammals-CR.wiki". Lists without
// a filter have no status part.
func ListFileName(n *taxon.Node, filter status.Status) string {
	name := strings.ToLower(n.Name().LowerPluralOrTaxon())
	name = strings.Join(strings.Fields(name), "-")
	if filter.IsNull() {
		return name + ".wiki"
	}
	return fmt.Sprintf("%s-%s.wiki", name, filter)
}
