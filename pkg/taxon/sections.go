package taxon

import (
	"fmt"
	"slices"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/status"
)

// Section is a titled group of assessments in a flat list.
type Section struct {
	Title   string
	Records []leaf.Record
	// Default sections do not need a heading when they are the only
	// non-empty section.
	Default bool
}

// Sections splits matching assessments under the node into species,
// subspecies, varieties and subpopulations. Subpopulations of the same
// taxon are grouped into one record. For status.EXplus sections are made
// per extinction category instead. Empty sections are kept.
func (n *Node) Sections(filter status.Status) []Section {
	recs := n.MatchingRecords(filter)
	pick := func(fn func(leaf.Record) bool) []leaf.Record {
		var res []leaf.Record
		for _, v := range recs {
			if fn(v) {
				res = append(res, v)
			}
		}
		return res
	}

	if filter == status.EXplus {
		var res []Section
		kinds := []struct {
			label string
			fn    func(leaf.Record) bool
		}{
			{"species", leaf.Record.IsSpecies},
			{"subspecies", leaf.Record.IsSubspeciesNotVariety},
			{"varieties", leaf.Record.IsVariety},
		}
		cats := []struct {
			label string
			st    status.Status
		}{
			{"Extinct", status.EX},
			{"Possibly extinct", status.PE},
			{"Extinct in the wild", status.EW},
			{"Possibly extinct in the wild", status.PEW},
		}
		for _, k := range kinds {
			for _, c := range cats {
				res = append(res, Section{
					Title: c.label + " " + k.label,
					Records: pick(func(r leaf.Record) bool {
						return k.fn(r) && !r.IsStockpop() && r.Status == c.st
					}),
				})
			}
		}
		return res
	}

	spPops := groupSubpops(pick(func(r leaf.Record) bool {
		return r.IsStockpop() && !r.IsTrinomial()
	}))
	sspPops := groupSubpops(pick(func(r leaf.Record) bool {
		return r.IsStockpop() && r.IsTrinomial()
	}))
	spPopsTitle := "Subpopulations"
	if len(sspPops) > 0 {
		spPopsTitle = "Subpopulations of species"
	}

	return []Section{
		{Title: "Species", Records: pick(leaf.Record.IsSpecies), Default: true},
		{Title: "Subspecies", Records: pick(leaf.Record.IsSubspeciesNotVariety)},
		{Title: "Varieties", Records: pick(leaf.Record.IsVariety)},
		{Title: spPopsTitle, Records: spPops},
		{Title: "Subpopulations of subspecies", Records: sspPops},
	}
}

// groupSubpops replaces subpopulations of the same taxon with one record.
func groupSubpops(recs []leaf.Record) []leaf.Record {
	groups := make(map[string][]leaf.Record)
	for _, v := range recs {
		key := v.BasicName()
		groups[key] = append(groups[key], v)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	res := make([]leaf.Record, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		res = append(res, g[0].WithStockpop(SubpopsText(len(g))))
	}
	return res
}

// SubpopsText describes a number of subpopulations, e.g.
// "3 subpopulations".
func SubpopsText(count int) string {
	if count == 1 {
		return "1 subpopulation"
	}
	return fmt.Sprintf("%d subpopulations", count)
}

// Uncovered returns the top-most nodes under n that are not covered
// by contents. A node is covered if it is in contents itself or all its
// children are covered. Pseudo nodes are not part of the tree, so pass
// their children instead.
func (n *Node) Uncovered(contents []*Node) []*Node {
	set := make(map[*Node]struct{}, len(contents))
	for _, v := range contents {
		set[v] = struct{}{}
	}
	res, _ := n.uncovered(set)
	return res
}

func (n *Node) uncovered(set map[*Node]struct{}) ([]*Node, bool) {
	if _, ok := set[n]; ok {
		return nil, true
	}

	var res []*Node
	var allMissing int
	for _, v := range n.children {
		missing, covered := v.uncovered(set)
		if covered {
			continue
		}
		if len(missing) == 1 && missing[0] == v {
			allMissing++
		}
		res = append(res, missing...)
	}

	if allMissing == len(n.children) {
		return []*Node{n}, false
	}
	return res, false
}
