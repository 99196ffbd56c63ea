// Package rules keeps editorial rules about taxa: synthetic ranks to
// splice into the hierarchy, nodes to hide, pinned sort orders, forced
// splits, and English names of taxa.
//
// This is a pure package, rules are read from a file by internal/iorules.
package rules

import (
	"strings"
)

// Insertion asks to put a synthetic node (BelowRank, Below) right above
// the taxon the rule belongs to.
type Insertion struct {
	// BelowRank is the rank of the synthetic node.
	BelowRank string
	// Below is the name of the synthetic node.
	Below string
}

// Lookup is what the tree builder and division engine need from rules.
type Lookup interface {
	// InsertionRule returns a rule to insert a synthetic node above
	// the named taxon.
	InsertionRule(name string) (Insertion, bool)

	// IsForceSplit is true if the node must always be divided into its
	// children.
	IsForceSplit(name string) bool

	// SortOrder returns pinned order of the node's children.
	SortOrder(name string) ([]string, bool)
}

// Taxon contains all rules about one taxon.
type Taxon struct {
	Name        string   `yaml:"name"`
	Below       string   `yaml:"below"`
	BelowRank   string   `yaml:"below_rank"`
	ForceSplit  bool     `yaml:"force_split"`
	SortOrder   []string `yaml:"sort_order"`
	Transparent bool     `yaml:"transparent"`
	Breakout    []string `yaml:"breakout"`
	CommonName  string   `yaml:"common_name"`
	Plural      string   `yaml:"plural"`
	Adjective   string   `yaml:"adjective"`
	Comprises   string   `yaml:"comprises"`
}

// Pseudo describes a paraphyletic group, such as invertebrates.
type Pseudo struct {
	Name    string   `yaml:"name"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Lists names taxa that get their own set of lists.
type Lists struct {
	// PerCategory taxa get one list per Red List category.
	PerCategory []string `yaml:"per_category"`
	// PerTaxon taxa get one list with all categories.
	PerTaxon []string `yaml:"per_taxon"`
	// NamesOnly taxa are listed by common names, scientific names are
	// shown only when there is no common name.
	NamesOnly []string `yaml:"names_only"`
}

// File is the layout of the rules file.
type File struct {
	Taxa   []Taxon  `yaml:"taxa"`
	Pseudo []Pseudo `yaml:"pseudo"`
	Lists  Lists    `yaml:"lists"`
}

// RuleSet is a case-insensitive collection of taxon rules.
type RuleSet struct {
	taxa   map[string]Taxon
	order  []string
	pseudo []Pseudo
	lists  Lists
}

// New creates a RuleSet. If the same taxon appears several times,
// the last entry wins.
func New(f File) *RuleSet {
	res := &RuleSet{
		taxa:   make(map[string]Taxon, len(f.Taxa)),
		pseudo: f.Pseudo,
		lists:  f.Lists,
	}
	for _, v := range f.Taxa {
		v.Name = strings.TrimSpace(v.Name)
		if v.Name == "" {
			continue
		}
		key := strings.ToLower(v.Name)
		if _, ok := res.taxa[key]; !ok {
			res.order = append(res.order, v.Name)
		}
		res.taxa[key] = v
	}
	return res
}

// Details returns all rules for a taxon.
func (r *RuleSet) Details(name string) (Taxon, bool) {
	if r == nil {
		return Taxon{}, false
	}
	res, ok := r.taxa[strings.ToLower(strings.TrimSpace(name))]
	return res, ok
}

// InsertionRule implements Lookup. A rule is returned if either part of it
// is set, the builder decides what to do with incomplete rules.
func (r *RuleSet) InsertionRule(name string) (Insertion, bool) {
	t, ok := r.Details(name)
	if !ok || (t.Below == "" && t.BelowRank == "") {
		return Insertion{}, false
	}
	return Insertion{BelowRank: t.BelowRank, Below: t.Below}, true
}

// IsForceSplit implements Lookup.
func (r *RuleSet) IsForceSplit(name string) bool {
	t, ok := r.Details(name)
	return ok && t.ForceSplit
}

// SortOrder implements Lookup.
func (r *RuleSet) SortOrder(name string) ([]string, bool) {
	t, ok := r.Details(name)
	if !ok || len(t.SortOrder) == 0 {
		return nil, false
	}
	return t.SortOrder, true
}

// Transparent returns names of taxa that should be removed from the
// hierarchy, their children moving one level up.
func (r *RuleSet) Transparent() []string {
	return r.collect(func(t Taxon) bool { return t.Transparent })
}

// Sorted returns names of taxa that have a pinned sort order.
func (r *RuleSet) Sorted() []string {
	return r.collect(func(t Taxon) bool { return len(t.SortOrder) > 0 })
}

// Breakouts returns names of taxa with breakout lists.
func (r *RuleSet) Breakouts() []string {
	return r.collect(func(t Taxon) bool { return len(t.Breakout) > 0 })
}

// Breakout returns names of taxa that are listed separately from the
// named taxon.
func (r *RuleSet) Breakout(name string) []string {
	t, _ := r.Details(name)
	return t.Breakout
}

func (r *RuleSet) collect(fn func(Taxon) bool) []string {
	if r == nil {
		return nil
	}
	var res []string
	for _, v := range r.order {
		if fn(r.taxa[strings.ToLower(v)]) {
			res = append(res, v)
		}
	}
	return res
}

// Pseudo returns definitions of paraphyletic groups.
func (r *RuleSet) Pseudo() []Pseudo {
	if r == nil {
		return nil
	}
	return r.pseudo
}

// Lists returns taxa that need lists.
func (r *RuleSet) Lists() Lists {
	if r == nil {
		return Lists{}
	}
	return r.lists
}

// CommonName returns English name of a taxon, or an empty string.
func (r *RuleSet) CommonName(name string) string {
	t, _ := r.Details(name)
	return t.CommonName
}

// Plural returns English plural for a taxon. If only a common name
// is known, a naive plural is made from it.
func (r *RuleSet) Plural(name string) string {
	t, ok := r.Details(name)
	if !ok {
		return ""
	}
	if t.Plural != "" {
		return t.Plural
	}
	return plural(t.CommonName)
}

// Adjective returns an adjective for the taxon, e.g. "mammalian".
func (r *RuleSet) Adjective(name string) string {
	t, _ := r.Details(name)
	return t.Adjective
}

func plural(s string) string {
	switch {
	case s == "":
		return ""
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "fish"):
		return s
	case strings.HasSuffix(s, "y") && !strings.HasSuffix(s, "ey"):
		return s[:len(s)-1] + "ies"
	}
	return s + "s"
}
