// Package taxon builds a hierarchy of taxa from Red List assessments and
// answers questions about it: statistics per Red List category, the Red
// List Index, and how to split a taxon into sections of a list.
//
// A hierarchy is created by Builder. After Builder.Build the hierarchy is
// read-only, and statistics are cached per node and per status filter.
package taxon

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
)

// Ranks used by the hierarchy.
const (
	RankTop           = "top"
	RankKingdom       = "kingdom"
	RankPhylum        = "phylum"
	RankClass         = "class"
	RankOrder         = "order"
	RankFamily        = "family"
	RankGenus         = "genus"
	RankSpecies       = "species"
	RankInfraspecific = "infraspecific name"
	RankStockpop      = "stock/subpopulation"
	RankNoRank        = "no rank"
	RankParaphyletic  = "paraphyletic group"
)

var majorRanks = map[string]struct{}{
	RankKingdom: {}, RankPhylum: {}, RankClass: {}, RankOrder: {},
	RankFamily: {}, RankGenus: {}, RankSpecies: {},
}

// Node is a taxon in the hierarchy. Children are owned by the node,
// the parent reference is only used for navigation.
type Node struct {
	rank     string
	name     Name
	parent   *Node
	children []*Node
	records  []leaf.Record
	breakout []*Node

	// pinned is true when children order comes from a sort order rule.
	pinned bool
	rules  rules.Lookup

	stats map[status.Status]Stats
	rli   *rliValue
}

type rliValue struct {
	val float64
	ok  bool
}

func newNode(rank string, name Name, parent *Node, lookup rules.Lookup) *Node {
	return &Node{
		rank:   rank,
		name:   name,
		parent: parent,
		rules:  lookup,
	}
}

// Rank of the node.
func (n *Node) Rank() string {
	return n.rank
}

// Name of the node.
func (n *Node) Name() Name {
	return n.name
}

// Parent returns nil for the root and for pseudo nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Records returns assessments attached directly to the node.
func (n *Node) Records() []leaf.Record {
	return slices.Clone(n.records)
}

// Breakout returns nodes that are listed separately from this node.
func (n *Node) Breakout() []*Node {
	return slices.Clone(n.breakout)
}

// IsPinned is true if children have a fixed editorial order.
func (n *Node) IsPinned() bool {
	return n.pinned
}

// IsMajorRank is true for the Linnean ranks from kingdom to species.
func (n *Node) IsMajorRank() bool {
	_, ok := majorRanks[n.rank]
	return ok
}

// IsOrParentIs is true if the name of the node or of any of its
// ancestors contains s, ignoring case.
func (n *Node) IsOrParentIs(s string) bool {
	s = strings.ToLower(s)
	for cur := n; cur != nil; cur = cur.parent {
		if strings.Contains(strings.ToLower(cur.name.Taxon()), s) {
			return true
		}
	}
	return false
}

// Path returns the ladder from the top of the hierarchy to the node.
// The root is not included.
func (n *Node) Path() Ladder {
	var res Ladder
	for cur := n; cur != nil && cur.rank != RankTop; cur = cur.parent {
		res = append(res, Rung{Rank: cur.rank, Name: cur.name.Taxon()})
	}
	slices.Reverse(res)
	return res
}

// BreadthFirst iterates over the node and all its descendants, level by
// level.
func (n *Node) BreadthFirst() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			queue = append(queue, cur.children...)
		}
	}
}

// FindByName searches the node and its descendants breadth-first for a
// name, ignoring case. Assessments are not searched.
func (n *Node) FindByName(name string) (*Node, bool) {
	name = strings.TrimSpace(name)
	for v := range n.BreadthFirst() {
		if strings.EqualFold(v.name.Taxon(), name) {
			return v, true
		}
	}
	return nil, false
}

// DeepRecords returns all assessments at or below the node that satisfy
// pred, sorted by their basic name. A nil pred accepts everything.
func (n *Node) DeepRecords(pred func(leaf.Record) bool) []leaf.Record {
	var res []leaf.Record
	n.walkRecords(func(r leaf.Record) {
		if pred == nil || pred(r) {
			res = append(res, r)
		}
	})
	slices.SortStableFunc(res, func(a, b leaf.Record) int {
		return cmp.Or(
			cmp.Compare(a.BasicName(), b.BasicName()),
			cmp.Compare(a.FullName(), b.FullName()),
		)
	})
	return res
}

// MatchingRecords returns assessments under the node that pass the
// filter.
func (n *Node) MatchingRecords(filter status.Status) []leaf.Record {
	if filter.IsNull() {
		return n.DeepRecords(nil)
	}
	return n.DeepRecords(func(r leaf.Record) bool {
		return r.Status.Matches(filter)
	})
}

func (n *Node) walkRecords(fn func(leaf.Record)) {
	for _, v := range n.records {
		fn(v)
	}
	for _, v := range n.children {
		v.walkRecords(fn)
	}
}

func (n *Node) child(name string) (*Node, bool) {
	for _, v := range n.children {
		if strings.EqualFold(v.name.Taxon(), name) {
			return v, true
		}
	}
	return nil, false
}
