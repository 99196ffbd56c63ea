package taxon

import (
	"iter"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/status"
)

const (
	// oneDivide is the size of a child (in species or subspecies) that
	// makes a node worth dividing.
	oneDivide = 15
	// extinct lists are divided less, especially deep in the hierarchy
	oneDivideExtinctDepth1 = 45
	oneDivideExtinctDeeper = 400

	mergeMinGroups     = 5
	mergeMaxSize       = 4
	veryMergeMinGroups = 3
	veryMergeMaxSize   = 2
	// topMergeMaxSize replaces both size caps at depth 0
	topMergeMaxSize = 2
)

var nonDividable = map[string]struct{}{
	RankFamily:  {},
	RankGenus:   {},
	RankSpecies: {},
}

// Divisions decides how to split the node into sections of a list for
// the filter. Depth is the level of the node in the list, 0 for the top.
//
// It yields nothing when the node should be listed flat: the node is a
// family, genus or species, has at most one child, or none of its
// children is big enough. Otherwise it yields children that have
// matching assessments, in RLI order or in pinned order. Small children
// may be merged into one aggregate "Other" node that is yielded last;
// the aggregate has all assessments of the merged children.
func (n *Node) Divisions(filter status.Status, depth int) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, v := range n.divisions(filter, depth) {
			if !yield(v) {
				return
			}
		}
	}
}

func (n *Node) divisions(filter status.Status, depth int) []*Node {
	if _, ok := nonDividable[n.rank]; ok || len(n.children) <= 1 {
		return nil
	}

	var candidates []*Node
	for _, v := range n.OrderedChildren() {
		if v.Stats(filter).Total() > 0 {
			candidates = append(candidates, v)
		}
	}

	if n.rules != nil && n.rules.IsForceSplit(n.name.Taxon()) {
		return candidates
	}

	threshold := oneDivide
	if filter == status.EXplus {
		switch {
		case depth == 1:
			threshold = oneDivideExtinctDepth1
		case depth >= 2:
			threshold = oneDivideExtinctDeeper
		}
	}

	var dividable bool
	for _, v := range n.children {
		st := v.Stats(filter)
		if (st.Species >= threshold || st.Subspecies >= threshold) &&
			v.name.IsAssigned() {
			dividable = true
			break
		}
	}
	if !dividable {
		return nil
	}

	if filter == status.EXplus {
		return candidates
	}

	merged := mergeable(candidates, filter, depth)
	if len(merged) == 0 || len(merged) == len(candidates) {
		return candidates
	}

	var recs []leaf.Record
	for _, v := range merged {
		recs = append(recs, v.DeepRecords(nil)...)
	}
	if len(recs) <= 1 {
		return candidates
	}

	other := newNode(RankNoRank, NewOtherName(n.name), n, n.rules)
	other.records = recs

	isMerged := make(map[*Node]struct{}, len(merged))
	for _, v := range merged {
		isMerged[v] = struct{}{}
	}
	res := make([]*Node, 0, len(candidates)-len(merged)+1)
	for _, v := range candidates {
		if _, ok := isMerged[v]; !ok {
			res = append(res, v)
		}
	}
	return append(res, other)
}

// mergeable returns children that should go to an aggregate node, or
// nil if there are not enough of them.
func mergeable(candidates []*Node, filter status.Status, depth int) []*Node {
	maxSize, veryMaxSize := mergeMaxSize, veryMergeMaxSize
	if depth == 0 {
		maxSize, veryMaxSize = topMergeMaxSize, topMergeMaxSize
	}

	var merge, veryMerge []*Node
	for _, v := range candidates {
		total := v.Stats(filter).Total()
		small := !v.name.IsAssigned()
		if small || total <= maxSize {
			merge = append(merge, v)
		}
		if small || total <= veryMaxSize {
			veryMerge = append(veryMerge, v)
		}
	}

	switch {
	case len(merge) >= mergeMinGroups:
		return merge
	case len(veryMerge) >= veryMergeMinGroups:
		return veryMerge
	}
	return nil
}
