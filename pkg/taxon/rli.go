package taxon

import (
	"cmp"
	"math"
	"slices"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/status"
)

// RLI computes the Red List Index of species under the node: 1 when all
// species are of least concern, 0 when all are extinct. Subspecies and
// subpopulations are ignored, as are species without a weight (DD, NE).
// If there are no weighted species, RLI returns NaN and false.
func (n *Node) RLI() (float64, bool) {
	if n.rli != nil {
		return n.rli.val, n.rli.ok
	}

	var sum, count int
	n.walkRecords(func(r leaf.Record) {
		if !r.IsSpecies() {
			return
		}
		if w, ok := r.Status.RLIWeight(); ok {
			sum += w
			count++
		}
	})

	res := &rliValue{val: math.NaN()}
	if count > 0 {
		res.val = 1 - float64(sum)/float64(count*status.MaxWeight)
		res.ok = true
	}
	n.rli = res
	return res.val, res.ok
}

// compareRLI orders nodes from the highest extinction risk to the lowest.
// Nodes without RLI go last.
func compareRLI(a, b *Node) int {
	ra, okA := a.RLI()
	rb, okB := b.RLI()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return cmp.Compare(ra, rb)
}

// OrderedChildren returns children in pinned order, or sorted by
// ascending RLI. The sort is stable, so ties keep insertion order.
func (n *Node) OrderedChildren() []*Node {
	res := slices.Clone(n.children)
	if n.pinned {
		return res
	}
	slices.SortStableFunc(res, compareRLI)
	return res
}
