package ioreport

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/taxon"
)

// epithetsReport sums Red List Index weights of species by their
// specific epithet. Epithets of many threatened species come first.
type epithetsReport struct{}

// EpithetCount is the sum of weights of species with the epithet.
type EpithetCount struct {
	Epithet string
	Species int
	Weight  int
}

func (er *epithetsReport) Report(
	_ context.Context,
	w io.Writer,
	tree *taxon.Tree,
) error {
	var sb strings.Builder
	sb.WriteString("==Epithets of threatened species==\n")
	for _, v := range TallyEpithets(tree.Root()) {
		fmt.Fprintf(&sb, "* [[%s]] %d\n", v.Epithet, v.Weight)
	}
	return write(w, Epithets, sb.String())
}

// TallyEpithets counts species and their weights per epithet. Species
// without a weight, like DD, are counted with zero weight.
func TallyEpithets(n *taxon.Node) []EpithetCount {
	recs := n.DeepRecords(func(r leaf.Record) bool {
		return r.IsSpecies() && r.Epithet != ""
	})

	idx := make(map[string]int)
	var res []EpithetCount
	for _, r := range recs {
		ep := strings.ToLower(r.Epithet)
		i, ok := idx[ep]
		if !ok {
			i = len(res)
			idx[ep] = i
			res = append(res, EpithetCount{Epithet: ep})
		}
		res[i].Species++
		if wt, ok := r.Status.RLIWeight(); ok {
			res[i].Weight += wt
		}
	}

	slices.SortFunc(res, func(a, b EpithetCount) int {
		return cmp.Or(
			cmp.Compare(b.Weight, a.Weight),
			cmp.Compare(b.Species, a.Species),
			cmp.Compare(a.Epithet, b.Epithet),
		)
	})
	return res
}
