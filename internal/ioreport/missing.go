package ioreport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
)

// missingReport shows top-most taxa that are not covered by any list
// named in the rules.
type missingReport struct {
	settings
}

func (mr *missingReport) Report(
	_ context.Context,
	w io.Writer,
	tree *taxon.Tree,
) error {
	contents := mr.contents(tree)
	missing := tree.Root().Uncovered(contents)

	var sb strings.Builder
	sb.WriteString("==Taxa not covered by lists==\n")
	for _, v := range missing {
		fmt.Fprintf(&sb, "* %s %s: %d\n",
			v.Rank(), v.Name().Taxon(), v.Stats(status.Null).Total())
	}
	if len(missing) == 0 {
		sb.WriteString("No missing taxa found.\n")
	}
	return write(w, Missing, sb.String())
}

// contents collects nodes of lists. Paraphyletic groups are not part of
// the tree, so their members are used instead.
func (mr *missingReport) contents(tree *taxon.Tree) []*taxon.Node {
	pseudo := make(map[string][]*taxon.Node)
	for _, v := range mr.rules.Pseudo() {
		n, err := tree.PseudoNode(v.Name, v.Include, v.Exclude)
		if err != nil {
			slog.Warn("Cannot create group", "name", v.Name, "error", err)
			continue
		}
		pseudo[strings.ToLower(v.Name)] = n.Children()
	}

	lists := mr.rules.Lists()
	names := slices.Concat(lists.PerCategory, lists.PerTaxon)

	var res []*taxon.Node
	for _, v := range names {
		if members, ok := pseudo[strings.ToLower(v)]; ok {
			res = append(res, members...)
			continue
		}
		if n, ok := tree.FindByName(v); ok {
			res = append(res, n)
			continue
		}
		slog.Warn("Taxon for a list is not found", "name", v)
	}
	return res
}
