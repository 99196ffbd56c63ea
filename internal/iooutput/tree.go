package iooutput

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	rankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	commonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rliStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	enumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderTree draws the hierarchy under n down to maxDepth levels.
// Only nodes with assessments matching the filter are shown.
func RenderTree(n *taxon.Node, filter status.Status, maxDepth int) string {
	res := tree.Root(nodeLabel(n, filter)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	addChildren(res, n, filter, 1, maxDepth)
	return res.String()
}

func addChildren(
	t *tree.Tree,
	n *taxon.Node,
	filter status.Status,
	depth, maxDepth int,
) {
	if depth > maxDepth {
		return
	}
	for _, v := range n.OrderedChildren() {
		if v.Stats(filter).Empty() {
			continue
		}
		if len(v.Children()) == 0 || depth == maxDepth {
			t.Child(nodeLabel(v, filter))
			continue
		}
		sub := tree.Root(nodeLabel(v, filter))
		addChildren(sub, v, filter, depth+1, maxDepth)
		t.Child(sub)
	}
}

func nodeLabel(n *taxon.Node, filter status.Status) string {
	name := n.Name()
	res := rankStyle.Render(n.Rank()) + " " + nameStyle.Render(name.Taxon())
	if common := name.CommonName(); common != "" {
		res += " " + commonStyle.Render("("+common+")")
	}
	res += ": " + n.Summary(filter)
	if rli, ok := n.RLI(); ok {
		res += " " + rliStyle.Render(fmt.Sprintf("RLI %.3f", rli))
	}
	return res
}
