package taxon_test

import (
	"fmt"
	"testing"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/stretchr/testify/require"
)

func rung(rank, name string) taxon.Rung {
	return taxon.Rung{Rank: rank, Name: name}
}

// mammalLadder returns a ladder down to genus for an order of mammals.
func mammalLadder(order string) taxon.Ladder {
	return taxon.Ladder{
		rung("kingdom", "Animalia"),
		rung("phylum", "Chordata"),
		rung("class", "Mammalia"),
		rung("order", order),
		rung("family", order+"idae"),
		rung("genus", order+"us"),
	}
}

// addOrder adds n species with status st to an order of mammals.
func addOrder(
	t *testing.T,
	b *taxon.Builder,
	order string,
	n int,
	st status.Status,
) {
	t.Helper()
	for i := range n {
		r := leaf.Record{
			Kingdom: leaf.Animalia,
			Genus:   order + "us",
			Epithet: fmt.Sprintf("epithet%c%c", 'a'+i/26, 'a'+i%26),
			Status:  st,
		}
		require.NoError(t, b.Insert(mammalLadder(order), r))
	}
}

func build(t *testing.T, b *taxon.Builder) *taxon.Tree {
	t.Helper()
	tree, err := b.Build()
	require.NoError(t, err)
	return tree
}

func mammalia(t *testing.T, tree *taxon.Tree) *taxon.Node {
	t.Helper()
	res, ok := tree.FindByName("Mammalia")
	require.True(t, ok)
	return res
}

func names(nodes []*taxon.Node) []string {
	res := make([]string, len(nodes))
	for i, v := range nodes {
		res[i] = v.Name().Taxon()
	}
	return res
}

func testRules(taxa ...rules.Taxon) *rules.RuleSet {
	return rules.New(rules.File{Taxa: taxa})
}
