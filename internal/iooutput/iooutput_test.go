package iooutput

import (
	"testing"

	"github.com/gnames/gnredlist/internal/iotesting"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/stretchr/testify/require"
)

func sampleRules() *rules.RuleSet {
	return rules.New(rules.File{
		Taxa: []rules.Taxon{
			{Name: "Mammalia", CommonName: "mammal", Adjective: "mammalian"},
			{Name: "Balaena mysticetus", CommonName: "bowhead whale"},
		},
		Pseudo: []rules.Pseudo{
			{Name: "Reptiles and conifers", Include: []string{"Reptilia", "Pinopsida"}},
		},
		Lists: rules.Lists{
			PerCategory: []string{"Cetartiodactyla"},
			PerTaxon:    []string{"Mammalia", "Reptiles and conifers", "Aves"},
			NamesOnly:   []string{"Mammalia"},
		},
	})
}

func sampleTree(t *testing.T, rs *rules.RuleSet) *taxon.Tree {
	t.Helper()
	res, err := redlist.BuildTree(iotesting.SampleRows(t), rs)
	require.NoError(t, err)
	require.Equal(t, 0, res.BadStatus)
	return res.Tree
}

func findNode(t *testing.T, tree *taxon.Tree, name string) *taxon.Node {
	t.Helper()
	res, ok := tree.FindByName(name)
	require.True(t, ok, name)
	return res
}
