package redlist_test

import (
	"testing"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whale(epithet, infra, stockpop, st string) redlist.Row {
	return redlist.Row{
		ID:           "2467",
		Kingdom:      "ANIMALIA",
		Phylum:       "CHORDATA",
		Class:        "MAMMALIA",
		Order:        "CETARTIODACTYLA",
		Family:       "BALAENIDAE",
		Genus:        "Balaena",
		Epithet:      epithet,
		Infrarank:    "ssp.",
		Infraspecies: infra,
		Stockpop:     stockpop,
		Status:       st,
	}
}

func TestEntry(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		msg    string
		row    redlist.Row
		ladder []string
		status status.Status
	}{
		{
			"species",
			whale("mysticetus", "", "", "LC"),
			[]string{"Animalia", "Chordata", "Mammalia", "Cetartiodactyla",
				"Balaenidae", "Balaena", "Balaena mysticetus"},
			status.LC,
		},
		{
			"subspecies",
			whale("mysticetus", "borealis", "", "EN"),
			[]string{"Animalia", "Chordata", "Mammalia", "Cetartiodactyla",
				"Balaenidae", "Balaena", "Balaena mysticetus",
				"Balaena mysticetus borealis"},
			status.EN,
		},
		{
			"subpopulation",
			whale("mysticetus", "", "Svalbard subpopulation", "CR(PE)"),
			[]string{"Animalia", "Chordata", "Mammalia", "Cetartiodactyla",
				"Balaenidae", "Balaena", "Balaena mysticetus",
				"Svalbard subpopulation"},
			status.PE,
		},
	}

	for _, v := range tests {
		e, err := v.row.Entry()
		require.NoError(t, err, v.msg)
		var names []string
		for _, r := range e.Ladder {
			names = append(names, r.Name)
		}
		assert.Equal(v.ladder, names, v.msg)
		assert.Equal(v.status, e.Record.Status, v.msg)
		assert.Equal(leaf.Animalia, e.Record.Kingdom, v.msg)
		assert.Equal(taxon.RankKingdom, e.Ladder[0].Rank, v.msg)
	}
}

func TestEntryPlantRanks(t *testing.T) {
	row := redlist.Row{
		Kingdom:      "PLANTAE",
		Phylum:       "TRACHEOPHYTA",
		Class:        "PINOPSIDA",
		Order:        "PINALES",
		Family:       "PINACEAE",
		Genus:        "Abies",
		Epithet:      "alba",
		Infrarank:    "ssp.",
		Infraspecies: "acutifolia",
		Status:       "VU",
	}
	e, err := row.Entry()
	require.NoError(t, err)
	last := e.Ladder[len(e.Ladder)-1]
	assert.Equal(t, taxon.RankInfraspecific, last.Rank)
	assert.Equal(t, "Abies alba subsp. acutifolia", last.Name)
}

func TestEntryBadStatus(t *testing.T) {
	_, err := whale("mysticetus", "", "", "XX").Entry()
	assert.Error(t, err)
}

func TestBuildTree(t *testing.T) {
	assert := assert.New(t)
	rows := []redlist.Row{
		whale("mysticetus", "", "", "LC"),
		whale("mysticetus", "", "Okhotsk Sea subpopulation", "EN"),
		whale("mysticetus", "", "Svalbard subpopulation", "CR"),
		whale("japonica", "", "", "??"),
	}
	rs := rules.New(rules.File{Taxa: []rules.Taxon{
		{Name: "Cetartiodactyla", CommonName: "even-toed ungulate"},
	}})
	res, err := redlist.BuildTree(rows, rs)
	require.NoError(t, err)
	assert.Equal(1, res.BadStatus)
	assert.Equal(3, res.Tree.Count())

	sp, ok := res.Tree.FindByName("Balaena mysticetus")
	require.True(t, ok)
	assert.Equal(taxon.RankSpecies, sp.Rank())
	assert.Len(sp.Children(), 2)
	assert.Len(sp.Records(), 1)

	st := res.Tree.Root().Stats(status.Null)
	assert.Equal(1, st.Species)
	assert.Equal(2, st.SubpopsSpecies)
}

func TestBuildTreeNoRules(t *testing.T) {
	res, err := redlist.BuildTree(
		[]redlist.Row{whale("mysticetus", "", "", "LC")}, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Tree.Count())
	assert.Equal(t, 0, res.Tree.Dropped())
}
