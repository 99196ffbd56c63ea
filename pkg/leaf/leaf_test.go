package leaf_test

import (
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		msg                    string
		rec                    leaf.Record
		species, trinomial     bool
		variety, stock, sspNot bool
	}{
		{
			msg:     "species",
			rec:     leaf.Record{Genus: "Panthera", Epithet: "leo"},
			species: true,
		},
		{
			msg: "subspecies",
			rec: leaf.Record{Kingdom: leaf.Animalia, Genus: "Panthera",
				Epithet: "leo", Infrarank: "ssp.", Infraspecies: "persica"},
			trinomial: true,
			sspNot:    true,
		},
		{
			msg: "variety",
			rec: leaf.Record{Kingdom: leaf.Plantae, Genus: "Abies",
				Epithet: "alba", Infrarank: "var.", Infraspecies: "acutifolia"},
			trinomial: true,
			variety:   true,
		},
		{
			msg: "species subpopulation",
			rec: leaf.Record{Genus: "Balaena", Epithet: "mysticetus",
				Stockpop: "Svalbard-Barents Sea subpopulation"},
			stock: true,
		},
		{
			msg: "subspecies subpopulation",
			rec: leaf.Record{Genus: "Delphinus", Epithet: "delphis",
				Infrarank: "ssp.", Infraspecies: "ponticus", Stockpop: "Black Sea"},
			trinomial: true,
			stock:     true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(v.species, v.rec.IsSpecies())
			assert.Equal(v.trinomial, v.rec.IsTrinomial())
			assert.Equal(v.variety, v.rec.IsVariety())
			assert.Equal(v.stock, v.rec.IsStockpop())
			assert.Equal(v.sspNot, v.rec.IsSubspeciesNotVariety())
		})
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		msg                  string
		rec                  leaf.Record
		basic, full, binomen string
	}{
		{
			msg:     "species",
			rec:     leaf.Record{Genus: "Panthera", Epithet: "leo"},
			basic:   "Panthera leo",
			full:    "Panthera leo",
			binomen: "Panthera leo",
		},
		{
			msg: "animal subspecies",
			rec: leaf.Record{Kingdom: leaf.Animalia, Genus: "Panthera",
				Epithet: "leo", Infrarank: "ssp.", Infraspecies: "persica"},
			basic:   "Panthera leo persica",
			full:    "Panthera leo ssp. persica",
			binomen: "Panthera leo",
		},
		{
			msg: "plant subspecies",
			rec: leaf.Record{Kingdom: leaf.Plantae, Genus: "Abies",
				Epithet: "nebrodensis", Infrarank: "ssp.", Infraspecies: "x"},
			basic:   "Abies nebrodensis subsp. x",
			full:    "Abies nebrodensis ssp. x",
			binomen: "Abies nebrodensis",
		},
		{
			msg: "subpopulation",
			rec: leaf.Record{Genus: "Balaena", Epithet: "mysticetus",
				Stockpop: "Okhotsk Sea"},
			basic:   "Balaena mysticetus",
			full:    "Balaena mysticetus (Okhotsk Sea)",
			binomen: "Balaena mysticetus",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(v.basic, v.rec.BasicName())
			assert.Equal(v.full, v.rec.FullName())
			assert.Equal(v.binomen, v.rec.ShortBinomial())
		})
	}
}

func TestCommonNames(t *testing.T) {
	tests := []struct {
		msg   string
		names string
		res   []string
		best  string
	}{
		{"empty", "", nil, ""},
		{"digits", "Species 1, Thing", nil, ""},
		{
			"cleanup",
			"The Lion., African Chamaeleon (fb), *Heuglin´s  Gazelle",
			[]string{"Lion", "African Chameleon", "Heuglin's Gazelle"},
			"Lion",
		},
		{
			"species code",
			"Species code: He, Stargrass",
			[]string{"Stargrass"},
			"Stargrass",
		},
		{
			"prefers no apostrophe",
			"Trevor's Bat, Free-tailed Bat",
			[]string{"Trevor's Bat", "Free-tailed Bat"},
			"Free-tailed Bat",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			rec := leaf.Record{CommonNamesEng: v.names}
			assert.Equal(t, v.res, rec.CommonNames())
			assert.Equal(t, v.best, rec.BestCommonName())
		})
	}
}

func TestWithStockpop(t *testing.T) {
	rec := leaf.Record{Genus: "Balaena", Epithet: "mysticetus",
		Stockpop: "Okhotsk Sea", Status: status.EN}
	multi := rec.WithStockpop("3 subpopulations")
	assert.True(t, multi.MultiStockpop)
	assert.Equal(t, status.None, multi.Status)
	assert.Equal(t, "3 subpopulations", multi.Stockpop)
	assert.Equal(t, status.EN, rec.Status)
	assert.Equal(t, "Okhotsk Sea", rec.Stockpop)
}

func TestKingdom(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(leaf.Plantae, leaf.ParseKingdom("PLANTAE"))
	assert.Equal(leaf.KingdomNone, leaf.ParseKingdom("Viruses"))
	assert.Equal("Fungi", leaf.Fungi.String())
	assert.Equal(nomcode.Botanical, leaf.Record{Kingdom: leaf.Fungi}.NomCode())
	assert.Equal(nomcode.Bacterial, leaf.Bacteria.NomCode())
	assert.Equal(nomcode.Zoological, leaf.Animalia.NomCode())
	assert.True(leaf.Record{ID: "0"}.IsIDNull())
}
