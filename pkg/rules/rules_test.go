package rules_test

import (
	"testing"

	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() *rules.RuleSet {
	return rules.New(rules.File{
		Taxa: []rules.Taxon{
			{Name: "Actinopterygii", Below: "Fish", BelowRank: "superclass"},
			{Name: "Sarcopterygii", Below: "Fish"},
			{Name: "Mammalia", CommonName: "mammal", Adjective: "mammalian"},
			{Name: "Squamata", Transparent: true},
			{Name: "Plantae", SortOrder: []string{"Algae", "Bryophytes"}},
			{Name: "Chiroptera", ForceSplit: true, CommonName: "bat"},
			{Name: "Lepidoptera", CommonName: "butterfly"},
			{Name: "Gadiformes", CommonName: "codfish"},
			{Name: "Testudines", CommonName: "turtle", Plural: "turtles and tortoises"},
			{Name: "Tracheophyta", Transparent: true},
			{Name: "  "},
		},
		Pseudo: []rules.Pseudo{
			{Name: "Invertebrate", Include: []string{"Animalia"},
				Exclude: []string{"Chordata"}},
		},
		Lists: rules.Lists{PerTaxon: []string{"Fungi"}},
	})
}

func TestInsertionRule(t *testing.T) {
	r := testRules()
	tests := []struct {
		msg  string
		name string
		ok   bool
		res  rules.Insertion
	}{
		{"full rule", "Actinopterygii", true,
			rules.Insertion{BelowRank: "superclass", Below: "Fish"}},
		{"case insensitive", "ACTINOPTERYGII", true,
			rules.Insertion{BelowRank: "superclass", Below: "Fish"}},
		{"no rank", "Sarcopterygii", true, rules.Insertion{Below: "Fish"}},
		{"no insertion", "Mammalia", false, rules.Insertion{}},
		{"unknown", "Aves", false, rules.Insertion{}},
	}

	for _, v := range tests {
		res, ok := r.InsertionRule(v.name)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestLookup(t *testing.T) {
	var l rules.Lookup = testRules()
	assert := assert.New(t)
	assert.True(l.IsForceSplit("chiroptera"))
	assert.False(l.IsForceSplit("Mammalia"))

	order, ok := l.SortOrder("Plantae")
	assert.True(ok)
	assert.Equal([]string{"Algae", "Bryophytes"}, order)
	_, ok = l.SortOrder("Mammalia")
	assert.False(ok)
}

func TestCollections(t *testing.T) {
	r := testRules()
	assert.Equal(t, []string{"Squamata", "Tracheophyta"}, r.Transparent())
	assert.Equal(t, []string{"Plantae"}, r.Sorted())
	assert.Empty(t, r.Breakouts())
	require.Len(t, r.Pseudo(), 1)
	assert.Equal(t, "Invertebrate", r.Pseudo()[0].Name)
	assert.Equal(t, []string{"Fungi"}, r.Lists().PerTaxon)
}

func TestNames(t *testing.T) {
	r := testRules()
	tests := []struct {
		name, common, plural string
	}{
		{"Mammalia", "mammal", "mammals"},
		{"Chiroptera", "bat", "bats"},
		{"Lepidoptera", "butterfly", "butterflies"},
		{"Gadiformes", "codfish", "codfish"},
		{"Testudines", "turtle", "turtles and tortoises"},
		{"Aves", "", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.common, r.CommonName(v.name), v.name)
		assert.Equal(t, v.plural, r.Plural(v.name), v.name)
	}
	assert.Equal(t, "mammalian", r.Adjective("mammalia"))
}

func TestNilRuleSet(t *testing.T) {
	var r *rules.RuleSet
	_, ok := r.InsertionRule("Fish")
	assert.False(t, ok)
	assert.Nil(t, r.Transparent())
	assert.Equal(t, "", r.CommonName("Aves"))
}
