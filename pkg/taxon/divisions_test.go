package taxon_test

import (
	"slices"
	"testing"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order struct {
	name  string
	count int
	st    status.Status
}

func mammalTree(t *testing.T, lookup rules.Lookup, orders ...order) *taxon.Node {
	t.Helper()
	b := taxon.NewBuilder(lookup)
	for _, v := range orders {
		addOrder(t, b, v.name, v.count, v.st)
	}
	return mammalia(t, build(t, b))
}

func smallOrders(n, count int, st status.Status) []order {
	res := make([]order, n)
	for i := range n {
		res[i] = order{name: "Small" + string(rune('A'+i)), count: count, st: st}
	}
	return res
}

func TestDivisions(t *testing.T) {
	large := order{"Large", 20, status.CR}
	tests := []struct {
		msg    string
		rules  rules.Lookup
		orders []order
		filter status.Status
		depth  int
		res    []string
	}{
		{
			msg:    "single child",
			orders: []order{large},
			filter: status.CR,
			depth:  2,
			res:    []string{},
		},
		{
			msg:    "no big child",
			orders: smallOrders(6, 3, status.CR),
			filter: status.CR,
			depth:  2,
			res:    []string{},
		},
		{
			msg:    "force split",
			rules:  testRules(rules.Taxon{Name: "Mammalia", ForceSplit: true}),
			orders: smallOrders(6, 3, status.CR),
			filter: status.CR,
			depth:  2,
			res: []string{
				"SmallA", "SmallB", "SmallC", "SmallD", "SmallE", "SmallF",
			},
		},
		{
			msg:    "small children merged",
			orders: append([]order{large}, smallOrders(6, 3, status.CR)...),
			filter: status.CR,
			depth:  2,
			res:    []string{"Large", "Other Mammalia"},
		},
		{
			msg:    "too few small children",
			orders: append([]order{large}, smallOrders(4, 3, status.CR)...),
			filter: status.CR,
			depth:  2,
			res:    []string{"Large", "SmallA", "SmallB", "SmallC", "SmallD"},
		},
		{
			msg: "very small children merged",
			orders: append(
				smallOrders(3, 1, status.CR),
				order{"Medium", 3, status.CR}, large,
			),
			filter: status.CR,
			depth:  2,
			res:    []string{"Medium", "Large", "Other Mammalia"},
		},
		{
			msg:    "top level merges only tiny children",
			orders: append([]order{large}, smallOrders(6, 3, status.CR)...),
			filter: status.CR,
			depth:  0,
			res: []string{
				"Large", "SmallA", "SmallB", "SmallC", "SmallD", "SmallE", "SmallF",
			},
		},
		{
			msg:    "top level with tiny children",
			orders: append([]order{large}, smallOrders(6, 2, status.CR)...),
			filter: status.CR,
			depth:  0,
			res:    []string{"Large", "Other Mammalia"},
		},
		{
			msg: "children without matches are skipped",
			orders: []order{
				{"Safe", 30, status.LC}, large, {"Big", 16, status.CR},
			},
			filter: status.CR,
			depth:  2,
			res:    []string{"Large", "Big"},
		},
		{
			msg: "RLI order",
			orders: []order{
				{"Safe", 30, status.LC}, {"Rare", 16, status.EN}, large,
			},
			filter: status.Null,
			depth:  2,
			res:    []string{"Large", "Rare", "Safe"},
		},
		{
			msg:    "extinct at depth 1",
			orders: append([]order{{"Gone", 20, status.EX}}, smallOrders(6, 3, status.EX)...),
			filter: status.EXplus,
			depth:  1,
			res:    []string{},
		},
		{
			msg:    "big extinct child at depth 1",
			orders: []order{{"Gone", 100, status.EX}, {"Lost", 20, status.EX}},
			filter: status.EXplus,
			depth:  1,
			res:    []string{"Gone", "Lost"},
		},
		{
			msg:    "big extinct child deeper",
			orders: []order{{"Gone", 100, status.EX}, {"Lost", 20, status.EX}},
			filter: status.EXplus,
			depth:  2,
			res:    []string{},
		},
		{
			msg:    "extinct at the top is not merged",
			orders: append([]order{{"Gone", 20, status.EX}}, smallOrders(6, 3, status.EX)...),
			filter: status.EXplus,
			depth:  0,
			res: []string{
				"Gone", "SmallA", "SmallB", "SmallC", "SmallD", "SmallE", "SmallF",
			},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			mam := mammalTree(t, v.rules, v.orders...)
			res := names(slices.Collect(mam.Divisions(v.filter, v.depth)))
			assert.Equal(t, v.res, res)
		})
	}
}

func TestDivisionsNonDividableRank(t *testing.T) {
	b := taxon.NewBuilder(nil)
	for _, g := range []string{"Canis", "Vulpes", "Lycaon"} {
		ladder := taxon.Ladder{
			rung("kingdom", "Animalia"), rung("class", "Mammalia"),
			rung("family", "Canidae"), rung("genus", g),
		}
		for i := range 20 {
			r := leaf.Record{Genus: g, Epithet: string(rune('a' + i)),
				Status: status.EN}
			require.NoError(t, b.Insert(ladder, r))
		}
	}
	tree := build(t, b)
	canidae, ok := tree.FindByName("Canidae")
	require.True(t, ok)
	assert.Len(t, canidae.Children(), 3)
	assert.Empty(t, slices.Collect(canidae.Divisions(status.EN, 2)))
}

func TestDivisionsOtherNode(t *testing.T) {
	mam := mammalTree(t, nil,
		append([]order{{"Large", 20, status.CR}}, smallOrders(6, 3, status.CR)...)...,
	)
	res := slices.Collect(mam.Divisions(status.CR, 2))
	require.Len(t, res, 2)

	other := res[1]
	assert.Equal(t, taxon.Other, other.Name().Kind())
	assert.False(t, other.Name().IsAssigned())
	assert.Equal(t, taxon.RankNoRank, other.Rank())
	assert.Same(t, mam, other.Parent())
	assert.NotContains(t, mam.Children(), other)
	assert.Equal(t, 18, other.Stats(status.CR).Species)
	assert.Len(t, other.MatchingRecords(status.CR), 18)

	// every matching assessment is in exactly one division
	var total int
	for _, v := range res {
		total += v.Stats(status.CR).Total()
	}
	assert.Equal(t, mam.Stats(status.CR).Total(), total)
}

func TestDivisionsUnassignedChild(t *testing.T) {
	b := taxon.NewBuilder(nil)
	addOrder(t, b, "Large", 20, status.CR)
	addOrder(t, b, "SmallA", 1, status.CR)
	addOrder(t, b, "SmallB", 1, status.CR)
	ladder := taxon.Ladder{
		rung("kingdom", "Animalia"), rung("phylum", "Chordata"),
		rung("class", "Mammalia"), rung("order", "Not assigned"),
		rung("genus", "Incertus"),
	}
	for i := range 30 {
		r := leaf.Record{Genus: "Incertus", Epithet: string(rune('a' + i)),
			Status: status.CR}
		require.NoError(t, b.Insert(ladder, r))
	}
	mam := mammalia(t, build(t, b))

	res := slices.Collect(mam.Divisions(status.CR, 2))
	assert.Equal(t, []string{"Large", "Other Mammalia"}, names(res))
	assert.Equal(t, 32, res[1].Stats(status.CR).Species)
}

func TestDivisionsUnassignedNotDividable(t *testing.T) {
	b := taxon.NewBuilder(nil)
	addOrder(t, b, "SmallA", 3, status.CR)
	ladder := taxon.Ladder{
		rung("kingdom", "Animalia"), rung("phylum", "Chordata"),
		rung("class", "Mammalia"), rung("order", "Not assigned"),
	}
	for i := range 20 {
		r := leaf.Record{Genus: "Incertus", Epithet: string(rune('a' + i)),
			Status: status.CR}
		require.NoError(t, b.Insert(ladder, r))
	}
	mam := mammalia(t, build(t, b))
	assert.Empty(t, slices.Collect(mam.Divisions(status.CR, 2)))
}

func TestDivisionsStopEarly(t *testing.T) {
	mam := mammalTree(t, nil,
		append([]order{{"Large", 20, status.CR}}, smallOrders(6, 3, status.CR)...)...,
	)
	var count int
	for range mam.Divisions(status.CR, 2) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
