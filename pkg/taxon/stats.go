package taxon

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/status"
)

// Stats are counts of assessments under a node that match a status
// filter. Every assessment is counted in exactly one of Species,
// SubspeciesActual, Varieties, SubpopsSpecies, SubpopsSubspecies.
type Stats struct {
	Species int
	// Subspecies is the sum of SubspeciesActual and Varieties.
	Subspecies        int
	SubspeciesActual  int
	Varieties         int
	SubpopsSpecies    int
	SubpopsSubspecies int
}

// SubpopsTotal is the number of all stocks and subpopulations.
func (s Stats) SubpopsTotal() int {
	return s.SubpopsSpecies + s.SubpopsSubspecies
}

// Total is the number of all counted assessments.
func (s Stats) Total() int {
	return s.Species + s.Subspecies + s.SubpopsTotal()
}

// Empty is true if nothing was counted.
func (s Stats) Empty() bool {
	return s.Total() == 0
}

func (s *Stats) add(r leaf.Record) {
	switch {
	case r.IsStockpop() && r.IsTrinomial():
		s.SubpopsSubspecies++
	case r.IsStockpop():
		s.SubpopsSpecies++
	case r.IsVariety():
		s.Subspecies++
		s.Varieties++
	case r.IsTrinomial():
		s.Subspecies++
		s.SubspeciesActual++
	default:
		s.Species++
	}
}

func (s *Stats) merge(o Stats) {
	s.Species += o.Species
	s.Subspecies += o.Subspecies
	s.SubspeciesActual += o.SubspeciesActual
	s.Varieties += o.Varieties
	s.SubpopsSpecies += o.SubpopsSpecies
	s.SubpopsSubspecies += o.SubpopsSubspecies
}

// Stats returns counts of assessments at or below the node that match
// the filter. status.Null counts everything. Results are cached for the
// lifetime of the node.
func (n *Node) Stats(filter status.Status) Stats {
	if res, ok := n.stats[filter]; ok {
		return res
	}

	var res Stats
	for _, v := range n.records {
		if v.Status.Matches(filter) {
			res.add(v)
		}
	}
	for _, v := range n.children {
		res.merge(v.Stats(filter))
	}

	if n.stats == nil {
		n.stats = make(map[status.Status]Stats)
	}
	n.stats[filter] = res
	return res
}

// CachedStats returns stats only if they were already computed.
func (n *Node) CachedStats(filter status.Status) (Stats, bool) {
	res, ok := n.stats[filter]
	return res, ok
}

// Summary gives a short text with counts for the filter. If the filter is
// set, counts for all statuses are given as well.
func (n *Node) Summary(filter status.Status) string {
	all := n.Stats(status.Null)
	c := func(i int) string { return humanize.Comma(int64(i)) }

	if filter.IsNull() {
		return fmt.Sprintf("%s sp, %s ssp, %s sp subpop, %s ssp subpops",
			c(all.Species), c(all.Subspecies),
			c(all.SubpopsSpecies), c(all.SubpopsSubspecies))
	}

	st := n.Stats(filter)
	return fmt.Sprintf(
		"%s / %s sp, %s / %s ssp, %s / %s sp subpop, %s / %s ssp subpops",
		c(st.Species), c(all.Species),
		c(st.Subspecies), c(all.Subspecies),
		c(st.SubpopsSpecies), c(all.SubpopsSpecies),
		c(st.SubpopsSubspecies), c(all.SubpopsSubspecies),
	)
}
