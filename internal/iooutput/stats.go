package iooutput

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/gnames/gnredlist/pkg/taxon"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// NodeStats is a flat description of a node with its statistics.
type NodeStats struct {
	// ID is UUID v5 of the node's path, it is stable between runs.
	ID string `json:"id"`
	// ParentID of the top node is the nil UUID.
	ParentID          string   `json:"parentId"`
	Depth             int      `json:"depth"`
	Rank              string   `json:"rank"`
	Name              string   `json:"name"`
	CommonName        string   `json:"commonName,omitempty"`
	Species           int      `json:"species"`
	Subspecies        int      `json:"subspecies"`
	Varieties         int      `json:"varieties"`
	SubpopsSpecies    int      `json:"subpopsSpecies"`
	SubpopsSubspecies int      `json:"subpopsSubspecies"`
	RLI               *float64 `json:"rli,omitempty"`
}

var statsHeader = []string{
	"ID", "ParentID", "Depth", "Rank", "Name", "CommonName", "Species",
	"Subspecies", "Varieties", "SubpopsSpecies", "SubpopsSubspecies", "RLI",
}

// NodeID makes a stable identifier of a node from its path.
func NodeID(n *taxon.Node) string {
	var parts []string
	for _, v := range n.Path() {
		parts = append(parts, v.Rank+":"+v.Name)
	}
	if len(parts) == 0 {
		parts = append(parts, n.Rank())
	}
	return gnuuid.New(strings.Join(parts, "|")).String()
}

// CollectStats walks the hierarchy from n down to maxDepth levels
// below it. Nodes without matching assessments are skipped together
// with their children.
func CollectStats(
	n *taxon.Node,
	filter status.Status,
	maxDepth int,
) []NodeStats {
	var res []NodeStats
	var walk func(*taxon.Node, string, int)
	walk = func(nd *taxon.Node, parentID string, depth int) {
		st := nd.Stats(filter)
		if st.Empty() {
			return
		}
		ns := NodeStats{
			ID:                NodeID(nd),
			ParentID:          parentID,
			Depth:             depth,
			Rank:              nd.Rank(),
			Name:              nd.Name().Taxon(),
			CommonName:        nd.Name().CommonName(),
			Species:           st.Species,
			Subspecies:        st.SubspeciesActual,
			Varieties:         st.Varieties,
			SubpopsSpecies:    st.SubpopsSpecies,
			SubpopsSubspecies: st.SubpopsSubspecies,
		}
		if rli, ok := nd.RLI(); ok {
			ns.RLI = &rli
		}
		res = append(res, ns)
		if depth >= maxDepth {
			return
		}
		for _, v := range nd.OrderedChildren() {
			walk(v, ns.ID, depth+1)
		}
	}
	walk(n, uuid.Nil.String(), 0)
	return res
}

// WriteStats writes statistics as CSV, TSV, compact or pretty JSON.
func WriteStats(w io.Writer, stats []NodeStats, format string) error {
	frmt, err := gnfmt.NewFormat(format)
	if err != nil {
		return UnknownFormatError(format)
	}
	switch frmt {
	case gnfmt.CSV, gnfmt.TSV:
		sep := ','
		if frmt == gnfmt.TSV {
			sep = '\t'
		}
		if _, err := fmt.Fprintln(w, gnfmt.ToCSV(statsHeader, sep)); err != nil {
			return WriteError("stats", err)
		}
		for _, v := range stats {
			if _, err := fmt.Fprintln(w, gnfmt.ToCSV(v.fields(), sep)); err != nil {
				return WriteError("stats", err)
			}
		}
		return nil
	case gnfmt.CompactJSON, gnfmt.PrettyJSON:
		enc := gnfmt.GNjson{Pretty: frmt == gnfmt.PrettyJSON}
		res, err := enc.Encode(stats)
		if err != nil {
			return WriteError("stats", err)
		}
		if _, err = fmt.Fprintln(w, string(res)); err != nil {
			return WriteError("stats", err)
		}
		return nil
	}
	return UnknownFormatError(format)
}

func (ns NodeStats) fields() []string {
	var rli string
	if ns.RLI != nil {
		rli = strconv.FormatFloat(*ns.RLI, 'f', 4, 64)
	}
	return []string{
		ns.ID,
		ns.ParentID,
		strconv.Itoa(ns.Depth),
		ns.Rank,
		ns.Name,
		ns.CommonName,
		strconv.Itoa(ns.Species),
		strconv.Itoa(ns.Subspecies),
		strconv.Itoa(ns.Varieties),
		strconv.Itoa(ns.SubpopsSpecies),
		strconv.Itoa(ns.SubpopsSubspecies),
		rli,
	}
}
