package taxon

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gnredlist/pkg/leaf"
	"github.com/gnames/gnredlist/pkg/rules"
)

// Rung is one step of a rank ladder.
type Rung struct {
	Rank string
	Name string
}

// Ladder is a sequence of ranks and names from the top of the hierarchy
// down to an assessed taxon.
type Ladder []Rung

// Entry is an assessment together with its place in the hierarchy.
type Entry struct {
	Ladder Ladder
	Record leaf.Record
}

// Editor is implemented by rule sets that also change the shape of the
// hierarchy. Builder.Build uses it when the rules passed to NewBuilder
// support it.
type Editor interface {
	rules.Lookup
	// Transparent lists taxa to remove, their children move up one level.
	Transparent() []string
	// Breakouts lists taxa that have breakout nodes.
	Breakouts() []string
	// Breakout lists the names of the breakout nodes of a taxon.
	Breakout(name string) []string
}

// Builder creates a hierarchy. It is not safe for concurrent use.
type Builder struct {
	root    *Node
	rules   rules.Lookup
	count   int
	dropped int
	built   bool
}

// NewBuilder creates a builder. Rules are optional and can be nil.
func NewBuilder(lookup rules.Lookup) *Builder {
	var info NameInfo
	if ni, ok := lookup.(NameInfo); ok {
		info = ni
	}
	root := newNode(RankTop, NewName(RankTop, info), nil, lookup)
	return &Builder{root: root, rules: lookup}
}

// Insert threads the ladder into the hierarchy and attaches the record to
// the deepest node. Rungs with blank names are skipped. If nothing is left
// of the ladder, the record is dropped and an error is returned.
func (b *Builder) Insert(ladder Ladder, rec leaf.Record) error {
	if b.built {
		return FinalizedError()
	}

	ladder = b.splice(ladder)
	cur := b.root
	for _, v := range ladder {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			continue
		}
		cur = cur.findOrCreate(v.Rank, name)
	}

	if cur == b.root {
		b.dropped++
		return EmptyLadderError(rec.FullName())
	}

	cur.records = append(cur.records, rec)
	b.count++
	return nil
}

// Count returns the number of attached records.
func (b *Builder) Count() int {
	return b.count
}

// Dropped returns the number of records that could not be attached.
func (b *Builder) Dropped() int {
	return b.dropped
}

// splice inserts a synthetic rung right above the first rung that has
// an insertion rule. Only one rule is applied per ladder. Nothing is
// inserted if the ladder already has the synthetic taxon above.
func (b *Builder) splice(ladder Ladder) Ladder {
	if b.rules == nil {
		return ladder
	}
	for i, v := range ladder {
		ins, ok := b.rules.InsertionRule(v.Name)
		if !ok || ins.Below == "" {
			continue
		}
		if ins.BelowRank == "" {
			slog.Warn("Insertion rule has no rank, ignoring",
				"taxon", v.Name, "below", ins.Below)
			continue
		}
		if slices.ContainsFunc(ladder[:i], func(r Rung) bool {
			return strings.EqualFold(strings.TrimSpace(r.Name), ins.Below)
		}) {
			return ladder
		}

		res := make(Ladder, 0, len(ladder)+1)
		res = append(res, ladder[:i]...)
		res = append(res, Rung{Rank: ins.BelowRank, Name: ins.Below})
		res = append(res, ladder[i:]...)
		return res
	}
	return ladder
}

func (n *Node) findOrCreate(rank, name string) *Node {
	for _, v := range n.children {
		if !strings.EqualFold(v.name.taxon, name) {
			continue
		}
		if v.rank != rank {
			slog.Warn("Taxon found with a different rank, reusing it",
				"taxon", name, "parent", n.name.Taxon(),
				"expected_rank", rank, "found_rank", v.rank)
		}
		return v
	}

	res := newNode(rank, NewName(name, n.name.info), n, n.rules)
	n.children = append(n.children, res)
	return res
}

// MakeTransparent removes a node from the hierarchy, its children take
// its place in the parent's children list.
func (b *Builder) MakeTransparent(name string) error {
	if b.built {
		return FinalizedError()
	}
	node, ok := b.root.FindByName(name)
	if !ok || node == b.root {
		return NodeNotFoundError(name)
	}
	parent := node.parent
	for _, v := range node.children {
		if other, ok := parent.child(v.name.Taxon()); ok && other != node {
			return TransparentError(name, v.name.Taxon())
		}
	}

	idx := slices.Index(parent.children, node)
	for _, v := range node.children {
		v.parent = parent
	}
	parent.children = slices.Replace(
		parent.children, idx, idx+1, node.children...,
	)
	node.children = nil
	node.parent = nil
	// records attached directly to a transparent node stay with its parent
	parent.records = append(parent.records, node.records...)
	return nil
}

// SortChildren pins the order of children of a node. The order must
// name every child exactly once, otherwise the original order is kept
// and the error lists missing and unexpected names.
func (b *Builder) SortChildren(name string, order []string) error {
	if b.built {
		return FinalizedError()
	}
	node, ok := b.root.FindByName(name)
	if !ok {
		return NodeNotFoundError(name)
	}
	return node.sortChildren(order)
}

func (n *Node) sortChildren(order []string) error {
	resolved := make([]*Node, 0, len(order))
	seen := make(map[*Node]struct{}, len(order))
	var added []string
	for _, v := range order {
		ch, ok := n.child(v)
		if !ok {
			added = append(added, v)
			continue
		}
		if _, dup := seen[ch]; dup {
			added = append(added, v)
			continue
		}
		seen[ch] = struct{}{}
		resolved = append(resolved, ch)
	}

	var missing []string
	for _, v := range n.children {
		if _, ok := seen[v]; !ok {
			missing = append(missing, v.name.Taxon())
		}
	}

	if len(missing) > 0 || len(added) > 0 {
		return SortOrderError(n.name.Taxon(), missing, added)
	}

	n.children = resolved
	n.pinned = true
	return nil
}

// SetBreakout sets nodes that are listed separately from the named node.
// Breakout nodes are searched for under the node.
func (b *Builder) SetBreakout(name string, members []string) error {
	if b.built {
		return FinalizedError()
	}
	node, ok := b.root.FindByName(name)
	if !ok {
		return NodeNotFoundError(name)
	}
	res := make([]*Node, 0, len(members))
	for _, v := range members {
		m, ok := node.FindByName(v)
		if !ok || m == node {
			return NodeNotFoundError(v)
		}
		res = append(res, m)
	}
	node.breakout = res
	return nil
}

// Build finalizes the hierarchy. If rules support Editor, transparent
// nodes are removed first, then pinned sort orders and breakouts are
// applied. Rules that cannot be applied are skipped, the returned error
// joins all of the problems. The returned tree is usable in any case.
func (b *Builder) Build() (*Tree, error) {
	if b.built {
		return nil, FinalizedError()
	}

	var errs []error
	ed, isEditor := b.rules.(Editor)
	if isEditor {
		for _, v := range ed.Transparent() {
			if err := b.MakeTransparent(v); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if b.rules != nil {
		for v := range b.root.BreadthFirst() {
			order, ok := b.rules.SortOrder(v.name.Taxon())
			if !ok || v == b.root {
				continue
			}
			if err := v.sortChildren(order); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if isEditor {
		for _, v := range ed.Breakouts() {
			if err := b.SetBreakout(v, ed.Breakout(v)); err != nil {
				errs = append(errs, err)
			}
		}
	}

	b.built = true
	res := &Tree{
		root:    b.root,
		count:   b.count,
		dropped: b.dropped,
	}
	return res, errors.Join(errs...)
}
