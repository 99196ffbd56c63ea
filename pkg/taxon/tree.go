package taxon

import (
	"slices"
)

// Tree is a finalized, read-only hierarchy.
type Tree struct {
	root    *Node
	count   int
	dropped int
}

// Root returns the top node of the hierarchy.
func (t *Tree) Root() *Node {
	return t.root
}

// Count returns the number of records in the tree.
func (t *Tree) Count() int {
	return t.count
}

// Dropped returns the number of records that had no usable rank ladder.
func (t *Tree) Dropped() int {
	return t.dropped
}

// FindByName searches the tree breadth-first for a name, ignoring case.
func (t *Tree) FindByName(name string) (*Node, bool) {
	return t.root.FindByName(name)
}

// PseudoNode creates a paraphyletic group that is not a part of the
// tree. With one included taxon the group gets its children, otherwise
// it gets the included taxa. Excluded taxa are removed from that set.
// Children keep their real parents.
func (t *Tree) PseudoNode(
	name string,
	include, exclude []string,
) (*Node, error) {
	var inc, exc []*Node
	for _, v := range include {
		n, ok := t.FindByName(v)
		if !ok {
			return nil, NodeNotFoundError(v)
		}
		inc = append(inc, n)
	}
	for _, v := range exclude {
		n, ok := t.FindByName(v)
		if !ok {
			return nil, NodeNotFoundError(v)
		}
		exc = append(exc, n)
	}

	members := inc
	if len(inc) == 1 {
		members = inc[0].children
	}

	res := newNode(
		RankParaphyletic,
		NewExternalName(name, t.root.name.info),
		nil,
		t.root.rules,
	)
	for _, v := range members {
		if !slices.Contains(exc, v) {
			res.children = append(res.children, v)
		}
	}
	return res, nil
}
