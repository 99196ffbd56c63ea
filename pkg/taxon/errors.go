package taxon

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

func EmptyLadderError(name string) error {
	msg := "Record <em>%s</em> has no rank ladder, skipping it"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.TreeEmptyLadderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: empty rank ladder for %s", caller(), name),
	}
}

func FinalizedError() error {
	return &gn.Error{
		Code: errcode.TreeFinalizedError,
		Msg:  "Hierarchy cannot be changed after it is built",
		Err:  fmt.Errorf("from %s: hierarchy is finalized", caller()),
	}
}

func NodeNotFoundError(name string) error {
	msg := "Taxon <em>%s</em> is not found"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.TreeNodeNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: node %s not found", caller(), name),
	}
}

// SortOrderError reports that a pinned order does not match children of
// a node.
func SortOrderError(name string, missing, added []string) error {
	msg := "Ignoring sort order of <em>%s</em>: missing [%s], added [%s]"
	vars := []any{
		name, strings.Join(missing, ", "), strings.Join(added, ", "),
	}
	return &gn.Error{
		Code: errcode.TreeSortOrderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sort order mismatch for %s: "+
			"missing %v, added %v", caller(), name, missing, added),
	}
}

func TransparentError(name, child string) error {
	msg := "Cannot make <em>%s</em> transparent, " +
		"its child <em>%s</em> clashes with a sibling"
	vars := []any{name, child}
	return &gn.Error{
		Code: errcode.TreeTransparentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: duplicate name %s after removing %s",
			caller(), child, name),
	}
}
