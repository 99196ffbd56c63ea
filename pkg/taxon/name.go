package taxon

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NameKind tells what kind of name a node carries.
type NameKind int

const (
	// Assigned is a normal taxon name from the input.
	Assigned NameKind = iota
	// Unassigned is a placeholder, e.g. "Not assigned".
	Unassigned
	// External is a name that does not come from the input, like a
	// paraphyletic group made by the editor.
	External
	// Other is the name of an aggregate node that collects small children
	// of its parent.
	Other
)

// NameInfo provides English names of taxa. rules.RuleSet implements it.
type NameInfo interface {
	CommonName(taxon string) string
	Plural(taxon string) string
}

// Name is the name of a node.
type Name struct {
	kind  NameKind
	taxon string
	// of is the name of the parent for Other names.
	of   *Name
	info NameInfo
}

var unassigned = map[string]struct{}{
	"":                   {},
	"not assigned":       {},
	"zzzzz not assigned": {},
}

// NewName creates Assigned or Unassigned name, depending on the taxon
// string.
func NewName(taxon string, info NameInfo) Name {
	taxon = strings.TrimSpace(taxon)
	kind := Assigned
	if _, ok := unassigned[strings.ToLower(taxon)]; ok {
		kind = Unassigned
	}
	return Name{kind: kind, taxon: taxon, info: info}
}

// NewExternalName creates a name that does not exist in the input data.
func NewExternalName(taxon string, info NameInfo) Name {
	return Name{kind: External, taxon: strings.TrimSpace(taxon), info: info}
}

// NewOtherName creates a name of an aggregate node under parent.
func NewOtherName(parent Name) Name {
	return Name{kind: Other, of: &parent, info: parent.info}
}

// Kind returns the kind of the name.
func (n Name) Kind() NameKind {
	return n.kind
}

// IsAssigned is true for names of real or editorial taxa.
func (n Name) IsAssigned() bool {
	return n.kind == Assigned || n.kind == External
}

// Taxon is the scientific name, or a description for placeholder
// and aggregate names.
func (n Name) Taxon() string {
	switch n.kind {
	case Unassigned:
		if n.taxon == "" {
			return "Not assigned"
		}
		return n.taxon
	case Other:
		return "Other " + n.of.Taxon()
	}
	return n.taxon
}

// CommonName returns English name of the taxon, if known.
func (n Name) CommonName() string {
	if n.info == nil || !n.IsAssigned() {
		return ""
	}
	return n.info.CommonName(n.taxon)
}

// Plural returns English plural of the taxon, if known.
func (n Name) Plural() string {
	if n.info == nil || !n.IsAssigned() {
		return ""
	}
	return n.info.Plural(n.taxon)
}

// LowerOrTaxon returns lowercase common name, or the taxon.
func (n Name) LowerOrTaxon() string {
	if n.kind == Other {
		return "other " + n.of.LowerPluralOrTaxon()
	}
	if res := n.CommonName(); res != "" {
		return strings.ToLower(res)
	}
	return n.Taxon()
}

// PluralOrTaxon returns plural English name, or the taxon.
func (n Name) PluralOrTaxon() string {
	if n.kind == Other {
		return "Other " + n.of.LowerPluralOrTaxon()
	}
	if res := n.Plural(); res != "" {
		return upperFirst(res)
	}
	return n.Taxon()
}

// LowerPluralOrTaxon is like PluralOrTaxon, but the plural is in lower
// case.
func (n Name) LowerPluralOrTaxon() string {
	if res := n.Plural(); res != "" {
		return strings.ToLower(res)
	}
	if n.kind == Other {
		return "other " + n.of.LowerPluralOrTaxon()
	}
	return n.Taxon()
}

// LinkText renders the name as a wiki link. Placeholders and aggregates
// are not linked.
func (n Name) LinkText() string {
	switch n.kind {
	case Unassigned, Other:
		return n.PluralOrTaxon()
	}
	if common := n.CommonName(); common != "" {
		return fmt.Sprintf("[[%s|%s]]", n.taxon, upperFirst(common))
	}
	return fmt.Sprintf("[[%s]]", n.taxon)
}

func (n Name) String() string {
	return n.Taxon()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
