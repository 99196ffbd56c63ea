// Package status models IUCN Red List categories: their severity order,
// Red List Index weights and the filters used to select assessments.
package status

import (
	"fmt"
	"strings"
)

// Status is an IUCN Red List category or a filter made of several
// categories.
type Status int

const (
	// Null means the status is not set. As a filter it matches everything.
	Null Status = iota

	// None is a placeholder status, used for records that stand for a group
	// of assessments with possibly different categories.
	None

	NE  // not evaluated
	DD  // data deficient
	LC  // least concern
	NT  // near threatened
	CD  // conservation dependent, LR/cd
	VU  // vulnerable
	EN  // endangered
	CR  // critically endangered
	PE  // critically endangered, possibly extinct
	PEW // critically endangered, possibly extinct in the wild
	EW  // extinct in the wild
	EX  // extinct

	// EXplus is a filter that combines EX, EW, PE and PEW.
	EXplus

	// Threatened is a filter that combines VU, EN and CR (with PE and PEW).
	Threatened
)

// MaxWeight is the weight of extinct species in the Red List Index.
const MaxWeight = 5

var names = map[Status]string{
	Null:       "Null",
	None:       "None",
	NE:         "NE",
	DD:         "DD",
	LC:         "LC",
	NT:         "NT",
	CD:         "CD",
	VU:         "VU",
	EN:         "EN",
	CR:         "CR",
	PE:         "PE",
	PEW:        "PEW",
	EW:         "EW",
	EX:         "EX",
	EXplus:     "EXplus",
	Threatened: "Threatened",
}

var codes = map[Status]string{
	CD:  "LR/cd",
	PE:  "CR(PE)",
	PEW: "CR(PEW)",
}

var texts = map[Status]string{
	NE:         "not evaluated",
	DD:         "data deficient",
	LC:         "least concern",
	NT:         "near threatened",
	CD:         "conservation dependent",
	VU:         "vulnerable",
	EN:         "endangered",
	CR:         "critically endangered",
	PE:         "possibly extinct",
	PEW:        "possibly extinct in the wild",
	EW:         "extinct in the wild",
	EX:         "extinct",
	EXplus:     "extinct or possibly extinct",
	Threatened: "threatened",
}

// weights hold both severity and RLI weight, they are the same numbers.
var weights = map[Status]int{
	LC:  0,
	NT:  1,
	CD:  1,
	VU:  2,
	EN:  3,
	CR:  4,
	PE:  4,
	PEW: 4,
	EW:  5,
	EX:  5,
}

var parseMap = map[string]Status{
	"ex":         EX,
	"ew":         EW,
	"cr":         CR,
	"en":         EN,
	"vu":         VU,
	"nt":         NT,
	"lc":         LC,
	"dd":         DD,
	"ne":         NE,
	"cd":         CD,
	"lr/cd":      CD,
	"lr/nt":      NT,
	"lr/lc":      LC,
	"pe":         PE,
	"cr(pe)":     PE,
	"pew":        PEW,
	"cr(pew)":    PEW,
	"explus":     EXplus,
	"threatened": Threatened,
	"none":       None,
}

// Parse converts an IUCN category code, such as "CR", "LR/cd" or "CR(PE)",
// or a filter name ("EXplus", "threatened") to Status. Matching is
// case-insensitive. An empty string gives Null.
func Parse(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Null, nil
	}
	if res, ok := parseMap[strings.ReplaceAll(s, " ", "")]; ok {
		return res, nil
	}
	return Null, fmt.Errorf("unknown red list status %q", s)
}

// String returns a short identifier of the status, e.g. "CD" or "EXplus".
func (s Status) String() string {
	if res, ok := names[s]; ok {
		return res
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Code returns the status as IUCN writes it, e.g. "LR/cd" or "CR(PE)".
func (s Status) Code() string {
	if res, ok := codes[s]; ok {
		return res
	}
	if s == Null {
		return ""
	}
	return s.String()
}

// Text is a lowercase English description of the status.
func (s Status) Text() string {
	return texts[s]
}

// TextWithRecently is like Text, but describes extinct taxa as
// "recently extinct", because IUCN only assesses extinctions after 1500 AD.
func (s Status) TextWithRecently() string {
	switch s {
	case EX:
		return "recently extinct"
	case EXplus:
		return "recently extinct or possibly extinct"
	}
	return s.Text()
}

// Severity gives the position of the status in the order
// LC < NT = CD < VU < EN < CR = PE = PEW < EW = EX.
// Statuses outside of this order return false.
func (s Status) Severity() (int, bool) {
	res, ok := weights[s]
	return res, ok
}

// RLIWeight returns the weight of the status in the Red List Index.
// DD, NE, and placeholders have no weight.
func (s Status) RLIWeight() (int, bool) {
	return s.Severity()
}

// Limited folds sub-categories onto their parent category:
// PE and PEW become CR, CD becomes NT.
func (s Status) Limited() Status {
	switch s {
	case PE, PEW:
		return CR
	case CD:
		return NT
	}
	return s
}

// Matches returns true if a record with the status is included under
// the filter.
func (s Status) Matches(filter Status) bool {
	switch filter {
	case Null:
		return true
	case EXplus:
		return s == EX || s == EW || s == PE || s == PEW
	case Threatened:
		return s.IsThreatened()
	}
	return s == filter || s.Limited() == filter
}

// IsThreatened is true for VU, EN, CR and its sub-categories.
func (s Status) IsThreatened() bool {
	switch s.Limited() {
	case VU, EN, CR:
		return true
	}
	return false
}

// IsEvaluated is true for categories that come from an actual assessment.
func (s Status) IsEvaluated() bool {
	switch s {
	case Null, None, NE, EXplus, Threatened:
		return false
	}
	return true
}

// IsNull is true if status is not set.
func (s Status) IsNull() bool {
	return s == Null
}

// IsFilter is true for statuses that combine several categories.
func (s Status) IsFilter() bool {
	return s == EXplus || s == Threatened
}

// Filters returns statuses used for per-category lists, from the most
// severe to the least. NT includes CD, CR includes PE and PEW.
func Filters() []Status {
	return []Status{EXplus, CR, EN, VU, NT, LC, DD}
}
