// Package leaf contains Record, a single Red List assessment of a species,
// subspecies, variety or subpopulation.
package leaf

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gnames/gnlib"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnredlist/pkg/status"
)

// Record is an assessed taxon. It is a value type, methods never modify
// it.
type Record struct {
	// ID is IUCN's species ID.
	ID string

	Kingdom Kingdom

	Genus    string
	Subgenus string
	Epithet  string

	// Infrarank is infraspecific rank as given by IUCN, e.g. "ssp.",
	// "subsp." or "var.".
	Infrarank    string
	Infraspecies string

	// Stockpop is the stock or subpopulation label.
	Stockpop string

	// MultiStockpop is true if the record stands for several subpopulations
	// of the same taxon. Stockpop then holds a description like
	// "3 subpopulations".
	MultiStockpop bool

	// CommonNamesEng is a comma-separated list of English common names.
	CommonNamesEng string

	Status status.Status
}

// IsStockpop is true for stocks and subpopulations.
func (r Record) IsStockpop() bool {
	return r.Stockpop != ""
}

// HasSubgenus is true if subgenus is given.
func (r Record) HasSubgenus() bool {
	return r.Subgenus != ""
}

// IsTrinomial is true for subspecies and varieties, and for their
// subpopulations.
func (r Record) IsTrinomial() bool {
	return r.Epithet != "" && r.Infraspecies != ""
}

// IsSpecies is true for binomials that are not subpopulations.
func (r Record) IsSpecies() bool {
	return !r.IsStockpop() && !r.IsTrinomial()
}

// IsVariety is true if the normalized infraspecific rank is "var.".
func (r Record) IsVariety() bool {
	return r.NormalizedInfrarank() == "var."
}

func (r Record) IsSubspeciesOrVariety() bool {
	return !r.IsStockpop() && r.IsTrinomial()
}

func (r Record) IsSubspeciesNotVariety() bool {
	return !r.IsStockpop() && r.IsTrinomial() && !r.IsVariety()
}

// NormalizedInfrarank drops "ssp." and "subsp." for animals and uses
// "subsp." instead of "ssp." for plants.
func (r Record) NormalizedInfrarank() string {
	if r.Infraspecies == "" || r.Infrarank == "" {
		return ""
	}
	if r.Kingdom == Animalia &&
		(r.Infrarank == "ssp." || r.Infrarank == "subsp.") {
		return ""
	}
	if r.Kingdom == Plantae && r.Infrarank == "ssp." {
		return "subsp."
	}
	return r.Infrarank
}

// BasicName is the name without stock or subpopulation and with
// normalized infraspecific rank. It is used to match records to each
// other and to sort them.
func (r Record) BasicName() string {
	return r.name(r.NormalizedInfrarank())
}

func (r Record) name(infrarank string) string {
	var sb strings.Builder
	sb.WriteString(r.Genus)
	if r.Epithet != "" {
		sb.WriteString(" " + r.Epithet)
	}
	if r.Infraspecies != "" {
		if infrarank != "" {
			sb.WriteString(" " + infrarank)
		}
		sb.WriteString(" " + r.Infraspecies)
	}
	return sb.String()
}

// FullName keeps the infraspecific rank as given and adds the stock or
// subpopulation in parentheses.
func (r Record) FullName() string {
	res := r.name(r.Infrarank)
	if r.Stockpop != "" {
		res = fmt.Sprintf("%s (%s)", res, r.Stockpop)
	}
	return res
}

// ShortBinomial is genus with epithet, or with the infraspecific part
// if there is no epithet.
func (r Record) ShortBinomial() string {
	if r.Epithet != "" {
		return r.Genus + " " + r.Epithet
	}
	if r.Infraspecies == "" {
		return r.Genus
	}
	if r.Infrarank != "" {
		return fmt.Sprintf("%s %s %s", r.Genus, r.Infrarank, r.Infraspecies)
	}
	return r.Genus + " " + r.Infraspecies
}

// IsIDNull is true if the record has no usable IUCN ID.
func (r Record) IsIDNull() bool {
	id := strings.TrimSpace(r.ID)
	return id == "" || id == "0"
}

// NomCode returns the nomenclatural code for the record's name.
func (r Record) NomCode() nomcode.Code {
	return r.Kingdom.NomCode()
}

// WithStockpop returns a copy of the record that represents several
// subpopulations, described by label. The copy has status None.
func (r Record) WithStockpop(label string) Record {
	r.Stockpop = label
	r.MultiStockpop = true
	r.Status = status.None
	return r
}

var (
	fishbaseRe = regexp.MustCompile(`(?i) \(fb\)`)
	theRe      = regexp.MustCompile(`(?i)^the `)
	cleaner    = strings.NewReplacer(
		"chamaeleon", "chameleon",
		"Chamaeleon", "Chameleon",
		"  ", " ",
		"*", "",
		"´", "'",
	)
)

// CommonNames splits English common names and cleans them up. Entries
// that contain digits are considered unreliable and give nil.
func (r Record) CommonNames() []string {
	if r.CommonNamesEng == "" {
		return nil
	}
	if strings.IndexFunc(r.CommonNamesEng, unicode.IsDigit) != -1 {
		return nil
	}

	var res []string
	for _, v := range strings.Split(r.CommonNamesEng, ",") {
		v = gnlib.FixUtf8(strings.TrimSpace(v))
		v = theRe.ReplaceAllString(v, "")
		v = strings.TrimSuffix(v, ".")
		v = fishbaseRe.ReplaceAllString(v, "")
		v = cleaner.Replace(v)
		v = strings.TrimSpace(v)
		if v == "" || strings.HasPrefix(strings.ToLower(v), "species code") {
			continue
		}
		res = append(res, v)
	}
	return res
}

// FirstCommonName returns the first cleaned common name, or an empty
// string.
func (r Record) FirstCommonName() string {
	names := r.CommonNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// BestCommonName prefers names without an apostrophe, otherwise
// it returns the first name.
func (r Record) BestCommonName() string {
	names := r.CommonNames()
	if len(names) == 0 {
		return ""
	}
	for _, v := range names {
		if !strings.Contains(v, "'") {
			return v
		}
	}
	return names[0]
}
