package leaf

import (
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
)

// Kingdom is one of the kingdoms used by IUCN.
type Kingdom int

const (
	KingdomNone Kingdom = iota
	Animalia
	Bacteria
	Chromista
	Fungi
	Plantae
	Protozoa
)

var kingdomNames = []string{
	"", "Animalia", "Bacteria", "Chromista", "Fungi", "Plantae", "Protozoa",
}

// ParseKingdom converts a kingdom name to Kingdom, ignoring case.
// Unknown names give KingdomNone.
func ParseKingdom(s string) Kingdom {
	s = strings.TrimSpace(s)
	for i, v := range kingdomNames {
		if i > 0 && strings.EqualFold(s, v) {
			return Kingdom(i)
		}
	}
	return KingdomNone
}

func (k Kingdom) String() string {
	if int(k) < 0 || int(k) >= len(kingdomNames) {
		return ""
	}
	return kingdomNames[k]
}

// NomCode returns the nomenclatural code that governs names of the
// kingdom.
func (k Kingdom) NomCode() nomcode.Code {
	switch k {
	case Plantae, Fungi, Chromista:
		return nomcode.Botanical
	case Bacteria:
		return nomcode.Bacterial
	}
	return nomcode.Zoological
}
