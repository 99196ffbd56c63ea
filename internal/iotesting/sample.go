package iotesting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnredlist/pkg/redlist"

	"golang.org/x/text/encoding/charmap"
)

// SampleCSV is a small IUCN export. It has 5 species, 1 subspecies and
// 2 subpopulations of species.
const SampleCSV = `Species ID,Kingdom,Phylum,Class,Order,Family,Genus,Species,Authority,Infraspecific rank,Infraspecific name,Infraspecific authority,Stock/subpopulation,Synonyms,Common names (Eng),Common names (Fre),Common names (Spa),Red List status,Red List criteria,Red List criteria version,Year assessed,Population trend,Petitioned
2467,ANIMALIA,CHORDATA,MAMMALIA,CETARTIODACTYLA,BALAENIDAE,Balaena,mysticetus,"Linnaeus, 1758",,,,,,"Bowhead Whale, Greenland Right Whale",,,LC,,3.1,2012,unknown,N
2472,ANIMALIA,CHORDATA,MAMMALIA,CETARTIODACTYLA,BALAENIDAE,Balaena,mysticetus,"Linnaeus, 1758",,,,Svalbard subpopulation,,Bowhead Whale,,,CR,,3.1,2012,unknown,N
2473,ANIMALIA,CHORDATA,MAMMALIA,CETARTIODACTYLA,BALAENIDAE,Balaena,mysticetus,"Linnaeus, 1758",,,,Okhotsk Sea subpopulation,,Bowhead Whale,,,EN,,3.1,2012,unknown,N
6336,ANIMALIA,CHORDATA,MAMMALIA,CETARTIODACTYLA,DELPHINIDAE,Delphinus,delphis,"Linnaeus, 1758",,,,,,Common Dolphin,,,LC,,3.1,2012,unknown,N
133714,ANIMALIA,CHORDATA,MAMMALIA,CETARTIODACTYLA,DELPHINIDAE,Delphinus,delphis,"Linnaeus, 1758",ssp.,ponticus,"Barabash, 1935",,,Black Sea Common Dolphin,,,EN,,3.1,2012,unknown,N
5,ANIMALIA,CHORDATA,REPTILIA,TESTUDINES,TESTUDINIDAE,Chelonoidis,abingdonii,"(Günther, 1877)",,,,,,"Pinta Island Giant Tortoise, Galápagos tortoise",,,EX,,3.1,2012,unknown,N
42293,PLANTAE,TRACHEOPHYTA,PINOPSIDA,PINALES,PINACEAE,Abies,nebrodensis,(Lojac.) Mattei,,,,,,Sicilian Fir,,,CR,,3.1,2012,unknown,N
3,ANIMALIA,MOLLUSCA,GASTROPODA,STYLOMMATOPHORA,ENDODONTIDAE,Aaadonta,angaurana,"Solem, 1976",,,,,,,,,CR,,3.1,2012,unknown,N
`

// SamplePossiblyExtinct marks Aaadonta angaurana as possibly extinct.
const SamplePossiblyExtinct = `Possibly extinct species
Aaadonta angaurana CR(PE) 2012 1976
Rhizopsammia wellingtoni Wellington's Solitary Coral CR(PE) 2007 2000
Pantanodon sp. nov. 'Manombo' CR(PE) 2004 1997
`

// WriteSampleCSV saves SampleCSV in Windows-1252 encoding to dir and
// returns the path of the file.
func WriteSampleCSV(t *testing.T, dir string) string {
	t.Helper()
	data, err := charmap.Windows1252.NewEncoder().String(SampleCSV)
	if err != nil {
		t.Fatalf("Failed to encode sample CSV: %v", err)
	}
	return writeFile(t, filepath.Join(dir, "export.csv"), data)
}

// WriteSamplePossiblyExtinct saves SamplePossiblyExtinct to dir and
// returns the path of the file.
func WriteSamplePossiblyExtinct(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(
		t, filepath.Join(dir, "possibly-extinct.txt"), SamplePossiblyExtinct,
	)
}

func writeFile(t *testing.T, path, data string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// SampleRows returns rows of SampleCSV without possibly extinct
// marks.
func SampleRows(t *testing.T) []redlist.Row {
	t.Helper()
	r := csv.NewReader(strings.NewReader(SampleCSV))
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read sample CSV: %v", err)
	}
	res := make([]redlist.Row, 0, len(recs)-1)
	for _, v := range recs[1:] {
		res = append(res, redlist.Row{
			ID:             v[0],
			Kingdom:        v[1],
			Phylum:         v[2],
			Class:          v[3],
			Order:          v[4],
			Family:         v[5],
			Genus:          v[6],
			Epithet:        v[7],
			Authority:      v[8],
			Infrarank:      v[9],
			Infraspecies:   v[10],
			InfraAuthority: v[11],
			Stockpop:       v[12],
			CommonNamesEng: v[14],
			Status:         v[17],
		})
	}
	return res
}
