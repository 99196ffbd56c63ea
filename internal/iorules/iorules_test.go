package iorules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iorules"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesYAML = `
taxa:
  - name: Squamata
    transparent: true
  - name: Actinopterygii
    below: Fish
    below_rank: superclass
  - name: Chiroptera
    common_name: bat
  - name: Reptilia
    sort_order: [Testudines, Crocodylia]
pseudo:
  - name: Invertebrate
    include: [Animalia]
    exclude: [Chordata]
lists:
  per_category: [Mammalia]
  names_only: [Mammalia]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rulesYAML), 0644))

	rs, err := iorules.Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"Squamata"}, rs.Transparent())
	ins, ok := rs.InsertionRule("actinopterygii")
	assert.True(ok)
	assert.Equal("Fish", ins.Below)
	assert.Equal("bats", rs.Plural("Chiroptera"))
	order, ok := rs.SortOrder("Reptilia")
	assert.True(ok)
	assert.Equal([]string{"Testudines", "Crocodylia"}, order)
	assert.Equal([]string{"Chordata"}, rs.Pseudo()[0].Exclude)
	assert.Equal([]string{"Mammalia"}, rs.Lists().NamesOnly)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("taxa: [name: :"), 0644))

	tests := []struct {
		msg  string
		path string
		code gn.ErrorCode
	}{
		{"missing file", filepath.Join(dir, "none.yaml"), errcode.RulesReadError},
		{"bad yaml", bad, errcode.RulesParseError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := iorules.Load(v.path)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
			assert.Equal(t, v.path, gnErr.Vars[0])
		})
	}
}
