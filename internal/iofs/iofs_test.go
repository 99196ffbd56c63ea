package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnredlist/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls are fine
	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnredlist"),
		filepath.Join(tmpDir, ".cache", "gnredlist"),
		filepath.Join(tmpDir, ".local", "share", "gnredlist", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		msg     string
		fn      func(string) error
		file    string
		content string
	}{
		{"config", EnsureConfigFile, "config.yaml", ConfigYAML},
		{"rules", EnsureRulesFile, "rules.yaml", RulesYAML},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, v.fn(tmpDir))

			path := filepath.Join(tmpDir, ".config", "gnredlist", v.file)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, v.content, string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			// existing file is not overwritten
			custom := "# custom\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, v.fn(tmpDir))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content))
		})
	}
}

func TestEnsureFileNoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "lists")
	require.NoError(t, EnsureOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEmbeddedFiles(t *testing.T) {
	assert := assert.New(t)
	assert.Contains(ConfigYAML, "input:")
	assert.Contains(ConfigYAML, "database:")
	assert.Contains(ConfigYAML, "log:")

	var f rules.File
	require.NoError(t, yaml.Unmarshal([]byte(RulesYAML), &f))
	rs := rules.New(f)
	assert.Contains(rs.Transparent(), "Squamata")
	assert.Contains(rs.Transparent(), "Tracheophyta")
	order, ok := rs.SortOrder("plantae")
	assert.True(ok)
	assert.Equal("Algae", order[0])
	ins, ok := rs.InsertionRule("Actinopterygii")
	assert.True(ok)
	assert.Equal(rules.Insertion{BelowRank: "superclass", Below: "Fish"}, ins)
	assert.Equal([]string{"Fungi", "Chromista"}, rs.Lists().PerTaxon)
	require.Len(t, rs.Pseudo(), 1)
	assert.Equal("Invertebrate", rs.Pseudo()[0].Name)
}
