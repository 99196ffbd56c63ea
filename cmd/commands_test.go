package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnredlist/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with a temporary home directory and
// the sample export as the source of assessments.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := iotesting.WriteSampleCSV(t, home)
	pePath := iotesting.WriteSamplePossiblyExtinct(t, home)

	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	all := append(
		[]string{"-i", csvPath, "-e", pePath, "--no-cache"},
		args...,
	)
	cmd.SetArgs(all)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSubcommandFlags(t *testing.T) {
	tests := []struct {
		cmd   string
		flags []string
	}{
		{"tree", []string{"depth", "filter"}},
		{"stats", []string{"depth", "filter", "format"}},
		{"lists", []string{"output", "date", "filter"}},
		{"report", []string{"output", "date"}},
		{"import", []string{"to", "sqlite"}},
	}
	root := getRootCmd()
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			cmd, _, err := root.Find([]string{tt.cmd})
			require.NoError(t, err)
			require.Equal(t, tt.cmd, cmd.Name())
			for _, v := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(v), "flag %s", v)
			}
		})
	}
}

func TestTreeCmd(t *testing.T) {
	out, err := runCmd(t, "tree", "Mammalia", "-d", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Mammalia")
	assert.Contains(t, out, "Cetartiodactyla")
	assert.Contains(t, out, "Balaena")
	assert.NotContains(t, out, "Chelonoidis")
}

func TestTreeCmdUnknownTaxon(t *testing.T) {
	_, err := runCmd(t, "tree", "Nonexistentia")
	assert.Error(t, err)
}

func TestTreeCmdBadFilter(t *testing.T) {
	_, err := runCmd(t, "tree", "-f", "XX")
	assert.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		out, err := runCmd(t, "stats", "Mammalia", "-d", "1")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "ID,ParentID,Depth"))
		assert.Contains(t, lines[1], "Mammalia")
		assert.Contains(t, lines[2], "Cetartiodactyla")
	})

	t.Run("pretty json", func(t *testing.T) {
		out, err := runCmd(t, "stats", "Mammalia", "-d", "0", "--format", "pretty")
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "Mammalia"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCmd(t, "stats", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestListsCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lists")
	_, err := runCmd(t, "lists", "Mammalia", "-o", dir, "--date", "2024-2")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".wiki", filepath.Ext(entries[0].Name()))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "As of 2024-2")
	assert.Contains(t, string(data), "Balaena mysticetus")
}

func TestReportCmd(t *testing.T) {
	out, err := runCmd(t, "report", "epithets")
	require.NoError(t, err)
	assert.Contains(t, out, "==Epithets of threatened species==")
	assert.Contains(t, out, "[[angaurana]]")

	_, err = runCmd(t, "report", "unknown")
	assert.Error(t, err)
}

func TestImportCmdSQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "redlist.db")
	_, err := runCmd(t, "import", "--to", "sqlite", "--sqlite", db)
	require.NoError(t, err)
	assert.FileExists(t, db)
}
