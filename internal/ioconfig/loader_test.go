package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioconfig"
	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultFile(t *testing.T) {
	path := writeConfig(t, iofs.ConfigYAML)
	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(res.ToOptions())
	assert.Equal(t, config.New(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input:
  source: sqlite
  sqlite_path: /data/redlist.sqlite
  use_cache: false
database:
  port: 5433
output:
  format: tsv
jobs_number: 3
`)
	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("sqlite", res.Input.Source)
	assert.Equal("/data/redlist.sqlite", res.Input.SQLitePath)
	require.NotNil(t, res.Input.UseCache)
	assert.False(*res.Input.UseCache)
	assert.Equal(5433, res.Database.Port)
	assert.Equal("tsv", res.Output.Format)
	assert.Equal(3, res.JobsNumber)
}

func TestLoadEnv(t *testing.T) {
	path := writeConfig(t, "database:\n  host: localhost\n")
	t.Setenv("GNREDLIST_DATABASE_HOST", "db.example.org")
	t.Setenv("GNREDLIST_INPUT_CSV_PATH", "/data/export.csv")
	t.Setenv("GNREDLIST_LOG_LEVEL", "debug")

	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.example.org", res.Database.Host)
	assert.Equal(t, "/data/export.csv", res.Input.CSVPath)
	assert.Equal(t, "debug", res.Log.Level)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	_, err := ioconfig.Load(path)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}
