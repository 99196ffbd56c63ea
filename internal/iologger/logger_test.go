package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnredlist/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	defer slog.SetDefault(slog.Default())

	err := Init(dir, config.LogConfig{
		Format: "json", Level: "warn", Destination: "file",
	})
	require.NoError(t, err)
	slog.Info("hidden")
	slog.Warn("shown", "taxon", "Mammalia")

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"taxon":"Mammalia"`)
}

func TestInitNoDir(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing"), config.LogConfig{
		Destination: "file",
	})
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		msg    string
		cfg    config.LogConfig
		res    string
		hidden bool
	}{
		{"json", config.LogConfig{Format: "json", Level: "info"},
			`"msg":"hello"`, false},
		{"text", config.LogConfig{Format: "text", Level: "info"},
			"msg=hello", false},
		{"tint as text", config.LogConfig{Format: "tint", Level: "debug"},
			"msg=hello", false},
		{"level filter", config.LogConfig{Format: "text", Level: "error"},
			"", true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(newHandler(&buf, v.cfg))
			l.Info("hello")
			if v.hidden {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), v.res)
		})
	}
}
