// Package iofs prepares directories and default files of gnredlist.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed rules.yaml
var RulesYAML string

// EnsureDirs creates config, cache and log directories if needed.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes default config.yaml unless it already exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureRulesFile writes default rules.yaml unless it already exists.
func EnsureRulesFile(homeDir string) error {
	return ensureFile(config.RulesFilePath(homeDir), RulesYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}

// EnsureOutputDir creates a directory for generated files.
func EnsureOutputDir(dir string) error {
	return touchDir(dir)
}
