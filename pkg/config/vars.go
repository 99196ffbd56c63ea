package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnredlist"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnredlist by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnredlist by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnredlist/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnredlist/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RulesFilePath returns the full path to the default rules.yaml file.
// Returns ~/.config/gnredlist/rules.yaml by default.
func RulesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "rules.yaml")
}

// RulesFile returns RulesPath if it is set, or the default rules file.
func (c *Config) RulesFile() string {
	if c.RulesPath != "" {
		return c.RulesPath
	}
	return RulesFilePath(c.HomeDir)
}
