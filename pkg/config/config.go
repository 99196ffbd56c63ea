// Package config provides configuration management for gnredlist.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: source, csv_path, possibly_extinct_path, sqlite_path, use_cache
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - RulesPath
//   - Output: dir, format
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Output.DateText (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNREDLIST_ prefix with underscores for nesting:
//
//	GNREDLIST_INPUT_SOURCE=csv
//	GNREDLIST_INPUT_CSV_PATH=~/data/iucn/export.csv
//	GNREDLIST_DATABASE_HOST=localhost
//	GNREDLIST_LOG_LEVEL=info
//	GNREDLIST_JOBS_NUMBER=8
//
// See .envrc.example for complete list with defaults.
package config

import (
	"runtime"
)

// Input sources of Red List assessments.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config represents the complete gnredlist configuration.
type Config struct {
	// Input describes where assessments are read from.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Database contains PostgreSQL connection settings. It is used when
	// the input source is "postgres" and by the import command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// RulesPath is a YAML file with editorial rules for the hierarchy.
	// If empty, rules.yaml from the config directory are used.
	RulesPath string `mapstructure:"rules_path" yaml:"rules_path"`

	// Output contains settings for generated lists and exports.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig contains settings of the assessments source.
type InputConfig struct {
	// Source is one of "csv", "postgres", "sqlite".
	Source string `mapstructure:"source" yaml:"source"`

	// CSVPath is the path to the IUCN export file (Windows-1252 encoded).
	CSVPath string `mapstructure:"csv_path" yaml:"csv_path"`

	// PossiblyExtinctPath is an optional text file that marks CR taxa as
	// possibly extinct, with lines like "Genus species ... CR(PE)".
	PossiblyExtinctPath string `mapstructure:"possibly_extinct_path" yaml:"possibly_extinct_path"`

	// SQLitePath is the SQLite database created by the import command.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// UseCache allows to reuse parsed CSV data from the cache directory
	// if the input files did not change.
	// Uses pointer to distinguish between unset (nil) and false.
	UseCache *bool `mapstructure:"use_cache" yaml:"use_cache"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of assessments sent to the database
	// in one batch during import.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// OutputConfig contains settings for generated files.
type OutputConfig struct {
	// Dir is where lists and reports are written.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Format of stats exports: "csv", "tsv", "compact" or "pretty".
	Format string `mapstructure:"format" yaml:"format"`

	// DateText describes the Red List version in generated lists,
	// for example "2024-2".
	DateText string `mapstructure:"date_text" yaml:"date_text"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	useCache := true
	res := &Config{
		Input: InputConfig{
			Source:   SourceCSV,
			UseCache: &useCache,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "redlist",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Output: OutputConfig{
			Dir:    "redlist-output",
			Format: "csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// WithCache is true if parsed input can be reused from the cache.
func (c *Config) WithCache() bool {
	return c.Input.UseCache == nil || *c.Input.UseCache
}
