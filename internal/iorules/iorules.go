// Package iorules reads editorial rules from a YAML file.
package iorules

import (
	"log/slog"
	"os"

	"github.com/gnames/gnredlist/pkg/rules"
	"gopkg.in/yaml.v3"
)

// Load reads rules from path.
func Load(path string) (*rules.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	res, err := Parse(data)
	if err != nil {
		return nil, ParseError(path, err)
	}
	slog.Info("Rules loaded", "path", path, "taxa", len(res.Sorted()))
	return res, nil
}

// Parse converts YAML content to rules.
func Parse(data []byte) (*rules.RuleSet, error) {
	var f rules.File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return rules.New(f), nil
}
