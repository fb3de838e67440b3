// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ProjectName string `yaml:"project_name"`
}

func load() {
	once.Do(func() {
		defaults = parse(rawBranding)
	})
}

// parse overlays YAML values on hard defaults. Malformed or empty input
// yields the defaults.
func parse(raw []byte) brand {
	b := brand{
		CLIName:     "wmgen",
		DisplayName: "wmgen",
		Description: "Scaffold a tiling window manager project",
		ProjectName: "TilingWM",
	}
	var overlay brand
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return b
	}
	if overlay.CLIName != "" {
		b.CLIName = overlay.CLIName
	}
	if overlay.DisplayName != "" {
		b.DisplayName = overlay.DisplayName
	}
	if overlay.Description != "" {
		b.Description = overlay.Description
	}
	if overlay.ProjectName != "" {
		b.ProjectName = overlay.ProjectName
	}
	return b
}

// CLIName returns the root command name (e.g., "wmgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ProjectName returns the name of the generated CMake project (e.g., "TilingWM").
// Informational only; the templates are not parameterized.
func ProjectName() string { load(); return defaults.ProjectName }
