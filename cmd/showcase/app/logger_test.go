package app

import (
	"testing"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"quiet wins over verbose", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid level falls back", Config{LogLevel: "shouting"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	config := &Config{CatalogPath: "custom/agents.js"}
	config.applyDefaults()

	if config.CatalogPath != "custom/agents.js" {
		t.Errorf("explicit path overwritten: %q", config.CatalogPath)
	}
	if config.SubagentsDir != defaultSubagentsDir {
		t.Errorf("SubagentsDir = %q, want default %q", config.SubagentsDir, defaultSubagentsDir)
	}
	if config.OutputDir != defaultOutputDir {
		t.Errorf("OutputDir = %q, want default %q", config.OutputDir, defaultOutputDir)
	}
}
