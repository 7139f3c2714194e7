package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default source and output locations, relative to the repo root.
const (
	defaultCatalogPath      = "data/agents.src.js"
	defaultSubagentsDir     = "data/subagents"
	defaultProjectsPath     = "data/projects.yaml"
	defaultTranslationsPath = "data/reference/translations.yaml"
	defaultConnectionsPath  = "data/reference/connections.yaml"
	defaultOutputDir        = "site/data"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Pipeline paths
	CatalogPath      string
	SubagentsDir     string
	ProjectsPath     string
	TranslationsPath string
	ConnectionsPath  string
	OutputDir        string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables
//  3. .env files
//  4. Config file (.showcase.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".showcase")
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		CatalogPath:      viper.GetString("catalog_path"),
		SubagentsDir:     viper.GetString("subagents_dir"),
		ProjectsPath:     viper.GetString("projects_path"),
		TranslationsPath: viper.GetString("translations_path"),
		ConnectionsPath:  viper.GetString("connections_path"),
		OutputDir:        viper.GetString("output_dir"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	config.applyDefaults()

	return config, nil
}

// applyDefaults fills unset paths with the repo-layout defaults.
func (c *Config) applyDefaults() {
	if c.CatalogPath == "" {
		c.CatalogPath = defaultCatalogPath
	}
	if c.SubagentsDir == "" {
		c.SubagentsDir = defaultSubagentsDir
	}
	if c.ProjectsPath == "" {
		c.ProjectsPath = defaultProjectsPath
	}
	if c.TranslationsPath == "" {
		c.TranslationsPath = defaultTranslationsPath
	}
	if c.ConnectionsPath == "" {
		c.ConnectionsPath = defaultConnectionsPath
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// Called after cobra parses flags so flag values take precedence over
// config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env files from the working directory.
func loadEnvFiles() {
	// .env.local wins over .env when both exist
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
