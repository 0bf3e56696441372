// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
	"github.com/tidwall/jsonc"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Environment variables read by [loadConfig].
const (
	// EnvConfigFile names the configuration file when --config is not given.
	EnvConfigFile = "PLANKS_MCP_CONFIG_FILE"
	// EnvRoot overrides paths.root.
	EnvRoot = "PLANKS_ROOT"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
	// configFormatJSONC represents JSON with comments and trailing commas (.jsonc)
	configFormatJSONC
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON, JSONC or YAML file given by --config
// or the PLANKS_MCP_CONFIG_FILE environment variable. Empty values take defaults.
type Config struct {
	// Library: Package coordinates used in generated import lines
	Library struct {
		// Name: Package the components are imported from
		Name string `json:"name" yaml:"name"`
		// StylesImport: Stylesheet module every snippet imports
		StylesImport string `json:"stylesImport" yaml:"stylesImport"`
	} `json:"library" yaml:"library"`

	// Paths: Location of the component project on disk
	Paths struct {
		// Root: Project root; PLANKS_ROOT overrides it
		Root string `json:"root" yaml:"root"`
		// Components: Components directory relative to Root
		Components string `json:"components" yaml:"components"`
		// TailwindConfig: Tailwind configuration file relative to Root
		TailwindConfig string `json:"tailwindConfig" yaml:"tailwindConfig"`
	} `json:"paths" yaml:"paths"`

	// Scanner: Source tree layout
	Scanner struct {
		Categories []string `json:"categories" yaml:"categories"`
		Extension  string   `json:"extension" yaml:"extension"`
		IndexFile  string   `json:"indexFile" yaml:"indexFile"`
	} `json:"scanner" yaml:"scanner"`

	// HTTP: Streamable HTTP transport settings
	HTTP struct {
		Addr        string `json:"addr" yaml:"addr"`
		Endpoint    string `json:"endpoint" yaml:"endpoint"`
		MetricsPath string `json:"metricsPath" yaml:"metricsPath"`
	} `json:"http" yaml:"http"`

	// Log: Server log destination
	Log struct {
		// File: Append logs to this file instead of stderr
		File string `json:"file" yaml:"file"`
		// Silent: Discard all server logs
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// applyDefaults fills every empty field.
func (c *Config) applyDefaults() {
	opts := catalog.DefaultOptions()

	if c.Library.Name == "" {
		c.Library.Name = opts.Library
	}
	if c.Library.StylesImport == "" {
		c.Library.StylesImport = opts.StylesImport
	}
	if c.Paths.Root == "" {
		c.Paths.Root = "."
	}
	if c.Paths.Components == "" {
		c.Paths.Components = "src/components"
	}
	if c.Paths.TailwindConfig == "" {
		c.Paths.TailwindConfig = "tailwind.config.ts"
	}
	if len(c.Scanner.Categories) == 0 {
		c.Scanner.Categories = opts.Categories
	}
	if c.Scanner.Extension == "" {
		c.Scanner.Extension = opts.Extension
	}
	if c.Scanner.IndexFile == "" {
		c.Scanner.IndexFile = opts.IndexFile
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = "127.0.0.1:8080"
	}
	if c.HTTP.Endpoint == "" {
		c.HTTP.Endpoint = "/mcp"
	}
	if c.HTTP.MetricsPath == "" {
		c.HTTP.MetricsPath = "/metrics"
	}
}

// CatalogOptions returns the scan and snippet options of the configuration.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Library:      c.Library.Name,
		StylesImport: c.Library.StylesImport,
		Categories:   c.Scanner.Categories,
		Extension:    c.Scanner.Extension,
		IndexFile:    c.Scanner.IndexFile,
	}
}

// ComponentsDir returns the components directory on disk.
func (c *Config) ComponentsDir() string {
	return filepath.Join(c.Paths.Root, c.Paths.Components)
}

// OpenCatalog builds the component catalog and the resource catalog for the
// configured project.
//
// Parameters:
//   - log: Destination for extraction misses and I/O failures
//
// Returns:
//   - *catalog.Catalog: Catalog over the components directory
//   - *catalog.Resources: Resource catalog over the project root
//   - error: If the example templates cannot be loaded
//
// The directories are not required to exist: a missing tree yields an empty catalog.
func (c *Config) OpenCatalog(log logger.Logger) (*catalog.Catalog, *catalog.Resources, error) {
	cat, err := catalog.New(os.DirFS(c.ComponentsDir()), c.CatalogOptions(), log)
	if err != nil {
		return nil, nil, err
	}

	tailwind := filepath.ToSlash(filepath.Clean(c.Paths.TailwindConfig))
	res := catalog.NewResources(cat, os.DirFS(c.Paths.Root), tailwind, log)
	return cat, res, nil
}

// NewLogger returns the server logger described by the log section.
//
// Returns:
//   - logger.Logger: JSON logger writing to stderr or the configured file
//   - io.Closer: Closes the log file; a no-op when logging to stderr
//   - error: If the log file cannot be opened
func (c *Config) NewLogger() (logger.Logger, io.Closer, error) {
	if c.Log.File == "" {
		return logger.NewMCPLogger(os.Stderr, c.Log.Silent), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.NewMCPLogger(f, c.Log.Silent), f, nil
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".jsonc":
		return configFormatJSONC
	default:
		return configFormatJSON
	}
}

// unmarshalConfig validates and decodes configuration data of the given format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format
//
// Returns:
//   - error: Any parse or schema validation error
//
// JSONC is reduced to plain JSON first. YAML documents are converted to JSON for
// schema validation and then decoded with yaml.v3 so YAML tags apply.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if doc == nil {
			return nil
		}
		asJSON, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if err := validateConfig(asJSON); err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case configFormatJSONC:
		data = jsonc.ToJSON(data)
		if err := validateConfig(data); err != nil {
			return err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSONC config file: %w", err)
		}
	default:
		if err := validateConfig(data); err != nil {
			return err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validateConfig checks a JSON document against the embedded configuration schema.
func validateConfig(data []byte) error {
	schema, err := templates.MagicEmbed.ReadFile(templates.ConfigSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config file: %s", strings.Join(problems, "; "))
}

// loadConfig loads the server configuration from a JSON, JSONC or YAML file and
// applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read, parsed or validated
//
// Configuration Priority:
//  1. PLANKS_MCP_CONFIG_FILE environment variable is checked if configPath is empty
//  2. Config file values (if a path is known)
//  3. Defaults for every empty value
//  4. PLANKS_ROOT overrides paths.root
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	config.applyDefaults()

	if root := os.Getenv(EnvRoot); root != "" {
		config.Paths.Root = root
	}

	return config, nil
}
