// Package config loads and validates site generation configuration from
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength      = 200  // Page title
	MaxSectionLength    = 100  // Dropdown section name
	MaxPathLength       = 2048 // File paths
	MaxDateFormatLength = 50   // Date format string
)

// maxParentSearchDepth bounds the upward search for a project-local
// config/config.yaml when no explicit path is given.
const maxParentSearchDepth = 4

// configDirName is the subdirectory used under the user config directory
// and inside the project tree.
const configDirName = "md2site"

// Config holds all configuration for site generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Paths    PathsConfig    `yaml:"paths"`
	Assets   AssetsConfig   `yaml:"assets"`
	Dates    DatesConfig    `yaml:"dates"`
}

// DocumentConfig defines page-level options.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // Page and header title
	Dropdown string `yaml:"dropdown"` // Section rendered as a dropdown (empty = none)
}

// PathsConfig defines input and output locations.
type PathsConfig struct {
	Markdown string `yaml:"markdown"` // Source markdown file
	Logo     string `yaml:"logo"`     // Logo image embedded into the page
	Output   string `yaml:"output"`   // Output HTML file
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DatesConfig defines date token formatting.
type DatesConfig struct {
	Format string `yaml:"format"` // Token format or preset for {{currentDate}}
}

// Validate checks field lengths so a hostile config cannot blow up page
// output or error messages.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.dropdown", c.Document.Dropdown, MaxSectionLength); err != nil {
		return err
	}
	if err := validateFieldLength("paths.markdown", c.Paths.Markdown, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("paths.logo", c.Paths.Logo, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("paths.output", c.Paths.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("dates.format", c.Dates.Format, MaxDateFormatLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Title:    "Portfolio",
			Dropdown: "Related Documents",
		},
		Paths:  PathsConfig{Output: "index.html"},
		Assets: AssetsConfig{BasePath: ""},
		Dates:  DatesConfig{Format: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	return loadConfigFile(configPath)
}

// FindDefaultConfig looks for a config file in the standard locations:
// the user config directory, then config/config.yaml walking up a few
// parent directories. Returns ("", nil) when no file exists, so callers
// fall back to DefaultConfig without an error.
func FindDefaultConfig() (string, error) {
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(userConfigDir, configDirName, "config"+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", nil
	}
	for i := 0; i < maxParentSearchDepth; i++ {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "config", "config"+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// SearchedPaths lists the locations FindDefaultConfig checks, for hints.
func SearchedPaths() []string {
	paths := []string{}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, configDirName, "config.yaml"))
	}
	paths = append(paths, filepath.Join("config", "config.yaml"))
	return paths
}

// loadConfigFile reads, parses, and validates one config file.
func loadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
