// Package config loads and validates converter configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdmath/internal/fileutil"
	"github.com/alnah/go-mdmath/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrEmptyConfigName   = errors.New("config name cannot be empty")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidIdentifier = errors.New("invalid allow-list identifier")
	ErrPathTooLong       = errors.New("path exceeds maximum length")
)

// Field limits.
const (
	MaxIdentifierLength = 32   // Allow-list identifier
	MaxAllowListEntries = 64   // Allow-list size
	MaxPathLength       = 4096 // Preview output path
)

// Config holds all configuration for delimiter conversion.
type Config struct {
	// Mode selects promotion aggressiveness: "conservative" (default)
	// or "aggressive".
	Mode string `yaml:"mode"`

	// AllowList replaces the identifiers wrapped bare, e.g. (x) -> $x$.
	// Empty keeps the built-in default.
	AllowList []string `yaml:"allowList"`

	// Diff prints a diff of the changes to stderr after conversion.
	Diff bool `yaml:"diff"`

	// Preview writes an HTML preview of the converted document to this
	// path. Empty disables the preview.
	Preview string `yaml:"preview"`
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{Mode: "conservative"}
}

// Validate checks modes, identifiers and path lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually (e.g. API adapters, library users).
func (c *Config) Validate() error {
	switch c.Mode {
	case "", "conservative", "aggressive":
		// valid
	default:
		return fmt.Errorf("%w: %q (must be conservative or aggressive)", ErrInvalidMode, c.Mode)
	}

	if len(c.AllowList) > MaxAllowListEntries {
		return fmt.Errorf("%w: %d entries (max %d)", ErrInvalidIdentifier, len(c.AllowList), MaxAllowListEntries)
	}
	for i, id := range c.AllowList {
		if id == "" {
			return fmt.Errorf("%w: allowList[%d] is empty", ErrInvalidIdentifier, i)
		}
		if strings.ContainsAny(id, " \t\n$()") {
			return fmt.Errorf("%w: allowList[%d] %q", ErrInvalidIdentifier, i, id)
		}
		if len(id) > MaxIdentifierLength {
			return fmt.Errorf("%w: allowList[%d] (%d chars, max %d)", ErrInvalidIdentifier, i, len(id), MaxIdentifierLength)
		}
	}

	if len(c.Preview) > MaxPathLength {
		return fmt.Errorf("%w: preview (%d chars, max %d)", ErrPathTooLong, len(c.Preview), MaxPathLength)
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-mdmath/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

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
			userPath := filepath.Join(userConfigDir, "go-mdmath", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
