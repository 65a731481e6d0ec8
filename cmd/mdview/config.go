package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdview "github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds CLI configuration loaded from YAML.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig mirrors the renderer options.
type RenderConfig struct {
	SyntaxHighlighting  bool `yaml:"syntaxHighlighting"`
	CollapsibleSections bool `yaml:"collapsibleSections"`
	CopyButtons         bool `yaml:"copyButtons"`
	TableOfContents     bool `yaml:"tableOfContents"`
	MaxContentLength    int  `yaml:"maxContentLength"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = beside input)
}

// DefaultConfig returns the renderer's documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			SyntaxHighlighting:  true,
			CollapsibleSections: true,
			CopyButtons:         true,
			TableOfContents:     true,
			MaxContentLength:    mdview.DefaultMaxContentLength,
		},
	}
}

// LoadConfig loads configuration from a file path or config name. A string
// containing a path separator is treated as a path; otherwise it is searched
// as a name in standard locations. Unknown keys are rejected; absent keys
// keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

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
	return cfg, nil
}

// resolveConfigPath searches for a config file by name, trying .yaml then
// .yml, in the current directory then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdview", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// isFilePath returns true if the string looks like a file path rather than a
// bare config name.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// fileExists returns true if path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
