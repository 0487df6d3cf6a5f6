// Package config loads the stencil.toml installer configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/stencilworks/stencil/internal/install"
	"github.com/stencilworks/stencil/internal/messages"
)

// FileName is the project-level config file name.
const FileName = "stencil.toml"

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to distinguish validation problems
// from other Load failure modes.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

// Installer is one [[installers]] entry. Array order in the file determines
// run and output ordering.
type Installer struct {
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

// Options is the [options] table.
type Options struct {
	// SkipMessage suppresses the deferred install status message.
	SkipMessage bool `toml:"skip_message"`
}

// Config is the parsed stencil.toml.
type Config struct {
	Installers []Installer `toml:"installers"`
	Options    Options     `toml:"options"`
}

// Registry builds the ordered installer registry from the parsed entries.
func (c *Config) Registry() *install.Registry {
	r := install.NewRegistry()
	for _, i := range c.Installers {
		r.Set(i.Name, i.Enabled)
	}
	return r
}

// Load reads the project config from root, falling back to the user-level
// config when the project file is absent.
func Load(root string) (*Config, error) {
	if root == "" {
		return nil, errors.New(messages.ConfigRootRequired)
	}
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		fallback, homeErr := UserConfigPath()
		if homeErr != nil {
			return nil, homeErr
		}
		if fallbackData, fallbackErr := os.ReadFile(fallback); fallbackErr == nil {
			return Parse(fallbackData, fallback)
		}
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// UserConfigPath returns the user-level fallback config path.
func UserConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "stencil", FileName), nil
}

// Parse parses and validates config TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// validate checks the installer entries. source is used in error messages.
func (c *Config) validate(source string) error {
	seen := make(map[string]int, len(c.Installers))
	for i, inst := range c.Installers {
		if inst.Name == "" {
			return fmt.Errorf(messages.ConfigInstallerNameRequiredFmt, source, i)
		}
		if prev, ok := seen[inst.Name]; ok {
			return fmt.Errorf(messages.ConfigInstallerNameDuplicateFmt, source, i, inst.Name, prev)
		}
		seen[inst.Name] = i
	}
	return nil
}

// DefaultTOML is the starter config written by `stencil init`.
const DefaultTOML = `# Stencil installer configuration.
#
# Each [[installers]] entry names a package manager; entries run in file
# order. Disabled entries are reported as skipped instead of run.

[[installers]]
name = "npm"
enabled = true

[options]
# Suppress the install status message.
skip_message = false
`
