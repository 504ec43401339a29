// Package config handles jrn configuration: the global config.toml and the
// per-journal jrn.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/journal/internal/atomicfile"
)

// ConfigEnv names an environment variable that overrides the default config path.
const ConfigEnv = "JRN_CONFIG"

// DefaultEditorFallbacks are tried in order when no editor is configured.
var DefaultEditorFallbacks = []string{"cursor", "code"}

// Config represents the global jrn configuration.
type Config struct {
	// Root is the journal root. When empty the git toplevel of the working
	// directory is used, then the working directory itself.
	Root string `toml:"root"`

	// DefaultClass is the class used when --class is not given (default: "journal").
	DefaultClass string `toml:"default_class"`

	// Editor is the editor to use for opening files (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// EditorMode controls how the editor is launched: auto, terminal, or gui.
	EditorMode string `toml:"editor_mode"`

	// EditorFallbacks are tried in order when Editor and $EDITOR are unset.
	EditorFallbacks []string `toml:"editor_fallbacks"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for code blocks in "jrn show".
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadOrDefault(DefaultPath())
}

// LoadOrDefault loads the configuration at path, returning an empty config
// when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path from an optional
// --config override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path. $JRN_CONFIG wins, then
// ~/.config/jrn/config.toml (XDG style), then the OS-specific config dir.
func DefaultPath() string {
	if env := strings.TrimSpace(os.Getenv(ConfigEnv)); env != "" {
		return env
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "jrn", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "jrn", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault writes a commented default config to path if nothing exists
// there. It reports whether the file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	defaultConfig := `# jrn configuration

# Journal root. Defaults to the git toplevel of the working directory.
# root = "/path/to/journal"

# Class used when --class is not given.
# default_class = "journal"

# Editor for opening entries (defaults to $EDITOR)
# editor = "nvim"
#
# How to launch the editor:
#   auto     - detect common terminal editors
#   terminal - always run in the foreground with TTY attached
#   gui      - always run in the background (non-blocking)
# editor_mode = "auto"
#
# Tried in order when neither editor nor $EDITOR is set.
# editor_fallbacks = ["cursor", "code"]

# Optional UI accent color for headers and bars in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := atomicfile.WriteFile(path, []byte(defaultConfig)); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// GetEditorFallbacks returns the configured fallbacks or DefaultEditorFallbacks.
func (c *Config) GetEditorFallbacks() []string {
	if len(c.EditorFallbacks) > 0 {
		return c.EditorFallbacks
	}
	return DefaultEditorFallbacks
}

// GetDefaultClass returns DefaultClass, or "" to let callers apply the
// package default.
func (c *Config) GetDefaultClass() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.DefaultClass)
}
