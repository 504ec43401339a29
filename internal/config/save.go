package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/journal/internal/atomicfile"
)

type persistedConfig struct {
	Root            *string              `toml:"root,omitempty"`
	DefaultClass    *string              `toml:"default_class,omitempty"`
	Editor          *string              `toml:"editor,omitempty"`
	EditorMode      *string              `toml:"editor_mode,omitempty"`
	EditorFallbacks []string             `toml:"editor_fallbacks,omitempty"`
	UI              *persistedUISettings `toml:"ui,omitempty"`
}

type persistedUISettings struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the global config to a specific path atomically. Unset
// values are omitted so the file stays short.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		Root:            nonEmptyPtr(cfg.Root),
		DefaultClass:    nonEmptyPtr(cfg.DefaultClass),
		Editor:          nonEmptyPtr(cfg.Editor),
		EditorMode:      nonEmptyPtr(cfg.EditorMode),
		EditorFallbacks: cfg.EditorFallbacks,
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUISettings{
			Accent:    accent,
			CodeTheme: codeTheme,
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
