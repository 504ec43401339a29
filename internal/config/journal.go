package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/journal/internal/atomicfile"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/schedule"
	"github.com/aidanlsb/journal/internal/stats"
)

// JournalConfigFile is the per-journal config file at the journal root.
const JournalConfigFile = "jrn.yaml"

const defaultCommandTimeout = 10 * time.Second

// JournalConfig represents journal-level configuration from jrn.yaml.
type JournalConfig struct {
	// Devices maps hostnames to the label written in the header's device
	// column, e.g. "luna.local": "✨ luna".
	Devices map[string]string `yaml:"devices,omitempty"`

	// Location is a fixed location for new entries. LocationCommand, when
	// set, is run instead and its trimmed stdout used.
	Location        string `yaml:"location,omitempty"`
	LocationCommand string `yaml:"location_command,omitempty"`

	// Weather is a fixed weather value. WeatherCommand is run instead when
	// set; "{{location}}" in it is replaced with the shell-quoted location.
	Weather        string `yaml:"weather,omitempty"`
	WeatherCommand string `yaml:"weather_command,omitempty"`

	// CommandTimeout bounds location_command and weather_command, e.g. "5s".
	CommandTimeout string `yaml:"command_timeout,omitempty"`

	// HeaderTemplate is either a path to a template file relative to the
	// journal root or inline template content.
	HeaderTemplate string `yaml:"header_template,omitempty"`

	// Boilerplate lists template lines that do not count as writing.
	Boilerplate []string `yaml:"boilerplate,omitempty"`

	// Completion overrides the completion report tiers.
	Completion *stats.Thresholds `yaml:"completion,omitempty"`

	// Schedules restrict class journals to the days the class meets.
	Schedules []schedule.Schedule `yaml:"schedules,omitempty"`

	// History records every file jrn writes in .jrn/history.log.
	History bool `yaml:"history,omitempty"`
}

// DefaultJournalConfig returns the config used when jrn.yaml is absent.
func DefaultJournalConfig() *JournalConfig {
	return &JournalConfig{}
}

// LoadJournalConfig loads jrn.yaml from the journal root, returning the
// default config when the file does not exist.
func LoadJournalConfig(root string) (*JournalConfig, error) {
	configPath := filepath.Join(root, JournalConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultJournalConfig(), nil
		}
		return nil, fmt.Errorf("failed to read journal config %s: %w", configPath, err)
	}

	var config JournalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse journal config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid journal config %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate checks thresholds, timeouts and schedules.
func (jc *JournalConfig) Validate() error {
	if th := jc.Completion; th != nil {
		if th.Behind < 0 || th.OnTrack > 1 || th.Behind > th.OnTrack {
			return fmt.Errorf("completion thresholds must satisfy 0 <= behind <= on_track <= 1, got behind=%v on_track=%v", th.Behind, th.OnTrack)
		}
	}
	if jc.CommandTimeout != "" {
		if d, err := time.ParseDuration(jc.CommandTimeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid command_timeout %q", jc.CommandTimeout)
		}
	}
	seen := make(map[string]bool)
	for i := range jc.Schedules {
		s := &jc.Schedules[i]
		if err := s.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(s.Class))
		if seen[key] {
			return errors.New("duplicate schedule for class " + s.Class)
		}
		seen[key] = true
	}
	return nil
}

// GetCommandTimeout returns the timeout for header-field commands.
func (jc *JournalConfig) GetCommandTimeout() time.Duration {
	if jc == nil || jc.CommandTimeout == "" {
		return defaultCommandTimeout
	}
	d, err := time.ParseDuration(jc.CommandTimeout)
	if err != nil || d <= 0 {
		return defaultCommandTimeout
	}
	return d
}

// ParseOptions returns the header parser options the config implies.
func (jc *JournalConfig) ParseOptions() *entry.ParseOptions {
	if jc == nil {
		return nil
	}
	return &entry.ParseOptions{Boilerplate: jc.Boilerplate}
}

// Schedule returns the schedule configured for class, or nil.
func (jc *JournalConfig) Schedule(class string) *schedule.Schedule {
	if jc == nil {
		return nil
	}
	return schedule.Find(jc.Schedules, class)
}

// Thresholds returns the completion thresholds override, or nil.
func (jc *JournalConfig) Thresholds() *stats.Thresholds {
	if jc == nil {
		return nil
	}
	return jc.Completion
}

// CreateDefaultJournalConfig writes a commented jrn.yaml to root unless one
// exists. It reports whether the file was written.
func CreateDefaultJournalConfig(root string) (bool, error) {
	configPath := filepath.Join(root, JournalConfigFile)

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	defaultConfig := `# jrn journal configuration

# Hostname to device label for the header's device column.
# devices:
#   luna.local: "✨ luna"

# Location for new entries: a fixed value or a command printing one.
# location: "Ontario, CA"
# location_command: "cat ~/.location"

# Weather for new entries. {{location}} is replaced with the quoted location.
# weather: "sunny"
# weather_command: "my-weather {{location}}"
# command_timeout: 10s

# Header for new entries: inline content or a file relative to this directory.
# header_template: templates/header.md

# Template lines that do not count as writing.
# boilerplate:
#   - "What went well today?"

# Completion report tiers.
# completion:
#   on_track: 0.9
#   behind: 0.5

# Record files jrn writes in .jrn/history.log ('jrn history' shows them).
# history: true

# Class schedules: only meeting days expect an entry.
# schedules:
#   - class: CS101
#     start_date: 2024-01-15
#     end_date: 2024-05-03
#     schedule:
#       - weekday: monday
#         start_time: "10:00"
#         end_time: "11:15"
#         location: Room 204
`

	if err := atomicfile.WriteFile(configPath, []byte(defaultConfig)); err != nil {
		return false, fmt.Errorf("failed to write journal config: %w", err)
	}

	return true, nil
}
