// Package stats computes completion and length reports over a journal.
package stats

import (
	"github.com/rs/zerolog"

	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
	"github.com/aidanlsb/journal/internal/schedule"
)

// Thresholds are the completion ratios separating report tiers.
type Thresholds struct {
	OnTrack float64 `yaml:"on_track"`
	Behind  float64 `yaml:"behind"`
}

// DefaultThresholds are used when the journal config sets none.
var DefaultThresholds = Thresholds{OnTrack: 0.9, Behind: 0.5}

// Options tunes analysis.
type Options struct {
	// Logger receives per-file diagnostics. Nil discards them.
	Logger *zerolog.Logger
	// Schedule narrows the expected date set, e.g. to the days a class meets.
	Schedule schedule.Filter
	// ParseOptions are passed to the header parser.
	ParseOptions *entry.ParseOptions
	// Thresholds override DefaultThresholds when set.
	Thresholds *Thresholds
}

func (o *Options) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

func (o *Options) schedule() schedule.Filter {
	if o == nil {
		return nil
	}
	return o.Schedule
}

func (o *Options) parseOptions() *entry.ParseOptions {
	if o == nil {
		return nil
	}
	return o.ParseOptions
}

func (o *Options) thresholds() Thresholds {
	if o == nil || o.Thresholds == nil {
		return DefaultThresholds
	}
	return *o.Thresholds
}

func (o *Options) scanOptions() *scan.Options {
	var logger *zerolog.Logger
	if o != nil {
		logger = o.Logger
	}
	return &scan.Options{Logger: logger}
}
