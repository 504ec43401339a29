// Package schedule describes class meeting schedules. A class journal only
// expects entries on the days the class meets.
package schedule

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
)

// Filter narrows an expected date set.
type Filter interface {
	Contains(d dates.Date) bool
}

// Weekday is a time.Weekday that reads and writes as a lowercase English name.
type Weekday time.Weekday

// ParseWeekday parses a full English weekday name, ignoring case.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(name, wd.String()) {
			return Weekday(wd), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

func (w Weekday) String() string {
	return strings.ToLower(time.Weekday(w).String())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weekday) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseWeekday(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*w = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w Weekday) MarshalYAML() (interface{}, error) {
	return w.String(), nil
}

// ClassDay is one weekly meeting.
type ClassDay struct {
	Weekday    Weekday `yaml:"weekday"`
	StartTime  string  `yaml:"start_time,omitempty"` // HH:MM, 24-hour
	EndTime    string  `yaml:"end_time,omitempty"`
	Location   string  `yaml:"location,omitempty"`
	Instructor string  `yaml:"instructor,omitempty"`
}

// Schedule is the weekly meeting pattern of a class between two dates.
type Schedule struct {
	Class     string     `yaml:"class"`
	StartDate dates.Date `yaml:"start_date"`
	EndDate   dates.Date `yaml:"end_date"`
	Days      []ClassDay `yaml:"schedule"`
}

// Load reads a single schedule from a YAML file. JSON schedule files are
// valid YAML and load the same way.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that the schedule describes at least one meeting inside a
// non-empty date range.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.Class) == "" {
		return errors.New("schedule has no class")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return fmt.Errorf("schedule for %s needs start_date and end_date", s.Class)
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("schedule for %s ends (%s) before it starts (%s)", s.Class, s.EndDate, s.StartDate)
	}
	if len(s.Days) == 0 {
		return fmt.Errorf("schedule for %s has no class days", s.Class)
	}
	for _, day := range s.Days {
		for _, hm := range []string{day.StartTime, day.EndTime} {
			if hm == "" {
				continue
			}
			if _, err := time.Parse("15:04", hm); err != nil {
				return fmt.Errorf("schedule for %s: invalid time %q on %s", s.Class, hm, day.Weekday)
			}
		}
	}
	return nil
}

// MeetsOn reports whether the class meets on weekday wd.
func (s *Schedule) MeetsOn(wd time.Weekday) bool {
	for _, day := range s.Days {
		if time.Weekday(day.Weekday) == wd {
			return true
		}
	}
	return false
}

// Contains reports whether the class meets on d. A nil schedule contains
// every date.
func (s *Schedule) Contains(d dates.Date) bool {
	if s == nil {
		return true
	}
	if d.Before(s.StartDate) || d.After(s.EndDate) {
		return false
	}
	return s.MeetsOn(d.Weekday())
}

// Dates lists every meeting date from StartDate to EndDate inclusive.
func (s *Schedule) Dates() []dates.Date {
	var out []dates.Date
	for _, d := range dates.Range(s.StartDate, s.EndDate) {
		if s.MeetsOn(d.Weekday()) {
			out = append(out, d)
		}
	}
	return out
}

// DatesInYear lists the meeting dates that fall in year.
func (s *Schedule) DatesInYear(year int) []dates.Date {
	var out []dates.Date
	for _, d := range s.Dates() {
		if d.Year == year {
			out = append(out, d)
		}
	}
	return out
}

// Find returns the schedule whose class maps to the same directory as class,
// or nil.
func Find(schedules []Schedule, class string) *Schedule {
	dir := paths.ClassDir(class)
	for i := range schedules {
		if paths.ClassDir(schedules[i].Class) == dir {
			return &schedules[i]
		}
	}
	return nil
}

// Expected returns the dates of year an entry should exist for as of today:
// the elapsed days of the year, narrowed by f when f is non-nil.
func Expected(year int, today dates.Date, f Filter) []dates.Date {
	elapsed := dates.ElapsedInYear(year, today)
	if f == nil {
		return elapsed
	}
	out := elapsed[:0]
	for _, d := range elapsed {
		if f.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}
