package stats

import (
	"errors"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
	"github.com/aidanlsb/journal/internal/schedule"
)

// Tier buckets a completion ratio.
type Tier string

const (
	TierComplete  Tier = "complete"
	TierOnTrack   Tier = "on_track"
	TierBehind    Tier = "behind"
	TierFarBehind Tier = "far_behind"
	// TierNone is used for years that expect no entries yet.
	TierNone Tier = "none"
)

// Label returns the tier as shown to people.
func (t Tier) Label() string {
	switch t {
	case TierComplete:
		return "complete"
	case TierOnTrack:
		return "on track"
	case TierBehind:
		return "behind"
	case TierFarBehind:
		return "far behind"
	default:
		return "nothing expected"
	}
}

// Classify returns the tier for ratio.
func (th Thresholds) Classify(ratio float64, expected int) Tier {
	switch {
	case expected == 0:
		return TierNone
	case ratio >= 1:
		return TierComplete
	case ratio >= th.OnTrack:
		return TierOnTrack
	case ratio >= th.Behind:
		return TierBehind
	default:
		return TierFarBehind
	}
}

// YearCompletion is the completion of one year.
type YearCompletion struct {
	Year int `json:"year"`
	// Expected counts the dates that should have an entry by today.
	Expected int `json:"expected"`
	// Completed counts expected dates with at least one entry whose body has
	// content beyond the header and boilerplate.
	Completed int `json:"completed"`
	// Missing counts expected dates with no file at all.
	Missing int `json:"missing"`
	// Unparsable counts entries on expected dates whose header could not be read.
	Unparsable int     `json:"unparsable"`
	Ratio      float64 `json:"ratio"`
	Tier       Tier    `json:"tier"`
	Current    bool    `json:"current"`
	// Remaining counts dates after today still to come this year. Zero for past years.
	Remaining int `json:"remaining"`
}

// CompletionReport covers every year present up to today.
type CompletionReport struct {
	Today     dates.Date       `json:"today"`
	Years     []YearCompletion `json:"years"`
	Expected  int              `json:"expected"`
	Completed int              `json:"completed"`
	Ratio     float64          `json:"ratio"`
}

// AnalyzeCompletion reports, for each year directory present, how many of
// the days that should have an entry by today actually have one with
// content. Years after today's year are skipped.
func AnalyzeCompletion(root, class string, today dates.Date, opts *Options) (*CompletionReport, error) {
	log := opts.logger()
	filter := opts.schedule()
	parseOpts := opts.parseOptions()
	thresholds := opts.thresholds()

	years, err := scan.Years(root, class)
	if err != nil {
		return nil, err
	}

	present := make(map[dates.Date]bool)
	completed := make(map[dates.Date]bool)
	unparsable := make(map[int]int)

	err = scan.Walk(root, class, opts.scanOptions(), func(r scan.Result) error {
		if !r.HasDate() || r.Date.After(today) {
			return nil
		}
		if filter != nil && !filter.Contains(r.Date) {
			return nil
		}
		present[r.Date] = true
		if r.Error != nil || entry.IsBlank(r.Content) {
			return nil
		}

		h, err := entry.Parse(r.Content, parseOpts)
		if err != nil {
			if errors.Is(err, entry.ErrUnparsableHeader) {
				unparsable[r.Date.Year]++
			}
			log.Debug().Str("path", r.Path).Err(err).Msg("entry not counted")
			return nil
		}
		if !h.BodyEmpty {
			completed[r.Date] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &CompletionReport{Today: today}
	for _, year := range years {
		if year > today.Year {
			continue
		}

		expected := schedule.Expected(year, today, filter)
		yc := YearCompletion{
			Year:       year,
			Expected:   len(expected),
			Unparsable: unparsable[year],
			Current:    year == today.Year,
		}
		for _, d := range expected {
			switch {
			case completed[d]:
				yc.Completed++
			case !present[d]:
				yc.Missing++
			}
		}
		if yc.Expected > 0 {
			yc.Ratio = float64(yc.Completed) / float64(yc.Expected)
		}
		yc.Tier = thresholds.Classify(yc.Ratio, yc.Expected)
		if yc.Current {
			fullYear := schedule.Expected(year, dates.LastOfYear(year), filter)
			yc.Remaining = len(fullYear) - yc.Expected
		}

		report.Years = append(report.Years, yc)
		report.Expected += yc.Expected
		report.Completed += yc.Completed
	}
	if report.Expected > 0 {
		report.Ratio = float64(report.Completed) / float64(report.Expected)
	}

	return report, nil
}
