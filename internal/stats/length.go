package stats

import (
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
)

// YearLength summarizes how much was written in one year.
type YearLength struct {
	Year int `json:"year"`
	// Entries counts parsed entries with a non-empty body.
	Entries    int     `json:"entries"`
	Words      int     `json:"words"`
	Lines      int     `json:"lines"`
	AvgWords   float64 `json:"avg_words"`
	AvgLines   float64 `json:"avg_lines"`
	Unparsable int     `json:"unparsable"`
	// HasData is false when the year has no entries with content. Its
	// averages are then zero rather than undefined.
	HasData bool `json:"has_data"`
}

// LengthReport covers every year directory present.
type LengthReport struct {
	Years  []YearLength `json:"years"`
	Totals YearLength   `json:"totals"`
}

// AnalyzeLength reports average words and lines per entry for each year
// directory present. Blank, boilerplate-only and unparsable entries are
// excluded from the averages.
func AnalyzeLength(root, class string, opts *Options) (*LengthReport, error) {
	log := opts.logger()
	parseOpts := opts.parseOptions()

	years, err := scan.Years(root, class)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int]*YearLength, len(years))
	for _, year := range years {
		byYear[year] = &YearLength{Year: year}
	}

	err = scan.Walk(root, class, opts.scanOptions(), func(r scan.Result) error {
		if !r.HasDate() || r.Error != nil || entry.IsBlank(r.Content) {
			return nil
		}
		yl := byYear[r.Year]
		if yl == nil {
			return nil
		}

		h, err := entry.Parse(r.Content, parseOpts)
		if err != nil {
			yl.Unparsable++
			log.Debug().Str("path", r.Path).Err(err).Msg("entry excluded from averages")
			return nil
		}
		if h.BodyEmpty {
			return nil
		}
		yl.Entries++
		yl.Words += h.Words
		yl.Lines += h.Lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &LengthReport{}
	for _, year := range years {
		yl := *byYear[year]
		yl.finish()
		report.Years = append(report.Years, yl)

		report.Totals.Entries += yl.Entries
		report.Totals.Words += yl.Words
		report.Totals.Lines += yl.Lines
		report.Totals.Unparsable += yl.Unparsable
	}
	report.Totals.finish()

	return report, nil
}

func (y *YearLength) finish() {
	y.HasData = y.Entries > 0
	if !y.HasData {
		y.AvgWords, y.AvgLines = 0, 0
		return
	}
	y.AvgWords = float64(y.Words) / float64(y.Entries)
	y.AvgLines = float64(y.Lines) / float64(y.Entries)
}
