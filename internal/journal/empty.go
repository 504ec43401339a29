package journal

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aidanlsb/journal/internal/atomicfile"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
)

// ErrNoEmptyDays is returned by FindEmptyDay when every candidate day has content.
var ErrNoEmptyDays = errors.New("no empty days found")

// EmptyDay is a blank entry chosen for transcription.
type EmptyDay struct {
	Date dates.Date `json:"date"`
	Path string     `json:"path"`
	// Candidates is how many blank days were eligible.
	Candidates int `json:"candidates"`
}

// FindEmptyDay picks a random blank day file of class, no later than today,
// and starts it with a heading and a "Transcribed on" note. year limits the
// search to one year; zero searches every year.
func FindEmptyDay(root, class string, year int, today dates.Date, rng *rand.Rand, opts *scan.Options) (*EmptyDay, error) {
	if year != 0 {
		if err := dates.ValidateYear(year); err != nil {
			return nil, err
		}
	}

	var blanks []scan.Result
	err := scan.Walk(root, class, opts, func(r scan.Result) error {
		if !r.HasDate() || r.Error != nil || r.Date.After(today) {
			return nil
		}
		if year != 0 && r.Date.Year != year {
			return nil
		}
		if entry.IsBlank(r.Content) {
			blanks = append(blanks, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(blanks) == 0 {
		if year != 0 {
			return nil, fmt.Errorf("%w for %d", ErrNoEmptyDays, year)
		}
		return nil, ErrNoEmptyDays
	}

	picked := blanks[rng.Intn(len(blanks))]
	if err := atomicfile.WriteFile(picked.Path, []byte(entry.TranscribedHeader(picked.Date, today))); err != nil {
		return nil, fmt.Errorf("start transcription: %w", err)
	}

	return &EmptyDay{Date: picked.Date, Path: picked.Path, Candidates: len(blanks)}, nil
}
