// Package entry parses and renders journal entry files.
//
// An entry starts with a level-1 heading naming its date, optionally followed
// by a one-row markdown table of metadata and a "Transcribed on" note. Lines
// beginning with "## " are custom sub-headers. Whatever is left is the body.
//
//	# Friday, March 15, 2024
//
//	| device  | location     | weather    |
//	| ------- | ------------ | ---------- |
//	| luna    | Ontario, CA  | 40-55 F ☀️ |
//
//	## Gratitude
//	Walked to the lake.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
)

// ErrUnparsableHeader is wrapped by every UnparsableError.
var ErrUnparsableHeader = errors.New("unparsable header")

// UnparsableError reports why an entry's header could not be read.
type UnparsableError struct {
	Line   int // 1-indexed line examined, 0 when the file has no content
	Reason string
}

func (e *UnparsableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unparsable header (line %d): %s", e.Line, e.Reason)
	}
	return "unparsable header: " + e.Reason
}

func (e *UnparsableError) Unwrap() error {
	return ErrUnparsableHeader
}

const (
	headingPrefix     = "# "
	subHeaderPrefix   = "## "
	transcribedPrefix = "> Transcribed on:"
	transcribedLayout = "01/02/2006"
)

// Date token layouts accepted in the heading, most specific first. Go's day
// parsing accepts both "5" and "05" for the "2" verb.
var headingLayouts = []string{
	"Monday, January 2, 2006",
	"Mon, January 2, 2006",
	"January 2, 2006",
	dates.DateLayout,
}

// Header is the parsed form of an entry.
type Header struct {
	Date        dates.Date
	Weekday     string // weekday as written in the heading, full or abbreviated, "" if absent
	HeadingLine int

	Device   string
	Location string
	Weather  string
	Extra    map[string]string // other metadata table columns

	TranscribedOn dates.Date // zero unless a "Transcribed on" note is present

	CustomHeaders []string
	Body          []string // body lines, header and boilerplate removed
	BodyEmpty     bool
	Words         int
	Lines         int
}

// WeekdayMatches reports whether the weekday written in the heading agrees
// with the heading's date. Headings without a weekday always match.
func (h *Header) WeekdayMatches() bool {
	if h.Weekday == "" {
		return true
	}
	want := h.Date.Weekday().String()
	return strings.EqualFold(h.Weekday, want) || strings.EqualFold(h.Weekday, want[:3])
}

// ParseOptions tunes what the parser treats as template boilerplate.
type ParseOptions struct {
	// Boilerplate lines are ignored when deciding whether the body is empty.
	// Comparison is on trimmed text.
	Boilerplate []string
}

// IsBlank reports whether raw has no non-whitespace content. Scaffolded
// entries that were never written are blank.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// Parse reads an entry. It fails with an *UnparsableError when the first
// non-blank line is not a "# " heading holding a recognizable date.
func Parse(raw string, opts *ParseOptions) (*Header, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return nil, &UnparsableError{Reason: "entry is empty"}
	}

	first := strings.TrimSpace(lines[i])
	if !strings.HasPrefix(first, headingPrefix) {
		return nil, &UnparsableError{Line: i + 1, Reason: fmt.Sprintf("expected '# <date>' heading, got %q", truncate(first, 40))}
	}
	token := strings.TrimSpace(strings.TrimPrefix(first, headingPrefix))
	date, weekday, err := parseDateToken(token)
	if err != nil {
		return nil, &UnparsableError{Line: i + 1, Reason: err.Error()}
	}

	h := &Header{
		Date:        date,
		Weekday:     weekday,
		HeadingLine: i + 1,
		Extra:       make(map[string]string),
	}

	boilerplate := make(map[string]struct{})
	if opts != nil {
		for _, b := range opts.Boilerplate {
			if b = strings.TrimSpace(b); b != "" {
				boilerplate[b] = struct{}{}
			}
		}
	}

	inMetadata := true
	for j := i + 1; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		switch {
		case line == "":
			continue
		case inMetadata && strings.HasPrefix(line, "|"):
			j = h.parseTable(lines, j) - 1
			continue
		case strings.HasPrefix(line, transcribedPrefix):
			value := strings.TrimSpace(strings.TrimPrefix(line, transcribedPrefix))
			if t, err := time.Parse(transcribedLayout, value); err == nil {
				h.TranscribedOn = dates.FromTime(t)
			}
			continue
		case strings.HasPrefix(line, subHeaderPrefix):
			h.CustomHeaders = append(h.CustomHeaders, strings.TrimSpace(strings.TrimPrefix(line, subHeaderPrefix)))
			inMetadata = false
			continue
		case isBoilerplate(line, boilerplate):
			continue
		}

		inMetadata = false
		h.Body = append(h.Body, lines[j])
		h.Lines++
		h.Words += len(strings.Fields(line))
	}

	h.BodyEmpty = h.Lines == 0
	return h, nil
}

func parseDateToken(token string) (dates.Date, string, error) {
	if token == "" {
		return dates.Date{}, "", errors.New("heading has no date")
	}
	for _, layout := range headingLayouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		weekday := ""
		if strings.HasPrefix(layout, "Monday") {
			weekday, _, _ = strings.Cut(token, ",")
			weekday = strings.TrimSpace(weekday)
		}
		return dates.FromTime(t), weekday, nil
	}
	return dates.Date{}, "", fmt.Errorf("unrecognized date %q", truncate(token, 40))
}

// parseTable consumes consecutive table rows starting at lines[start] and
// returns the index of the first line after the table. The first row names
// the columns; the first non-separator row after it holds the values.
func (h *Header) parseTable(lines []string, start int) int {
	var names []string
	var values []string
	end := start
	for ; end < len(lines); end++ {
		line := strings.TrimSpace(lines[end])
		if !strings.HasPrefix(line, "|") {
			break
		}
		cells := splitRow(line)
		switch {
		case names == nil:
			names = cells
		case isSeparatorRow(cells):
		case values == nil:
			values = cells
		}
	}

	for k, name := range names {
		if k >= len(values) {
			break
		}
		value := values[k]
		switch strings.ToLower(name) {
		case "device":
			h.Device = value
		case "location":
			h.Location = value
		case "weather":
			h.Weather = value
		default:
			if name != "" {
				h.Extra[name] = value
			}
		}
	}
	return end
}

func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for k := range cells {
		cells[k] = strings.TrimSpace(cells[k])
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		c = strings.Trim(c, ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return len(cells) > 0
}

func isBoilerplate(line string, extra map[string]struct{}) bool {
	if line == "---" {
		return true
	}
	if strings.HasPrefix(line, "<!--") && strings.HasSuffix(line, "-->") {
		return true
	}
	_, ok := extra[line]
	return ok
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
