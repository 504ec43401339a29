package entry

import (
	"strings"

	"github.com/aidanlsb/journal/internal/dates"
)

// DefaultHeaderTemplate is the header written into new entries when the
// journal config does not set header_template. Existing journals depend on
// the exact column padding.
const DefaultHeaderTemplate = "# {{date_friendly}}\n" +
	"\n" +
	"| device  | location     | weather    |\n" +
	"| ------- | ------------ | ---------- |\n" +
	"| {{device}} | {{location}} | {{weather}} |\n"

// Variables holds the values substituted into a header template.
type Variables struct {
	Date     dates.Date
	Today    dates.Date
	Class    string
	Device   string
	Location string
	Weather  string
	// Fields are extra {{field.X}} values.
	Fields map[string]string
}

// NewVariables returns Variables for an entry on date d written today.
func NewVariables(d, today dates.Date, class string) Variables {
	return Variables{Date: d, Today: today, Class: class, Fields: make(map[string]string)}
}

// Render substitutes variables in tmpl. Variables use {{name}} syntax and
// unknown names are left as-is. Escaped \{{name}} renders as literal {{name}}.
// An empty tmpl renders DefaultHeaderTemplate.
func Render(vars Variables, tmpl string) string {
	if tmpl == "" {
		tmpl = DefaultHeaderTemplate
	}

	tmpl = strings.ReplaceAll(tmpl, "\\{{", "«JRN_ESC_OPEN»")
	tmpl = strings.ReplaceAll(tmpl, "\\}}", "«JRN_ESC_CLOSE»")

	d := vars.Date
	replacements := map[string]string{
		"{{date}}":          d.String(),
		"{{date_friendly}}": d.Friendly(),
		"{{year}}":          d.Time().Format("2006"),
		"{{month}}":         d.Time().Format("01"),
		"{{month_name}}":    d.Month.String(),
		"{{day}}":           d.Time().Format("02"),
		"{{weekday}}":       d.Weekday().String(),
		"{{class}}":         vars.Class,
		"{{device}}":        vars.Device,
		"{{location}}":      vars.Location,
		"{{weather}}":       vars.Weather,
	}
	if !vars.Today.IsZero() {
		replacements["{{today}}"] = vars.Today.String()
	}

	for placeholder, value := range replacements {
		tmpl = strings.ReplaceAll(tmpl, placeholder, value)
	}
	for name, value := range vars.Fields {
		tmpl = strings.ReplaceAll(tmpl, "{{field."+name+"}}", value)
	}

	tmpl = strings.ReplaceAll(tmpl, "«JRN_ESC_OPEN»", "{{")
	tmpl = strings.ReplaceAll(tmpl, "«JRN_ESC_CLOSE»", "}}")
	return tmpl
}

// TranscribedHeader is the header prepended to a back-filled entry: the
// date heading plus a note recording when it was written.
func TranscribedHeader(d, today dates.Date) string {
	return "# " + d.Friendly() + "\n\n" + transcribedPrefix + " " + today.Time().Format(transcribedLayout) + "\n\n"
}

// CustomHeader returns the text appended by "add-header".
func CustomHeader(text string) string {
	return "\n" + subHeaderPrefix + strings.TrimSpace(text) + "\n"
}
