package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/check"
	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/fields"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/scan"
	"github.com/aidanlsb/journal/internal/schedule"
	"github.com/aidanlsb/journal/internal/stats"
)

// getJournalConfig returns the loaded jrn.yaml, or defaults when none was loaded.
func getJournalConfig() *config.JournalConfig {
	if journalCfg == nil {
		return config.DefaultJournalConfig()
	}
	return journalCfg
}

// scheduleFilter returns the configured schedule for class as a filter, or
// nil when the class has none.
func scheduleFilter(class string) schedule.Filter {
	s := getJournalConfig().Schedule(class)
	if s == nil {
		return nil
	}
	return s
}

func scanOptions() *scan.Options {
	return &scan.Options{Logger: &logger}
}

func checkOptions(class string) *check.Options {
	return &check.Options{
		Logger:       &logger,
		Schedule:     scheduleFilter(class),
		ParseOptions: getJournalConfig().ParseOptions(),
	}
}

func statsOptions(class string) *stats.Options {
	jc := getJournalConfig()
	return &stats.Options{
		Logger:       &logger,
		Schedule:     scheduleFilter(class),
		ParseOptions: jc.ParseOptions(),
		Thresholds:   jc.Thresholds(),
	}
}

func historyLog() *audit.Logger {
	return audit.New(getRoot(), getJournalConfig().History)
}

// recordWrite appends a write to the journal history. Failures are logged,
// never returned: the write itself already succeeded.
func recordWrite(op, path string, d dates.Date, extra map[string]interface{}) {
	e := audit.Entry{Operation: op, File: relToRoot(path), Extra: extra}
	if !d.IsZero() {
		e.Date = d.String()
	}
	if err := historyLog().Log(e); err != nil {
		logger.Warn().Err(err).Str("op", op).Msg("history not recorded")
	}
}

// commandContext returns cmd's context, or a background context when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// renderHeader builds the header for an entry on d: the configured template
// with device, location and weather filled in.
func renderHeader(ctx context.Context, d dates.Date, class string) (string, error) {
	jc := getJournalConfig()
	tmpl, err := entry.LoadTemplate(getRoot(), jc.HeaderTemplate)
	if err != nil {
		return "", err
	}
	vars := entry.NewVariables(d, today, paths.ClassDir(class))
	fields.New(jc, &logger).Fill(ctx, &vars)
	return entry.Render(vars, tmpl), nil
}

// parseYearArg parses a year argument in the supported range.
func parseYearArg(arg string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, err
	}
	if err := dates.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// relToRoot returns path relative to the journal root with forward slashes,
// or path unchanged when it is not under the root.
func relToRoot(path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(getRoot(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
