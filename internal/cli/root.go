// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/logging"
	"github.com/aidanlsb/journal/internal/ui"
)

var (
	// Global flags
	rootFlag   string
	classFlag  string
	configPath string
	todayFlag  string
	verbose    bool

	// Resolved values
	resolvedRoot       string
	resolvedConfigPath string
	cfg                *config.Config
	journalCfg         *config.JournalConfig
	today              dates.Date
	logger             = zerolog.Nop()
)

// gitToplevel returns the work tree root containing dir. It is a variable so
// tests can run without git.
var gitToplevel = func(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// now is the clock used when --today is not given.
var now = time.Now

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jrn",
	Short: "jrn - daily journal maintenance",
	Long: `jrn keeps a plain-markdown daily journal in shape.

Entries live at <root>/<class>/YYYY/MM-mon/DD_Weekday.md. jrn scaffolds years,
starts today's entry, validates the layout and headers, and reports how
complete and how long your writing has been.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(os.Stderr, verbose)

		if skipsJournalSetup(cmd) {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return &codedError{Code: ErrConfigInvalid, Err: fmt.Errorf("failed to load config: %w", err)}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		today, err = resolveToday(todayFlag)
		if err != nil {
			return &codedError{Code: ErrInvalidInput, Err: err, Suggestion: "Use --today YYYY-MM-DD"}
		}

		resolvedRoot, err = resolveRoot(rootFlag, cfg)
		if err != nil {
			return &codedError{Code: ErrRootNotFound, Err: err}
		}

		info, err := os.Stat(resolvedRoot)
		if err != nil || !info.IsDir() {
			return &codedError{
				Code:       ErrRootNotFound,
				Err:        fmt.Errorf("journal root not found: %s", resolvedRoot),
				Suggestion: fmt.Sprintf("Run 'jrn init %s' to create it, or pass --root", resolvedRoot),
			}
		}

		journalCfg, err = config.LoadJournalConfig(resolvedRoot)
		if err != nil {
			return &codedError{Code: ErrConfigInvalid, Err: err, Suggestion: "Fix " + config.JournalConfigFile + " at the journal root"}
		}

		logger.Debug().
			Str("root", resolvedRoot).
			Str("class", getClass()).
			Str("today", today.String()).
			Msg("resolved journal")
		return nil
	},
}

// skipsJournalSetup reports whether cmd belongs to a top-level command that
// runs without a resolved journal. Nested commands are matched by their
// top-level ancestor, so "analyze completion" still resolves the journal.
func skipsJournalSetup(cmd *cobra.Command) bool {
	root := cmd.Root()
	top := cmd
	for top.Parent() != nil && top.Parent() != root {
		top = top.Parent()
	}
	if top.Parent() != root {
		return false
	}
	switch top.Name() {
	case "init", "config", "completion", "help", "version":
		return true
	}
	return false
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil || errors.Is(err, errIssuesFound) || errors.Is(err, errHandled) {
		return err
	}

	var coded *codedError
	if jsonOutput {
		if errors.As(err, &coded) {
			outputError(coded.Code, coded.Err.Error(), nil, coded.Suggestion)
		} else {
			outputError(ErrInternal, err.Error(), nil, "")
		}
		return err
	}

	fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	if errors.As(err, &coded) && coded.Suggestion != "" {
		fmt.Fprintln(os.Stderr, ui.Hint(coded.Suggestion))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Journal root directory")
	rootCmd.PersistentFlags().StringVar(&classFlag, "class", "", "Class (top-level journal directory) to operate on")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Override today's date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log per-file diagnostics to stderr")
}

// getRoot returns the resolved journal root.
func getRoot() string {
	return resolvedRoot
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getClass returns the class selected by --class, then the configured
// default class.
func getClass() string {
	if c := strings.TrimSpace(classFlag); c != "" {
		return c
	}
	return cfg.GetDefaultClass()
}

// resolveRoot picks the journal root: --root, then the configured root,
// then the git work tree containing the working directory, then the working
// directory itself.
func resolveRoot(flag string, c *config.Config) (string, error) {
	if root := strings.TrimSpace(flag); root != "" {
		return filepath.Abs(expandHome(root))
	}
	if c != nil && strings.TrimSpace(c.Root) != "" {
		return filepath.Abs(expandHome(strings.TrimSpace(c.Root)))
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	if top, err := gitToplevel(wd); err == nil && top != "" {
		return top, nil
	}
	return wd, nil
}

func resolveToday(flag string) (dates.Date, error) {
	if strings.TrimSpace(flag) == "" {
		return dates.FromTime(now()), nil
	}
	return dates.ParseDate(flag)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
