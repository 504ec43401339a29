package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/testutil"
)

// resetGlobalFlags restores flag-bound globals after a test drives rootCmd
// through Execute.
func resetGlobalFlags(t *testing.T) {
	t.Helper()
	prevRootFlag, prevClassFlag, prevConfigPath, prevTodayFlag := rootFlag, classFlag, configPath, todayFlag
	prevJSON, prevVerbose := jsonOutput, verbose
	prevRoot, prevCfg, prevJournalCfg, prevToday := resolvedRoot, cfg, journalCfg, today
	t.Cleanup(func() {
		rootFlag, classFlag, configPath, todayFlag = prevRootFlag, prevClassFlag, prevConfigPath, prevTodayFlag
		jsonOutput, verbose = prevJSON, prevVerbose
		resolvedRoot, cfg, journalCfg, today = prevRoot, prevCfg, prevJournalCfg, prevToday
		rootCmd.SetArgs(nil)
	})
	rootFlag, classFlag, configPath, todayFlag = "", "", "", ""
	jsonOutput, verbose = false, false
}

func TestResolveRootOrder(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	prevGit := gitToplevel
	t.Cleanup(func() { gitToplevel = prevGit })

	tests := []struct {
		name string
		flag string
		cfg  *config.Config
		git  func(string) (string, error)
		want string
	}{
		{
			name: "flag wins",
			flag: "/tmp/flagged",
			cfg:  &config.Config{Root: "/tmp/configured"},
			want: "/tmp/flagged",
		},
		{
			name: "config root",
			cfg:  &config.Config{Root: "~/journal"},
			want: filepath.Join(home, "journal"),
		},
		{
			name: "git toplevel",
			cfg:  &config.Config{},
			git:  func(string) (string, error) { return "/src/notes", nil },
			want: "/src/notes",
		},
		{
			name: "working directory",
			git:  func(string) (string, error) { return "", errors.New("not a git repository") },
			want: wd,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gitToplevel = func(string) (string, error) { return "", errors.New("git not stubbed") }
			if tc.git != nil {
				gitToplevel = tc.git
			}
			got, err := resolveRoot(tc.flag, tc.cfg)
			if err != nil {
				t.Fatalf("resolveRoot: %v", err)
			}
			if got != tc.want {
				t.Errorf("resolveRoot = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveToday(t *testing.T) {
	prevNow := now
	t.Cleanup(func() { now = prevNow })
	now = func() time.Time { return time.Date(2024, time.March, 15, 23, 30, 0, 0, time.Local) }

	got, err := resolveToday("")
	if err != nil || got != dates.MustNew(2024, time.March, 15) {
		t.Errorf("resolveToday(\"\") = %s, %v", got, err)
	}
	got, err = resolveToday("2023-12-31")
	if err != nil || got != dates.MustNew(2023, time.December, 31) {
		t.Errorf("resolveToday(2023-12-31) = %s, %v", got, err)
	}
	if _, err := resolveToday("2024-02-30"); err == nil {
		t.Error("expected an error for February 30")
	}
}

func TestExecuteReportsMissingRoot(t *testing.T) {
	resetGlobalFlags(t)
	t.Setenv(config.ConfigEnv, filepath.Join(t.TempDir(), "config.toml"))
	missing := filepath.Join(t.TempDir(), "nope")

	rootCmd.SetArgs([]string{"--json", "--root", missing, "--today", "2024-03-15", "path"})
	var err error
	out := captureStdout(t, func() { err = Execute() })

	var coded *codedError
	if !errors.As(err, &coded) || coded.Code != ErrRootNotFound {
		t.Fatalf("Execute error = %v, want %s", err, ErrRootNotFound)
	}
	resp := decodeResponse(t, out)
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrRootNotFound {
		t.Errorf("unexpected envelope: %s", out)
	}
}

func TestExecuteRejectsBadToday(t *testing.T) {
	resetGlobalFlags(t)
	t.Setenv(config.ConfigEnv, filepath.Join(t.TempDir(), "config.toml"))

	rootCmd.SetArgs([]string{"--json", "--root", t.TempDir(), "--today", "15/03/2024", "path"})
	var err error
	out := captureStdout(t, func() { err = Execute() })

	var coded *codedError
	if !errors.As(err, &coded) || coded.Code != ErrInvalidInput {
		t.Fatalf("Execute error = %v, want %s", err, ErrInvalidInput)
	}
	if resp := decodeResponse(t, out); resp.Error == nil || resp.Error.Code != ErrInvalidInput {
		t.Errorf("unexpected envelope: %s", out)
	}
}

func TestExecuteUsesConfiguredRootAndClass(t *testing.T) {
	resetGlobalFlags(t)
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := config.SaveTo(cfgPath, &config.Config{Root: root, DefaultClass: "CS 101"}); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	t.Setenv(config.ConfigEnv, cfgPath)

	rootCmd.SetArgs([]string{"--json", "--today", "2024-03-15", "path", "today"})
	var err error
	out := captureStdout(t, func() { err = Execute() })
	if err != nil {
		t.Fatalf("Execute: %v; out=%s", err, out)
	}
	resp := decodeResponse(t, out)
	if resp.Data["file"] != "cs-101/2024/03-mar/15_Friday.md" {
		t.Errorf("file = %v", resp.Data["file"])
	}
	if resp.Data["root"] != root {
		t.Errorf("root = %v, want %s", resp.Data["root"], root)
	}
}

func TestSkipsJournalSetup(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{initCmd, true},
		{configCmd, true},
		{configInitCmd, true},
		{versionCmd, true},
		{analyzeCompletionCmd, false},
		{analyzeLengthCmd, false},
		{validateStructureCmd, false},
		{pathCmd, false},
	}
	for _, tc := range tests {
		t.Run(tc.cmd.CommandPath(), func(t *testing.T) {
			if got := skipsJournalSetup(tc.cmd); got != tc.want {
				t.Errorf("skipsJournalSetup = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExecuteAnalyzeCompletionResolvesJournal(t *testing.T) {
	resetGlobalFlags(t)
	t.Setenv(config.ConfigEnv, filepath.Join(t.TempDir(), "config.toml"))
	j := testutil.NewTestJournal(t).
		WithYear("", 2024, dates.MustNew(2024, time.March, 15), testutil.WrittenEntry).
		Build()

	rootCmd.SetArgs([]string{"--root", j.Path, "--today", "2024-03-15", "--json", "analyze", "completion"})
	var err error
	out := captureStdout(t, func() { err = Execute() })
	if err != nil {
		t.Fatalf("Execute: %v; out=%s", err, out)
	}

	resp := decodeResponse(t, out)
	years, _ := resp.Data["years"].([]interface{})
	if len(years) != 1 {
		t.Fatalf("expected one year, got %s", out)
	}
	y := years[0].(map[string]interface{})
	if y["expected"] != float64(75) || y["completed"] != float64(75) || y["tier"] != "complete" {
		t.Errorf("unexpected year report: %v", y)
	}
}
