// Package editor opens journal entries in the user's editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/shellquote"
	"github.com/aidanlsb/journal/internal/ui"
)

// ErrNoEditor is returned when no configured or fallback editor could be launched.
var ErrNoEditor = errors.New("no editor available")

type editorMode int

const (
	editorModeAuto editorMode = iota
	editorModeTerminal
	editorModeGUI
)

// Editors that need the terminal. Anything else is assumed to open its own window.
var terminalEditors = map[string]bool{
	"vi": true, "vim": true, "nvim": true, "hx": true, "helix": true,
	"nano": true, "pico": true, "micro": true, "kak": true, "emacs": true,
	"joe": true, "ne": true, "mg": true, "ed": true,
}

func parseEditorMode(cfg *config.Config) editorMode {
	if cfg == nil {
		return editorModeAuto
	}
	switch strings.ToLower(strings.TrimSpace(cfg.EditorMode)) {
	case "terminal", "tui", "tty", "foreground":
		return editorModeTerminal
	case "gui", "background", "bg":
		return editorModeGUI
	default:
		return editorModeAuto
	}
}

// editorCommandName returns the program name of an editor command line,
// e.g. "nvim" for "nvim -u init.lua".
func editorCommandName(editor string) string {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return ""
	}

	var first string
	if q := editor[0]; q == '"' || q == '\'' {
		if end := strings.IndexByte(editor[1:], q); end >= 0 {
			first = editor[1 : end+1]
		} else {
			first = editor[1:]
		}
	} else {
		first = strings.Fields(editor)[0]
	}
	return filepath.Base(first)
}

func isTerminalEditor(editor string) bool {
	return terminalEditors[editorCommandName(editor)]
}

// launcher builds and starts editor processes. Fields are replaceable in tests.
type launcher struct {
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
	run      func(*exec.Cmd) error
	isTTY    func() bool
}

var defaultLauncher = launcher{
	lookPath: exec.LookPath,
	start:    func(c *exec.Cmd) error { return c.Start() },
	run:      func(c *exec.Cmd) error { return c.Run() },
	isTTY:    func() bool { return ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout) },
}

func buildCommand(editor, filePath string) *exec.Cmd {
	// Compound commands like "open -a Cursor" go through the shell.
	if strings.ContainsAny(strings.TrimSpace(editor), " \t") {
		return exec.Command("sh", "-c", editor+" "+shellquote.Quote(filePath))
	}
	return exec.Command(editor, filePath)
}

// candidates lists the editors to try: the configured one, or else every
// fallback found on PATH.
func (l launcher) candidates(cfg *config.Config) []string {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if editor := strings.TrimSpace(cfg.GetEditor()); editor != "" {
		return []string{editor}
	}
	var out []string
	for _, fb := range cfg.GetEditorFallbacks() {
		if _, err := l.lookPath(editorCommandName(fb)); err == nil {
			out = append(out, fb)
		}
	}
	return out
}

func (l launcher) open(cfg *config.Config, filePath string) (string, error) {
	mode := parseEditorMode(cfg)
	var errs []error
	for _, editor := range l.candidates(cfg) {
		cmd := buildCommand(editor, filePath)

		foreground := mode == editorModeTerminal ||
			(mode == editorModeAuto && isTerminalEditor(editor) && l.isTTY())
		var err error
		if foreground {
			cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
			err = l.run(cmd)
		} else {
			err = l.start(cmd)
		}
		if err == nil {
			return editor, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", editor, err))
	}
	if len(errs) == 0 {
		return "", ErrNoEditor
	}
	return "", fmt.Errorf("%w: %w", ErrNoEditor, errors.Join(errs...))
}

// OpenInEditor opens filePath in the configured editor, or the first
// fallback editor found on PATH. Terminal editors run in the foreground
// with the TTY attached; GUI editors are started in the background. It
// returns the editor command used.
func OpenInEditor(cfg *config.Config, filePath string) (string, error) {
	return defaultLauncher.open(cfg, filePath)
}
