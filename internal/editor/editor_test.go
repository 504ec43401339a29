package editor

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/aidanlsb/journal/internal/config"
)

func TestEditorCommandName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "vim", want: "vim"},
		{name: "with args", input: "nvim -u ~/.config/nvim/init.lua", want: "nvim"},
		{name: "extra spaces", input: "  hx   ", want: "hx"},
		{name: "quoted path", input: "\"/Applications/Helix.app/Contents/MacOS/hx\" --config foo", want: "hx"},
		{name: "open app", input: "open -a Cursor", want: "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := editorCommandName(tt.input); got != tt.want {
				t.Fatalf("editorCommandName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTerminalEditor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "vim", input: "vim", want: true},
		{name: "nvim args", input: "nvim -u ~/.config/nvim/init.lua", want: true},
		{name: "helix", input: "hx", want: true},
		{name: "open app", input: "open -a VimR", want: false},
		{name: "gui editor", input: "code", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTerminalEditor(tt.input); got != tt.want {
				t.Fatalf("isTerminalEditor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEditorMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want editorMode
	}{
		{name: "default", mode: "", want: editorModeAuto},
		{name: "auto", mode: "auto", want: editorModeAuto},
		{name: "terminal", mode: "terminal", want: editorModeTerminal},
		{name: "terminal alias", mode: "tui", want: editorModeTerminal},
		{name: "gui", mode: "gui", want: editorModeGUI},
		{name: "background alias", mode: "background", want: editorModeGUI},
		{name: "unknown", mode: "whatever", want: editorModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{EditorMode: tt.mode}
			if got := parseEditorMode(cfg); got != tt.want {
				t.Fatalf("parseEditorMode(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

type recorder struct {
	started  [][]string
	ran      [][]string
	failFor  map[string]bool
	onPath   map[string]bool
	terminal bool
}

func (r *recorder) launcher() launcher {
	return launcher{
		lookPath: func(name string) (string, error) {
			if r.onPath[name] {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		start: func(c *exec.Cmd) error {
			r.started = append(r.started, c.Args)
			if r.failFor[c.Args[0]] {
				return errors.New("launch failed")
			}
			return nil
		},
		run: func(c *exec.Cmd) error {
			r.ran = append(r.ran, c.Args)
			return nil
		},
		isTTY: func() bool { return r.terminal },
	}
}

func TestOpenFallbacks(t *testing.T) {
	t.Setenv("EDITOR", "")
	r := &recorder{
		onPath:  map[string]bool{"cursor": true, "code": true},
		failFor: map[string]bool{"cursor": true},
	}

	used, err := r.launcher().open(&config.Config{}, "/j/15_Friday.md")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if used != "code" {
		t.Errorf("used %q, want code", used)
	}
	want := [][]string{{"cursor", "/j/15_Friday.md"}, {"code", "/j/15_Friday.md"}}
	if !reflect.DeepEqual(r.started, want) {
		t.Errorf("started = %v, want %v", r.started, want)
	}
}

func TestOpenNoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	r := &recorder{}
	if _, err := r.launcher().open(&config.Config{}, "/j/x.md"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("expected ErrNoEditor, got %v", err)
	}
}

func TestOpenTerminalEditorRunsInForeground(t *testing.T) {
	r := &recorder{terminal: true}
	if _, err := r.launcher().open(&config.Config{Editor: "nvim"}, "/j/x.md"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(r.ran) != 1 || len(r.started) != 0 {
		t.Errorf("ran = %v, started = %v", r.ran, r.started)
	}

	// Without a TTY auto mode starts it in the background.
	r = &recorder{}
	if _, err := r.launcher().open(&config.Config{Editor: "nvim"}, "/j/x.md"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(r.ran) != 0 || len(r.started) != 1 {
		t.Errorf("ran = %v, started = %v", r.ran, r.started)
	}
}

func TestBuildCommandCompound(t *testing.T) {
	cmd := buildCommand("open -a Cursor", "/j/it's.md")
	want := []string{"sh", "-c", `open -a Cursor '/j/it'\''s.md'`}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args = %q, want %q", cmd.Args, want)
	}
}
