package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/journal/internal/config"
)

// hyperlinkEnabled caches whether we should emit hyperlinks.
// Hyperlinks are only emitted to TTY terminals, not JSON output or pipes.
var hyperlinkEnabled *bool

// shouldEmitHyperlinks returns true if we should emit OSC 8 hyperlinks.
func shouldEmitHyperlinks() bool {
	if hyperlinkEnabled != nil {
		return *hyperlinkEnabled
	}

	enabled := !jsonOutput && isatty.IsTerminal(os.Stdout.Fd())
	hyperlinkEnabled = &enabled
	return enabled
}

// buildEditorURL builds the appropriate URL for the configured editor.
func buildEditorURL(cfg *config.Config, absPath string, line int) string {
	editor := ""
	if cfg != nil {
		editor = cfg.GetEditor()
	}
	if line < 1 {
		line = 1
	}

	// Normalize editor name (handle "open -a Cursor" style commands)
	editorLower := strings.ToLower(editor)

	switch {
	case strings.Contains(editorLower, "cursor"):
		return fmt.Sprintf("cursor://file%s:%d:1", absPath, line)

	case strings.Contains(editorLower, "code") || strings.Contains(editorLower, "vscode"):
		return fmt.Sprintf("vscode://file%s:%d:1", absPath, line)

	case strings.Contains(editorLower, "subl") || strings.Contains(editorLower, "sublime"):
		return fmt.Sprintf("subl://open?url=file://%s&line=%d", absPath, line)

	case strings.Contains(editorLower, "zed"):
		return fmt.Sprintf("zed://file%s:%d", absPath, line)

	default:
		// Terminal editors have no URL scheme for line numbers.
		return fmt.Sprintf("file://%s", absPath)
	}
}

// formatLocation renders a root-relative "path:line" for an issue, linked
// to the file in the user's editor when the terminal supports it. Line 0
// prints the path alone.
func formatLocation(absPath string, line int, render func(string) string) string {
	location := relToRoot(absPath)
	if line > 0 {
		location = fmt.Sprintf("%s:%d", location, line)
	}
	if render == nil {
		render = func(s string) string { return s }
	}

	if absPath == "" || !shouldEmitHyperlinks() {
		return render(location)
	}

	url := buildEditorURL(getConfig(), absPath, line)
	return render(fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, location))
}
