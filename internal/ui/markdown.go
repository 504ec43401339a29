package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

const defaultCodeTheme = "monokai"

var markdownCodeTheme = defaultCodeTheme

// ConfigureMarkdownCodeTheme sets the syntax theme for fenced code blocks.
// Unknown themes fall back to the default.
func ConfigureMarkdownCodeTheme(theme string) {
	name := strings.ToLower(strings.TrimSpace(theme))
	if _, ok := styles.Registry[name]; !ok {
		name = defaultCodeTheme
	}
	markdownCodeTheme = name
}

// RenderMarkdown renders an entry for terminal display. The metadata table
// and "Transcribed on" note get muted styling so the body stands out.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(journalMarkdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// journalMarkdownStyle styles entries: the date heading underlined in the
// accent color, custom sub-headers as section markers, and the metadata table,
// quotes and code muted.
func journalMarkdownStyle() ansi.StyleConfig {
	muted := mdStringPtr("8")
	var accent *string
	if color, ok := AccentColor(); ok {
		accent = mdStringPtr(color)
	}
	mutedBlock := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: muted}}
	on := mdBoolPtr(true)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{BlockPrefix: "\n", BlockSuffix: "\n"},
			Margin:         mdUintPtr(MarkdownRenderMargin),
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{BlockSuffix: "\n", Color: accent, Bold: on},
		},
		H1: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Underline: on}},
		H2: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "§ "}},
		H3: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "· "}},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: muted, Italic: on},
			Indent:         mdUintPtr(1),
			IndentToken:    mdStringPtr("┃ "),
		},
		List:           ansi.StyleList{LevelIndent: 2},
		Item:           ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration:    ansi.StylePrimitive{BlockPrefix: ". "},
		Task:           ansi.StyleTask{Ticked: "[✓] ", Unticked: "[ ] "},
		Emph:           ansi.StylePrimitive{Italic: on},
		Strong:         ansi.StylePrimitive{Bold: on},
		Strikethrough:  ansi.StylePrimitive{CrossedOut: on},
		HorizontalRule: ansi.StylePrimitive{Color: muted, Format: "\n~~~~~~~~\n"},
		Link:           ansi.StylePrimitive{Color: muted, Underline: on},
		LinkText:       ansi.StylePrimitive{Bold: on},
		Image:          ansi.StylePrimitive{Underline: on},
		ImageText:      ansi.StylePrimitive{Color: muted, Format: "[photo: {{.text}}]"},
		Code:           mutedBlock,
		CodeBlock:      ansi.StyleCodeBlock{StyleBlock: mutedBlock, Theme: markdownCodeTheme},
		Table: ansi.StyleTable{
			StyleBlock:      mutedBlock,
			CenterSeparator: mdStringPtr("┼"),
			ColumnSeparator: mdStringPtr("│"),
			RowSeparator:    mdStringPtr("─"),
		},
	}
}

func mdBoolPtr(v bool) *bool { return &v }

func mdStringPtr(v string) *string { return &v }

func mdUintPtr(v uint) *uint { return &v }
