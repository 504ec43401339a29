package entry

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is a markdown link or image found in an entry.
type Link struct {
	Destination string
	Line        int // 1-indexed
}

// IsLocal reports whether the link points at a file relative to the entry
// rather than a URL, an anchor or an absolute path.
func (l Link) IsLocal() bool {
	dest := strings.TrimSpace(l.Destination)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// Target returns the link destination as a relative file path with any
// fragment or query removed and percent-escapes decoded.
func (l Link) Target() string {
	dest := strings.TrimSpace(l.Destination)
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if unescaped, err := url.PathUnescape(dest); err == nil {
		dest = unescaped
	}
	return dest
}

// ExtractLinks returns every link and image destination in content. Links
// inside code spans and blocks are not links to goldmark and are skipped.
func ExtractLinks(content string) []Link {
	var links []Link

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	lineStarts := computeLineStarts(content)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest []byte
		switch node := n.(type) {
		case *ast.Link:
			dest = node.Destination
		case *ast.Image:
			dest = node.Destination
		default:
			return ast.WalkContinue, nil
		}

		links = append(links, Link{
			Destination: string(dest),
			Line:        nodeLine(n, lineStarts),
		})
		return ast.WalkContinue, nil
	})

	return links
}

// nodeLine finds the line of an inline node through its nearest block
// ancestor, since inline nodes carry no line segments of their own.
func nodeLine(n ast.Node, lineStarts []int) int {
	for p := n; p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
			return offsetToLine(lineStarts, p.Lines().At(0).Start) + 1
		}
	}
	return 1
}

func computeLineStarts(content string) []int {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetToLine converts a byte offset to a 0-indexed line number.
func offsetToLine(lineStarts []int, offset int) int {
	for i := len(lineStarts) - 1; i >= 0; i-- {
		if lineStarts[i] <= offset {
			return i
		}
	}
	return 0
}
