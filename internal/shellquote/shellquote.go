// Package shellquote quotes values spliced into "sh -c" command lines.
package shellquote

import "strings"

// Quote wraps s in single quotes so the shell passes it through as one
// literal word. Embedded single quotes are closed, escaped and reopened.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
