package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aidanlsb/journal/internal/ui"
)

// shouldPromptForConfirm reports whether a human is at the terminal. Scripts
// and JSON callers opted in with a flag and get no prompt.
func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return ui.IsTerminal(os.Stdout) && ui.IsTerminal(os.Stdin)
}

func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	if message == "" {
		message = "Apply changes?"
	}
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
