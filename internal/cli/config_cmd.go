package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/config"
)

func configData(c *config.Config, path string, exists bool) map[string]interface{} {
	return map[string]interface{}{
		"config_path":      path,
		"exists":           exists,
		"root":             strings.TrimSpace(c.Root),
		"default_class":    strings.TrimSpace(c.DefaultClass),
		"editor":           strings.TrimSpace(c.Editor),
		"editor_mode":      strings.TrimSpace(c.EditorMode),
		"editor_fallbacks": c.EditorFallbacks,
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(c.UI.Accent),
			"code_theme": strings.TrimSpace(c.UI.CodeTheme),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath(configPath)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(loaded, path, exists), nil)
		return nil
	}

	if !exists {
		fmt.Printf("Config file does not exist: %s\n", path)
		fmt.Println("Run 'jrn config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", path)
	for _, kv := range [][2]string{
		{"root", loaded.Root},
		{"default_class", loaded.DefaultClass},
		{"editor", loaded.Editor},
		{"editor_mode", loaded.EditorMode},
		{"ui.accent", loaded.UI.Accent},
		{"ui.code_theme", loaded.UI.CodeTheme},
	} {
		if v := strings.TrimSpace(kv[1]); v != "" {
			fmt.Printf("%s: %s\n", kv[0], v)
		}
	}
	if len(loaded.EditorFallbacks) > 0 {
		fmt.Printf("editor_fallbacks: %s\n", strings.Join(loaded.EditorFallbacks, ", "))
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the global config.toml",
	Long: `Shows the global jrn settings: default root and class, editor and UI theme.

The file is --config, then $JRN_CONFIG, then ~/.config/jrn/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveConfigPath(configPath)
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": path,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Printf("Created config: %s\n", path)
		} else {
			fmt.Printf("Config already exists: %s\n", path)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
