package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/paths"
)

var initSetDefault bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a journal",
	Long: `Prepares a journal root at path (default: the current directory).

Creates:
  - jrn.yaml    (journal configuration: devices, header, schedules)
  - journal/    (the default class directory)

With --set-default, the root is also saved to the global config so jrn
finds it from any directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		root, err := filepath.Abs(expandHome(path))
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		if err := os.MkdirAll(filepath.Join(root, paths.DefaultClass), 0o755); err != nil {
			return handleError(ErrFileWriteError, fmt.Errorf("failed to create journal directory: %w", err), "")
		}

		createdConfig, err := config.CreateDefaultJournalConfig(root)
		if err != nil {
			return handleError(ErrFileWriteError, fmt.Errorf("failed to create %s: %w", config.JournalConfigFile, err), "")
		}

		globalPath := config.ResolveConfigPath(configPath)
		savedDefault := false
		if initSetDefault {
			loaded, err := config.LoadOrDefault(globalPath)
			if err != nil {
				return handleError(ErrConfigInvalid, err, "")
			}
			loaded.Root = root
			if err := config.SaveTo(globalPath, loaded); err != nil {
				return handleError(ErrFileWriteError, fmt.Errorf("failed to save config: %w", err), "")
			}
			savedDefault = true
		}

		if isJSONOutput() {
			data := map[string]interface{}{
				"root":           root,
				"created_config": createdConfig,
				"default_root":   savedDefault,
			}
			if savedDefault {
				data["config_path"] = globalPath
			}
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Initializing journal at: %s\n", root)
		if createdConfig {
			fmt.Printf("✓ Created %s (journal configuration)\n", config.JournalConfigFile)
		} else {
			fmt.Printf("• %s already exists (kept)\n", config.JournalConfigFile)
		}
		fmt.Printf("✓ Ensured %s/ directory exists\n", paths.DefaultClass)
		if savedDefault {
			fmt.Printf("✓ Saved root to %s\n", globalPath)
		}
		fmt.Println("\nNext: 'jrn create-year <year>' to scaffold a year, then 'jrn start'.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initSetDefault, "set-default", false, "Save this root in the global config")
	rootCmd.AddCommand(initCmd)
}
