// Package cli implements the taskflow command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskflow/internal/app"
	"taskflow/internal/config"
)

var (
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskflow",
		Short: "TaskFlow - personal tasks with list, board and calendar views",
		Long: `TaskFlow keeps a personal task list with projects, tags and subtasks.

Run "taskflow serve" for the JSON API, or use the commands below directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $TASKFLOW_CONFIG or the user config dir)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openApp loads the config and opens the data directory. Read-only
// commands skip the instance lock.
func openApp(ctx context.Context, readOnly bool) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.Options{ReadOnly: readOnly})
}
