// Package cli implements the command-line interface for bumpmig.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rkallio/bumpmig/internal/config"
)

var (
	// Global flags
	configPath string
	extension  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bumpmig <dir_path> <migration_name> [<migration_name>...]",
	Short: "Renumber Django migrations so merge migrations can be avoided",
	Long: `bumpmig moves one or more migration files to the end of their
sequence: each gets the next free sequence id, its internal dependency
reference is rewritten to point at the current last migration, and the
file is renamed accordingly.

Migrations are processed left to right; each one sees the renames done
by the previous one. A failed migration is reported and the rest of the
batch continues.

Examples:
  # Move a migration past the current end of the sequence
  bumpmig ./app/migrations 0002_add_field.py

  # Bump several migrations in order
  bumpmig ./app/migrations 0002_add_field.py 0005_backfill.py

  # Show the sequence as the tool sees it
  bumpmig list ./app/migrations

  # Show which migrations the database records as applied
  bumpmig applied ./app/migrations --db postgres://localhost/mydb`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE:         runBump,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", "", "Migration file extension (default \".py\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(appliedCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig merges the config file with command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if extension != "" {
		cfg.Extension = extension
	}
	return cfg, nil
}
