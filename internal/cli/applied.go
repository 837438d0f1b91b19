package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rkallio/bumpmig/internal/db"
	"github.com/rkallio/bumpmig/internal/sequence"
)

var (
	appliedDB  string
	appliedApp string
)

var appliedCmd = &cobra.Command{
	Use:   "applied <dir_path>",
	Short: "Show which migrations the database records as applied",
	Long: `applied scans the migration directory and cross-references each
entry against the django_migrations bookkeeping table. It only reads;
nothing in the directory or the database is modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runApplied,
}

func init() {
	appliedCmd.Flags().StringVar(&appliedDB, "db", "", "Database URL (overrides config file)")
	appliedCmd.Flags().StringVar(&appliedApp, "app", "", "Restrict to one application's migrations")
}

func runApplied(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	connStr := appliedDB
	if connStr == "" {
		connStr = cfg.DatabaseURL
	}
	if connStr == "" {
		return fmt.Errorf("no database URL: pass --db or set database_url in %s", configPath)
	}

	app := appliedApp
	if app == "" {
		app = cfg.App
	}

	seq, skipped, err := sequence.Scan(sequence.DirFS{}, args[0])
	if err != nil {
		return err
	}
	seq.Sort()

	reader, err := db.NewStateReader(connStr)
	if err != nil {
		return err
	}
	defer reader.Close()

	applied, err := reader.Applied(app)
	if err != nil {
		return err
	}

	for _, name := range skipped {
		fmt.Printf("not a migration file, carry on: (%s)\n", name)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "File", "State", "Applied at"})
	for _, entry := range seq {
		stem := sequence.Stem(entry.Filename, cfg.Extension)
		state := "pending"
		at := ""
		if t, ok := applied[stem]; ok {
			state = "applied"
			at = t.Format("2006-01-02 15:04:05")
		}
		table.Append([]string{strconv.Itoa(entry.ID), entry.Filename, state, at})
	}
	table.Render()

	return nil
}
