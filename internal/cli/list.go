package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rkallio/bumpmig/internal/sequence"
)

var listCmd = &cobra.Command{
	Use:   "list <dir_path>",
	Short: "Show the migration sequence in ascending id order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, skipped, err := sequence.Scan(sequence.DirFS{}, args[0])
		if err != nil {
			return err
		}
		seq.Sort()

		for _, name := range skipped {
			fmt.Printf("not a migration file, carry on: (%s)\n", name)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "File"})
		for _, entry := range seq {
			table.Append([]string{strconv.Itoa(entry.ID), entry.Filename})
		}
		table.Render()

		if verbose {
			fmt.Printf("%d migrations, %d other entries\n", len(seq), len(skipped))
		}

		return nil
	},
}
