package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rkallio/bumpmig/internal/bump"
	"github.com/rkallio/bumpmig/internal/sequence"
)

func runBump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := args[0]
	names := args[1:]

	bumper := bump.New(sequence.DirFS{}, cfg.Extension)
	results := bumper.Run(dir, names)

	failed := 0
	for _, res := range results {
		for _, name := range res.Skipped {
			fmt.Printf("not a migration file, carry on: (%s)\n", name)
		}

		if res.OK() {
			color.Green("bumped %s -> %s", res.Migration, res.Renamed)
			continue
		}

		failed++
		color.Red("failed to bump %s: %v", res.Migration, res.Err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d migrations failed", failed, len(results))
	}

	return nil
}
