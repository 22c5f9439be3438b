package cli

import (
	"fmt"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty garden with the starter layout",
		Long: `Create the starter garden: six life areals with their plants.
Does nothing when the garden already has areals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded, err := app.Seeder.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Garden already has areals, nothing seeded."))
				return nil
			}

			stats, err := app.Garden.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d areals with %d plants.\n",
				stats.TotalAreals, stats.TotalPlants)
			return nil
		},
	}
}
