package cli

import (
	"fmt"
	"os"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the garden as JSON",
		Long: `Write the garden as JSON in the shape rendering frontends consume:
areals with positions and sizes, each carrying its plants with health,
size and image path. Prints to stdout unless --out is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := app.Watering.EvaluateDay(ctx, today()); err != nil {
				return fmt.Errorf("evaluate garden: %w", err)
			}

			data, err := app.Garden.ExportJSON(ctx)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported garden to %s\n", formatter.Bold(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")

	return cmd
}
