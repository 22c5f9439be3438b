package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/cobra"
)

func newGardenCmd(app *App) *cobra.Command {
	var interactive bool
	var dateFlag dateValue

	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Show the garden",
		Long: `Render the garden as a grid of areals with their plants.
Pending decline for missed days is applied before rendering, so what
you see reflects today's state.

With -i, opens an interactive view where plants can be browsed and
watered directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := dateFlag.Day()
			if _, err := app.Watering.EvaluateDay(ctx, date); err != nil {
				return fmt.Errorf("evaluate garden: %w", err)
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("-i needs an interactive terminal")
				}
				p := tea.NewProgram(newGardenView(app, date), tea.WithAltScreen())
				_, err := p.Run()
				return err
			}

			garden, err := app.Garden.GetGarden(ctx)
			if err != nil {
				return err
			}
			stats, err := app.Watering.Stats(ctx, date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderGarden(garden))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf(
				"%s · watered %d/%d · %d need water",
				date.Format(domain.DateLayout),
				stats.WateredToday, stats.MaxPerDay, len(stats.NeedingWater))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive garden view")
	cmd.Flags().Var(&dateFlag, "date", "Evaluate as of this date (YYYY-MM-DD, default today)")

	return cmd
}

// today returns the current day at date granularity.
func today() time.Time {
	return domain.DateOnly(time.Now())
}
