package cli

import (
	"fmt"
	"strings"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var dateFlag dateValue

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Garden and watering statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := dateFlag.Day()
			daily, err := app.Watering.Stats(ctx, date)
			if err != nil {
				return err
			}
			garden, err := app.Garden.Stats(ctx)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n\n", formatter.Dim(date.Format(domain.DateLayout)))

			fmt.Fprintf(&b, "  Areals   %d\n", garden.TotalAreals)
			fmt.Fprintf(&b, "  Plants   %d  (%s %s %s)\n\n",
				garden.TotalPlants,
				formatter.StyleGreen.Render(fmt.Sprintf("%d healthy", garden.HealthyPlants)),
				formatter.StyleYellow.Render(fmt.Sprintf("%d okay", garden.OkayPlants)),
				formatter.StyleRed.Render(fmt.Sprintf("%d dead", garden.DeadPlants)))

			fmt.Fprintf(&b, "  Watered today  %d/%d (%d left)\n",
				daily.WateredToday, daily.MaxPerDay, daily.Remaining)

			if len(daily.WateredPlants) > 0 {
				names := make([]string, 0, len(daily.WateredPlants))
				for _, p := range daily.WateredPlants {
					names = append(names, p.Name)
				}
				fmt.Fprintf(&b, "  %s\n", formatter.Dim(strings.Join(names, ", ")))
			}

			if len(daily.NeedingWater) > 0 {
				fmt.Fprintf(&b, "\n  %s\n", formatter.Bold("Needing water"))
				for _, p := range daily.NeedingWater {
					fmt.Fprintf(&b, "    %s %s  %s %s\n",
						formatter.PlantGlyph(p.Health, p.Size),
						plantPad(p.Name, 22),
						formatter.HealthIndicator(p.Health),
						formatter.DryBadge(p.DaysWithoutWater))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.RenderBox("Garden stats", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	cmd.Flags().Var(&dateFlag, "date", "Stats as of this date (YYYY-MM-DD, default today)")

	return cmd
}
