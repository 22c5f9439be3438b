package cli

import (
	"fmt"
	"strings"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [plant]",
		Short: "Show watering history",
		Long: `With a plant name, shows that plant's recent waterings. Without one,
shows the most recent waterings across the whole garden.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				events, err := app.Garden.RecentWaterings(ctx, limit)
				if err != nil {
					return err
				}
				if len(events) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No waterings recorded yet."))
					return nil
				}
				var b strings.Builder
				for _, e := range events {
					p, err := app.Garden.History(ctx, e.PlantID, 1)
					if err != nil {
						return err
					}
					fmt.Fprintf(&b, "  %s %s  %s\n",
						formatter.StyleBlue.Render("◈"),
						e.Date.Format(domain.DateLayout),
						p.Plant.Name)
				}
				fmt.Fprint(cmd.OutOrStdout(), b.String())
				return nil
			}

			h, err := app.Garden.History(ctx, args[0], limit)
			if err != nil {
				return err
			}

			p := h.Plant
			var b strings.Builder
			fmt.Fprintf(&b, "%s %s  %s %s %s\n",
				formatter.PlantGlyph(p.Health, p.Size),
				formatter.Bold(p.Name),
				formatter.HealthIndicator(p.Health),
				formatter.StreakBadge(p.WaterStreak),
				formatter.Dim(fmt.Sprintf("%d waterings total", p.TotalWaterCount)))

			if len(h.Events) == 0 {
				b.WriteString(formatter.Dim("Never watered.") + "\n")
			}
			for _, e := range h.Events {
				fmt.Fprintf(&b, "  %s %s\n",
					formatter.StyleBlue.Render("◈"),
					e.Date.Format(domain.DateLayout))
			}

			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 30, "Number of entries to show")

	return cmd
}
