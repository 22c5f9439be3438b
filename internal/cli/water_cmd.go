package cli

import (
	"fmt"
	"strings"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/service"
	"github.com/spf13/cobra"
)

func newWaterCmd(app *App) *cobra.Command {
	var dateFlag dateValue
	var imageFlag string
	var pickFlag bool

	cmd := &cobra.Command{
		Use:   "water [plant names...]",
		Short: "Water plants for today (or a given date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			names := args
			switch {
			case imageFlag != "":
				if app.Checklist == nil {
					return fmt.Errorf("image analysis is disabled; set LIFEGARDEN_VISION_ENABLED=1")
				}
				doc, err := app.Checklist.AnalyzeImage(ctx, imageFlag)
				if err != nil {
					return fmt.Errorf("analyzing checklist image: %w", err)
				}
				names = append(names, doc.CheckedLabels()...)
			case pickFlag:
				picked, err := pickPlantsToWater(ctx, app)
				if err != nil {
					return err
				}
				names = append(names, picked...)
			}

			if len(names) == 0 {
				return fmt.Errorf("no plants given; pass names, --pick, or --image")
			}

			res, err := app.Watering.WaterPlants(ctx, dateFlag.Day(), names)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderWateringResult(res))
			return nil
		},
	}

	cmd.Flags().Var(&dateFlag, "date", "Watering date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&pickFlag, "pick", false, "Pick plants interactively")
	cmd.Flags().StringVar(&imageFlag, "image", "", "Extract watered plants from a checklist photo")

	return cmd
}

func renderWateringResult(res *service.WateringResult) string {
	var b strings.Builder

	for _, p := range res.Watered {
		fmt.Fprintf(&b, "%s %s  %s streak %s\n",
			formatter.StyleGreen.Render("✔ watered"),
			formatter.Bold(p.Name),
			formatter.HealthIndicator(p.Health),
			formatter.StreakBadge(p.WaterStreak))
	}
	for _, name := range res.AlreadyWatered {
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim("· already watered"), name)
	}
	for _, name := range res.RejectedDueToCapacity {
		fmt.Fprintf(&b, "%s %s\n", formatter.StyleYellow.Render("✘ over daily limit"), name)
	}
	for _, name := range res.Unknown {
		fmt.Fprintf(&b, "%s %s\n", formatter.StyleRed.Render("? unknown plant"), name)
	}

	fmt.Fprintf(&b, "%s\n", formatter.Dim(fmt.Sprintf(
		"%s · limit %d · %d watering(s) left today",
		res.Date.Format(domain.DateLayout), res.DailyLimit, res.RemainingCapacity)))
	return b.String()
}
