package cli

import (
	"fmt"
	"strconv"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLimitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "limit [n]",
		Short: "Show or set the daily watering limit",
		Long: `Without an argument, prints the daily watering limit. With one,
sets it. The new limit applies from the next watering run; plants
already watered today keep their watering.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				limit, err := app.Watering.DailyLimit(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Daily watering limit: %s\n",
					formatter.Bold(strconv.Itoa(limit)))
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid limit %q, expected a number", args[0])
			}
			if err := app.Watering.SetDailyLimit(ctx, n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily watering limit set to %s\n",
				formatter.Bold(strconv.Itoa(n)))
			return nil
		},
	}
}
