package cli

import (
	"fmt"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/cobra"
)

func newPlantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage plants",
	}

	cmd.AddCommand(
		newPlantListCmd(app),
		newPlantAddCmd(app),
		newPlantRemoveCmd(app),
	)

	return cmd
}

func newPlantListCmd(app *App) *cobra.Command {
	var arealFlag, healthFlag string
	var needsWater bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := app.Watering.EvaluateDay(ctx, today()); err != nil {
				return fmt.Errorf("evaluate garden: %w", err)
			}

			garden, err := app.Garden.GetGarden(ctx)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, entry := range garden {
				if arealFlag != "" && entry.Areal.ID != arealFlag && entry.Areal.Name != arealFlag {
					continue
				}
				for _, p := range entry.Plants {
					if needsWater && !p.NeedsWater() {
						continue
					}
					if healthFlag != "" && string(p.Health) != healthFlag {
						continue
					}
					rows = append(rows, append(formatter.PlantRow(p), entry.Areal.Name))
				}
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No plants found."))
				return nil
			}

			headers := append(formatter.PlantTableHeaders(), "AREAL")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&arealFlag, "areal", "", "Only plants in this areal (ID or name)")
	cmd.Flags().StringVar(&healthFlag, "health", "", "Only plants with this health (dead, okay, healthy)")
	cmd.Flags().BoolVar(&needsWater, "needs-water", false, "Only plants needing water")

	return cmd
}

func newPlantAddCmd(app *App) *cobra.Command {
	var areal, health, image, position string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a plant to an areal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Plant{
				Name:      args[0],
				ArealID:   areal,
				Health:    domain.PlantHealth(health),
				ImagePath: image,
				Position:  position,
			}

			if err := app.Garden.CreatePlant(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Planted %s in %s\n",
				formatter.Bold(p.Name), formatter.Dim(p.ArealID))
			return nil
		},
	}

	cmd.Flags().StringVar(&areal, "areal", "", "Areal ID")
	cmd.Flags().StringVar(&health, "health", "", "Initial health (dead, okay, healthy; default healthy)")
	cmd.Flags().StringVar(&image, "image", "", "Image path for renderers")
	cmd.Flags().StringVar(&position, "position", "", "Position hint inside the areal")
	_ = cmd.MarkFlagRequired("areal")

	return cmd
}

func newPlantRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name-or-id>",
		Short: "Remove a plant and its watering history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garden.DeletePlant(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
}
