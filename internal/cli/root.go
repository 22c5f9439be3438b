package cli

import (
	"github.com/gartenlabs/lifegarden/internal/seed"
	"github.com/gartenlabs/lifegarden/internal/service"
	"github.com/gartenlabs/lifegarden/internal/vision"
	"github.com/spf13/cobra"
)

// App holds references to all collaborators used by CLI commands.
type App struct {
	Watering service.WateringService
	Garden   service.GardenService
	Seeder   *seed.Seeder

	// Checklist is nil unless the vision subsystem is enabled.
	Checklist vision.ChecklistService

	// IsInteractive reports whether stdin is a terminal; pickers and the
	// garden view require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lifegarden" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lifegarden",
		Short: "Tend a garden that mirrors your life",
		Long: `lifegarden tracks life-domain activities as plants in a garden.
Water a plant on the days you did the real-world thing; consistent care
keeps it healthy and growing, neglect wilts it.`,
	}

	root.AddCommand(
		newWaterCmd(app),
		newGardenCmd(app),
		newStatsCmd(app),
		newPlantCmd(app),
		newArealCmd(app),
		newLimitCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newSeedCmd(app),
	)

	return root
}
