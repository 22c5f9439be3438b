package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
)

func gardenHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pickPlantsToWater runs a multi-select over the plants currently needing
// water, most urgent first.
func pickPlantsToWater(ctx context.Context, app *App) ([]string, error) {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return nil, fmt.Errorf("--pick needs an interactive terminal")
	}

	stats, err := app.Watering.Stats(ctx, today())
	if err != nil {
		return nil, err
	}
	if len(stats.NeedingWater) == 0 {
		return nil, fmt.Errorf("no plant needs water right now")
	}

	options := make([]huh.Option[string], 0, len(stats.NeedingWater))
	for _, p := range stats.NeedingWater {
		label := fmt.Sprintf("%s (%s, %dd dry)", p.Name, p.Health, p.DaysWithoutWater)
		options = append(options, huh.NewOption(label, p.Name))
	}

	var picked []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Water which plants? (%d left today)", stats.Remaining)).
				Options(options...).
				Limit(stats.Remaining).
				Value(&picked),
		),
	).WithTheme(gardenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return picked, nil
}
