package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gartenlabs/lifegarden/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorBrown  = lipgloss.Color("#a89984")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HealthColor returns the lipgloss style for a health tier.
func HealthColor(h domain.PlantHealth) lipgloss.Style {
	switch h {
	case domain.HealthHealthy:
		return StyleGreen
	case domain.HealthOkay:
		return StyleYellow
	case domain.HealthDead:
		return StyleRed
	default:
		return StyleDim
	}
}

// HealthIndicator returns a colored health marker such as "● healthy".
func HealthIndicator(h domain.PlantHealth) string {
	return HealthColor(h).Render("● " + string(h))
}

// PlantGlyph renders a plant symbol scaled by size tier and colored by health.
func PlantGlyph(health domain.PlantHealth, size domain.PlantSize) string {
	var glyph string
	switch size {
	case domain.SizeBig:
		glyph = "❀"
	case domain.SizeMedium:
		glyph = "✿"
	default:
		glyph = "·"
	}
	if health == domain.HealthDead {
		glyph = "✗"
	}
	return HealthColor(health).Render(glyph)
}

// StreakBadge renders the watering streak, dimmed when there is none.
func StreakBadge(streak int) string {
	if streak <= 0 {
		return StyleDim.Render("—")
	}
	return StyleBlue.Render(fmt.Sprintf("↑%d", streak))
}

// DryBadge renders the days-without-water counter with urgency coloring.
func DryBadge(days int) string {
	switch {
	case days >= 5:
		return StyleRed.Render(fmt.Sprintf("%dd dry", days))
	case days >= 3:
		return StyleYellow.Render(fmt.Sprintf("%dd dry", days))
	case days > 0:
		return StyleFg.Render(fmt.Sprintf("%dd dry", days))
	default:
		return StyleDim.Render("watered")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
