package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/service"
)

// RenderGarden lays the areals out as a three-by-three grid of boxes,
// placed by their horizontal and vertical position hints.
func RenderGarden(garden []*service.ArealWithPlants) string {
	if len(garden) == 0 {
		return Dim("The garden is empty. Run `lifegarden seed` to plant the demo garden.")
	}

	grid := make(map[domain.VerticalPos]map[domain.HorizontalPos]*service.ArealWithPlants)
	for _, entry := range garden {
		v := entry.Areal.VerticalPos
		if grid[v] == nil {
			grid[v] = make(map[domain.HorizontalPos]*service.ArealWithPlants)
		}
		grid[v][entry.Areal.HorizontalPos] = entry
	}

	var bands []string
	for _, v := range []domain.VerticalPos{domain.PosTop, domain.PosMiddle, domain.PosBottom} {
		row := grid[v]
		if row == nil {
			continue
		}
		var cells []string
		for _, h := range []domain.HorizontalPos{domain.PosLeft, domain.PosCenter, domain.PosRight} {
			if entry, ok := row[h]; ok {
				cells = append(cells, renderAreal(entry))
			}
		}
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bands...)
}

func renderAreal(entry *service.ArealWithPlants) string {
	width := arealWidth(entry.Areal.Size)

	var lines []string
	plants := append([]*domain.Plant(nil), entry.Plants...)
	sort.Slice(plants, func(i, j int) bool { return plants[i].Name < plants[j].Name })
	for _, p := range plants {
		name := p.Name
		if lipgloss.Width(name) > width-4 {
			runes := []rune(name)
			name = string(runes[:width-5]) + "…"
		}
		lines = append(lines, fmt.Sprintf("%s %s", PlantGlyph(p.Health, p.Size), name))
	}
	if len(lines) == 0 {
		lines = append(lines, Dim("(empty)"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(width)
	title := StyleHeader.Render(entry.Areal.Name)
	return box.Render(title + "\n" + strings.Join(lines, "\n"))
}

func arealWidth(size domain.ArealSize) int {
	switch size {
	case domain.ArealLarge:
		return 28
	case domain.ArealSmall:
		return 20
	default:
		return 24
	}
}

// PlantRow formats one plant as a table row used by list and stats output.
func PlantRow(p *domain.Plant) []string {
	return []string{
		p.Name,
		HealthIndicator(p.Health),
		string(p.Size),
		fmt.Sprintf("%d", p.GrowthStage),
		StreakBadge(p.WaterStreak),
		DryBadge(p.DaysWithoutWater),
	}
}

// PlantTableHeaders pairs with PlantRow.
func PlantTableHeaders() []string {
	return []string{"PLANT", "HEALTH", "SIZE", "STAGE", "STREAK", "WATER"}
}
