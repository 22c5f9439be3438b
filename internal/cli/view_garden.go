package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/service"
)

// gardenLoadedMsg signals that garden data has been loaded.
type gardenLoadedMsg struct {
	garden []*service.ArealWithPlants
	stats  *service.DailyStats
	err    error
}

// wateredMsg carries the outcome of watering one plant from the view.
type wateredMsg struct {
	result *service.WateringResult
	err    error
}

// gardenView is the interactive garden browser. It flattens the garden
// into a cursor-navigable plant list grouped by areal, and lets the
// selected plant be watered in place.
type gardenView struct {
	app  *App
	date time.Time

	garden  []*service.ArealWithPlants
	stats   *service.DailyStats
	cursor  int
	status  string
	loading bool
	err     error
}

func newGardenView(app *App, date time.Time) *gardenView {
	return &gardenView{
		app:     app,
		date:    date,
		loading: true,
	}
}

func (v *gardenView) keyBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "water")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *gardenView) Init() tea.Cmd {
	return v.loadGarden()
}

func (v *gardenView) loadGarden() tea.Cmd {
	app := v.app
	date := v.date
	return func() tea.Msg {
		ctx := context.Background()
		garden, err := app.Garden.GetGarden(ctx)
		if err != nil {
			return gardenLoadedMsg{err: err}
		}
		stats, err := app.Watering.Stats(ctx, date)
		return gardenLoadedMsg{garden: garden, stats: stats, err: err}
	}
}

func (v *gardenView) waterSelected() tea.Cmd {
	plants := v.flatPlants()
	if v.cursor >= len(plants) {
		return nil
	}
	name := plants[v.cursor].Name
	app := v.app
	date := v.date
	return func() tea.Msg {
		result, err := app.Watering.WaterPlants(context.Background(), date, []string{name})
		return wateredMsg{result: result, err: err}
	}
}

func (v *gardenView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gardenLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.garden = msg.garden
		v.stats = msg.stats
		if n := len(v.flatPlants()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case wateredMsg:
		if msg.err != nil {
			v.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return v, nil
		}
		v.status = summarizeWatering(msg.result)
		return v, v.loadGarden()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return v, tea.Quit
		}
		switch msg.String() {
		case "q", "esc":
			return v, tea.Quit
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.flatPlants())-1 {
				v.cursor++
			}
		case "w":
			return v, v.waterSelected()
		case "r":
			v.loading = true
			v.status = ""
			return v, v.loadGarden()
		}
	}
	return v, nil
}

func (v *gardenView) flatPlants() []*domain.Plant {
	var plants []*domain.Plant
	for _, entry := range v.garden {
		plants = append(plants, entry.Plants...)
	}
	return plants
}

func summarizeWatering(res *service.WateringResult) string {
	switch {
	case len(res.Watered) > 0:
		p := res.Watered[0]
		return formatter.StyleGreen.Render(fmt.Sprintf(
			"Watered %s, streak %d, %d left today", p.Name, p.WaterStreak, res.RemainingCapacity))
	case len(res.AlreadyWatered) > 0:
		return formatter.Dim(fmt.Sprintf("%s was already watered today", res.AlreadyWatered[0]))
	case len(res.RejectedDueToCapacity) > 0:
		return formatter.StyleYellow.Render("Daily watering limit reached")
	default:
		return ""
	}
}

func (v *gardenView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading garden...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Garden") + "  " +
		formatter.Dim(v.date.Format(domain.DateLayout)) + "\n\n")

	idx := 0
	for _, entry := range v.garden {
		b.WriteString("  " + formatter.Bold(entry.Areal.Name) + "\n")
		if len(entry.Plants) == 0 {
			b.WriteString("    " + formatter.Dim("empty") + "\n")
		}
		for _, p := range entry.Plants {
			cursor := "  "
			nameStyle := formatter.StyleFg
			if idx == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				nameStyle = formatter.StyleBold
			}
			b.WriteString(fmt.Sprintf("  %s%s %s  %s %s %s\n",
				cursor,
				formatter.PlantGlyph(p.Health, p.Size),
				nameStyle.Render(plantPad(p.Name, 22)),
				formatter.HealthIndicator(p.Health),
				formatter.StreakBadge(p.WaterStreak),
				formatter.DryBadge(p.DaysWithoutWater),
			))
			idx++
		}
		b.WriteString("\n")
	}

	if v.stats != nil {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf(
			"watered %d/%d today · %d need water",
			v.stats.WateredToday, v.stats.MaxPerDay, len(v.stats.NeedingWater))) + "\n")
	}
	if v.status != "" {
		b.WriteString("  " + v.status + "\n")
	}

	b.WriteString("\n  " + formatter.Dim(renderKeyHelp(v.keyBindings())) + "\n")
	return b.String()
}

func renderKeyHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// plantPad pads a name to a minimum width, truncating if needed.
func plantPad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
