package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/player"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// StatsScreen shows the profile card and the retained best scores per mode.
type StatsScreen struct {
	profile player.Profile
	history []player.GameResult
	modeIdx int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen from the current profile and history.
func New(eng *engine.Engine) *StatsScreen {
	return &StatsScreen{
		profile: eng.Profile(),
		history: eng.History(),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Mode"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if s.modeIdx > 0 {
			s.modeIdx--
		}
	case "right", "l":
		if s.modeIdx < len(game.Modes)-1 {
			s.modeIdx++
		}
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderProfile()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderModeTabs()))
	b.WriteString("\n\n")

	mode := game.Modes[s.modeIdx]
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderScoreTable(mode)))

	return b.String()
}

func (s *StatsScreen) renderProfile() string {
	p := s.profile
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%s %s", p.Avatar, p.Name)),
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Level %d  ·  %s  ·  XP %d", p.Level, p.Rank(), p.XP)),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Games %d  ·  Best streak ×%d", p.GamesPlayed, p.BestStreak)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (s *StatsScreen) renderModeTabs() string {
	var parts []string
	for i, mode := range game.Modes {
		label := mode.Label()
		if i == s.modeIdx {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("[ "+label+" ]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  "+label+"  "))
		}
	}
	return strings.Join(parts, " ")
}

func (s *StatsScreen) renderScoreTable(mode game.Mode) string {
	results := player.BestByMode(s.history, mode)
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No games played yet. Go set a score!")
	}

	header := fmt.Sprintf("  %-4s %-8s %-8s %-10s %-12s", "#", "Score", "Solved", "Accuracy", "When")
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", len(header))))
	b.WriteString("\n")

	for i, r := range results {
		line := fmt.Sprintf("  %-4d %-8d %-8d %-10s %-12s",
			i+1, r.Score, r.Solved,
			fmt.Sprintf("%.0f%%", r.Accuracy*100),
			r.Timestamp.Format("Jan 2 15:04"),
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
