package summary

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

// ReplayMsg asks the app to start a fresh game in the same mode. The app
// model handles it; summary cannot build the session screen itself.
type ReplayMsg struct {
	Mode game.Mode
}

// SummaryScreen displays the result of the game that just ended.
type SummaryScreen struct {
	result  *player.GameResult
	profile player.Profile
	best    bool
	engine  *engine.Engine
	mode    game.Mode
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New captures the ended game's summary from the engine.
func New(eng *engine.Engine, mode game.Mode) *SummaryScreen {
	state := eng.State()
	s := &SummaryScreen{
		result:  state.Summary,
		profile: eng.Profile(),
		engine:  eng,
		mode:    mode,
	}
	if s.result != nil {
		s.best = isBest(eng, *s.result)
	}
	return s
}

// isBest reports whether result tops the retained history for its mode.
func isBest(eng *engine.Engine, result player.GameResult) bool {
	for _, r := range eng.History() {
		if r.Mode == result.Mode && r.ID != result.ID && r.Score >= result.Score {
			return false
		}
	}
	return true
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "r":
		return s, func() tea.Msg { return ReplayMsg{Mode: s.mode} }
	case "esc", "q":
		s.engine.Done()
		return s, func() tea.Msg { return router.HomeScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game over!"))
	b.WriteString("\n\n")

	if s.best {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("★ New best score for " + r.Mode.Label() + " ★"))
		b.WriteString("\n\n")
	}

	score := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d", r.Score))
	b.WriteString(score)
	b.WriteString("\n\n")

	elapsed := float64(r.ElapsedMs) / 1000
	statsLine := fmt.Sprintf("Solved: %d      Accuracy: %.0f%%      Best streak: ×%d      Time: %.1fs",
		r.Solved, r.Accuracy*100, s.profile.BestStreak, elapsed)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d  ·  %s  ·  XP %d",
			s.profile.Level, s.profile.Rank(), s.profile.XP)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter to play again  ·  Esc for home"))

	return b.String()
}
