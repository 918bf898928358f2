package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}

	state := s.engine.State()
	if state.Problem == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Starting...")
	}

	var b strings.Builder

	b.WriteString(renderStatusLine(state, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	// Problem text, centered.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(state.Problem.Text))
	b.WriteString("\n\n")

	if state.Phase == engine.PhaseFeedback {
		b.WriteString(s.renderFeedback(state, width))
	} else {
		options := s.grid.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
	}

	if state.Mode == game.ModeCountChallenge {
		b.WriteString("\n\n")
		percent := float64(state.Solved) / float64(state.Mode.Target())
		bar := components.NewProgressBar(
			fmt.Sprintf("%d/%d", state.Solved, state.Mode.Target()),
			percent,
			min(width-8, 50),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}

	return b.String()
}

// renderStatusLine shows score, streak, solved count, and the timer.
func renderStatusLine(state engine.State, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Lv %d %s", state.Level, state.Rank))

	var parts []string
	parts = append(parts, fmt.Sprintf("Score %d", state.Score))
	parts = append(parts, fmt.Sprintf("Solved %d", state.Solved))
	if state.Streak >= 2 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Streak ×%d", state.Streak)))
	}
	if state.Mode.Timed() {
		secs := state.Remaining.Seconds()
		timer := fmt.Sprintf("%04.1fs", secs)
		if secs <= 5 {
			timer = theme.TimerLow.Render(timer)
		}
		parts = append(parts, timer)
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "  ·  "))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderFeedback shows the revealed answer grid and a verdict line.
func (s *SessionScreen) renderFeedback(state engine.State, width int) string {
	var b strings.Builder

	revealed := s.grid.ViewRevealed(state.Problem.Answer, s.pickedIndex)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, revealed))
	b.WriteString("\n")

	if state.LastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Not quite — it was %d", state.Problem.Answer)))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End game early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your score will still count."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
