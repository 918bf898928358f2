package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

// AnswerGrid is the four-option answer selector shown under a problem.
type AnswerGrid struct {
	Options  []int
	Selected int
}

// NewAnswerGrid creates an answer grid over the problem's options.
func NewAnswerGrid(options []int) AnswerGrid {
	return AnswerGrid{Options: options}
}

// Update handles arrow navigation. Selection by number key and submission
// are handled by the owning screen.
func (a AnswerGrid) Update(msg tea.Msg) (AnswerGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	}
	return a, nil
}

// Value returns the currently selected option value.
func (a AnswerGrid) Value() int {
	if a.Selected < 0 || a.Selected >= len(a.Options) {
		return 0
	}
	return a.Options[a.Selected]
}

// View renders the option list.
func (a AnswerGrid) View() string {
	var s string
	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)
		if i == a.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// ViewRevealed renders the options with the correct answer and the player's
// pick highlighted, for the feedback overlay.
func (a AnswerGrid) ViewRevealed(correct int, picked int) string {
	var s string
	for i, opt := range a.Options {
		line := fmt.Sprintf("  %d)  %d", i+1, opt)
		switch {
		case opt == correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case i == picked:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}
