package home

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
	"github.com/abhisek/mathrush/internal/screens/session"
	"github.com/abhisek/mathrush/internal/screens/settings"
	"github.com/abhisek/mathrush/internal/screens/stats"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// HomeScreen is the mode-select hub.
type HomeScreen struct {
	menu    components.Menu
	engine  *engine.Engine
	profile player.Profile
	history []player.GameResult
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen from the current profile and history.
func New(eng *engine.Engine, st *store.Store) *HomeScreen {
	items := make([]components.MenuItem, 0, len(game.Modes)+3)
	for _, mode := range game.Modes {
		m := mode
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(m.Label()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: session.New(eng, m)}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eng)}
			}
		}},
		components.MenuItem{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(eng, st)}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:    components.NewMenu(items),
		engine:  eng,
		profile: eng.Profile(),
		history: eng.History(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))
	sections = append(sections, h.renderProfileCard(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n" + strings.Join(sections, "\n\n")
}

// renderBanner renders the title banner.
func renderBanner(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("⚡ M A T H R U S H ⚡")
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("how fast can you think?")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, sub)
}

// renderProfileCard renders the player summary with per-mode best scores.
func (h *HomeScreen) renderProfileCard(width int) string {
	p := h.profile

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s %s", p.Avatar, p.Name)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   Lv %d %s  ·  XP %d  ·  %d games", p.Level, p.Rank(), p.XP, p.GamesPlayed)))

	var bests []string
	for _, mode := range game.Modes {
		if rs := player.BestByMode(h.history, mode); len(rs) > 0 {
			bests = append(bests, fmt.Sprintf("%s %d", mode.Label(), rs[0].Score))
		}
	}
	if len(bests) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("Best: " + strings.Join(bests, "  ·  ")))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(b.String())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
