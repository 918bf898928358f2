package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/player"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/home"
	"github.com/abhisek/mathrush/internal/screens/session"
	"github.com/abhisek/mathrush/internal/screens/summary"
	"github.com/abhisek/mathrush/internal/screens/welcome"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Engine *engine.Engine
	Store  *store.Store

	// StartMode, when set, jumps straight into a session for that mode.
	StartMode game.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *engine.Engine
	store  *store.Store
	width  int
	height int
}

// newAppModel creates the root model with the initial screen.
func newAppModel(opts Options) AppModel {
	var first screen.Screen
	switch {
	case opts.StartMode != "":
		first = session.New(opts.Engine, opts.StartMode)
	case opts.Engine.Profile().Name == player.DefaultName:
		first = welcome.New(opts.Engine, opts.Store)
	default:
		first = home.New(opts.Engine, opts.Store)
	}
	return AppModel{
		router: router.New(first),
		engine: opts.Engine,
		store:  opts.Store,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case summary.ReplayMsg:
		// Drop the summary, then swap the finished session for a fresh one.
		m.router.Pop()
		return m, m.router.Replace(session.New(m.engine, msg.Mode))

	case router.HomeScreenMsg:
		// Unwind the stack and rebuild home so it reflects the latest profile.
		m.router.Home()
		return m, m.router.Replace(home.New(m.engine, m.store))

	case tea.KeyMsg:
		// Esc is screen-local: sessions confirm, settings cancel edits,
		// everything else pops itself.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profile := m.engine.Profile()
	badge := layout.PlayerBadge{
		Name:  profile.Name,
		Level: profile.Level,
		Rank:  profile.Rank().String(),
	}

	header := layout.RenderHeader(title, badge, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
