package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/home"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// Avatars the player can pick from on first run.
var Avatars = []string{"🦊", "🐯", "🦉", "🐙", "🤖", "🦄"}

const maxNameLen = 20

// WelcomeScreen is the first-run setup: pick a name and an avatar.
type WelcomeScreen struct {
	engine *engine.Engine
	store  *store.Store

	input        components.TextInput
	avatarIndex  int
	pickingName  bool
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the first-run welcome screen.
func New(eng *engine.Engine, st *store.Store) *WelcomeScreen {
	return &WelcomeScreen{
		engine:      eng,
		store:       st,
		input:       components.NewTextInput("Your name...", maxNameLen),
		pickingName: true,
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.pickingName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Pick avatar"},
		{Key: "Enter", Description: "Start"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if w.pickingName {
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return w, cmd
		}
		return w, nil
	}

	if w.pickingName {
		if kmsg.String() == "enter" {
			if strings.TrimSpace(w.input.Value()) == "" {
				return w, nil
			}
			w.pickingName = false
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	switch kmsg.String() {
	case "left", "h":
		if w.avatarIndex > 0 {
			w.avatarIndex--
		}
	case "right", "l":
		if w.avatarIndex < len(Avatars)-1 {
			w.avatarIndex++
		}
	case "enter":
		return w, w.finish()
	}
	return w, nil
}

// finish saves the profile and moves to home.
func (w *WelcomeScreen) finish() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true

	ctx := context.Background()
	profile := w.store.LoadProfile(ctx)
	profile.Name = strings.TrimSpace(w.input.Value())
	profile.Avatar = Avatars[w.avatarIndex]
	_ = w.store.SaveProfile(ctx, profile)
	w.engine.ReloadProfile()

	homeScreen := home.New(w.engine, w.store)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("⚡ Welcome to MathRush! ⚡")
	sections = append(sections, title, "")

	if w.pickingName {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("What should we call you?"),
			"",
			w.input.View(),
		)
	} else {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Pick your avatar, "+strings.TrimSpace(w.input.Value())+":"),
			"",
			w.renderAvatars(),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderAvatars() string {
	var parts []string
	for i, a := range Avatars {
		if i == w.avatarIndex {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render("["+a+"]"))
		} else {
			parts = append(parts, " "+a+" ")
		}
	}
	return strings.Join(parts, " ")
}
