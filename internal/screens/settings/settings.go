package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/player"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// Row indices in the settings list.
const (
	rowSound = iota
	rowHaptics
	rowDarkMode
	rowName
	rowReset
	rowCount
)

// SettingsScreen lets the player toggle preferences, rename themselves, and
// wipe all saved data. Toggles persist on every change.
type SettingsScreen struct {
	engine   *engine.Engine
	store    *store.Store
	settings player.Settings

	selected      int
	editingName   bool
	nameInput     components.TextInput
	confirmReset  bool
	statusMessage string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(eng *engine.Engine, st *store.Store) *SettingsScreen {
	return &SettingsScreen{
		engine:   eng,
		store:    st,
		settings: st.LoadSettings(context.Background()),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Wipe everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if s.editingName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editingName {
			var cmd tea.Cmd
			s.nameInput, cmd = s.nameInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			s.confirmReset = false
			_ = s.store.Reset(context.Background())
			s.settings = player.DefaultSettings()
			s.engine.ReloadProfile()
			s.statusMessage = "All data wiped."
			return s, func() tea.Msg { return router.HomeScreenMsg{} }
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if s.editingName {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.nameInput.Value())
			if name != "" {
				ctx := context.Background()
				profile := s.store.LoadProfile(ctx)
				profile.Name = name
				_ = s.store.SaveProfile(ctx, profile)
				s.engine.ReloadProfile()
				s.statusMessage = "Name saved."
			}
			s.editingName = false
			return s, nil
		case "esc":
			s.editingName = false
			return s, nil
		}
		var cmd tea.Cmd
		s.nameInput, cmd = s.nameInput.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "enter", "space":
		return s.activate()
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// activate toggles or opens the selected row.
func (s *SettingsScreen) activate() (screen.Screen, tea.Cmd) {
	switch s.selected {
	case rowSound:
		s.settings.Sound = !s.settings.Sound
		s.persist()
	case rowHaptics:
		s.settings.Haptics = !s.settings.Haptics
		s.persist()
	case rowDarkMode:
		s.settings.DarkMode = !s.settings.DarkMode
		s.persist()
	case rowName:
		s.nameInput = components.NewTextInput("New name...", 20)
		s.nameInput.SetValue(s.engine.Profile().Name)
		s.editingName = true
		return s, s.nameInput.Init()
	case rowReset:
		s.confirmReset = true
	}
	return s, nil
}

func (s *SettingsScreen) persist() {
	if err := s.store.SaveSettings(context.Background(), s.settings); err != nil {
		s.statusMessage = "Could not save settings."
		return
	}
	s.statusMessage = ""
}

func (s *SettingsScreen) View(width, height int) string {
	if s.confirmReset {
		return renderResetConfirm(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Sound", onOff(s.settings.Sound)},
		{"Haptics", onOff(s.settings.Haptics)},
		{"Dark mode", onOff(s.settings.DarkMode)},
		{"Player name", s.engine.Profile().Name},
		{"Reset all data", ""},
	}

	var list strings.Builder
	for i, row := range rows {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if i == rowReset {
			if i == s.selected {
				style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
			} else {
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
		}

		line := fmt.Sprintf("%s%-16s %s", prefix, row.label, row.value)
		if i == rowName && s.editingName {
			line = fmt.Sprintf("%s%-16s %s", prefix, row.label, s.nameInput.View())
		}
		list.WriteString(style.Render(line))
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	if s.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.statusMessage))
	}

	return b.String()
}

func renderResetConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Wipe all saved data?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Profile, history, and settings go back to first-run defaults."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, wipe everything"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep my data"))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
