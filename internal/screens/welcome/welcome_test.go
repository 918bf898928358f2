package welcome

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/store"
)

func testWelcome(t *testing.T) (*WelcomeScreen, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	eng := engine.New(game.NewGenerator(), st)
	return New(eng, st), st
}

func typeName(scr screen.Screen, name string) screen.Screen {
	for _, r := range name {
		scr, _ = scr.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return scr
}

func TestWelcomeScreen_EmptyNameRejected(t *testing.T) {
	w, _ := testWelcome(t)

	var scr screen.Screen = w
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !scr.(*WelcomeScreen).pickingName {
		t.Error("expected to stay on name entry with an empty name")
	}
}

func TestWelcomeScreen_NameThenAvatar(t *testing.T) {
	w, _ := testWelcome(t)

	var scr screen.Screen = w
	scr = typeName(scr, "Maya")
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if scr.(*WelcomeScreen).pickingName {
		t.Fatal("expected to move on to avatar selection")
	}

	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if scr.(*WelcomeScreen).avatarIndex != 1 {
		t.Errorf("avatarIndex = %d, want 1", scr.(*WelcomeScreen).avatarIndex)
	}
}

func TestWelcomeScreen_FinishSavesProfile(t *testing.T) {
	w, st := testWelcome(t)

	var scr screen.Screen = w
	scr = typeName(scr, "Maya")
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}

	profile := st.LoadProfile(context.Background())
	if profile.Name != "Maya" {
		t.Errorf("saved name = %q, want %q", profile.Name, "Maya")
	}
	if profile.Avatar != Avatars[1] {
		t.Errorf("saved avatar = %q, want %q", profile.Avatar, Avatars[1])
	}
}

func TestWelcomeScreen_View(t *testing.T) {
	w, _ := testWelcome(t)
	if w.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
