package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/summary"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/layout"
)

// SessionScreen drives one game from start to the summary hand-off.
type SessionScreen struct {
	engine *engine.Engine
	mode   game.Mode

	grid        components.AnswerGrid
	pickedIndex int

	showingQuitConfirm bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen for the given mode.
func New(eng *engine.Engine, mode game.Mode) *SessionScreen {
	return &SessionScreen{
		engine:      eng,
		mode:        mode,
		pickedIndex: -1,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.engine.Start(s.mode)
	s.syncGrid()
	return tickCmd(s.engine.SessionID())
}

func (s *SessionScreen) Title() string {
	return s.mode.Label()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	}
	state := s.engine.State()
	if state.Phase == engine.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "", Description: "Next problem coming up..."},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)
	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	s.engine.Tick(msg.sessionID, engine.TickInterval)

	state := s.engine.State()
	if state.Phase == engine.PhaseEnded {
		return s, pushSummary(s.engine, s.mode)
	}
	if state.SessionID != msg.sessionID {
		// A different game took over; let its own ticker drive it.
		return s, nil
	}
	return s, tickCmd(msg.sessionID)
}

func (s *SessionScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	s.engine.FinishFeedback(msg.sessionID)

	state := s.engine.State()
	if state.Phase == engine.PhaseEnded {
		return s, pushSummary(s.engine, s.mode)
	}
	if state.Phase == engine.PhaseActive && state.SessionID == msg.sessionID {
		s.syncGrid()
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.engine.End()
			return s, pushSummary(s.engine, s.mode)
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	state := s.engine.State()
	if state.Phase != engine.PhaseActive {
		// Feedback dismisses on its own timer; nothing to do here.
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit(s.grid.Selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.grid.Options) {
			return s.submit(idx)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.grid, cmd = s.grid.Update(msg)
	return s, cmd
}

// submit answers with the option at idx and schedules feedback dismissal.
func (s *SessionScreen) submit(idx int) (screen.Screen, tea.Cmd) {
	if idx < 0 || idx >= len(s.grid.Options) {
		return s, nil
	}
	s.pickedIndex = idx

	if _, ok := s.engine.Submit(s.grid.Options[idx]); !ok {
		return s, nil
	}
	return s, feedbackCmd(s.engine.SessionID())
}

// syncGrid rebuilds the answer grid from the pending problem.
func (s *SessionScreen) syncGrid() {
	s.pickedIndex = -1
	state := s.engine.State()
	if state.Problem != nil {
		s.grid = components.NewAnswerGrid(state.Problem.Options)
	}
}

// pushSummary hands the ended game off to the summary screen.
func pushSummary(eng *engine.Engine, mode game.Mode) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(eng, mode)}
	}
}

// tickCmd schedules the next timer tick for the given session.
func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(engine.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{sessionID: sessionID}
	})
}

// feedbackCmd schedules the end of the feedback overlay.
func feedbackCmd(sessionID string) tea.Cmd {
	return tea.Tick(engine.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{sessionID: sessionID}
	})
}
