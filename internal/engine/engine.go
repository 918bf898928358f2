package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/player"
)

// Phase is the engine's position in the game lifecycle.
type Phase int

const (
	PhaseIdle     Phase = iota // no game running
	PhaseActive                // a problem is pending
	PhaseFeedback              // answer feedback is displayed
	PhaseEnded                 // game over, summary available
)

// TickInterval is the timer granularity while a game is running.
const TickInterval = 100 * time.Millisecond

// FeedbackDelay is how long answer feedback stays up before the game
// auto-advances.
const FeedbackDelay = time.Second

// Store is the engine's persistence boundary. Absence and decode failures
// surface as defaults from Load; Save errors never interrupt gameplay.
type Store interface {
	LoadProfile(ctx context.Context) player.Profile
	SaveProfile(ctx context.Context, p player.Profile) error
	LoadHistory(ctx context.Context) []player.GameResult
	SaveHistory(ctx context.Context, results []player.GameResult) error
}

// State is a value snapshot of the observable session state, published to
// whatever renders it.
type State struct {
	Phase       Phase
	Mode        game.Mode
	SessionID   string
	Level       int
	Rank        game.Rank
	Score       int
	Solved      int
	Streak      int
	Remaining   time.Duration
	Elapsed     time.Duration
	Problem     *game.Problem
	LastCorrect bool
	Summary     *player.GameResult
}

// Engine sequences one game at a time: Idle → Active ⇄ Feedback → Ended.
// It is not safe for concurrent use; every transition must run on the same
// goroutine (in practice the UI update loop). Deferred advances and timer
// ticks carry the session ID they were scheduled for, so anything left over
// from a previous game is ignored.
type Engine struct {
	gen   *game.Generator
	store Store

	profile player.Profile

	phase     Phase
	mode      game.Mode
	sessionID string

	level     int
	score     int
	solved    int
	streak    int
	maxStreak int

	remaining time.Duration
	elapsed   time.Duration
	expired   bool

	current     *game.Problem
	lastCorrect bool
	summary     *player.GameResult
}

// New creates an Engine in the Idle phase.
func New(gen *game.Generator, store Store) *Engine {
	return &Engine{
		gen:     gen,
		store:   store,
		profile: store.LoadProfile(context.Background()),
	}
}

// Profile returns the engine's current view of the player profile.
func (e *Engine) Profile() player.Profile {
	return e.profile
}

// ReloadProfile refreshes the cached profile from the store, picking up
// edits made outside the engine (name, avatar, resets).
func (e *Engine) ReloadProfile() {
	e.profile = e.store.LoadProfile(context.Background())
}

// History returns the retained game history.
func (e *Engine) History() []player.GameResult {
	return e.store.LoadHistory(context.Background())
}

// SessionID identifies the running game. Deferred messages must echo it
// back so stale ones can be dropped.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// State returns a snapshot of the session for rendering.
func (e *Engine) State() State {
	return State{
		Phase:       e.phase,
		Mode:        e.mode,
		SessionID:   e.sessionID,
		Level:       e.level,
		Rank:        game.RankForLevel(e.level),
		Score:       e.score,
		Solved:      e.solved,
		Streak:      e.streak,
		Remaining:   e.remaining,
		Elapsed:     e.elapsed,
		Problem:     e.current,
		LastCorrect: e.lastCorrect,
		Summary:     e.summary,
	}
}

// Start begins a new game in the given mode. It is a no-op while a game is
// already running; replaying from Ended re-enters this same path.
func (e *Engine) Start(mode game.Mode) {
	if e.phase == PhaseActive || e.phase == PhaseFeedback {
		return
	}
	if !mode.Valid() {
		return
	}

	e.profile = e.store.LoadProfile(context.Background())
	e.level = e.profile.Level
	if e.level < 1 {
		e.level = 1
	}

	e.mode = mode
	e.sessionID = uuid.New().String()
	e.score = 0
	e.solved = 0
	e.streak = 0
	e.maxStreak = 0
	e.remaining = mode.Limit()
	e.elapsed = 0
	e.expired = false
	e.lastCorrect = false
	e.summary = nil

	e.nextProblem()
	e.phase = PhaseActive
}

// Submit scores an answer against the pending problem. It reports whether
// the submission was accepted and whether it was correct; submissions
// outside an active game are silently ignored.
func (e *Engine) Submit(answer int) (correct, ok bool) {
	if e.phase != PhaseActive || e.current == nil {
		return false, false
	}

	correct = answer == e.current.Answer
	e.lastCorrect = correct

	if correct {
		bonus := 0
		if e.streak >= 5 {
			bonus = 2
		}
		e.score += 10 + bonus + e.level*2
		e.solved++
		e.streak++
		if e.streak > e.maxStreak {
			e.maxStreak = e.streak
		}
		if e.solved%3 == 0 && e.streak >= 3 {
			e.level++
			e.profile.XP += 100
		}
	} else {
		e.streak = 0
	}

	e.phase = PhaseFeedback
	return correct, true
}

// FinishFeedback advances past the feedback overlay: ending the game when
// the count-challenge target is reached or the clock ran out, otherwise
// serving the next problem. Calls carrying a stale session ID, or arriving
// after the game already ended, are no-ops.
func (e *Engine) FinishFeedback(sessionID string) {
	if e.phase != PhaseFeedback || sessionID != e.sessionID {
		return
	}

	if e.expired || (e.mode.Target() > 0 && e.solved >= e.mode.Target()) {
		e.End()
		return
	}

	e.nextProblem()
	e.phase = PhaseActive
}

// Tick advances game time by d. Elapsed time accumulates in every mode;
// timed modes also count down, and hitting zero forces the end of the game
// (immediately when a problem is pending, at feedback-done otherwise).
func (e *Engine) Tick(sessionID string, d time.Duration) {
	if sessionID != e.sessionID {
		return
	}
	if e.phase != PhaseActive && e.phase != PhaseFeedback {
		return
	}

	e.elapsed += d
	if !e.mode.Timed() {
		return
	}

	e.remaining -= d
	if e.remaining > 0 {
		return
	}
	e.remaining = 0
	e.expired = true
	if e.phase == PhaseActive {
		e.End()
	}
}

// End finalizes the running game: builds the result, folds it into the
// retained history, updates the profile, and persists both best-effort.
// Ending an idle or already-ended engine is a no-op.
func (e *Engine) End() {
	if e.phase != PhaseActive && e.phase != PhaseFeedback {
		return
	}

	result := player.GameResult{
		ID:        uuid.New().String(),
		Mode:      e.mode,
		Score:     e.score,
		ElapsedMs: e.elapsed.Milliseconds(),
		Timestamp: time.Now(),
		Level:     e.level,
		Solved:    e.solved,
		Accuracy:  e.accuracy(),
	}

	ctx := context.Background()
	history := append(e.store.LoadHistory(ctx), result)
	_ = e.store.SaveHistory(ctx, player.TrimHistory(history, player.HistoryPerMode))

	e.profile.Level = e.level
	e.profile.GamesPlayed++
	e.profile.Streak = e.streak
	if e.maxStreak > e.profile.BestStreak {
		e.profile.BestStreak = e.maxStreak
	}
	_ = e.store.SaveProfile(ctx, e.profile)

	e.current = nil
	e.summary = &result
	e.phase = PhaseEnded
}

// Done discards the ended game back to Idle without further mutation.
func (e *Engine) Done() {
	if e.phase != PhaseEnded {
		return
	}
	e.phase = PhaseIdle
	e.summary = nil
	e.current = nil
}

func (e *Engine) nextProblem() {
	p := e.gen.Generate(e.level, game.RankForLevel(e.level))
	e.current = &p
}

// accuracy approximates attempts as solved + max(0, solved - streak).
// Misses are not tracked separately, so long streaks read as fewer
// attempts; this mirrors the original scoring and is kept as-is.
func (e *Engine) accuracy() float64 {
	attempts := e.solved + max(0, e.solved-e.streak)
	if attempts == 0 {
		return 0
	}
	return float64(e.solved) / float64(attempts)
}
