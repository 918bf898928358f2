package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/player"
)

// memStore is an in-memory Store double.
type memStore struct {
	profile      player.Profile
	history      []player.GameResult
	profileSaves int
	historySaves int
}

func newMemStore() *memStore {
	return &memStore{profile: player.DefaultProfile()}
}

func (m *memStore) LoadProfile(context.Context) player.Profile { return m.profile }

func (m *memStore) SaveProfile(_ context.Context, p player.Profile) error {
	m.profile = p
	m.profileSaves++
	return nil
}

func (m *memStore) LoadHistory(context.Context) []player.GameResult { return m.history }

func (m *memStore) SaveHistory(_ context.Context, rs []player.GameResult) error {
	m.history = rs
	m.historySaves++
	return nil
}

func testEngine(store *memStore) *Engine {
	gen := game.New(rand.New(rand.NewSource(1)))
	return New(gen, store)
}

// answer submits either the correct answer or a guaranteed-wrong one and
// clears the feedback phase.
func answer(t *testing.T, e *Engine, correct bool) {
	t.Helper()
	st := e.State()
	if st.Phase != PhaseActive || st.Problem == nil {
		t.Fatalf("no pending problem: phase %v", st.Phase)
	}
	a := st.Problem.Answer
	if !correct {
		a++
	}
	got, ok := e.Submit(a)
	if !ok {
		t.Fatal("submission rejected")
	}
	if got != correct {
		t.Fatalf("Submit correctness = %v, want %v", got, correct)
	}
	e.FinishFeedback(e.SessionID())
}

func TestStart_SetsModeParameters(t *testing.T) {
	e := testEngine(newMemStore())

	e.Start(game.ModeTimeAttack)
	st := e.State()
	if st.Phase != PhaseActive {
		t.Fatalf("phase = %v, want Active", st.Phase)
	}
	if st.Remaining != 30*time.Second {
		t.Errorf("Remaining = %v, want 30s", st.Remaining)
	}
	if st.Problem == nil {
		t.Error("no first problem generated")
	}
	if st.Score != 0 || st.Solved != 0 || st.Streak != 0 {
		t.Errorf("counters not reset: %+v", st)
	}
}

func TestStart_NoOpWhileRunning(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeTimeAttack)
	first := e.SessionID()

	e.Start(game.ModeDailyStreak)
	if e.SessionID() != first {
		t.Error("Start replaced a running game")
	}
	if e.State().Mode != game.ModeTimeAttack {
		t.Errorf("mode changed to %v", e.State().Mode)
	}
}

func TestStart_RejectsUnknownMode(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.Mode("speedrun"))
	if e.State().Phase != PhaseIdle {
		t.Errorf("phase = %v, want Idle", e.State().Phase)
	}
}

func TestSubmit_NoOpWhenIdle(t *testing.T) {
	e := testEngine(newMemStore())
	if _, ok := e.Submit(42); ok {
		t.Error("idle engine accepted a submission")
	}
}

func TestSubmit_Scoring(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeCountChallenge)

	// Level 1, no streak bonus: 10 + 0 + 1*2.
	answer(t, e, true)
	if got := e.State().Score; got != 12 {
		t.Errorf("score after first correct = %d, want 12", got)
	}
	if got := e.State().Streak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestSubmit_IncorrectResetsStreakOnly(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeCountChallenge)

	answer(t, e, true)
	answer(t, e, true)
	scoreBefore := e.State().Score

	answer(t, e, false)
	st := e.State()
	if st.Streak != 0 {
		t.Errorf("streak = %d, want 0 after miss", st.Streak)
	}
	if st.Score != scoreBefore {
		t.Errorf("score changed on miss: %d → %d", scoreBefore, st.Score)
	}
	if st.Solved != 2 {
		t.Errorf("solved = %d, want 2", st.Solved)
	}
}

func TestSubmit_StreakBonus(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeCountChallenge)

	var scores []int
	for i := 0; i < 6; i++ {
		answer(t, e, true)
		scores = append(scores, e.State().Score)
	}

	// The streak bonus lands on the 6th correct answer (streak was 5 going in).
	fifth := scores[4] - scores[3]
	sixth := scores[5] - scores[4]
	if sixth-fifth != 2 {
		t.Errorf("6th answer bonus = %d, want +2 over the 5th (deltas %d, %d)", sixth-fifth, fifth, sixth)
	}
}

func TestLevelUp_EveryThirdSolvedWithStreak(t *testing.T) {
	store := newMemStore()
	e := testEngine(store)
	e.Start(game.ModeCountChallenge)

	answer(t, e, true)
	answer(t, e, true)
	if e.State().Level != 1 {
		t.Fatalf("level rose early: %d", e.State().Level)
	}
	answer(t, e, true)
	st := e.State()
	if st.Level != 2 {
		t.Errorf("level = %d, want 2 after third straight solve", st.Level)
	}
	if e.Profile().XP != 100 {
		t.Errorf("XP = %d, want 100", e.Profile().XP)
	}
}

func TestLevelUp_SkippedWithoutStreak(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeCountChallenge)

	// Third solve arrives with streak 1, so no level-up.
	answer(t, e, true)
	answer(t, e, true)
	answer(t, e, false)
	answer(t, e, true)
	st := e.State()
	if st.Solved != 3 {
		t.Fatalf("solved = %d, want 3", st.Solved)
	}
	if st.Level != 1 {
		t.Errorf("level = %d, want 1", st.Level)
	}
}

func TestCountChallenge_EndsAfterTargetRegardlessOfMisses(t *testing.T) {
	store := newMemStore()
	e := testEngine(store)
	e.Start(game.ModeCountChallenge)

	solved := 0
	for i := 0; solved < game.CountChallengeTarget; i++ {
		// Miss every third submission.
		correct := i%3 != 2
		answer(t, e, correct)
		if correct {
			solved++
		}
		if solved < game.CountChallengeTarget && e.State().Phase != PhaseActive {
			t.Fatalf("ended early at %d solved", solved)
		}
	}

	if got := e.State().Phase; got != PhaseEnded {
		t.Fatalf("phase = %v, want Ended after %d solved", got, game.CountChallengeTarget)
	}
	sum := e.State().Summary
	if sum == nil {
		t.Fatal("no summary after game end")
	}
	if sum.Solved != game.CountChallengeTarget {
		t.Errorf("summary solved = %d, want %d", sum.Solved, game.CountChallengeTarget)
	}
	if store.historySaves != 1 || store.profileSaves != 1 {
		t.Errorf("saves = (history %d, profile %d), want (1, 1)", store.historySaves, store.profileSaves)
	}
}

func TestTimeAttack_ExpiresFromTicksAlone(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeTimeAttack)
	sid := e.SessionID()

	for i := 0; i < 300; i++ {
		e.Tick(sid, TickInterval)
	}

	st := e.State()
	if st.Phase != PhaseEnded {
		t.Fatalf("phase = %v, want Ended after 30s of ticks", st.Phase)
	}
	if st.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", st.Remaining)
	}
	if st.Summary == nil || st.Summary.Solved != 0 {
		t.Errorf("summary = %+v, want zero solved", st.Summary)
	}
}

func TestTick_ExpiryDuringFeedbackEndsAtFeedbackDone(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeDailyStreak)
	sid := e.SessionID()

	st := e.State()
	e.Submit(st.Problem.Answer)

	// Clock runs out while feedback is showing.
	for i := 0; i < 600; i++ {
		e.Tick(sid, TickInterval)
	}
	if got := e.State().Phase; got != PhaseFeedback {
		t.Fatalf("phase = %v, want Feedback until the delay elapses", got)
	}

	e.FinishFeedback(sid)
	if got := e.State().Phase; got != PhaseEnded {
		t.Errorf("phase = %v, want Ended at feedback-done", got)
	}
}

func TestStaleMessagesAreNoOps(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeTimeAttack)
	sid := e.SessionID()

	e.Tick("someone-else", time.Hour)
	if e.State().Remaining != 30*time.Second {
		t.Error("tick with foreign session ID mutated the clock")
	}

	st := e.State()
	e.Submit(st.Problem.Answer)
	e.FinishFeedback("someone-else")
	if e.State().Phase != PhaseFeedback {
		t.Error("stale FinishFeedback advanced the game")
	}

	// End the game, then fire the leftover deferred advance.
	e.End()
	e.FinishFeedback(sid)
	if e.State().Phase != PhaseEnded {
		t.Error("deferred advance mutated an ended game")
	}
	e.Tick(sid, time.Hour)
	if e.State().Elapsed >= time.Hour {
		t.Error("tick mutated an ended game")
	}
}

func TestEnd_UpdatesProfileAndHistory(t *testing.T) {
	store := newMemStore()
	e := testEngine(store)
	e.Start(game.ModeCountChallenge)

	answer(t, e, true)
	answer(t, e, true)
	e.End()

	if store.profile.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", store.profile.GamesPlayed)
	}
	if store.profile.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", store.profile.BestStreak)
	}
	if len(store.history) != 1 {
		t.Fatalf("history len = %d, want 1", len(store.history))
	}
	if store.history[0].Mode != game.ModeCountChallenge {
		t.Errorf("history mode = %v", store.history[0].Mode)
	}

	// Accuracy proxy: 2 solved, streak 2 → attempts 2.
	if got := store.history[0].Accuracy; got != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", got)
	}
}

func TestAccuracyProxy(t *testing.T) {
	store := newMemStore()
	e := testEngine(store)
	e.Start(game.ModeCountChallenge)

	// 3 solved, then a miss resets the streak, then 1 more solved:
	// solved=4, streak=1 → attempts = 4 + (4-1) = 7.
	answer(t, e, true)
	answer(t, e, true)
	answer(t, e, true)
	answer(t, e, false)
	answer(t, e, true)
	e.End()

	want := 4.0 / 7.0
	if got := store.history[0].Accuracy; got != want {
		t.Errorf("accuracy = %v, want %v", got, want)
	}
}

func TestDone_ReturnsToIdle(t *testing.T) {
	e := testEngine(newMemStore())
	e.Start(game.ModeTimeAttack)
	e.End()

	e.Done()
	st := e.State()
	if st.Phase != PhaseIdle {
		t.Errorf("phase = %v, want Idle", st.Phase)
	}
	if st.Summary != nil {
		t.Error("summary not discarded")
	}

	// Done outside Ended is a no-op.
	e.Done()
	e.Start(game.ModeTimeAttack)
	e.Done()
	if e.State().Phase != PhaseActive {
		t.Error("Done mutated a running game")
	}
}

func TestReplay_FromEnded(t *testing.T) {
	store := newMemStore()
	e := testEngine(store)
	e.Start(game.ModeCountChallenge)
	first := e.SessionID()
	answer(t, e, true)
	e.End()

	e.Start(game.ModeCountChallenge)
	st := e.State()
	if st.Phase != PhaseActive {
		t.Fatalf("phase = %v, want Active on replay", st.Phase)
	}
	if e.SessionID() == first {
		t.Error("replay reused the old session ID")
	}
	if st.Score != 0 || st.Solved != 0 {
		t.Error("replay did not reset counters")
	}
}

func TestHistoryTrimmedOnEnd(t *testing.T) {
	store := newMemStore()
	for i := 0; i < 15; i++ {
		store.history = append(store.history, player.GameResult{
			ID:    "seed",
			Mode:  game.ModeTimeAttack,
			Score: 1000 + i,
		})
	}

	e := testEngine(store)
	e.Start(game.ModeTimeAttack)
	e.End()

	count := 0
	for _, r := range store.history {
		if r.Mode == game.ModeTimeAttack {
			count++
		}
	}
	if count != player.HistoryPerMode {
		t.Errorf("retained %d time-attack results, want %d", count, player.HistoryPerMode)
	}
}
