package game

import "time"

// Mode identifies one of the three game modes. Results reference modes by
// value, so these strings are also the persisted representation.
type Mode string

const (
	// ModeTimeAttack is a 30-second countdown; answer as many as possible.
	ModeTimeAttack Mode = "time_attack"

	// ModeCountChallenge is untimed; the game ends after a fixed number of
	// solved problems.
	ModeCountChallenge Mode = "count_challenge"

	// ModeDailyStreak is a 60-second countdown for the daily run.
	ModeDailyStreak Mode = "daily_streak"
)

// CountChallengeTarget is the number of solved problems that completes a
// count-challenge game.
const CountChallengeTarget = 10

// Modes lists every mode in menu order.
var Modes = []Mode{ModeTimeAttack, ModeCountChallenge, ModeDailyStreak}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeTimeAttack, ModeCountChallenge, ModeDailyStreak:
		return true
	}
	return false
}

// Timed reports whether the mode runs against a countdown.
func (m Mode) Timed() bool {
	return m != ModeCountChallenge
}

// Limit returns the countdown duration for timed modes, zero otherwise.
func (m Mode) Limit() time.Duration {
	switch m {
	case ModeTimeAttack:
		return 30 * time.Second
	case ModeDailyStreak:
		return 60 * time.Second
	}
	return 0
}

// Target returns the solved-problem target for count-challenge, zero otherwise.
func (m Mode) Target() int {
	if m == ModeCountChallenge {
		return CountChallengeTarget
	}
	return 0
}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeTimeAttack:
		return "Time Attack"
	case ModeCountChallenge:
		return "Count Challenge"
	case ModeDailyStreak:
		return "Daily Streak"
	}
	return string(m)
}
