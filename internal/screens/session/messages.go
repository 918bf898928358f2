package session

// timerTickMsg advances game time. It carries the session ID it was
// scheduled for so ticks left over from a previous game are dropped.
type timerTickMsg struct {
	sessionID string
}

// feedbackDoneMsg ends the feedback overlay and advances the game. Stale
// session IDs are dropped the same way as timer ticks.
type feedbackDoneMsg struct {
	sessionID string
}
