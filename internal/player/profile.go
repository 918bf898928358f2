package player

import "github.com/abhisek/mathrush/internal/game"

// DefaultName is the placeholder name until the player picks one.
const DefaultName = "Player"

// DefaultAvatar is the starting avatar glyph.
const DefaultAvatar = "🦊"

// Profile is the local player profile. It is mutated after every completed
// game and through the settings screen, and persisted after every mutation.
type Profile struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	Streak      int    `json:"streak"`
	BestStreak  int    `json:"best_streak"`
	GamesPlayed int    `json:"games_played"`
}

// DefaultProfile returns the profile used on first run and whenever a
// persisted profile fails to decode.
func DefaultProfile() Profile {
	return Profile{
		Name:   DefaultName,
		Avatar: DefaultAvatar,
		Level:  1,
	}
}

// Rank derives the current rank from the level. The rank is never stored,
// so it cannot drift out of sync with the level.
func (p Profile) Rank() game.Rank {
	return game.RankForLevel(p.Level)
}
