package player

// Settings is the small preference set. It has its own lifecycle and is
// persisted on every change.
type Settings struct {
	Sound    bool `json:"sound"`
	Haptics  bool `json:"haptics"`
	DarkMode bool `json:"dark_mode"`
}

// DefaultSettings returns the first-run preferences.
func DefaultSettings() Settings {
	return Settings{
		Sound:    true,
		Haptics:  true,
		DarkMode: true,
	}
}
