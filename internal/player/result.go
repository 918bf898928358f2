package player

import (
	"sort"
	"time"

	"github.com/abhisek/mathrush/internal/game"
)

// HistoryPerMode is how many results are retained per mode, highest score first.
const HistoryPerMode = 10

// GameResult records one completed game. It is appended to history and
// never mutated afterwards.
type GameResult struct {
	ID        string    `json:"id"`
	Mode      game.Mode `json:"mode"`
	Score     int       `json:"score"`
	ElapsedMs int64     `json:"elapsed_ms"`
	Timestamp time.Time `json:"timestamp"`
	Level     int       `json:"level"`
	Solved    int       `json:"solved"`
	Accuracy  float64   `json:"accuracy"`
}

// TrimHistory keeps the perMode highest-scoring results for each mode.
// The sort is stable, so equal scores keep their insertion order.
func TrimHistory(results []GameResult, perMode int) []GameResult {
	byMode := make(map[game.Mode][]GameResult)
	var modes []game.Mode
	for _, r := range results {
		if _, ok := byMode[r.Mode]; !ok {
			modes = append(modes, r.Mode)
		}
		byMode[r.Mode] = append(byMode[r.Mode], r)
	}

	trimmed := make([]GameResult, 0, len(results))
	for _, m := range modes {
		rs := byMode[m]
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].Score > rs[j].Score
		})
		if len(rs) > perMode {
			rs = rs[:perMode]
		}
		trimmed = append(trimmed, rs...)
	}
	return trimmed
}

// BestByMode returns the retained results for one mode, best score first.
func BestByMode(results []GameResult, mode game.Mode) []GameResult {
	var rs []GameResult
	for _, r := range results {
		if r.Mode == mode {
			rs = append(rs, r)
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Score > rs[j].Score
	})
	return rs
}
