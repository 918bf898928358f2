package game

// Rank is the coarse difficulty tier derived from the player's level.
// It selects which problem family the generator draws from and is always
// computed from the level, never stored on its own.
type Rank int

const (
	RankNovice Rank = iota
	RankLearner
	RankAdept
	RankSkilled
	RankExpert
	RankMaster
	RankGrandmaster
	RankLegend
	RankMythic
	RankImmortal
)

// levelsPerRank is the number of levels spanned by each tier.
const levelsPerRank = 5

var rankNames = [...]string{
	"Novice",
	"Learner",
	"Adept",
	"Skilled",
	"Expert",
	"Master",
	"Grandmaster",
	"Legend",
	"Mythic",
	"Immortal",
}

// RankForLevel derives the rank for a level. Levels below 1 are treated as
// level 1; the rank saturates at Immortal from level 46 up.
func RankForLevel(level int) Rank {
	if level < 1 {
		level = 1
	}
	r := Rank((level - 1) / levelsPerRank)
	if r > RankImmortal {
		r = RankImmortal
	}
	return r
}

// Index returns the zero-based tier index (Novice = 0, Immortal = 9).
func (r Rank) Index() int {
	return int(r)
}

func (r Rank) String() string {
	if r < RankNovice || r > RankImmortal {
		return "Unknown"
	}
	return rankNames[r]
}
