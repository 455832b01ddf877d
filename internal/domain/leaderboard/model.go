package leaderboard

// Size caps every leaderboard at the top 250 single-game performances.
const Size = 250

type Kind string

const (
	// KindTopScores orders entries by raw score, best first.
	KindTopScores Kind = "top_scores"
	// KindBestRanks orders entries by global finish rank, best (lowest) first.
	KindBestRanks Kind = "best_ranks"
)

// Entry references one lineup-entry performance on a board.
type Entry struct {
	Position   int
	GameID     string
	PlayerID   string
	TeamID     string
	Date       string
	Week       string
	Points     float64
	GlobalRank int
}

// Board is a flat ordered leaderboard for one season.
type Board struct {
	SeasonID string
	Kind     Kind
	Entries  []Entry
}
