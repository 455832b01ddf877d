package gamelog

import "fmt"

// GameResult is one completed (or scheduled) matchup between two teams.
// Scores are the lineup totals after captain weighting and manual adjustments.
type GameResult struct {
	ID           string
	SeasonID     string
	Date         string // calendar day, YYYY-MM-DD
	Week         string
	TeamOneID    string
	TeamTwoID    string
	TeamOneScore float64
	TeamTwoScore float64
	WinnerID     string
	Completed    bool
	Postseason   bool
}

// LineupEntry is one player's appearance in one game. Points is the adjusted
// raw score (captain weighting already applied upstream). GlobalRank is the
// player's finish position across the whole app that day; 0 means unranked.
type LineupEntry struct {
	GameID     string
	PlayerID   string
	TeamID     string
	SeasonID   string
	Date       string
	Week       string
	Started    bool
	IsCaptain  bool
	Points     float64
	GlobalRank int
	Postseason bool
}

// EnrichedEntry is a LineupEntry with its per-game derived metrics filled in
// against that date's baseline. Holding it as a distinct type keeps the
// aggregation stage from ever running on un-enriched rows.
type EnrichedEntry struct {
	LineupEntry

	AboveMean      float64
	AboveAvg       int
	PctAboveMean   float64
	AboveMedian    float64
	AboveMed       int
	PctAboveMedian float64
	SingleGameWar  float64
}

func (g GameResult) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game result is missing id")
	}
	if g.SeasonID == "" {
		return fmt.Errorf("game result %s is missing season id", g.ID)
	}
	if g.Date == "" {
		return fmt.Errorf("game result %s is missing date", g.ID)
	}
	if g.TeamOneID == "" || g.TeamTwoID == "" {
		return fmt.Errorf("game result %s is missing a team id", g.ID)
	}
	return nil
}

func (e LineupEntry) Validate() error {
	if e.GameID == "" {
		return fmt.Errorf("lineup entry is missing game id")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("lineup entry game=%s is missing player id", e.GameID)
	}
	if e.TeamID == "" {
		return fmt.Errorf("lineup entry game=%s player=%s is missing team id", e.GameID, e.PlayerID)
	}
	if e.Date == "" {
		return fmt.Errorf("lineup entry game=%s player=%s is missing date", e.GameID, e.PlayerID)
	}
	if e.Points < 0 {
		return fmt.Errorf("lineup entry game=%s player=%s has negative score", e.GameID, e.PlayerID)
	}
	return nil
}
