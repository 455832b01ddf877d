package postgres

type leaderboardEntryTableModel struct {
	SeasonID   string  `db:"season_id"`
	Kind       string  `db:"kind"`
	Position   int     `db:"position"`
	GameID     string  `db:"game_id"`
	PlayerID   string  `db:"player_id"`
	TeamID     string  `db:"team_id"`
	GameDate   string  `db:"game_date"`
	Week       string  `db:"week"`
	Points     float64 `db:"points"`
	GlobalRank int     `db:"global_rank"`
}
