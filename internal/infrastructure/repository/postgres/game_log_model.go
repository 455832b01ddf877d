package postgres

import "database/sql"

type gameTableModel struct {
	ID           string          `db:"id"`
	SeasonID     string          `db:"season_id"`
	GameDate     string          `db:"game_date"`
	Week         string          `db:"week"`
	TeamOneID    string          `db:"team_one_id"`
	TeamTwoID    string          `db:"team_two_id"`
	TeamOneScore sql.NullFloat64 `db:"team_one_score"`
	TeamTwoScore sql.NullFloat64 `db:"team_two_score"`
	WinnerID     sql.NullString  `db:"winner_id"`
	Completed    bool            `db:"completed"`
	Postseason   bool            `db:"postseason"`
}

type lineupEntryTableModel struct {
	GameID     string  `db:"game_id"`
	PlayerID   string  `db:"player_id"`
	TeamID     string  `db:"team_id"`
	SeasonID   string  `db:"season_id"`
	GameDate   string  `db:"game_date"`
	Week       string  `db:"week"`
	Started    bool    `db:"started"`
	IsCaptain  bool    `db:"is_captain"`
	Points     float64 `db:"points"`
	GlobalRank int     `db:"global_rank"`
	Postseason bool    `db:"postseason"`
}
