package postgres

type playerTableModel struct {
	ID       string `db:"id"`
	SeasonID string `db:"season_id"`
	Name     string `db:"name"`
	Rookie   bool   `db:"rookie"`
	AllStar  bool   `db:"all_star"`
}
