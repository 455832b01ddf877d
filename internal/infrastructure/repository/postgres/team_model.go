package postgres

import "database/sql"

type teamTableModel struct {
	ID         string         `db:"id"`
	SeasonID   string         `db:"season_id"`
	Name       string         `db:"name"`
	Conference sql.NullString `db:"conference"`
}
