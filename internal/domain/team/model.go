package team

// Team is league-roster metadata carried onto the seasonal record.
type Team struct {
	ID         string
	SeasonID   string
	Name       string
	Conference string
}
