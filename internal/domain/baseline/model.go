package baseline

// DailyBaseline is the statistical reference for one calendar date: every
// individual performance that day is measured against it.
type DailyBaseline struct {
	SeasonID         string
	Date             string
	Week             string
	TotalPlayers     int
	MeanScore        float64
	MedianScore      float64
	ReplacementLevel float64
	WinThreshold     float64
}

// TeamDailyScore is one team's total in one game, measured against the median
// team total across all teams that played the same date.
type TeamDailyScore struct {
	SeasonID          string
	TeamID            string
	GameID            string
	Date              string
	Week              string
	Score             float64
	DailyMedian       float64
	AboveMedian       int
	PointsAboveMedian float64
	PctAboveMedian    float64
	Postseason        bool
}
