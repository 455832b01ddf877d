package player

// Player is roster metadata for one season. Rookie and AllStar are editorial
// flags maintained by the league, not derived from game data.
type Player struct {
	ID       string
	SeasonID string
	Name     string
	Rookie   bool
	AllStar  bool
}
