package seasonstats

// League-tuning constants. The factors come from the league's historical
// bookkeeping and are deliberately not derived from anything else; override
// them through Config, never inline.
const (
	DefaultRegularSeasonGames  = 15
	DefaultReplacementFactor   = 0.9
	DefaultWinThresholdFactor  = 0.92
	DefaultSortscorePAMEpsilon = 1e-8
)

// Config carries the per-league knobs the aggregation pipeline depends on.
// It is threaded explicitly through every stage so that several seasons or
// leagues can be recomputed in the same process without shared state.
type Config struct {
	RegularSeasonGames  int
	ReplacementFactor   float64
	WinThresholdFactor  float64
	SortscorePAMEpsilon float64
}

func DefaultConfig() Config {
	return Config{
		RegularSeasonGames:  DefaultRegularSeasonGames,
		ReplacementFactor:   DefaultReplacementFactor,
		WinThresholdFactor:  DefaultWinThresholdFactor,
		SortscorePAMEpsilon: DefaultSortscorePAMEpsilon,
	}
}

// Normalize fills zero-valued fields with league defaults.
func (c Config) Normalize() Config {
	out := c
	if out.RegularSeasonGames <= 0 {
		out.RegularSeasonGames = DefaultRegularSeasonGames
	}
	if out.ReplacementFactor <= 0 {
		out.ReplacementFactor = DefaultReplacementFactor
	}
	if out.WinThresholdFactor <= 0 {
		out.WinThresholdFactor = DefaultWinThresholdFactor
	}
	if out.SortscorePAMEpsilon <= 0 {
		out.SortscorePAMEpsilon = DefaultSortscorePAMEpsilon
	}
	return out
}

// Ranked metric names. These double as persisted document field names, so the
// strings are load-bearing and must stay stable.
const (
	MetricGamesPlayed      = "games_played"
	MetricTotalPoints      = "total_points"
	MetricWar              = "war"
	MetricAboveMeanCount   = "aag_mean"
	MetricAboveMeanPct     = "aag_mean_pct"
	MetricAboveMedianCount = "aag_median"
	MetricAboveMedianPct   = "aag_median_pct"
	MetricRelMean          = "rel_mean"
	MetricRelMedian        = "rel_median"
	MetricMedianRank       = "medrank"
	MetricMeanRank         = "meanrank"
	MetricGem              = "gem"
	MetricTop100           = "t100"
	MetricTop100Pct        = "t100_pct"
	MetricTop50            = "t50"
	MetricTop50Pct         = "t50_pct"

	MetricMedStarterRank = "med_starter_rank"
	MetricPAM            = "pam"

	// PostMetricPrefix marks the postseason twin of a player metric.
	PostMetricPrefix = "post_"
)

// SplitStats is one player's full set of seasonal aggregates for one subset of
// games (regular season or postseason). Every ratio field is zero when its
// denominator is zero.
type SplitStats struct {
	GamesPlayed      int
	TotalPoints      float64
	War              float64
	AboveMeanCount   int
	AboveMeanPct     float64
	AboveMedianCount int
	AboveMedianPct   float64
	RelMean          float64
	RelMedian        float64
	MedianRank       float64
	MeanRank         float64
	Gem              float64
	Top100           int
	Top100Pct        float64
	Top50            int
	Top50Pct         float64
}

func (s SplitStats) metricValue(name string) (float64, bool) {
	switch name {
	case MetricGamesPlayed:
		return float64(s.GamesPlayed), true
	case MetricTotalPoints:
		return s.TotalPoints, true
	case MetricWar:
		return s.War, true
	case MetricAboveMeanCount:
		return float64(s.AboveMeanCount), true
	case MetricAboveMeanPct:
		return s.AboveMeanPct, true
	case MetricAboveMedianCount:
		return float64(s.AboveMedianCount), true
	case MetricAboveMedianPct:
		return s.AboveMedianPct, true
	case MetricRelMean:
		return s.RelMean, true
	case MetricRelMedian:
		return s.RelMedian, true
	case MetricMedianRank:
		return s.MedianRank, true
	case MetricMeanRank:
		return s.MeanRank, true
	case MetricGem:
		return s.Gem, true
	case MetricTop100:
		return float64(s.Top100), true
	case MetricTop100Pct:
		return s.Top100Pct, true
	case MetricTop50:
		return float64(s.Top50), true
	case MetricTop50Pct:
		return s.Top50Pct, true
	}
	return 0, false
}

// PlayerSeason is a player's seasonal document: regular and postseason splits
// plus the dense rank assigned per metric. A missing key in Ranks means the
// player was not eligible for that leaderboard.
type PlayerSeason struct {
	PlayerID string
	SeasonID string
	Name     string
	Rookie   bool
	AllStar  bool
	Regular  SplitStats
	Post     SplitStats
	Ranks    map[string]int
}

func (p PlayerSeason) EntityID() string {
	return p.PlayerID
}

// MetricValue resolves a ranked metric by its document field name; post_
// prefixed names read from the postseason split.
func (p PlayerSeason) MetricValue(name string) (float64, bool) {
	if rest, ok := cutPostPrefix(name); ok {
		return p.Post.metricValue(rest)
	}
	return p.Regular.metricValue(name)
}

// TeamSeason is a team's seasonal record. SortScore orders the standings:
// win percentage dominates and cumulative PAM only breaks exact ties.
type TeamSeason struct {
	TeamID           string
	SeasonID         string
	Name             string
	Conference       string
	Wins             int
	Losses           int
	WinPct           float64
	PAM              float64
	AvgPctPAM        float64
	MedStarterRank   float64
	SortScore        float64
	MaxPotentialWins int
	MSRRank          int
	PAMRank          int
}

func (t TeamSeason) EntityID() string {
	return t.TeamID
}

func (t TeamSeason) MetricValue(name string) (float64, bool) {
	switch name {
	case MetricMedStarterRank:
		return t.MedStarterRank, true
	case MetricPAM:
		return t.PAM, true
	case MetricGamesPlayed:
		return float64(t.Wins + t.Losses), true
	}
	return 0, false
}

func cutPostPrefix(name string) (string, bool) {
	const n = len(PostMetricPrefix)
	if len(name) > n && name[:n] == PostMetricPrefix {
		return name[n:], true
	}
	return name, false
}
