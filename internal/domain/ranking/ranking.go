// Package ranking assigns dense 1-based positional ranks over a population of
// seasonal documents. One parameterized engine replaces the per-metric
// sort-and-loop blocks the league's old scripts repeated for every
// leaderboard.
package ranking

import (
	"sort"

	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

// Entity is anything rankable: a player or team seasonal document.
// MetricValue reports false when the document has no such field; the engine
// then sorts it as 0 but still applies eligibility filters against that
// default.
type Entity interface {
	EntityID() string
	MetricValue(metric string) (float64, bool)
}

// Options parameterize one rank pass.
type Options struct {
	// Tiebreaker is a secondary metric compared descending when primary
	// values are equal. Empty means no secondary key.
	Tiebreaker string
	// Ascending ranks lower values first (used where rank 1 beats rank 100).
	Ascending bool
	// MinGames filters out entities below a games-played floor. The floor is
	// checked against post_games_played for post_-prefixed metrics and
	// games_played otherwise.
	MinGames int
	// ExcludeZero drops entities whose metric value is exactly 0, for metrics
	// where "never recorded" must not tie for the best rank.
	ExcludeZero bool
}

type candidate struct {
	id       string
	value    float64
	tiebreak float64
}

// Rank returns entity id -> dense rank for one metric. Ineligible entities are
// absent from the map. Ranks are strictly positional: exact ties still receive
// sequential ranks in the stable sort order. That mirrors the league's
// historical leaderboards and is relied on by display code, so it is kept
// rather than collapsed into shared ranks.
func Rank(population []Entity, metric string, opts Options) map[string]int {
	if len(population) == 0 {
		return map[string]int{}
	}

	gamesField := seasonstats.MetricGamesPlayed
	if _, post := hasPostPrefix(metric); post {
		gamesField = seasonstats.PostMetricPrefix + seasonstats.MetricGamesPlayed
	}

	eligible := make([]candidate, 0, len(population))
	for _, entity := range population {
		games, _ := entity.MetricValue(gamesField)
		if games < float64(opts.MinGames) {
			continue
		}

		value, _ := entity.MetricValue(metric)
		if opts.ExcludeZero && value == 0 {
			continue
		}

		tiebreak := 0.0
		if opts.Tiebreaker != "" {
			tiebreak, _ = entity.MetricValue(opts.Tiebreaker)
		}

		eligible = append(eligible, candidate{
			id:       entity.EntityID(),
			value:    value,
			tiebreak: tiebreak,
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.value != b.value {
			if opts.Ascending {
				return a.value < b.value
			}
			return a.value > b.value
		}
		// Secondary key is always best-value-first regardless of the
		// primary direction.
		return a.tiebreak > b.tiebreak
	})

	out := make(map[string]int, len(eligible))
	for i, c := range eligible {
		out[c.id] = i + 1
	}
	return out
}

func hasPostPrefix(metric string) (string, bool) {
	const n = len(seasonstats.PostMetricPrefix)
	if len(metric) > n && metric[:n] == seasonstats.PostMetricPrefix {
		return metric[n:], true
	}
	return metric, false
}
