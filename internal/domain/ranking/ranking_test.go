package ranking

import (
	"testing"

	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

type stubEntity struct {
	id     string
	values map[string]float64
}

func (s stubEntity) EntityID() string {
	return s.id
}

func (s stubEntity) MetricValue(metric string) (float64, bool) {
	v, ok := s.values[metric]
	return v, ok
}

func entities(items ...stubEntity) []Entity {
	out := make([]Entity, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func TestRank_DensePositionalRanksOnTies(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "p1", values: map[string]float64{"war": 10, "games_played": 5}},
		stubEntity{id: "p2", values: map[string]float64{"war": 10, "games_played": 5}},
		stubEntity{id: "p3", values: map[string]float64{"war": 5, "games_played": 5}},
	)

	got := Rank(population, "war", Options{})
	if len(got) != 3 {
		t.Fatalf("expected 3 ranks, got %d", len(got))
	}

	seen := make(map[int]int, len(got))
	for _, rank := range got {
		seen[rank]++
	}
	for want := 1; want <= 3; want++ {
		if seen[want] != 1 {
			t.Fatalf("ranks are not a permutation of 1..3: %v", got)
		}
	}

	// Equal values keep input order under the stable sort.
	if got["p1"] != 1 || got["p2"] != 2 {
		t.Fatalf("tied pair did not keep encounter order: %v", got)
	}
	if got["p3"] != 3 {
		t.Fatalf("expected p3 at rank 3, got %d", got["p3"])
	}
}

func TestRank_EligibilityFilterLeavesNoGap(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "p1", values: map[string]float64{"rel_median": 1.4, "games_played": 6}},
		stubEntity{id: "p2", values: map[string]float64{"rel_median": 1.3, "games_played": 2}},
		stubEntity{id: "p3", values: map[string]float64{"rel_median": 1.2, "games_played": 4}},
		stubEntity{id: "p4", values: map[string]float64{"rel_median": 1.1, "games_played": 3}},
		stubEntity{id: "p5", values: map[string]float64{"rel_median": 0.9, "games_played": 9}},
	)

	got := Rank(population, "rel_median", Options{MinGames: 3})
	if len(got) != 4 {
		t.Fatalf("expected 4 ranked entities, got %d: %v", len(got), got)
	}
	if _, exists := got["p2"]; exists {
		t.Fatalf("ineligible entity received a rank: %v", got)
	}
	if got["p1"] != 1 || got["p3"] != 2 || got["p4"] != 3 || got["p5"] != 4 {
		t.Fatalf("filtered population left a gap in ranks: %v", got)
	}
}

func TestRank_AscendingWithExcludeZero(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "never-ranked", values: map[string]float64{"gem": 0, "games_played": 5}},
		stubEntity{id: "steady", values: map[string]float64{"gem": 40, "games_played": 5}},
		stubEntity{id: "streaky", values: map[string]float64{"gem": 120, "games_played": 5}},
	)

	got := Rank(population, "gem", Options{Ascending: true, MinGames: 3, ExcludeZero: true})
	if len(got) != 2 {
		t.Fatalf("expected zero-valued entity to be dropped, got %v", got)
	}
	if got["steady"] != 1 || got["streaky"] != 2 {
		t.Fatalf("ascending order wrong: %v", got)
	}
}

func TestRank_TiebreakerOrdersEqualPrimaries(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "low-pct", values: map[string]float64{"aag_mean": 7, "aag_mean_pct": 0.5, "games_played": 10}},
		stubEntity{id: "high-pct", values: map[string]float64{"aag_mean": 7, "aag_mean_pct": 0.7, "games_played": 10}},
		stubEntity{id: "leader", values: map[string]float64{"aag_mean": 9, "aag_mean_pct": 0.6, "games_played": 12}},
	)

	got := Rank(population, "aag_mean", Options{Tiebreaker: "aag_mean_pct"})
	if got["leader"] != 1 || got["high-pct"] != 2 || got["low-pct"] != 3 {
		t.Fatalf("tiebreaker did not order equal primaries: %v", got)
	}
}

func TestRank_PostMetricChecksPostseasonGames(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "deep-run", values: map[string]float64{
			"post_war": 1.5, "post_games_played": 4, "games_played": 15,
		}},
		stubEntity{id: "missed-playoffs", values: map[string]float64{
			"post_war": 0, "post_games_played": 0, "games_played": 15,
		}},
	)

	got := Rank(population, seasonstats.PostMetricPrefix+"war", Options{MinGames: 1})
	if len(got) != 1 {
		t.Fatalf("expected only the postseason participant, got %v", got)
	}
	if got["deep-run"] != 1 {
		t.Fatalf("unexpected postseason ranking: %v", got)
	}
}

func TestRank_MissingMetricSortsAsZero(t *testing.T) {
	t.Parallel()

	population := entities(
		stubEntity{id: "has-metric", values: map[string]float64{"war": 2, "games_played": 5}},
		stubEntity{id: "missing-metric", values: map[string]float64{"games_played": 5}},
	)

	got := Rank(population, "war", Options{})
	if got["has-metric"] != 1 || got["missing-metric"] != 2 {
		t.Fatalf("missing metric was not sorted as zero: %v", got)
	}
}

func TestRank_EmptyPopulation(t *testing.T) {
	t.Parallel()

	got := Rank(nil, "war", Options{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty map for empty population, got %v", got)
	}
}
