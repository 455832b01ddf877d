package usecase

import (
	"github.com/rkl-hq/season-engine/internal/domain/ranking"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

// minRankedGames is the eligibility floor for the per-game-quality
// leaderboards; counting stats rank everyone.
const minRankedGames = 3

type rankSpec struct {
	metric string
	opts   ranking.Options
}

// playerRankSpecs is the full table of ranked player metrics. Rate metrics
// that read "lower is better" rank ascending and exclude exact zeros so a
// player with no ranked games cannot claim the top slot. Every spec is
// mirrored for the postseason under the post_ prefix.
func playerRankSpecs() []rankSpec {
	base := []rankSpec{
		{metric: seasonstats.MetricTotalPoints},
		{metric: seasonstats.MetricWar},
		{metric: seasonstats.MetricRelMean, opts: ranking.Options{MinGames: minRankedGames}},
		{metric: seasonstats.MetricRelMedian, opts: ranking.Options{MinGames: minRankedGames}},
		{metric: seasonstats.MetricGem, opts: ranking.Options{Ascending: true, MinGames: minRankedGames, ExcludeZero: true}},
		{metric: seasonstats.MetricMedianRank, opts: ranking.Options{Ascending: true, MinGames: minRankedGames, ExcludeZero: true}},
		{metric: seasonstats.MetricMeanRank, opts: ranking.Options{Ascending: true, MinGames: minRankedGames, ExcludeZero: true}},
		{metric: seasonstats.MetricAboveMeanCount, opts: ranking.Options{Tiebreaker: seasonstats.MetricAboveMeanPct}},
		{metric: seasonstats.MetricAboveMedianCount, opts: ranking.Options{Tiebreaker: seasonstats.MetricAboveMedianPct}},
		{metric: seasonstats.MetricTop100, opts: ranking.Options{Tiebreaker: seasonstats.MetricTop100Pct}},
		{metric: seasonstats.MetricTop50, opts: ranking.Options{Tiebreaker: seasonstats.MetricTop50Pct}},
	}

	out := make([]rankSpec, 0, len(base)*2)
	out = append(out, base...)
	for _, spec := range base {
		post := spec
		post.metric = seasonstats.PostMetricPrefix + spec.metric
		if spec.opts.Tiebreaker != "" {
			post.opts.Tiebreaker = seasonstats.PostMetricPrefix + spec.opts.Tiebreaker
		}
		out = append(out, post)
	}
	return out
}

// RankPlayers runs every player rank pass over the population and returns the
// documents with their rank maps populated. The input order is the stable
// sort order for exact ties, so callers pass a deterministically ordered
// slice.
func RankPlayers(players []seasonstats.PlayerSeason) []seasonstats.PlayerSeason {
	out := make([]seasonstats.PlayerSeason, len(players))
	population := make([]ranking.Entity, len(players))
	for i, p := range players {
		doc := p
		doc.Ranks = make(map[string]int, len(p.Ranks))
		for k, v := range p.Ranks {
			doc.Ranks[k] = v
		}
		out[i] = doc
		population[i] = doc
	}

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.PlayerID] = i
	}

	for _, spec := range playerRankSpecs() {
		ranks := ranking.Rank(population, spec.metric, spec.opts)
		for id, rank := range ranks {
			out[index[id]].Ranks[spec.metric] = rank
		}
	}
	return out
}

// RankTeams fills the two team leaderboards: median starter rank (ascending,
// zero means no ranked starters and is excluded) and cumulative PAM
// (descending). Teams missing from a board keep rank 0, read as unranked.
func RankTeams(teams []seasonstats.TeamSeason) []seasonstats.TeamSeason {
	out := make([]seasonstats.TeamSeason, len(teams))
	population := make([]ranking.Entity, len(teams))
	for i, t := range teams {
		out[i] = t
		population[i] = t
	}

	index := make(map[string]int, len(out))
	for i, t := range out {
		index[t.TeamID] = i
	}

	msr := ranking.Rank(population, seasonstats.MetricMedStarterRank, ranking.Options{Ascending: true, ExcludeZero: true})
	for id, rank := range msr {
		out[index[id]].MSRRank = rank
	}

	pam := ranking.Rank(population, seasonstats.MetricPAM, ranking.Options{})
	for id, rank := range pam {
		out[index[id]].PAMRank = rank
	}
	return out
}
