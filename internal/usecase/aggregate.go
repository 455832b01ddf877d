package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/player"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
	"github.com/rkl-hq/season-engine/internal/domain/team"
)

// SeasonAggregate holds every seasonal document derived for one season, keyed
// by entity id.
type SeasonAggregate struct {
	Players map[string]seasonstats.PlayerSeason
	Teams   map[string]seasonstats.TeamSeason
}

// splitAccumulator folds one player's enriched entries for one subset of games
// (regular season or postseason) into running sums. It starts from zero on
// every pass; there is no hidden carry-over between runs.
type splitAccumulator struct {
	games       int
	points      float64
	war         float64
	aboveMean   int
	aboveMedian int
	meanSum     float64
	medianSum   float64
	ranks       []float64
	top100      int
	top50       int
}

func (a *splitAccumulator) observe(entry gamelog.EnrichedEntry, b baseline.DailyBaseline) {
	a.games++
	a.points += entry.Points
	a.war += entry.SingleGameWar
	a.aboveMean += entry.AboveAvg
	a.aboveMedian += entry.AboveMed
	a.meanSum += b.MeanScore
	a.medianSum += b.MedianScore

	// Unranked games (rank 0 or absent) contribute nothing to the rank
	// statistics, not a zero.
	if entry.GlobalRank > 0 {
		a.ranks = append(a.ranks, float64(entry.GlobalRank))
		if entry.GlobalRank <= 100 {
			a.top100++
		}
		if entry.GlobalRank <= 50 {
			a.top50++
		}
	}
}

func (a *splitAccumulator) finalize() seasonstats.SplitStats {
	games := float64(a.games)
	return seasonstats.SplitStats{
		GamesPlayed:      a.games,
		TotalPoints:      a.points,
		War:              a.war,
		AboveMeanCount:   a.aboveMean,
		AboveMeanPct:     guardedRatio(float64(a.aboveMean), games),
		AboveMedianCount: a.aboveMedian,
		AboveMedianPct:   guardedRatio(float64(a.aboveMedian), games),
		RelMean:          guardedRatio(a.points, a.meanSum),
		RelMedian:        guardedRatio(a.points, a.medianSum),
		MedianRank:       medianOf(a.ranks),
		MeanRank:         meanOf(a.ranks),
		Gem:              geometricMeanOf(a.ranks),
		Top100:           a.top100,
		Top100Pct:        guardedRatio(float64(a.top100), games),
		Top50:            a.top50,
		Top50Pct:         guardedRatio(float64(a.top50), games),
	}
}

type teamAccumulator struct {
	wins      int
	losses    int
	pam       float64
	pamPctSum float64
	pamRows   int
	ranks     []float64
}

// AggregateSeason folds enriched entries, team daily scores, and game
// outcomes into per-player and per-team seasonal documents. Postseason
// entries feed a fully separate accumulator so the post_ fields never
// contaminate regular-season sums. Team win/loss records cover completed
// regular-season games only; that is what the standings and the
// remaining-games ceiling are defined over.
func AggregateSeason(
	cfg seasonstats.Config,
	seasonID string,
	enriched []gamelog.EnrichedEntry,
	baselines map[string]baseline.DailyBaseline,
	teamScores []baseline.TeamDailyScore,
	games []gamelog.GameResult,
	teams []team.Team,
	roster []player.Player,
) SeasonAggregate {
	cfg = cfg.Normalize()

	type playerSplit struct {
		regular splitAccumulator
		post    splitAccumulator
	}
	playerAcc := make(map[string]*playerSplit)
	teamAcc := make(map[string]*teamAccumulator)

	getTeam := func(id string) *teamAccumulator {
		acc, exists := teamAcc[id]
		if !exists {
			acc = &teamAccumulator{}
			teamAcc[id] = acc
		}
		return acc
	}

	for _, entry := range enriched {
		acc, exists := playerAcc[entry.PlayerID]
		if !exists {
			acc = &playerSplit{}
			playerAcc[entry.PlayerID] = acc
		}
		b := baselines[entry.Date]
		if entry.Postseason {
			acc.post.observe(entry, b)
		} else {
			acc.regular.observe(entry, b)
		}

		if entry.GlobalRank > 0 {
			tacc := getTeam(entry.TeamID)
			tacc.ranks = append(tacc.ranks, float64(entry.GlobalRank))
		}
	}

	for _, game := range games {
		if !game.Completed || game.Postseason || game.WinnerID == "" {
			continue
		}
		loserID := game.TeamTwoID
		if game.WinnerID == game.TeamTwoID {
			loserID = game.TeamOneID
		}
		getTeam(game.WinnerID).wins++
		getTeam(loserID).losses++
	}

	for _, row := range teamScores {
		acc := getTeam(row.TeamID)
		acc.pam += row.PointsAboveMedian
		acc.pamPctSum += row.PctAboveMedian
		acc.pamRows++
	}

	// Roster metadata is optional; players appearing in game logs without a
	// roster row keep zero-valued flags and an empty name.
	rosterMeta := make(map[string]player.Player, len(roster))
	for _, p := range roster {
		rosterMeta[p.ID] = p
	}

	players := make(map[string]seasonstats.PlayerSeason, len(playerAcc))
	for playerID, acc := range playerAcc {
		meta := rosterMeta[playerID]
		players[playerID] = seasonstats.PlayerSeason{
			PlayerID: playerID,
			SeasonID: seasonID,
			Name:     meta.Name,
			Rookie:   meta.Rookie,
			AllStar:  meta.AllStar,
			Regular:  acc.regular.finalize(),
			Post:     acc.post.finalize(),
			Ranks:    map[string]int{},
		}
	}

	// Every rostered team gets a record, zero-valued when it has not played.
	teamMeta := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamMeta[t.ID] = t
		getTeam(t.ID)
	}

	out := SeasonAggregate{
		Players: players,
		Teams:   make(map[string]seasonstats.TeamSeason, len(teamAcc)),
	}
	for teamID, acc := range teamAcc {
		played := acc.wins + acc.losses
		wpct := guardedRatio(float64(acc.wins), float64(played))
		meta := teamMeta[teamID]

		out.Teams[teamID] = seasonstats.TeamSeason{
			TeamID:           teamID,
			SeasonID:         seasonID,
			Name:             meta.Name,
			Conference:       meta.Conference,
			Wins:             acc.wins,
			Losses:           acc.losses,
			WinPct:           wpct,
			PAM:              acc.pam,
			AvgPctPAM:        guardedRatio(acc.pamPctSum, float64(acc.pamRows)),
			MedStarterRank:   medianOf(acc.ranks),
			SortScore:        wpct + acc.pam*cfg.SortscorePAMEpsilon,
			MaxPotentialWins: cfg.RegularSeasonGames - acc.losses,
		}
	}
	return out
}

// SortedPlayers returns the player documents ordered by player id, the
// deterministic order the writer receives.
func (a SeasonAggregate) SortedPlayers() []seasonstats.PlayerSeason {
	out := make([]seasonstats.PlayerSeason, 0, len(a.Players))
	for _, p := range a.Players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// SortedTeams returns the team documents ordered by team id.
func (a SeasonAggregate) SortedTeams() []seasonstats.TeamSeason {
	out := make([]seasonstats.TeamSeason, 0, len(a.Teams))
	for _, t := range a.Teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}

// geometricMeanOf is the n-th root of the product of the values. The inputs
// are pre-filtered to positive ranks; an empty list yields 0, not 1.
func geometricMeanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	v, err := stats.GeometricMean(values)
	if err != nil {
		return 0
	}
	return v
}
