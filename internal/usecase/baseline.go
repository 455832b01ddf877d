package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

// ComputeDailyBaselines groups lineup entries by calendar date and derives the
// per-date reference values every single-game metric is measured against.
// Pure: the result depends only on the input collection.
func ComputeDailyBaselines(cfg seasonstats.Config, entries []gamelog.LineupEntry) map[string]baseline.DailyBaseline {
	cfg = cfg.Normalize()

	byDate := make(map[string][]gamelog.LineupEntry)
	for _, entry := range entries {
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	out := make(map[string]baseline.DailyBaseline, len(byDate))
	for date, group := range byDate {
		scores := make([]float64, 0, len(group))
		for _, entry := range group {
			scores = append(scores, entry.Points)
		}

		median := medianOf(scores)
		out[date] = baseline.DailyBaseline{
			SeasonID:         group[0].SeasonID,
			Date:             date,
			Week:             group[0].Week,
			TotalPlayers:     len(group),
			MeanScore:        meanOf(scores),
			MedianScore:      median,
			ReplacementLevel: median * cfg.ReplacementFactor,
			WinThreshold:     median * cfg.WinThresholdFactor,
		}
	}
	return out
}

// ComputeTeamDailyScores expands completed games into one row per team per
// game and measures each team total against the median team total posted on
// the same date.
func ComputeTeamDailyScores(games []gamelog.GameResult) []baseline.TeamDailyScore {
	type teamGame struct {
		game   gamelog.GameResult
		teamID string
		score  float64
	}

	byDate := make(map[string][]teamGame)
	for _, game := range games {
		if !game.Completed {
			continue
		}
		byDate[game.Date] = append(byDate[game.Date],
			teamGame{game: game, teamID: game.TeamOneID, score: game.TeamOneScore},
			teamGame{game: game, teamID: game.TeamTwoID, score: game.TeamTwoScore},
		)
	}

	out := make([]baseline.TeamDailyScore, 0)
	for date, group := range byDate {
		totals := make([]float64, 0, len(group))
		for _, tg := range group {
			totals = append(totals, tg.score)
		}
		dateMedian := medianOf(totals)

		for _, tg := range group {
			above := tg.score - dateMedian
			row := baseline.TeamDailyScore{
				SeasonID:          tg.game.SeasonID,
				TeamID:            tg.teamID,
				GameID:            tg.game.ID,
				Date:              date,
				Week:              tg.game.Week,
				Score:             tg.score,
				DailyMedian:       dateMedian,
				PointsAboveMedian: above,
				PctAboveMedian:    guardedRatio(above, dateMedian),
				Postseason:        tg.game.Postseason,
			}
			if above > 0 {
				row.AboveMedian = 1
			}
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].GameID != out[j].GameID {
			return out[i].GameID < out[j].GameID
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	v, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return v
}

// medianOf is the textbook median: the middle value, or the average of the two
// middle values for an even-sized input.
func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	v, err := stats.Median(values)
	if err != nil {
		return 0
	}
	return v
}

// guardedRatio substitutes 0 for any zero-denominator ratio. This is a
// correctness requirement of the stat documents, not error handling: derived
// fields must never hold NaN or Inf.
func guardedRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
