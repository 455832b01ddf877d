package postgres

import (
	"strings"
	"testing"

	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

func TestBuildSeasonStatementsDeletesBeforeInserts(t *testing.T) {
	t.Parallel()

	set := seasonstats.DocumentSet{
		SeasonID: "s9",
		Entries: []gamelog.EnrichedEntry{
			{LineupEntry: gamelog.LineupEntry{GameID: "g1", PlayerID: "p1", TeamID: "t1", SeasonID: "s9", Date: "2024-01-05", Points: 80}},
		},
		Baselines: []baseline.DailyBaseline{
			{SeasonID: "s9", Date: "2024-01-05", TotalPlayers: 1, MeanScore: 80, MedianScore: 80},
		},
		TeamDailyScores: []baseline.TeamDailyScore{
			{SeasonID: "s9", TeamID: "t1", GameID: "g1", Date: "2024-01-05", Score: 80},
		},
		Players: []seasonstats.PlayerSeason{
			{PlayerID: "p1", SeasonID: "s9", Ranks: map[string]int{"war": 1}},
		},
		Teams: []seasonstats.TeamSeason{
			{TeamID: "t1", SeasonID: "s9"},
		},
		Leaderboards: []leaderboard.Board{
			{SeasonID: "s9", Kind: leaderboard.KindTopScores, Entries: []leaderboard.Entry{
				{Position: 1, GameID: "g1", PlayerID: "p1", TeamID: "t1", Date: "2024-01-05", Points: 80},
			}},
		},
	}

	statements, err := buildSeasonStatements(set)
	if err != nil {
		t.Fatalf("buildSeasonStatements() error = %v", err)
	}

	// 6 deletes plus one insert per document.
	if got, want := len(statements), 6+6; got != want {
		t.Fatalf("len(statements) = %d, want %d", got, want)
	}
	for i := 0; i < 6; i++ {
		if !strings.HasPrefix(statements[i].query, "DELETE FROM ") {
			t.Fatalf("statements[%d] = %q, want a DELETE", i, statements[i].query)
		}
		if len(statements[i].args) != 1 || statements[i].args[0] != "s9" {
			t.Fatalf("statements[%d] args = %v, want [s9]", i, statements[i].args)
		}
	}
	for i := 6; i < len(statements); i++ {
		if !strings.HasPrefix(statements[i].query, "INSERT INTO ") {
			t.Fatalf("statements[%d] = %q, want an INSERT", i, statements[i].query)
		}
	}
}

func TestBuildSeasonStatementsRequireSeasonMatchOnDeletes(t *testing.T) {
	t.Parallel()

	statements, err := buildSeasonStatements(seasonstats.DocumentSet{SeasonID: "s1"})
	if err != nil {
		t.Fatalf("buildSeasonStatements() error = %v", err)
	}
	for _, stmt := range statements {
		if !strings.Contains(stmt.query, "WHERE season_id = $1") {
			t.Fatalf("delete %q is not scoped to the season", stmt.query)
		}
	}
}

func TestBuildPlayerSeasonInsertCoversBothSplits(t *testing.T) {
	t.Parallel()

	p := seasonstats.PlayerSeason{
		PlayerID: "p1",
		SeasonID: "s1",
		Name:     "Sample Player",
		Regular:  seasonstats.SplitStats{GamesPlayed: 12, TotalPoints: 940.5, War: 2.5},
		Post:     seasonstats.SplitStats{GamesPlayed: 3, TotalPoints: 210},
		Ranks:    map[string]int{"total_points": 4},
	}

	stmt, err := buildPlayerSeasonInsert(p)
	if err != nil {
		t.Fatalf("buildPlayerSeasonInsert() error = %v", err)
	}

	for _, column := range []string{"games_played", "post_games_played", "gem", "post_gem", "ranks"} {
		if !strings.Contains(stmt.query, column) {
			t.Fatalf("insert %q is missing column %s", stmt.query, column)
		}
	}
	// 5 identity columns + 16 per split + ranks.
	if got, want := len(stmt.args), 5+16+16+1; got != want {
		t.Fatalf("len(args) = %d, want %d", got, want)
	}
}
