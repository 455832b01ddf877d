package querybuilder

import "testing"

func TestSelect_WhereOrderLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("game_id", "player_id", "points").
		From("lineup_entries").
		Where(Eq("season_id", "s7")).
		OrderBy("game_date ASC", "game_id ASC").
		Limit(250).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT game_id, player_id, points FROM lineup_entries WHERE season_id = $1 ORDER BY game_date ASC, game_id ASC LIMIT 250"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 1 || args[0] != "s7" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_InConditionEmptyValues(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").
		From("games").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT id FROM games WHERE 1=0" {
		t.Fatalf("empty IN did not short-circuit: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("daily_baselines").
		Columns("season_id", "game_date", "median_score").
		Values("s7", "2026-01-05", 41250.0).
		Values("s7", "2026-01-06", 39980.5).
		Suffix("ON CONFLICT (season_id, game_date) DO UPDATE SET median_score = EXCLUDED.median_score").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "INSERT INTO daily_baselines (season_id, game_date, median_score) VALUES ($1, $2, $3), ($4, $5, $6) " +
		"ON CONFLICT (season_id, game_date) DO UPDATE SET median_score = EXCLUDED.median_score"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
}

func TestInsert_RowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("teams").
		Columns("id", "name").
		Values("t1").
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}

func TestDelete_RequiresConditions(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("leaderboard_entries").ToSQL(); err == nil {
		t.Fatal("expected error for unconditional delete")
	}

	query, args, err := DeleteFrom("leaderboard_entries").
		Where(Eq("season_id", "s7"), Eq("board_kind", "top_scores")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	want := "DELETE FROM leaderboard_entries WHERE season_id = $1 AND board_kind = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
