package httpapi

import (
	"net/http"

	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
)

type leaderboardEntryDTO struct {
	Position   int     `json:"position"`
	GameID     string  `json:"game_id"`
	PlayerID   string  `json:"player_id"`
	TeamID     string  `json:"team_id"`
	Date       string  `json:"date"`
	Week       string  `json:"week,omitempty"`
	Points     float64 `json:"points"`
	GlobalRank int     `json:"global_rank,omitempty"`
}

type leaderboardDTO struct {
	SeasonID string                `json:"season_id"`
	Kind     string                `json:"kind"`
	Entries  []leaderboardEntryDTO `json:"entries"`
}

func (h *Handler) ListLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboards")
	defer span.End()

	boards, err := h.leaderboardService.ListBySeason(ctx, r.PathValue("seasonID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "list leaderboards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leaderboardDTO, 0, len(boards))
	for _, board := range boards {
		out = append(out, toLeaderboardDTO(board))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.GetBoard(ctx, r.PathValue("seasonID"), leaderboard.Kind(r.PathValue("kind")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeaderboardDTO(board))
}

func toLeaderboardDTO(board leaderboard.Board) leaderboardDTO {
	entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
	for _, entry := range board.Entries {
		entries = append(entries, leaderboardEntryDTO{
			Position:   entry.Position,
			GameID:     entry.GameID,
			PlayerID:   entry.PlayerID,
			TeamID:     entry.TeamID,
			Date:       entry.Date,
			Week:       entry.Week,
			Points:     entry.Points,
			GlobalRank: entry.GlobalRank,
		})
	}
	return leaderboardDTO{
		SeasonID: board.SeasonID,
		Kind:     string(board.Kind),
		Entries:  entries,
	}
}
