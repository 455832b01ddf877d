package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/rkl-hq/season-engine/internal/usecase"
)

const maxJobRequestBodyBytes = 1 << 20

type recomputeSeasonRequest struct {
	SeasonID string `json:"season_id" validate:"required"`
}

type recomputeAllRequest struct {
	SeasonIDs  []string `json:"season_ids" validate:"required,min=1,dive,required"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,min=1,max=8"`
}

func (h *Handler) RunRecomputeSeasonJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeSeasonJob")
	defer span.End()

	var req recomputeSeasonRequest
	if err := h.decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.seasonService.RecomputeSeason(ctx, req.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "recompute season job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunRecomputeAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeAllJob")
	defer span.End()

	var req recomputeAllRequest
	if err := h.decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recomputeService.RunSeasons(ctx, usecase.RecomputeInput{
		SeasonIDs:  req.SeasonIDs,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "recompute all job failed", "seasons", len(req.SeasonIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) decodeJobRequest(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJobRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(r.Context(), dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
