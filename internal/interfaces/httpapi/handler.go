package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
	"github.com/rkl-hq/season-engine/internal/usecase"
)

type Handler struct {
	seasonService      *usecase.SeasonService
	recomputeService   *usecase.RecomputeService
	leaderboardService *usecase.LeaderboardService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	recomputeService *usecase.RecomputeService,
	leaderboardService *usecase.LeaderboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		seasonService:      seasonService,
		recomputeService:   recomputeService,
		leaderboardService: leaderboardService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
