package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pucklabs/fantasy-hockey/internal/platform/cache"
	"github.com/pucklabs/fantasy-hockey/internal/platform/logging"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

// JobDefaults fills internal-job request fields the caller left at
// zero, so operators can trigger jobs with a bare league_id.
type JobDefaults struct {
	SeasonWeeks   int
	RosterCap     int
	LineupWorkers int
}

type Handler struct {
	leagueService   *usecase.LeagueService
	scheduleService *usecase.ScheduleService
	draftService    *usecase.DraftService
	lineupService   *usecase.LineupService
	logger          *logging.Logger
	validator       *validator.Validate
	jobDefaults     JobDefaults

	// Read caches are nil when caching is disabled.
	teamListCache     *cache.Store[[]teamDTO]
	playerListCache   *cache.Store[[]playerDTO]
	scheduleWeekCache *cache.Store[weekDTO]
}

func NewHandler(
	leagueService *usecase.LeagueService,
	scheduleService *usecase.ScheduleService,
	draftService *usecase.DraftService,
	lineupService *usecase.LineupService,
	logger *logging.Logger,
	listingCacheTTL time.Duration,
	jobDefaults JobDefaults,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	h := &Handler{
		leagueService:   leagueService,
		scheduleService: scheduleService,
		draftService:    draftService,
		lineupService:   lineupService,
		logger:          logger,
		validator:       validator.New(),
		jobDefaults:     jobDefaults,
	}
	if listingCacheTTL > 0 {
		h.teamListCache = cache.NewStore[[]teamDTO](listingCacheTTL)
		h.playerListCache = cache.NewStore[[]playerDTO](listingCacheTTL)
		h.scheduleWeekCache = cache.NewStore[weekDTO](listingCacheTTL)
	}
	return h
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
