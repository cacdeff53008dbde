package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/pucklabs/fantasy-hockey/internal/domain/schedule"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

type generateScheduleRequest struct {
	LeagueID string `json:"league_id" validate:"required"`
	Weeks    int    `json:"weeks" validate:"min=0,max=52"`
	Seed     int64  `json:"seed"`
}

type matchupDTO struct {
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

type weekDTO struct {
	Week      int          `json:"week"`
	Matchups  []matchupDTO `json:"matchups"`
	ByeTeamID string       `json:"byeTeamId,omitempty"`
}

func (h *Handler) ListSeasonByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	weeks, err := h.scheduleService.ListSeason(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekDTO, 0, len(weeks))
	for _, wk := range weeks {
		items = append(items, weekToDTO(wk))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScheduleWeekByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScheduleWeekByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	week, err := strconv.Atoi(strings.TrimSpace(r.PathValue("week")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be an integer", usecase.ErrInvalidInput))
		return
	}

	load := func(ctx context.Context) (weekDTO, error) {
		item, err := h.scheduleService.GetWeek(ctx, leagueID, week)
		if err != nil {
			return weekDTO{}, err
		}
		return weekToDTO(item), nil
	}

	var item weekDTO
	if h.scheduleWeekCache != nil {
		item, err = h.scheduleWeekCache.GetOrLoad(ctx, scheduleWeekCacheKey(leagueID, week), load)
	} else {
		item, err = load(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule week failed", "league_id", leagueID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) RunGenerateScheduleJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunGenerateScheduleJob")
	defer span.End()

	var req generateScheduleRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if req.Weeks == 0 {
		req.Weeks = h.jobDefaults.SeasonWeeks
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scheduleService.GenerateSeason(ctx, usecase.GenerateScheduleInput{
		LeagueID: req.LeagueID,
		Weeks:    req.Weeks,
		Seed:     req.Seed,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "generate schedule failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	if h.scheduleWeekCache != nil {
		h.scheduleWeekCache.DeletePrefix(ctx, scheduleWeekCacheKey(req.LeagueID, 0))
	}

	h.logger.InfoContext(ctx, "schedule generated",
		"league_id", result.LeagueID,
		"team_count", result.TeamCount,
		"week_count", result.WeekCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}

// scheduleWeekCacheKey with week 0 is the league's invalidation prefix.
func scheduleWeekCacheKey(leagueID string, week int) string {
	if week == 0 {
		return "schedule:" + leagueID + ":"
	}
	return "schedule:" + leagueID + ":" + strconv.Itoa(week)
}

func weekToDTO(v schedule.WeekPairing) weekDTO {
	matchups := make([]matchupDTO, 0, len(v.Matchups))
	for _, m := range v.Matchups {
		matchups = append(matchups, matchupDTO{
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
		})
	}

	return weekDTO{
		Week:      v.Week,
		Matchups:  matchups,
		ByeTeamID: v.ByeTeamID,
	}
}
