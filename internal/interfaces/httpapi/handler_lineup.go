package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

type initLineupsRequest struct {
	LeagueID   string `json:"league_id" validate:"required"`
	MaxWorkers int    `json:"max_workers" validate:"min=0,max=64"`
}

type slotDTO struct {
	Label    string `json:"label"`
	PlayerID string `json:"playerId"`
}

type lineupDTO struct {
	TeamID         string    `json:"teamId"`
	Starters       []slotDTO `json:"starters"`
	Bench          []string  `json:"bench"`
	InjuredReserve []slotDTO `json:"injuredReserve"`
}

func (h *Handler) GetLineupByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupByTeam")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	item, err := h.lineupService.GetByTeam(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) RunInitLineupsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunInitLineupsJob")
	defer span.End()

	var req initLineupsRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if req.MaxWorkers == 0 {
		req.MaxWorkers = h.jobDefaults.LineupWorkers
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.lineupService.InitializeLineups(ctx, usecase.InitializeLineupsInput{
		LeagueID:   req.LeagueID,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "initialize lineups failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "lineups initialized",
		"league_id", result.LeagueID,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
		"skipped_count", result.SkippedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func lineupToDTO(v lineup.Assignment) lineupDTO {
	starters := make([]slotDTO, 0, len(v.Starters))
	for _, s := range v.Starters {
		starters = append(starters, slotDTO{Label: s.Label, PlayerID: s.PlayerID})
	}
	reserve := make([]slotDTO, 0, len(v.InjuredReserve))
	for _, s := range v.InjuredReserve {
		reserve = append(reserve, slotDTO{Label: s.Label, PlayerID: s.PlayerID})
	}

	return lineupDTO{
		TeamID:         v.TeamID,
		Starters:       starters,
		Bench:          append([]string(nil), v.Bench...),
		InjuredReserve: reserve,
	}
}
