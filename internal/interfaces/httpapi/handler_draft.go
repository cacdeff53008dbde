package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

type runDraftRequest struct {
	LeagueID  string `json:"league_id" validate:"required"`
	RosterCap int    `json:"roster_cap" validate:"min=0"`
}

func (h *Handler) GetTeamRosterByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRosterByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	players, err := h.draftService.GetTeamRoster(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunDraftJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunDraftJob")
	defer span.End()

	var req runDraftRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if req.RosterCap == 0 {
		req.RosterCap = h.jobDefaults.RosterCap
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.draftService.RunDraft(ctx, usecase.RunDraftInput{
		LeagueID:  req.LeagueID,
		RosterCap: req.RosterCap,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "run draft failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "draft completed",
		"league_id", result.LeagueID,
		"drafted_count", result.DraftedCount,
		"free_agent_count", result.FreeAgentCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
