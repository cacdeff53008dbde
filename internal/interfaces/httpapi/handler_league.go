package httpapi

import (
	"context"
	"net/http"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Short    string `json:"short"`
}

type playerDTO struct {
	ID          string  `json:"id"`
	LeagueID    string  `json:"leagueId"`
	TeamID      string  `json:"teamId"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Score       float64 `json:"score"`
	Unavailable bool    `json:"unavailable"`
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	load := func(ctx context.Context) ([]teamDTO, error) {
		teams, err := h.leagueService.ListTeams(ctx, leagueID)
		if err != nil {
			return nil, err
		}

		items := make([]teamDTO, 0, len(teams))
		for _, t := range teams {
			items = append(items, teamToDTO(t))
		}
		return items, nil
	}

	var items []teamDTO
	var err error
	if h.teamListCache != nil {
		items, err = h.teamListCache.GetOrLoad(ctx, "teams:"+leagueID, load)
	} else {
		items, err = load(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	load := func(ctx context.Context) ([]playerDTO, error) {
		players, err := h.leagueService.ListPlayers(ctx, leagueID)
		if err != nil {
			return nil, err
		}

		items := make([]playerDTO, 0, len(players))
		for _, p := range players {
			items = append(items, playerToDTO(p))
		}
		return items, nil
	}

	var items []playerDTO
	var err error
	if h.playerListCache != nil {
		items, err = h.playerListCache.GetOrLoad(ctx, "players:"+leagueID, load)
	} else {
		items, err = load(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Short:    v.Short,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		LeagueID:    v.LeagueID,
		TeamID:      v.TeamID,
		Name:        v.Name,
		Position:    string(v.Position),
		Score:       v.Score,
		Unavailable: v.Unavailable,
	}
}
