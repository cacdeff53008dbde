package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

type RunDraftInput struct {
	LeagueID  string
	RosterCap int
}

type RunDraftResult struct {
	LeagueID       string         `json:"league_id"`
	TeamCount      int            `json:"team_count"`
	PoolSize       int            `json:"pool_size"`
	DraftedCount   int            `json:"drafted_count"`
	FreeAgentCount int            `json:"free_agent_count"`
	RosterSizes    map[string]int `json:"roster_sizes"`
}

type DraftService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	draftRepo  draft.Repository
	quotas     draft.Quotas
}

func NewDraftService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	draftRepo draft.Repository,
	quotas draft.Quotas,
) *DraftService {
	return &DraftService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		draftRepo:  draftRepo,
		quotas:     quotas,
	}
}

// RunDraft simulates a full snake draft for a league and stores the
// resulting rosters wholesale. Live drafts record picks as discrete
// events elsewhere; this path seeds synthetic and demo leagues.
func (s *DraftService) RunDraft(ctx context.Context, input RunDraftInput) (RunDraftResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.RunDraft")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.LeagueID == "" {
		return RunDraftResult{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if input.RosterCap < 1 {
		return RunDraftResult{}, fmt.Errorf("%w: roster_cap must be >= 1", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, input.LeagueID)
	if err != nil {
		return RunDraftResult{}, fmt.Errorf("list teams league=%s: %w", input.LeagueID, err)
	}
	if len(teams) == 0 {
		return RunDraftResult{}, fmt.Errorf("%w: league=%s has no teams", ErrNotFound, input.LeagueID)
	}
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	pool, err := s.playerRepo.ListByLeague(ctx, input.LeagueID)
	if err != nil {
		return RunDraftResult{}, fmt.Errorf("list players league=%s: %w", input.LeagueID, err)
	}
	if len(pool) == 0 {
		return RunDraftResult{}, fmt.Errorf("%w: league=%s has no player pool", ErrNotFound, input.LeagueID)
	}

	result, err := draft.Allocate(pool, teamIDs, s.quotas, input.RosterCap)
	if err != nil {
		return RunDraftResult{}, fmt.Errorf("allocate rosters league=%s: %w", input.LeagueID, err)
	}

	rosters := make([]draft.Roster, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		picks := result.Rosters[teamID]
		ids := make([]string, 0, len(picks))
		for _, p := range picks {
			ids = append(ids, p.ID)
		}
		rosters = append(rosters, draft.Roster{TeamID: teamID, PlayerIDs: ids})
	}
	freeAgentIDs := make([]string, 0, len(result.FreeAgents))
	for _, p := range result.FreeAgents {
		freeAgentIDs = append(freeAgentIDs, p.ID)
	}

	if err := s.draftRepo.ReplaceLeague(ctx, input.LeagueID, rosters, freeAgentIDs); err != nil {
		return RunDraftResult{}, fmt.Errorf("replace rosters league=%s: %w", input.LeagueID, err)
	}

	sizes := make(map[string]int, len(rosters))
	for _, r := range rosters {
		sizes[r.TeamID] = len(r.PlayerIDs)
	}

	return RunDraftResult{
		LeagueID:       input.LeagueID,
		TeamCount:      len(teams),
		PoolSize:       len(pool),
		DraftedCount:   result.RosterSize(),
		FreeAgentCount: len(freeAgentIDs),
		RosterSizes:    sizes,
	}, nil
}

func (s *DraftService) GetTeamRoster(ctx context.Context, leagueID, teamID string) ([]player.Player, error) {
	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: league_id and team_id are required", ErrInvalidInput)
	}

	roster, exists, err := s.draftRepo.GetTeamRoster(ctx, leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("get roster league=%s team=%s: %w", leagueID, teamID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s team=%s has no roster", ErrNotFound, leagueID, teamID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, leagueID, roster.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("get roster players league=%s team=%s: %w", leagueID, teamID, err)
	}

	return players, nil
}
