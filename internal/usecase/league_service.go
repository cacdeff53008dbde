package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

type LeagueService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewLeagueService(teamRepo team.Repository, playerRepo player.Repository) *LeagueService {
	return &LeagueService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *LeagueService) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams league=%s: %w", leagueID, err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return teams, nil
}

func (s *LeagueService) ListPlayers(ctx context.Context, leagueID string) ([]player.Player, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list players league=%s: %w", leagueID, err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return players, nil
}
