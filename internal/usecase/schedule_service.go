package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/pucklabs/fantasy-hockey/internal/domain/schedule"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

const maxSeasonWeeks = 52

type GenerateScheduleInput struct {
	LeagueID string
	Weeks    int
	// Seed fixes the one-time team shuffle so a regeneration with the
	// same seed reproduces the same season.
	Seed int64
}

type GenerateScheduleResult struct {
	LeagueID  string                 `json:"league_id"`
	TeamCount int                    `json:"team_count"`
	WeekCount int                    `json:"week_count"`
	Cycle     int                    `json:"cycle"`
	Weeks     []schedule.WeekPairing `json:"weeks"`
}

type ScheduleService struct {
	teamRepo      team.Repository
	scheduleRepo  schedule.Repository
	maxValidators int
}

func NewScheduleService(teamRepo team.Repository, scheduleRepo schedule.Repository, maxValidators int) *ScheduleService {
	if maxValidators < 1 {
		maxValidators = 1
	}
	return &ScheduleService{
		teamRepo:      teamRepo,
		scheduleRepo:  scheduleRepo,
		maxValidators: maxValidators,
	}
}

// GenerateSeason computes a full season in memory, validates every week,
// and only then replaces the stored schedule. A failed validation aborts
// the whole run without touching storage so a partial season can never
// be persisted.
func (s *ScheduleService) GenerateSeason(ctx context.Context, input GenerateScheduleInput) (GenerateScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GenerateSeason")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.LeagueID == "" {
		return GenerateScheduleResult{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if input.Weeks < 1 || input.Weeks > maxSeasonWeeks {
		return GenerateScheduleResult{}, fmt.Errorf("%w: weeks must be between 1 and %d", ErrInvalidInput, maxSeasonWeeks)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, input.LeagueID)
	if err != nil {
		return GenerateScheduleResult{}, fmt.Errorf("list teams league=%s: %w", input.LeagueID, err)
	}
	if len(teams) == 0 {
		return GenerateScheduleResult{}, fmt.Errorf("%w: league=%s has no teams", ErrNotFound, input.LeagueID)
	}

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}
	order := schedule.ShuffleTeams(teamIDs, input.Seed)

	weeks := make([]schedule.WeekPairing, input.Weeks)
	for week := 1; week <= input.Weeks; week++ {
		w, err := schedule.PairingsForWeek(order, week)
		if err != nil {
			return GenerateScheduleResult{}, fmt.Errorf("pairings week=%d league=%s: %w", week, input.LeagueID, err)
		}
		weeks[week-1] = w
	}

	validators := pool.New().WithErrors().WithMaxGoroutines(s.maxValidators)
	for _, w := range weeks {
		w := w
		validators.Go(func() error {
			return schedule.ValidateWeek(order, w)
		})
	}
	if err := validators.Wait(); err != nil {
		return GenerateScheduleResult{}, fmt.Errorf("validate generated season league=%s: %w", input.LeagueID, err)
	}

	if err := s.scheduleRepo.ReplaceSeason(ctx, input.LeagueID, weeks); err != nil {
		return GenerateScheduleResult{}, fmt.Errorf("replace season league=%s: %w", input.LeagueID, err)
	}

	return GenerateScheduleResult{
		LeagueID:  input.LeagueID,
		TeamCount: len(teams),
		WeekCount: len(weeks),
		Cycle:     schedule.CycleLength(len(teams)),
		Weeks:     weeks,
	}, nil
}

func (s *ScheduleService) GetWeek(ctx context.Context, leagueID string, week int) (schedule.WeekPairing, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return schedule.WeekPairing{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if week < 1 {
		return schedule.WeekPairing{}, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	w, exists, err := s.scheduleRepo.GetWeek(ctx, leagueID, week)
	if err != nil {
		return schedule.WeekPairing{}, fmt.Errorf("get week league=%s week=%d: %w", leagueID, week, err)
	}
	if !exists {
		return schedule.WeekPairing{}, fmt.Errorf("%w: league=%s week=%d", ErrNotFound, leagueID, week)
	}

	return w, nil
}

func (s *ScheduleService) ListSeason(ctx context.Context, leagueID string) ([]schedule.WeekPairing, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	weeks, err := s.scheduleRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list season league=%s: %w", leagueID, err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("%w: league=%s has no schedule", ErrNotFound, leagueID)
	}

	return weeks, nil
}
