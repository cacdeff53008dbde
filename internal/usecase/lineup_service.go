package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

const (
	lineupStatusSuccess = "success"
	lineupStatusFailed  = "failed"
	lineupStatusSkipped = "skipped"

	maxLineupWorkers = 8
)

// AvailabilitySource reports which players are currently flagged
// injured or suspended. Staleness of the flag is the source's concern.
type AvailabilitySource interface {
	FlaggedPlayers(ctx context.Context, leagueID string) (map[string]bool, error)
}

type InitializeLineupsInput struct {
	LeagueID   string
	MaxWorkers int
}

type InitializeLineupsResult struct {
	LeagueID     string             `json:"league_id"`
	TeamCount    int                `json:"team_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	SkippedCount int                `json:"skipped_count"`
	WorkerCount  int                `json:"worker_count"`
	Teams        []LineupTaskResult `json:"teams"`
}

type LineupTaskResult struct {
	TeamID     string `json:"team_id"`
	Status     string `json:"status"`
	Starters   int    `json:"starters"`
	Bench      int    `json:"bench"`
	Reserve    int    `json:"reserve"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type LineupService struct {
	teamRepo     team.Repository
	playerRepo   player.Repository
	draftRepo    draft.Repository
	lineupRepo   lineup.Repository
	availability AvailabilitySource
	quotas       lineup.SlotQuotas
	irCap        int
}

func NewLineupService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	draftRepo draft.Repository,
	lineupRepo lineup.Repository,
	availability AvailabilitySource,
	quotas lineup.SlotQuotas,
	irCap int,
) *LineupService {
	return &LineupService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		draftRepo:    draftRepo,
		lineupRepo:   lineupRepo,
		availability: availability,
		quotas:       quotas,
		irCap:        irCap,
	}
}

// InitializeLineups computes and stores a starting lineup for every
// team in a league, one worker-pool task per team. A team without a
// stored roster is skipped rather than failing the whole run.
func (s *LineupService) InitializeLineups(ctx context.Context, input InitializeLineupsInput) (InitializeLineupsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.InitializeLineups")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.LeagueID == "" {
		return InitializeLineupsResult{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, input.LeagueID)
	if err != nil {
		return InitializeLineupsResult{}, fmt.Errorf("list teams league=%s: %w", input.LeagueID, err)
	}
	if len(teams) == 0 {
		return InitializeLineupsResult{}, fmt.Errorf("%w: league=%s has no teams", ErrNotFound, input.LeagueID)
	}

	flagged, err := s.loadAvailability(ctx, input.LeagueID)
	if err != nil {
		return InitializeLineupsResult{}, err
	}

	workerCount := normalizeLineupWorkerCount(input.MaxWorkers, len(teams))
	result := InitializeLineupsResult{
		LeagueID:    input.LeagueID,
		TeamCount:   len(teams),
		WorkerCount: workerCount,
		Teams:       make([]LineupTaskResult, 0, len(teams)),
	}

	rows := make(chan LineupTaskResult, len(teams))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return InitializeLineupsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, t := range teams {
		t := t
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.initializeTeamLineup(ctx, input.LeagueID, t.ID, flagged)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case lineupStatusSuccess:
				successCount.Add(1)
			case lineupStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return InitializeLineupsResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Teams = append(result.Teams, row)
	}
	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func (s *LineupService) initializeTeamLineup(ctx context.Context, leagueID, teamID string, flagged map[string]bool) LineupTaskResult {
	row := LineupTaskResult{TeamID: teamID}

	roster, exists, err := s.draftRepo.GetTeamRoster(ctx, leagueID, teamID)
	if err != nil {
		row.Status = lineupStatusFailed
		row.Message = err.Error()
		return row
	}
	if !exists || len(roster.PlayerIDs) == 0 {
		row.Status = lineupStatusSkipped
		row.Message = "team has no stored roster"
		return row
	}

	players, err := s.playerRepo.GetByIDs(ctx, leagueID, roster.PlayerIDs)
	if err != nil {
		row.Status = lineupStatusFailed
		row.Message = err.Error()
		return row
	}
	if len(players) != len(roster.PlayerIDs) {
		row.Status = lineupStatusFailed
		row.Message = fmt.Sprintf("roster references %d players, league resolves %d", len(roster.PlayerIDs), len(players))
		return row
	}

	for i := range players {
		if flagged[players[i].ID] {
			players[i].Unavailable = true
		}
	}

	assignment, err := lineup.AssignSlots(teamID, players, s.quotas, s.irCap)
	if err != nil {
		row.Status = lineupStatusFailed
		row.Message = err.Error()
		return row
	}

	if err := s.lineupRepo.Save(ctx, leagueID, assignment); err != nil {
		row.Status = lineupStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Status = lineupStatusSuccess
	row.Starters = len(assignment.Starters)
	row.Bench = len(assignment.Bench)
	row.Reserve = len(assignment.InjuredReserve)
	return row
}

func (s *LineupService) GetByTeam(ctx context.Context, leagueID, teamID string) (lineup.Assignment, error) {
	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return lineup.Assignment{}, fmt.Errorf("%w: league_id and team_id are required", ErrInvalidInput)
	}

	a, exists, err := s.lineupRepo.GetByTeam(ctx, leagueID, teamID)
	if err != nil {
		return lineup.Assignment{}, fmt.Errorf("get lineup league=%s team=%s: %w", leagueID, teamID, err)
	}
	if !exists {
		return lineup.Assignment{}, fmt.Errorf("%w: league=%s team=%s has no lineup", ErrNotFound, leagueID, teamID)
	}

	return a, nil
}

// loadAvailability tolerates a missing source: lineups then rely on the
// flags already stored on players.
func (s *LineupService) loadAvailability(ctx context.Context, leagueID string) (map[string]bool, error) {
	if s.availability == nil {
		return nil, nil
	}
	flagged, err := s.availability.FlaggedPlayers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("%w: availability feed: %v", ErrDependencyUnavailable, err)
	}
	return flagged, nil
}

func normalizeLineupWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > maxLineupWorkers {
		value = maxLineupWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
