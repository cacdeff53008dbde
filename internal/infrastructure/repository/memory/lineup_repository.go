package memory

import (
	"context"
	"sync"

	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
)

type LineupRepository struct {
	mu              sync.RWMutex
	lineupsByLeague map[string]map[string]lineup.Assignment
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{
		lineupsByLeague: make(map[string]map[string]lineup.Assignment),
	}
}

func (r *LineupRepository) Save(_ context.Context, leagueID string, a lineup.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lineupsByLeague[leagueID]; !ok {
		r.lineupsByLeague[leagueID] = make(map[string]lineup.Assignment)
	}
	r.lineupsByLeague[leagueID][a.TeamID] = cloneAssignment(a)

	return nil
}

func (r *LineupRepository) GetByTeam(_ context.Context, leagueID, teamID string) (lineup.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.lineupsByLeague[leagueID][teamID]
	if !ok {
		return lineup.Assignment{}, false, nil
	}

	return cloneAssignment(a), true, nil
}

func (r *LineupRepository) ListByLeague(_ context.Context, leagueID string) ([]lineup.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byTeam := r.lineupsByLeague[leagueID]
	out := make([]lineup.Assignment, 0, len(byTeam))
	for _, a := range byTeam {
		out = append(out, cloneAssignment(a))
	}

	return out, nil
}

func cloneAssignment(a lineup.Assignment) lineup.Assignment {
	out := lineup.Assignment{TeamID: a.TeamID}
	out.Starters = append([]lineup.Slot(nil), a.Starters...)
	out.Bench = append([]string(nil), a.Bench...)
	out.InjuredReserve = append([]lineup.Slot(nil), a.InjuredReserve...)
	return out
}
