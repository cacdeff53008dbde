package memory

import (
	"context"
	"sync"

	"github.com/pucklabs/fantasy-hockey/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu            sync.RWMutex
	weeksByLeague map[string][]schedule.WeekPairing
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		weeksByLeague: make(map[string][]schedule.WeekPairing),
	}
}

func (r *ScheduleRepository) ReplaceSeason(_ context.Context, leagueID string, weeks []schedule.WeekPairing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]schedule.WeekPairing, len(weeks))
	copy(out, weeks)
	r.weeksByLeague[leagueID] = out

	return nil
}

func (r *ScheduleRepository) GetWeek(_ context.Context, leagueID string, week int) (schedule.WeekPairing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.weeksByLeague[leagueID] {
		if w.Week == week {
			return w, true, nil
		}
	}

	return schedule.WeekPairing{}, false, nil
}

func (r *ScheduleRepository) ListByLeague(_ context.Context, leagueID string) ([]schedule.WeekPairing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	weeks := r.weeksByLeague[leagueID]
	out := make([]schedule.WeekPairing, 0, len(weeks))
	out = append(out, weeks...)

	return out, nil
}
