package memory

import (
	"context"
	"sync"

	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsByLeague map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByLeague := make(map[string][]team.Team)
	for _, t := range teams {
		teamsByLeague[t.LeagueID] = append(teamsByLeague[t.LeagueID], t)
	}

	return &TeamRepository{
		teamsByLeague: teamsByLeague,
	}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByLeague[leagueID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}
