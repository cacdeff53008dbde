package memory

import (
	"context"
	"sync"

	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
)

type RosterRepository struct {
	mu                 sync.RWMutex
	rostersByLeague    map[string]map[string]draft.Roster
	freeAgentsByLeague map[string][]string
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		rostersByLeague:    make(map[string]map[string]draft.Roster),
		freeAgentsByLeague: make(map[string][]string),
	}
}

func (r *RosterRepository) ReplaceLeague(_ context.Context, leagueID string, rosters []draft.Roster, freeAgentIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byTeam := make(map[string]draft.Roster, len(rosters))
	for _, roster := range rosters {
		ids := make([]string, len(roster.PlayerIDs))
		copy(ids, roster.PlayerIDs)
		byTeam[roster.TeamID] = draft.Roster{TeamID: roster.TeamID, PlayerIDs: ids}
	}
	r.rostersByLeague[leagueID] = byTeam

	agents := make([]string, len(freeAgentIDs))
	copy(agents, freeAgentIDs)
	r.freeAgentsByLeague[leagueID] = agents

	return nil
}

func (r *RosterRepository) GetTeamRoster(_ context.Context, leagueID, teamID string) (draft.Roster, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, ok := r.rostersByLeague[leagueID][teamID]
	if !ok {
		return draft.Roster{}, false, nil
	}

	ids := make([]string, len(roster.PlayerIDs))
	copy(ids, roster.PlayerIDs)
	return draft.Roster{TeamID: roster.TeamID, PlayerIDs: ids}, true, nil
}

func (r *RosterRepository) ListFreeAgents(_ context.Context, leagueID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := r.freeAgentsByLeague[leagueID]
	out := make([]string, 0, len(agents))
	out = append(out, agents...)

	return out, nil
}
