package draft

import "context"

// Roster is one team's drafted player set as stored.
type Roster struct {
	TeamID    string
	PlayerIDs []string
}

// Repository persists draft output. ReplaceLeague swaps every roster
// and the free-agent pool for a league in one call, mirroring the
// allocator's wholesale, simulation-style output.
type Repository interface {
	ReplaceLeague(ctx context.Context, leagueID string, rosters []Roster, freeAgentIDs []string) error
	GetTeamRoster(ctx context.Context, leagueID, teamID string) (Roster, bool, error)
	ListFreeAgents(ctx context.Context, leagueID string) ([]string, error)
}
