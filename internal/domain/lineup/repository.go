package lineup

import "context"

// Repository persists computed lineups, keyed by team. Saving the same
// team twice overwrites the previous assignment.
type Repository interface {
	Save(ctx context.Context, leagueID string, a Assignment) error
	GetByTeam(ctx context.Context, leagueID, teamID string) (Assignment, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Assignment, error)
}
