package schedule

import "context"

// Repository describes schedule persistence needs from use cases.
// ReplaceSeason swaps a league's entire schedule in one call: the engine
// regenerates wholesale rather than patching individual weeks, so storage
// never holds a partially generated season.
type Repository interface {
	ReplaceSeason(ctx context.Context, leagueID string, weeks []WeekPairing) error
	GetWeek(ctx context.Context, leagueID string, week int) (WeekPairing, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]WeekPairing, error)
}
