package schedule

import "errors"

var (
	ErrInvalidTeamSet    = errors.New("invalid team set")
	ErrScheduleIntegrity = errors.New("schedule integrity violation")
)

// Matchup pairs two teams for one week. The home/away split is positional
// only; scoring semantics are a concern of downstream consumers.
type Matchup struct {
	HomeTeamID string
	AwayTeamID string
}

// WeekPairing holds one week of a season schedule. ByeTeamID is empty for
// even team counts; for odd counts exactly one team sits out per week.
type WeekPairing struct {
	Week      int
	Matchups  []Matchup
	ByeTeamID string
}

// TeamIDs returns every team referenced by the week, matchups first in
// home/away order, then the bye team if any.
func (w WeekPairing) TeamIDs() []string {
	out := make([]string, 0, len(w.Matchups)*2+1)
	for _, m := range w.Matchups {
		out = append(out, m.HomeTeamID, m.AwayTeamID)
	}
	if w.ByeTeamID != "" {
		out = append(out, w.ByeTeamID)
	}
	return out
}
