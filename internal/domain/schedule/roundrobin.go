package schedule

import (
	"fmt"
	"math/rand"
)

// byePlaceholder pads odd team counts to an even circle; the team drawn
// against it sits out that week.
const byePlaceholder = ""

// CycleLength returns the number of weeks before the round-robin pattern
// repeats: n-1 for even team counts, n for odd (each team byes once).
func CycleLength(teamCount int) int {
	if teamCount%2 == 0 {
		return teamCount - 1
	}
	return teamCount
}

// ShuffleTeams returns a copy of teamIDs in a seed-determined order. The
// caller shuffles once before week 1 and holds the order fixed for the
// whole season so the circle method's invariants survive regeneration.
func ShuffleTeams(teamIDs []string, seed int64) []string {
	out := append([]string(nil), teamIDs...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PairingsForWeek computes one week of a season using the circle method:
// the first team stays fixed while the rest rotate one step per week.
// Weeks beyond the cycle length repeat the base cycle. Week numbers are
// 1-based.
func PairingsForWeek(teamIDs []string, week int) (WeekPairing, error) {
	if err := validateTeamSet(teamIDs); err != nil {
		return WeekPairing{}, err
	}
	if week < 1 {
		return WeekPairing{}, fmt.Errorf("week must be >= 1, got %d", week)
	}

	n := len(teamIDs)
	offset := (week - 1) % CycleLength(n)

	fixed := teamIDs[0]
	rest := append([]string(nil), teamIDs[1:]...)
	if n%2 != 0 {
		rest = append(rest, byePlaceholder)
	}
	m := len(rest)

	rotated := make([]string, m)
	for i := range rest {
		rotated[i] = rest[(i+offset)%m]
	}

	out := WeekPairing{
		Week:     week,
		Matchups: make([]Matchup, 0, (m+1)/2),
	}

	appendPair(&out, fixed, rotated[m-1])
	for i := 0; i < (m-1)/2; i++ {
		appendPair(&out, rotated[i], rotated[m-2-i])
	}

	return out, nil
}

// ValidateWeek cross-checks a generated week against the team set: every
// team must appear exactly once, paired or on bye. A failure signals an
// implementation defect and the caller must abort the whole schedule run
// rather than persist a partial season.
func ValidateWeek(teamIDs []string, w WeekPairing) error {
	seen := make(map[string]int, len(teamIDs))
	for _, id := range w.TeamIDs() {
		seen[id]++
	}

	if len(seen) != len(teamIDs) {
		return fmt.Errorf("%w: week %d covers %d of %d teams", ErrScheduleIntegrity, w.Week, len(seen), len(teamIDs))
	}
	for _, id := range teamIDs {
		if seen[id] != 1 {
			return fmt.Errorf("%w: week %d has team %s appearing %d times", ErrScheduleIntegrity, w.Week, id, seen[id])
		}
	}

	return nil
}

func validateTeamSet(teamIDs []string) error {
	if len(teamIDs) < 2 {
		return fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidTeamSet, len(teamIDs))
	}

	seen := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if id == "" {
			return fmt.Errorf("%w: empty team id", ErrInvalidTeamSet)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate team id %s", ErrInvalidTeamSet, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func appendPair(w *WeekPairing, a, b string) {
	switch {
	case a == byePlaceholder:
		w.ByeTeamID = b
	case b == byePlaceholder:
		w.ByeTeamID = a
	default:
		w.Matchups = append(w.Matchups, Matchup{HomeTeamID: a, AwayTeamID: b})
	}
}
