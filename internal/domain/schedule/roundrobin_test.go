package schedule

import (
	"errors"
	"fmt"
	"testing"
)

func teamSet(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("team-%02d", i))
	}
	return out
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func TestPairingsForWeek_EvenCountFullCycle(t *testing.T) {
	for _, n := range []int{2, 4, 6, 10, 12} {
		teams := teamSet(n)
		cycle := CycleLength(n)
		if cycle != n-1 {
			t.Fatalf("n=%d: expected cycle %d, got %d", n, n-1, cycle)
		}

		meetings := make(map[string]int)
		for week := 1; week <= cycle; week++ {
			w, err := PairingsForWeek(teams, week)
			if err != nil {
				t.Fatalf("n=%d week %d: %v", n, week, err)
			}
			if w.ByeTeamID != "" {
				t.Fatalf("n=%d week %d: unexpected bye %s", n, week, w.ByeTeamID)
			}
			if err := ValidateWeek(teams, w); err != nil {
				t.Fatalf("n=%d week %d: %v", n, week, err)
			}
			for _, m := range w.Matchups {
				meetings[pairKey(m.HomeTeamID, m.AwayTeamID)]++
			}
		}

		if len(meetings) != n*(n-1)/2 {
			t.Fatalf("n=%d: %d distinct pairs, expected %d", n, len(meetings), n*(n-1)/2)
		}
		for pair, count := range meetings {
			if count != 1 {
				t.Fatalf("n=%d: pair %s met %d times", n, pair, count)
			}
		}
	}
}

func TestPairingsForWeek_OddCountFullCycle(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9} {
		teams := teamSet(n)
		cycle := CycleLength(n)
		if cycle != n {
			t.Fatalf("n=%d: expected cycle %d, got %d", n, n, cycle)
		}

		byes := make(map[string]int)
		meetings := make(map[string]int)
		for week := 1; week <= cycle; week++ {
			w, err := PairingsForWeek(teams, week)
			if err != nil {
				t.Fatalf("n=%d week %d: %v", n, week, err)
			}
			if w.ByeTeamID == "" {
				t.Fatalf("n=%d week %d: missing bye", n, week)
			}
			if err := ValidateWeek(teams, w); err != nil {
				t.Fatalf("n=%d week %d: %v", n, week, err)
			}
			byes[w.ByeTeamID]++
			for _, m := range w.Matchups {
				meetings[pairKey(m.HomeTeamID, m.AwayTeamID)]++
			}
		}

		if len(byes) != n {
			t.Fatalf("n=%d: %d teams drew a bye, expected all %d", n, len(byes), n)
		}
		for id, count := range byes {
			if count != 1 {
				t.Fatalf("n=%d: team %s had %d byes", n, id, count)
			}
		}
		for pair, count := range meetings {
			if count != 1 {
				t.Fatalf("n=%d: pair %s met %d times", n, pair, count)
			}
		}
		if len(meetings) != n*(n-1)/2 {
			t.Fatalf("n=%d: %d distinct pairs, expected %d", n, len(meetings), n*(n-1)/2)
		}
	}
}

func TestPairingsForWeek_CycleRepetition(t *testing.T) {
	teams := teamSet(10)
	cycle := CycleLength(len(teams))

	for week := 1; week <= cycle; week++ {
		base, err := PairingsForWeek(teams, week)
		if err != nil {
			t.Fatalf("week %d: %v", week, err)
		}
		repeat, err := PairingsForWeek(teams, week+cycle)
		if err != nil {
			t.Fatalf("week %d: %v", week+cycle, err)
		}

		if len(base.Matchups) != len(repeat.Matchups) {
			t.Fatalf("week %d vs %d: matchup count differs", week, week+cycle)
		}
		for i := range base.Matchups {
			if base.Matchups[i] != repeat.Matchups[i] {
				t.Fatalf("week %d vs %d: matchup %d differs: %+v vs %+v",
					week, week+cycle, i, base.Matchups[i], repeat.Matchups[i])
			}
		}
	}
}

func TestPairingsForWeek_FiveTeamWeekOne(t *testing.T) {
	teams := []string{"A", "B", "C", "D", "E"}

	w, err := PairingsForWeek(teams, 1)
	if err != nil {
		t.Fatalf("week 1: %v", err)
	}

	if w.ByeTeamID != "A" {
		t.Fatalf("expected fixed team A on bye, got %q", w.ByeTeamID)
	}
	want := []Matchup{
		{HomeTeamID: "B", AwayTeamID: "E"},
		{HomeTeamID: "C", AwayTeamID: "D"},
	}
	if len(w.Matchups) != len(want) {
		t.Fatalf("expected %d matchups, got %d", len(want), len(w.Matchups))
	}
	for i := range want {
		if w.Matchups[i] != want[i] {
			t.Fatalf("matchup %d: expected %+v, got %+v", i, want[i], w.Matchups[i])
		}
	}
}

func TestPairingsForWeek_InvalidTeamSets(t *testing.T) {
	tests := []struct {
		name  string
		teams []string
	}{
		{name: "single team", teams: []string{"A"}},
		{name: "empty set", teams: nil},
		{name: "duplicate id", teams: []string{"A", "B", "A"}},
		{name: "empty id", teams: []string{"A", "", "C"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PairingsForWeek(tc.teams, 1)
			if !errors.Is(err, ErrInvalidTeamSet) {
				t.Fatalf("expected ErrInvalidTeamSet, got %v", err)
			}
		})
	}
}

func TestValidateWeek_DetectsMissingTeam(t *testing.T) {
	teams := teamSet(4)

	w, err := PairingsForWeek(teams, 1)
	if err != nil {
		t.Fatalf("week 1: %v", err)
	}
	w.Matchups = w.Matchups[:1]

	if err := ValidateWeek(teams, w); !errors.Is(err, ErrScheduleIntegrity) {
		t.Fatalf("expected ErrScheduleIntegrity, got %v", err)
	}
}

func TestValidateWeek_DetectsDoubleBooking(t *testing.T) {
	teams := teamSet(4)

	w, err := PairingsForWeek(teams, 1)
	if err != nil {
		t.Fatalf("week 1: %v", err)
	}
	w.Matchups[1].AwayTeamID = w.Matchups[0].HomeTeamID

	if err := ValidateWeek(teams, w); !errors.Is(err, ErrScheduleIntegrity) {
		t.Fatalf("expected ErrScheduleIntegrity, got %v", err)
	}
}

func TestShuffleTeams_SeedDeterminism(t *testing.T) {
	teams := teamSet(8)

	first := ShuffleTeams(teams, 42)
	second := ShuffleTeams(teams, 42)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders at %d: %s vs %s", i, first[i], second[i])
		}
	}

	seen := make(map[string]struct{}, len(first))
	for _, id := range first {
		seen[id] = struct{}{}
	}
	if len(seen) != len(teams) {
		t.Fatalf("shuffle lost teams: %d of %d", len(seen), len(teams))
	}
}
