package lineup

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
)

func standardQuotas() SlotQuotas {
	return SlotQuotas{C: 2, LW: 2, RW: 2, D: 4, G: 2, UTIL: 1}
}

func buildRoster(counts map[player.Position]int, injured int) []player.Player {
	roster := make([]player.Player, 0)
	i := 0
	for _, pos := range []player.Position{
		player.PositionCenter,
		player.PositionLeftWing,
		player.PositionRightWing,
		player.PositionDefense,
		player.PositionGoalie,
	} {
		for k := 0; k < counts[pos]; k++ {
			roster = append(roster, player.Player{
				ID:       fmt.Sprintf("p-%02d", i),
				Name:     fmt.Sprintf("Player %02d", i),
				Position: pos,
				Score:    80 - float64(i),
			})
			i++
		}
	}
	for k := 0; k < injured && k < len(roster); k++ {
		roster[k].Unavailable = true
	}
	return roster
}

func TestAssignSlots_TwentyOnePlayerRoster(t *testing.T) {
	roster := buildRoster(map[player.Position]int{
		player.PositionCenter:    4,
		player.PositionLeftWing:  4,
		player.PositionRightWing: 4,
		player.PositionDefense:   6,
		player.PositionGoalie:    3,
	}, 0)
	if len(roster) != 21 {
		t.Fatalf("fixture has %d players, expected 21", len(roster))
	}

	a, err := AssignSlots("team-01", roster, standardQuotas(), 3)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(a.Starters) > standardQuotas().Total() {
		t.Fatalf("%d starters exceeds %d slots", len(a.Starters), standardQuotas().Total())
	}
	if a.Size() != len(roster) {
		t.Fatalf("assignment covers %d of %d players", a.Size(), len(roster))
	}

	seen := make(map[string]struct{})
	record := func(id string) {
		if _, ok := seen[id]; ok {
			t.Fatalf("player %s placed twice", id)
		}
		seen[id] = struct{}{}
	}
	for _, s := range a.Starters {
		record(s.PlayerID)
	}
	for _, id := range a.Bench {
		record(id)
	}
	for _, s := range a.InjuredReserve {
		record(s.PlayerID)
	}
}

func TestAssignSlots_InjuredOverflowGoesToBench(t *testing.T) {
	roster := buildRoster(map[player.Position]int{
		player.PositionCenter:    3,
		player.PositionLeftWing:  3,
		player.PositionRightWing: 3,
		player.PositionDefense:   5,
		player.PositionGoalie:    2,
	}, 4)

	a, err := AssignSlots("team-01", roster, standardQuotas(), 3)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(a.InjuredReserve) != 3 {
		t.Fatalf("expected 3 players in IR, got %d", len(a.InjuredReserve))
	}
	if a.Size() != len(roster) {
		t.Fatalf("assignment covers %d of %d players, overflow was dropped", a.Size(), len(roster))
	}
	for i, s := range a.InjuredReserve {
		want := fmt.Sprintf("IR-%d", i+1)
		if s.Label != want {
			t.Fatalf("IR slot %d labeled %q, expected %q", i, s.Label, want)
		}
	}
}

func TestAssignSlots_ReserveSlotsGoToBestFlaggedPlayers(t *testing.T) {
	// The weakest flagged player is listed first; roster order must not
	// decide who holds a reserve slot.
	roster := []player.Player{
		{ID: "c-hurt-low", Position: player.PositionCenter, Score: 10, Unavailable: true},
		{ID: "d-hurt-high", Position: player.PositionDefense, Score: 90, Unavailable: true},
		{ID: "w-hurt-mid", Position: player.PositionLeftWing, Score: 50, Unavailable: true},
		{ID: "c-1", Position: player.PositionCenter, Score: 60},
	}

	a, err := AssignSlots("team-01", roster, SlotQuotas{C: 1}, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(a.InjuredReserve) != 2 {
		t.Fatalf("expected 2 players in IR, got %d", len(a.InjuredReserve))
	}
	if a.InjuredReserve[0].PlayerID != "d-hurt-high" || a.InjuredReserve[0].Label != "IR-1" {
		t.Fatalf("IR-1 = %+v, expected d-hurt-high", a.InjuredReserve[0])
	}
	if a.InjuredReserve[1].PlayerID != "w-hurt-mid" {
		t.Fatalf("IR-2 = %+v, expected w-hurt-mid", a.InjuredReserve[1])
	}
	benched := false
	for _, id := range a.Bench {
		if id == "c-hurt-low" {
			benched = true
		}
	}
	if !benched {
		t.Fatalf("expected c-hurt-low on the bench, got %v", a.Bench)
	}
}

func TestAssignSlots_EqualScoreFlaggedPlayersReserveByID(t *testing.T) {
	roster := []player.Player{
		{ID: "b-hurt", Position: player.PositionCenter, Score: 50, Unavailable: true},
		{ID: "a-hurt", Position: player.PositionCenter, Score: 50, Unavailable: true},
	}

	a, err := AssignSlots("team-01", roster, SlotQuotas{C: 1}, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(a.InjuredReserve) != 1 || a.InjuredReserve[0].PlayerID != "a-hurt" {
		t.Fatalf("IR = %+v, expected a-hurt by ID tiebreak", a.InjuredReserve)
	}
	if len(a.Bench) != 1 || a.Bench[0] != "b-hurt" {
		t.Fatalf("bench = %v, expected b-hurt", a.Bench)
	}
}

func TestAssignSlots_SlotLabelsFollowFillOrder(t *testing.T) {
	roster := []player.Player{
		{ID: "c-low", Position: player.PositionCenter, Score: 40},
		{ID: "c-high", Position: player.PositionCenter, Score: 90},
		{ID: "d-1", Position: player.PositionDefense, Score: 70},
		{ID: "g-1", Position: player.PositionGoalie, Score: 60},
	}

	a, err := AssignSlots("team-01", roster, SlotQuotas{C: 2, D: 1, G: 1, UTIL: 1}, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	byLabel := make(map[string]string, len(a.Starters))
	for _, s := range a.Starters {
		byLabel[s.Label] = s.PlayerID
	}
	if byLabel["C-1"] != "c-high" {
		t.Fatalf("C-1 holds %q, expected highest-scoring center", byLabel["C-1"])
	}
	if byLabel["C-2"] != "c-low" {
		t.Fatalf("C-2 holds %q, expected c-low", byLabel["C-2"])
	}
}

func TestAssignSlots_GoaliesNeverFillUtil(t *testing.T) {
	roster := []player.Player{
		{ID: "g-1", Position: player.PositionGoalie, Score: 95},
		{ID: "g-2", Position: player.PositionGoalie, Score: 94},
		{ID: "c-1", Position: player.PositionCenter, Score: 10},
	}

	a, err := AssignSlots("team-01", roster, SlotQuotas{C: 1, G: 1, UTIL: 1}, 0)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	for _, s := range a.Starters {
		if strings.HasPrefix(s.Label, "UTIL") && strings.HasPrefix(s.PlayerID, "g-") {
			t.Fatalf("goalie %s assigned to %s", s.PlayerID, s.Label)
		}
	}
	if len(a.Bench) != 1 || a.Bench[0] != "g-2" {
		t.Fatalf("expected g-2 benched, got bench %v", a.Bench)
	}
}

func TestAssignSlots_Deterministic(t *testing.T) {
	roster := buildRoster(map[player.Position]int{
		player.PositionCenter:    3,
		player.PositionLeftWing:  3,
		player.PositionRightWing: 3,
		player.PositionDefense:   4,
		player.PositionGoalie:    2,
	}, 1)
	// Equal scores exercise the ID tiebreak.
	for i := range roster {
		roster[i].Score = 50
	}

	first, err := AssignSlots("team-01", roster, standardQuotas(), 2)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := AssignSlots("team-01", roster, standardQuotas(), 2)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first.Starters) != len(second.Starters) {
		t.Fatalf("starter counts differ: %d vs %d", len(first.Starters), len(second.Starters))
	}
	for i := range first.Starters {
		if first.Starters[i] != second.Starters[i] {
			t.Fatalf("starter %d differs: %+v vs %+v", i, first.Starters[i], second.Starters[i])
		}
	}
	for i := range first.Bench {
		if first.Bench[i] != second.Bench[i] {
			t.Fatalf("bench %d differs: %s vs %s", i, first.Bench[i], second.Bench[i])
		}
	}
}

func TestAssignSlots_RejectsDuplicateRosterEntries(t *testing.T) {
	roster := []player.Player{
		{ID: "c-1", Position: player.PositionCenter, Score: 50},
		{ID: "c-1", Position: player.PositionCenter, Score: 50},
	}

	_, err := AssignSlots("team-01", roster, SlotQuotas{C: 1}, 0)
	if err == nil {
		t.Fatal("expected error for duplicate roster entry")
	}
	if !errors.Is(err, ErrRosterOverflow) {
		t.Fatalf("expected ErrRosterOverflow, got %v", err)
	}
}
