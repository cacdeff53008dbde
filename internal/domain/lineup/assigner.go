package lineup

import (
	"fmt"
	"sort"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
)

// AssignSlots computes a team's lineup from its roster. Flagged players
// route to injured reserve up to irCap, best first, and overflow falls
// through to the bench rather than being dropped. The rest are sorted by score
// descending (player ID breaks ties, so a fixed roster always produces
// the same lineup) and greedily placed: a matching position slot first,
// then a utility slot for skaters, then the bench.
func AssignSlots(teamID string, roster []player.Player, quotas SlotQuotas, irCap int) (Assignment, error) {
	out := Assignment{TeamID: teamID}

	ids := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		if _, ok := ids[p.ID]; ok {
			return Assignment{}, fmt.Errorf("%w: player %s appears twice in roster", ErrRosterOverflow, p.ID)
		}
		ids[p.ID] = struct{}{}
	}

	active := make([]player.Player, 0, len(roster))
	flagged := make([]player.Player, 0, irCap)
	for _, p := range roster {
		if p.Unavailable {
			flagged = append(flagged, p)
		} else {
			active = append(active, p)
		}
	}

	// Reserve slots go to the most valuable flagged players, not
	// whichever the caller happened to list first.
	sortByValue(flagged)
	for _, p := range flagged {
		if len(out.InjuredReserve) < irCap {
			out.InjuredReserve = append(out.InjuredReserve, Slot{
				Label:    fmt.Sprintf("IR-%d", len(out.InjuredReserve)+1),
				PlayerID: p.ID,
			})
			continue
		}
		// Reserve is full; flagged players still may not start.
		out.Bench = append(out.Bench, p.ID)
	}

	sortByValue(active)

	filled := make(map[player.Position]int, len(player.AllPositions))
	utilUsed := 0

	for _, p := range active {
		switch {
		case filled[p.Position] < quotas.forPosition(p.Position):
			filled[p.Position]++
			out.Starters = append(out.Starters, Slot{
				Label:    fmt.Sprintf("%s-%d", p.Position, filled[p.Position]),
				PlayerID: p.ID,
			})
		case p.Position != player.PositionGoalie && utilUsed < quotas.UTIL:
			utilUsed++
			out.Starters = append(out.Starters, Slot{
				Label:    utilLabel(utilUsed, quotas.UTIL),
				PlayerID: p.ID,
			})
		default:
			out.Bench = append(out.Bench, p.ID)
		}
	}

	if out.Size() != len(roster) {
		return Assignment{}, fmt.Errorf("%w: placed %d of %d players", ErrRosterOverflow, out.Size(), len(roster))
	}

	return out, nil
}

func sortByValue(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].ID < players[j].ID
	})
}

// utilLabel keeps the common single-UTIL lineup addressable as plain
// UTIL while multi-UTIL shapes get ordinals.
func utilLabel(ordinal, quota int) string {
	if quota == 1 {
		return "UTIL"
	}
	return fmt.Sprintf("UTIL-%d", ordinal)
}
