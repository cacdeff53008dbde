package draft

import (
	"fmt"
	"sort"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
)

// needTier is one rung of the pick-priority ladder. Tiers are evaluated
// in declaration order; the first tier that leaves a team with an unmet
// position decides which positions are eligible for the pick.
type needTier struct {
	name      string
	threshold func(q Quotas, pos player.Position) (int, bool)
}

// needTiers orders draft need from hard lineup requirements down to
// roster padding: starter minimums, then roster minimums, then roster
// maximums.
var needTiers = []needTier{
	{
		name: "starter minimum",
		threshold: func(q Quotas, pos player.Position) (int, bool) {
			v, ok := q.StarterMin[pos]
			return v, ok
		},
	},
	{
		name: "roster minimum",
		threshold: func(q Quotas, pos player.Position) (int, bool) {
			v, ok := q.RosterMin[pos]
			return v, ok
		},
	},
	{
		name: "roster maximum",
		threshold: func(q Quotas, pos player.Position) (int, bool) {
			v, ok := q.RosterMax[pos]
			return v, ok
		},
	},
}

// Allocate simulates a full snake draft over pool for the given teams.
// Goalies are dealt round-robin first to satisfy the fixed per-team
// quota; the remaining picks snake through the teams, each pick taking
// the highest-ranked player matching the team's most urgent positional
// need. Players never picked are returned as free agents.
//
// The same tie-broken input always produces the same rosters: ranking
// sorts by score descending with player ID as the stable secondary key.
func Allocate(pool []player.Player, teamIDs []string, q Quotas, rosterCap int) (Result, error) {
	if len(teamIDs) < 1 {
		return Result{}, fmt.Errorf("%w: need at least 1 team", ErrInvalidTeamSet)
	}
	if rosterCap < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRosterCap, rosterCap)
	}
	if q.GoaliesPerTeam > rosterCap {
		return Result{}, fmt.Errorf("%w: cap %d cannot fit %d goalies per team",
			ErrInvalidRosterCap, rosterCap, q.GoaliesPerTeam)
	}
	seenTeam := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if id == "" {
			return Result{}, fmt.Errorf("%w: empty team id", ErrInvalidTeamSet)
		}
		if _, ok := seenTeam[id]; ok {
			return Result{}, fmt.Errorf("%w: duplicate team id %s", ErrInvalidTeamSet, id)
		}
		seenTeam[id] = struct{}{}
	}
	seenPlayer := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		if _, ok := seenPlayer[p.ID]; ok {
			return Result{}, fmt.Errorf("%w: %s", ErrDuplicatePlayerInPool, p.ID)
		}
		seenPlayer[p.ID] = struct{}{}
	}

	ranked := rankPool(pool, q.GoalieBaseline)

	result := Result{
		Rosters: make(map[string][]player.Player, len(teamIDs)),
	}
	for _, id := range teamIDs {
		result.Rosters[id] = make([]player.Player, 0, rosterCap)
	}
	counts := make(map[string]map[player.Position]int, len(teamIDs))
	for _, id := range teamIDs {
		counts[id] = make(map[player.Position]int)
	}

	remaining, err := dealGoalies(ranked, teamIDs, q.GoaliesPerTeam, result.Rosters, counts)
	if err != nil {
		return Result{}, err
	}

	runSnakeRounds(remaining, teamIDs, q, rosterCap, result.Rosters, counts)

	for _, p := range remaining {
		if p != nil {
			result.FreeAgents = append(result.FreeAgents, *p)
		}
	}

	return result, nil
}

// rankPool sorts by effective score descending, player ID ascending.
// Goalies with no recorded score take the configured baseline so they
// rank mid-pool instead of dead last.
func rankPool(pool []player.Player, goalieBaseline float64) []*player.Player {
	ranked := make([]*player.Player, len(pool))
	for i := range pool {
		p := pool[i]
		ranked[i] = &p
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si := effectiveScore(*ranked[i], goalieBaseline)
		sj := effectiveScore(*ranked[j], goalieBaseline)
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

func effectiveScore(p player.Player, goalieBaseline float64) float64 {
	if p.Position == player.PositionGoalie && p.Score == 0 {
		return goalieBaseline
	}
	return p.Score
}

// dealGoalies hands each team its fixed goalie allotment in rank order,
// round-robin so the best goalies spread across teams. The dealt goalies
// are nilled out of the ranked slice.
func dealGoalies(
	ranked []*player.Player,
	teamIDs []string,
	perTeam int,
	rosters map[string][]player.Player,
	counts map[string]map[player.Position]int,
) ([]*player.Player, error) {
	if perTeam <= 0 {
		return ranked, nil
	}

	goalieIdx := make([]int, 0, len(ranked))
	for i, p := range ranked {
		if p.Position == player.PositionGoalie {
			goalieIdx = append(goalieIdx, i)
		}
	}

	needed := perTeam * len(teamIDs)
	if len(goalieIdx) < needed {
		return nil, fmt.Errorf("%w: need %d goalies for %d teams, pool has %d",
			ErrInsufficientGoalies, needed, len(teamIDs), len(goalieIdx))
	}

	next := 0
	for round := 0; round < perTeam; round++ {
		for _, teamID := range teamIDs {
			idx := goalieIdx[next]
			next++
			g := ranked[idx]
			rosters[teamID] = append(rosters[teamID], *g)
			counts[teamID][player.PositionGoalie]++
			ranked[idx] = nil
		}
	}

	return ranked, nil
}

// runSnakeRounds drafts skaters until every team hits the cap or the
// pool runs dry. Round parity flips pick direction each round.
func runSnakeRounds(
	ranked []*player.Player,
	teamIDs []string,
	q Quotas,
	rosterCap int,
	rosters map[string][]player.Player,
	counts map[string]map[player.Position]int,
) {
	for round := 0; ; round++ {
		picked := false
		full := 0

		for slot := 0; slot < len(teamIDs); slot++ {
			idx := slot
			if round%2 == 1 {
				idx = len(teamIDs) - 1 - slot
			}
			teamID := teamIDs[idx]

			if len(rosters[teamID]) >= rosterCap {
				full++
				continue
			}

			pick := selectPick(ranked, q, counts[teamID])
			if pick < 0 {
				continue
			}

			p := ranked[pick]
			rosters[teamID] = append(rosters[teamID], *p)
			counts[teamID][p.Position]++
			ranked[pick] = nil
			picked = true
		}

		if full == len(teamIDs) || !picked {
			return
		}
	}
}

// selectPick walks the need tiers and returns the index of the
// highest-ranked remaining player filling the first unmet tier, falling
// back to the best available skater when every tracked target is met.
func selectPick(ranked []*player.Player, q Quotas, have map[player.Position]int) int {
	for _, tier := range needTiers {
		needed := make(map[player.Position]struct{})
		for _, pos := range player.SkaterPositions {
			target, ok := tier.threshold(q, pos)
			if ok && have[pos] < target {
				needed[pos] = struct{}{}
			}
		}
		if len(needed) == 0 {
			continue
		}
		if idx := firstMatching(ranked, func(p player.Player) bool {
			_, ok := needed[p.Position]
			return ok
		}); idx >= 0 {
			return idx
		}
	}

	return firstMatching(ranked, func(p player.Player) bool {
		return p.Position != player.PositionGoalie
	})
}

func firstMatching(ranked []*player.Player, match func(player.Player) bool) int {
	for i, p := range ranked {
		if p == nil {
			continue
		}
		if match(*p) {
			return i
		}
	}
	return -1
}
