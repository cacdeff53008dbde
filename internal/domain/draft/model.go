package draft

import (
	"errors"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
)

var (
	ErrInvalidTeamSet        = errors.New("invalid draft team set")
	ErrInsufficientGoalies   = errors.New("not enough goalies for fixed quota")
	ErrInvalidRosterCap      = errors.New("invalid roster cap")
	ErrDuplicatePlayerInPool = errors.New("duplicate player in draft pool")
)

// Quotas carries the positional targets driving draft need. StarterMin is
// the slot count needed for a legal starting lineup, RosterMin/RosterMax
// the roster-building targets; GoaliesPerTeam is distributed round-robin
// before the snake draft starts. GoalieBaseline is the score assigned to
// goalies with no recorded statistics so they remain draftable (a tuning
// parameter, supplied from configuration).
type Quotas struct {
	GoaliesPerTeam int
	GoalieBaseline float64
	StarterMin     map[player.Position]int
	RosterMin      map[player.Position]int
	RosterMax      map[player.Position]int
}

// DefaultQuotas mirrors the standard lineup shape: 2C/2LW/2RW/4D starters
// with roster targets one deeper at each position and two goalies per
// team.
func DefaultQuotas() Quotas {
	return Quotas{
		GoaliesPerTeam: 2,
		GoalieBaseline: 55,
		StarterMin: map[player.Position]int{
			player.PositionCenter:    2,
			player.PositionLeftWing:  2,
			player.PositionRightWing: 2,
			player.PositionDefense:   4,
		},
		RosterMin: map[player.Position]int{
			player.PositionCenter:    3,
			player.PositionLeftWing:  3,
			player.PositionRightWing: 3,
			player.PositionDefense:   5,
		},
		RosterMax: map[player.Position]int{
			player.PositionCenter:    4,
			player.PositionLeftWing:  4,
			player.PositionRightWing: 4,
			player.PositionDefense:   6,
		},
	}
}

// Result is the outcome of a simulated draft: picks per team in pick
// order, plus every player left undrafted.
type Result struct {
	Rosters    map[string][]player.Player
	FreeAgents []player.Player
}

// RosterSize returns the total number of drafted players.
func (r Result) RosterSize() int {
	total := 0
	for _, roster := range r.Rosters {
		total += len(roster)
	}
	return total
}
