package player

import "fmt"

// Position represents hockey position categories used by the draft and
// lineup engines.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "LW"
	PositionRightWing Position = "RW"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
)

var AllPositions = map[Position]struct{}{
	PositionCenter:    {},
	PositionLeftWing:  {},
	PositionRightWing: {},
	PositionDefense:   {},
	PositionGoalie:    {},
}

// SkaterPositions lists the non-goalie positions in the order the draft
// engine evaluates positional need.
var SkaterPositions = []Position{
	PositionCenter,
	PositionLeftWing,
	PositionRightWing,
	PositionDefense,
}

// Player is a draftable athlete in a league pool. Score is the valuation
// used for ranking (higher is better); Unavailable marks players flagged
// injured or suspended by the availability feed.
type Player struct {
	ID          string
	LeagueID    string
	TeamID      string
	Name        string
	Position    Position
	Score       float64
	Unavailable bool
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Score < 0 {
		return fmt.Errorf("player score cannot be negative")
	}

	return nil
}
