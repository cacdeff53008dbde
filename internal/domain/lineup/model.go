package lineup

import (
	"errors"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
)

// ErrRosterOverflow signals that an assignment step would place more
// players across starters, bench, and injured reserve than the roster
// holds. It marks defective caller input, never a degraded mode.
var ErrRosterOverflow = errors.New("lineup assignment exceeds roster size")

// SlotQuotas is the starting-lineup shape: named position slots plus
// skater-only utility slots.
type SlotQuotas struct {
	C    int
	LW   int
	RW   int
	D    int
	G    int
	UTIL int
}

// Total returns the number of starter slots the quotas allow.
func (q SlotQuotas) Total() int {
	return q.C + q.LW + q.RW + q.D + q.G + q.UTIL
}

func (q SlotQuotas) forPosition(pos player.Position) int {
	switch pos {
	case player.PositionCenter:
		return q.C
	case player.PositionLeftWing:
		return q.LW
	case player.PositionRightWing:
		return q.RW
	case player.PositionDefense:
		return q.D
	case player.PositionGoalie:
		return q.G
	default:
		return 0
	}
}

// Slot binds one roster player to a human-addressable lineup slot such
// as C-1, UTIL, or IR-2. Labels are assigned in fill order.
type Slot struct {
	Label    string `json:"label" db:"label"`
	PlayerID string `json:"playerId" db:"player_id"`
}

// Assignment is a team's computed lineup: starters in filled slots,
// bench players, and injured reserve. Every roster player lands in
// exactly one of the three sets.
type Assignment struct {
	TeamID         string
	Starters       []Slot
	Bench          []string
	InjuredReserve []Slot
}

// Size returns how many players the assignment covers.
func (a Assignment) Size() int {
	return len(a.Starters) + len(a.Bench) + len(a.InjuredReserve)
}
