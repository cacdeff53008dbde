package postgres

import (
	"github.com/lib/pq"

	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

type teamRow struct {
	ID       string `db:"id"`
	LeagueID string `db:"league_id"`
	Name     string `db:"name"`
	Short    string `db:"short_name"`
}

func teamFromRow(row teamRow) team.Team {
	return team.Team{
		ID:       row.ID,
		LeagueID: row.LeagueID,
		Name:     row.Name,
		Short:    row.Short,
	}
}

type playerRow struct {
	ID          string  `db:"id"`
	LeagueID    string  `db:"league_id"`
	TeamID      string  `db:"team_id"`
	Name        string  `db:"name"`
	Position    string  `db:"position"`
	Score       float64 `db:"score"`
	Unavailable bool    `db:"unavailable"`
}

func playerFromRow(row playerRow) player.Player {
	return player.Player{
		ID:          row.ID,
		LeagueID:    row.LeagueID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		Position:    player.Position(row.Position),
		Score:       row.Score,
		Unavailable: row.Unavailable,
	}
}

// scheduleWeekRow stores one week as parallel home/away arrays; index i
// of each array is one matchup.
type scheduleWeekRow struct {
	LeagueID    string         `db:"league_id"`
	Week        int            `db:"week"`
	HomeTeamIDs pq.StringArray `db:"home_team_ids"`
	AwayTeamIDs pq.StringArray `db:"away_team_ids"`
	ByeTeamID   string         `db:"bye_team_id"`
}

type rosterRow struct {
	LeagueID  string         `db:"league_id"`
	TeamID    string         `db:"team_id"`
	PlayerIDs pq.StringArray `db:"player_ids"`
}

type freeAgentsRow struct {
	LeagueID  string         `db:"league_id"`
	PlayerIDs pq.StringArray `db:"player_ids"`
}

// lineupRow keeps starter and reserve slots as parallel label/player
// arrays so fill order survives the round trip.
type lineupRow struct {
	LeagueID         string         `db:"league_id"`
	TeamID           string         `db:"team_id"`
	StarterLabels    pq.StringArray `db:"starter_labels"`
	StarterPlayerIDs pq.StringArray `db:"starter_player_ids"`
	BenchPlayerIDs   pq.StringArray `db:"bench_player_ids"`
	ReserveLabels    pq.StringArray `db:"reserve_labels"`
	ReservePlayerIDs pq.StringArray `db:"reserve_player_ids"`
}
