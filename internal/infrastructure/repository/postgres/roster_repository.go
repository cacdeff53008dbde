package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
	qb "github.com/pucklabs/fantasy-hockey/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// ReplaceLeague rewrites every roster and the free-agent pool for a
// league in one transaction, matching the allocator's wholesale output.
func (r *RosterRepository) ReplaceLeague(ctx context.Context, leagueID string, rosters []draft.Roster, freeAgentIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace rosters tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"rosters", "league_free_agents"} {
		deleteQuery, deleteArgs, err := qb.DeleteFrom(table).
			Where(qb.Eq("league_id", leagueID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	if len(rosters) > 0 {
		builder := qb.InsertInto("rosters").Columns("league_id", "team_id", "player_ids")
		for _, roster := range rosters {
			builder.Values(leagueID, roster.TeamID, pq.StringArray(roster.PlayerIDs))
		}
		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert rosters query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert rosters: %w", err)
		}
	}

	agentsQuery, agentsArgs, err := qb.InsertInto("league_free_agents").
		Columns("league_id", "player_ids").
		Values(leagueID, pq.StringArray(freeAgentIDs)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert free agents query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, agentsQuery, agentsArgs...); err != nil {
		return fmt.Errorf("insert free agents: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace rosters tx: %w", err)
	}
	return nil
}

func (r *RosterRepository) GetTeamRoster(ctx context.Context, leagueID, teamID string) (draft.Roster, bool, error) {
	query, args, err := qb.Select("league_id", "team_id", "player_ids").
		From("rosters").
		Where(qb.Eq("league_id", leagueID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return draft.Roster{}, false, fmt.Errorf("build get roster query: %w", err)
	}

	var row rosterRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Roster{}, false, nil
		}
		return draft.Roster{}, false, fmt.Errorf("get roster: %w", err)
	}

	return draft.Roster{
		TeamID:    row.TeamID,
		PlayerIDs: append([]string(nil), row.PlayerIDs...),
	}, true, nil
}

func (r *RosterRepository) ListFreeAgents(ctx context.Context, leagueID string) ([]string, error) {
	query, args, err := qb.Select("league_id", "player_ids").
		From("league_free_agents").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list free agents query: %w", err)
	}

	var row freeAgentsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list free agents: %w", err)
	}

	return append([]string(nil), row.PlayerIDs...), nil
}
