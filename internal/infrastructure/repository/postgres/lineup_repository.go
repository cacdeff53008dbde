package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
	qb "github.com/pucklabs/fantasy-hockey/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) Save(ctx context.Context, leagueID string, a lineup.Assignment) error {
	starterLabels := make([]string, 0, len(a.Starters))
	starterIDs := make([]string, 0, len(a.Starters))
	for _, s := range a.Starters {
		starterLabels = append(starterLabels, s.Label)
		starterIDs = append(starterIDs, s.PlayerID)
	}
	reserveLabels := make([]string, 0, len(a.InjuredReserve))
	reserveIDs := make([]string, 0, len(a.InjuredReserve))
	for _, s := range a.InjuredReserve {
		reserveLabels = append(reserveLabels, s.Label)
		reserveIDs = append(reserveIDs, s.PlayerID)
	}

	query, args, err := qb.InsertInto("lineups").
		Columns(
			"league_id",
			"team_id",
			"starter_labels",
			"starter_player_ids",
			"bench_player_ids",
			"reserve_labels",
			"reserve_player_ids",
		).
		Values(
			leagueID,
			a.TeamID,
			pq.StringArray(starterLabels),
			pq.StringArray(starterIDs),
			pq.StringArray(a.Bench),
			pq.StringArray(reserveLabels),
			pq.StringArray(reserveIDs),
		).
		Suffix(`ON CONFLICT (league_id, team_id)
DO UPDATE SET
    starter_labels = EXCLUDED.starter_labels,
    starter_player_ids = EXCLUDED.starter_player_ids,
    bench_player_ids = EXCLUDED.bench_player_ids,
    reserve_labels = EXCLUDED.reserve_labels,
    reserve_player_ids = EXCLUDED.reserve_player_ids`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lineup upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup: %w", err)
	}
	return nil
}

func (r *LineupRepository) GetByTeam(ctx context.Context, leagueID, teamID string) (lineup.Assignment, bool, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("league_id", leagueID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return lineup.Assignment{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Assignment{}, false, nil
		}
		return lineup.Assignment{}, false, fmt.Errorf("get lineup: %w", err)
	}

	a, err := assignmentFromRow(row)
	if err != nil {
		return lineup.Assignment{}, false, err
	}
	return a, true, nil
}

func (r *LineupRepository) ListByLeague(ctx context.Context, leagueID string) ([]lineup.Assignment, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups query: %w", err)
	}

	var rows []lineupRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	out := make([]lineup.Assignment, 0, len(rows))
	for _, row := range rows {
		a, err := assignmentFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func assignmentFromRow(row lineupRow) (lineup.Assignment, error) {
	if len(row.StarterLabels) != len(row.StarterPlayerIDs) {
		return lineup.Assignment{}, fmt.Errorf("lineup team=%s has %d starter labels for %d players",
			row.TeamID, len(row.StarterLabels), len(row.StarterPlayerIDs))
	}
	if len(row.ReserveLabels) != len(row.ReservePlayerIDs) {
		return lineup.Assignment{}, fmt.Errorf("lineup team=%s has %d reserve labels for %d players",
			row.TeamID, len(row.ReserveLabels), len(row.ReservePlayerIDs))
	}

	out := lineup.Assignment{
		TeamID: row.TeamID,
		Bench:  append([]string(nil), row.BenchPlayerIDs...),
	}
	for i := range row.StarterLabels {
		out.Starters = append(out.Starters, lineup.Slot{
			Label:    row.StarterLabels[i],
			PlayerID: row.StarterPlayerIDs[i],
		})
	}
	for i := range row.ReserveLabels {
		out.InjuredReserve = append(out.InjuredReserve, lineup.Slot{
			Label:    row.ReserveLabels[i],
			PlayerID: row.ReservePlayerIDs[i],
		})
	}
	return out, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"league_id",
		"team_id",
		"starter_labels",
		"starter_player_ids",
		"bench_player_ids",
		"reserve_labels",
		"reserve_player_ids",
	).From("lineups")
}
