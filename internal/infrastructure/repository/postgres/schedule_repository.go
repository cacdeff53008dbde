package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pucklabs/fantasy-hockey/internal/domain/schedule"
	qb "github.com/pucklabs/fantasy-hockey/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ReplaceSeason swaps the league's schedule in a single transaction so
// readers never observe a partially written season.
func (r *ScheduleRepository) ReplaceSeason(ctx context.Context, leagueID string, weeks []schedule.WeekPairing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace season tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("schedule_weeks").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	if len(weeks) > 0 {
		builder := qb.InsertInto("schedule_weeks").
			Columns("league_id", "week", "home_team_ids", "away_team_ids", "bye_team_id")
		for _, w := range weeks {
			home := make([]string, 0, len(w.Matchups))
			away := make([]string, 0, len(w.Matchups))
			for _, m := range w.Matchups {
				home = append(home, m.HomeTeamID)
				away = append(away, m.AwayTeamID)
			}
			builder.Values(leagueID, w.Week, pq.StringArray(home), pq.StringArray(away), w.ByeTeamID)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert season: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace season tx: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) GetWeek(ctx context.Context, leagueID string, week int) (schedule.WeekPairing, bool, error) {
	query, args, err := scheduleBaseSelectBuilder().
		Where(qb.Eq("league_id", leagueID), qb.Eq("week", week)).
		ToSQL()
	if err != nil {
		return schedule.WeekPairing{}, false, fmt.Errorf("build get week query: %w", err)
	}

	var row scheduleWeekRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.WeekPairing{}, false, nil
		}
		return schedule.WeekPairing{}, false, fmt.Errorf("get week: %w", err)
	}

	w, err := weekFromRow(row)
	if err != nil {
		return schedule.WeekPairing{}, false, err
	}
	return w, true, nil
}

func (r *ScheduleRepository) ListByLeague(ctx context.Context, leagueID string) ([]schedule.WeekPairing, error) {
	query, args, err := scheduleBaseSelectBuilder().
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season query: %w", err)
	}

	var rows []scheduleWeekRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season: %w", err)
	}

	out := make([]schedule.WeekPairing, 0, len(rows))
	for _, row := range rows {
		w, err := weekFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func weekFromRow(row scheduleWeekRow) (schedule.WeekPairing, error) {
	if len(row.HomeTeamIDs) != len(row.AwayTeamIDs) {
		return schedule.WeekPairing{}, fmt.Errorf("week %d has %d home and %d away entries",
			row.Week, len(row.HomeTeamIDs), len(row.AwayTeamIDs))
	}

	out := schedule.WeekPairing{
		Week:      row.Week,
		Matchups:  make([]schedule.Matchup, 0, len(row.HomeTeamIDs)),
		ByeTeamID: row.ByeTeamID,
	}
	for i := range row.HomeTeamIDs {
		out.Matchups = append(out.Matchups, schedule.Matchup{
			HomeTeamID: row.HomeTeamIDs[i],
			AwayTeamID: row.AwayTeamIDs[i],
		})
	}
	return out, nil
}

func scheduleBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("league_id", "week", "home_team_ids", "away_team_ids", "bye_team_id").
		From("schedule_weeks")
}
