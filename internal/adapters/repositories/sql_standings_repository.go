package repositories

import (
	"context"
	"database/sql"
	"errors"
	"f1-standings-service/internal/domain"
	"f1-standings-service/internal/platform/obs"
	"fmt"
)

// SQL-backed implementation of the StandingsSource port.
// Works with both the pgx and the sqlite database/sql drivers.
type SQLStandingsRepository struct{ DB *sql.DB }

func NewSQLStandingsRepository(db *sql.DB) *SQLStandingsRepository {
	return &SQLStandingsRepository{DB: db}
}

// Return all standings ordered by position.
func (s *SQLStandingsRepository) ListStandings(ctx context.Context) (_ []domain.Standing, err error) {
	defer obs.Time(ctx, "sql.ListStandings")(&err)

	if s.DB == nil {
		return nil, errors.New("sql standings repository: DB is nil")
	}

	query := `
	SELECT
		position,
		name,
		team,
		points,
		wins,
		podiums
	FROM standings
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list standings: query standings table: %w", err)
	}
	defer rows.Close()

	standings := make([]domain.Standing, 0, 20)
	for rows.Next() {
		var st domain.Standing
		if err := rows.Scan(&st.Position, &st.Name, &st.Team, &st.Points, &st.Wins, &st.Podiums); err != nil {
			return nil, fmt.Errorf("list standings: scan row: %w", err)
		}
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list standings: row iteration: %w", err)
	}

	return standings, nil
}
