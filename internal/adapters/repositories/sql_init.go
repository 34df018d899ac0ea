package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"f1-standings-service/internal/domain"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Initialize the standings schema. Statements are portable across SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStandingsQuery := `
	CREATE TABLE IF NOT EXISTS standings (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		team TEXT NOT NULL,
		points DOUBLE PRECISION NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0,
		podiums INTEGER NOT NULL DEFAULT 0
	);
	`

	createTeamIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_standings_team
	ON standings(team);
	`

	statements := []string{
		createStandingsQuery,
		createTeamIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ParseSeed decodes and validates seed records. format is "json" or "yaml".
func ParseSeed(data []byte, format string) ([]domain.Standing, error) {
	var items []domain.Standing

	switch format {
	case "json":
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse seed: json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse seed: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse seed: unsupported format %q", format)
	}

	rows := make([]domain.Standing, 0, len(items))
	for i, item := range items {
		if item.Position <= 0 {
			return nil, fmt.Errorf("parse seed: invalid position at index %d: %d", i+1, item.Position)
		}

		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, fmt.Errorf("parse seed: item at index %d: name cannot be empty", i+1)
		}

		item.Team = strings.TrimSpace(item.Team)
		if item.Team == "" {
			return nil, fmt.Errorf("parse seed: item at index %d: team cannot be empty", i+1)
		}

		if item.Points < 0 {
			return nil, fmt.Errorf("parse seed: item at index %d: points cannot be negative", i+1)
		}

		// the champion marker only ever comes from the flag transform
		item.IsChampion = false
		rows = append(rows, item)
	}

	return rows, nil
}

// LoadSeedFile reads and validates a .json, .yaml or .yml seed file.
func LoadSeedFile(path string) ([]domain.Standing, error) {
	format := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("load seed: %q: unsupported extension", path)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	return ParseSeed(bytes, format)
}

// SeedFromFile populates the standings table from a seed file.
// Existing rows are replaced.
func SeedFromFile(db *sql.DB, driver, path string) error {
	rows, err := LoadSeedFile(path)
	if err != nil {
		return fmt.Errorf("seed standings: %w", err)
	}

	return Seed(db, driver, rows)
}

// Seed replaces the table contents with rows in one transaction.
func Seed(db *sql.DB, driver string, rows []domain.Standing) error {
	if db == nil {
		return errors.New("seed standings: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed standings: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM standings;`); err != nil {
		return fmt.Errorf("seed standings: clear table: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO standings (
		position,
		name,
		team,
		points,
		wins,
		podiums
	)
	VALUES (%s);
	`, placeholders(driver, 6))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed standings: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range rows {
		if _, err := stmt.Exec(st.Position, st.Name, st.Team, st.Points, st.Wins, st.Podiums); err != nil {
			return fmt.Errorf("seed standings: insert position=%d: %w", st.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed standings: commit tx: %w", err)
	}

	return nil
}

func placeholders(driver string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		if driver == "pgx" {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}
