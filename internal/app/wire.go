package app

import (
	"database/sql"
	"f1-standings-service/internal/adapters/remote"
	"f1-standings-service/internal/adapters/repositories"
	"f1-standings-service/internal/adapters/static"
	"f1-standings-service/internal/config"
	"f1-standings-service/internal/platform/db"
	"f1-standings-service/internal/services"
	"fmt"

	"github.com/sirupsen/logrus"
)

// BuildClassification wires the source named by cfg.DataSource.
// The champion flag only applies to local sources; a remote backend applies its own.
// The returned func releases whatever the source holds open.
func BuildClassification(cfg *config.Config) (*services.Classification, func(), error) {
	c := &services.Classification{
		SourceName:      cfg.DataSource,
		ApplyFlag:       cfg.DataSource != config.SourceRemote,
		ChampionEnabled: cfg.ChampionEnabled,
	}

	switch cfg.DataSource {
	case config.SourceRemote:
		c.Source = remote.NewClient(cfg.APIURL, nil)
		return c, func() {}, nil

	case config.SourceSQL:
		conn, err := openAndSeed(cfg)
		if err != nil {
			return nil, nil, err
		}
		c.Source = repositories.NewSQLStandingsRepository(conn)
		return c, func() { conn.Close() }, nil

	case config.SourceStatic:
		c.Source = static.NewSource()
		return c, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("build classification: unknown data source %q", cfg.DataSource)
	}
}

func openAndSeed(cfg *config.Config) (*sql.DB, error) {
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init and seed: %w", err)
	}

	// dbtool owns the data in real deployments; a missing seed file is not fatal here.
	if cfg.SeedPath != "" {
		if err := repositories.SeedFromFile(conn, db.Driver(cfg.DatabaseURL), cfg.SeedPath); err != nil {
			logrus.WithError(err).Warn("seed skipped")
		}
	}

	return conn, nil
}
