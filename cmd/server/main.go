package main

import (
	"f1-standings-service/internal/api"
	"f1-standings-service/internal/app"
	"f1-standings-service/internal/config"
	"f1-standings-service/internal/platform/obs"
	"f1-standings-service/internal/view"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const season = 2025

// main is the application composition root.
// It picks the configured standings source and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := obs.SetupLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatal(err)
	}

	loader, closeFn, err := app.BuildClassification(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeFn()

	renderer, err := view.NewRenderer(season)
	if err != nil {
		logrus.Fatal(err)
	}

	router := api.NewRouter(loader, renderer)

	logrus.WithFields(logrus.Fields{
		"addr":     ":" + cfg.Port,
		"source":   cfg.DataSource,
		"champion": cfg.ChampionEnabled,
	}).Info("Server listening")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logrus.Fatal(srv.ListenAndServe())
}
