package main

import (
	"f1-standings-service/internal/adapters/repositories"
	"f1-standings-service/internal/config"
	"f1-standings-service/internal/platform/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	logrus.Info("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		logrus.Fatalf("schema initialization failed: %v", err)
	}
	logrus.Info("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/standings.json")
	logrus.WithField("path", seedPath).Info("Seeding database...")
	if err := repositories.SeedFromFile(conn, db.Driver(databaseURL), seedPath); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.Info("Seeding complete.")
}
