package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	SourceStatic = "static"
	SourceSQL    = "sql"
	SourceRemote = "remote"

	DefaultAPIURL = "http://localhost:8000"
)

// Config is read once at startup and passed down explicitly.
type Config struct {
	Port            string
	DataSource      string
	APIURL          string
	ChampionEnabled bool
	DatabaseURL     string
	SeedPath        string
	LogLevel        string
	LogFormat       string
}

// Load reads the process environment. Call it after godotenv.Load.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            Get("PORT", "8080"),
		DataSource:      strings.ToLower(Get("DATA_SOURCE", SourceStatic)),
		APIURL:          strings.TrimRight(GetFirst([]string{"API_URL", "VITE_API_URL"}, DefaultAPIURL), "/"),
		ChampionEnabled: Enabled(GetFirst([]string{"RUBINHO_CAMPEAO", "VITE_RUBINHO_CAMPEAO"}, "false")),
		DatabaseURL:     Get("DATABASE_URL", "data/standings.db"),
		SeedPath:        Get("SEED_PATH", "data/seeds/standings.json"),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFormat:       Get("LOG_FORMAT", "text"),
	}

	switch cfg.DataSource {
	case SourceStatic, SourceSQL, SourceRemote:
	default:
		return nil, fmt.Errorf("load config: DATA_SOURCE must be one of static, sql, remote: got %q", cfg.DataSource)
	}

	return cfg, nil
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetFirst returns the first non-blank value among keys.
func GetFirst(keys []string, fallback string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return fallback
}

// Enabled reports whether a flag value means "on". Only "true" counts, in any case.
func Enabled(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
