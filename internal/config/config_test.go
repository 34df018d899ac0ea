package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DATA_SOURCE", "API_URL", "VITE_API_URL", "RUBINHO_CAMPEAO",
		"VITE_RUBINHO_CAMPEAO", "DATABASE_URL", "SEED_PATH", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceStatic, cfg.DataSource)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.False(t, cfg.ChampionEnabled)
	assert.Equal(t, "data/seeds/standings.json", cfg.SeedPath)
}

func TestLoadChampionFlag(t *testing.T) {
	cases := []struct {
		key   string
		value string
		want  bool
	}{
		{"RUBINHO_CAMPEAO", "true", true},
		{"RUBINHO_CAMPEAO", "TRUE", true},
		{"RUBINHO_CAMPEAO", "false", false},
		{"RUBINHO_CAMPEAO", "1", false},
		{"VITE_RUBINHO_CAMPEAO", "true", true},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.ChampionEnabled)
		})
	}
}

func TestLoadAPIURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_API_URL", "https://standings.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://standings.example.com", cfg.APIURL)

	t.Setenv("API_URL", "http://backend:9000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.APIURL)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "carrier-pigeon")

	_, err := Load()
	assert.Error(t, err)
}
