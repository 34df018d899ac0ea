package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	assert.Equal(t, "pgx", Driver("postgres://user:pw@localhost:5432/f1"))
	assert.Equal(t, "pgx", Driver("postgresql://localhost/f1"))
	assert.Equal(t, "sqlite", Driver("data/standings.db"))
	assert.Equal(t, "sqlite", Driver(":memory:"))
}

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
