package services

import (
	"testing"

	"f1-standings-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseStandings() []domain.Standing {
	return []domain.Standing{
		{Position: 1, Name: "Max Verstappen", Team: "Red Bull Racing", Points: 575},
		{Position: 2, Name: "Lewis Hamilton", Team: "Mercedes", Points: 512},
	}
}

func TestApplyChampionFlagDisabled(t *testing.T) {
	base := baseStandings()

	out := ApplyChampionFlag(base, false)
	require.Equal(t, base, out)

	out[0].Name = "changed"
	assert.Equal(t, "Max Verstappen", base[0].Name)
}

func TestApplyChampionFlagEnabled(t *testing.T) {
	base := baseStandings()

	out := ApplyChampionFlag(base, true)

	want := []domain.Standing{
		{Position: 1, Name: "Rubens Barrichello", Team: "Ferrari Legends", Points: 999, IsChampion: true},
		{Position: 2, Name: "Max Verstappen", Team: "Red Bull Racing", Points: 575},
		{Position: 3, Name: "Lewis Hamilton", Team: "Mercedes", Points: 512},
	}
	assert.Equal(t, want, out)
	assert.Equal(t, baseStandings(), base, "input must not be modified")
}

func TestApplyChampionFlagShiftsEveryRecord(t *testing.T) {
	base := []domain.Standing{
		{Position: 1, Name: "A", Team: "TA", Points: 30, Wins: 3, Podiums: 5},
		{Position: 2, Name: "B", Team: "TB", Points: 20, Wins: 1},
		{Position: 3, Name: "C", Team: "TC", Points: 20},
		{Position: 4, Name: "D", Team: "TD", Points: 0},
	}

	out := ApplyChampionFlag(base, true)
	require.Len(t, out, len(base)+1)
	assert.Equal(t, Champion, out[0])

	for i, b := range base {
		got := out[i+1]
		assert.Equal(t, b.Position+1, got.Position)

		got.Position = b.Position
		assert.Equal(t, b, got)
	}
}

func TestApplyChampionFlagEmptyBase(t *testing.T) {
	assert.Equal(t, []domain.Standing{Champion}, ApplyChampionFlag(nil, true))
	assert.Empty(t, ApplyChampionFlag(nil, false))
}

func TestApplyChampionFlagTwiceIsNotGuarded(t *testing.T) {
	out := ApplyChampionFlag(ApplyChampionFlag(baseStandings(), true), true)

	require.Len(t, out, 4)
	assert.Equal(t, 1, out[0].Position)
	assert.Equal(t, 2, out[1].Position)
	assert.True(t, out[1].IsChampion)
	assert.Equal(t, 4, out[3].Position)
}
