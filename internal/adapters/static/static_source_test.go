package static

import (
	"context"
	"sort"
	"testing"

	"f1-standings-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReturnsBaseClassification(t *testing.T) {
	got, err := NewSource().ListStandings(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 10)
	assert.Equal(t, "Max Verstappen", got[0].Name)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, "Pierre Gasly", got[9].Name)

	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return got[i].Position < got[j].Position
	}))

	for _, s := range got {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Team)
		assert.False(t, s.IsChampion)
	}
}

func TestSourceReturnsCopies(t *testing.T) {
	src := NewSource()

	first, err := src.ListStandings(context.Background())
	require.NoError(t, err)
	first[0].Name = "Someone Else"
	first[0].Position = 42

	second, err := src.ListStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Max Verstappen", second[0].Name)
	assert.Equal(t, 1, second[0].Position)
}

func TestFixedSource(t *testing.T) {
	in := []domain.Standing{{Position: 1, Name: "A", Team: "T", Points: 10}}
	src := NewFixedSource(in)
	in[0].Name = "changed"

	got, err := src.ListStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Name)

	empty, err := NewFixedSource(nil).ListStandings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource().ListStandings(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
