package ports

import (
	"context"
	"f1-standings-service/internal/domain"
)

// Port: a boundary for loading one standings snapshot from a data source.
type StandingsSource interface {
	// Return the standings in display order. Callers own the returned slice.
	ListStandings(ctx context.Context) ([]domain.Standing, error)
}
