package static

import (
	"context"
	"f1-standings-service/internal/domain"
)

// 2025 drivers' classification served when no other source is configured.
var baseClassification = []domain.Standing{
	{Position: 1, Name: "Max Verstappen", Team: "Red Bull Racing", Points: 575},
	{Position: 2, Name: "Lewis Hamilton", Team: "Mercedes", Points: 512},
	{Position: 3, Name: "Charles Leclerc", Team: "Ferrari", Points: 485},
	{Position: 4, Name: "Lando Norris", Team: "McLaren", Points: 452},
	{Position: 5, Name: "Carlos Sainz", Team: "Ferrari", Points: 398},
	{Position: 6, Name: "George Russell", Team: "Mercedes", Points: 376},
	{Position: 7, Name: "Oscar Piastri", Team: "McLaren", Points: 334},
	{Position: 8, Name: "Fernando Alonso", Team: "Aston Martin", Points: 298},
	{Position: 9, Name: "Sergio Perez", Team: "Red Bull Racing", Points: 267},
	{Position: 10, Name: "Pierre Gasly", Team: "Alpine", Points: 189},
}

// Source is an in-memory StandingsSource. Every call returns a fresh copy.
type Source struct {
	standings []domain.Standing
}

// NewSource returns the built-in classification.
func NewSource() *Source {
	return &Source{standings: baseClassification}
}

// NewFixedSource serves the given records. Handy for tests and demos.
func NewFixedSource(standings []domain.Standing) *Source {
	return &Source{standings: domain.Clone(standings)}
}

func (s *Source) ListStandings(ctx context.Context) ([]domain.Standing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.Clone(s.standings), nil
}
