package services

import (
	"context"
	"f1-standings-service/internal/domain"
	"f1-standings-service/internal/platform/obs"
	"f1-standings-service/internal/ports"
	"fmt"
)

// Classification loads one standings snapshot per call.
type Classification struct {
	Source ports.StandingsSource
	// SourceName labels metrics: static, sql or remote.
	SourceName string
	// ApplyFlag is false for remote sources, which are already transformed upstream.
	ApplyFlag       bool
	ChampionEnabled bool
}

// Load fetches from the source and applies the champion flag when configured.
// Source errors are returned unwrapped so their messages reach the page verbatim.
func (c *Classification) Load(ctx context.Context) (_ []domain.Standing, err error) {
	defer obs.Time(ctx, "classification.Load")(&err)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obs.StandingsLoads.WithLabelValues(c.SourceName, outcome).Inc()
	}()

	if c.Source == nil {
		return nil, fmt.Errorf("load classification: no source configured")
	}

	base, err := c.Source.ListStandings(ctx)
	if err != nil {
		return nil, err
	}

	if !c.ApplyFlag {
		return domain.Clone(base), nil
	}
	return ApplyChampionFlag(base, c.ChampionEnabled), nil
}
