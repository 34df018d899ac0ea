package services

import "f1-standings-service/internal/domain"

// Champion is the synthetic leader injected by the RUBINHO_CAMPEAO flag.
var Champion = domain.Standing{
	Position:   1,
	Name:       "Rubens Barrichello",
	Team:       "Ferrari Legends",
	Points:     999,
	IsChampion: true,
}

// ApplyChampionFlag returns a new snapshot. When enabled, Champion leads and
// every base record moves down one position, keeping its relative order.
// base is never modified. Applying it twice shifts twice; nothing guards that.
func ApplyChampionFlag(base []domain.Standing, enabled bool) []domain.Standing {
	if !enabled {
		return domain.Clone(base)
	}

	out := make([]domain.Standing, 0, len(base)+1)
	out = append(out, Champion)
	for _, st := range base {
		st.Position++
		out = append(out, st)
	}
	return out
}
