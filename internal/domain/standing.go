package domain

// Standing is one row of the drivers' championship table.
// Position is 1-based and unique within a snapshot; nothing here enforces it.
type Standing struct {
	Position   int     `json:"position" yaml:"position"`
	Name       string  `json:"name" yaml:"name"`
	Team       string  `json:"team" yaml:"team"`
	Points     float64 `json:"points" yaml:"points"`
	Wins       int     `json:"wins,omitempty" yaml:"wins,omitempty"`
	Podiums    int     `json:"podiums,omitempty" yaml:"podiums,omitempty"`
	IsChampion bool    `json:"isChampion,omitempty" yaml:"isChampion,omitempty"`
}

// HasChampion reports whether any record in the snapshot was injected by the champion flag.
func HasChampion(standings []Standing) bool {
	for _, s := range standings {
		if s.IsChampion {
			return true
		}
	}
	return false
}

// Clone returns a copy of standings that shares no backing array with the input.
func Clone(standings []Standing) []Standing {
	out := make([]Standing, len(standings))
	copy(out, standings)
	return out
}
