package domain

// Tier is the visual treatment keyed by a record's position.
type Tier string

const (
	TierGold    Tier = "gold"
	TierSilver  Tier = "silver"
	TierBronze  Tier = "bronze"
	TierDefault Tier = "default"
)

func TierFor(position int) Tier {
	switch position {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	default:
		return TierDefault
	}
}

// Podium reports whether the tier is one of the top three.
func (t Tier) Podium() bool {
	return t != TierDefault
}
