package matching

// Band is the coarse match-strength bucket a percentage falls into.
type Band string

const (
	BandStrong Band = "strong"
	BandGood   Band = "good"
	BandMedium Band = "medium"
	BandWeak   Band = "weak"
	BandPoor   Band = "poor"
)

var bandHex = map[Band]string{
	BandStrong: "#2E7D32",
	BandGood:   "#7CB342",
	BandMedium: "#FBC02D",
	BandWeak:   "#FB8C00",
	BandPoor:   "#E53935",
}

// Hex is the display color clients paint the band with.
func (b Band) Hex() string {
	return bandHex[b]
}

// ColorForPercentage maps a match percentage to one of five bands. Lower bounds
// are inclusive.
func ColorForPercentage(p int) Band {
	switch {
	case p >= 80:
		return BandStrong
	case p >= 60:
		return BandGood
	case p >= 40:
		return BandMedium
	case p >= 20:
		return BandWeak
	default:
		return BandPoor
	}
}

// LabelForPercentage uses its own thresholds, not the color bands.
func LabelForPercentage(p int) string {
	switch {
	case p >= 90:
		return "Perfect"
	case p >= 75:
		return "Very good"
	case p >= 50:
		return "Good"
	case p >= 25:
		return "Partial"
	default:
		return "Low"
	}
}
