package services

import (
	"math"
	"strconv"
	"strings"
)

// FormatXP renders an XP amount for the summary header: the
// platform counts XP in bytes, so thousands get a "kb" suffix and
// millions "mb", with precision dropping as magnitude grows.
func FormatXP(value float64) string {
	if math.IsNaN(value) {
		return "0"
	}

	abs := math.Abs(value)
	switch {
	case abs >= 1_000_000:
		return formatSig(value/1_000_000) + "mb"
	case abs >= 1_000:
		return formatSig(value/1_000) + "kb"
	default:
		return strconv.FormatFloat(math.Round(value), 'f', -1, 64)
	}
}

func formatSig(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 100:
		return strconv.FormatFloat(value, 'f', 0, 64)
	case abs >= 10:
		return strconv.FormatFloat(value, 'f', 1, 64)
	default:
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
}

// Initials derives up to two uppercase initials from a display name, for
// the profile card avatar.
func Initials(label string) string {
	var initials []rune
	for _, chunk := range strings.Fields(label) {
		initials = append(initials, []rune(chunk)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
