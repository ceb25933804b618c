package engine

import "github.com/jonathan/stacklyzer/internal/types"

// ConfidenceFor maps the number of signals behind a detection to a tier.
// Derived signals such as versions and ids count like any other evidence.
func ConfidenceFor(signals int) types.Confidence {
	switch {
	case signals >= 3:
		return types.ConfidenceHigh
	case signals == 2:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
