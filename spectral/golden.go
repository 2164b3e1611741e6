package spectral

import (
	"math"
	"sort"
)

// GoldenCandidate is a pair of distance magnitudes whose ratio approximates
// the golden ratio within the scan tolerance.
type GoldenCandidate struct {
	Larger  float64
	Smaller float64
	Ratio   float64
	Error   float64
}

// GoldenRatioScan tests every unordered pair of distinct positive magnitudes
// (a, b) with a > b and keeps those where |a/b - φ| is within tolerance.
// Candidates are returned by ascending error; equal errors fall back to the
// magnitude pair so the ordering stays total.
func GoldenRatioScan(magnitudes []float64, tolerance float64) []GoldenCandidate {
	var candidates []GoldenCandidate

	for i := 0; i < len(magnitudes); i++ {
		for j := i + 1; j < len(magnitudes); j++ {
			larger, smaller := magnitudes[i], magnitudes[j]
			if larger < smaller {
				larger, smaller = smaller, larger
			}
			if smaller <= 0 {
				continue
			}

			ratio := larger / smaller
			err := math.Abs(ratio - Phi)
			if err <= tolerance {
				candidates = append(candidates, GoldenCandidate{
					Larger:  larger,
					Smaller: smaller,
					Ratio:   ratio,
					Error:   err,
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Error != candidates[j].Error {
			return candidates[i].Error < candidates[j].Error
		}
		if candidates[i].Larger != candidates[j].Larger {
			return candidates[i].Larger < candidates[j].Larger
		}
		return candidates[i].Smaller < candidates[j].Smaller
	})

	return candidates
}
