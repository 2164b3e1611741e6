package spectral

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Qualitative ratings for icosahedral alignment, by angular deviation.
const (
	RatingStrong   = "Strong"
	RatingModerate = "Moderate"
	RatingWeak     = "Weak"

	strongDeviationDegrees   = 5.0
	moderateDeviationDegrees = 15.0
)

// IcosahedralMatch reports, for one direction, the closest canonical
// icosahedral axis, the angular deviation to it in degrees, and a
// qualitative rating of the alignment.
type IcosahedralMatch struct {
	Direction mgl64.Vec3
	Axis      mgl64.Vec3
	Deviation float64
	Rating    string
}

// IcosahedralAxes are the six vertex axes of the canonical icosahedron: the
// cyclic permutations of (0, ±1, ±φ), normalized, with opposite vertices
// collapsed into a single unsigned axis.
var IcosahedralAxes = icosahedralAxes()

func icosahedralAxes() [6]mgl64.Vec3 {
	raw := [6]mgl64.Vec3{
		{0, 1, Phi},
		{0, 1, -Phi},
		{1, Phi, 0},
		{1, -Phi, 0},
		{Phi, 0, 1},
		{Phi, 0, -1},
	}

	var axes [6]mgl64.Vec3
	for i, v := range raw {
		axes[i] = v.Normalize()
	}

	return axes
}

// IcosahedralMatches checks every direction against the canonical axes.
// Axis sign is ignored (an axis and its negation are the same symmetry
// element), so the deviation is arccos of the largest absolute dot product.
func IcosahedralMatches(directions []mgl64.Vec3) []IcosahedralMatch {
	matches := make([]IcosahedralMatch, 0, len(directions))

	for _, dir := range directions {
		best := IcosahedralMatch{Direction: dir, Deviation: math.MaxFloat64}

		for _, axis := range IcosahedralAxes {
			dot := math.Abs(dir.Dot(axis))
			deviation := mgl64.RadToDeg(math.Acos(mgl64.Clamp(dot, 0, 1)))
			if deviation < best.Deviation {
				best.Axis = axis
				best.Deviation = deviation
			}
		}

		best.Rating = deviationRating(best.Deviation)
		matches = append(matches, best)
	}

	return matches
}

func deviationRating(deviation float64) string {
	switch {
	case deviation < strongDeviationDegrees:
		return RatingStrong
	case deviation < moderateDeviationDegrees:
		return RatingModerate
	default:
		return RatingWeak
	}
}
