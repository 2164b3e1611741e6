package spectral

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AngleSpectrum is the histogram of angles (in degrees, rounded to
// AngleDecimals) between every pair of unique directions.
type AngleSpectrum struct {
	Buckets   []Bucket
	PairCount int
}

// SpecialAngle is one entry of the polyhedral-symmetry table: an angle value,
// the symmetry it signals, and how often it occurred in an angle spectrum.
type SpecialAngle struct {
	Angle float64
	Label string
	Count int
}

// specialAngleTable lists the angles associated with known polyhedral
// symmetries. 36° and 72° are the pentagon angles that signal icosahedral
// structure; 60° and 120° belong to triangular/hexagonal arrangements; 90°
// to the cube/octahedron family.
var specialAngleTable = []SpecialAngle{
	{Angle: 36, Label: "pentagonal (icosahedral)"},
	{Angle: 60, Label: "triangular / hexagonal"},
	{Angle: 72, Label: "pentagonal (icosahedral)"},
	{Angle: 90, Label: "cubic / octahedral"},
	{Angle: 120, Label: "hexagonal"},
}

// Angles computes the angle between every pair of directions in fixed
// (i < j) order: arccos of the clamped dot product, in degrees, rounded to
// AngleDecimals and bucketed.
func Angles(directions []mgl64.Vec3) AngleSpectrum {
	histogram := make(map[float64]int)
	pairs := 0

	for i := 0; i < len(directions); i++ {
		for j := i + 1; j < len(directions); j++ {
			pairs++
			dot := mgl64.Clamp(directions[i].Dot(directions[j]), -1, 1)
			angle := mgl64.RadToDeg(math.Acos(dot))
			histogram[roundTo(angle, AngleDecimals)]++
		}
	}

	return AngleSpectrum{Buckets: sortedBuckets(histogram), PairCount: pairs}
}

// SpecialAngles matches the spectrum's buckets against the symmetry table:
// every bucket within tolerance of a table angle adds its count to that
// entry. All table entries are reported, zero counts included, in table
// order.
func SpecialAngles(spectrum AngleSpectrum, tolerance float64) []SpecialAngle {
	result := make([]SpecialAngle, len(specialAngleTable))
	copy(result, specialAngleTable)

	for _, bucket := range spectrum.Buckets {
		for i := range result {
			if math.Abs(bucket.Value-result[i].Angle) <= tolerance {
				result[i].Count += bucket.Count
			}
		}
	}

	return result
}
