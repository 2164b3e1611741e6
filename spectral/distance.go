package spectral

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// DistanceSpectrum is the histogram of pairwise point distances plus the
// summary statistics of the (possibly truncated) raw distance sample.
type DistanceSpectrum struct {
	Buckets   []Bucket
	Min       float64
	Max       float64
	Mean      float64
	Median    float64
	StdDev    float64
	PairCount int
	Truncated bool
}

// Distances enumerates pairwise distances over the point set in fixed (i < j)
// order. When the pair count exceeds maxPairs the enumeration stops there;
// the truncation is deterministic, never a random subsample.
func Distances(points []mgl64.Vec3, maxPairs int) ([]float64, bool) {
	var distances []float64

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if len(distances) >= maxPairs {
				return distances, true
			}
			distances = append(distances, points[j].Sub(points[i]).Len())
		}
	}

	return distances, false
}

// AnalyzeDistances buckets the raw distances to DistanceDecimals precision
// and computes min/max/mean/median/standard deviation over the raw values.
func AnalyzeDistances(distances []float64, truncated bool) DistanceSpectrum {
	spectrum := DistanceSpectrum{
		PairCount: len(distances),
		Truncated: truncated,
	}
	if len(distances) == 0 {
		return spectrum
	}

	histogram := make(map[float64]int, len(distances))
	sum := 0.0
	spectrum.Min = distances[0]
	spectrum.Max = distances[0]

	for _, d := range distances {
		histogram[roundTo(d, DistanceDecimals)]++
		sum += d
		spectrum.Min = math.Min(spectrum.Min, d)
		spectrum.Max = math.Max(spectrum.Max, d)
	}

	n := float64(len(distances))
	spectrum.Mean = sum / n

	variance := 0.0
	for _, d := range distances {
		delta := d - spectrum.Mean
		variance += delta * delta
	}
	spectrum.StdDev = math.Sqrt(variance / n)

	sorted := make([]float64, len(distances))
	copy(sorted, distances)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		spectrum.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		spectrum.Median = sorted[mid]
	}

	spectrum.Buckets = sortedBuckets(histogram)

	return spectrum
}

// Magnitudes returns the distinct positive bucket values of the spectrum in
// ascending order.
func (s DistanceSpectrum) Magnitudes() []float64 {
	magnitudes := make([]float64, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		if b.Value > 0 {
			magnitudes = append(magnitudes, b.Value)
		}
	}

	return magnitudes
}
