// Package spectral analyzes the structure of an interference point set: the
// spectrum of pairwise distances, the spectrum of pair directions on the unit
// sphere, the angles between those directions, and how all of it relates to
// the golden ratio and to polyhedral symmetry axes.
//
// Every function here is a pure, single-pass computation over its inputs.
// Pair enumeration is always in fixed (i < j) order and any cost-bounding
// truncation keeps that order, so identical inputs reproduce identical
// spectra - a requirement for regression testing.
package spectral

import (
	"math"
	"sort"
)

// Phi is the golden ratio (1+√5)/2, computed once.
var Phi = (1 + math.Sqrt(5)) / 2

const (
	// DistanceDecimals is the bucket precision of the distance spectrum.
	DistanceDecimals = 4
	// AngleDecimals is the bucket precision of the angle spectrum.
	AngleDecimals = 2
)

// Bucket is one histogram bin: a rounded magnitude and its occurrence count.
type Bucket struct {
	Value float64
	Count int
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// sortedBuckets converts a histogram map into buckets sorted by ascending
// value, the deterministic form every spectrum is reported in.
func sortedBuckets(histogram map[float64]int) []Bucket {
	buckets := make([]Bucket, 0, len(histogram))
	for value, count := range histogram {
		buckets = append(buckets, Bucket{Value: value, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Value < buckets[j].Value
	})

	return buckets
}
