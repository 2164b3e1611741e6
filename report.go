package moire

import (
	"fmt"
	"strings"

	"github.com/akmonengine/moire/spectral"
)

// maxListedCandidates bounds how many golden-ratio candidates the text
// summary prints; the full list stays on the Result.
const maxListedCandidates = 5

// Summary renders the result as a human-readable report block. It is a
// convenience for CLIs and logs; structured consumers should read the Result
// fields directly.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "interference analysis: side=%g angle=%g° axis=(%g,%g,%g)\n",
		r.Params.SideLength, r.Params.RotationAngleDegrees,
		r.Params.RotationAxis.X(), r.Params.RotationAxis.Y(), r.Params.RotationAxis.Z())

	fmt.Fprintf(&b, "unique points: %d (vertex-A %d, vertex-B %d, edge-A/face-B %d, edge-B/face-A %d, edge-edge %d)\n",
		r.Unique.Total(), r.Unique.VertexA, r.Unique.VertexB,
		r.Unique.EdgeAFaceB, r.Unique.EdgeBFaceA, r.Unique.EdgeEdge)

	fmt.Fprintf(&b, "distances: %d pairs, %d magnitudes, min=%.4f max=%.4f mean=%.4f median=%.4f stddev=%.4f",
		r.Distances.PairCount, len(r.Distances.Buckets),
		r.Distances.Min, r.Distances.Max, r.Distances.Mean, r.Distances.Median, r.Distances.StdDev)
	if r.Distances.Truncated {
		b.WriteString(" (truncated)")
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "golden-ratio candidates: %d\n", len(r.GoldenCandidates))
	for i, c := range r.GoldenCandidates {
		if i >= maxListedCandidates {
			fmt.Fprintf(&b, "  ... %d more\n", len(r.GoldenCandidates)-maxListedCandidates)
			break
		}
		fmt.Fprintf(&b, "  %.4f / %.4f = %.6f (err %.6f)\n", c.Larger, c.Smaller, c.Ratio, c.Error)
	}

	fmt.Fprintf(&b, "directions: %d unique", len(r.Directions))
	if r.DirectionsTruncated {
		b.WriteString(" (pair cap reached)")
	}
	fmt.Fprintf(&b, ", %d angle pairs in %d buckets\n", r.Angles.PairCount, len(r.Angles.Buckets))

	b.WriteString("special angles:\n")
	for _, s := range r.SpecialAngles {
		fmt.Fprintf(&b, "  %5.1f° ×%-5d %s\n", s.Angle, s.Count, s.Label)
	}

	strong := 0
	bestDeviation := -1.0
	for _, m := range r.Icosahedral {
		if m.Rating == spectral.RatingStrong {
			strong++
		}
		if bestDeviation < 0 || m.Deviation < bestDeviation {
			bestDeviation = m.Deviation
		}
	}
	if bestDeviation >= 0 {
		fmt.Fprintf(&b, "icosahedral matches: %d strong of %d directions, best deviation %.2f°\n",
			strong, len(r.Icosahedral), bestDeviation)
	} else {
		b.WriteString("icosahedral matches: no directions\n")
	}

	return b.String()
}
