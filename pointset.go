package moire

import "github.com/go-gl/mathgl/mgl64"

// Source tags an interference point with its provenance. It only feeds
// diagnostic counts; point identity is purely coordinate-based under ε.
type Source int

const (
	SourceVertexA Source = iota
	SourceVertexB
	SourceEdgeAFaceB
	SourceEdgeBFaceA
	SourceEdgeEdge
)

func (s Source) String() string {
	switch s {
	case SourceVertexA:
		return "vertex-A"
	case SourceVertexB:
		return "vertex-B"
	case SourceEdgeAFaceB:
		return "edge-A/face-B"
	case SourceEdgeBFaceA:
		return "edge-B/face-A"
	case SourceEdgeEdge:
		return "edge-edge"
	}
	return "unknown"
}

// Point is an interference point: a position plus the provenance of the
// candidate that first produced it.
type Point struct {
	Position mgl64.Vec3
	Source   Source
}

// Counts breaks a point tally down by provenance.
type Counts struct {
	VertexA    int
	VertexB    int
	EdgeAFaceB int
	EdgeBFaceA int
	EdgeEdge   int
}

func (c *Counts) record(s Source) {
	switch s {
	case SourceVertexA:
		c.VertexA++
	case SourceVertexB:
		c.VertexB++
	case SourceEdgeAFaceB:
		c.EdgeAFaceB++
	case SourceEdgeBFaceA:
		c.EdgeBFaceA++
	case SourceEdgeEdge:
		c.EdgeEdge++
	}
}

// Total sums the per-provenance counts.
func (c Counts) Total() int {
	return c.VertexA + c.VertexB + c.EdgeAFaceB + c.EdgeBFaceA + c.EdgeEdge
}

// PointSet accumulates candidate points in a fixed collection order and keeps
// only the first candidate of every ε-neighborhood: a candidate is accepted
// iff its distance to every already-accepted point exceeds ε. The ε lookups
// go through a bucket grid so acceptance stays cheap as candidates grow.
type PointSet struct {
	tolerance  float64
	points     []Point
	grid       *bucketGrid
	unique     Counts
	candidates Counts
}

func newPointSet(tolerance float64) *PointSet {
	return &PointSet{
		tolerance: tolerance,
		grid:      newBucketGrid(tolerance),
	}
}

// add offers one candidate. It reports whether the candidate became a new
// unique point; a candidate within ε of an accepted point is discarded, the
// earlier point staying canonical.
func (ps *PointSet) add(p mgl64.Vec3, source Source) bool {
	ps.candidates.record(source)

	if ps.grid.hasNeighborWithin(p, ps.tolerance) {
		return false
	}

	ps.grid.insert(p)
	ps.points = append(ps.points, Point{Position: p, Source: source})
	ps.unique.record(source)

	return true
}

func (ps *PointSet) addAll(points []mgl64.Vec3, source Source) {
	for _, p := range points {
		ps.add(p, source)
	}
}

// Points returns the unique points in acceptance order.
func (ps *PointSet) Points() []Point {
	return ps.points
}

// Positions returns the unique point coordinates in acceptance order.
func (ps *PointSet) Positions() []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, len(ps.points))
	for i, p := range ps.points {
		positions[i] = p.Position
	}

	return positions
}

// UniqueCounts returns the per-provenance tally of accepted points.
func (ps *PointSet) UniqueCounts() Counts {
	return ps.unique
}

// CandidateCounts returns the per-provenance tally of all offered candidates,
// duplicates included.
func (ps *PointSet) CandidateCounts() Counts {
	return ps.candidates
}
