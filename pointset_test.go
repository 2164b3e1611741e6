package moire

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPointSetDeduplication(t *testing.T) {
	ps := newPointSet(1e-6)

	if !ps.add(mgl64.Vec3{0, 0, 0}, SourceVertexA) {
		t.Error("first point should be accepted")
	}
	if ps.add(mgl64.Vec3{0, 0, 0}, SourceVertexB) {
		t.Error("exact duplicate should be rejected")
	}
	if ps.add(mgl64.Vec3{5e-7, 0, 0}, SourceEdgeEdge) {
		t.Error("point within ε should be rejected")
	}
	if !ps.add(mgl64.Vec3{2e-6, 0, 0}, SourceVertexB) {
		t.Error("point beyond ε should be accepted")
	}

	if len(ps.Points()) != 2 {
		t.Errorf("point set holds %d points, want 2", len(ps.Points()))
	}
}

func TestPointSetFirstOccurrenceWins(t *testing.T) {
	ps := newPointSet(1e-6)
	ps.add(mgl64.Vec3{1, 2, 3}, SourceVertexA)
	ps.add(mgl64.Vec3{1, 2, 3}, SourceEdgeEdge)

	points := ps.Points()
	if len(points) != 1 {
		t.Fatalf("point set holds %d points, want 1", len(points))
	}
	if points[0].Source != SourceVertexA {
		t.Errorf("canonical point source = %v, want %v (earlier insertion)", points[0].Source, SourceVertexA)
	}

	unique := ps.UniqueCounts()
	if unique.VertexA != 1 || unique.EdgeEdge != 0 {
		t.Errorf("unique counts = %+v, want only vertex-A", unique)
	}
	candidates := ps.CandidateCounts()
	if candidates.VertexA != 1 || candidates.EdgeEdge != 1 {
		t.Errorf("candidate counts = %+v, want one of each", candidates)
	}
}

func TestPointSetPreservesInsertionOrder(t *testing.T) {
	ps := newPointSet(1e-6)
	inputs := []mgl64.Vec3{{3, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	for _, p := range inputs {
		ps.add(p, SourceVertexA)
	}

	positions := ps.Positions()
	for i, want := range inputs {
		if positions[i] != want {
			t.Errorf("position %d = %v, want %v", i, positions[i], want)
		}
	}
}

func TestCountsTotal(t *testing.T) {
	c := Counts{VertexA: 8, VertexB: 8, EdgeAFaceB: 16, EdgeBFaceA: 2, EdgeEdge: 1}
	if c.Total() != 35 {
		t.Errorf("Total() = %d, want 35", c.Total())
	}
}

func TestSourceString(t *testing.T) {
	sources := map[Source]string{
		SourceVertexA:    "vertex-A",
		SourceVertexB:    "vertex-B",
		SourceEdgeAFaceB: "edge-A/face-B",
		SourceEdgeBFaceA: "edge-B/face-A",
		SourceEdgeEdge:   "edge-edge",
	}
	for source, want := range sources {
		if source.String() != want {
			t.Errorf("Source(%d).String() = %q, want %q", source, source.String(), want)
		}
	}
}
