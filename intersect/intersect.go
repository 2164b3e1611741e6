// Package intersect implements the narrow geometric queries the interference
// engine is built on: line-plane intersection, containment of a point in a
// bounded face patch, edge-versus-face scanning and edge-versus-edge closest
// approach.
//
// All queries are tolerance driven. Degenerate configurations (a line parallel
// to a plane, two parallel segments) never fail the caller; they simply
// produce no candidate, which is the correct behavior for an interference
// scan: a grazing or coincident feature contributes its points through the
// neighboring non-degenerate queries instead.
//
// References:
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 5 - closest-point
//     computations between segments
package intersect

import (
	"math"

	"github.com/akmonengine/moire/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// ParallelGuard is the lower bound on |normal·dir| (and on the skew-line
// denominator) below which a query is treated as degenerate. It protects a
// division, not a geometric identity, so it is fixed rather than tied to the
// caller's geometric tolerance.
const ParallelGuard = 1e-12

// LinePlane solves normal·(origin + t·dir - planePoint) = 0 for t.
//
// It returns ok = false when the line is parallel to the plane, which covers
// both the disjoint and the coincident-in-plane case; the engine deliberately
// treats those identically.
func LinePlane(origin, dir, planePoint, normal mgl64.Vec3) (float64, bool) {
	denom := normal.Dot(dir)
	if math.Abs(denom) < ParallelGuard {
		return 0, false
	}

	t := normal.Dot(planePoint.Sub(origin)) / denom

	return t, true
}

// PointInFace reports whether a point already known to lie on the face's
// plane falls inside the face patch. The point is projected onto the face's
// two tangent bases; both projections must land in [-half-eps, +half+eps].
// The eps slack keeps points sitting exactly on a face border, which is the
// common case when two cubes share an extent.
func PointInFace(p mgl64.Vec3, f geom.Face, eps float64) bool {
	rel := p.Sub(f.Center)
	u := rel.Dot(f.TangentU)
	v := rel.Dot(f.TangentV)

	limit := f.HalfExtent + eps

	return u >= -limit && u <= limit && v >= -limit && v <= limit
}

// EdgeFaces scans every (edge, face) pair and collects the points where an
// edge pierces a face patch. The line-plane parameter is restricted to the
// edge's parametric range [0,1] with eps slack on both ends, then the hit is
// tested for containment in the patch.
//
// The scan order is the given slice order, so identical inputs always produce
// the candidate list in the same sequence.
func EdgeFaces(edges []geom.Edge, faces []geom.Face, eps float64) []mgl64.Vec3 {
	var hits []mgl64.Vec3

	for _, e := range edges {
		dir := e.Direction()
		for _, f := range faces {
			t, ok := LinePlane(e.Start, dir, f.Center, f.Normal)
			if !ok || t < -eps || t > 1+eps {
				continue
			}

			p := e.Start.Add(dir.Mul(t))
			if PointInFace(p, f, eps) {
				hits = append(hits, p)
			}
		}
	}

	return hits
}

// EdgeEdge computes the closest approach between two segments via the
// standard skew-line formula and accepts the contact only when the segments
// actually touch: closest-approach distance below eps. This distinguishes a
// true crossing from a near miss, a policy tied to cube-scale tolerances.
//
// Near-parallel segments (vanishing denominator) emit no candidate.
func EdgeEdge(a, b geom.Edge, eps float64) (mgl64.Vec3, bool) {
	d1 := a.Direction()
	d2 := b.Direction()
	r := a.Start.Sub(b.Start)

	a11 := d1.Dot(d1)
	a12 := d1.Dot(d2)
	a22 := d2.Dot(d2)
	b1 := d1.Dot(r)
	b2 := d2.Dot(r)

	denom := a11*a22 - a12*a12
	if math.Abs(denom) < ParallelGuard {
		// Parallèles ou colinéaires : aucun candidat
		return mgl64.Vec3{}, false
	}

	s := clamp01((a12*b2 - a22*b1) / denom)
	t := clamp01((a11*b2 - a12*b1) / denom)

	p1 := a.Start.Add(d1.Mul(s))
	p2 := b.Start.Add(d2.Mul(t))

	if p1.Sub(p2).Len() >= eps {
		return mgl64.Vec3{}, false
	}

	// Touching: report the midpoint of the two closest points
	return p1.Add(p2).Mul(0.5), true
}

// EdgeEdges scans every segment pair in slice order and collects the touch
// points accepted by EdgeEdge.
func EdgeEdges(edgesA, edgesB []geom.Edge, eps float64) []mgl64.Vec3 {
	var hits []mgl64.Vec3

	for _, a := range edgesA {
		for _, b := range edgesB {
			if p, ok := EdgeEdge(a, b, eps); ok {
				hits = append(hits, p)
			}
		}
	}

	return hits
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
