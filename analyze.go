package moire

import (
	"github.com/akmonengine/moire/geom"
	"github.com/akmonengine/moire/intersect"
	"github.com/akmonengine/moire/spectral"
	"github.com/go-gl/mathgl/mgl64"
)

// Result is the structured summary of one analysis run, the engine's sole
// contract with its consumers. Serialization, presentation and persistence
// all live outside the core.
type Result struct {
	Params Params

	// Points are the unique interference points in canonical collection order.
	Points []Point
	// Unique tallies accepted points by provenance.
	Unique Counts
	// Candidates tallies every raw candidate, duplicates included.
	Candidates Counts

	Distances        spectral.DistanceSpectrum
	GoldenCandidates []spectral.GoldenCandidate

	// Directions are the unique canonicalized pair directions.
	Directions []mgl64.Vec3
	// DirectionsTruncated flags that the direction pair cap was reached.
	DirectionsTruncated bool

	Angles        spectral.AngleSpectrum
	SpecialAngles []spectral.SpecialAngle
	Icosahedral   []spectral.IcosahedralMatch
}

// Analyze runs the full pipeline for one parameter set:
//
//	construct cubes → intersect → deduplicate → spectra → summary
//
// Invalid parameters fail fast with a *ParameterError before any geometry is
// built. Geometric degeneracies inside the pipeline are non-fatal and only
// omit candidates. Identical inputs always produce identical results.
func Analyze(params Params) (*Result, error) {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	// Phase 1: build both cubes around the shared center
	rotation, err := geom.AxisAngle(p.RotationAxis, p.RotationAngleDegrees)
	if err != nil {
		return nil, &ParameterError{Field: "rotationAxis", Reason: err.Error()}
	}

	center := mgl64.Vec3{}
	cubeA, err := geom.NewAxisAlignedCube(center, p.SideLength)
	if err != nil {
		return nil, &ParameterError{Field: "sideLength", Reason: err.Error()}
	}
	cubeB, err := geom.NewCube(center, p.SideLength, rotation)
	if err != nil {
		return nil, &ParameterError{Field: "rotation", Reason: err.Error()}
	}

	// Phase 2: collect candidates in the canonical order and deduplicate
	points := collectPoints(cubeA, cubeB, p.Tolerance)
	positions := points.Positions()

	// Phase 3: spectra
	rawDistances, distancesTruncated := spectral.Distances(positions, p.MaxDistancePairs)
	distances := spectral.AnalyzeDistances(rawDistances, distancesTruncated)

	directions, directionsTruncated := spectral.Directions(positions, p.MaxDirectionPairs, p.Tolerance)
	angles := spectral.Angles(directions)

	// Phase 4: assemble the summary
	return &Result{
		Params:              p,
		Points:              points.Points(),
		Unique:              points.UniqueCounts(),
		Candidates:          points.CandidateCounts(),
		Distances:           distances,
		GoldenCandidates:    spectral.GoldenRatioScan(distances.Magnitudes(), p.GoldenRatioTolerance),
		Directions:          directions,
		DirectionsTruncated: directionsTruncated,
		Angles:              angles,
		SpecialAngles:       spectral.SpecialAngles(angles, p.SpecialAngleTolerance),
		Icosahedral:         spectral.IcosahedralMatches(directions),
	}, nil
}

// collectPoints gathers all candidates in the fixed canonical sequence:
// A-vertices, B-vertices, A-edge/B-face hits, B-edge/A-face hits, edge-edge
// hits. First occurrence wins under ε-deduplication.
func collectPoints(cubeA, cubeB geom.Cube, tolerance float64) *PointSet {
	points := newPointSet(tolerance)

	verticesA := cubeA.Vertices()
	verticesB := cubeB.Vertices()
	points.addAll(verticesA[:], SourceVertexA)
	points.addAll(verticesB[:], SourceVertexB)

	edgesA := cubeA.Edges()
	edgesB := cubeB.Edges()
	facesA := cubeA.Faces()
	facesB := cubeB.Faces()

	points.addAll(intersect.EdgeFaces(edgesA[:], facesB[:], tolerance), SourceEdgeAFaceB)
	points.addAll(intersect.EdgeFaces(edgesB[:], facesA[:], tolerance), SourceEdgeBFaceA)
	points.addAll(intersect.EdgeEdges(edgesA[:], edgesB[:], tolerance), SourceEdgeEdge)

	return points
}
