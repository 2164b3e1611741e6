// Package moire computes the geometric interference pattern produced by two
// concentric cubes of equal side length, one axis-aligned and one rotated
// about a chosen axis, and analyzes the resulting point set for distance,
// direction and angle structure, golden-ratio relationships and
// polyhedral-symmetry signatures.
//
// The engine is a pure, single-threaded computation: fixed input, fixed
// output, no shared state. Sweeping many rotation angles in parallel is the
// caller's concurrency boundary; see Sweep.
package moire

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Default analysis parameters. The tolerance is the single ε governing point
// deduplication, direction deduplication, parametric-range slack and
// edge-edge touch acceptance.
const (
	DEFAULT_TOLERANCE               = 1e-6
	DEFAULT_MAX_DISTANCE_PAIRS      = 2000
	DEFAULT_MAX_DIRECTION_PAIRS     = 1000
	DEFAULT_GOLDEN_RATIO_TOLERANCE  = 0.01
	DEFAULT_SPECIAL_ANGLE_TOLERANCE = 0.5
)

// Params are the inputs of one analysis run. The zero value of every bounded
// field falls back to the matching default; SideLength and RotationAxis have
// no sensible default and must be set.
type Params struct {
	// SideLength of both cubes, must be positive.
	SideLength float64
	// RotationAngleDegrees applied to cube B about RotationAxis.
	RotationAngleDegrees float64
	// RotationAxis, normalized defensively; must not be near zero.
	RotationAxis mgl64.Vec3
	// MaxDistancePairs caps the pairwise distance enumeration.
	MaxDistancePairs int
	// MaxDirectionPairs caps the pairwise direction enumeration.
	MaxDirectionPairs int
	// GoldenRatioTolerance accepts a ratio as golden when |ratio-φ| is below it.
	GoldenRatioTolerance float64
	// SpecialAngleTolerance matches rounded angles against the symmetry table.
	SpecialAngleTolerance float64
	// Tolerance is the geometric ε.
	Tolerance float64
}

// DefaultParams returns Params for the given configuration with every bound
// and tolerance at its default.
func DefaultParams(side, angleDegrees float64, axis mgl64.Vec3) Params {
	return Params{
		SideLength:           side,
		RotationAngleDegrees: angleDegrees,
		RotationAxis:         axis,
	}
}

func (p Params) withDefaults() Params {
	if p.MaxDistancePairs == 0 {
		p.MaxDistancePairs = DEFAULT_MAX_DISTANCE_PAIRS
	}
	if p.MaxDirectionPairs == 0 {
		p.MaxDirectionPairs = DEFAULT_MAX_DIRECTION_PAIRS
	}
	if p.GoldenRatioTolerance == 0 {
		p.GoldenRatioTolerance = DEFAULT_GOLDEN_RATIO_TOLERANCE
	}
	if p.SpecialAngleTolerance == 0 {
		p.SpecialAngleTolerance = DEFAULT_SPECIAL_ANGLE_TOLERANCE
	}
	if p.Tolerance == 0 {
		p.Tolerance = DEFAULT_TOLERANCE
	}

	return p
}

func (p Params) validate() error {
	if math.IsNaN(p.SideLength) || math.IsInf(p.SideLength, 0) || p.SideLength <= 0 {
		return &ParameterError{Field: "sideLength", Reason: fmt.Sprintf("must be a positive finite number, got %v", p.SideLength)}
	}
	if math.IsNaN(p.RotationAngleDegrees) || math.IsInf(p.RotationAngleDegrees, 0) {
		return &ParameterError{Field: "rotationAngleDegrees", Reason: fmt.Sprintf("must be finite, got %v", p.RotationAngleDegrees)}
	}
	if length := p.RotationAxis.Len(); math.IsNaN(length) || math.IsInf(length, 0) || length < 1e-12 {
		return &ParameterError{Field: "rotationAxis", Reason: fmt.Sprintf("axis %v is degenerate", p.RotationAxis)}
	}
	if p.MaxDistancePairs < 0 {
		return &ParameterError{Field: "maxDistancePairs", Reason: "must be positive"}
	}
	if p.MaxDirectionPairs < 0 {
		return &ParameterError{Field: "maxDirectionPairs", Reason: "must be positive"}
	}
	if p.GoldenRatioTolerance < 0 || math.IsNaN(p.GoldenRatioTolerance) {
		return &ParameterError{Field: "goldenRatioTolerance", Reason: "must be positive"}
	}
	if p.SpecialAngleTolerance < 0 || math.IsNaN(p.SpecialAngleTolerance) {
		return &ParameterError{Field: "specialAngleTolerance", Reason: "must be positive"}
	}
	if p.Tolerance < 0 || math.IsNaN(p.Tolerance) {
		return &ParameterError{Field: "tolerance", Reason: "must be positive"}
	}

	return nil
}

// ParameterError is the fatal error class of the engine: a malformed input
// parameter, reported before any computation starts. Geometric degeneracies
// inside the pipeline are never errors; they only omit candidates.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
