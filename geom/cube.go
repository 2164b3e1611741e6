// Package geom provides the geometric primitives of the interference engine:
// oriented cubes, their derived faces and edges, and rotation construction.
//
// A Cube is an immutable value. Vertices, edges and faces are derived on
// demand, always in the same enumeration order, because the downstream point
// pipeline depends on a reproducible candidate ordering.
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// orthonormalityTolerance bounds how far Orientation may drift from a proper
// rotation before the cube is rejected as malformed.
const orthonormalityTolerance = 1e-9

// Edge is a segment between two cube corners.
type Edge struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// Direction returns the unnormalized vector from Start to End.
func (e Edge) Direction() mgl64.Vec3 {
	return e.End.Sub(e.Start)
}

func (e Edge) Length() float64 {
	return e.Direction().Len()
}

// Face is one side of a cube: a bounded plane patch described by its center,
// outward unit normal, two orthonormal in-plane basis vectors and the
// half-extent along each basis.
type Face struct {
	Center     mgl64.Vec3
	Normal     mgl64.Vec3
	TangentU   mgl64.Vec3
	TangentV   mgl64.Vec3
	HalfExtent float64
}

// Cube is an oriented cube defined by its center, side length and a proper
// rotation matrix whose columns are the cube's local axes in world space.
type Cube struct {
	Center      mgl64.Vec3
	Side        float64
	Orientation mgl64.Mat3
}

// NewCube validates its inputs and returns an immutable cube value.
// The orientation must be a proper rotation (orthonormal, determinant +1);
// anything else leaves the derived geometry undefined, so it is rejected.
func NewCube(center mgl64.Vec3, side float64, orientation mgl64.Mat3) (Cube, error) {
	if math.IsNaN(side) || math.IsInf(side, 0) || side <= 0 {
		return Cube{}, fmt.Errorf("side length must be a positive finite number, got %v", side)
	}

	// Compare R·Rᵀ to the identity element by element. Mat3.ApproxEqualThreshold
	// is unusable here: against a zero operand it squares the epsilon, which
	// rejects the ~1e-16 off-diagonal noise every off-axis rotation carries.
	identity := orientation.Mul3(orientation.Transpose())
	ident := mgl64.Ident3()
	for i := range identity {
		if math.Abs(identity[i]-ident[i]) > orthonormalityTolerance {
			return Cube{}, fmt.Errorf("orientation is not orthonormal")
		}
	}
	if math.Abs(orientation.Det()-1) > orthonormalityTolerance {
		return Cube{}, fmt.Errorf("orientation determinant is %v, want +1", orientation.Det())
	}

	return Cube{Center: center, Side: side, Orientation: orientation}, nil
}

// NewAxisAlignedCube returns a cube with the identity orientation.
func NewAxisAlignedCube(center mgl64.Vec3, side float64) (Cube, error) {
	return NewCube(center, side, mgl64.Ident3())
}

// Vertices returns the 8 corners of the cube.
//
// Corners are enumerated in binary-counting order over the local sign triple:
// index bit 2 drives the x sign, bit 1 the y sign, bit 0 the z sign, with a
// clear bit meaning minus. Index 0 is (-h,-h,-h), index 7 is (+h,+h,+h).
func (c Cube) Vertices() [8]mgl64.Vec3 {
	h := c.Side / 2
	var corners [8]mgl64.Vec3

	for i := range corners {
		local := mgl64.Vec3{
			signOf(i>>2&1) * h,
			signOf(i>>1&1) * h,
			signOf(i&1) * h,
		}
		corners[i] = c.Center.Add(c.Orientation.Mul3x1(local))
	}

	return corners
}

// Edges returns the 12 edges of the cube, connecting vertex pairs that differ
// in exactly one sign bit. Enumeration is by ascending lower vertex index,
// flipping the x bit first, then y, then z.
func (c Cube) Edges() [12]Edge {
	corners := c.Vertices()
	var edges [12]Edge

	k := 0
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{4, 2, 1} {
			j := i | bit
			if j == i {
				continue
			}
			edges[k] = Edge{Start: corners[i], End: corners[j]}
			k++
		}
	}

	return edges
}

// Faces returns the 6 faces of the cube, one per signed local axis, in the
// order +x, -x, +y, -y, +z, -z. The tangent bases are the other two local
// axes, so each face patch is the square [-h,+h]² in its own plane.
func (c Cube) Faces() [6]Face {
	h := c.Side / 2
	var faces [6]Face

	k := 0
	for axis := 0; axis < 3; axis++ {
		u := c.Orientation.Col((axis + 1) % 3)
		v := c.Orientation.Col((axis + 2) % 3)

		for _, sign := range [2]float64{1, -1} {
			normal := c.Orientation.Col(axis).Mul(sign)
			faces[k] = Face{
				Center:     c.Center.Add(normal.Mul(h)),
				Normal:     normal,
				TangentU:   u,
				TangentV:   v,
				HalfExtent: h,
			}
			k++
		}
	}

	return faces
}

func signOf(bit int) float64 {
	if bit == 0 {
		return -1
	}
	return 1
}
